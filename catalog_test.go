package exposure_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalpern/exposure"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCatalog writes a minimal catalog database containing only
// the EXIF metadata table, with one row per reading.
func createTestCatalog(t *testing.T, apexReadings []float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.lrcat")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE AgHarvestedExifMetadata (
		image INTEGER,
		shutterSpeed REAL
	)`)
	require.NoError(t, err)

	for i, tv := range apexReadings {
		_, err = db.Exec("INSERT INTO AgHarvestedExifMetadata (image, shutterSpeed) VALUES (?, ?)", i, tv)
		require.NoError(t, err)
	}
	// A photo with no shutter speed recorded.
	_, err = db.Exec("INSERT INTO AgHarvestedExifMetadata (image, shutterSpeed) VALUES (?, NULL)", len(apexReadings))
	require.NoError(t, err)

	return path
}

func TestGetShutterSpeedDistribution(t *testing.T) {
	// Three readings around 1/128, two at 1s.
	path := createTestCatalog(t, []float64{7, 7, 7, 0, 0})

	c, err := exposure.OpenCatalog(path)
	require.NoError(t, err)
	defer c.Close()

	dist, err := c.GetShutterSpeedDistribution(nil)
	require.NoError(t, err)
	require.Len(t, dist, 2)

	assert.Equal(t, int64(112), dist[0].Code)
	assert.Equal(t, "1/125", dist[0].Label)
	assert.Equal(t, int64(3), dist[0].Count)

	assert.Equal(t, int64(56), dist[1].Code)
	assert.Equal(t, "1", dist[1].Label)
	assert.Equal(t, int64(2), dist[1].Count)
}

func TestGetShutterSpeedDistributionFiltered(t *testing.T) {
	// A reading at 20s snaps to the third stop entry when half stops
	// are filtered out.
	path := createTestCatalog(t, []float64{exposure.SecondsToApex(20)})

	c, err := exposure.OpenCatalog(path)
	require.NoError(t, err)
	defer c.Close()

	dist, err := c.GetShutterSpeedDistribution(func(s *exposure.ShutterSpeed) bool {
		return s.Stop() == exposure.StopSizeThird
	})
	require.NoError(t, err)
	require.Len(t, dist, 1)
	assert.Equal(t, int64(21), dist[0].Code)
	assert.Equal(t, "20 (1/3)", dist[0].Label)
}

func TestFindCatalogs(t *testing.T) {
	dir := t.TempDir()
	touch := func(parts ...string) string {
		p := filepath.Join(append([]string{dir}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, nil, 0644))
		return p
	}

	a := touch("a.lrcat")
	touch("notes.txt")
	c := touch("sub", "c.lrcat")
	// Preview caches are skipped entirely.
	touch("a Previews.lrdata", "d.lrcat")

	found := exposure.FindCatalogs(dir)
	assert.ElementsMatch(t, []string{a, c}, found)

	// Explicit file paths are kept as-is, missing paths are skipped.
	found = exposure.FindCatalogs(a, filepath.Join(dir, "missing.lrcat"))
	assert.Equal(t, []string{a}, found)
}
