package exposure

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
	null "gopkg.in/guregu/null.v3"
)

// Catalog is a read-only connection to an Adobe Lightroom catalog,
// used to tally the shutter speeds recorded in its EXIF metadata
// against the standard code tables.
type Catalog struct {
	db   *sql.DB
	path string
}

// OpenCatalog opens a connection to the catalog database file, but
// does not read any data. OpenCatalog will fail if the catalog is
// currently open in Lightroom.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		db:   db,
		path: path,
	}, nil
}

// Close closes the underlying database file.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the filepath of the catalog file.
func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) query(label, sql string) (*sql.Rows, error) {
	fields := log.Fields{
		"action": "query",
		"status": "ok",
		"label":  label,
		"sql":    sql,
	}
	rows, err := c.db.Query(sql)
	if err != nil {
		fields["status"] = "error"
		fields["error"] = err
	}
	log.WithFields(fields).Debug("Executed query")
	return rows, err
}

// GetShutterSpeedDistribution reads every APEX shutter speed value
// Lightroom harvested from EXIF metadata, snaps each to the nearest
// standard shutter speed, and returns the per-speed photo counts. A
// non-nil filter restricts snapping to the speeds it accepts; readings
// with no acceptable speed are dropped.
func (c *Catalog) GetShutterSpeedDistribution(filter ShutterSpeedFilter) (DistributionList, error) {
	const query = `
SELECT   shutterSpeed,
         count(shutterSpeed)
FROM     AgHarvestedExifMetadata
WHERE    shutterSpeed is not null
GROUP BY shutterSpeed
ORDER BY shutterSpeed
`
	rows, err := c.query("shutter_speed_distribution", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merged := DistributionMap{}
	for rows.Next() {
		var tv null.Float
		var count int64
		if err := rows.Scan(&tv, &count); err != nil {
			return nil, err
		}
		speed := NearestShutterSpeedForSeconds(ApexToSeconds(tv.ValueOrZero()), filter)
		if speed == nil {
			continue
		}
		if entry, ok := merged[speed.Code()]; ok {
			entry.Count += count
		} else {
			merged[speed.Code()] = &DistributionEntry{
				Code:  speed.Code(),
				Label: speed.Label(),
				Count: count,
			}
		}
	}
	list := merged.ToList()
	log.WithFields(log.Fields{
		"action":  "shutter_speed_distribution",
		"catalog": c.path,
		"speeds":  len(list),
	}).Debug()
	return list, nil
}
