package exposure_test

import (
	"testing"

	"github.com/aalpern/exposure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDistributions(t *testing.T) {
	a := exposure.DistributionList{
		{Code: 112, Label: "1/125", Count: 10},
		{Code: 56, Label: "1", Count: 3},
	}
	b := exposure.DistributionList{
		{Code: 112, Label: "1/125", Count: 5},
		{Code: 16, Label: "30", Count: 4},
	}

	merged := a.Merge(b)
	require.Len(t, merged, 3)

	// Most frequent first.
	assert.Equal(t, int64(112), merged[0].Code)
	assert.Equal(t, int64(15), merged[0].Count)
	assert.Equal(t, int64(16), merged[1].Code)
	assert.Equal(t, int64(4), merged[1].Count)
	assert.Equal(t, int64(56), merged[2].Code)
	assert.Equal(t, int64(3), merged[2].Count)
}

func TestMergeDistributionsDoesNotMutateInputs(t *testing.T) {
	a := exposure.DistributionList{{Code: 112, Label: "1/125", Count: 10}}
	b := exposure.DistributionList{{Code: 112, Label: "1/125", Count: 5}}

	exposure.MergeDistributions(a, b)
	assert.Equal(t, int64(10), a[0].Count)
	assert.Equal(t, int64(5), b[0].Count)
}

func TestDistributionListToMap(t *testing.T) {
	l := exposure.DistributionList{
		{Code: 56, Label: "1", Count: 3},
		{Code: 16, Label: "30", Count: 4},
	}
	m := l.ToMap()
	require.Len(t, m, 2)
	assert.Equal(t, "30", m[16].Label)

	back := m.ToList()
	require.Len(t, back, 2)
	assert.Equal(t, int64(16), back[0].Code)
}
