package exposure_test

import (
	"testing"

	"github.com/aalpern/exposure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApexToSeconds(t *testing.T) {
	tests := []struct {
		tv      float64
		seconds float64
	}{
		{0, 1},
		{1, 0.5},
		{-1, 2},
		{7, 1.0 / 128},
		{-5, 32},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.seconds, exposure.ApexToSeconds(tc.tv), 1e-9)
	}
}

func TestSecondsToApexRoundTrip(t *testing.T) {
	for _, s := range exposure.ShutterSpeeds() {
		tv := exposure.SecondsToApex(s.Seconds())
		assert.InDelta(t, s.Seconds(), exposure.ApexToSeconds(tv), 1e-9,
			"code %d", s.Code())
	}
}

func TestApexSnapsToTables(t *testing.T) {
	// APEX values as a camera would record them snap onto the closest
	// standard shutter speed code.
	tests := []struct {
		tv   float64
		code int64
	}{
		{0, 56},    // 1s
		{7, 112},   // 1/128 -> 1/125
		{-5, 16},   // 32s -> 30
		{9.97, 136}, // ~1/1000
	}

	for _, tc := range tests {
		s := exposure.NearestShutterSpeedForSeconds(exposure.ApexToSeconds(tc.tv), nil)
		require.NotNil(t, s)
		assert.Equal(t, tc.code, s.Code(), "tv %v", tc.tv)
	}
}
