package exposure

import "math"

// Lightroom catalogs and EXIF metadata store shutter speed as an APEX
// time value (Tv), where the exposure time in seconds is 2^-Tv.

// ApexToSeconds converts an APEX time value to an exposure time in
// seconds.
func ApexToSeconds(tv float64) float64 {
	return math.Exp2(-tv)
}

// SecondsToApex converts an exposure time in seconds to the APEX time
// value camera metadata would record for it.
func SecondsToApex(seconds float64) float64 {
	return -math.Log2(seconds)
}
