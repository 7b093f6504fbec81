package exposure

import "math"

// ShutterSpeedFilter restricts a nearest-value search to the speeds it
// accepts, e.g. the subset of codes a particular camera body supports.
type ShutterSpeedFilter func(*ShutterSpeed) bool

// NearestShutterSpeed finds the known shutter speed whose exposure
// time is closest to that of the given code. A nil filter accepts
// every candidate; with a filter, the result is the nearest among the
// candidates the filter accepts, or nil when it rejects them all.
func NearestShutterSpeed(code int64, filter ShutterSpeedFilter) *ShutterSpeed {
	return NearestShutterSpeedForSeconds(ShutterSpeedFromCode(code).Seconds(), filter)
}

// NearestShutterSpeedForLabel finds the known shutter speed closest to
// the one a label resolves to. Returns nil when the label cannot be
// resolved.
func NearestShutterSpeedForLabel(label string, filter ShutterSpeedFilter) *ShutterSpeed {
	speed := ShutterSpeedForLabel(label)
	if speed == nil {
		return nil
	}
	return NearestShutterSpeedForSeconds(speed.Seconds(), filter)
}

// NearestShutterSpeedForSeconds finds the known shutter speed whose
// exposure time is closest to the given number of seconds. Candidates
// are scanned in table order, half stops before third stops, and ties
// keep the earlier candidate.
func NearestShutterSpeedForSeconds(seconds float64, filter ShutterSpeedFilter) *ShutterSpeed {
	var best *ShutterSpeed
	bestDifference := math.Inf(1)

	for _, e := range allShutterSpeeds {
		difference := math.Abs(e.seconds - seconds)
		if difference >= bestDifference {
			continue
		}
		candidate := ShutterSpeedFromCode(e.code)
		if filter != nil && !filter(candidate) {
			continue
		}
		best = candidate
		bestDifference = difference
	}
	return best
}
