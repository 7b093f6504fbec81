package exposure

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// labelMatchTolerance bounds how far a parsed exposure time may sit
// from a table entry and still resolve to its code.
const labelMatchTolerance = 1e-5

// Labels are an integer or decimal numerator, an optional integer
// denominator, and optional trailing text such as the " (1/3)" stop
// marker.
var shutterLabelPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)(?:/([0-9]+))?(.*)$`)

// ShutterSpeedForLabel resolves a display label back to a shutter
// speed. Named labels ("Auto", "Bulb", "NotValid") match exactly and
// case-sensitively. Numeric labels are parsed and matched against the
// table whose stop grouping the label indicates. Returns nil if the
// label cannot be parsed or matches no known value.
func ShutterSpeedForLabel(label string) *ShutterSpeed {
	if code, ok := shutterCodeByName[label]; ok {
		return ShutterSpeedFromCode(code)
	}

	m := shutterLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return nil
	}

	// Malformed numeric text falls through as zero and simply
	// matches nothing.
	seconds, _ := strconv.ParseFloat(m[1], 64)
	if m[2] != "" {
		denominator, _ := strconv.ParseFloat(m[2], 64)
		seconds = seconds / denominator
	}

	table := halfStopShutterSpeeds
	if strings.Contains(m[3], "1/3") {
		table = thirdStopShutterSpeeds
	}
	for _, e := range table {
		if math.Abs(e.seconds-seconds) < labelMatchTolerance {
			return ShutterSpeedFromCode(e.code)
		}
	}
	return nil
}
