// A library for working with camera exposure settings and the raw
// integer codes camera firmware uses to report them.
package exposure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StopSize identifies the exposure increment a shutter speed belongs
// to. Most standard shutter speeds are spaced at half-stop intervals;
// a handful of intermediate values are spaced at third-stop intervals.
type StopSize int

const (
	StopSizeHalf StopSize = iota
	StopSizeThird
)

func (s StopSize) String() string {
	switch s {
	case StopSizeThird:
		return "1/3"
	default:
		return "1/2"
	}
}

func (s StopSize) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s.String())
	buf.WriteString(`"`)
	return buf.Bytes(), nil
}

// Named shutter speed codes which represent camera states rather than
// metric exposure times.
const (
	ShutterSpeedAuto     int64 = 0
	ShutterSpeedBulb     int64 = 12
	ShutterSpeedNotValid int64 = 4294967295
)

type shutterSpeedEntry struct {
	code    int64
	seconds float64
}

var shutterSpeedNames = []struct {
	name string
	code int64
}{
	{"Auto", ShutterSpeedAuto},
	{"Bulb", ShutterSpeedBulb},
	{"NotValid", ShutterSpeedNotValid},
}

// Half-stop shutter speed codes, from 30 seconds down to 1/8000,
// ordered from longest exposure to shortest.
var halfStopShutterSpeeds = []shutterSpeedEntry{
	{16, 30},
	{19, 25},
	{20, 20},
	{24, 15},
	{27, 13},
	{28, 10},
	{32, 8},
	{36, 6},
	{37, 5},
	{40, 4},
	{43, 3.2},
	{44, 3},
	{45, 2.5},
	{48, 2},
	{51, 1.6},
	{52, 1.5},
	{53, 1.3},
	{56, 1},
	{59, 0.8},
	{60, 0.7},
	{61, 0.6},
	{64, 0.5},
	{67, 0.4},
	{68, 0.3},
	{72, 0.25},
	{75, 0.2},
	{76, 1.0 / 6},
	{80, 0.125},
	{84, 0.1},
	{85, 1.0 / 13},
	{88, 1.0 / 15},
	{92, 0.05},
	{93, 0.04},
	{96, 1.0 / 30},
	{99, 0.025},
	{100, 1.0 / 45},
	{101, 0.02},
	{104, 1.0 / 60},
	{107, 0.0125},
	{108, 1.0 / 90},
	{109, 0.01},
	{112, 0.008},
	{115, 0.00625},
	{116, 1.0 / 180},
	{117, 0.005},
	{120, 0.004},
	{123, 0.003125},
	{124, 1.0 / 350},
	{125, 0.0025},
	{128, 0.002},
	{131, 0.0015625},
	{132, 1.0 / 750},
	{133, 0.00125},
	{136, 0.001},
	{139, 0.0008},
	{140, 1.0 / 1500},
	{141, 0.000625},
	{144, 0.0005},
	{147, 0.0004},
	{148, 1.0 / 3000},
	{149, 0.0003125},
	{152, 0.00025},
	{155, 0.0002},
	{156, 1.0 / 6000},
	{157, 0.00015625},
	{160, 0.000125},
}

// Third-stop shutter speed codes, interleaved between the half-stop
// values over part of the range.
var thirdStopShutterSpeeds = []shutterSpeedEntry{
	{21, 20},
	{29, 10},
	{35, 6},
	{69, 0.3},
	{77, 1.0 / 6},
	{83, 0.1},
	{91, 0.05},
}

// Index maps built once at startup for constant-time code lookup. The
// entry slices above remain the source of truth for iteration order.
var (
	halfStopSeconds   map[int64]float64
	thirdStopSeconds  map[int64]float64
	allShutterSpeeds  []shutterSpeedEntry
	shutterNameByCode map[int64]string
	shutterCodeByName map[string]int64
)

func init() {
	halfStopSeconds = make(map[int64]float64, len(halfStopShutterSpeeds))
	for _, e := range halfStopShutterSpeeds {
		halfStopSeconds[e.code] = e.seconds
	}
	thirdStopSeconds = make(map[int64]float64, len(thirdStopShutterSpeeds))
	for _, e := range thirdStopShutterSpeeds {
		thirdStopSeconds[e.code] = e.seconds
	}
	allShutterSpeeds = make([]shutterSpeedEntry, 0,
		len(halfStopShutterSpeeds)+len(thirdStopShutterSpeeds))
	allShutterSpeeds = append(allShutterSpeeds, halfStopShutterSpeeds...)
	allShutterSpeeds = append(allShutterSpeeds, thirdStopShutterSpeeds...)

	shutterNameByCode = make(map[int64]string, len(shutterSpeedNames))
	shutterCodeByName = make(map[string]int64, len(shutterSpeedNames))
	for _, n := range shutterSpeedNames {
		shutterNameByCode[n.code] = n.name
		shutterCodeByName[n.name] = n.code
	}
}

// ShutterSpeed is an immutable shutter speed setting derived from a
// firmware code. The code is the source of truth; the exposure time in
// seconds, the display label, and the stop grouping are all derived
// from it at construction. Named codes (Auto, Bulb, NotValid) carry a
// zero exposure time, and codes outside the known tables yield a zero
// exposure time with an empty label.
type ShutterSpeed struct {
	code    int64
	seconds float64
	label   string
	stop    StopSize
}

// ShutterSpeedFromCode constructs a ShutterSpeed from a raw firmware
// code. It never fails; unknown codes produce a value with zero
// seconds and an empty label.
func ShutterSpeedFromCode(code int64) *ShutterSpeed {
	if name, ok := shutterNameByCode[code]; ok {
		return &ShutterSpeed{
			code:  code,
			label: name,
			stop:  StopSizeHalf,
		}
	}
	if seconds, ok := thirdStopSeconds[code]; ok {
		return &ShutterSpeed{
			code:    code,
			seconds: seconds,
			label:   formatSeconds(seconds) + " (1/3)",
			stop:    StopSizeThird,
		}
	}
	seconds := halfStopSeconds[code]
	return &ShutterSpeed{
		code:    code,
		seconds: seconds,
		label:   formatSeconds(seconds),
		stop:    StopSizeHalf,
	}
}

// ShutterSpeeds returns every metric shutter speed in the tables, half
// stops first, each in table order. Named codes are not included.
func ShutterSpeeds() []*ShutterSpeed {
	speeds := make([]*ShutterSpeed, 0, len(allShutterSpeeds))
	for _, e := range allShutterSpeeds {
		speeds = append(speeds, ShutterSpeedFromCode(e.code))
	}
	return speeds
}

// Code returns the raw firmware code.
func (s *ShutterSpeed) Code() int64 {
	return s.code
}

// Seconds returns the exposure time in seconds, or 0 for named and
// unknown codes.
func (s *ShutterSpeed) Seconds() float64 {
	return s.seconds
}

// Label returns the display form of the shutter speed, e.g. "30",
// "2.5", "1/125", "0.3 (1/3)" or "Bulb". Unknown codes have an empty
// label.
func (s *ShutterSpeed) Label() string {
	return s.label
}

// Stop returns the stop grouping the code belongs to. Named and
// unknown codes report half-stop.
func (s *ShutterSpeed) Stop() StopSize {
	return s.stop
}

func (s *ShutterSpeed) String() string {
	return s.label
}

func (s *ShutterSpeed) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label   string   `json:"label"`
		Value   int64    `json:"value"`
		Seconds float64  `json:"seconds"`
		Stop    StopSize `json:"stop"`
	}{
		Label:   s.label,
		Value:   s.code,
		Seconds: s.seconds,
		Stop:    s.stop,
	})
}

// formatSeconds renders an exposure time the way cameras display it:
// decimal seconds down to roughly 0.3, fractions of a second below
// that. The 0.2999 threshold keeps floating point values that are
// conceptually 0.3 but land just under it in the decimal branch.
func formatSeconds(seconds float64) string {
	switch {
	case seconds > 0.2999:
		return strings.TrimSuffix(strconv.FormatFloat(seconds, 'f', 1, 64), ".0")
	case seconds > 0:
		return fmt.Sprintf("1/%d", int64(math.Round(1/seconds)))
	default:
		return ""
	}
}
