package collectors

import (
	"errors"
	"strconv"
)

// ErrNoReading is returned by the parsers when the input carries no usable value.
var ErrNoReading = errors.New("no reading in probe output")

// Ternary is a flag that may also be unknown because its probe failed.
type Ternary uint8

const (
	Unknown Ternary = iota
	False
	True
)

// TernaryOf lifts a plain bool.
func TernaryOf(b bool) Ternary {
	if b {
		return True
	}
	return False
}

// Known reports whether the value came from a successful probe.
func (t Ternary) Known() bool { return t != Unknown }

func (t Ternary) String() string {
	switch t {
	case True:
		return "True"
	case False:
		return "False"
	default:
		return "N/A"
	}
}

// Temperature is an optional Celsius reading.
type Temperature struct {
	Celsius float64
	Valid   bool
}

// Celsius wraps a successful reading.
func Celsius(v float64) Temperature {
	return Temperature{Celsius: v, Valid: true}
}

// Format renders the reading with one decimal, or absent when there is none.
func (t Temperature) Format(absent string) string {
	if !t.Valid {
		return absent
	}
	return strconv.FormatFloat(t.Celsius, 'f', 1, 64)
}

// PowerStatus holds the firmware power/throttle flags. "Now" flags describe the
// current state; "Occurred" flags are latched since boot by the firmware.
type PowerStatus struct {
	UndervoltageNow      Ternary
	ThrottledNow         Ternary
	TempLimitNow         Ternary
	UndervoltageOccurred Ternary
	ThrottledOccurred    Ternary
	TempLimitOccurred    Ternary
}

// UnknownPowerStatus is the value reported when the power probe fails; every
// field is Unknown.
var UnknownPowerStatus = PowerStatus{}

// Bit positions in the get_throttled code.
const (
	bitUndervoltageNow      = 1 << 0
	bitThrottledNow         = 1 << 1
	bitTempLimitNow         = 1 << 2
	bitUndervoltageOccurred = 1 << 16
	bitThrottledOccurred    = 1 << 17
	bitTempLimitOccurred    = 1 << 18
)

// PowerStatusFromCode decodes a get_throttled bitmask.
func PowerStatusFromCode(code uint64) PowerStatus {
	return PowerStatus{
		UndervoltageNow:      TernaryOf(code&bitUndervoltageNow != 0),
		ThrottledNow:         TernaryOf(code&bitThrottledNow != 0),
		TempLimitNow:         TernaryOf(code&bitTempLimitNow != 0),
		UndervoltageOccurred: TernaryOf(code&bitUndervoltageOccurred != 0),
		ThrottledOccurred:    TernaryOf(code&bitThrottledOccurred != 0),
		TempLimitOccurred:    TernaryOf(code&bitTempLimitOccurred != 0),
	}
}
