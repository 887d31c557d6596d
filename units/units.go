// Package units models the measurement values a rider supplies: body weight
// in pounds or kilograms and wind speed in knots, miles per hour, or
// kilometers per hour.
//
// The calculator works in kilograms and knots. Conversion factors:
//
//	1 lb   = 0.45359237 kg (international avoirdupois pound)
//	1 kn   = 1.151 mph
//	1 kn   = 1.852 km/h
//
// Formulas that divide by wind speed use [Speed.WholeKnots], the knot value
// truncated toward zero.
package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownUnit is returned when a unit string cannot be parsed.
var ErrUnknownUnit = errors.New("unknown unit")

const (
	kilogramsPerPound = 0.45359237
	mphPerKnot        = 1.151
	kphPerKnot        = 1.852
)

// MassUnit is a unit of body weight.
type MassUnit int

const (
	Kilograms MassUnit = iota
	Pounds
)

func (u MassUnit) String() string {
	switch u {
	case Kilograms:
		return "kg"
	case Pounds:
		return "lb"
	default:
		return "unknown"
	}
}

// SpeedUnit is a unit of wind speed.
type SpeedUnit int

const (
	Knots SpeedUnit = iota
	MilesPerHour
	KilometersPerHour
)

func (u SpeedUnit) String() string {
	switch u {
	case Knots:
		return "kn"
	case MilesPerHour:
		return "mph"
	case KilometersPerHour:
		return "km/h"
	default:
		return "unknown"
	}
}

// Weight is a mass magnitude tagged with its unit.
type Weight struct {
	Value float64
	Unit  MassUnit
}

// NewPounds returns a weight in pounds.
func NewPounds(v float64) Weight { return Weight{Value: v, Unit: Pounds} }

// NewKilograms returns a weight in kilograms.
func NewKilograms(v float64) Weight { return Weight{Value: v, Unit: Kilograms} }

// Kilograms returns the weight in kilograms. An unknown unit yields NaN.
func (w Weight) Kilograms() float64 {
	switch w.Unit {
	case Kilograms:
		return w.Value
	case Pounds:
		return w.Value * kilogramsPerPound
	default:
		return math.NaN()
	}
}

// In converts the weight to the given unit.
func (w Weight) In(u MassUnit) Weight {
	if u == w.Unit {
		return w
	}
	kg := w.Kilograms()
	switch u {
	case Kilograms:
		return Weight{Value: kg, Unit: Kilograms}
	case Pounds:
		return Weight{Value: kg / kilogramsPerPound, Unit: Pounds}
	default:
		return Weight{Value: math.NaN(), Unit: u}
	}
}

func (w Weight) String() string {
	return fmt.Sprintf("%g %s", w.Value, w.Unit)
}

// Speed is a wind speed magnitude tagged with its unit.
type Speed struct {
	Value float64
	Unit  SpeedUnit
}

// NewKnots returns a speed in knots.
func NewKnots(v float64) Speed { return Speed{Value: v, Unit: Knots} }

// NewMilesPerHour returns a speed in miles per hour.
func NewMilesPerHour(v float64) Speed { return Speed{Value: v, Unit: MilesPerHour} }

// NewKilometersPerHour returns a speed in kilometers per hour.
func NewKilometersPerHour(v float64) Speed { return Speed{Value: v, Unit: KilometersPerHour} }

// Knots returns the speed in fractional knots. An unknown unit yields NaN.
func (s Speed) Knots() float64 {
	switch s.Unit {
	case Knots:
		return s.Value
	case MilesPerHour:
		return s.Value / mphPerKnot
	case KilometersPerHour:
		return s.Value / kphPerKnot
	default:
		return math.NaN()
	}
}

// WholeKnots returns the speed in knots truncated toward zero, clamped to
// the int32 range. Non-finite speeds return 0.
func (s Speed) WholeKnots() int {
	kn := s.Knots()
	switch {
	case math.IsNaN(kn) || math.IsInf(kn, 0):
		return 0
	case kn >= math.MaxInt32:
		return math.MaxInt32
	case kn <= math.MinInt32:
		return math.MinInt32
	}
	return int(kn)
}

// In converts the speed to the given unit.
func (s Speed) In(u SpeedUnit) Speed {
	if u == s.Unit {
		return s
	}
	kn := s.Knots()
	switch u {
	case Knots:
		return Speed{Value: kn, Unit: Knots}
	case MilesPerHour:
		return Speed{Value: kn * mphPerKnot, Unit: MilesPerHour}
	case KilometersPerHour:
		return Speed{Value: kn * kphPerKnot, Unit: KilometersPerHour}
	default:
		return Speed{Value: math.NaN(), Unit: u}
	}
}

func (s Speed) String() string {
	return fmt.Sprintf("%g %s", s.Value, s.Unit)
}

// ParseMassUnit accepts a unit symbol or name such as "lb", "lbs", "kg" or
// "kilograms". Matching is case-insensitive.
func ParseMassUnit(s string) (MassUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs", "kilo", "kilos", "kilogram", "kilograms":
		return Kilograms, nil
	case "lb", "lbs", "pound", "pounds":
		return Pounds, nil
	default:
		return 0, fmt.Errorf("%w: mass %q", ErrUnknownUnit, s)
	}
}

// ParseSpeedUnit accepts a unit symbol or name such as "kn", "kts", "mph" or
// "km/h". Matching is case-insensitive.
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kn", "kt", "kts", "knot", "knots":
		return Knots, nil
	case "mph", "mi/h":
		return MilesPerHour, nil
	case "km/h", "kmh", "kph":
		return KilometersPerHour, nil
	default:
		return 0, fmt.Errorf("%w: speed %q", ErrUnknownUnit, s)
	}
}
