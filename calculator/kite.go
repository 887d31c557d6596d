package calculator

import (
	"fmt"
	"math"

	"github.com/couchcryptid/kiteboarding-calc/units"
)

const (
	// kiteFactor relates rider kilograms per knot to square meters of kite.
	kiteFactor = 2.175
	// trainerFactor is the equivalent for trainer kites.
	trainerFactor = 0.52

	// trainerLowWindSize is the fixed trainer size below trainerFormulaMinKnots.
	trainerLowWindSize     = 4.7
	trainerFormulaMinKnots = 10
	trainerMaxKnots        = 24

	minimumFactor = 0.75
	maximumFactor = 1.5
)

// KiteType selects the kind of kite to size.
type KiteType int

const (
	// Trainer is a small, simple kite for learners, flown in low wind.
	Trainer KiteType = iota
	// Bow is a general-purpose kite with better upwind performance.
	Bow
)

func (k KiteType) String() string {
	switch k {
	case Trainer:
		return "trainer"
	case Bow:
		return "bow"
	default:
		return "unknown"
	}
}

// TrainerKiteSize returns the recommended trainer kite size in square meters.
// It fails with ErrTrainerKiteAboveSafeLevel when the wind is 25 knots or more.
func (c *Calculator) TrainerKiteSize(weight units.Weight, wind units.Speed) (KiteSize, error) {
	size, err := c.trainerKiteSize(opTrainerKiteSize, weight, wind)
	if err != nil {
		return 0, err
	}
	c.succeed(opTrainerKiteSize)
	c.observer().ObserveKiteSize(opTrainerKiteSize, size)
	return size, nil
}

// KiteSize returns the ideal, minimum, and maximum kite size in square meters.
func (c *Calculator) KiteSize(weight units.Weight, wind units.Speed) (KiteSizeRange, error) {
	r, err := c.kiteSize(opKiteSize, weight, wind)
	if err != nil {
		return KiteSizeRange{}, err
	}
	c.succeed(opKiteSize)
	c.observer().ObserveKiteSize(opKiteSize, r.Ideal)
	return r, nil
}

// WindSpeed returns the wind range, in knots, suited to a kite of kiteSize
// square meters. It is the inverse of KiteSize.
func (c *Calculator) WindSpeed(weight units.Weight, kiteSize KiteSize) (WindSpeedRange, error) {
	kg, err := weightKilograms(weight)
	if err != nil {
		return WindSpeedRange{}, c.reject(opWindSpeed, err)
	}
	if !positiveFinite(kiteSize) {
		err := fmt.Errorf("%w: kite size %g", ErrInvalidInput, kiteSize)
		return WindSpeedRange{}, c.reject(opWindSpeed, err, "weight_kg", kg)
	}

	r, err := spread(kiteFactor * kg / kiteSize)
	if err != nil {
		return WindSpeedRange{}, c.reject(opWindSpeed, err, "weight_kg", kg, "kite_size", kiteSize)
	}
	c.succeed(opWindSpeed)
	return WindSpeedRange{
		Ideal:   units.NewKnots(r.Ideal),
		Minimum: units.NewKnots(r.Minimum),
		Maximum: units.NewKnots(r.Maximum),
	}, nil
}

// Recommend sizes a kite of the given type. A trainer kite has a single
// recommended size, reported in all three fields. Every outcome is recorded
// under the recommend operation.
func (c *Calculator) Recommend(kind KiteType, weight units.Weight, wind units.Speed) (KiteSizeRange, error) {
	var (
		r   KiteSizeRange
		err error
	)
	switch kind {
	case Trainer:
		var size KiteSize
		size, err = c.trainerKiteSize(opRecommend, weight, wind)
		r = KiteSizeRange{Ideal: size, Minimum: size, Maximum: size}
	case Bow:
		r, err = c.kiteSize(opRecommend, weight, wind)
	default:
		err = c.reject(opRecommend, fmt.Errorf("%w: %d", ErrUnknownKiteType, int(kind)))
	}
	if err != nil {
		return KiteSizeRange{}, err
	}

	c.succeed(opRecommend)
	c.observer().ObserveKiteSize(opRecommend, r.Ideal)
	return r, nil
}

// trainerKiteSize computes the trainer size, recording rejections under op.
func (c *Calculator) trainerKiteSize(op string, weight units.Weight, wind units.Speed) (KiteSize, error) {
	kg, knots, err := normalize(weight, wind)
	if err != nil {
		return 0, c.reject(op, err)
	}

	var size float64
	switch {
	case knots < trainerFormulaMinKnots:
		size = trainerLowWindSize
	case knots <= trainerMaxKnots:
		size = trainerFactor * kg / float64(knots)
	default:
		err := fmt.Errorf("%w: got %d knots", ErrTrainerKiteAboveSafeLevel, knots)
		return 0, c.reject(op, err, "weight_kg", kg, "wind_knots", knots)
	}

	size = round(size)
	if !positiveFinite(size) {
		err := fmt.Errorf("%w: trainer kite size %g is out of range", ErrInvalidInput, size)
		return 0, c.reject(op, err, "weight_kg", kg, "wind_knots", knots)
	}
	return size, nil
}

// kiteSize computes the kite size range, recording rejections under op.
func (c *Calculator) kiteSize(op string, weight units.Weight, wind units.Speed) (KiteSizeRange, error) {
	kg, knots, err := normalize(weight, wind)
	if err != nil {
		return KiteSizeRange{}, c.reject(op, err)
	}

	r, err := spread(kiteFactor * kg / float64(knots))
	if err != nil {
		return KiteSizeRange{}, c.reject(op, err, "weight_kg", kg, "wind_knots", knots)
	}
	return r, nil
}

// spread rounds ideal and derives the rounded minimum and maximum from the
// unrounded value. Results that round to zero or overflow are rejected.
func spread(ideal float64) (Range[float64], error) {
	r := Range[float64]{
		Ideal:   round(ideal),
		Minimum: round(minimumFactor * ideal),
		Maximum: round(maximumFactor * ideal),
	}
	if !positiveFinite(r.Ideal) || math.IsInf(r.Maximum, 0) {
		return Range[float64]{}, fmt.Errorf("%w: result %g is out of range", ErrInvalidInput, ideal)
	}
	return r, nil
}

func normalize(weight units.Weight, wind units.Speed) (float64, int, error) {
	kg, err := weightKilograms(weight)
	if err != nil {
		return 0, 0, err
	}
	knots, err := windKnots(wind)
	if err != nil {
		return 0, 0, err
	}
	return kg, knots, nil
}
