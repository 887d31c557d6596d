// Package calculator recommends kiteboarding equipment from rider weight and
// wind speed.
//
// # Formulas
//
// Inputs are normalized to kilograms and whole knots (truncated toward zero,
// see [units.Speed.WholeKnots]) before any formula runs.
//
// Kite size, in square meters:
//
//	ideal   = 2.175 × kg / knots
//	minimum = 0.75 × ideal
//	maximum = 1.5 × ideal
//
// Wind speed for a given kite, in knots, is the algebraic inverse:
//
//	ideal   = 2.175 × kg / m²
//	minimum = 0.75 × ideal
//	maximum = 1.5 × ideal
//
// Trainer kites use a piecewise rule on whole knots:
//
//	knots < 10        4.7 m²
//	10 ≤ knots ≤ 24   0.52 × kg / knots
//	knots ≥ 25        ErrTrainerKiteAboveSafeLevel
//
// Board dimensions scale with the cube root of weight. Each riding scenario
// has its own (length, width, area) factors:
//
//	Scenario     length   width    area
//	beginner     40.72    10.78    0.8834
//	light wind   35.93    10.78    1.0
//	normal wind  33.53    9.9      0.9
//	hard wind    30.66    9.1036   0.9
//
//	length = lengthFactor × ∛kg            (cm)
//	width  = widthFactor × ∛kg             (cm)
//	area   = length × width × areaFactor   (cm², from unrounded length and width)
//
// # Rounding
//
// Every reported value is rounded half away from zero to one decimal place.
// Minimum and maximum are derived from the unrounded ideal and rounded on
// their own, so 200 lb at 14 kn gives 14.1 / 10.6 / 21.1.
//
// # Validation
//
// Weight, wind speed, and kite size must be finite and positive, and wind
// must come to at least one whole knot. Results that overflow or round to
// zero are rejected as well. Both cases fail with [ErrInvalidInput] rather
// than producing Inf, NaN, or empty sizes.
package calculator
