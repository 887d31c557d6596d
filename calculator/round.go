package calculator

import "gonum.org/v1/gonum/floats/scalar"

// round rounds half away from zero to one decimal place.
func round(x float64) float64 {
	return scalar.Round(x, 1)
}
