package calculator

import "errors"

var (
	// ErrTrainerKiteAboveSafeLevel is returned when wind exceeds 24 knots for a trainer kite.
	ErrTrainerKiteAboveSafeLevel = errors.New("wind speed for trainer kites shouldn't exceed 24 knots")

	// ErrInvalidInput is returned for zero, negative, or non-finite inputs.
	ErrInvalidInput = errors.New("invalid input")

	ErrUnknownScenario = errors.New("unknown board scenario")
	ErrUnknownKiteType = errors.New("unknown kite type")
)
