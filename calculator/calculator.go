package calculator

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/couchcryptid/kiteboarding-calc/observability"
	"github.com/couchcryptid/kiteboarding-calc/units"
)

// Operation names used for log attributes and metric labels.
const (
	opTrainerKiteSize = "trainer_kite_size"
	opKiteSize        = "kite_size"
	opWindSpeed       = "wind_speed"
	opBoardSize       = "board_size"
	opRecommend       = "recommend"
)

// Calculator computes equipment recommendations. It holds no mutable state;
// equal inputs always produce equal outputs. The zero value is ready to use.
type Calculator struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Calculator. Pass a nil logger to discard logs and nil
// metrics to disable instrumentation.
func New(logger *slog.Logger, metrics *observability.Metrics) *Calculator {
	return &Calculator{
		logger:  logger,
		metrics: metrics,
	}
}

// Range is a three-point estimate: a central recommendation plus lower and
// upper bounds.
type Range[T any] struct {
	Ideal   T `json:"ideal"`
	Minimum T `json:"minimum"`
	Maximum T `json:"maximum"`
}

// KiteSize is a kite surface area in square meters.
type KiteSize = float64

// KiteSizeRange is the recommended kite size range in square meters.
type KiteSizeRange = Range[KiteSize]

// WindSpeedRange is the suitable wind range for a kite, in knots.
type WindSpeedRange = Range[units.Speed]

func (c *Calculator) log() *slog.Logger {
	if c == nil || c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func (c *Calculator) observer() *observability.Metrics {
	if c == nil {
		return nil
	}
	return c.metrics
}

// succeed records a completed calculation.
func (c *Calculator) succeed(op string) {
	c.observer().ObserveCalculation(op)
}

// reject records and logs a failed calculation, then returns err unchanged.
func (c *Calculator) reject(op string, err error, attrs ...any) error {
	c.observer().ObserveRejection(op, rejectionReason(err))
	c.log().Debug("calculation rejected", append([]any{"operation", op, "error", err}, attrs...)...)
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTrainerKiteAboveSafeLevel):
		return observability.ReasonAboveSafeLevel
	case errors.Is(err, ErrUnknownScenario):
		return observability.ReasonUnknownScenario
	case errors.Is(err, ErrUnknownKiteType):
		return observability.ReasonUnknownKiteType
	default:
		return observability.ReasonInvalidInput
	}
}

// weightKilograms normalizes and validates a rider weight.
func weightKilograms(w units.Weight) (float64, error) {
	kg := w.Kilograms()
	if !positiveFinite(kg) {
		return 0, fmt.Errorf("%w: weight %s", ErrInvalidInput, w)
	}
	return kg, nil
}

// windKnots normalizes and validates a wind speed. The result is at least 1.
func windKnots(s units.Speed) (int, error) {
	if !positiveFinite(s.Knots()) {
		return 0, fmt.Errorf("%w: wind speed %s", ErrInvalidInput, s)
	}
	kn := s.WholeKnots()
	if kn < 1 {
		return 0, fmt.Errorf("%w: wind speed %s is below one knot", ErrInvalidInput, s)
	}
	return kn, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
