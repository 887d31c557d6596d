package calculator

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/kiteboarding-calc/observability"
	"github.com/couchcryptid/kiteboarding-calc/units"
)

func newTestCalculator(t *testing.T) (*Calculator, *observability.Metrics, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := observability.NewMetricsForTesting()
	return New(logger, metrics), metrics, &buf
}

func TestCalculator_RecordsCalculations(t *testing.T) {
	c, m, _ := newTestCalculator(t)

	_, err := c.KiteSize(rider200lb, units.NewKnots(14))
	require.NoError(t, err)
	_, err = c.KiteSize(rider200lb, units.NewKnots(20))
	require.NoError(t, err)
	_, err = c.TrainerKiteSize(rider200lb, units.NewKnots(14))
	require.NoError(t, err)
	_, err = c.WindSpeed(rider200lb, 12)
	require.NoError(t, err)
	_, err = c.BoardSize(rider200lb)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opKiteSize)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opTrainerKiteSize)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opWindSpeed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opBoardSize)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.KiteSize))
}

func TestCalculator_RecordsRejections(t *testing.T) {
	c, m, logs := newTestCalculator(t)

	_, err := c.TrainerKiteSize(rider200lb, units.NewKnots(25))
	require.ErrorIs(t, err, ErrTrainerKiteAboveSafeLevel)
	_, err = c.KiteSize(units.NewKilograms(0), units.NewKnots(14))
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.Board(rider200lb, Scenario(8))
	require.ErrorIs(t, err, ErrUnknownScenario)
	_, err = c.Recommend(KiteType(8), rider200lb, units.NewKnots(14))
	require.ErrorIs(t, err, ErrUnknownKiteType)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opTrainerKiteSize, observability.ReasonAboveSafeLevel)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opKiteSize, observability.ReasonInvalidInput)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opBoardSize, observability.ReasonUnknownScenario)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opRecommend, observability.ReasonUnknownKiteType)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opTrainerKiteSize)))

	out := logs.String()
	assert.Contains(t, out, `"msg":"calculation rejected"`)
	assert.Contains(t, out, `"operation":"trainer_kite_size"`)
	assert.Contains(t, out, `"wind_knots":25`)
}

func TestCalculator_RecommendRecordsUnderOwnOperation(t *testing.T) {
	c, m, _ := newTestCalculator(t)

	_, err := c.Recommend(Trainer, rider200lb, units.NewKnots(14))
	require.NoError(t, err)
	_, err = c.Recommend(Bow, rider200lb, units.NewKnots(14))
	require.NoError(t, err)
	_, err = c.Recommend(Trainer, rider200lb, units.NewKnots(26))
	require.ErrorIs(t, err, ErrTrainerKiteAboveSafeLevel)
	_, err = c.Recommend(Bow, units.NewKilograms(0), units.NewKnots(14))
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opRecommend)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opRecommend, observability.ReasonAboveSafeLevel)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opRecommend, observability.ReasonInvalidInput)))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opTrainerKiteSize)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.CalculationsTotal.WithLabelValues(opKiteSize)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opTrainerKiteSize, observability.ReasonAboveSafeLevel)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RejectionsTotal.WithLabelValues(opKiteSize, observability.ReasonInvalidInput)))
}

func TestCalculator_NilLoggerAndMetrics(t *testing.T) {
	c := New(nil, nil)
	assert.NotPanics(t, func() {
		_, _ = c.TrainerKiteSize(rider200lb, units.NewKnots(30))
		_, _ = c.KiteSize(rider200lb, units.NewKnots(14))
	})
}

func TestRejectionReason(t *testing.T) {
	assert.Equal(t, observability.ReasonAboveSafeLevel, rejectionReason(ErrTrainerKiteAboveSafeLevel))
	assert.Equal(t, observability.ReasonUnknownScenario, rejectionReason(ErrUnknownScenario))
	assert.Equal(t, observability.ReasonUnknownKiteType, rejectionReason(ErrUnknownKiteType))
	assert.Equal(t, observability.ReasonInvalidInput, rejectionReason(ErrInvalidInput))
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"rounds up", 14.0937, 14.1},
		{"rounds down", 21.1406, 21.1},
		{"half away from zero", 2.25, 2.3},
		{"integer unchanged", 183, 183},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, round(tt.input))
		})
	}
}
