package scaler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/timeseries-standardization/common"
	"github.com/uyouii/timeseries-standardization/model"
)

func TestUnscale(t *testing.T) {
	tests := []struct {
		name   string
		seq    model.Vector
		factor float64
	}{
		{"average", model.Vector{0.6667, 1.3333}, 7.5},
		{"max", model.Vector{0.5, 1.0}, 10},
		{"sum", model.Vector{0.3333, 0.6667}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Unscale(tt.seq, tt.factor)
			require.NoError(t, err)
			assert.InDeltaSlice(t, []float64{5, 10}, res.Floats(), 1e-2)
		})
	}
}

func TestUnscaleZScore(t *testing.T) {
	res, err := UnscaleZScore(model.Vector{-1, 1}, 7.5, 2.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 10}, res.Floats(), testDelta)
}

func TestUnscaleInvalid(t *testing.T) {
	_, err := Unscale(model.Vector{}, 2)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = Unscale(model.Vector{1, math.NaN()}, 2)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = Unscale(model.Vector{1}, math.Inf(1))
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = UnscaleZScore(nil, 7.5, 2.5)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	_, err = UnscaleZScore(model.Vector{1}, math.NaN(), 2.5)
	assert.ErrorIs(t, err, common.ErrorInvalidInput)
}

func TestMaxAbsDiff(t *testing.T) {
	diff, err := MaxAbsDiff(model.Vector{1, 2, 3}, model.Vector{1.5, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, diff)

	_, err = MaxAbsDiff(model.Vector{1}, model.Vector{1, 2})
	assert.ErrorIs(t, err, common.ErrorInvalidInput)

	assert.True(t, EqualApprox(model.Vector{1, 2}, model.Vector{1, 2 + 1e-12}, RoundTripTolerance))
	assert.False(t, EqualApprox(model.Vector{1, 2}, nil, RoundTripTolerance))
}
