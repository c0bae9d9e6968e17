package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 0.6667, FormatFloat(2.0/3.0, 4))
	assert.Equal(t, 0.333, FormatFloat(1.0/3.0, 3))
	assert.Equal(t, 8.0, FormatFloat(7.5, 0))
	assert.True(t, math.IsNaN(FormatFloat(math.NaN(), 2)))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(-1), 2), -1))

	assert.Equal(t, []float64{0.6667, 1.3333}, FormatFloats([]float64{2.0 / 3.0, 4.0 / 3.0}, 4))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
}

func TestGetLogger(t *testing.T) {
	assert.Equal(t, zap.L(), GetLogger(context.Background()))

	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	GetLogger(ctx).Info("hello", zap.Int("cnt", 1))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "hello", entries[0].Message)
		assert.Equal(t, int64(1), entries[0].ContextMap()["cnt"])
	}
}

func TestGetPanicInfo(t *testing.T) {
	assert.Contains(t, GetPanicInfo(), "TestGetPanicInfo")
}
