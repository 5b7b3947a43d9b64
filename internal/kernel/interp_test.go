package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearClampsAtEnds(t *testing.T) {
	xp := []float64{1, 2, 3, 4}
	fp := []float64{10, 20, 30, 40}

	assert.Equal(t, 10.0, Linear(-5, xp, fp))
	assert.Equal(t, 40.0, Linear(99, xp, fp))
	assert.Equal(t, 20.0, Linear(2, xp, fp))
	assert.InDelta(t, 25.0, Linear(2.5, xp, fp), 1e-12)
}

func TestLinearSlicePreservesLength(t *testing.T) {
	xp := []float64{1, 2, 3}
	fp := []float64{1, 4, 9}
	out := LinearSlice(nil, xp, fp)
	assert.Empty(t, out)

	out = LinearSlice([]float64{1, 1.5, 3}, xp, fp)
	assert.Len(t, out, 3)
	assert.InDelta(t, 2.5, out[1], 1e-12)
}

func TestLogLogFloorsTinyValues(t *testing.T) {
	xp := []float64{1, 10, 100}
	fp := []float64{0, 1, 1e-120}
	// Should not panic or produce NaN/Inf despite the zero and sub-floor entries.
	v := LogLog(5, xp, fp)
	assert.False(t, isNaNOrInf(v))
}

func isNaNOrInf(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-5, 1, 10))
	assert.Equal(t, 10.0, Clamp(50, 1, 10))
	assert.Equal(t, 5.0, Clamp(5, 1, 10))
}
