package xraydb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestF0AtZeroQEqualsOffsetPlusScaleSum(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	ions, err := db.F0Ions("Fe")
	require.NoError(t, err)
	require.NotEmpty(t, ions)

	vals, err := db.F0(ions[0], []float64{0})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Greater(t, vals[0], 0.0)

	rec, ok := db.h.Index.Waasmaier(ions[0])
	require.True(t, ok)
	want := rec.Offset
	for _, s := range rec.Scale {
		want += s
	}
	assert.InDelta(t, want, vals[0], 1e-9)
}

func TestF0DecreasesWithIncreasingQ(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	ions, err := db.F0Ions("Cu")
	require.NoError(t, err)
	require.NotEmpty(t, ions)

	vals, err := db.F0(ions[0], []float64{0, 2, 5, 10})
	require.NoError(t, err)
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i], vals[i-1])
	}
}

func TestF0UnknownIonErrors(t *testing.T) {
	_, err := F0("Zzz99+", []float64{0})
	assert.Error(t, err)
}
