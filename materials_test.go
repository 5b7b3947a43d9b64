package xraydb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMassFractionSumsToOne(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	fracs, err := db.MassFraction("H2O")
	require.NoError(t, err)

	sum := 0.0
	for _, f := range fracs {
		sum += f
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestMassFractionRejectsUnknownElement(t *testing.T) {
	_, err := MassFraction("Xx2O")
	assert.Error(t, err)
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, KindInvalidFormula, xerr.Kind())
}

func TestMaterialMuScalesWithDensity(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	energies := []float64{10000}
	low, err := db.MaterialMu("Si", 1.0, energies, Photo)
	require.NoError(t, err)
	high, err := db.MaterialMu("Si", 2.0, energies, Photo)
	require.NoError(t, err)
	assert.InDelta(t, low[0]*2, high[0], 1e-9)
}

func TestMaterialMuEmptyEnergies(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)
	out, err := db.MaterialMu("Si", 2.33, nil, Photo)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestXrayDeltaBetaSiliconAt10keV(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	oc, err := db.XrayDeltaBeta("Si", 2.33, 10000)
	require.NoError(t, err)
	assert.Greater(t, oc.Delta, 0.0)
	assert.Less(t, oc.Delta, 1e-3)
	assert.Greater(t, oc.Beta, 0.0)
	assert.Less(t, oc.Beta, 1e-4)
	assert.Greater(t, oc.AttenLenCM, 0.0)
}

func TestXrayDeltaBetaAttenLenInfiniteWhenBetaZero(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	// Zero density makes the prefactor, and so Beta, exactly zero.
	oc, err := db.XrayDeltaBeta("Si", 0, 10000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, oc.Beta)
	assert.True(t, math.IsInf(oc.AttenLenCM, 1))
}

func TestFindMaterialByNameAndFormula(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	formula, density, err := db.FindMaterial("Water")
	require.NoError(t, err)
	assert.Equal(t, "H2O", formula)
	assert.Equal(t, 1.0, density)

	_, density2, err := db.FindMaterial("sio2")
	require.NoError(t, err)
	assert.Equal(t, 2.2, density2)
}

func TestFindMaterialUnknownFails(t *testing.T) {
	_, _, err := FindMaterial("not-a-real-material-xyz")
	assert.Error(t, err)
}

func TestMaterialMuNamedUsesRegistryDensityByDefault(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	byName, err := db.MaterialMuNamed("silicon", 0, []float64{10000}, Photo)
	require.NoError(t, err)
	byFormula, err := db.MaterialMu("Si", 2.329, []float64{10000}, Photo)
	require.NoError(t, err)
	assert.InDelta(t, byFormula[0], byName[0], 1e-9)
}

func TestMaterialMuNamedOverridesDensityWhenSupplied(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	out, err := db.MaterialMuNamed("Si", 5.0, []float64{10000}, Photo)
	require.NoError(t, err)
	expected, err := db.MaterialMu("Si", 5.0, []float64{10000}, Photo)
	require.NoError(t, err)
	assert.InDelta(t, expected[0], out[0], 1e-9)
}
