package xraydb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIonChamberFluxesNitrogen(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	fluxes, err := db.IonChamberFluxes(
		[]GasFraction{{Name: "nitrogen", Fraction: 1.0}},
		1.0, 10.0, 10000, 1e-6, true, true,
	)
	require.NoError(t, err)
	assert.Greater(t, fluxes.Incident, 0.0)
	assert.GreaterOrEqual(t, fluxes.Transmitted, 0.0)
	assert.LessOrEqual(t, fluxes.Transmitted, fluxes.Incident)
}

func TestIonChamberFluxesResolvesN2Alias(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	byAlias, err := db.IonChamberFluxes([]GasFraction{{Name: "N2", Fraction: 1.0}}, 1.0, 10.0, 10000, 1e-6, false, true)
	require.NoError(t, err)
	byName, err := db.IonChamberFluxes([]GasFraction{{Name: "nitrogen", Fraction: 1.0}}, 1.0, 10.0, 10000, 1e-6, false, true)
	require.NoError(t, err)
	assert.InDelta(t, byName.Incident, byAlias.Incident, 1e-6)
}

func TestIonChamberFluxesZeroFractionsFails(t *testing.T) {
	_, err := IonChamber([]GasFraction{{Name: "nitrogen", Fraction: 0}}, 1.0, 10.0, 10000, 1e-6, false, true)
	assert.Error(t, err)
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Equal(t, KindDataError, xerr.Kind())
}

func TestIonChamberFluxesMixture(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	fluxes, err := db.IonChamberFluxes(
		[]GasFraction{{Name: "nitrogen", Fraction: 0.9}, {Name: "argon", Fraction: 0.1}},
		1.0, 10.0, 10000, 1e-6, true, true,
	)
	require.NoError(t, err)
	assert.Greater(t, fluxes.Incident, 0.0)
}
