package xraydb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarwinWidthSi111At10keV(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	dw, err := db.DarwinWidth(10000, "Si", 1, 1, 1, 0, PolarizationS, false, false, 1)
	require.NoError(t, err)
	require.NotNil(t, dw)

	thetaDeg := dw.Theta * 180 / math.Pi
	assert.Greater(t, thetaDeg, 10.0)
	assert.Less(t, thetaDeg, 13.0)

	maxIntensity := 0.0
	for _, v := range dw.Intensity {
		if v > maxIntensity {
			maxIntensity = v
		}
	}
	assert.Greater(t, maxIntensity, 0.8)
	assert.Greater(t, dw.EnergyWidth, 0.1)
	assert.Less(t, dw.EnergyWidth, 100.0)
}

func TestDarwinWidthBelowBraggReturnsNil(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	dw, err := db.DarwinWidth(100, "Si", 1, 1, 1, 0, PolarizationS, false, false, 1)
	require.NoError(t, err)
	assert.Nil(t, dw)
}

func TestDarwinWidthRejectsMixedParityHKL(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	_, err = db.DarwinWidth(10000, "Si", 1, 1, 0, 0, PolarizationS, false, false, 1)
	assert.Error(t, err)
}

func TestDarwinWidthPPolarizationNarrowerThanS(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	sPol, err := db.DarwinWidth(10000, "Si", 1, 1, 1, 0, PolarizationS, false, false, 1)
	require.NoError(t, err)
	require.NotNil(t, sPol)
	pPol, err := db.DarwinWidth(10000, "Si", 1, 1, 1, 0, PolarizationP, false, false, 1)
	require.NoError(t, err)
	require.NotNil(t, pPol)

	assert.Less(t, pPol.EnergyWidth, sPol.EnergyWidth)
}

func TestDarwinWidth220NarrowerThan111(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	d111, err := db.DarwinWidth(10000, "Si", 1, 1, 1, 0, PolarizationS, false, false, 1)
	require.NoError(t, err)
	require.NotNil(t, d111)
	d220, err := db.DarwinWidth(10000, "Si", 2, 2, 0, 0, PolarizationS, false, false, 1)
	require.NoError(t, err)
	require.NotNil(t, d220)

	assert.Less(t, d220.EnergyWidth, d111.EnergyWidth)
}

func TestMirrorReflectivityHighAndLowAngle(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	r, err := db.MirrorReflectivity("Si", []float64{0.1e-3, 10e-3}, 10000, 2.33, 0, PolarizationS)
	require.NoError(t, err)
	require.Len(t, r, 2)
	assert.Greater(t, r[0], 0.9)
	assert.Less(t, r[1], 0.1)
}

func TestMirrorReflectivityRoughnessReducesReflectivity(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	theta := []float64{0.5e-3, 1e-3, 2e-3, 5e-3}
	smooth, err := db.MirrorReflectivity("Si", theta, 10000, 2.33, 0, PolarizationS)
	require.NoError(t, err)
	rough, err := db.MirrorReflectivity("Si", theta, 10000, 2.33, 5.0, PolarizationS)
	require.NoError(t, err)

	for i := range theta {
		assert.LessOrEqual(t, rough[i], smooth[i]+1e-12)
	}
}

func TestMultilayerReflectivityRejectsUnpolarized(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	_, err = db.MultilayerReflectivity(
		[]MultilayerLayer{{Formula: "Si", ThicknessA: 20, Density: 2.33}},
		"Si", 2.33, []float64{1e-3}, 10000, 5, 0, 0, PolarizationUnpolarized,
	)
	assert.Error(t, err)
}

func TestMultilayerReflectivityProducesBoundedValues(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	theta := make([]float64, 200)
	for i := range theta {
		theta[i] = 1e-3 + float64(i)*(20e-3-1e-3)/float64(len(theta)-1)
	}

	r, err := db.MultilayerReflectivity(
		[]MultilayerLayer{{Formula: "W", ThicknessA: 20, Density: 19.25}, {Formula: "Si", ThicknessA: 20, Density: 2.33}},
		"Si", 2.33, theta, 10000, 20, 0, 0, PolarizationS,
	)
	require.NoError(t, err)

	maxReflectivity := 0.0
	for _, v := range r {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0+1e-9)
		if v > maxReflectivity {
			maxReflectivity = v
		}
	}
	assert.Greater(t, maxReflectivity, 0.01)
}

func TestCoatedReflectivityMatchesSingleLayerMultilayer(t *testing.T) {
	db, err := Default()
	require.NoError(t, err)

	theta := []float64{2e-3}
	coated, err := db.CoatedReflectivity("Pt", 200, 21.45, nil, "Si", 2.33, theta, 10000, 0, 0, PolarizationS)
	require.NoError(t, err)
	direct, err := db.MultilayerReflectivity(
		[]MultilayerLayer{{Formula: "Pt", ThicknessA: 200, Density: 21.45}},
		"Si", 2.33, theta, 10000, 1, 0, 0, PolarizationS,
	)
	require.NoError(t, err)
	assert.InDelta(t, direct[0], coated[0], 1e-9)
}
