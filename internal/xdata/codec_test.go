package xdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDatabase() *Database {
	return &Database{
		SchemaVersion: CurrentSchemaVersion,
		Versions:      []VersionEntry{{Tag: "t", Date: "d", Notes: "n"}},
		Elements: []Element{
			{Z: 1, Symbol: "H", Name: "hydrogen", MolarMass: 1.008, Density: 8.988e-5},
			{Z: 26, Symbol: "Fe", Name: "iron", MolarMass: 55.845, Density: 7.874},
		},
		Chantler: []ChantlerRecord{
			{Element: "Fe", Z: 26, EnergyEV: []float64{1000, 2000}, F1: []float64{0.1, 0.2}, F2: []float64{1.1, 1.2}, MuPhoto: []float64{1, 2}, MuIncoh: []float64{0.1, 0.2}, MuTotal: []float64{1.1, 2.2}},
		},
		Compton: ComptonTable{Incident: []float64{1000}, Xray90Deg: []float64{999}, XrayMean: []float64{999.5}, ElectronMean: []float64{0.5}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := sampleDatabase()
	blob, err := Encode(orig)
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	got, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not a zstd frame"))
	assert.Error(t, err)
}

func TestDecodeRejectsWrongSchemaVersion(t *testing.T) {
	db := sampleDatabase()
	db.SchemaVersion = CurrentSchemaVersion + 1
	blob, err := Encode(db)
	require.NoError(t, err)
	_, err = Decode(blob)
	assert.Error(t, err)
}
