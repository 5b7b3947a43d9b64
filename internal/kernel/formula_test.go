package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormulaExamples(t *testing.T) {
	cases := []struct {
		formula string
		want    map[string]float64
	}{
		{"H2O", map[string]float64{"H": 2, "O": 1}},
		{"Mn(SO4)2(H2O)7", map[string]float64{"Mn": 1, "S": 2, "O": 15, "H": 14}},
		{"Zn1.e-5Fe3O4", map[string]float64{"Zn": 1e-5, "Fe": 3, "O": 4}},
		{"D2O", map[string]float64{"H": 2, "O": 1}},
	}
	for _, c := range cases {
		got, err := ParseFormula(c.formula)
		require.NoError(t, err, c.formula)
		require.Len(t, got, len(c.want), c.formula)
		for sym, n := range c.want {
			assert.InDelta(t, n, got[sym], 1e-12, "%s: %s", c.formula, sym)
		}
	}
}

func TestParseFormulaEquivalentStoichiometry(t *testing.T) {
	a, err := ParseFormula("Fe0.7Mg0.3O")
	require.NoError(t, err)
	b, err := ParseFormula("Fe.7Mg.3O")
	require.NoError(t, err)
	assert.InDelta(t, a["Fe"], b["Fe"], 1e-12)
	assert.InDelta(t, a["Mg"], b["Mg"], 1e-12)
	assert.InDelta(t, a["O"], b["O"], 1e-12)
}

func TestParseFormulaRejectsInvalid(t *testing.T) {
	for _, f := range []string{"co", "Xx", "H2(O", "H2)O", "H2$O"} {
		_, err := ParseFormula(f)
		assert.Error(t, err, f)
	}
}

func TestValidFormula(t *testing.T) {
	assert.True(t, ValidFormula("H2O"))
	assert.False(t, ValidFormula("Xx"))
}
