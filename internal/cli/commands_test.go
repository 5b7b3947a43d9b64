package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMuKind(t *testing.T) {
	cases := map[string]bool{"photo": true, "Coherent": true, "INCOHERENT": true, "total": true, "": true, "bogus": false}
	for s, wantOK := range cases {
		_, err := parseMuKind(s)
		if wantOK {
			assert.NoError(t, err, s)
		} else {
			assert.Error(t, err, s)
		}
	}
}

func TestParseFloats(t *testing.T) {
	vals, err := parseFloats([]string{"1000", "2500.5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, 2500.5}, vals)

	_, err = parseFloats([]string{"not-a-number"})
	assert.Error(t, err)
}

func TestParseGasFractions(t *testing.T) {
	gases, err := parseGasFractions([]string{"nitrogen=0.9", "argon=0.1"})
	require.NoError(t, err)
	require.Len(t, gases, 2)
	assert.Equal(t, "nitrogen", gases[0].Name)
	assert.Equal(t, 0.9, gases[0].Fraction)

	_, err = parseGasFractions([]string{"malformed"})
	assert.Error(t, err)
}
