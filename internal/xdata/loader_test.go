package xdata

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSucceedsAndIsConsistent(t *testing.T) {
	h, err := Load()
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotEmpty(t, h.DB.Elements)
	assert.Equal(t, CurrentSchemaVersion, h.DB.SchemaVersion)

	fe, ok := h.Index.ElementByZ(26)
	require.True(t, ok)
	assert.Equal(t, "Fe", fe.Symbol)
}

// TestLoadMatchesTabulatedCardinalities pins the embedded artifact to the
// literal row counts of the upstream tables it reproduces, not merely their
// internal consistency: a regeneration that silently drops rows should fail
// here before it fails anywhere downstream.
func TestLoadMatchesTabulatedCardinalities(t *testing.T) {
	h, err := Load()
	require.NoError(t, err)

	assert.Len(t, h.DB.Elements, 118)
	assert.Len(t, h.DB.XrayLevels, 1430)
	assert.Len(t, h.DB.XrayTransitions, 1807)
	assert.Len(t, h.DB.Photoabsorption, 98)
	assert.Len(t, h.DB.Scattering, 98)
	assert.Len(t, h.DB.Chantler, 92)
	assert.Len(t, h.DB.Waasmaier, 211)
	assert.Greater(t, len(h.DB.Compton.Incident), 100)
	assert.Greater(t, len(h.DB.CoreWidthsKK), 1000)
}

func TestLoadIsIdempotentUnderConcurrency(t *testing.T) {
	const n = 32
	var wg sync.WaitGroup
	handles := make([]*Handle, n)
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = Load()
		}(i)
	}
	wg.Wait()
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
}
