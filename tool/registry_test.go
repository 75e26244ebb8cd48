package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(NewCalculator()))
	require.NoError(t, r.Register(NewWebsiteFetcher()))

	got, ok := r.Lookup("calculator")
	assert.True(t, ok)
	assert.Equal(t, "calculator", got.Name())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
}

func TestRegistry_RejectsDuplicateNames(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(NewCalculator()))

	err := r.Register(NewCalculator())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"calculator" already registered`)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(NewWebsiteFetcher()))
	require.NoError(t, r.Register(NewCalculator()))

	assert.Equal(t, []string{"fetch_website", "calculator"}, r.Names())

	tools := r.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "fetch_website", tools[0].Name())
	assert.Equal(t, "calculator", tools[1].Name())
}

func TestRegistry_RejectsEmptyName(t *testing.T) {
	r := NewRegistry()

	err := r.Register(NewFunctionTool("", "unnamed", map[string]any{"type": "object"}, nil))
	assert.Error(t, err)
}
