package registry

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nskvortsov/junit5/platform"
)

func nopFactory(handler slog.Handler) (platform.Evaluator, error) {
	return nil, nil
}

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	reg := New()
	assert.Equal(t, 0, reg.Len())

	reg.Register("alpha", nopFactory)
	reg.Register("beta", nopFactory)

	factory, ok := reg.Lookup("alpha")
	require.True(t, ok)
	require.NotNil(t, factory)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"alpha", "beta"}, reg.Names())
}

func TestRegisterPanics(t *testing.T) {
	t.Parallel()

	reg := New()
	assert.Panics(t, func() { reg.Register("", nopFactory) })
	assert.Panics(t, func() { reg.Register("engine", nil) })

	reg.Register("engine", nopFactory)
	assert.Panics(t, func() { reg.Register("engine", nopFactory) })
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	Register("registry-test-engine", nopFactory)
	_, ok := Default.Lookup("registry-test-engine")
	assert.True(t, ok)
}
