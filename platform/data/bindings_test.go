package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nskvortsov/junit5/platform/constants"
)

func TestNewBindings(t *testing.T) {
	t.Parallel()

	lookup := LookupFromMap(map[string]string{"key": "value"})
	b := NewBindings([]string{"fast", "unit"}, "Mock for UniqueId", "Mock for DisplayName", lookup)

	require.Len(t, b, 4)
	assert.Equal(t, []string{"fast", "unit"}, b[constants.Tags])
	assert.Equal(t, "Mock for UniqueId", b[constants.UniqueID])
	assert.Equal(t, "Mock for DisplayName", b[constants.DisplayName])
	assert.NotNil(t, b[constants.ConfigurationParameter])
}

func TestNewBindingsNilTags(t *testing.T) {
	t.Parallel()

	b := NewBindings(nil, "", "", nil)
	require.NotNil(t, b[constants.Tags])
	assert.Empty(t, b.Tags())
}

func TestLookupFromMap(t *testing.T) {
	t.Parallel()

	lookup := LookupFromMap(map[string]string{"present": "yes"})

	value, ok := lookup("present")
	require.True(t, ok)
	assert.Equal(t, "yes", value)

	_, ok = lookup("absent")
	assert.False(t, ok)
}

func TestBindingsLookupFallback(t *testing.T) {
	t.Parallel()

	// A missing or mistyped binding degrades to an all-absent lookup.
	b := Bindings{constants.ConfigurationParameter: "not a lookup"}
	_, ok := b.Lookup()("anything")
	assert.False(t, ok)

	b = NewBindings(nil, "", "", LookupFromMap(map[string]string{"k": "v"}))
	value, ok := b.Lookup()("k")
	require.True(t, ok)
	assert.Equal(t, "v", value)
}
