package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFactories(t *testing.T) {
	t.Parallel()

	enabled := Enabled("it runs")
	assert.False(t, enabled.IsDisabled())
	reason, ok := enabled.Reason()
	require.True(t, ok)
	assert.Equal(t, "it runs", reason)

	disabled := Disabled("it does not")
	assert.True(t, disabled.IsDisabled())
	reason, ok = disabled.Reason()
	require.True(t, ok)
	assert.Equal(t, "it does not", reason)
}

func TestResultZeroValue(t *testing.T) {
	t.Parallel()

	var r Result
	assert.False(t, r.IsDisabled())
	_, ok := r.Reason()
	assert.False(t, ok)
}

func TestResultString(t *testing.T) {
	t.Parallel()

	r := Disabled("Script `false` evaluated to: false")
	assert.Equal(t, "ConditionResult [disabled = true, reason = 'Script `false` evaluated to: false']", r.String())
}
