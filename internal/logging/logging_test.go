package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]int{"": INFO, "info": INFO, "debug": DEBUG, "trace": TRACE} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_Verbosity(t *testing.T) {
	logger, sync, err := New(DEBUG, true)
	require.NoError(t, err)
	defer sync()

	assert.True(t, logger.V(DEBUG).Enabled())
	assert.False(t, logger.V(TRACE).Enabled())
}

func TestNewTestLogger_EnablesTrace(t *testing.T) {
	logger := NewTestLogger()
	assert.True(t, logger.V(TRACE).Enabled())
	logger.V(TRACE).Info("dropped", "k", 1)
}
