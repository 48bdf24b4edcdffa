package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level)
		require.NoError(t, err, "level=%s", level)
		require.NotNil(t, logger)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}
