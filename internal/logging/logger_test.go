package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_NoPathIsNop(t *testing.T) {
	logger, closeFn, err := New("", false)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("dropped")
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "onboard.log")

	logger, closeFn, err := New(path, true)
	require.NoError(t, err)

	For(logger, ComponentTUI).Debug("transition")
	For(logger, ComponentSession).Info("session loaded")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session loaded")
	assert.Contains(t, string(data), "SESSION")
	assert.Contains(t, string(data), "transition")
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onboard.log")

	logger, closeFn, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestFor_NilLogger(t *testing.T) {
	assert.NotNil(t, For(nil, ComponentCLI))
}
