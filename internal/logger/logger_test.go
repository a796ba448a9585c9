package logger

import (
	"testing"

	"quiz-forge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGet_BeforeInitialize(t *testing.T) {
	assert.NotNil(t, Get())
}

func TestInitialize(t *testing.T) {
	t.Run("debug level", func(t *testing.T) {
		require.NoError(t, Initialize(config.LoggerConfig{Env: "development", Level: "debug"}))
		assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		require.NoError(t, Initialize(config.LoggerConfig{Env: "production"}))
		assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))
		assert.True(t, Get().Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("unknown level", func(t *testing.T) {
		assert.Error(t, Initialize(config.LoggerConfig{Level: "chatty"}))
	})
}
