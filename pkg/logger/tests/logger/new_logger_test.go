package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goblognest/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("development environment with different log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "invalid", ""} {
			t.Run("level="+level, func(t *testing.T) {
				log, err := logger.NewLogger(logger.Development, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	})

	t.Run("production environment with different log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "invalid", ""} {
			t.Run("level="+level, func(t *testing.T) {
				log, err := logger.NewLogger(logger.Production, level)
				require.NoError(t, err)
				require.NotNil(t, log)
			})
		}
	})

	t.Run("unrecognized level falls back to the environment default", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "not-a-level")
		require.NoError(t, err)
		require.NotNil(t, log)

		assert.NotPanics(t, func() {
			log.Info(context.Background(), "message at the default level")
		})
	})

	t.Run("basic logging functionality", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		require.NotNil(t, log)

		ctx := logger.NewRequestIDContext(context.Background(), "test-request-id")

		assert.NotPanics(t, func() {
			log.Debug(ctx, "debug message")
			log.Info(ctx, "info message")
			log.Warn(ctx, "warn message")
			log.Error(ctx, "error message")
		})
	})

	t.Run("with returns a child logger", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)

		child := log.With(zap.String("component", "test"))
		require.NotNil(t, child)
		assert.NotPanics(t, func() {
			child.Info(context.Background(), "child logger message")
		})
	})
}
