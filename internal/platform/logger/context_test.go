package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/parlo-app/parlo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.Default()
	customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFromContextOrDefaultNilDefault(t *testing.T) {
	// A nil default falls through to the process-wide default logger.
	result := logger.FromContextOrDefault(context.Background(), nil)
	assert.Equal(t, slog.Default(), result)
}

func TestFromContext(t *testing.T) {
	t.Run("context_with_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("context_without_logger_returns_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("nil_context_returns_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(nil)) //nolint:staticcheck
	})
}

func TestWithLogger(t *testing.T) {
	t.Run("valid_logger", func(t *testing.T) {
		customLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), customLogger)

		// Verify the logger was stored in the context
		retrievedLogger := logger.FromContext(ctx)
		assert.Equal(t, customLogger, retrievedLogger)
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}
