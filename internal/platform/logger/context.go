package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the private key type for loggers stored in a context.
// Using an unexported type prevents collisions with keys from other packages.
type loggerContextKey struct{}

// WithLogger returns a new context carrying the provided logger.
// Handlers and middleware use this to propagate a request-scoped logger
// (for example, one annotated with a trace ID) down the call chain.
// Panics if logger is nil: storing a nil logger would turn every
// downstream FromContext call into a latent nil dereference.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext retrieves the logger stored in the context.
// If the context carries no logger, the process-wide default logger is
// returned, so the result is always safe to use.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in the context, falling
// back to the provided default when the context carries none. Components
// that hold their own component-scoped logger use this so request-scoped
// loggers win when present.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.Default()
}
