package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/parlo-app/parlo-api/internal/config"
)

// parseLevel maps a configured log level string to its slog level. The
// second return reports whether the string named a known level.
func parseLevel(configured string) (slog.Level, bool) {
	switch strings.ToLower(configured) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup builds the application logger from configuration: structured JSON
// on stdout at the configured level. The logger is also installed as the
// slog default so package-level slog calls share it.
//
// An unknown level falls back to info with a warning rather than failing
// startup.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, known := parseLevel(cfg.LogLevel)
	if !known {
		// The JSON logger does not exist yet, so warn through a plain
		// stderr handler.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger, nil
}
