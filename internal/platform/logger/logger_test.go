// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/parlo-app/parlo-api/internal/config"
	"github.com/parlo-app/parlo-api/internal/platform/logger"
)

// redirectStdout replaces os.Stdout with a pipe for the duration of fn and
// returns everything written to it. Setup writes its JSON log output to
// stdout, so tests capture it this way.
func redirectStdout(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	os.Stdout = w

	fn()

	os.Stdout = origStdout
	if err := w.Close(); err != nil {
		t.Logf("Failed to close stdout writer: %v", err)
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		t.Logf("Failed to read from stdout pipe: %v", err)
	}
	return buf.String()
}

// TestSetup is a basic test that ensures the Setup function works without errors
func TestSetup(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	cfg := config.ServerConfig{
		LogLevel: "info",
		Port:     8080,
	}

	var setupLogger *slog.Logger
	var setupErr error
	redirectStdout(t, func() {
		setupLogger, setupErr = logger.Setup(cfg)
	})

	if setupErr != nil {
		t.Fatalf("Setup failed: %v", setupErr)
	}
	if setupLogger == nil {
		t.Fatal("Setup returned a nil logger")
	}
}

// TestSetupEmitsJSON verifies the configured logger writes structured JSON
// lines to stdout.
func TestSetupEmitsJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	cfg := config.ServerConfig{
		LogLevel: "debug",
		Port:     8080,
	}

	output := redirectStdout(t, func() {
		setupLogger, err := logger.Setup(cfg)
		if err != nil {
			t.Errorf("Setup failed: %v", err)
			return
		}
		setupLogger.Info("logger ready", "component", "test")
	})

	if !strings.Contains(output, `"msg":"logger ready"`) {
		t.Errorf("Expected JSON log output with message, got: %s", output)
	}
	if !strings.Contains(output, `"component":"test"`) {
		t.Errorf("Expected JSON log output with attribute, got: %s", output)
	}
}

// TestInvalidLogLevelParsing tests that when an invalid log level is provided,
// the Setup function defaults to info level and logs a warning message to stderr.
func TestInvalidLogLevelParsing(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	// Save original stderr and redirect to capture warning messages
	origStderr := os.Stderr
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stderr = stderrW

	cfg := config.ServerConfig{
		LogLevel: "invalid_level", // This is not one of the valid levels
		Port:     8080,
	}

	var setupLogger *slog.Logger
	var setupErr error
	redirectStdout(t, func() {
		setupLogger, setupErr = logger.Setup(cfg)
	})

	// Restore stderr before assertions
	os.Stderr = origStderr
	if err := stderrW.Close(); err != nil {
		t.Logf("Failed to close stderr writer: %v", err)
	}

	stderrBuf := new(bytes.Buffer)
	if _, err := io.Copy(stderrBuf, stderrR); err != nil {
		t.Logf("Failed to read from stderr pipe: %v", err)
	}
	stderrOutput := stderrBuf.String()

	// Check that no error was returned
	if setupErr != nil {
		t.Fatalf("Setup returned an error for invalid log level: %v", setupErr)
	}

	// Check that the logger was created
	if setupLogger == nil {
		t.Fatal("Setup returned a nil logger for invalid log level")
	}

	// Check that a warning message was logged to stderr
	if !strings.Contains(stderrOutput, "invalid log level configured") {
		t.Errorf("Expected warning message about invalid log level, got: %s", stderrOutput)
	}

	// Check that the configured_level field was included in the warning
	if !strings.Contains(stderrOutput, "invalid_level") {
		t.Errorf("Expected warning to include the invalid level name, got: %s", stderrOutput)
	}

	// Check that the default_level field was included in the warning
	if !strings.Contains(stderrOutput, "info") {
		t.Errorf("Expected warning to include the default level, got: %s", stderrOutput)
	}
}

// TestValidLogLevelParsing tests that valid log levels are correctly parsed
// by the Setup function and that messages below the configured level are
// filtered out.
func TestValidLogLevelParsing(t *testing.T) {
	testCases := []struct {
		name        string
		logLevel    string
		filteredMsg string
		visibleMsg  string
		logFiltered func(l *slog.Logger, msg string)
		logVisible  func(l *slog.Logger, msg string)
	}{
		{
			name:        "debug level keeps debug messages",
			logLevel:    "debug",
			filteredMsg: "",
			visibleMsg:  "debug visible",
			logVisible:  func(l *slog.Logger, msg string) { l.Debug(msg) },
		},
		{
			name:        "info level filters debug messages",
			logLevel:    "info",
			filteredMsg: "debug hidden",
			visibleMsg:  "info visible",
			logFiltered: func(l *slog.Logger, msg string) { l.Debug(msg) },
			logVisible:  func(l *slog.Logger, msg string) { l.Info(msg) },
		},
		{
			name:        "warn level filters info messages",
			logLevel:    "warn",
			filteredMsg: "info hidden",
			visibleMsg:  "warn visible",
			logFiltered: func(l *slog.Logger, msg string) { l.Info(msg) },
			logVisible:  func(l *slog.Logger, msg string) { l.Warn(msg) },
		},
		{
			name:        "error level filters warn messages",
			logLevel:    "error",
			filteredMsg: "warn hidden",
			visibleMsg:  "error visible",
			logFiltered: func(l *slog.Logger, msg string) { l.Warn(msg) },
			logVisible:  func(l *slog.Logger, msg string) { l.Error(msg) },
		},
		{
			name:       "case insensitive - DEBUG",
			logLevel:   "DEBUG",
			visibleMsg: "debug visible",
			logVisible: func(l *slog.Logger, msg string) { l.Debug(msg) },
		},
		{
			name:       "case insensitive - Info",
			logLevel:   "Info",
			visibleMsg: "info visible",
			logVisible: func(l *slog.Logger, msg string) { l.Info(msg) },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer slog.SetDefault(slog.Default())

			cfg := config.ServerConfig{
				LogLevel: tc.logLevel,
				Port:     8080,
			}

			output := redirectStdout(t, func() {
				setupLogger, err := logger.Setup(cfg)
				if err != nil {
					t.Errorf("Setup returned an error for valid log level %q: %v", tc.logLevel, err)
					return
				}
				if tc.logFiltered != nil {
					tc.logFiltered(setupLogger, tc.filteredMsg)
				}
				tc.logVisible(setupLogger, tc.visibleMsg)
			})

			if tc.filteredMsg != "" && strings.Contains(output, tc.filteredMsg) {
				t.Errorf("Expected %q to be filtered at level %s, got: %s", tc.filteredMsg, tc.logLevel, output)
			}
			if !strings.Contains(output, tc.visibleMsg) {
				t.Errorf("Expected %q in output at level %s, got: %s", tc.visibleMsg, tc.logLevel, output)
			}
		})
	}
}
