package logging

import (
	"io"
	"log/slog"
)

// Setup configures the structured debug logger. verbose lowers the
// level to debug; jsonOutput switches the handler to JSON.
func Setup(verbose, jsonOutput bool, w io.Writer) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// Debug logs a debug message with structured attributes.
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs an info message with structured attributes.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs a warning message with structured attributes.
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs an error message with structured attributes.
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
