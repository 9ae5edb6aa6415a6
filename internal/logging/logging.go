package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel overrides the level chosen by flags
const EnvLogLevel = "LABELFLAIR_LOG_LEVEL"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing text-format logs to w.
// verbose selects debug level; otherwise only warnings and errors are shown.
func Init(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if env, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		level = env
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same writer
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
