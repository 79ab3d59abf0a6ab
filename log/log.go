// Package log provides a lightweight, thread-safe logging facility using
// structured logging (slog) with JSON output. It offers a singleton logger
// instance with a configurable level via environment variable, and
// convenience methods for fatal errors in paths where continuing would
// leave the store in an inconsistent state (e.g., an audit entry that
// cannot be marshaled).
package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var logger *slog.Logger
var loggerMutex sync.Mutex

// Log returns a thread-safe singleton slog.Logger configured for JSON
// output at the level given by Level(). Subsequent calls return the same
// instance.
func Log() *slog.Logger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if logger != nil {
		return logger
	}

	opts := &slog.HandlerOptions{
		Level: Level(),
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)

	logger = slog.New(handler)
	return logger
}

// Fatal logs msg as a structured error record through Log(), then
// terminates via fatalExit.
func Fatal(msg string) {
	Log().Error(msg)
	fatalExit("Fatal", []any{msg})
}

// FatalF logs a printf-formatted message as a structured error record
// through Log(), then terminates via fatalExit.
func FatalF(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	Log().Error(msg)
	fatalExit("FatalF", args)
}

// FatalLn logs args, space-separated, as a structured error record
// through Log(), then terminates via fatalExit.
func FatalLn(args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	Log().Error(msg)
	fatalExit("FatalLn", args)
}

// Level returns the logging level, read from the PPH_LOG_LEVEL
// environment variable.
//
// Valid values (case-insensitive): "DEBUG", "INFO", "WARN", "ERROR". An
// unset or unrecognized value defaults to slog.LevelWarn.
func Level() slog.Level {
	level := os.Getenv("PPH_LOG_LEVEL")
	level = strings.ToUpper(level)

	switch level {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
