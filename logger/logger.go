// Package logger wraps log/slog with the handler selection used by the server.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var defaultLogger *slog.Logger

// Options controls how Init builds the default logger
type Options struct {
	// Development selects the human-readable text handler
	Development bool
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// FilePath, when set, sends output to a rotated file instead of stdout
	FilePath string
}

// Init builds the default logger and installs it as slog's default
func Init(opts Options) *slog.Logger {
	defaultLogger = New(opts)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// New builds a logger without touching the package default
func New(opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}

	var output io.Writer = os.Stdout
	if opts.FilePath != "" {
		output = &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    100,
			MaxAge:     30,
			MaxBackups: 3,
			Compress:   true,
			LocalTime:  true,
		}
	}

	return newWithWriter(output, opts.Development, handlerOpts)
}

func newWithWriter(w io.Writer, development bool, opts *slog.HandlerOptions) *slog.Logger {
	if development {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// ParseLevel maps a level name to a slog level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default returns the default logger instance
func Default() *slog.Logger {
	if defaultLogger == nil {
		// Fallback to text handler if not initialized
		defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return defaultLogger
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Default().With(args...)
}

// Debug logs at debug level
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs at info level
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs at warn level
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs at error level
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}
