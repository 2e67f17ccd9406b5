// Package logging provides the structured logger shared by the swipe engine
// and the demo front ends.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logPath string
	logFile *os.File

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	output io.Writer = os.Stderr
)

// SetLogPath sets the file the logger also writes to. Parent directories are
// created on first use. It has no effect once Logger was called.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	logPath = path
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()

	if logPath == "" {
		return output
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return output
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Can't open the log file, keep console only
		return output
	}
	logFile = f
	return io.MultiWriter(output, f)
}

// Logger returns the process wide JSON logger
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		handler := slog.NewJSONHandler(writer(), &slog.HandlerOptions{
			Level: levelVar,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLogLevel sets the minimum level of the logger
func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

// Level returns the current minimum level
func Level() slog.Level {
	return levelVar.Level()
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level.
// Anything else is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

// SetRawLogLevel parses and sets the level, e.g. from a flag or a preference
func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLevel(raw))
}

// Close closes the log file if one was opened
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
