// Package logger writes structured logs to a file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr while it runs.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when nothing calls Init before the first log line.
const DefaultLogPath = "/tmp/canvas-debug.log"

// sink is the open log file and the handler writing to it.
type sink struct {
	path string
	file *os.File
	log  *slog.Logger
}

var (
	mu    sync.Mutex
	level = new(slog.LevelVar)
	out   *sink
	// closed stops the lazy default from reopening a file after Close.
	closed bool
)

func open(path string) (*sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	s := &sink{
		path: path,
		file: f,
		log:  slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})),
	}
	s.log.Info("Logger initialized", "path", path)
	return s, nil
}

// Init opens the log at path. Later calls are no-ops until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		return nil
	}
	s, err := open(path)
	if err != nil {
		return err
	}
	out, closed = s, false
	return nil
}

// current returns the active logger, opening DefaultLogPath on first use.
// Callers hold mu.
func current() *slog.Logger {
	if out == nil && !closed {
		s, err := open(DefaultLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			closed = true
			return nil
		}
		out = s
	}
	if out == nil {
		return nil
	}
	return out.log
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Path returns the path of the active log file, or "" before initialization.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		return ""
	}
	return out.path
}

func logf(lvl slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil || !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Debug writes a printf-style message at debug level.
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes a printf-style message at info level.
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a printf-style message at warn level.
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes a printf-style message at error level.
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// Close closes the log file. Logging after Close is discarded.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		out.file.Close()
		out = nil
	}
	closed = true
}

// Reset closes the log and forgets the level, allowing a fresh Init.
// Tests use it between cases.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		out.file.Close()
		out = nil
	}
	closed = false
	level.Set(slog.LevelInfo)
}

func with(attr slog.Attr) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.With(attr)
}

// WithComponent returns a logger tagged with component.
//
//	log := logger.WithComponent("viewport")
//	log.Debug("zoom", "scale", v.Scale())
func WithComponent(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithWorkspace returns a logger tagged with a workspace ID.
func WithWorkspace(workspaceID string) *slog.Logger {
	return with(slog.String("workspaceID", workspaceID))
}
