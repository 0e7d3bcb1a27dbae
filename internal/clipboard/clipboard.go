// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error
)

// Init initializes the clipboard. It is safe to call multiple times; a
// failure is remembered so headless sessions do not retry on every copy.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return initErr
	}
	initialized = true

	if err := clipboard.Init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		initErr = errors.ClipboardUnavailable(err)
		return initErr
	}
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText puts text on the system clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	if err := Init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}
