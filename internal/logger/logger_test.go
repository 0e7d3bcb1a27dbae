package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesToPath(t *testing.T) {
	logPath := setupTestLogger(t)

	Info("hello %s", "world")

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
	if !strings.Contains(readLog(t, logPath), "hello world") {
		t.Error("log file should contain the formatted message")
	}
}

func TestDebug_RespectsLevel(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-marker")
	SetDebug(true)
	Debug("visible-debug-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be suppressed at info level")
	}
	if !strings.Contains(content, "visible-debug-marker") {
		t.Error("debug message should be written once debug is enabled")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("viewport").Info("zoomed", "scale", 1.5)

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=viewport") {
		t.Errorf("expected component attribute in log, got:\n%s", content)
	}
	if !strings.Contains(content, "scale=1.5") {
		t.Errorf("expected scale attribute in log, got:\n%s", content)
	}
}

func TestWithWorkspace(t *testing.T) {
	logPath := setupTestLogger(t)

	WithWorkspace("ws-1").Warn("mounted")

	if !strings.Contains(readLog(t, logPath), "workspaceID=ws-1") {
		t.Error("expected workspaceID attribute in log")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset_AllowsReinit(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "log1.log")
	second := filepath.Join(dir, "log2.log")

	Reset()
	if err := Init(first); err != nil {
		t.Fatalf("Init(first): %v", err)
	}
	Info("message to log1")

	Reset()
	if err := Init(second); err != nil {
		t.Fatalf("Init(second): %v", err)
	}
	Info("message to log2")
	Reset()

	if c := readLog(t, first); !strings.Contains(c, "message to log1") || strings.Contains(c, "message to log2") {
		t.Errorf("log1 has unexpected content:\n%s", c)
	}
	if c := readLog(t, second); !strings.Contains(c, "message to log2") || strings.Contains(c, "message to log1") {
		t.Errorf("log2 has unexpected content:\n%s", c)
	}
}

func TestClose_StopsLogging(t *testing.T) {
	setupTestLogger(t)
	Close()

	// Must not panic after close, and must not reopen the default file.
	Info("after close")
	WithComponent("app").Info("after close")
	if got := Path(); got != "" {
		t.Errorf("Path() after Close = %q, want empty", got)
	}
}
