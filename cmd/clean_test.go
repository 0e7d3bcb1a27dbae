package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
		{"yes with spaces", "  yes  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, io.Discard, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	// Test with empty reader (simulates EOF)
	reader := strings.NewReader("")
	result := confirm(reader, io.Discard, "Test?")
	if result != false {
		t.Errorf("confirm(EOF) = %v, want false", result)
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	// Test with a reader that returns an error
	reader := &errorReader{}
	result := confirm(reader, io.Discard, "Test?")
	if result != false {
		t.Errorf("confirm(error) = %v, want false", result)
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

// withCleanPaths points clean at files under a temp dir.
func withCleanPaths(t *testing.T) (logPath, cfgPath string) {
	t.Helper()
	dir := t.TempDir()
	logPath = filepath.Join(dir, "debug.log")
	cfgPath = filepath.Join(dir, "config.yaml")

	origLog, origCfg := cleanLogPath, configPath
	origYes, origConfig := skipConfirm, cleanConfig
	t.Cleanup(func() {
		cleanLogPath, configPath = origLog, origCfg
		skipConfirm, cleanConfig = origYes, origConfig
	})
	cleanLogPath, configPath = logPath, cfgPath
	return logPath, cfgPath
}

func TestClean_NothingToClean(t *testing.T) {
	withCleanPaths(t)

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Nothing to clean.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestClean_RemovesLogAfterConfirm(t *testing.T) {
	logPath, cfgPath := withCleanPaths(t)
	for _, p := range []string{logPath, cfgPath} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("y\n"), &out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Error("log file should be removed")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Error("config should stay without --config")
	}
	if !strings.Contains(out.String(), "Removed 1 file(s).") {
		t.Errorf("output = %q", out.String())
	}
}

func TestClean_Aborted(t *testing.T) {
	logPath, _ := withCleanPaths(t)
	if err := os.WriteFile(logPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("n\n"), &out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Error("log file should stay when aborted")
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestClean_ConfigWithYes(t *testing.T) {
	_, cfgPath := withCleanPaths(t)
	if err := os.WriteFile(cfgPath, []byte("theme: light\n"), 0644); err != nil {
		t.Fatal(err)
	}
	skipConfirm = true
	cleanConfig = true

	if err := runCleanWithReader(strings.NewReader(""), io.Discard); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
		t.Error("config should be removed with --config")
	}
}
