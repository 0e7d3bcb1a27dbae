package app

import (
	"fmt"
	"testing"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/ui"
)

func TestShowFlashForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ui.FlashType
		wantText string
	}{
		{
			name:     "invalid input warns",
			err:      errors.WorkspaceNameInvalid("  "),
			wantType: ui.FlashWarning,
			wantText: `invalid workspace name "  "`,
		},
		{
			name:     "missing workspace warns",
			err:      errors.WorkspaceNotFound("ws-99"),
			wantType: ui.FlashWarning,
			wantText: "workspace ws-99 not found",
		},
		{
			name:     "io failure is an error",
			err:      errors.ConfigSaveFailed("/tmp/c.yaml", fmt.Errorf("disk full")),
			wantType: ui.FlashError,
			wantText: "failed to save config to /tmp/c.yaml",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("boom"),
			wantType: ui.FlashError,
			wantText: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(testConfig(), testWidth, testHeight)
			if cmd := m.ShowFlashForError(tt.err); cmd == nil {
				t.Error("expected a tick command")
			}
			flash := m.footer.Flash()
			if flash == nil {
				t.Fatal("expected a flash")
			}
			if flash.Type != tt.wantType {
				t.Errorf("type = %v, want %v", flash.Type, tt.wantType)
			}
			if flash.Text != tt.wantText {
				t.Errorf("text = %q, want %q", flash.Text, tt.wantText)
			}
		})
	}
}

func TestFlashHelpers(t *testing.T) {
	tests := []struct {
		show func(*Model, string) any
		want ui.FlashType
	}{
		{func(m *Model, s string) any { return m.ShowFlashInfo(s) }, ui.FlashInfo},
		{func(m *Model, s string) any { return m.ShowFlashSuccess(s) }, ui.FlashSuccess},
		{func(m *Model, s string) any { return m.ShowFlashWarning(s) }, ui.FlashWarning},
		{func(m *Model, s string) any { return m.ShowFlashError(s) }, ui.FlashError},
	}
	for _, tt := range tests {
		m := testModel(testConfig())
		tt.show(m, "hi")
		if got := m.footer.Flash(); got == nil || got.Type != tt.want || got.Text != "hi" {
			t.Errorf("flash = %+v, want type %v", got, tt.want)
		}
	}
}

func TestFlashExpiresOnTick(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	m.footer.SetFlashWithDuration("short", ui.FlashInfo, 0)

	m.Update(ui.FlashTickMsg{})
	if m.footer.HasFlash() {
		t.Error("expired flash should be cleared on tick")
	}
}
