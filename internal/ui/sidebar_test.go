package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/keys"
)

func testEntries(n int) []SidebarEntry {
	entries := make([]SidebarEntry, n)
	for i := range entries {
		entries[i] = SidebarEntry{ID: fmt.Sprintf("ws-%d", i+1), Name: fmt.Sprintf("Workspace %d", i+1)}
	}
	return entries
}

func newTestSidebar(n, height int) *Sidebar {
	s := NewSidebar()
	s.SetSize(30, height)
	s.SetWorkspaces(testEntries(n))
	s.SetFocused(true)
	return s
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func TestSidebar_Navigation(t *testing.T) {
	s := newTestSidebar(3, 20)

	if got := s.SelectedID(); got != "ws-1" {
		t.Errorf("initial selection = %q, want ws-1", got)
	}
	s.Update(keyPress("j"))
	s.Update(keyPress(keys.Down))
	if got := s.SelectedID(); got != "ws-3" {
		t.Errorf("after two downs selection = %q, want ws-3", got)
	}
	s.Update(keyPress(keys.Down))
	if got := s.SelectedID(); got != "ws-3" {
		t.Errorf("selection should clamp at the end, got %q", got)
	}
	s.Update(keyPress("k"))
	if got := s.SelectedID(); got != "ws-2" {
		t.Errorf("after up selection = %q, want ws-2", got)
	}
}

func TestSidebar_UnfocusedIgnoresKeys(t *testing.T) {
	s := newTestSidebar(3, 20)
	s.SetFocused(false)

	s.Update(keyPress("j"))
	if got := s.SelectedID(); got != "ws-1" {
		t.Errorf("unfocused sidebar moved selection to %q", got)
	}
}

func TestSidebar_EnterSelects(t *testing.T) {
	s := newTestSidebar(3, 20)
	s.MoveSelection(1)

	_, cmd := s.Update(keyPress(keys.Enter))
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	msg, ok := cmd().(SidebarSelectMsg)
	if !ok || msg.ID != "ws-2" {
		t.Errorf("enter produced %#v, want SidebarSelectMsg{ws-2}", msg)
	}
}

func TestSidebar_FuzzySearch(t *testing.T) {
	s := NewSidebar()
	s.SetSize(30, 20)
	s.SetFocused(true)
	s.SetWorkspaces([]SidebarEntry{
		{ID: "a", Name: "Marketing Project"},
		{ID: "b", Name: "Development Team"},
		{ID: "c", Name: "Design System"},
	})

	s.EnterSearchMode()
	for _, r := range "dvt" {
		s.Update(keyPress(string(r)))
	}
	if got := s.SearchQuery(); got != "dvt" {
		t.Fatalf("query = %q, want dvt", got)
	}
	rows := s.rows()
	if len(rows) != 1 || rows[0].entry.ID != "b" {
		t.Fatalf("filtered rows = %+v, want only Development Team", rows)
	}
	if len(rows[0].matched) != 3 {
		t.Errorf("expected 3 matched indexes, got %v", rows[0].matched)
	}

	_, cmd := s.Update(keyPress(keys.Enter))
	if s.IsSearchMode() {
		t.Error("enter should leave search mode")
	}
	if msg := cmd().(SidebarSelectMsg); msg.ID != "b" {
		t.Errorf("search enter selected %q, want b", msg.ID)
	}
	if s.SelectedID() != "b" {
		t.Error("selection should stay on the chosen workspace after search")
	}
	if len(s.rows()) != 3 {
		t.Error("filter should be cleared after search")
	}
}

func TestSidebar_SearchEscape(t *testing.T) {
	s := newTestSidebar(5, 20)
	s.EnterSearchMode()
	s.Update(keyPress("9"))
	if len(s.rows()) != 0 {
		t.Errorf("no workspace matches 9, got %d rows", len(s.rows()))
	}
	if !strings.Contains(stripANSI(s.View()), "no matches") {
		t.Error("empty filter should render a no-matches row")
	}

	s.Update(keyPress(keys.Escape))
	if s.IsSearchMode() || len(s.rows()) != 5 {
		t.Error("escape should exit search and restore all rows")
	}
}

func TestSidebar_ScrollKeepsSelectionVisible(t *testing.T) {
	// height 10 leaves 5 list rows
	s := newTestSidebar(14, 10)

	s.MoveSelection(7)
	if s.ScrollOffset() != 3 {
		t.Errorf("scroll offset = %d, want 3", s.ScrollOffset())
	}
	s.MoveSelection(-7)
	if s.ScrollOffset() != 0 {
		t.Errorf("scroll offset = %d, want 0", s.ScrollOffset())
	}

	s.ScrollBy(100)
	if s.ScrollOffset() != 9 {
		t.Errorf("scroll should clamp to 9, got %d", s.ScrollOffset())
	}
	s.ScrollBy(-100)
	if s.ScrollOffset() != 0 {
		t.Errorf("scroll should clamp to 0, got %d", s.ScrollOffset())
	}
}

func TestSidebar_HitTest(t *testing.T) {
	s := newTestSidebar(14, 10)
	s.ScrollBy(2)

	tests := []struct {
		row  int
		kind SidebarHitKind
		id   string
	}{
		{0, SidebarHitNewWorkspace, ""},
		{1, SidebarHitNone, ""},
		{2, SidebarHitNone, ""},
		{3, SidebarHitWorkspace, "ws-3"},
		{7, SidebarHitWorkspace, "ws-7"},
		{8, SidebarHitNone, ""},
		{9, SidebarHitAccount, ""},
	}
	for _, tt := range tests {
		hit := s.HitTest(tt.row)
		if hit.Kind != tt.kind || hit.ID != tt.id {
			t.Errorf("HitTest(%d) = %+v, want {%d %q}", tt.row, hit, tt.kind, tt.id)
		}
	}
}

func TestSidebar_View(t *testing.T) {
	s := newTestSidebar(3, 12)
	s.SetActive("ws-2")

	view := s.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 12 {
		t.Fatalf("view has %d lines, want 12", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
	plain := stripANSI(view)
	for _, want := range []string{"+ New Workspace", "YOUR WORKSPACES", "● Workspace 2", "My Account"} {
		if !strings.Contains(plain, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSidebar_SetWorkspacesKeepsSelection(t *testing.T) {
	s := newTestSidebar(5, 20)
	s.Select("ws-4")

	s.SetWorkspaces(testEntries(5)[2:])
	if got := s.SelectedID(); got != "ws-4" {
		t.Errorf("selection = %q, want ws-4", got)
	}
	s.SetWorkspaces(testEntries(2))
	if got := s.SelectedID(); got == "" {
		t.Error("selection should fall back to a listed workspace")
	}
}

func TestTruncateGraphemes(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"Development Team", 8, "Develop…"},
		{"日本語の名前", 5, "日本…"},
		{"👩‍💻 dev", 3, "👩‍💻…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncateGraphemes(tt.in, tt.width); got != tt.want {
			t.Errorf("truncateGraphemes(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestHandleView(t *testing.T) {
	if got := strings.Count(stripANSI(HandleView(4, false)), "│"); got != 4 {
		t.Errorf("idle handle has %d glyphs, want 4", got)
	}
	if got := strings.Count(stripANSI(HandleView(4, true)), "┃"); got != 4 {
		t.Errorf("hot handle has %d glyphs, want 4", got)
	}
}
