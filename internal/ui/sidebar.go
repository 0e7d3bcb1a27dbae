package ui

import (
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/sahilm/fuzzy"

	"github.com/zhubert/canvas/internal/keys"
)

// Sidebar row layout, relative to the top of the sidebar.
const (
	sidebarButtonRow  = 0
	sidebarSectionRow = 2
	sidebarListRow    = 3
	// blank + separator + account below the list
	sidebarFooterRows = 2
)

const (
	newWorkspaceLabel = "+ New Workspace"
	sectionLabel      = "YOUR WORKSPACES"
	accountLabel      = "◉ My Account"
	activeMarker      = "● "
)

// SidebarEntry is one workspace row.
type SidebarEntry struct {
	ID   string
	Name string
}

// SidebarHitKind identifies what a sidebar row holds.
type SidebarHitKind int

const (
	SidebarHitNone SidebarHitKind = iota
	SidebarHitNewWorkspace
	SidebarHitWorkspace
	SidebarHitAccount
)

// SidebarHit is the result of mapping a sidebar row to its content.
type SidebarHit struct {
	Kind SidebarHitKind
	ID   string
}

// SidebarSelectMsg asks the app to open a workspace.
type SidebarSelectMsg struct {
	ID string
}

// displayRow is an entry plus the byte offsets of its search matches.
type displayRow struct {
	entry   SidebarEntry
	matched []int
}

// Sidebar renders the workspace list. Its width excludes the resize
// handle, which HandleView draws.
type Sidebar struct {
	entries      []SidebarEntry
	filtered     []displayRow
	selectedIdx  int
	activeID     string
	width        int
	height       int
	focused      bool
	scrollOffset int

	searchMode  bool
	searchInput textinput.Model
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = SidebarSearchCharLimit
	ti.Prompt = "/ "

	return &Sidebar{searchInput: ti}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.searchInput.SetWidth(max(s.width-4, 1))
	s.ensureVisible()
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetWorkspaces replaces the listed workspaces, keeping the selection on the
// same workspace when it still exists.
func (s *Sidebar) SetWorkspaces(entries []SidebarEntry) {
	selected := s.SelectedID()
	s.entries = slices.Clone(entries)
	if s.searchMode {
		s.applyFilter(s.searchInput.Value())
	}
	if selected == "" || !s.Select(selected) {
		s.selectedIdx = min(s.selectedIdx, max(len(s.rows())-1, 0))
	}
	s.ensureVisible()
}

// Len returns the number of listed workspaces.
func (s *Sidebar) Len() int {
	return len(s.entries)
}

// SetActive marks the workspace shown on the canvas.
func (s *Sidebar) SetActive(id string) {
	s.activeID = id
}

// ActiveID returns the workspace shown on the canvas.
func (s *Sidebar) ActiveID() string {
	return s.activeID
}

// SelectedID returns the highlighted workspace, or "" when the list is empty.
func (s *Sidebar) SelectedID() string {
	rows := s.rows()
	if s.selectedIdx < 0 || s.selectedIdx >= len(rows) {
		return ""
	}
	return rows[s.selectedIdx].entry.ID
}

// Select highlights a workspace by ID and reports whether it is listed.
func (s *Sidebar) Select(id string) bool {
	for i, r := range s.rows() {
		if r.entry.ID == id {
			s.selectedIdx = i
			s.ensureVisible()
			return true
		}
	}
	return false
}

// MoveSelection moves the highlight by delta rows, clamped to the list.
func (s *Sidebar) MoveSelection(delta int) {
	n := len(s.rows())
	if n == 0 {
		s.selectedIdx = 0
		return
	}
	s.selectedIdx = min(max(s.selectedIdx+delta, 0), n-1)
	s.ensureVisible()
}

// ScrollBy scrolls the list without moving the selection.
func (s *Sidebar) ScrollBy(delta int) {
	s.scrollOffset = min(max(s.scrollOffset+delta, 0), s.maxScroll())
}

// ScrollOffset returns the index of the first visible workspace row.
func (s *Sidebar) ScrollOffset() int {
	return s.scrollOffset
}

// EnterSearchMode activates search mode
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.applyFilter("")
	return s.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter, keeping the
// highlighted workspace selected.
func (s *Sidebar) ExitSearchMode() {
	selected := s.SelectedID()
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.filtered = nil
	if !s.Select(selected) {
		s.selectedIdx = 0
	}
	s.ensureVisible()
}

// IsSearchMode returns whether search mode is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// SearchQuery returns the current search query
func (s *Sidebar) SearchQuery() string {
	return s.searchInput.Value()
}

// applyFilter ranks the workspaces by fuzzy match against query.
func (s *Sidebar) applyFilter(query string) {
	if query == "" {
		s.filtered = nil
	} else {
		names := make([]string, len(s.entries))
		for i, e := range s.entries {
			names[i] = e.Name
		}
		matches := fuzzy.Find(query, names)
		s.filtered = make([]displayRow, 0, len(matches))
		for _, m := range matches {
			s.filtered = append(s.filtered, displayRow{entry: s.entries[m.Index], matched: m.MatchedIndexes})
		}
	}
	s.selectedIdx = 0
	s.scrollOffset = 0
}

// rows returns the workspaces to display (filtered or all).
func (s *Sidebar) rows() []displayRow {
	if s.searchMode && s.filtered != nil {
		return s.filtered
	}
	out := make([]displayRow, len(s.entries))
	for i, e := range s.entries {
		out[i] = displayRow{entry: e}
	}
	return out
}

func (s *Sidebar) visibleRows() int {
	return max(s.height-sidebarListRow-sidebarFooterRows, 0)
}

func (s *Sidebar) maxScroll() int {
	return max(len(s.rows())-s.visibleRows(), 0)
}

func (s *Sidebar) ensureVisible() {
	visible := s.visibleRows()
	switch {
	case visible == 0:
		s.scrollOffset = 0
		return
	case s.selectedIdx < s.scrollOffset:
		s.scrollOffset = s.selectedIdx
	case s.selectedIdx >= s.scrollOffset+visible:
		s.scrollOffset = s.selectedIdx - visible + 1
	}
	s.scrollOffset = min(max(s.scrollOffset, 0), s.maxScroll())
}

// Update handles key presses while the sidebar has focus. Enter produces a
// SidebarSelectMsg for the highlighted workspace.
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	if s.searchMode {
		switch key.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			id := s.SelectedID()
			s.ExitSearchMode()
			return s, s.selectCmd(id)
		case keys.Up:
			s.MoveSelection(-1)
			return s, nil
		case keys.Down:
			s.MoveSelection(1)
			return s, nil
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(msg)
			s.applyFilter(s.searchInput.Value())
			return s, cmd
		}
	}

	switch key.String() {
	case keys.Up, "k":
		s.MoveSelection(-1)
	case keys.Down, "j":
		s.MoveSelection(1)
	case keys.Enter:
		return s, s.selectCmd(s.SelectedID())
	}
	return s, nil
}

func (s *Sidebar) selectCmd(id string) tea.Cmd {
	if id == "" {
		return nil
	}
	return func() tea.Msg { return SidebarSelectMsg{ID: id} }
}

// HitTest maps a row, relative to the sidebar top, to what is drawn there.
func (s *Sidebar) HitTest(row int) SidebarHit {
	switch {
	case row == sidebarButtonRow:
		return SidebarHit{Kind: SidebarHitNewWorkspace}
	case row == s.height-1 && s.height > sidebarListRow:
		return SidebarHit{Kind: SidebarHitAccount}
	case row >= sidebarListRow && row < sidebarListRow+s.visibleRows():
		idx := s.scrollOffset + row - sidebarListRow
		rows := s.rows()
		if idx < len(rows) {
			return SidebarHit{Kind: SidebarHitWorkspace, ID: rows[idx].entry.ID}
		}
	}
	return SidebarHit{Kind: SidebarHitNone}
}

// View renders the sidebar as exactly height lines of width columns.
func (s *Sidebar) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	inner := max(s.width-2, 0)
	lines := make([]string, s.height)
	blank := strings.Repeat(" ", s.width)
	for i := range lines {
		lines[i] = blank
	}

	lines[sidebarButtonRow] = SidebarButtonStyle.Render(fit(newWorkspaceLabel, inner))

	if s.height > sidebarSectionRow {
		if s.searchMode {
			lines[sidebarSectionRow] = " " + fitANSI(s.searchInput.View(), s.width-1)
		} else {
			lines[sidebarSectionRow] = SidebarSectionStyle.Render(fit(sectionLabel, inner))
		}
	}

	rows := s.rows()
	visible := s.visibleRows()
	for i := 0; i < visible; i++ {
		idx := s.scrollOffset + i
		if idx >= len(rows) {
			break
		}
		lines[sidebarListRow+i] = s.renderRow(rows[idx], idx == s.selectedIdx, inner)
	}
	if s.searchMode && len(rows) == 0 && visible > 0 {
		lines[sidebarListRow] = SidebarAccountStyle.Render(fit("no matches", inner))
	}

	if s.height > sidebarListRow {
		lines[s.height-2] = SidebarHandleStyle.Render(strings.Repeat("─", s.width))
		lines[s.height-1] = SidebarAccountStyle.Render(fit(accountLabel, inner))
	}
	return strings.Join(lines, "\n")
}

func (s *Sidebar) renderRow(r displayRow, selected bool, inner int) string {
	marker := "  "
	if r.entry.ID == s.activeID {
		marker = activeMarker
	}
	nameWidth := max(inner-uniseg.StringWidth(marker), 0)
	name := truncateGraphemes(r.entry.Name, nameWidth)

	switch {
	case selected && s.focused:
		return SidebarSelectedStyle.Render(fit(marker+name, inner))
	case r.entry.ID == s.activeID:
		return SidebarActiveStyle.Render(fit(marker+name, inner))
	case len(r.matched) > 0:
		pad := strings.Repeat(" ", max(nameWidth-uniseg.StringWidth(name), 0))
		return SidebarItemStyle.Render(marker + highlightMatches(name, r.matched) + pad)
	default:
		return SidebarItemStyle.Render(fit(marker+name, inner))
	}
}

// HandleView renders the resize handle column. hot marks an active resize.
func HandleView(height int, hot bool) string {
	if height <= 0 {
		return ""
	}
	style := SidebarHandleStyle
	glyph := "│"
	if hot {
		style = SidebarHandleHot
		glyph = "┃"
	}
	return style.Render(strings.TrimSuffix(strings.Repeat(glyph+"\n", height), "\n"))
}

// truncateGraphemes cuts s to at most width columns without splitting a
// grapheme cluster, ending with an ellipsis when anything was dropped.
func truncateGraphemes(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + "…"
}

// fit truncates s to width columns and pads it with spaces.
func fit(s string, width int) string {
	s = truncateGraphemes(s, width)
	return s + strings.Repeat(" ", max(width-uniseg.StringWidth(s), 0))
}

// highlightMatches styles the grapheme clusters containing matched bytes.
func highlightMatches(s string, matched []int) string {
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	offset := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		matchedCluster := false
		for i := offset; i < offset+len(cluster); i++ {
			if hit[i] {
				matchedCluster = true
				break
			}
		}
		if matchedCluster {
			b.WriteString(SidebarMatchStyle.Render(cluster))
		} else {
			b.WriteString(cluster)
		}
		offset += len(cluster)
	}
	return b.String()
}

// fitANSI truncates a styled string to width columns and pads it.
func fitANSI(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
