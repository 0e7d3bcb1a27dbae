package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/clipboard"
	"github.com/zhubert/canvas/internal/keys"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "n", "ctrl+up")
	DisplayKey      string                              // Display name in help; defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	RequiresSidebar bool                                // Sidebar must have focus
	RequiresCanvas  bool                                // Canvas must have focus
	RequiresPanel   bool                                // A panel must be focused on the canvas
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryCanvas     = "Canvas"
	CategoryChats      = "Chats"
	CategoryWorkspaces = "Workspaces"
	CategoryNavigation = "Navigation"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryChats,
	CategoryCanvas,
	CategoryWorkspaces,
	CategoryNavigation,
	CategoryGeneral,
}

func notMaximized(m *Model) bool {
	c := m.activeCanvas()
	return c != nil && !c.Board().IsMaximized()
}

func maximized(m *Model) bool {
	c := m.activeCanvas()
	return c != nil && c.Board().IsMaximized()
}

func hasCanvas(m *Model) bool {
	return m.activeCanvas() != nil
}

func hasSelection(m *Model) bool {
	return m.sidebar.SelectedID() != ""
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Several entries may share a key; the first whose guards pass runs.
var ShortcutRegistry = []Shortcut{
	// Chats
	{
		Key:            "n",
		Description:    "New chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		Handler:        shortcutNewChat,
		Condition:      notMaximized,
	},
	{
		Key:            "f",
		Description:    "Maximize or restore chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutToggleMaximize,
	},
	{
		Key:            keys.Enter,
		DisplayKey:     "Enter",
		Description:    "Open chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutToggleMaximize,
		Condition:      notMaximized,
	},
	{
		Key:            keys.Escape,
		DisplayKey:     "Esc",
		Description:    "Restore maximized chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		Handler:        shortcutRestore,
		Condition:      maximized,
	},
	{
		Key:            "i",
		Description:    "Write a message",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutCompose,
	},
	{
		Key:            "b",
		Description:    "Branch chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutBranch,
		Condition:      notMaximized,
	},
	{
		Key:            "x",
		Description:    "Close chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutClosePanel,
	},
	{
		Key:            "y",
		Description:    "Copy chat",
		Category:       CategoryChats,
		RequiresCanvas: true,
		RequiresPanel:  true,
		Handler:        shortcutCopy,
	},

	// Canvas
	{
		Key:            keys.Tab,
		DisplayKey:     "Tab",
		Description:    "Next chat",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutNextPanel,
		Condition:      notMaximized,
	},
	{
		Key:            keys.ShiftTab,
		DisplayKey:     "Shift+Tab",
		Description:    "Previous chat",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutPrevPanel,
		Condition:      notMaximized,
	},
	{
		Key:            "+",
		Description:    "Zoom in",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutZoomIn,
		Condition:      notMaximized,
	},
	{
		Key:            "=",
		Description:    "Zoom in",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutZoomIn,
		Condition:      notMaximized,
	},
	{
		Key:            "-",
		Description:    "Zoom out",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutZoomOut,
		Condition:      notMaximized,
	},
	{
		Key:            "0",
		Description:    "Reset view",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutResetView,
		Condition:      notMaximized,
	},
	{
		Key:            "s",
		Description:    "Focus sidebar",
		Category:       CategoryCanvas,
		RequiresCanvas: true,
		Handler:        shortcutFocusSidebar,
	},

	// Workspaces
	{
		Key:             "n",
		Description:     "New workspace",
		Category:        CategoryWorkspaces,
		RequiresSidebar: true,
		Handler:         shortcutNewWorkspace,
	},
	{
		Key:             "r",
		Description:     "Rename workspace",
		Category:        CategoryWorkspaces,
		RequiresSidebar: true,
		Handler:         shortcutRenameWorkspace,
		Condition:       hasSelection,
	},
	{
		Key:             "d",
		Description:     "Delete workspace",
		Category:        CategoryWorkspaces,
		RequiresSidebar: true,
		Handler:         shortcutDeleteWorkspace,
		Condition:       hasSelection,
	},
	{
		Key:             keys.Tab,
		DisplayKey:      "Tab",
		Description:     "Back to canvas",
		Category:        CategoryWorkspaces,
		RequiresSidebar: true,
		Handler:         shortcutFocusCanvas,
		Condition:       hasCanvas,
	},
	{
		Key:             keys.Escape,
		DisplayKey:      "Esc",
		Description:     "Back to canvas",
		Category:        CategoryWorkspaces,
		RequiresSidebar: true,
		Handler:         shortcutFocusCanvas,
		Condition:       hasCanvas,
	},

	// Navigation
	{
		Key:         "/",
		Description: "Search workspaces",
		Category:    CategoryNavigation,
		Handler:     shortcutSearch,
		Condition:   func(m *Model) bool { return !m.sidebar.IsSearchMode() },
	},
	{
		Key:         "[",
		Description: "Narrow sidebar",
		Category:    CategoryNavigation,
		Handler:     shortcutNarrowSidebar,
	},
	{
		Key:         "]",
		Description: "Widen sidebar",
		Category:    CategoryNavigation,
		Handler:     shortcutWidenSidebar,
	},

	// General
	// Note: "?" (help) is handled specially in ExecuteShortcut to avoid init cycle
	{
		Key:         "t",
		Description: "Next theme",
		Category:    CategoryGeneral,
		Handler:     shortcutTheme,
	},
	{
		Key:         "q",
		Description: "Quit application",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// displayOnlyShortcuts are shown in help but not executable from the help
// modal. The pan and zoom entries name the configured modifier.
func displayOnlyShortcuts(modifier string) []Shortcut {
	return []Shortcut{
		{DisplayKey: "Drag title", Description: "Move chat", Category: CategoryChats},
		{DisplayKey: "Drag " + ui.GlyphResize, Description: "Resize chat", Category: CategoryChats},
		{DisplayKey: "Click " + ui.GlyphMaximize, Description: "Maximize chat", Category: CategoryChats},
		{DisplayKey: modifier + "+drag", Description: "Pan canvas", Category: CategoryCanvas},
		{DisplayKey: modifier + "+wheel", Description: "Zoom canvas", Category: CategoryCanvas},
		{DisplayKey: modifier + "/alt+arrows", Description: "Pan canvas", Category: CategoryCanvas},
		{DisplayKey: "↑/↓ or j/k", Description: "Navigate workspace list", Category: CategoryWorkspaces},
		{DisplayKey: "Drag │", Description: "Resize sidebar", Category: CategoryNavigation},
	}
}

// shortcutGuardsPass checks a shortcut's guards against the current state.
func (m *Model) shortcutGuardsPass(s Shortcut) bool {
	if s.RequiresSidebar && m.focus != FocusSidebar {
		return false
	}
	if s.RequiresCanvas && m.focus != FocusCanvas {
		return false
	}
	if s.RequiresPanel && m.focusedPanel() == nil {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if a shortcut ran, (model, nil, false) if none
// matched or every match failed its guards.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Keys go to the search input while it is open
	if m.sidebar.IsSearchMode() {
		return m, nil, false
	}

	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key || !m.shortcutGuardsPass(s) {
			continue
		}
		logger.WithComponent("shortcuts").Debug("executing", "key", key, "focus", m.focus.String())
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections groups the shortcuts usable right now by category.
func (m *Model) getApplicableHelpSections(registry, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	seen := make(map[string]bool)

	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		// "+" and "=" share a description; show it once
		id := s.Category + "\x00" + s.Description
		if seen[id] && s.Key != "" {
			return
		}
		seen[id] = true
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	for _, s := range registry {
		if m.shortcutGuardsPass(s) {
			add(s)
		}
	}
	for _, s := range displayOnly {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// helpKeyToShortcutKey maps a key shown in the help modal back to the key
// that triggers it. Display-only entries map to "".
func helpKeyToShortcutKey(displayKey string) string {
	all := append(ShortcutRegistry, helpShortcut)
	for _, s := range all {
		if s.DisplayKey == displayKey || (s.DisplayKey == "" && s.Key == displayKey) {
			return s.Key
		}
	}
	return ""
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNewChat(m *Model) (tea.Model, tea.Cmd) {
	m.addChatPanel()
	return m, nil
}

func shortcutToggleMaximize(m *Model) (tea.Model, tea.Cmd) {
	c := m.activeCanvas()
	c.ToggleMaximize(c.Board().Focused())
	m.syncComposer()
	return m, nil
}

func shortcutRestore(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Restore()
	m.syncComposer()
	return m, nil
}

// shortcutCompose maximizes the focused chat if needed and focuses its
// composer.
func shortcutCompose(m *Model) (tea.Model, tea.Cmd) {
	c := m.activeCanvas()
	id := c.Board().Focused()
	if c.Board().Maximized() != id {
		c.ToggleMaximize(id)
	}
	m.syncComposer()
	return m, m.composer.Focus()
}

func shortcutBranch(m *Model) (tea.Model, tea.Cmd) {
	p := m.branchPanel()
	if p == nil {
		return m, nil
	}
	return m, m.ShowFlashInfo("Branched into " + p.Title)
}

func shortcutClosePanel(m *Model) (tea.Model, tea.Cmd) {
	m.closePanel()
	return m, nil
}

// shortcutCopy puts the focused chat on the clipboard. The terminal copy
// (OSC 52) always goes out; the system clipboard is best effort.
func shortcutCopy(m *Model) (tea.Model, tea.Cmd) {
	text := m.focusedPanel().Transcript()
	if text == "" {
		return m, m.ShowFlashInfo("Nothing to copy")
	}
	if err := clipboard.WriteText(text); err != nil {
		logger.WithComponent("shortcuts").Debug("system clipboard unavailable", "error", err)
	}
	return m, tea.Batch(tea.SetClipboard(text), m.ShowFlashSuccess("Copied chat to clipboard"))
}

func shortcutNextPanel(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Board().FocusNext(false)
	return m, nil
}

func shortcutPrevPanel(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Board().FocusNext(true)
	return m, nil
}

func shortcutZoomIn(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Viewport().Zoom(true)
	return m, nil
}

func shortcutZoomOut(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Viewport().Zoom(false)
	return m, nil
}

func shortcutResetView(m *Model) (tea.Model, tea.Cmd) {
	m.activeCanvas().Viewport().Reset()
	return m, nil
}

func shortcutFocusSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.setFocus(FocusSidebar)
	return m, nil
}

func shortcutFocusCanvas(m *Model) (tea.Model, tea.Cmd) {
	m.setFocus(FocusCanvas)
	return m, nil
}

func shortcutNewWorkspace(m *Model) (tea.Model, tea.Cmd) {
	m.showModal(modals.NewNewWorkspaceState())
	return m, nil
}

func shortcutRenameWorkspace(m *Model) (tea.Model, tea.Cmd) {
	ws, err := m.store.Get(m.sidebar.SelectedID())
	if err != nil {
		return m, m.ShowFlashForError(err)
	}
	m.showModal(modals.NewRenameWorkspaceState(ws.ID, ws.Name))
	return m, nil
}

func shortcutDeleteWorkspace(m *Model) (tea.Model, tea.Cmd) {
	ws, err := m.store.Get(m.sidebar.SelectedID())
	if err != nil {
		return m, m.ShowFlashForError(err)
	}
	if m.store.Len() <= 1 {
		return m, m.ShowFlashWarning("Cannot delete the only workspace")
	}
	m.showModal(modals.NewConfirmDeleteState(ws.ID, ws.Name))
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	m.setFocus(FocusSidebar)
	return m, m.sidebar.EnterSearchMode()
}

func shortcutNarrowSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.sidebarWidth.Nudge(-m.ctx.Metrics.Width)
	m.updateSizes()
	return m, nil
}

func shortcutWidenSidebar(m *Model) (tea.Model, tea.Cmd) {
	m.sidebarWidth.Nudge(m.ctx.Metrics.Width)
	m.updateSizes()
	return m, nil
}

// shortcutTheme switches to the next theme and remembers it in the config
// file when there is one.
func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	name := ui.NextTheme()
	ui.SetTheme(name)
	m.config.SetTheme(string(name))
	if m.config.Path() != "" {
		if err := m.config.Save(); err != nil {
			logger.WithComponent("shortcuts").Error("failed to save theme", "error", err)
			return m, m.ShowFlashForError(err)
		}
	}
	return m, m.ShowFlashInfo("Theme: " + ui.CurrentTheme().Name)
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, displayOnlyShortcuts(m.config.Modifier))
	m.showModal(modals.NewHelpState(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
