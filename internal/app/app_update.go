package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/clipboard"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/keys"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/ui/modals"
)

// noReply stands in for the assistant turn when a message is sent while the
// previous one is still unanswered, so turns keep alternating.
const noReply = "…"

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyboardEnhancementsMsg:
		m.keyReleases = msg.SupportsEventTypes()
		logger.WithComponent("app").Debug("keyboard enhancements", "keyReleases", m.keyReleases)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		m.releaseModifier()
		return m, m.syncCursor()

	case tea.KeyReleaseMsg:
		if ev, ok := m.translator.Translate(msg); ok {
			m.bus.Dispatch(ev)
		}
		return m, m.syncCursor()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.PasteMsg:
		if m.composer.Focused() {
			m.composer.InsertString(msg.Content)
		}
		return m, nil

	case ui.ComposerSendMsg:
		return m.handleComposerSend(msg)

	case ui.SidebarSelectMsg:
		return m.openWorkspace(msg.ID)

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ConfigReloadedMsg:
		return m, m.applyConfig(msg)
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	return m, nil
}

// handleKeyPress routes a key press. Every press is first offered to the
// input bus so the canvas sees modifier keys; then the modal, the sidebar
// search, the composer and finally the shortcut registry get it, in that
// order.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if ev, ok := m.translator.Translate(msg); ok {
		m.bus.Dispatch(ev)
		if ev.Modifier != 0 {
			return m, m.syncCursor()
		}
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.sidebar.IsSearchMode() {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	}

	if m.composer.Focused() {
		switch key {
		case keys.Escape:
			m.composer.Blur()
			return m, nil
		case keys.CtrlV:
			return m, m.pasteFromClipboard()
		}
		return m, m.composer.Update(msg)
	}

	if m.focus == FocusCanvas {
		if dx, dy, ok := panKey(key); ok {
			m.panByCells(dx, dy)
			return m, nil
		}
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	}
	return m, nil
}

// Keyboard pan step, in cells.
const (
	panStepCols = 4
	panStepRows = 2
)

// panKey maps ctrl/alt+arrow to a pan in cells. Panning right moves the
// content left.
func panKey(key string) (dx, dy int, ok bool) {
	switch key {
	case keys.CtrlLeft, keys.AltLeft:
		return panStepCols, 0, true
	case keys.CtrlRight, keys.AltRight:
		return -panStepCols, 0, true
	case keys.CtrlUp, keys.AltUp:
		return 0, panStepRows, true
	case keys.CtrlDown, keys.AltDown:
		return 0, -panStepRows, true
	}
	return 0, 0, false
}

// pasteFromClipboard inserts the system clipboard into the composer. Bracketed
// paste arrives as tea.PasteMsg instead; this covers terminals without it.
func (m *Model) pasteFromClipboard() tea.Cmd {
	text, err := clipboard.ReadText()
	if err != nil {
		return m.ShowFlashForError(err)
	}
	if text != "" {
		m.composer.InsertString(text)
	}
	return nil
}

// handleComposerSend appends the sent text as a user turn.
func (m *Model) handleComposerSend(msg ui.ComposerSendMsg) (tea.Model, tea.Cmd) {
	c := m.activeCanvas()
	if c == nil {
		return m, nil
	}
	p := c.Board().Panel(msg.Panel)
	if p == nil {
		return m, nil
	}
	if canvas.RoleOf(len(p.Turns)) != canvas.RoleUser {
		c.Board().AppendTurn(p.ID, noReply)
	}
	c.Board().AppendTurn(p.ID, msg.Text)
	m.canvasView.Scroll(p.ID, -m.canvasView.ScrollOffset(p.ID))
	logger.WithWorkspace(m.active).Debug("message sent", "panel", p.ID, "turns", len(p.Turns))
	return m, nil
}

// openWorkspace switches the canvas to a workspace picked in the sidebar.
func (m *Model) openWorkspace(id string) (tea.Model, tea.Cmd) {
	if err := m.switchWorkspace(id); err != nil {
		return m, m.ShowFlashForError(err)
	}
	m.setFocus(FocusCanvas)
	return m, nil
}

// applyConfig takes a reloaded config. Tuning changes apply to every canvas,
// not only the mounted one; an invalid file keeps the current settings.
func (m *Model) applyConfig(msg ConfigReloadedMsg) tea.Cmd {
	log := logger.WithComponent("app")
	if msg.Err != nil {
		log.Warn("config reload failed", "error", msg.Err)
		return m.ShowFlashForError(msg.Err)
	}
	cfg := msg.Config
	if err := cfg.Validate(); err != nil {
		log.Warn("reloaded config is invalid", "error", err)
		return m.ShowFlashForError(err)
	}
	m.config = cfg

	var cmd tea.Cmd
	if err := ui.SetThemeByName(cfg.GetTheme()); err != nil {
		cmd = m.ShowFlashForError(err)
	}

	opts := m.canvasOptions()
	for _, c := range m.canvases {
		c.Viewport().SetModifier(opts.Modifier)
		c.Viewport().SetZoomBounds(opts.Zoom)
		c.SetMetrics(opts.Metrics)
	}
	m.sidebarWidth.SetBounds(sidebarBounds(cfg))
	m.translator.SetMetrics(opts.Metrics)
	m.ctx.Metrics = opts.Metrics
	m.footer.SetContext(m.footerMode(), input.ModifierName(opts.Modifier))
	m.updateSizes()

	log.Info("config reloaded", "theme", cfg.GetTheme(), "modifier", cfg.Modifier)
	if cmd != nil {
		return cmd
	}
	return m.ShowFlashInfo("Settings reloaded")
}
