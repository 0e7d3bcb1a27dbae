package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/canvas/internal/ui"
)

// panHint is shown at the bottom of the canvas while the pan modifier is held.
const panHint = "drag to pan, wheel to zoom"

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.KeyboardEnhancements.ReportEventTypes = true
	v.ReportFocus = true
	v.WindowTitle = "canvas"

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}
	v.SetContent(m.render())
	return v
}

// RenderToString renders one frame without a running program, for snapshots
// and tests.
func (m *Model) RenderToString() string {
	return m.render()
}

// render composites every layer onto one screen buffer: header, sidebar and
// handle, the canvas, the footer, then the modal on top.
func (m *Model) render() string {
	m.updateFooterContext()
	m.header.SetWorkspace(m.activeWorkspaceName(), m.panelCount())

	ctx := m.ctx
	scr := uv.NewScreenBuffer(ctx.TerminalWidth, ctx.TerminalHeight)

	uv.NewStyledString(m.header.View()).Draw(scr, uv.Rect(0, 0, ctx.TerminalWidth, ctx.HeaderHeight))

	side := ctx.SidebarRect()
	uv.NewStyledString(m.sidebar.View()).Draw(scr, side)
	hot := m.handleHot || m.sidebarWidth.Resizing()
	uv.NewStyledString(ui.HandleView(ctx.ContentHeight, hot)).
		Draw(scr, uv.Rect(ctx.HandleCol(), ctx.HeaderHeight, ui.HandleWidth, ctx.ContentHeight))

	area := ctx.CanvasRect()
	if c := m.activeCanvas(); c != nil {
		opts := ui.CanvasViewOptions{
			Focused:  m.focus == FocusCanvas,
			Composer: m.composer,
		}
		if c.Viewport().ModifierHeld() && !c.Board().IsMaximized() {
			opts.Hint = panHint
		}
		m.canvasView.Draw(scr, area, c, opts)
	}

	footerY := ctx.TerminalHeight - ctx.FooterHeight
	uv.NewStyledString(m.footer.View()).Draw(scr, uv.Rect(0, footerY, ctx.TerminalWidth, ctx.FooterHeight))

	if m.modal.IsVisible() {
		box := m.modal.Box(ctx.TerminalHeight)
		w, h := lipgloss.Width(box), lipgloss.Height(box)
		x := max((ctx.TerminalWidth-w)/2, 0)
		y := max((ctx.TerminalHeight-h)/2, 0)
		uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, w, h))
	}

	return scr.Render()
}

func (m *Model) panelCount() int {
	if c := m.activeCanvas(); c != nil {
		return c.Board().Len()
	}
	return 0
}

// footerMode picks the footer bindings for the current focus.
func (m *Model) footerMode() ui.FooterMode {
	switch {
	case m.sidebar.IsSearchMode():
		return ui.ModeSearch
	case m.composer.Focused():
		return ui.ModeComposer
	case m.focus == FocusSidebar:
		return ui.ModeSidebar
	case m.activeCanvas() != nil && m.activeCanvas().Board().IsMaximized():
		return ui.ModeMaximized
	default:
		return ui.ModeCanvas
	}
}

// updateFooterContext refreshes the footer bindings before a frame.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(m.footerMode(), m.config.Modifier)
}
