package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/layout"
	"github.com/zhubert/canvas/internal/ui"
)

// wheelScrollLines is how far one wheel tick scrolls a panel body.
const wheelScrollLines = 3

// handleMouse translates a mouse message and routes it. Presses are routed
// by screen region; everything then goes through the input bus, where any
// gesture in progress picks up the moves and the release. A wheel tick no
// listener consumed scrolls whatever is under the pointer. While a modal is
// open only releases reach the bus, so no gesture outlives its pointer-up.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := m.translator.Translate(msg)
	if !ok {
		return nil
	}
	if m.modal.IsVisible() {
		if ev.Kind != input.PointerUp {
			return nil
		}
		m.bus.Dispatch(ev)
		return m.syncCursor()
	}
	mouse := msg.Mouse()
	region := m.ctx.Region(mouse.X, mouse.Y)
	before := m.sidebarWidth.Width()

	var cmd tea.Cmd
	switch ev.Kind {
	case input.PointerDown:
		cmd = m.pointerDown(ev, region, mouse)
	case input.PointerMove:
		m.handleHot = region == ui.RegionHandle
	}

	m.bus.Dispatch(ev)

	if ev.Kind == input.Wheel && !ev.Consumed() {
		m.scrollAt(ev, region)
	}
	if m.sidebarWidth.Width() != before {
		m.updateSizes()
	}
	return tea.Batch(cmd, m.syncCursor())
}

func (m *Model) pointerDown(ev *input.Event, region ui.Region, mouse tea.Mouse) tea.Cmd {
	switch region {
	case ui.RegionHandle:
		m.sidebarWidth.BeginResize()
		ev.Consume()

	case ui.RegionSidebar:
		m.setFocus(FocusSidebar)
		return m.sidebarClick(mouse.Y - m.ctx.SidebarRect().Min.Y)

	case ui.RegionCanvas:
		m.setFocus(FocusCanvas)
		c := m.activeCanvas()
		if c == nil {
			return nil
		}
		hit := c.PointerDown(ev)
		m.syncComposer()
		if hit.Panel != "" && hit.Zone == canvas.ZoneBody && m.inComposer(hit.Panel, mouse.Y) {
			return m.composer.Focus()
		}
		if m.composer.Focused() && hit.Panel == "" {
			m.composer.Blur()
		}
	}
	return nil
}

// sidebarClick acts on the sidebar row at row, relative to the sidebar top.
func (m *Model) sidebarClick(row int) tea.Cmd {
	hit := m.sidebar.HitTest(row)
	switch hit.Kind {
	case ui.SidebarHitNewWorkspace:
		_, cmd := shortcutNewWorkspace(m)
		return cmd
	case ui.SidebarHitWorkspace:
		m.sidebar.Select(hit.ID)
		if err := m.switchWorkspace(hit.ID); err != nil {
			return m.ShowFlashForError(err)
		}
	case ui.SidebarHitAccount:
		return m.ShowFlashInfo("Account settings are not available yet")
	}
	return nil
}

// inComposer reports whether row falls on the composer of a maximized panel.
func (m *Model) inComposer(id canvas.PanelID, row int) bool {
	c := m.activeCanvas()
	if c == nil || c.Board().Maximized() != id {
		return false
	}
	r, ok := c.PlacedCells(id)
	if !ok || r.Dy()-2 <= ui.ComposerHeight {
		return false
	}
	bottom := r.Max.Y - 1
	return row >= bottom-ui.ComposerHeight && row < bottom
}

// scrollAt scrolls the sidebar list or the panel body under the pointer.
func (m *Model) scrollAt(ev *input.Event, region ui.Region) {
	switch region {
	case ui.RegionSidebar:
		if ev.WheelUp {
			m.sidebar.ScrollBy(-1)
		} else {
			m.sidebar.ScrollBy(1)
		}
	case ui.RegionCanvas:
		hit := m.panelAt(ev.Pos)
		if hit.Panel == "" {
			return
		}
		if ev.WheelUp {
			m.canvasView.Scroll(hit.Panel, wheelScrollLines)
		} else {
			m.canvasView.Scroll(hit.Panel, -wheelScrollLines)
		}
	}
}

// pointerShape picks the affordance: an active sidebar resize wins, then any
// canvas gesture or held modifier, then hovering the handle.
func (m *Model) pointerShape() string {
	if m.sidebarWidth.Resizing() {
		return m.sidebarWidth.Cursor()
	}
	if c := m.activeCanvas(); c != nil {
		if shape := c.Cursor(); shape != canvas.CursorDefault {
			return shape
		}
	}
	if m.handleHot {
		return layout.CursorColResize
	}
	return canvas.CursorDefault
}

// cancelGestures ends any pointer gesture in progress on the canvas or the
// sidebar handle.
func (m *Model) cancelGestures() {
	if c := m.activeCanvas(); c != nil {
		c.CancelGesture()
	}
	m.sidebarWidth.EndResize()
}

// releaseModifier forgets the pan modifier on every canvas. Key releases are
// not delivered while the terminal is unfocused.
func (m *Model) releaseModifier() {
	m.cancelGestures()
	for _, c := range m.canvases {
		c.Viewport().ReleaseModifier()
	}
}

// syncCursor sends the pointer shape (OSC 22) when it changed.
func (m *Model) syncCursor() tea.Cmd {
	shape := m.pointerShape()
	if shape == m.cursor {
		return nil
	}
	m.cursor = shape
	return tea.Raw(ansi.SetPointerShape(shape))
}

// Cursor returns the pointer shape last sent to the terminal.
func (m *Model) Cursor() string {
	return m.cursor
}
