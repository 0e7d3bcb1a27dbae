package app

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/workspace"
)

// branchGap is the horizontal gap between a panel and its branch, in
// logical pixels.
const branchGap = 100

// newPanelCascade offsets each new chat from the previous one so they do not
// stack exactly.
const newPanelCascade = 30

func (m *Model) canvasOptions() canvas.Options {
	return canvas.Options{
		Zoom: canvas.ZoomBounds{
			Min:  m.config.Zoom.Min,
			Max:  m.config.Zoom.Max,
			Step: m.config.Zoom.Step,
		},
		Modifier: input.ParseModifier(m.config.Modifier),
		Metrics:  cellMetrics(m.config),
	}
}

// panelFromSpec builds a board panel, filling unset sizes from the config.
func (m *Model) panelFromSpec(spec workspace.PanelSpec) canvas.Panel {
	p := canvas.Panel{
		ID:        canvas.PanelID(spec.ID),
		Title:     spec.Title,
		X:         spec.X,
		Y:         spec.Y,
		Width:     spec.Width,
		Height:    spec.Height,
		MinWidth:  m.config.Panel.MinWidth,
		MinHeight: m.config.Panel.MinHeight,
		Turns:     slices.Clone(spec.Turns),
	}
	if p.Width <= 0 {
		p.Width = m.config.Panel.Width
	}
	if p.Height <= 0 {
		p.Height = m.config.Panel.Height
	}
	return p
}

func (m *Model) buildCanvas(ws *workspace.Workspace) *canvas.Canvas {
	c := canvas.New(m.canvasOptions())
	for _, spec := range ws.Panels {
		c.Board().Add(m.panelFromSpec(spec))
	}
	for _, l := range ws.Links {
		c.Board().Link(canvas.Link{ID: l.ID, From: canvas.PanelID(l.From), To: canvas.PanelID(l.To)})
	}
	return c
}

// switchWorkspace unmounts the current canvas and mounts the one for id,
// building it on first use.
func (m *Model) switchWorkspace(id string) error {
	ws, err := m.store.Get(id)
	if err != nil {
		return err
	}
	if id == m.active {
		if c := m.activeCanvas(); c != nil && c.Mounted() {
			return nil
		}
	}

	if old := m.activeCanvas(); old != nil {
		old.Unmount()
	}
	c, ok := m.canvases[id]
	if !ok {
		c = m.buildCanvas(ws)
		m.canvases[id] = c
	}
	c.Mount(m.bus)
	m.active = id

	m.sidebar.SetActive(id)
	m.sidebar.Select(id)
	m.composer.Blur()
	m.syncCanvasRegion()
	m.syncComposer()

	logger.WithWorkspace(id).Info("workspace mounted", "name", ws.Name, "listeners", m.bus.Count())
	return nil
}

// refreshSidebar reloads the sidebar rows from the store.
func (m *Model) refreshSidebar() {
	entries := make([]ui.SidebarEntry, 0, m.store.Len())
	for _, ws := range m.store.List() {
		entries = append(entries, ui.SidebarEntry{ID: ws.ID, Name: ws.Name})
	}
	m.sidebar.SetWorkspaces(entries)
}

func (m *Model) createWorkspace(name string) (*workspace.Workspace, error) {
	ws, err := m.store.Create(name)
	if err != nil {
		return nil, err
	}
	m.refreshSidebar()
	if err := m.switchWorkspace(ws.ID); err != nil {
		return nil, err
	}
	return ws, nil
}

func (m *Model) renameWorkspace(id, name string) error {
	if err := m.store.Rename(id, name); err != nil {
		return err
	}
	m.refreshSidebar()
	return nil
}

// deleteWorkspace removes a workspace and its canvas. Deleting the active one
// opens its neighbour.
func (m *Model) deleteWorkspace(id string) error {
	idx := m.store.Index(id)
	if err := m.store.Delete(id); err != nil {
		return err
	}
	if c, ok := m.canvases[id]; ok {
		c.Unmount()
		for _, pid := range c.Board().Order() {
			m.canvasView.Forget(pid)
		}
		delete(m.canvases, id)
	}
	m.refreshSidebar()

	if id != m.active {
		return nil
	}
	m.active = ""
	list := m.store.List()
	if len(list) == 0 {
		m.sidebar.SetActive("")
		return nil
	}
	next := list[min(idx, len(list)-1)]
	return m.switchWorkspace(next.ID)
}

// activeWorkspaceName returns the name shown in the header.
func (m *Model) activeWorkspaceName() string {
	ws, err := m.store.Get(m.active)
	if err != nil {
		return ""
	}
	return ws.Name
}

// focusedPanel returns the focused panel of the active canvas, or nil.
func (m *Model) focusedPanel() *canvas.Panel {
	c := m.activeCanvas()
	if c == nil {
		return nil
	}
	return c.Board().Panel(c.Board().Focused())
}

// addChatPanel opens an empty chat in the middle of the visible canvas.
func (m *Model) addChatPanel() *canvas.Panel {
	c := m.activeCanvas()
	if c == nil {
		return nil
	}
	w, h := m.config.Panel.Width, m.config.Panel.Height
	center := c.Viewport().ContentPoint(c.Region().Center())
	shift := float64(c.Board().Len()%5) * newPanelCascade
	p := c.Board().Add(canvas.Panel{
		ID:        canvas.PanelID(uuid.New().String()),
		Title:     "New Chat",
		X:         center.X - w/2 + shift,
		Y:         center.Y - h/2 + shift,
		Width:     w,
		Height:    h,
		MinWidth:  m.config.Panel.MinWidth,
		MinHeight: m.config.Panel.MinHeight,
	})
	c.Board().Raise(p.ID)
	logger.WithWorkspace(m.active).Info("chat opened", "panel", p.ID)
	return p
}

// branchPanel copies the focused conversation into a new panel to its right
// and links the two.
func (m *Model) branchPanel() *canvas.Panel {
	c := m.activeCanvas()
	src := m.focusedPanel()
	if c == nil || src == nil {
		return nil
	}
	p := c.Board().Add(canvas.Panel{
		ID:        canvas.PanelID(uuid.New().String()),
		Title:     fmt.Sprintf("Branch of %s", src.Title),
		X:         src.X + src.Width + branchGap,
		Y:         src.Y,
		Width:     src.Width,
		Height:    src.Height,
		MinWidth:  src.MinWidth,
		MinHeight: src.MinHeight,
		Turns:     slices.Clone(src.Turns),
	})
	c.Board().Link(canvas.Link{ID: uuid.New().String(), From: src.ID, To: p.ID})
	c.Board().Raise(p.ID)
	logger.WithWorkspace(m.active).Info("chat branched", "from", src.ID, "to", p.ID)
	return p
}

// closePanel removes the focused panel.
func (m *Model) closePanel() bool {
	c := m.activeCanvas()
	p := m.focusedPanel()
	if c == nil || p == nil {
		return false
	}
	c.Board().Remove(p.ID)
	m.canvasView.Forget(p.ID)
	m.syncComposer()
	logger.WithWorkspace(m.active).Info("chat closed", "panel", p.ID)
	return true
}

// panByCells pans the view by whole cells, the keyboard fallback for a drag.
func (m *Model) panByCells(cols, rows int) {
	c := m.activeCanvas()
	if c == nil || c.Board().IsMaximized() {
		return
	}
	d := c.Metrics().DeltaToPixels(cols, rows)
	c.Viewport().Pan(d.X, d.Y)
}

// panelAt returns the panel under a pixel position on the canvas.
func (m *Model) panelAt(pos geom.Point) canvas.Hit {
	c := m.activeCanvas()
	if c == nil {
		return canvas.Hit{}
	}
	return c.HitTest(pos)
}
