package canvas

import (
	"slices"

	"github.com/zhubert/canvas/internal/logger"
)

// Edge selects which sides of a panel a resize moves.
type Edge int

const (
	EdgeRight Edge = 1 << iota
	EdgeBottom

	EdgeBottomRight = EdgeRight | EdgeBottom
)

// Scaler supplies the current zoom scale.
type Scaler interface {
	Scale() float64
}

type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureDrag
	gestureResize
)

type panelGesture struct {
	kind gestureKind
	id   PanelID
	edge Edge

	// startW and startH are the size when the resize began; accW and accH
	// are the accumulated content-space deltas since then.
	startW, startH float64
	accW, accH     float64
}

// Board owns the panels of one workspace: their rectangles, stacking order,
// the single maximized slot and keyboard focus.
type Board struct {
	panels map[PanelID]*Panel
	order  []PanelID // bottom to top
	links  []Link

	maximized PanelID
	focused   PanelID

	gesture panelGesture
	scaler  Scaler

	revision uint64
}

// NewBoard creates an empty board. Drag and resize deltas are divided by the
// scale reported by scaler.
func NewBoard(scaler Scaler) *Board {
	return &Board{
		panels: make(map[PanelID]*Panel),
		scaler: scaler,
	}
}

func (b *Board) scale() float64 {
	if b.scaler == nil {
		return 1
	}
	if s := b.scaler.Scale(); s > 0 {
		return s
	}
	return 1
}

func (b *Board) touch() {
	b.revision++
}

// Revision increments on every change to panel geometry, order or the
// maximized slot.
func (b *Board) Revision() uint64 {
	return b.revision
}

// Add places a panel on top of the stack. A panel with an existing ID
// replaces the old one.
func (b *Board) Add(p Panel) *Panel {
	p.normalize()
	if _, ok := b.panels[p.ID]; ok {
		b.order = slices.DeleteFunc(b.order, func(id PanelID) bool { return id == p.ID })
	}
	b.panels[p.ID] = &p
	b.order = append(b.order, p.ID)
	if b.focused == "" {
		b.focused = p.ID
	}
	b.touch()
	return &p
}

// Remove deletes a panel and any links touching it.
func (b *Board) Remove(id PanelID) {
	if _, ok := b.panels[id]; !ok {
		return
	}
	delete(b.panels, id)
	b.order = slices.DeleteFunc(b.order, func(o PanelID) bool { return o == id })
	b.links = slices.DeleteFunc(b.links, func(l Link) bool { return l.From == id || l.To == id })
	if b.maximized == id {
		b.maximized = ""
	}
	if b.focused == id {
		b.focused = ""
		if n := len(b.order); n > 0 {
			b.focused = b.order[n-1]
		}
	}
	if b.gesture.id == id {
		b.gesture = panelGesture{}
	}
	b.touch()
}

// Panel returns the panel with id, or nil.
func (b *Board) Panel(id PanelID) *Panel {
	return b.panels[id]
}

// Len returns the number of panels.
func (b *Board) Len() int {
	return len(b.panels)
}

// Order returns panel IDs from bottom to top.
func (b *Board) Order() []PanelID {
	return slices.Clone(b.order)
}

// Link adds a connector between two existing panels. Links to unknown panels
// are ignored.
func (b *Board) Link(l Link) bool {
	if b.panels[l.From] == nil || b.panels[l.To] == nil || l.From == l.To {
		logger.WithComponent("board").Debug("ignoring link", "from", l.From, "to", l.To)
		return false
	}
	b.links = append(b.links, l)
	b.touch()
	return true
}

// Links returns the connectors on the board.
func (b *Board) Links() []Link {
	return slices.Clone(b.links)
}

func (b *Board) lookup(op string, id PanelID) *Panel {
	p := b.panels[id]
	if p == nil {
		logger.WithComponent("board").Debug("unknown panel", "op", op, "id", id)
	}
	return p
}

// Raise moves a panel to the top of the stack and focuses it.
func (b *Board) Raise(id PanelID) {
	if b.lookup("raise", id) == nil {
		return
	}
	b.focused = id
	if n := len(b.order); n > 0 && b.order[n-1] == id {
		return
	}
	b.order = slices.DeleteFunc(b.order, func(o PanelID) bool { return o == id })
	b.order = append(b.order, id)
	b.touch()
}

// Focused returns the focused panel ID, or "".
func (b *Board) Focused() PanelID {
	return b.focused
}

// FocusNext moves focus to the next panel in stacking order, wrapping around.
// With reverse it moves to the previous one.
func (b *Board) FocusNext(reverse bool) PanelID {
	if len(b.order) == 0 {
		return ""
	}
	i := slices.Index(b.order, b.focused)
	switch {
	case i < 0:
		i = len(b.order) - 1
	case reverse:
		i = (i - 1 + len(b.order)) % len(b.order)
	default:
		i = (i + 1) % len(b.order)
	}
	b.focused = b.order[i]
	return b.focused
}

// StartDrag begins moving a panel.
func (b *Board) StartDrag(id PanelID) {
	if b.lookup("start-drag", id) == nil {
		return
	}
	b.Raise(id)
	b.gesture = panelGesture{kind: gestureDrag, id: id}
}

// OnDrag moves the panel by a screen-space delta divided by the current
// scale, so the panel tracks the pointer at any zoom level.
func (b *Board) OnDrag(id PanelID, dx, dy float64) {
	p := b.lookup("drag", id)
	if p == nil || (dx == 0 && dy == 0) {
		return
	}
	s := b.scale()
	p.X += dx / s
	p.Y += dy / s
	b.touch()
}

// EndDrag commits the final content-space position of the panel.
func (b *Board) EndDrag(id PanelID, x, y float64) {
	p := b.lookup("end-drag", id)
	if p == nil {
		return
	}
	p.X, p.Y = x, y
	if b.gesture.id == id {
		b.gesture = panelGesture{}
	}
	b.touch()
}

// StartResize begins resizing a panel from the given edges.
func (b *Board) StartResize(id PanelID, edge Edge) {
	p := b.lookup("start-resize", id)
	if p == nil {
		return
	}
	b.Raise(id)
	b.gesture = panelGesture{kind: gestureResize, id: id, edge: edge, startW: p.Width, startH: p.Height}
}

// OnResize grows or shrinks the panel by a screen-space delta divided by the
// current scale. The size never drops below the panel minimum. Without a
// matching StartResize the delta applies to both edges from the current size.
func (b *Board) OnResize(id PanelID, dx, dy float64) {
	p := b.lookup("resize", id)
	if p == nil {
		return
	}
	if b.gesture.kind != gestureResize || b.gesture.id != id {
		b.gesture = panelGesture{kind: gestureResize, id: id, edge: EdgeBottomRight, startW: p.Width, startH: p.Height}
	}
	s := b.scale()
	g := &b.gesture
	if g.edge&EdgeRight != 0 {
		g.accW += dx / s
		p.Width = max(p.MinWidth, g.startW+g.accW)
	}
	if g.edge&EdgeBottom != 0 {
		g.accH += dy / s
		p.Height = max(p.MinHeight, g.startH+g.accH)
	}
	b.touch()
}

// EndResize commits the final content-space size, floored at the minimum.
func (b *Board) EndResize(id PanelID, w, h float64) {
	p := b.lookup("end-resize", id)
	if p == nil {
		return
	}
	p.Width = max(p.MinWidth, w)
	p.Height = max(p.MinHeight, h)
	if b.gesture.id == id {
		b.gesture = panelGesture{}
	}
	b.touch()
}

// Dragging returns the panel being dragged, or "".
func (b *Board) Dragging() PanelID {
	if b.gesture.kind == gestureDrag {
		return b.gesture.id
	}
	return ""
}

// Resizing returns the panel being resized, or "".
func (b *Board) Resizing() PanelID {
	if b.gesture.kind == gestureResize {
		return b.gesture.id
	}
	return ""
}

// CancelGesture abandons any drag or resize in progress, leaving panels where
// they are.
func (b *Board) CancelGesture() {
	b.gesture = panelGesture{}
}

// ToggleMaximize clears the maximized slot if id holds it, otherwise puts id
// in the slot, replacing whatever was there.
func (b *Board) ToggleMaximize(id PanelID) {
	if b.lookup("toggle-maximize", id) == nil {
		return
	}
	if b.maximized == id {
		b.maximized = ""
	} else {
		b.maximized = id
		b.focused = id
	}
	b.gesture = panelGesture{}
	b.touch()
	logger.WithComponent("board").Debug("maximize toggled", "id", id, "maximized", b.maximized)
}

// Restore clears the maximized slot.
func (b *Board) Restore() {
	if b.maximized == "" {
		return
	}
	b.maximized = ""
	b.touch()
}

// Maximized returns the maximized panel ID, or "".
func (b *Board) Maximized() PanelID {
	return b.maximized
}

// IsMaximized reports whether any panel is maximized.
func (b *Board) IsMaximized() bool {
	return b.maximized != ""
}

// AppendTurn adds a conversation turn to a panel.
func (b *Board) AppendTurn(id PanelID, text string) {
	p := b.lookup("append-turn", id)
	if p == nil || text == "" {
		return
	}
	p.Turns = append(p.Turns, text)
	b.touch()
}
