// Package canvas implements the pannable, zoomable surface that hosts chat
// panels: the viewport transform, the panel board with its single maximized
// slot, and the connector layer.
//
// A Canvas ties the three together for one workspace. It routes pointer
// presses to the right gesture, holds gesture listeners on the input bus only
// while a gesture runs, and resolves panel rectangles and connector endpoints
// in one post-layout pass per frame.
package canvas

import (
	"image"
	"slices"

	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/logger"
)

// MaximizeGlyphWidth is the width in cells of the maximize control drawn at
// the right end of a panel title bar, just inside the border.
const MaximizeGlyphWidth = 3

// Pointer affordances for panel gestures.
const (
	CursorMove   = "move"
	CursorResize = "nwse-resize"
)

// Zone is the part of a panel a pointer position falls in.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneTitle
	ZoneMaximize
	ZoneResize
	ZoneBody
)

// Hit is the result of a hit test.
type Hit struct {
	Panel PanelID
	Zone  Zone
	Edge  Edge
}

// Options configures a canvas.
type Options struct {
	Zoom     ZoomBounds
	Modifier input.Modifiers
	Metrics  geom.CellMetrics
}

// DefaultOptions returns the stock canvas options.
func DefaultOptions() Options {
	return Options{
		Zoom:     DefaultZoomBounds(),
		Modifier: input.ModCtrl,
		Metrics:  geom.DefaultCellMetrics,
	}
}

type layoutKey struct {
	board   uint64
	view    uint64
	region  geom.Rect
	metrics geom.CellMetrics
}

// Canvas is the pan/zoom surface of one workspace.
type Canvas struct {
	view  *Viewport
	board *Board

	metrics geom.CellMetrics
	region  geom.Rect

	bus     *input.Bus
	gesture input.Scope

	placed     map[PanelID]geom.Rect
	connectors connectorLayer
	laidOut    bool
	key        layoutKey
}

// New creates an empty canvas.
func New(opts Options) *Canvas {
	if opts.Metrics.Width <= 0 || opts.Metrics.Height <= 0 {
		opts.Metrics = geom.DefaultCellMetrics
	}
	view := NewViewport(opts.Zoom, opts.Modifier)
	board := NewBoard(view)
	view.SetBlocked(board.IsMaximized)
	return &Canvas{
		view:    view,
		board:   board,
		metrics: opts.Metrics,
		placed:  make(map[PanelID]geom.Rect),
	}
}

// Viewport returns the pan/zoom controller.
func (c *Canvas) Viewport() *Viewport {
	return c.view
}

// Board returns the panel board.
func (c *Canvas) Board() *Board {
	return c.board
}

// Metrics returns the cell size in logical pixels.
func (c *Canvas) Metrics() geom.CellMetrics {
	return c.metrics
}

// SetMetrics changes the cell size.
func (c *Canvas) SetMetrics(m geom.CellMetrics) {
	if m.Width > 0 && m.Height > 0 {
		c.metrics = m
	}
}

// SetRegion sets the screen-space area of the canvas in pixels and moves the
// pivot to its center.
func (c *Canvas) SetRegion(r geom.Rect) {
	c.region = r
	c.view.SetPivot(r.Center())
}

// Region returns the screen-space area of the canvas.
func (c *Canvas) Region() geom.Rect {
	return c.region
}

// Mount attaches the canvas to bus.
func (c *Canvas) Mount(bus *input.Bus) {
	if c.bus != nil {
		return
	}
	c.bus = bus
	c.view.Mount(bus)
}

// Unmount releases every listener the canvas and its viewport hold and
// abandons any gesture in progress.
func (c *Canvas) Unmount() {
	c.gesture.Release()
	c.board.CancelGesture()
	c.view.Unmount()
	c.bus = nil
}

// CancelGesture abandons any panel drag, panel resize or pan in progress and
// releases their listeners. The board keeps the geometry reached so far.
func (c *Canvas) CancelGesture() {
	c.gesture.Release()
	c.board.CancelGesture()
	if c.view.panning {
		c.view.endPan()
	}
}

// ToggleMaximize toggles id in the maximized slot, ending any gesture first.
func (c *Canvas) ToggleMaximize(id PanelID) {
	c.CancelGesture()
	c.board.ToggleMaximize(id)
}

// Restore clears the maximized slot, ending any gesture first.
func (c *Canvas) Restore() {
	c.CancelGesture()
	c.board.Restore()
}

// Mounted reports whether the canvas is attached to a bus.
func (c *Canvas) Mounted() bool {
	return c.bus != nil
}

// Cursor returns the pointer affordance for the current gesture state.
func (c *Canvas) Cursor() string {
	switch {
	case c.board.Dragging() != "":
		return CursorMove
	case c.board.Resizing() != "":
		return CursorResize
	default:
		return c.view.Cursor()
	}
}

// OverlayRect is the screen rectangle of a maximized panel: the canvas region
// inset by one cell on every side.
func (c *Canvas) OverlayRect() geom.Rect {
	r := c.region
	return geom.Rect{
		X: r.X + c.metrics.Width,
		Y: r.Y + c.metrics.Height,
		W: max(0, r.W-2*c.metrics.Width),
		H: max(0, r.H-2*c.metrics.Height),
	}
}

// Layout is the post-layout hook. It places every panel in screen space and
// recomputes connector endpoints, but only when the board, the transform, the
// region or the cell size changed since the last pass. It reports whether
// anything was recomputed.
func (c *Canvas) Layout() bool {
	key := layoutKey{
		board:   c.board.Revision(),
		view:    c.view.Revision(),
		region:  c.region,
		metrics: c.metrics,
	}
	if c.laidOut && key == c.key {
		return false
	}
	c.key = key
	c.laidOut = true

	clear(c.placed)
	if id := c.board.Maximized(); id != "" {
		c.placed[id] = c.OverlayRect()
		c.connectors.clear()
		return true
	}
	for _, id := range c.board.order {
		c.placed[id] = c.view.ScreenRect(c.board.panels[id].Rect())
	}
	c.connectors.recompute(c.board.links, c.placed)
	return true
}

// Placed returns the screen rectangle of a panel from the last layout pass.
// While a panel is maximized only that panel is placed.
func (c *Canvas) Placed(id PanelID) (geom.Rect, bool) {
	r, ok := c.placed[id]
	return r, ok
}

// PlacedCells is Placed converted to terminal cells.
func (c *Canvas) PlacedCells(id PanelID) (image.Rectangle, bool) {
	r, ok := c.placed[id]
	if !ok {
		return image.Rectangle{}, false
	}
	return c.metrics.CellRect(r), true
}

// Segments returns the connector segments from the last layout pass.
func (c *Canvas) Segments() []Segment {
	return slices.Clone(c.connectors.segments)
}

// Recomputes counts connector recompute passes.
func (c *Canvas) Recomputes() int {
	return c.connectors.recomputes
}

// MaximizeGlyphCols returns the column range [from, to) of the maximize
// control in a panel's cell rectangle.
func MaximizeGlyphCols(r image.Rectangle) (from, to int) {
	to = r.Max.X - 1
	from = max(r.Min.X+1, to-MaximizeGlyphWidth)
	return from, to
}

// HitTest finds the topmost panel under a screen position and the zone hit.
func (c *Canvas) HitTest(pos geom.Point) Hit {
	c.Layout()
	col, row := c.metrics.ToCells(pos)
	pt := image.Pt(col, row)

	if id := c.board.Maximized(); id != "" {
		cells, _ := c.PlacedCells(id)
		if !pt.In(cells) {
			return Hit{}
		}
		if row == cells.Min.Y {
			if from, to := MaximizeGlyphCols(cells); col >= from && col < to {
				return Hit{Panel: id, Zone: ZoneMaximize}
			}
		}
		return Hit{Panel: id, Zone: ZoneBody}
	}

	for i := len(c.board.order) - 1; i >= 0; i-- {
		id := c.board.order[i]
		cells, _ := c.PlacedCells(id)
		if !pt.In(cells) {
			continue
		}
		right := col == cells.Max.X-1
		bottom := row == cells.Max.Y-1
		switch {
		case right && bottom:
			return Hit{Panel: id, Zone: ZoneResize, Edge: EdgeBottomRight}
		case row == cells.Min.Y:
			if from, to := MaximizeGlyphCols(cells); col >= from && col < to {
				return Hit{Panel: id, Zone: ZoneMaximize}
			}
			return Hit{Panel: id, Zone: ZoneTitle}
		case right:
			return Hit{Panel: id, Zone: ZoneResize, Edge: EdgeRight}
		case bottom:
			return Hit{Panel: id, Zone: ZoneResize, Edge: EdgeBottom}
		default:
			return Hit{Panel: id, Zone: ZoneBody}
		}
	}
	return Hit{}
}

// PointerDown routes a press inside the canvas region. A press with the
// modifier held pans; otherwise the panel under the pointer is dragged,
// resized, maximized or raised depending on where it was hit. It returns the
// hit so callers can move keyboard focus.
func (c *Canvas) PointerDown(ev *input.Event) Hit {
	if c.view.PointerDown(ev) {
		return Hit{}
	}
	hit := c.HitTest(ev.Pos)
	if hit.Panel == "" {
		return hit
	}
	ev.Consume()

	switch hit.Zone {
	case ZoneMaximize:
		c.ToggleMaximize(hit.Panel)
	case ZoneTitle:
		if c.board.IsMaximized() {
			break
		}
		c.board.StartDrag(hit.Panel)
		c.beginGesture(hit.Panel, c.board.OnDrag, func(p *Panel) {
			c.board.EndDrag(p.ID, p.X, p.Y)
		})
	case ZoneResize:
		c.board.StartResize(hit.Panel, hit.Edge)
		c.beginGesture(hit.Panel, c.board.OnResize, func(p *Panel) {
			c.board.EndResize(p.ID, p.Width, p.Height)
		})
	default:
		c.board.Raise(hit.Panel)
	}
	return hit
}

// beginGesture holds move and up listeners until the pointer is released.
func (c *Canvas) beginGesture(id PanelID, move func(PanelID, float64, float64), end func(*Panel)) {
	if c.bus == nil {
		return
	}
	c.gesture.Release()
	c.gesture.Listen(c.bus, input.PointerMove, "panel-gesture", func(ev *input.Event) {
		move(id, ev.Delta.X, ev.Delta.Y)
		ev.Consume()
	})
	c.gesture.Listen(c.bus, input.PointerUp, "panel-gesture", func(ev *input.Event) {
		if p := c.board.Panel(id); p != nil {
			end(p)
		}
		c.gesture.Release()
		ev.Consume()
	})
	logger.WithComponent("canvas").Debug("panel gesture started", "id", id)
}
