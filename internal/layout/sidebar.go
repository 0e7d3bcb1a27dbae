// Package layout owns the resizable sidebar and the division of the terminal
// into its screen regions.
package layout

import (
	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/logger"
)

// Pointer affordances understood by OSC 22.
const (
	CursorDefault   = "default"
	CursorColResize = "col-resize"
)

// Sidebar width bounds in logical pixels.
const (
	DefaultSidebarMin   = 200
	DefaultSidebarMax   = 480
	DefaultSidebarWidth = 260
)

// SidebarBounds configures the width range of the sidebar.
type SidebarBounds struct {
	Min     float64
	Max     float64
	Default float64
}

// DefaultSidebarBounds returns the stock bounds.
func DefaultSidebarBounds() SidebarBounds {
	return SidebarBounds{Min: DefaultSidebarMin, Max: DefaultSidebarMax, Default: DefaultSidebarWidth}
}

// SidebarWidth is the drag-to-resize controller for the sidebar. The sidebar
// hugs the left edge of the screen, so the pointer x is the new width.
//
// Move and up listeners exist on the bus only while a resize is in progress.
type SidebarWidth struct {
	bounds   SidebarBounds
	width    float64
	resizing bool

	bus   *input.Bus
	scope input.Scope
}

// NewSidebarWidth creates a controller at the default width. A new controller
// is created whenever the layout is remounted, which resets the width.
func NewSidebarWidth(bus *input.Bus, bounds SidebarBounds) *SidebarWidth {
	return &SidebarWidth{
		bounds: bounds,
		width:  geom.Clamp(bounds.Default, bounds.Min, bounds.Max),
		bus:    bus,
	}
}

// Width returns the current width in logical pixels.
func (s *SidebarWidth) Width() float64 {
	return s.width
}

// Bounds returns the configured bounds.
func (s *SidebarWidth) Bounds() SidebarBounds {
	return s.bounds
}

// SetBounds replaces the bounds and re-clamps the current width.
func (s *SidebarWidth) SetBounds(b SidebarBounds) {
	s.bounds = b
	s.width = geom.Clamp(s.width, b.Min, b.Max)
}

// Resizing reports whether a resize gesture is in progress.
func (s *SidebarWidth) Resizing() bool {
	return s.resizing
}

// Cursor returns the pointer affordance for the current state.
func (s *SidebarWidth) Cursor() string {
	if s.resizing {
		return CursorColResize
	}
	return CursorDefault
}

// SuppressSelection reports whether text selection should be disabled, which
// is the case for the whole duration of a resize.
func (s *SidebarWidth) SuppressSelection() bool {
	return s.resizing
}

// BeginResize arms the gesture and starts listening for pointer movement.
// Calling it while already resizing is a no-op.
func (s *SidebarWidth) BeginResize() {
	if s.resizing {
		return
	}
	s.resizing = true
	if s.bus != nil {
		s.scope.Listen(s.bus, input.PointerMove, "sidebar", func(ev *input.Event) {
			s.OnPointerMove(ev.Pos.X)
			ev.Consume()
		})
		s.scope.Listen(s.bus, input.PointerUp, "sidebar", func(ev *input.Event) {
			s.EndResize()
			ev.Consume()
		})
	}
	logger.WithComponent("sidebar").Debug("resize started", "width", s.width)
}

// OnPointerMove sets the width to x clamped to the bounds. It does nothing
// unless a resize is in progress.
func (s *SidebarWidth) OnPointerMove(x float64) {
	if !s.resizing {
		return
	}
	s.width = geom.Clamp(x, s.bounds.Min, s.bounds.Max)
}

// EndResize disarms the gesture and releases its listeners.
func (s *SidebarWidth) EndResize() {
	if !s.resizing {
		return
	}
	s.resizing = false
	s.scope.Release()
	logger.WithComponent("sidebar").Debug("resize ended", "width", s.width)
}

// Nudge changes the width by dx through the same begin, move and end path a
// pointer drag takes.
func (s *SidebarWidth) Nudge(dx float64) {
	s.BeginResize()
	s.OnPointerMove(s.width + dx)
	s.EndResize()
}

// Close tears the controller down, releasing any in-flight listeners.
func (s *SidebarWidth) Close() {
	s.resizing = false
	s.scope.Release()
}
