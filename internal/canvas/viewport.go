package canvas

import (
	"fmt"
	"math"

	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/logger"
)

// Pointer affordances emitted while the viewport owns the pointer.
const (
	CursorDefault  = "default"
	CursorGrab     = "grab"
	CursorGrabbing = "grabbing"
)

// Zoom defaults.
const (
	DefaultMinScale = 0.2
	DefaultMaxScale = 3.0
	DefaultZoomStep = 0.05
)

// ZoomBounds limits the scale and sets the per-tick step.
type ZoomBounds struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoomBounds returns the stock zoom range.
func DefaultZoomBounds() ZoomBounds {
	return ZoomBounds{Min: DefaultMinScale, Max: DefaultMaxScale, Step: DefaultZoomStep}
}

// ViewTransform is the pan offset and zoom scale applied to the content layer.
type ViewTransform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// IdentityTransform is the transform of a freshly mounted canvas.
var IdentityTransform = ViewTransform{Scale: 1}

// Viewport is the pan/zoom controller. Content points are pivot-relative; the
// pivot is the center of the canvas region in screen pixels.
//
// Panning is a two-state machine (idle, panning) started by a pointer press
// while the designated modifier is held. Zoom is a clamped step per wheel tick
// while the modifier is held.
type Viewport struct {
	transform ViewTransform
	zoom      ZoomBounds
	pivot     geom.Point

	modifier input.Modifiers
	held     bool
	panning  bool
	// keyReports is set once the terminal has delivered a bare modifier key
	// event; from then on key events alone decide the held state.
	keyReports bool

	// blocked reports whether another surface (a maximized panel) owns the
	// pointer, which disables pan and zoom.
	blocked func() bool

	bus     *input.Bus
	mounted input.Scope
	gesture input.Scope

	revision uint64
}

// NewViewport creates an idle viewport at identity transform.
func NewViewport(zoom ZoomBounds, modifier input.Modifiers) *Viewport {
	if modifier == 0 {
		modifier = input.ModCtrl
	}
	return &Viewport{
		transform: IdentityTransform,
		zoom:      zoom,
		modifier:  modifier,
	}
}

// Transform returns the current transform.
func (v *Viewport) Transform() ViewTransform {
	return v.transform
}

// Scale returns the current zoom scale.
func (v *Viewport) Scale() float64 {
	return v.transform.Scale
}

// Offset returns the current pan offset in pixels.
func (v *Viewport) Offset() geom.Point {
	return geom.Point{X: v.transform.OffsetX, Y: v.transform.OffsetY}
}

// Revision increments on every change to the transform or pivot.
func (v *Viewport) Revision() uint64 {
	return v.revision
}

// Panning reports whether a pan gesture is in progress.
func (v *Viewport) Panning() bool {
	return v.panning
}

// ModifierHeld reports whether the designated modifier is held.
func (v *Viewport) ModifierHeld() bool {
	return v.held
}

// Modifier returns the designated modifier.
func (v *Viewport) Modifier() input.Modifiers {
	return v.modifier
}

// SetModifier changes the designated modifier and forgets the held state.
func (v *Viewport) SetModifier(m input.Modifiers) {
	if m == 0 || m == v.modifier {
		return
	}
	v.modifier = m
	v.held = false
}

// SetZoomBounds replaces the zoom bounds and re-clamps the scale.
func (v *Viewport) SetZoomBounds(z ZoomBounds) {
	v.zoom = z
	v.setScale(v.transform.Scale)
}

// ZoomBounds returns the active zoom bounds.
func (v *Viewport) ZoomBounds() ZoomBounds {
	return v.zoom
}

// SetBlocked installs the predicate that disables pan and zoom.
func (v *Viewport) SetBlocked(fn func() bool) {
	v.blocked = fn
}

func (v *Viewport) isBlocked() bool {
	return v.blocked != nil && v.blocked()
}

// SetPivot sets the screen-space pivot, normally the canvas center.
func (v *Viewport) SetPivot(p geom.Point) {
	if p == v.pivot {
		return
	}
	v.pivot = p
	v.revision++
}

// Pivot returns the screen-space pivot.
func (v *Viewport) Pivot() geom.Point {
	return v.pivot
}

// ScreenPoint maps a content point to screen pixels:
// pivot + offset + p*scale.
func (v *Viewport) ScreenPoint(p geom.Point) geom.Point {
	return v.pivot.Add(v.Offset()).Add(p.Scale(v.transform.Scale))
}

// ContentPoint is the inverse of ScreenPoint.
func (v *Viewport) ContentPoint(s geom.Point) geom.Point {
	return s.Sub(v.pivot).Sub(v.Offset()).Scale(1 / v.transform.Scale)
}

// ScreenRect maps a content rectangle to screen pixels.
func (v *Viewport) ScreenRect(r geom.Rect) geom.Rect {
	tl := v.ScreenPoint(r.Min())
	return geom.Rect{X: tl.X, Y: tl.Y, W: r.W * v.transform.Scale, H: r.H * v.transform.Scale}
}

// Cursor returns the pointer affordance: grabbing while panning, grab while
// the modifier is held, default otherwise.
func (v *Viewport) Cursor() string {
	switch {
	case v.panning:
		return CursorGrabbing
	case v.held && !v.isBlocked():
		return CursorGrab
	default:
		return CursorDefault
	}
}

// Pan adds a screen-space delta to the offset. The offset is unbounded.
func (v *Viewport) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	v.transform.OffsetX += dx
	v.transform.OffsetY += dy
	v.revision++
}

// Zoom steps the scale in (wheel up) or out (wheel down), clamped to bounds.
func (v *Viewport) Zoom(in bool) {
	delta := -v.zoom.Step
	if in {
		delta = v.zoom.Step
	}
	v.setScale(v.transform.Scale + delta)
}

func (v *Viewport) setScale(s float64) {
	s = geom.Clamp(s, v.zoom.Min, v.zoom.Max)
	if s == v.transform.Scale {
		return
	}
	v.transform.Scale = s
	v.revision++
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	if v.transform == IdentityTransform {
		return
	}
	v.transform = IdentityTransform
	v.revision++
}

// Status renders the zoom and pan indicator.
func (v *Viewport) Status() string {
	return fmt.Sprintf("Zoom: %d%% | Pan: %d, %d",
		int(math.Round(v.transform.Scale*100)),
		int(math.Round(v.transform.OffsetX)),
		int(math.Round(v.transform.OffsetY)))
}

// Mount acquires the wheel and key listeners that make pan and zoom possible.
// Mounting an already mounted viewport is a no-op.
func (v *Viewport) Mount(bus *input.Bus) {
	if v.bus != nil {
		return
	}
	v.bus = bus
	v.mounted.Listen(bus, input.Wheel, "viewport", v.onWheel)
	v.mounted.Listen(bus, input.KeyDown, "viewport", v.onKey)
	v.mounted.Listen(bus, input.KeyUp, "viewport", v.onKey)
}

// Unmount releases every listener the viewport holds, including those of an
// in-flight pan, and returns to idle.
func (v *Viewport) Unmount() {
	v.gesture.Release()
	v.mounted.Release()
	v.panning = false
	v.held = false
	v.bus = nil
}

// Mounted reports whether the viewport holds its listeners.
func (v *Viewport) Mounted() bool {
	return v.bus != nil
}

// ReleaseModifier forgets the held modifier and ends any pan in progress.
// Used when the terminal loses focus and a key release may never arrive.
func (v *Viewport) ReleaseModifier() {
	v.held = false
	if v.panning {
		v.endPan()
	}
}

func (v *Viewport) onKey(ev *input.Event) {
	if ev.Modifier != v.modifier {
		return
	}
	v.keyReports = true
	v.held = ev.Kind == input.KeyDown
}

// observe takes the held state from the modifier bits on pointer events, for
// terminals that do not report bare modifier presses.
func (v *Viewport) observe(ev *input.Event) {
	if ev.Mods.Has(v.modifier) {
		v.held = true
	} else if !v.keyReports {
		v.held = false
	}
}

func (v *Viewport) onWheel(ev *input.Event) {
	v.observe(ev)
	if !v.held || v.isBlocked() {
		return
	}
	v.Zoom(ev.WheelUp)
	ev.Consume()
	logger.WithComponent("viewport").Debug("zoom", "scale", v.transform.Scale)
}

// PointerDown starts a pan if the modifier is held and nothing blocks the
// viewport. It reports whether the press was taken.
func (v *Viewport) PointerDown(ev *input.Event) bool {
	v.observe(ev)
	if v.panning || !v.held || v.isBlocked() || v.bus == nil {
		return false
	}
	v.panning = true
	v.gesture.Listen(v.bus, input.PointerMove, "viewport-pan", func(ev *input.Event) {
		v.Pan(ev.Delta.X, ev.Delta.Y)
		ev.Consume()
	})
	v.gesture.Listen(v.bus, input.PointerUp, "viewport-pan", func(ev *input.Event) {
		v.endPan()
		ev.Consume()
	})
	ev.Consume()
	logger.WithComponent("viewport").Debug("pan started", "offsetX", v.transform.OffsetX, "offsetY", v.transform.OffsetY)
	return true
}

func (v *Viewport) endPan() {
	v.panning = false
	v.gesture.Release()
	logger.WithComponent("viewport").Debug("pan ended", "offsetX", v.transform.OffsetX, "offsetY", v.transform.OffsetY)
}
