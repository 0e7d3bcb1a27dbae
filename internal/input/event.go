// Package input turns raw terminal input into pointer, wheel and key events
// and fans them out to scoped listeners.
//
// Controllers never read tea messages directly. They acquire listeners on a
// Bus for exactly as long as a gesture can happen, and release them when the
// gesture ends or the owning component is torn down. Bus.Count is the probe
// used to prove nothing leaks.
package input

import "github.com/zhubert/canvas/internal/geom"

// Kind identifies the type of an Event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	Wheel
	KeyDown
	KeyUp
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case Wheel:
		return "wheel"
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all of mods are held.
func (m Modifiers) Has(mods Modifiers) bool {
	return mods != 0 && m&mods == mods
}

// ParseModifier maps a config name ("ctrl", "alt", "shift") to its bit.
// Unknown names map to ModCtrl.
func ParseModifier(name string) Modifiers {
	switch name {
	case "alt":
		return ModAlt
	case "shift":
		return ModShift
	default:
		return ModCtrl
	}
}

// ModifierName is the inverse of ParseModifier.
func ModifierName(m Modifiers) string {
	switch m {
	case ModAlt:
		return "alt"
	case ModShift:
		return "shift"
	default:
		return "ctrl"
	}
}

// Event is one input occurrence. Positions and deltas are in logical pixels,
// screen space.
type Event struct {
	Kind Kind

	// Pos is the pointer position for pointer and wheel events.
	Pos geom.Point
	// Delta is the pointer movement since the previous pointer event.
	Delta geom.Point
	// WheelUp is true for a wheel-up tick, false for wheel-down.
	WheelUp bool

	// Key is the textual key for key events ("a", "ctrl+up", "esc").
	Key string
	// Modifier is set when the key event is a bare modifier key press or
	// release; Key is empty in that case.
	Modifier Modifiers

	// Mods are the modifiers held when the event fired.
	Mods Modifiers

	consumed bool
}

// Consume marks the event handled. Later listeners still run, but the
// dispatcher reports it so the default action (scrolling, typing) is skipped.
func (e *Event) Consume() {
	e.consumed = true
}

// Consumed reports whether any listener consumed the event.
func (e *Event) Consumed() bool {
	return e.consumed
}
