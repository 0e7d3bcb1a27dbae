package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/geom"
)

// Translator converts Bubble Tea input messages into Events. Pointer positions
// arrive in cells and leave in logical pixels at the center of the cell.
type Translator struct {
	metrics geom.CellMetrics

	last    geom.Point
	hasLast bool
}

// NewTranslator creates a translator for the given cell size.
func NewTranslator(metrics geom.CellMetrics) *Translator {
	return &Translator{metrics: metrics}
}

// SetMetrics updates the cell size, e.g. after a config reload.
func (t *Translator) SetMetrics(metrics geom.CellMetrics) {
	t.metrics = metrics
	t.hasLast = false
}

// Metrics returns the active cell size.
func (t *Translator) Metrics() geom.CellMetrics {
	return t.metrics
}

// Translate returns the Event for msg, or false when msg is not input.
func (t *Translator) Translate(msg tea.Msg) (*Event, bool) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft {
			return nil, false
		}
		return t.pointer(PointerDown, tea.Mouse(msg)), true

	case tea.MouseMotionMsg:
		return t.pointer(PointerMove, tea.Mouse(msg)), true

	case tea.MouseReleaseMsg:
		return t.pointer(PointerUp, tea.Mouse(msg)), true

	case tea.MouseWheelMsg:
		m := tea.Mouse(msg)
		if m.Button != tea.MouseWheelUp && m.Button != tea.MouseWheelDown {
			return nil, false
		}
		ev := t.pointer(Wheel, m)
		ev.Delta = geom.Point{}
		ev.WheelUp = m.Button == tea.MouseWheelUp
		return ev, true

	case tea.KeyPressMsg:
		return keyEvent(KeyDown, tea.Key(msg)), true

	case tea.KeyReleaseMsg:
		return keyEvent(KeyUp, tea.Key(msg)), true
	}
	return nil, false
}

func (t *Translator) pointer(kind Kind, m tea.Mouse) *Event {
	pos := t.metrics.CellCenter(m.X, m.Y)
	ev := &Event{Kind: kind, Pos: pos, Mods: convertMods(m.Mod)}
	if t.hasLast {
		ev.Delta = pos.Sub(t.last)
	}
	t.last = pos
	t.hasLast = true
	return ev
}

func keyEvent(kind Kind, k tea.Key) *Event {
	ev := &Event{Kind: kind, Mods: convertMods(k.Mod)}
	if mod := modifierKey(k.Code); mod != 0 {
		ev.Modifier = mod
		// A modifier's own release clears its bit even if the terminal still
		// reports it as held.
		if kind == KeyUp {
			ev.Mods &^= mod
		} else {
			ev.Mods |= mod
		}
		return ev
	}
	ev.Key = k.String()
	return ev
}

func modifierKey(code rune) Modifiers {
	switch code {
	case tea.KeyLeftCtrl, tea.KeyRightCtrl:
		return ModCtrl
	case tea.KeyLeftAlt, tea.KeyRightAlt:
		return ModAlt
	case tea.KeyLeftShift, tea.KeyRightShift:
		return ModShift
	}
	return 0
}

func convertMods(mod tea.KeyMod) Modifiers {
	var m Modifiers
	if mod.Contains(tea.ModCtrl) {
		m |= ModCtrl
	}
	if mod.Contains(tea.ModAlt) {
		m |= ModAlt
	}
	if mod.Contains(tea.ModShift) {
		m |= ModShift
	}
	return m
}
