// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "q", "+", "[" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up    = tea.KeyPressMsg{Code: tea.KeyUp}.String()    // "up"
	Down  = tea.KeyPressMsg{Code: tea.KeyDown}.String()  // "down"
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()          // "ctrl+c"
	CtrlV     = (tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}).String()          // "ctrl+v"
	CtrlUp    = (tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}).String()    // "ctrl+up"
	CtrlDown  = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModCtrl}).String()  // "ctrl+down"
	CtrlLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()  // "ctrl+left"
	CtrlRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String() // "ctrl+right"
)

// Alt combinations, the pan fallback when the terminal swallows ctrl+arrows
var (
	AltUp    = (tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModAlt}).String()    // "alt+up"
	AltDown  = (tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModAlt}).String()  // "alt+down"
	AltLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModAlt}).String()  // "alt+left"
	AltRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModAlt}).String() // "alt+right"
)
