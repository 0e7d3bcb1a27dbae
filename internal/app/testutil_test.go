package app

import (
	"os"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/keys"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/workspace"
)

func TestMain(m *testing.M) {
	// Keep test runs out of the real debug log
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// Layout of a 120x40 terminal with the stock config: the sidebar takes 33
// columns including the handle at column 32, and ws-1's main chat covers
// cells (33,4)-(121,35) with its maximize control at columns 117-119.
const (
	testWidth   = 120
	testHeight  = 40
	handleCol   = 32
	mainTitleY  = 4
	mainGlyphX  = 118
	canvasMidX  = 60
	canvasMidY  = 20
	baseline    = 3 // viewport wheel, keydown and keyup
	mainPanelID = "ws-1-main"
)

// testConfig returns the stock config with no file behind it.
func testConfig() *config.Config {
	return config.Default()
}

// testModel creates a test Model over the seeded workspaces.
func testModel(cfg *config.Config) *Model {
	return New(cfg, workspace.Seed(), "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(cfg *config.Config, width, height int) *Model {
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	case keys.AltDown:
		return tea.KeyPressMsg{Code: tea.KeyDown, Mod: tea.ModAlt}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the command it produced.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) {
	for _, ch := range text {
		sendKey(m, string(ch))
	}
}

// click presses and releases the left button at a cell.
func click(m *Model, x, y int, mod tea.KeyMod) {
	m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft, Mod: mod})
	m.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft, Mod: mod})
}

// drag presses at (x0, y0), moves to (x1, y1) and releases there.
func drag(m *Model, x0, y0, x1, y1 int, mod tea.KeyMod) {
	m.Update(tea.MouseClickMsg{X: x0, Y: y0, Button: tea.MouseLeft, Mod: mod})
	m.Update(tea.MouseMotionMsg{X: x1, Y: y1, Button: tea.MouseLeft, Mod: mod})
	m.Update(tea.MouseReleaseMsg{X: x1, Y: y1, Button: tea.MouseLeft, Mod: mod})
}

// wheel sends one wheel tick at a cell.
func wheel(m *Model, x, y int, up bool, mod tea.KeyMod) {
	button := tea.MouseWheelDown
	if up {
		button = tea.MouseWheelUp
	}
	m.Update(tea.MouseWheelMsg{X: x, Y: y, Button: button, Mod: mod})
}

// run executes cmd and feeds its message back into the model, which is how
// commands like the composer's send reach Update in a real program.
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.BatchMsg); ok {
			return
		}
		m.Update(msg)
	}
}
