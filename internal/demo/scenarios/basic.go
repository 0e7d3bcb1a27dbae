// Package scenarios contains built-in demo scenarios for canvas.
package scenarios

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/demo"
)

// Overview tours the canvas at 120x40 with the stock config, where ws-1's
// main chat has its title on row 4 and the sidebar handle sits on column 32:
// - Panning and zooming with the modifier held
// - Dragging a chat by its title and maximizing it
// - Sending a message from the composer
// - Resizing the sidebar and switching workspaces
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Pan, zoom, drag and maximize chats, then switch workspaces",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Annotate("Chats live on an infinite canvas"),
		demo.Capture(),

		// Hold the modifier: the pointer turns into a hand
		demo.Hold(tea.ModCtrl),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Pan and zoom out
		demo.Drag(60, 20, 45, 14, tea.ModCtrl),
		demo.Wait(500 * time.Millisecond),
		demo.Wheel(60, 20, false, 4, tea.ModCtrl),
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("ctrl+drag pans, ctrl+wheel zooms"),
		demo.Capture(),
		demo.Release(tea.ModCtrl),

		// Back to 100%
		demo.KeyWithDesc("0", "Reset view"),
		demo.Wait(500 * time.Millisecond),

		// Move the main chat by its title bar
		demo.Drag(50, 4, 40, 8, 0),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// The maximize control followed the chat: columns 107-109 of row 8
		demo.Click(108, 8),
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("One chat at a time can be maximized"),
		demo.Capture(),

		// Write a message
		demo.KeyWithDesc("i", "Focus the composer"),
		demo.Type("How does useEffect work?"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Blur the composer, then restore
		demo.Key("esc"),
		demo.Key("esc"),
		demo.Wait(500 * time.Millisecond),

		// Widen the sidebar by its handle
		demo.Drag(32, 10, 40, 10, 0),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Open the second workspace (list rows start on screen row 4)
		demo.Click(5, 5),
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("Each workspace keeps its own canvas"),
		demo.Capture(),

		// Final pause
		demo.Wait(3 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Overview,
		Workspaces,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
