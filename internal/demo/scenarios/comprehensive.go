package scenarios

import (
	"time"

	"github.com/zhubert/canvas/internal/demo"
)

// Workspaces is keyboard only: it creates a workspace, fills its canvas with
// new and branched chats, then opens the help.
var Workspaces = &demo.Scenario{
	Name:        "workspaces",
	Description: "Create a workspace, add and branch chats from the keyboard",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		// New workspace from the sidebar
		demo.KeyWithDesc("s", "Focus sidebar"),
		demo.KeyWithDesc("n", "New workspace"),
		demo.Wait(500 * time.Millisecond),
		demo.Type("Roadmap"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Add a chat and branch it
		demo.KeyWithDesc("n", "New chat"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("b", "Branch chat"),
		demo.Wait(500 * time.Millisecond),
		demo.Annotate("Branches are linked to their source"),
		demo.Capture(),

		// Zoom out to see both
		demo.Key("-"),
		demo.Key("-"),
		demo.Key("-"),
		demo.Key("-"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Cycle focus between chats
		demo.Key("tab"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),

		// Help
		demo.KeyWithDesc("?", "Show shortcuts"),
		demo.Wait(1 * time.Second),
		demo.Capture(),
		demo.Key("esc"),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
