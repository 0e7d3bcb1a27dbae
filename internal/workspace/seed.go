package workspace

import "fmt"

var seedNames = []string{
	"Marketing Project",
	"Development Team",
	"Personal Notes",
	"Marketing Project",
	"Development Team",
	"Personal Notes",
	"Marketing Project",
	"Development Team",
	"Personal Notes",
	"Development Team",
	"Personal Notes",
	"Marketing Project",
	"Development Team",
	"Personal Notes",
}

var mainChat = []string{
	"What's React.JS",
	"React is a free and open-source front-end JavaScript library for building user interfaces (UIs) based on a component architecture. It is maintained by Meta (formerly Facebook) and a large community of developers.",
	"Why is it popular",
	"React.js is popular due to a combination of its technical advantages, robust ecosystem, ease of learning, and strong backing by Meta and other industry giants. These factors contribute to a faster, more efficient development process and superior application performance.",
	"What's Virtual DOM?",
	"Virtual DOM (Document Object Model) To optimize performance, React uses a virtual representation of the actual DOM. When data changes, React calculates the most efficient way to update the real DOM and applies only the necessary changes, rather than re-rendering the entire page. This results in lightning-fast, smooth, and responsive user experiences, especially in dynamic applications.",
}

var hooksChat = []string{
	"Show me a minimal useState example",
	"Here is a counter component:\n\n```tsx\nfunction Counter() {\n  const [count, setCount] = useState(0);\n  return <button onClick={() => setCount(count + 1)}>{count}</button>;\n}\n```\n\nEach click schedules a re-render with the new count.",
}

var campaignChat = []string{
	"Draft three taglines for the spring launch",
	"1. Fresh starts, faster builds.\n2. Ship the season.\n3. Everything new, nothing to relearn.",
}

// Seed returns a store populated with the stock workspaces. IDs are stable
// ("ws-1" through "ws-14") so they can be named on the command line.
func Seed() *Store {
	s := NewStore()
	for i, name := range seedNames {
		id := fmt.Sprintf("ws-%d", i+1)
		ws := &Workspace{
			ID:   id,
			Name: name,
			Panels: []PanelSpec{{
				ID:    id + "-main",
				Title: "Main Chat",
				X:     -350,
				Y:     -250,
				Turns: mainChat,
			}},
		}
		switch name {
		case "Development Team":
			ws.Panels = append(ws.Panels, PanelSpec{
				ID:     id + "-hooks",
				Title:  "React Hooks",
				X:      450,
				Y:      -200,
				Width:  520,
				Height: 400,
				Turns:  hooksChat,
			})
			ws.Links = append(ws.Links, LinkSpec{ID: id + "-link", From: id + "-main", To: id + "-hooks"})
		case "Marketing Project":
			ws.Panels = append(ws.Panels, PanelSpec{
				ID:     id + "-campaign",
				Title:  "Campaign Ideas",
				X:      -900,
				Y:      350,
				Width:  480,
				Height: 320,
				Turns:  campaignChat,
			})
		}
		s.Add(ws)
	}
	return s
}
