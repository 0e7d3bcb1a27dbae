package canvas

import (
	"strings"

	"github.com/zhubert/canvas/internal/geom"
)

// Panel size defaults in logical pixels.
const (
	DefaultPanelWidth     = 700
	DefaultPanelHeight    = 500
	DefaultPanelMinWidth  = 300
	DefaultPanelMinHeight = 300
)

// PanelID identifies a panel within a board.
type PanelID string

// Role is the speaker of a conversation turn.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
)

func (r Role) String() string {
	if r == RoleUser {
		return "You"
	}
	return "Assistant"
}

// Panel is a chat window on the canvas. X and Y are pivot-relative content
// coordinates of the top-left corner.
type Panel struct {
	ID    PanelID
	Title string

	X      float64
	Y      float64
	Width  float64
	Height float64

	MinWidth  float64
	MinHeight float64

	// Turns alternate between user and assistant, starting with the user.
	Turns []string
}

// Rect returns the panel rectangle in content space.
func (p *Panel) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// RoleOf returns the speaker of turn i.
func RoleOf(i int) Role {
	if i%2 == 0 {
		return RoleUser
	}
	return RoleAssistant
}

// Transcript renders the conversation as plain text, one block per turn.
func (p *Panel) Transcript() string {
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(p.Title)
	sb.WriteString("\n")
	for i, turn := range p.Turns {
		sb.WriteString("\n")
		sb.WriteString(RoleOf(i).String())
		sb.WriteString(":\n")
		sb.WriteString(turn)
		sb.WriteString("\n")
	}
	return sb.String()
}

// normalize fills zero sizes with defaults and enforces the minimum size.
func (p *Panel) normalize() {
	if p.MinWidth <= 0 {
		p.MinWidth = DefaultPanelMinWidth
	}
	if p.MinHeight <= 0 {
		p.MinHeight = DefaultPanelMinHeight
	}
	if p.Width <= 0 {
		p.Width = DefaultPanelWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultPanelHeight
	}
	p.Width = max(p.Width, p.MinWidth)
	p.Height = max(p.Height, p.MinHeight)
}

// Link is a connector drawn between two panels.
type Link struct {
	ID   string
	From PanelID
	To   PanelID
}
