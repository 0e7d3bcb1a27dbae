package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const headerTitle = " canvas"

// Header represents the top header bar
type Header struct {
	width     int
	workspace string
	panels    int
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetWorkspace sets the active workspace name and its panel count.
func (h *Header) SetWorkspace(name string, panels int) {
	h.workspace = name
	h.panels = panels
}

// View renders the header
func (h *Header) View() string {
	var name, count string
	if h.workspace != "" {
		name = h.workspace
		count = fmt.Sprintf(" (%d %s) ", h.panels, plural(h.panels, "panel", "panels"))
	}

	titleW := runewidth.StringWidth(headerTitle)
	countW := runewidth.StringWidth(count)
	if avail := h.width - titleW - countW; runewidth.StringWidth(name) > avail {
		name = runewidth.Truncate(name, max(avail, 0), "…")
	}
	right := name + count
	padding := max(h.width-titleW-runewidth.StringWidth(right), 0)

	content := headerTitle + strings.Repeat(" ", padding) + right
	muteFrom := -1
	if count != "" {
		muteFrom = len([]rune(content)) - len([]rune(count))
	}
	return renderGradient(content, muteFrom)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content over a Primary to Bg gradient. Runes from
// muteFrom onward use the muted text color; pass -1 to disable.
func renderGradient(content string, muteFrom int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(headerTitle))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)
		if muteFrom >= 0 && i >= muteFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
