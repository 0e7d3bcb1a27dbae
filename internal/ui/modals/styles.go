package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is the part of the theme modals draw with.
type Palette struct {
	Accent    color.Color // borders, selected rows, filled buttons
	Highlight color.Color // section titles, prompts
	Text      color.Color
	Muted     color.Color
	Inverse   color.Color // text on an Accent background
	Warning   color.Color
}

// Styles is what the ui package hands to modals on every theme change.
type Styles struct {
	Palette

	Title lipgloss.Style
	Help  lipgloss.Style

	Width      int // box content width
	InputWidth int
	NameLimit  int // longest workspace name accepted by the input
}

var styles Styles

// SetStyles installs s. It must be called before rendering any modal.
func SetStyles(s Styles) {
	styles = s
}
