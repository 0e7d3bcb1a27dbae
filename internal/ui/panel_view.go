package ui

import (
	"image"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/keys"
)

// Panel chrome glyphs
const (
	GlyphMaximize = "[+]"
	GlyphRestore  = "[-]"
	GlyphResize   = "◢"
)

// ComposerSendMsg carries a message typed into a maximized panel.
type ComposerSendMsg struct {
	Panel canvas.PanelID
	Text  string
}

// Composer is the message input shown at the bottom of a maximized panel.
type Composer struct {
	input textarea.Model
	panel canvas.PanelID
}

// NewComposer creates an unfocused composer.
func NewComposer() *Composer {
	ta := textarea.New()
	ta.Placeholder = "Message..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	styleComposer(&ta)
	return &Composer{input: ta}
}

// styleComposer drops the textarea's default background so the input sits
// on the panel body.
func styleComposer(ta *textarea.Model) {
	text := lipgloss.NewStyle().Foreground(ColorText)
	muted := lipgloss.NewStyle().Foreground(ColorTextMuted)

	st := ta.Styles()
	st.Focused.Base, st.Blurred.Base = lipgloss.NewStyle(), lipgloss.NewStyle()
	st.Focused.Text, st.Blurred.Text = text, text
	st.Focused.Placeholder, st.Blurred.Placeholder = muted, muted
	st.Focused.CursorLine, st.Blurred.CursorLine = text, text
	st.Focused.Prompt, st.Blurred.Prompt = text, text
	ta.SetStyles(st)
}

// SetWidth sets the input width in columns.
func (c *Composer) SetWidth(width int) {
	c.input.SetWidth(max(width, 1))
}

// Attach points the composer at a panel, clearing any draft for another one.
func (c *Composer) Attach(id canvas.PanelID) {
	if c.panel != id {
		c.input.Reset()
	}
	c.panel = id
}

// Panel returns the panel the composer sends to.
func (c *Composer) Panel() canvas.PanelID {
	return c.panel
}

// Focus focuses the input.
func (c *Composer) Focus() tea.Cmd {
	return c.input.Focus()
}

// Blur removes focus from the input.
func (c *Composer) Blur() {
	c.input.Blur()
}

// Focused reports whether the input has focus.
func (c *Composer) Focused() bool {
	return c.input.Focused()
}

// Value returns the current draft.
func (c *Composer) Value() string {
	return c.input.Value()
}

// InsertString inserts text at the cursor, used for paste.
func (c *Composer) InsertString(s string) {
	c.input.InsertString(s)
}

// Update handles a key while focused. Enter sends a non-empty draft.
func (c *Composer) Update(msg tea.Msg) tea.Cmd {
	if !c.Focused() {
		return nil
	}
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == keys.Enter {
		text := strings.TrimSpace(c.input.Value())
		if text == "" || c.panel == "" {
			return nil
		}
		c.input.Reset()
		id := c.panel
		return func() tea.Msg { return ComposerSendMsg{Panel: id, Text: text} }
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// View renders the input line.
func (c *Composer) View() string {
	return c.input.View()
}

// PanelViewOptions controls how a panel is drawn.
type PanelViewOptions struct {
	Focused   bool
	Maximized bool
	// Scroll is how many lines the body is scrolled up from the bottom.
	Scroll int
	// Body is the rendered conversation; see RenderTurns.
	Body []string
	// Composer is drawn at the bottom of a maximized panel when set.
	Composer *Composer
}

// RenderPanel draws a panel as exactly h lines of w columns: a title row
// carrying the maximize control, the conversation, and a bottom border whose
// last cell is the resize grip.
func RenderPanel(p *canvas.Panel, w, h int, opts PanelViewOptions) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	border := PanelBorderStyle
	if opts.Focused || opts.Maximized {
		border = PanelFocusedBorderStyle
	}
	if w < 2 || h < 2 {
		return solid(border.Render("█"), w, h)
	}

	lines := make([]string, 0, h)
	lines = append(lines, titleRow(p.Title, w, border, opts.Maximized))

	inner := w - 2
	bodyRows := h - 2
	var composer []string
	if opts.Maximized && opts.Composer != nil && bodyRows > ComposerHeight {
		composer = composerRows(opts.Composer, inner)
		bodyRows -= len(composer)
	}

	side := border.Render("│")
	for _, l := range visibleBody(opts.Body, bodyRows, opts.Scroll) {
		lines = append(lines, side+fitANSI(l, inner)+side)
	}
	for _, l := range composer {
		lines = append(lines, side+l+side)
	}

	grip := GlyphResize
	if opts.Maximized {
		grip = "╯"
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", w-2)+grip))
	return lines
}

// titleRow renders "╭─ Title ───[+]╮". The glyph columns match
// canvas.MaximizeGlyphCols so hit testing agrees with what is drawn.
func titleRow(title string, w int, border lipgloss.Style, maximized bool) string {
	glyph := GlyphMaximize
	if maximized {
		glyph = GlyphRestore
	}
	from, to := canvas.MaximizeGlyphCols(rectOfWidth(w))
	glyph = ansi.Truncate(glyph, to-from, "")

	// columns 1..from-1 hold the title and its rule
	span := from - 1
	var head string
	if span >= 4 {
		t := truncateGraphemes(title, span-3)
		head = border.Render("─ ") + PanelTitleStyle.Render(t) + " "
		head += border.Render(strings.Repeat("─", max(span-3-ansi.StringWidth(t), 0)))
	} else {
		head = border.Render(strings.Repeat("─", max(span, 0)))
	}
	return border.Render("╭") + head + PanelGlyphStyle.Render(glyph) + border.Render("╮")
}

func rectOfWidth(w int) image.Rectangle {
	return image.Rect(0, 0, w, 1)
}

func composerRows(c *Composer, inner int) []string {
	style := ComposerStyle
	if c.Focused() {
		style = ComposerFocusedStyle
	}
	c.SetWidth(inner - 4)
	box := style.Render(fitANSI(c.View(), max(inner-4, 0)))
	rows := strings.Split(box, "\n")
	for i, r := range rows {
		rows[i] = fitANSI(r, inner)
	}
	return rows
}

// visibleBody returns rows lines of body, scrolled up from the bottom by
// scroll lines and padded at the end.
func visibleBody(body []string, rows, scroll int) []string {
	if rows <= 0 {
		return nil
	}
	end := len(body) - ClampScroll(scroll, len(body), rows)
	start := max(end-rows, 0)
	out := make([]string, 0, rows)
	out = append(out, body[start:end]...)
	for len(out) < rows {
		out = append(out, "")
	}
	return out
}

// ClampScroll bounds a scroll-from-bottom offset for a body of n lines
// shown in rows lines.
func ClampScroll(scroll, n, rows int) int {
	return min(max(scroll, 0), max(n-rows, 0))
}

func solid(cell string, w, h int) []string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(cell, w)
	}
	return lines
}
