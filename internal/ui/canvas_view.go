package ui

import (
	"image"
	"math"
	"strings"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/geom"
)

// GridSpacing is the distance between background grid dots, in logical
// pixels at scale 1.
const GridSpacing = 80

// Canvas glyphs
const (
	glyphGrid          = "·"
	glyphConnector     = "•"
	glyphConnectorHead = "●"
)

// bodyKey identifies a rendered conversation. Turns only grow, so the turn
// count stands in for the content.
type bodyKey struct {
	panel canvas.PanelID
	turns int
	width int
	theme ThemeName
}

// CanvasView composites a canvas onto a screen buffer. It caches rendered
// conversations, which is where the time goes.
type CanvasView struct {
	bodies map[bodyKey][]string
	scroll map[canvas.PanelID]int
}

// NewCanvasView creates a compositor with empty caches.
func NewCanvasView() *CanvasView {
	return &CanvasView{
		bodies: make(map[bodyKey][]string),
		scroll: make(map[canvas.PanelID]int),
	}
}

// CanvasViewOptions carries per-frame state the canvas itself does not own.
type CanvasViewOptions struct {
	// Focused draws the focused panel's border highlighted.
	Focused bool
	// Composer is shown inside a maximized panel.
	Composer *Composer
	// Hint is drawn at the bottom left of the canvas, e.g. the pan hint.
	Hint string
}

// Scroll scrolls a panel body by delta lines, positive toward older turns.
func (v *CanvasView) Scroll(id canvas.PanelID, delta int) {
	v.scroll[id] = max(v.scroll[id]+delta, 0)
}

// ScrollOffset returns how far a panel body is scrolled up.
func (v *CanvasView) ScrollOffset(id canvas.PanelID) int {
	return v.scroll[id]
}

// Forget drops cached state for a panel that no longer exists.
func (v *CanvasView) Forget(id canvas.PanelID) {
	delete(v.scroll, id)
	for k := range v.bodies {
		if k.panel == id {
			delete(v.bodies, k)
		}
	}
}

func (v *CanvasView) body(p *canvas.Panel, width int) []string {
	key := bodyKey{panel: p.ID, turns: len(p.Turns), width: width, theme: CurrentThemeName()}
	if lines, ok := v.bodies[key]; ok {
		return lines
	}
	// Older renders of this panel are stale now.
	for k := range v.bodies {
		if k.panel == p.ID {
			delete(v.bodies, k)
		}
	}
	lines := RenderTurns(p.Turns, width)
	v.bodies[key] = lines
	return lines
}

// Draw runs the canvas post-layout hook and paints area: the grid, the
// connectors, the panels in z-order and the status indicator. While a panel
// is maximized only that panel is painted, over a blank canvas.
func (v *CanvasView) Draw(scr uv.Screen, area image.Rectangle, c *canvas.Canvas, opts CanvasViewOptions) {
	if area.Empty() {
		return
	}
	c.Layout()
	fillRect(scr, area)

	board := c.Board()
	if id := board.Maximized(); id != "" {
		v.drawPanel(scr, area, c, id, true, opts)
	} else {
		v.drawGrid(scr, area, c)
		v.drawConnectors(scr, area, c)
		for _, id := range board.Order() {
			v.drawPanel(scr, area, c, id, opts.Focused && id == board.Focused(), opts)
		}
		if board.Len() == 0 {
			msg := CanvasEmptyStyle.Render("No chats here. Press n to start one.")
			drawCentered(scr, area, msg)
		}
		if opts.Hint != "" {
			hint := CanvasHintStyle.Render(opts.Hint)
			drawLine(scr, area, area.Min.X, area.Max.Y-1, hint)
		}
	}

	status := StatusStyle.Render(c.Viewport().Status())
	drawLine(scr, area, area.Max.X-ansi.StringWidth(status), area.Max.Y-1, status)
}

func (v *CanvasView) drawPanel(scr uv.Screen, area image.Rectangle, c *canvas.Canvas, id canvas.PanelID, focused bool, opts CanvasViewOptions) {
	p := c.Board().Panel(id)
	r, ok := c.PlacedCells(id)
	if p == nil || !ok || !r.Overlaps(area) {
		return
	}
	maximized := c.Board().Maximized() == id
	popts := PanelViewOptions{
		Focused:   focused,
		Maximized: maximized,
		Body:      v.body(p, max(r.Dx()-2, 1)),
	}
	if maximized {
		popts.Composer = opts.Composer
	}
	bodyRows := r.Dy() - 2
	if popts.Composer != nil && bodyRows > ComposerHeight {
		bodyRows -= ComposerHeight
	}
	v.scroll[id] = ClampScroll(v.scroll[id], len(popts.Body), bodyRows)
	popts.Scroll = v.scroll[id]

	// Only the rows inside area are drawn; the rest are clipped.
	lines := RenderPanel(p, r.Dx(), r.Dy(), popts)
	clip := r.Intersect(area)
	for i, line := range lines {
		y := r.Min.Y + i
		if y < clip.Min.Y || y >= clip.Max.Y {
			continue
		}
		cut := ansi.Cut(line, clip.Min.X-r.Min.X, clip.Max.X-r.Min.X)
		uv.NewStyledString(cut).Draw(scr, uv.Rect(clip.Min.X, y, clip.Dx(), 1))
	}
}

// drawGrid paints a dot wherever two grid lines cross. The grid moves and
// scales with the view, and is skipped when the dots would touch.
func (v *CanvasView) drawGrid(scr uv.Screen, area image.Rectangle, c *canvas.Canvas) {
	m := c.Metrics()
	vp := c.Viewport()
	step := GridSpacing * vp.Scale()
	if step < 2*m.Width || step < 2*m.Height {
		return
	}
	origin := vp.ScreenPoint(geom.Point{})
	tl := m.ToPixels(area.Min.X, area.Min.Y)
	br := m.ToPixels(area.Max.X, area.Max.Y)
	dot := CanvasGridStyle.Render(glyphGrid)

	for i := math.Ceil((tl.X - origin.X) / step); origin.X+i*step < br.X; i++ {
		for j := math.Ceil((tl.Y - origin.Y) / step); origin.Y+j*step < br.Y; j++ {
			col, row := m.ToCells(geom.Point{X: origin.X + i*step, Y: origin.Y + j*step})
			if image.Pt(col, row).In(area) {
				uv.NewStyledString(dot).Draw(scr, uv.Rect(col, row, 1, 1))
			}
		}
	}
}

func (v *CanvasView) drawConnectors(scr uv.Screen, area image.Rectangle, c *canvas.Canvas) {
	m := c.Metrics()
	dot := ConnectorStyle.Render(glyphConnector)
	head := ConnectorStyle.Render(glyphConnectorHead)
	for _, seg := range c.Segments() {
		path := seg.Path(m)
		for i, pt := range path {
			if !pt.In(area) {
				continue
			}
			glyph := dot
			if i == 0 || i == len(path)-1 {
				glyph = head
			}
			uv.NewStyledString(glyph).Draw(scr, uv.Rect(pt.X, pt.Y, 1, 1))
		}
	}
}

// fillRect blanks area so nothing from a previous layer shows through.
func fillRect(scr uv.Screen, area image.Rectangle) {
	blank := strings.Repeat(" ", area.Dx())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		uv.NewStyledString(blank).Draw(scr, uv.Rect(area.Min.X, y, area.Dx(), 1))
	}
}

// drawLine draws a single styled line at (x, y), clipped to area.
func drawLine(scr uv.Screen, area image.Rectangle, x, y int, s string) {
	if y < area.Min.Y || y >= area.Max.Y {
		return
	}
	from := max(area.Min.X-x, 0)
	x = max(x, area.Min.X)
	w := min(area.Max.X-x, ansi.StringWidth(s)-from)
	if w <= 0 {
		return
	}
	s = ansi.Cut(s, from, from+w)
	uv.NewStyledString(s).Draw(scr, uv.Rect(x, y, w, 1))
}

// drawCentered draws a block of lines centered in area.
func drawCentered(scr uv.Screen, area image.Rectangle, block string) {
	lines := strings.Split(block, "\n")
	y := area.Min.Y + (area.Dy()-len(lines))/2
	for i, l := range lines {
		x := area.Min.X + (area.Dx()-ansi.StringWidth(l))/2
		drawLine(scr, area, x, y+i, l)
	}
}
