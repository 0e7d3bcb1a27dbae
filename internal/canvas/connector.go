package canvas

import (
	"image"

	"github.com/zhubert/canvas/internal/geom"
)

// Segment is a connector resolved to screen pixels. From and To lie on the
// borders of the two panels, on the line joining their centers.
type Segment struct {
	Link Link
	From geom.Point
	To   geom.Point
}

// connectorLayer holds the resolved connector segments. It is recomputed by
// the canvas post-layout hook, never on its own schedule.
type connectorLayer struct {
	segments   []Segment
	recomputes int
}

func (c *connectorLayer) recompute(links []Link, placed map[PanelID]geom.Rect) {
	c.recomputes++
	c.segments = c.segments[:0]
	for _, l := range links {
		from, okFrom := placed[l.From]
		to, okTo := placed[l.To]
		if !okFrom || !okTo {
			continue
		}
		c.segments = append(c.segments, Segment{
			Link: l,
			From: from.EdgeToward(to.Center()),
			To:   to.EdgeToward(from.Center()),
		})
	}
}

func (c *connectorLayer) clear() {
	c.recomputes++
	c.segments = c.segments[:0]
}

// Path rasterizes the segment into terminal cells, endpoints included.
func (s Segment) Path(m geom.CellMetrics) []image.Point {
	x0, y0 := m.ToCells(s.From)
	x1, y1 := m.ToCells(s.To)
	return line(x0, y0, x1, y1)
}

// line is Bresenham's algorithm over integer cells.
func line(x0, y0, x1, y1 int) []image.Point {
	dx, sx := abs(x1-x0), 1
	if x0 > x1 {
		sx = -1
	}
	dy, sy := -abs(y1-y0), 1
	if y0 > y1 {
		sy = -1
	}
	pts := make([]image.Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		pts = append(pts, image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
