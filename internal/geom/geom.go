// Package geom holds the small amount of plane geometry the canvas needs:
// points and rectangles in logical pixels, and the mapping between logical
// pixels and terminal cells.
package geom

import (
	"image"
	"math"
)

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rect is an axis-aligned rectangle in logical pixels. X and Y are the top-left
// corner.
type Rect struct {
	X, Y, W, H float64
}

// Min returns the top-left corner.
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// EdgeToward returns the point where the segment from r's center toward p
// leaves r. When p is inside r the center is returned.
func (r Rect) EdgeToward(p Point) Point {
	c := r.Center()
	if r.Contains(p) || r.W <= 0 || r.H <= 0 {
		return c
	}
	dx, dy := p.X-c.X, p.Y-c.Y
	// Scale the direction so it touches the nearer of the two edge pairs.
	tx, ty := math.Inf(1), math.Inf(1)
	if dx != 0 {
		tx = (r.W / 2) / math.Abs(dx)
	}
	if dy != 0 {
		ty = (r.H / 2) / math.Abs(dy)
	}
	t := math.Min(tx, ty)
	return Point{X: c.X + dx*t, Y: c.Y + dy*t}
}

// Clamp limits v to [lo, hi], inclusive on both bounds.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CellMetrics is the size of one terminal cell in logical pixels.
type CellMetrics struct {
	Width  float64
	Height float64
}

// DefaultCellMetrics approximates a common monospace cell.
var DefaultCellMetrics = CellMetrics{Width: 8, Height: 16}

// ToPixels converts a cell position to the pixel position of its top-left corner.
func (m CellMetrics) ToPixels(col, row int) Point {
	return Point{X: float64(col) * m.Width, Y: float64(row) * m.Height}
}

// CellCenter returns the pixel position of the center of a cell.
func (m CellMetrics) CellCenter(col, row int) Point {
	return Point{X: (float64(col) + 0.5) * m.Width, Y: (float64(row) + 0.5) * m.Height}
}

// DeltaToPixels converts a movement in cells to a movement in pixels.
func (m CellMetrics) DeltaToPixels(dCols, dRows int) Point {
	return m.ToPixels(dCols, dRows)
}

// Cols converts a horizontal pixel length to whole columns.
func (m CellMetrics) Cols(px float64) int {
	return int(math.Round(px / m.Width))
}

// Rows converts a vertical pixel length to whole rows.
func (m CellMetrics) Rows(px float64) int {
	return int(math.Round(px / m.Height))
}

// ToCells converts a pixel position to the cell containing it.
func (m CellMetrics) ToCells(p Point) (col, row int) {
	return int(math.Floor(p.X / m.Width)), int(math.Floor(p.Y / m.Height))
}

// CellRect converts a pixel rectangle to the cell rectangle it covers. Width
// and height are rounded and never drop below one cell.
func (m CellMetrics) CellRect(r Rect) image.Rectangle {
	col, row := int(math.Round(r.X/m.Width)), int(math.Round(r.Y/m.Height))
	w, h := max(1, m.Cols(r.W)), max(1, m.Rows(r.H))
	return image.Rect(col, row, col+w, row+h)
}
