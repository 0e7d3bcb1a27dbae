package ui

import (
	"image"

	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/logger"
)

// ViewContext holds the layout calculations shared by every view. All size
// calculations go through it so the sidebar, the canvas and mouse routing
// agree on where things are.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions, in cells
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int // including the resize handle
	CanvasWidth   int

	Metrics geom.CellMetrics
}

// NewViewContext creates a context for a minimum-size terminal.
func NewViewContext(metrics geom.CellMetrics) *ViewContext {
	v := &ViewContext{Metrics: metrics}
	v.Update(MinTerminalWidth, MinTerminalHeight, 0)
	return v
}

// Update recalculates all dimensions for a terminal size and a sidebar width
// in logical pixels.
func (v *ViewContext) Update(width, height int, sidebarPx float64) {
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	sidebar := v.Metrics.Cols(sidebarPx)
	sidebar = max(sidebar, HandleWidth+1)
	sidebar = min(sidebar, width-MinCanvasWidth)
	v.SidebarWidth = sidebar
	v.CanvasWidth = width - sidebar

	logger.WithComponent("ui").Debug("layout updated",
		"width", width,
		"height", height,
		"sidebarWidth", v.SidebarWidth,
		"canvasWidth", v.CanvasWidth,
	)
}

// SidebarRect is the sidebar area without the handle.
func (v *ViewContext) SidebarRect() image.Rectangle {
	return image.Rect(0, v.HeaderHeight, v.SidebarWidth-HandleWidth, v.HeaderHeight+v.ContentHeight)
}

// HandleCol is the column of the sidebar resize handle.
func (v *ViewContext) HandleCol() int {
	return v.SidebarWidth - HandleWidth
}

// CanvasRect is the canvas area in cells.
func (v *ViewContext) CanvasRect() image.Rectangle {
	return image.Rect(v.SidebarWidth, v.HeaderHeight, v.TerminalWidth, v.HeaderHeight+v.ContentHeight)
}

// CanvasPixels is the canvas area in logical pixels.
func (v *ViewContext) CanvasPixels() geom.Rect {
	r := v.CanvasRect()
	origin := v.Metrics.ToPixels(r.Min.X, r.Min.Y)
	size := v.Metrics.DeltaToPixels(r.Dx(), r.Dy())
	return geom.Rect{X: origin.X, Y: origin.Y, W: size.X, H: size.Y}
}

// Region reports which part of the screen a cell belongs to.
func (v *ViewContext) Region(col, row int) Region {
	switch {
	case row < v.HeaderHeight:
		return RegionHeader
	case row >= v.HeaderHeight+v.ContentHeight:
		return RegionFooter
	case col == v.HandleCol():
		return RegionHandle
	case col < v.HandleCol():
		return RegionSidebar
	default:
		return RegionCanvas
	}
}

// Region identifies an area of the screen.
type Region int

const (
	RegionHeader Region = iota
	RegionSidebar
	RegionHandle
	RegionCanvas
	RegionFooter
)
