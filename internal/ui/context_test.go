package ui

import (
	"image"
	"testing"

	"github.com/zhubert/canvas/internal/geom"
)

func TestViewContext_Update(t *testing.T) {
	v := NewViewContext(geom.DefaultCellMetrics)
	v.Update(120, 40, 260)

	if v.ContentHeight != 38 {
		t.Errorf("ContentHeight = %d, want 38", v.ContentHeight)
	}
	// 260px / 8px = 32.5 cells, rounded half away from zero.
	if v.SidebarWidth != 33 || v.CanvasWidth != 87 {
		t.Errorf("SidebarWidth = %d, CanvasWidth = %d, want 33 and 87", v.SidebarWidth, v.CanvasWidth)
	}
	if v.HandleCol() != 32 {
		t.Errorf("HandleCol() = %d, want 32", v.HandleCol())
	}
	if got := v.CanvasRect(); got != image.Rect(33, 1, 120, 39) {
		t.Errorf("CanvasRect() = %v", got)
	}
	if got := v.CanvasPixels(); got != (geom.Rect{X: 264, Y: 16, W: 696, H: 608}) {
		t.Errorf("CanvasPixels() = %+v", got)
	}
}

func TestViewContext_MinimumSizes(t *testing.T) {
	v := NewViewContext(geom.DefaultCellMetrics)
	v.Update(5, 2, 480)

	if v.TerminalWidth != MinTerminalWidth || v.TerminalHeight != MinTerminalHeight {
		t.Errorf("terminal = %dx%d, want minimum", v.TerminalWidth, v.TerminalHeight)
	}
	if v.CanvasWidth != MinCanvasWidth {
		t.Errorf("CanvasWidth = %d, want %d", v.CanvasWidth, MinCanvasWidth)
	}
}

func TestViewContext_Region(t *testing.T) {
	v := NewViewContext(geom.DefaultCellMetrics)
	v.Update(120, 40, 260)

	tests := []struct {
		col, row int
		want     Region
	}{
		{10, 0, RegionHeader},
		{10, 39, RegionFooter},
		{10, 5, RegionSidebar},
		{32, 5, RegionHandle},
		{33, 5, RegionCanvas},
		{119, 38, RegionCanvas},
	}
	for _, tt := range tests {
		if got := v.Region(tt.col, tt.row); got != tt.want {
			t.Errorf("Region(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}
