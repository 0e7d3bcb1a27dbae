package app

import (
	"math"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/layout"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/workspace"
)

func TestNew_OpensFirstWorkspace(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	if got := m.ActiveWorkspace(); got != "ws-1" {
		t.Errorf("active workspace = %q, want ws-1", got)
	}
	if m.Focus() != FocusCanvas {
		t.Errorf("focus = %v, want canvas", m.Focus())
	}
	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners = %d, want %d", got, baseline)
	}
	if got := m.Canvas().Board().Focused(); got != mainPanelID {
		t.Errorf("focused panel = %q, want %q", got, mainPanelID)
	}
}

func TestNew_OpensConfiguredWorkspace(t *testing.T) {
	cfg := testConfig()
	cfg.Workspace = "ws-3"
	m := testModelWithSize(cfg, testWidth, testHeight)
	if got := m.ActiveWorkspace(); got != "ws-3" {
		t.Errorf("active workspace = %q, want ws-3", got)
	}

	cfg = testConfig()
	cfg.Workspace = "missing"
	m = testModelWithSize(cfg, testWidth, testHeight)
	if got := m.ActiveWorkspace(); got != "ws-1" {
		t.Errorf("unknown workspace should fall back to ws-1, got %q", got)
	}
}

func TestNew_EmptyStore(t *testing.T) {
	m := New(testConfig(), workspace.NewStore(), "test")
	m.Update(tea.WindowSizeMsg{Width: testWidth, Height: testHeight})

	if m.Canvas() != nil {
		t.Error("expected no canvas without workspaces")
	}
	if got := m.Bus().Count(); got != 0 {
		t.Errorf("listeners = %d, want 0", got)
	}
	// Must still render
	if out := m.RenderToString(); out == "" {
		t.Error("expected a frame")
	}
}

func TestClose_ReleasesEveryListener(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	// leave a sidebar resize in flight
	m.Update(tea.MouseClickMsg{X: handleCol, Y: 10, Button: tea.MouseLeft})
	if got := m.Bus().Count(); got != baseline+2 {
		t.Fatalf("listeners during resize = %d, want %d", got, baseline+2)
	}

	m.Close()
	if got := m.Bus().Count(); got != 0 {
		t.Errorf("listeners after Close = %d, want 0", got)
	}
}

func TestSidebarHandleDrag(t *testing.T) {
	tests := []struct {
		name  string
		toX   int
		width float64
	}{
		{"inside bounds", 40, 324}, // center of column 40
		{"clamped to max", 100, 480},
		{"clamped to min", 5, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(testConfig(), testWidth, testHeight)

			m.Update(tea.MouseClickMsg{X: handleCol, Y: 10, Button: tea.MouseLeft})
			if !m.SidebarWidth().Resizing() {
				t.Fatal("press on the handle should start a resize")
			}
			if got := m.Cursor(); got != layout.CursorColResize {
				t.Errorf("cursor during resize = %q, want %q", got, layout.CursorColResize)
			}

			m.Update(tea.MouseMotionMsg{X: tt.toX, Y: 10, Button: tea.MouseLeft})
			m.Update(tea.MouseReleaseMsg{X: tt.toX, Y: 10, Button: tea.MouseLeft})

			if got := m.SidebarWidth().Width(); got != tt.width {
				t.Errorf("width = %v, want %v", got, tt.width)
			}
			if m.SidebarWidth().Resizing() {
				t.Error("release should end the resize")
			}
			if got := m.Bus().Count(); got != baseline {
				t.Errorf("listeners after resize = %d, want %d", got, baseline)
			}
			wantCols := int(math.Round(tt.width / 8))
			if got := m.ctx.SidebarWidth; got != wantCols {
				t.Errorf("sidebar columns = %d, want %d", got, wantCols)
			}
		})
	}
}

func TestSidebarHandleHover(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	m.Update(tea.MouseMotionMsg{X: handleCol, Y: 10})
	if got := m.Cursor(); got != layout.CursorColResize {
		t.Errorf("cursor over handle = %q, want %q", got, layout.CursorColResize)
	}
	m.Update(tea.MouseMotionMsg{X: canvasMidX, Y: canvasMidY})
	if got := m.Cursor(); got != canvas.CursorDefault {
		t.Errorf("cursor off handle = %q, want %q", got, canvas.CursorDefault)
	}
}

func TestModifierWheelZooms(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	wheel(m, canvasMidX, canvasMidY, true, tea.ModCtrl)
	if got := m.Canvas().Viewport().Scale(); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("scale = %v, want 1.05", got)
	}
	if got := m.Canvas().Board().Panel(mainPanelID); got == nil {
		t.Fatal("main panel missing")
	}
	// a plain wheel scrolls instead
	wheel(m, canvasMidX, canvasMidY, true, 0)
	if got := m.Canvas().Viewport().Scale(); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("plain wheel changed scale to %v", got)
	}
}

func TestPlainWheelScrollsPanelBody(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	wheel(m, canvasMidX, canvasMidY, true, 0)
	if got := m.canvasView.ScrollOffset(mainPanelID); got != wheelScrollLines {
		t.Errorf("scroll = %d, want %d", got, wheelScrollLines)
	}
	wheel(m, canvasMidX, canvasMidY, false, 0)
	if got := m.canvasView.ScrollOffset(mainPanelID); got != 0 {
		t.Errorf("scroll = %d, want 0", got)
	}
}

func TestModifierDragPans(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	before := *m.Canvas().Board().Panel(mainPanelID)

	m.Update(tea.MouseClickMsg{X: canvasMidX, Y: canvasMidY, Button: tea.MouseLeft, Mod: tea.ModCtrl})
	if got := m.Cursor(); got != canvas.CursorGrabbing {
		t.Errorf("cursor while panning = %q, want %q", got, canvas.CursorGrabbing)
	}
	m.Update(tea.MouseMotionMsg{X: canvasMidX + 5, Y: canvasMidY + 2, Button: tea.MouseLeft, Mod: tea.ModCtrl})
	m.Update(tea.MouseReleaseMsg{X: canvasMidX + 5, Y: canvasMidY + 2, Button: tea.MouseLeft, Mod: tea.ModCtrl})

	want := geom.Point{X: 40, Y: 32}
	if got := m.Canvas().Viewport().Offset(); got != want {
		t.Errorf("offset = %+v, want %+v", got, want)
	}
	after := m.Canvas().Board().Panel(mainPanelID)
	if after.X != before.X || after.Y != before.Y {
		t.Error("a modifier press on a panel should pan, not drag it")
	}
	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners after pan = %d, want %d", got, baseline)
	}
}

func TestTitleDragMovesPanel(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	p := m.Canvas().Board().Panel(mainPanelID)
	x0, y0 := p.X, p.Y

	m.Update(tea.MouseClickMsg{X: 50, Y: mainTitleY, Button: tea.MouseLeft})
	if got := m.Bus().Count(); got != baseline+2 {
		t.Errorf("listeners during drag = %d, want %d", got, baseline+2)
	}
	if got := m.Cursor(); got != canvas.CursorMove {
		t.Errorf("cursor = %q, want %q", got, canvas.CursorMove)
	}
	m.Update(tea.MouseMotionMsg{X: 53, Y: mainTitleY + 1, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 53, Y: mainTitleY + 1, Button: tea.MouseLeft})

	p = m.Canvas().Board().Panel(mainPanelID)
	if p.X != x0+24 || p.Y != y0+16 {
		t.Errorf("panel at (%v, %v), want (%v, %v)", p.X, p.Y, x0+24, y0+16)
	}
	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners after drag = %d, want %d", got, baseline)
	}
}

func TestMaximizeGlyphClick(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	board := m.Canvas().Board()

	click(m, mainGlyphX, mainTitleY, 0)
	if got := board.Maximized(); got != mainPanelID {
		t.Fatalf("maximized = %q, want %q", got, mainPanelID)
	}
	if m.composer.Panel() != mainPanelID {
		t.Errorf("composer attached to %q, want %q", m.composer.Panel(), mainPanelID)
	}

	// the modifier does not pan while a panel is maximized
	drag(m, canvasMidX, canvasMidY, canvasMidX+5, canvasMidY, tea.ModCtrl)
	if got := m.Canvas().Viewport().Offset(); got != (geom.Point{}) {
		t.Errorf("offset = %+v while maximized, want zero", got)
	}

	// overlay is the canvas inset by one cell: its control sits at
	// columns 115-117 of row 2
	click(m, 116, 2, 0)
	if board.IsMaximized() {
		t.Error("clicking the control again should restore")
	}
}

func TestSwitchWorkspaceKeepsState(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	wheel(m, canvasMidX, canvasMidY, true, tea.ModCtrl)
	ws1 := m.Canvas()

	m.Update(ui.SidebarSelectMsg{ID: "ws-2"})
	if got := m.ActiveWorkspace(); got != "ws-2" {
		t.Fatalf("active = %q, want ws-2", got)
	}
	if ws1.Mounted() {
		t.Error("previous canvas should be unmounted")
	}
	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners = %d, want %d", got, baseline)
	}
	if got := m.Canvas().Board().Len(); got != 2 {
		t.Errorf("ws-2 panels = %d, want 2", got)
	}
	if got := len(m.Canvas().Board().Links()); got != 1 {
		t.Errorf("ws-2 links = %d, want 1", got)
	}

	m.Update(ui.SidebarSelectMsg{ID: "ws-1"})
	if m.Canvas() != ws1 {
		t.Error("switching back should reuse the canvas")
	}
	if got := m.Canvas().Viewport().Scale(); math.Abs(got-1.05) > 1e-9 {
		t.Errorf("scale after switching back = %v, want 1.05", got)
	}
}

func TestSwitchWorkspaceMidGesture(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	m.Update(tea.MouseClickMsg{X: 50, Y: mainTitleY, Button: tea.MouseLeft})
	m.Update(ui.SidebarSelectMsg{ID: "ws-2"})

	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners = %d, want %d", got, baseline)
	}
}

func TestSidebarClickOpensWorkspace(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	// list starts three rows below the sidebar top, which is row 1
	click(m, 5, 1+3+1, 0)
	if got := m.ActiveWorkspace(); got != "ws-2" {
		t.Errorf("active = %q, want ws-2", got)
	}
	if m.Focus() != FocusSidebar {
		t.Errorf("focus = %v, want sidebar", m.Focus())
	}

	// the "+ New Workspace" row opens the name modal
	click(m, 5, 1, 0)
	if !m.modal.IsVisible() {
		t.Error("expected the new workspace modal")
	}
}

func TestSidebarWheelScrolls(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, 20)

	wheel(m, 5, 10, false, 0)
	if got := m.sidebar.ScrollOffset(); got != 1 {
		t.Errorf("scroll = %d, want 1", got)
	}
	wheel(m, 5, 10, true, 0)
	if got := m.sidebar.ScrollOffset(); got != 0 {
		t.Errorf("scroll = %d, want 0", got)
	}
}

func TestMouseIgnoredUnderModal(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	sendKey(m, "?")

	m.Update(tea.MouseClickMsg{X: handleCol, Y: 10, Button: tea.MouseLeft})
	if m.SidebarWidth().Resizing() {
		t.Error("pointer input should not reach the layout while a modal is open")
	}
}

func TestModalOpenedMidGestureEndsIt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"panel drag", canvasMidX, mainTitleY},
		{"sidebar resize", handleCol, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(testConfig(), testWidth, testHeight)
			startX := m.Canvas().Board().Panel(mainPanelID).X
			width := m.SidebarWidth().Width()

			m.Update(tea.MouseClickMsg{X: tt.x, Y: tt.y, Button: tea.MouseLeft})
			if got := m.Bus().Count(); got != baseline+2 {
				t.Fatalf("listeners during gesture = %d, want %d", got, baseline+2)
			}

			sendKey(m, "?")
			if !m.modal.IsVisible() {
				t.Fatal("expected the help modal")
			}
			if got := m.Bus().Count(); got != baseline {
				t.Errorf("listeners with modal open = %d, want %d", got, baseline)
			}
			m.Update(tea.MouseReleaseMsg{X: tt.x, Y: tt.y, Button: tea.MouseLeft})
			sendKey(m, "esc")

			m.Update(tea.MouseMotionMsg{X: tt.x + 10, Y: tt.y + 5})
			if got := m.Bus().Count(); got != baseline {
				t.Errorf("listeners after modal = %d, want %d", got, baseline)
			}
			if got := m.Canvas().Board().Dragging(); got != "" {
				t.Errorf("dragging = %q, want none", got)
			}
			if m.SidebarWidth().Resizing() {
				t.Error("sidebar resize should have ended")
			}
			if got := m.Canvas().Board().Panel(mainPanelID).X; got != startX {
				t.Errorf("panel X = %v, want %v", got, startX)
			}
			if got := m.SidebarWidth().Width(); got != width {
				t.Errorf("sidebar width = %v, want %v", got, width)
			}
		})
	}
}

func TestReleaseUnderModalReachesBus(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	sendKey(m, "?")

	var ups int
	m.Bus().Listen(input.PointerUp, "test", func(*input.Event) { ups++ })
	m.Update(tea.MouseMotionMsg{X: canvasMidX, Y: canvasMidY, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: canvasMidX, Y: canvasMidY, Button: tea.MouseLeft})
	if ups != 1 {
		t.Errorf("pointer-ups delivered = %d, want 1", ups)
	}
}

func TestMaximizeShortcutMidDragEndsGesture(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	startX := m.Canvas().Board().Panel(mainPanelID).X

	m.Update(tea.MouseClickMsg{X: canvasMidX, Y: mainTitleY, Button: tea.MouseLeft})
	sendKey(m, "f")
	if got := m.Canvas().Board().Maximized(); got != mainPanelID {
		t.Fatalf("maximized = %q, want %q", got, mainPanelID)
	}
	if got := m.Bus().Count(); got != baseline {
		t.Errorf("listeners after maximize = %d, want %d", got, baseline)
	}

	m.Update(tea.MouseMotionMsg{X: canvasMidX + 10, Y: mainTitleY + 5, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: canvasMidX + 10, Y: mainTitleY + 5, Button: tea.MouseLeft})
	if got := m.Canvas().Board().Panel(mainPanelID).X; got != startX {
		t.Errorf("panel X = %v, want %v", got, startX)
	}
}

func TestBlurReleasesModifier(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	m.Update(tea.KeyPressMsg{Code: tea.KeyLeftCtrl, Mod: tea.ModCtrl})
	if got := m.Cursor(); got != canvas.CursorGrab {
		t.Fatalf("cursor = %q, want %q", got, canvas.CursorGrab)
	}

	m.Update(tea.BlurMsg{})
	if m.Canvas().Viewport().ModifierHeld() {
		t.Error("blur should release the modifier")
	}
	if got := m.Cursor(); got != canvas.CursorDefault {
		t.Errorf("cursor = %q, want %q", got, canvas.CursorDefault)
	}

	m.Update(tea.MouseClickMsg{X: canvasMidX, Y: canvasMidY, Button: tea.MouseLeft})
	if m.Canvas().Viewport().Panning() {
		t.Error("a plain press after blur should not pan")
	}
	m.Update(tea.MouseReleaseMsg{X: canvasMidX, Y: canvasMidY, Button: tea.MouseLeft})
}

func TestModifierKeyShowsGrabCursor(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	m.Update(tea.KeyPressMsg{Code: tea.KeyLeftCtrl, Mod: tea.ModCtrl})
	if !m.Canvas().Viewport().ModifierHeld() {
		t.Fatal("ctrl press should hold the modifier")
	}
	if got := m.Cursor(); got != canvas.CursorGrab {
		t.Errorf("cursor = %q, want %q", got, canvas.CursorGrab)
	}
	if out := ansi.Strip(m.RenderToString()); !strings.Contains(out, panHint) {
		t.Error("expected the pan hint while the modifier is held")
	}

	m.Update(tea.KeyReleaseMsg{Code: tea.KeyLeftCtrl})
	if m.Canvas().Viewport().ModifierHeld() {
		t.Error("release should clear the modifier")
	}
	if got := m.Cursor(); got != canvas.CursorDefault {
		t.Errorf("cursor = %q, want %q", got, canvas.CursorDefault)
	}
}

func TestComposerSendAppendsTurn(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	p := m.Canvas().Board().Panel(mainPanelID)
	turns := len(p.Turns)

	sendKey(m, "i")
	if !m.composer.Focused() {
		t.Fatal("i should focus the composer")
	}
	if m.Canvas().Board().Maximized() != mainPanelID {
		t.Error("i should maximize the focused chat")
	}

	typeText(m, "hello")
	run(m, sendKey(m, "enter"))

	p = m.Canvas().Board().Panel(mainPanelID)
	if got := len(p.Turns); got != turns+1 {
		t.Fatalf("turns = %d, want %d", got, turns+1)
	}
	if got := p.Turns[len(p.Turns)-1]; got != "hello" {
		t.Errorf("last turn = %q, want hello", got)
	}
	if m.composer.Value() != "" {
		t.Error("composer should clear after sending")
	}

	// a second message keeps roles alternating
	typeText(m, "again")
	run(m, sendKey(m, "enter"))
	p = m.Canvas().Board().Panel(mainPanelID)
	if got := p.Turns[len(p.Turns)-2]; got != noReply {
		t.Errorf("expected a placeholder reply, got %q", got)
	}
	if canvas.RoleOf(len(p.Turns)-1) != canvas.RoleUser {
		t.Error("sent message should be a user turn")
	}

	sendKey(m, "esc")
	if m.composer.Focused() {
		t.Error("esc should blur the composer")
	}
	sendKey(m, "esc")
	if m.Canvas().Board().IsMaximized() {
		t.Error("second esc should restore")
	}
}

func TestPasteGoesToComposer(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	m.Update(tea.PasteMsg{Content: "ignored"})
	sendKey(m, "i")
	m.Update(tea.PasteMsg{Content: "pasted"})
	if got := m.composer.Value(); got != "pasted" {
		t.Errorf("composer = %q, want pasted", got)
	}
}

func TestKeyboardPan(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	sendKey(m, "ctrl+right")
	sendKey(m, "alt+down")
	want := geom.Point{X: -32, Y: -32}
	if got := m.Canvas().Viewport().Offset(); got != want {
		t.Errorf("offset = %+v, want %+v", got, want)
	}
}

func TestConfigReload(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	cfg := testConfig()
	cfg.Modifier = "alt"
	cfg.Zoom.Step = 0.1
	cfg.Sidebar.Max = 300
	m.Update(ConfigReloadedMsg{Config: cfg})

	if got := m.Canvas().Viewport().Modifier(); got != input.ModAlt {
		t.Errorf("modifier = %v, want alt", got)
	}
	wheel(m, canvasMidX, canvasMidY, true, tea.ModAlt)
	if got := m.Canvas().Viewport().Scale(); math.Abs(got-1.1) > 1e-9 {
		t.Errorf("scale = %v, want 1.1", got)
	}
	if got := m.SidebarWidth().Bounds().Max; got != 300 {
		t.Errorf("sidebar max = %v, want 300", got)
	}
	if !m.footer.HasFlash() {
		t.Error("expected a reload flash")
	}

	// workspaces visited later get the new settings too
	m.Update(ui.SidebarSelectMsg{ID: "ws-2"})
	if got := m.Canvas().Viewport().Modifier(); got != input.ModAlt {
		t.Errorf("new canvas modifier = %v, want alt", got)
	}
}

func TestConfigReloadRejectsInvalid(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)

	bad := testConfig()
	bad.Zoom.Min = 5
	m.Update(ConfigReloadedMsg{Config: bad})

	if m.config == bad {
		t.Error("invalid config should not be applied")
	}
	if !m.footer.HasFlash() {
		t.Error("expected an error flash")
	}
}

func TestRenderToString(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	out := ansi.Strip(m.RenderToString())
	lines := strings.Split(out, "\n")

	if len(lines) != testHeight {
		t.Errorf("frame has %d lines, want %d", len(lines), testHeight)
	}
	for _, want := range []string{"Marketing Project", "Main Chat", "Zoom: 100% | Pan: 0, 0", "YOUR WORKSPACES"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if !strings.Contains(lines[mainTitleY], "Main Chat") {
		t.Errorf("title row = %q", lines[mainTitleY])
	}
}

func TestRenderModalOverlay(t *testing.T) {
	m := testModelWithSize(testConfig(), testWidth, testHeight)
	sendKey(m, "?")

	out := ansi.Strip(m.RenderToString())
	if !strings.Contains(out, "Keyboard Shortcuts") {
		t.Error("expected the help modal in the frame")
	}
	// the canvas stays visible around the box
	if !strings.Contains(out, "Zoom: 100%") {
		t.Error("expected the status indicator around the modal")
	}
}

func TestView(t *testing.T) {
	m := testModel(testConfig())
	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
	if v.MouseMode != tea.MouseModeAllMotion {
		t.Error("expected all-motion mouse mode for hover and drag")
	}
	if !v.KeyboardEnhancements.ReportEventTypes {
		t.Error("expected key release reporting")
	}
}

func TestFocusString(t *testing.T) {
	if FocusCanvas.String() != "canvas" || FocusSidebar.String() != "sidebar" {
		t.Errorf("got %q and %q", FocusCanvas.String(), FocusSidebar.String())
	}
}
