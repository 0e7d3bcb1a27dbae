package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/canvas"
	"github.com/zhubert/canvas/internal/config"
	"github.com/zhubert/canvas/internal/geom"
	"github.com/zhubert/canvas/internal/input"
	"github.com/zhubert/canvas/internal/layout"
	"github.com/zhubert/canvas/internal/logger"
	"github.com/zhubert/canvas/internal/ui"
	"github.com/zhubert/canvas/internal/ui/modals"
	"github.com/zhubert/canvas/internal/workspace"
)

// Focus represents which area receives keyboard input
type Focus int

const (
	FocusCanvas Focus = iota
	FocusSidebar
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	if f == FocusSidebar {
		return "sidebar"
	}
	return "canvas"
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	store   *workspace.Store

	// Input plumbing shared by every controller
	bus        *input.Bus
	translator *input.Translator

	sidebarWidth *layout.SidebarWidth

	// One canvas per workspace, built on first visit. Only the active one is
	// mounted on the bus.
	canvases map[string]*canvas.Canvas
	active   string

	ctx        *ui.ViewContext
	header     *ui.Header
	footer     *ui.Footer
	sidebar    *ui.Sidebar
	canvasView *ui.CanvasView
	composer   *ui.Composer
	modal      *ui.Modal

	width  int
	height int
	focus  Focus

	handleHot   bool   // pointer is over the sidebar resize handle
	cursor      string // pointer shape last sent to the terminal
	keyReleases bool   // terminal reports key release events
}

// ConfigReloadedMsg is posted by the config watcher after the file changes.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// New creates the app model over a workspace store. The workspace named in
// the config is opened, or the first one.
func New(cfg *config.Config, store *workspace.Store, version string) *Model {
	if err := ui.SetThemeByName(cfg.GetTheme()); err != nil {
		logger.WithComponent("app").Warn("unknown theme, using default", "theme", cfg.GetTheme())
	}

	metrics := cellMetrics(cfg)
	bus := input.NewBus()
	m := &Model{
		config:       cfg,
		version:      version,
		store:        store,
		bus:          bus,
		translator:   input.NewTranslator(metrics),
		sidebarWidth: layout.NewSidebarWidth(bus, sidebarBounds(cfg)),
		canvases:     make(map[string]*canvas.Canvas),
		ctx:          ui.NewViewContext(metrics),
		header:       ui.NewHeader(),
		footer:       ui.NewFooter(),
		sidebar:      ui.NewSidebar(),
		canvasView:   ui.NewCanvasView(),
		composer:     ui.NewComposer(),
		modal:        ui.NewModal(),
		focus:        FocusCanvas,
		cursor:       canvas.CursorDefault,
	}
	m.footer.SetContext(ui.ModeCanvas, cfg.Modifier)

	m.refreshSidebar()
	start := cfg.Workspace
	if _, err := store.Get(start); err != nil {
		start = ""
		if list := store.List(); len(list) > 0 {
			start = list[0].ID
		}
	}
	if start != "" {
		if err := m.switchWorkspace(start); err != nil {
			logger.WithComponent("app").Error("failed to open workspace", "id", start, "error", err)
		}
	}
	m.updateSizes()
	return m
}

func cellMetrics(cfg *config.Config) geom.CellMetrics {
	return geom.CellMetrics{Width: cfg.Cell.Width, Height: cfg.Cell.Height}
}

func sidebarBounds(cfg *config.Config) layout.SidebarBounds {
	return layout.SidebarBounds{Min: cfg.Sidebar.Min, Max: cfg.Sidebar.Max, Default: cfg.Sidebar.Default}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Close releases every listener the model holds. The bus is empty afterwards.
func (m *Model) Close() {
	if c := m.activeCanvas(); c != nil {
		c.Unmount()
	}
	m.sidebarWidth.Close()
	logger.WithComponent("app").Debug("closed", "listeners", m.bus.Count())
}

// Bus returns the input bus, mainly for listener accounting.
func (m *Model) Bus() *input.Bus {
	return m.bus
}

// ActiveWorkspace returns the ID of the workspace on the canvas.
func (m *Model) ActiveWorkspace() string {
	return m.active
}

// Canvas returns the active workspace's canvas, or nil.
func (m *Model) Canvas() *canvas.Canvas {
	return m.activeCanvas()
}

// Focus returns the focused area.
func (m *Model) Focus() Focus {
	return m.focus
}

// SidebarWidth returns the sidebar width controller.
func (m *Model) SidebarWidth() *layout.SidebarWidth {
	return m.sidebarWidth
}

func (m *Model) activeCanvas() *canvas.Canvas {
	return m.canvases[m.active]
}

// showModal opens state on top of everything. Pointer gestures end first,
// since the modal keeps pointer input away from the layout.
func (m *Model) showModal(state modals.ModalState) {
	m.cancelGestures()
	m.modal.Show(state)
}

// setFocus moves keyboard focus between the sidebar and the canvas.
func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.focus = f
	m.sidebar.SetFocused(f == FocusSidebar)
	if f == FocusSidebar {
		m.composer.Blur()
	}
	logger.WithComponent("app").Debug("focus changed", "focus", f.String())
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.ctx.Update(m.width, m.height, m.sidebarWidth.Width())

	m.header.SetWidth(m.ctx.TerminalWidth)
	m.footer.SetWidth(m.ctx.TerminalWidth)
	m.sidebar.SetSize(m.ctx.SidebarRect().Dx(), m.ctx.ContentHeight)
	m.syncCanvasRegion()
}

// syncCanvasRegion hands the canvas its pixel region, which also moves the
// zoom pivot to the region center.
func (m *Model) syncCanvasRegion() {
	if c := m.activeCanvas(); c != nil {
		c.SetMetrics(m.ctx.Metrics)
		c.SetRegion(m.ctx.CanvasPixels())
	}
}

// syncComposer keeps the composer attached to the maximized panel.
func (m *Model) syncComposer() {
	c := m.activeCanvas()
	if c == nil || !c.Board().IsMaximized() {
		m.composer.Blur()
		return
	}
	m.composer.Attach(c.Board().Maximized())
}
