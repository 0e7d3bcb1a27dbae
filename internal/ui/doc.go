// Package ui provides the visual components of the canvas workspace.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├──────────────┬┬─────────────────────────────────────┤
//	│              ││                                     │
//	│   Sidebar    ││   Canvas                            │
//	│  (resizable) ││   panels, connectors, grid          │
//	│              ││                                     │
//	├──────────────┴┴─────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// The column between sidebar and canvas is the resize handle. ViewContext
// turns the terminal size and the sidebar width into these regions.
//
// # Components
//
// Header shows the app title and the active workspace with its panel count.
//
// Footer shows shortcuts for the focused area, or a flash message.
//
// Sidebar lists workspaces with fuzzy search, keyboard selection and mouse
// hit testing for the new-workspace button, rows and the account entry.
//
// CanvasView draws a canvas.Canvas onto an ultraviolet screen buffer. Panel
// chrome comes from RenderPanel, and panel bodies from RenderTurns, which
// renders markdown with chroma highlighting for code blocks.
//
// Modal hosts one of the states in the modals package.
//
// # Styles
//
// Styles in styles.go are rebuilt from the active Theme whenever the theme
// changes; see SetTheme.
package ui
