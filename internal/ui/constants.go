package ui

// Layout constants, in terminal cells.
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// HandleWidth is the width of the sidebar resize handle
	HandleWidth = 1

	// ComposerHeight is the height of the panel composer including borders
	ComposerHeight = 3

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes laid out
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// MinCanvasWidth keeps some canvas visible however wide the sidebar is
	MinCanvasWidth = 10

	// DefaultWrapWidth is used when a panel body has no width yet
	DefaultWrapWidth = 80

	// SidebarSearchCharLimit bounds the sidebar search query
	SidebarSearchCharLimit = 40
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 64

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)
