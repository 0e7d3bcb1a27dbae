package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/zhubert/canvas/internal/ui/modals"
)

// Color palette, rebuilt from the active theme by regenerateStyles.
var (
	ColorPrimary     = lipgloss.Color("#7C3AED")
	ColorSecondary   = lipgloss.Color("#06B6D4")
	ColorBorder      = lipgloss.Color("#374151")
	ColorBorderFocus = lipgloss.Color("#7C3AED")
	ColorBg          = lipgloss.Color("#1F2937")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#9CA3AF")
	ColorTextInverse = lipgloss.Color("#1F2937")
	ColorUser        = lipgloss.Color("#A78BFA")
	ColorAssistant   = lipgloss.Color("#22D3EE")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorInfo        = lipgloss.Color("#06B6D4")
	ColorError       = lipgloss.Color("#EF4444")
	ColorConnector   = lipgloss.Color("#C084FC")
	ColorGrid        = lipgloss.Color("#374151")
	ColorCodeBg      = lipgloss.Color("#1E1E2E")
	ColorSelected    = lipgloss.Color("#7C3AED")
)

// Header and footer styles
var (
	HeaderTitleStyle lipgloss.Style
	FooterStyle      lipgloss.Style
	FooterKeyStyle   lipgloss.Style
	FooterDescStyle  lipgloss.Style
	FlashInfoStyle   lipgloss.Style
	FlashErrorStyle  lipgloss.Style
)

// Sidebar styles
var (
	SidebarSectionStyle  lipgloss.Style
	SidebarItemStyle     lipgloss.Style
	SidebarSelectedStyle lipgloss.Style
	SidebarActiveStyle   lipgloss.Style
	SidebarButtonStyle   lipgloss.Style
	SidebarAccountStyle  lipgloss.Style
	SidebarHandleStyle   lipgloss.Style
	SidebarHandleHot     lipgloss.Style
	SidebarMatchStyle    lipgloss.Style
)

// Panel and chat styles
var (
	PanelBorderStyle        lipgloss.Style
	PanelFocusedBorderStyle lipgloss.Style
	PanelTitleStyle         lipgloss.Style
	PanelGlyphStyle         lipgloss.Style
	ChatUserLabelStyle      lipgloss.Style
	ChatAssistantLabelStyle lipgloss.Style
	ChatUserBubbleStyle     lipgloss.Style
	ChatMessageStyle        lipgloss.Style
	ChatCodeBlockStyle      lipgloss.Style
	ComposerStyle           lipgloss.Style
	ComposerFocusedStyle    lipgloss.Style
)

// Canvas styles
var (
	CanvasGridStyle   lipgloss.Style
	ConnectorStyle    lipgloss.Style
	StatusStyle       lipgloss.Style
	CanvasHintStyle   lipgloss.Style
	CanvasEmptyStyle  lipgloss.Style
	OverlayShadeStyle lipgloss.Style
)

// Markdown rendering styles
var (
	MarkdownHeadingStyle    lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FlashInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Bold(true)

	FlashErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	SidebarSectionStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Bold(true).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(ColorSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	SidebarActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SidebarButtonStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	SidebarAccountStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	SidebarHandleStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	SidebarHandleHot = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	SidebarMatchStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	PanelBorderStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	PanelFocusedBorderStyle = lipgloss.NewStyle().
		Foreground(ColorBorderFocus).
		Bold(true)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	PanelGlyphStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatUserLabelStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantLabelStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatUserBubbleStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorUser).
		Padding(0, 1)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatCodeBlockStyle = lipgloss.NewStyle().
		Background(ColorCodeBg)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ComposerFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	MarkdownHeadingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Background(ColorCodeBg)

	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Underline(true)

	CanvasGridStyle = lipgloss.NewStyle().
		Foreground(ColorGrid)

	ConnectorStyle = lipgloss.NewStyle().
		Foreground(ColorConnector).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorBg).
		Padding(0, 1)

	CanvasHintStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	CanvasEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	OverlayShadeStyle = lipgloss.NewStyle().
		Foreground(ColorGrid).
		Faint(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		MarginTop(1)

	modals.SetStyles(modals.Styles{
		Palette: modals.Palette{
			Accent:    ColorPrimary,
			Highlight: ColorSecondary,
			Text:      ColorText,
			Muted:     ColorTextMuted,
			Inverse:   ColorTextInverse,
			Warning:   ColorWarning,
		},
		Title:      ModalTitleStyle,
		Help:       ModalHelpStyle,
		Width:      ModalWidth,
		InputWidth: ModalInputWidth,
		NameLimit:  ModalInputCharLimit,
	})
}
