package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which bindings the footer shows.
type FooterMode int

const (
	ModeCanvas FooterMode = iota
	ModeSidebar
	ModeSearch
	ModeMaximized
	ModeComposer
)

// FlashType is the severity of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible.
const DefaultFlashDuration = 4 * time.Second

// FlashMessage is a transient footer message.
type FlashMessage struct {
	Text      string
	Type      FlashType
	Duration  time.Duration
	CreatedAt time.Time
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg asks the app to check whether the flash has expired.
type FlashTickMsg time.Time

// FlashTick schedules the next flash expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	modifier     string
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{modifier: "ctrl"}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the mode and the name of the pan/zoom modifier.
func (f *Footer) SetContext(mode FooterMode, modifier string) {
	f.mode = mode
	if modifier != "" {
		f.modifier = modifier
	}
}

// SetFlash shows a message for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, t FlashType) {
	f.SetFlashWithDuration(text, t, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for d.
func (f *Footer) SetFlashWithDuration(text string, t FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{Text: text, Type: t, Duration: d, CreatedAt: time.Now()}
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the showing flash message, or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearFlash removes the flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// ClearIfExpired removes an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the bindings shown for the current mode.
func (f *Footer) Bindings() []KeyBinding {
	m := f.modifier
	switch f.mode {
	case ModeSidebar:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "n", Desc: "new workspace"},
			{Key: "r", Desc: "rename"},
			{Key: "d", Desc: "delete"},
			{Key: "/", Desc: "search"},
			{Key: "[/]", Desc: "resize"},
			{Key: "tab", Desc: "canvas"},
			{Key: "q", Desc: "quit"},
		}
	case ModeSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeMaximized:
		return []KeyBinding{
			{Key: "i", Desc: "compose"},
			{Key: "y", Desc: "copy"},
			{Key: "f/esc", Desc: "restore"},
			{Key: "q", Desc: "quit"},
		}
	case ModeComposer:
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+v", Desc: "paste"},
			{Key: "esc", Desc: "done"},
		}
	default:
		return []KeyBinding{
			{Key: m + "+drag", Desc: "pan"},
			{Key: m + "+wheel", Desc: "zoom"},
			{Key: "tab", Desc: "next panel"},
			{Key: "f", Desc: "maximize"},
			{Key: "b", Desc: "branch"},
			{Key: "y", Desc: "copy"},
			{Key: "+/-/0", Desc: "zoom/reset"},
			{Key: "s", Desc: "sidebar"},
			{Key: "q", Desc: "quit"},
		}
	}
}

func flashIcon(t FlashType) (string, lipgloss.Style) {
	switch t {
	case FlashError:
		return "✕", FlashErrorStyle
	case FlashWarning:
		return "⚠", FlashErrorStyle.Foreground(ColorWarning)
	case FlashSuccess:
		return "✓", FlashInfoStyle.Foreground(ColorSecondary)
	default:
		return "ℹ", FlashInfoStyle
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		icon, style := flashIcon(f.flashMessage.Type)
		return FooterStyle.Width(f.width).Render(style.Render(icon + " " + f.flashMessage.Text))
	}

	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxWidth(f.width).Render(content)
}
