package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/canvas/internal/keys"
)

// initHuhForm initializes a huh form eagerly so it renders correctly
// immediately. Call this in every modal constructor after creating the form.
func initHuhForm(form *huh.Form) {
	form.Init()
}

// huhFormUpdate is the common Update logic for huh-based modals.
// Enter and Escape belong to the app-layer modal handlers; everything else
// goes to the form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// ModalTheme returns a huh theme built from the current palette. It is
// called per form so a theme switch applies to the next modal opened.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(styles.Accent)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(styles.Text).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(styles.Muted)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(styles.Warning).SetString(" !")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(styles.Warning)

		// Confirm buttons: the focused choice is filled
		t.Focused.FocusedButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Bold(true).
			Foreground(styles.Inverse).
			Background(styles.Accent)
		t.Focused.BlurredButton = lipgloss.NewStyle().
			Padding(0, 2).
			MarginRight(1).
			Foreground(styles.Muted)

		t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(styles.Highlight)
		t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(styles.Muted)
		t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(styles.Highlight)
		t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(styles.Text)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
