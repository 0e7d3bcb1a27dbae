package app

import (
	stderrors "errors"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/errors"
	"github.com/zhubert/canvas/internal/ui"
)

// ShowFlash displays a flash message in the footer and returns a command to start the auto-dismiss timer
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) tea.Cmd {
	return m.ShowFlash(text, ui.FlashSuccess)
}

// ShowFlashForError reports err in the footer. Bad input warns, anything else
// is an error.
func (m *Model) ShowFlashForError(err error) tea.Cmd {
	switch errors.GetKind(err) {
	case errors.KindInvalid, errors.KindNotFound:
		return m.ShowFlashWarning(errorText(err))
	default:
		return m.ShowFlashError(errorText(err))
	}
}

// errorText drops the operation prefix, which means nothing to a user.
func errorText(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Context != "" {
			return e.Context
		}
		return e.Err.Error()
	}
	return err.Error()
}
