package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/canvas/internal/keys"
	"github.com/zhubert/canvas/internal/ui/modals"
)

// handleModalKey routes modal key events to the appropriate handler based on modal state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.WorkspaceNameState:
		return m.handleWorkspaceNameModal(key, msg, s)
	case *modals.ConfirmDeleteState:
		return m.handleConfirmDeleteModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleWorkspaceNameModal creates or renames a workspace.
func (m *Model) handleWorkspaceNameModal(key string, msg tea.KeyPressMsg, state *modals.WorkspaceNameState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		name := state.GetName()
		if state.IsRename {
			if err := m.renameWorkspace(state.WorkspaceID, name); err != nil {
				m.modal.SetError(errorText(err))
				return m, nil
			}
			m.modal.Hide()
			return m, m.ShowFlashSuccess("Workspace renamed")
		}

		ws, err := m.createWorkspace(name)
		if err != nil {
			m.modal.SetError(errorText(err))
			return m, nil
		}
		m.modal.Hide()
		m.setFocus(FocusCanvas)
		return m, m.ShowFlashSuccess("Created " + ws.Name)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleConfirmDeleteModal deletes a workspace once the user picks Delete.
func (m *Model) handleConfirmDeleteModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmDeleteState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Confirmed() {
			return m, nil
		}
		if err := m.deleteWorkspace(state.WorkspaceID); err != nil {
			return m, m.ShowFlashForError(err)
		}
		return m, m.ShowFlashInfo("Deleted " + state.WorkspaceName)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpShortcutTrigger runs the shortcut picked in the help modal.
func (m *Model) handleHelpShortcutTrigger(displayKey string) (tea.Model, tea.Cmd) {
	key := helpKeyToShortcutKey(displayKey)
	if key == "" {
		return m, nil
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}
