package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// WorkspaceNameState - creating or renaming a workspace
// =============================================================================

type WorkspaceNameState struct {
	form        *huh.Form
	name        string
	IsRename    bool
	WorkspaceID string // set when renaming
}

func (*WorkspaceNameState) modalState() {}

func (s *WorkspaceNameState) Title() string {
	if s.IsRename {
		return "Rename Workspace"
	}
	return "New Workspace"
}

func (s *WorkspaceNameState) Help() string {
	return "Enter: save  Esc: cancel"
}

func (s *WorkspaceNameState) Render() string {
	title := styles.Title.Render(s.Title())
	help := styles.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *WorkspaceNameState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetName returns the typed name.
func (s *WorkspaceNameState) GetName() string {
	return s.name
}

func newWorkspaceNameState(name, placeholder string) *WorkspaceNameState {
	s := &WorkspaceNameState{name: name}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder(placeholder).
				CharLimit(styles.NameLimit).
				Value(&s.name),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(styles.InputWidth)

	initHuhForm(s.form)
	return s
}

// NewNewWorkspaceState creates a state for creating a new workspace
func NewNewWorkspaceState() *WorkspaceNameState {
	return newWorkspaceNameState("", "e.g., Design Review")
}

// NewRenameWorkspaceState creates a state for renaming an existing workspace
func NewRenameWorkspaceState(workspaceID, currentName string) *WorkspaceNameState {
	s := newWorkspaceNameState(currentName, "New name")
	s.IsRename = true
	s.WorkspaceID = workspaceID
	return s
}

// =============================================================================
// ConfirmDeleteState - confirming a workspace deletion
// =============================================================================

type ConfirmDeleteState struct {
	form          *huh.Form
	confirmed     bool
	WorkspaceID   string
	WorkspaceName string
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Workspace?" }

func (s *ConfirmDeleteState) Help() string {
	return "←/→: choose  Enter: confirm  Esc: cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := styles.Title.Render(s.Title())

	name := lipgloss.NewStyle().
		Foreground(styles.Highlight).
		Bold(true).
		Render(s.WorkspaceName)

	message := lipgloss.NewStyle().
		Foreground(styles.Text).
		MarginBottom(1).
		Render("Its chats and canvas layout will be discarded.")

	help := styles.Help.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, name, message, s.form.View(), help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Confirmed reports whether "Delete" is the chosen button.
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.confirmed
}

// NewConfirmDeleteState creates a confirmation for deleting a workspace.
// The safe choice is selected initially.
func NewConfirmDeleteState(workspaceID, workspaceName string) *ConfirmDeleteState {
	s := &ConfirmDeleteState{WorkspaceID: workspaceID, WorkspaceName: workspaceName}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Affirmative("Delete").
				Negative("Keep").
				Value(&s.confirmed),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(styles.InputWidth)

	initHuhForm(s.form)
	return s
}
