package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/txtpad/internal/core/styles"
)

const confirmModalWidth = 52

// ConfirmResult is the state of a ConfirmModal.
type ConfirmResult int

const (
	ConfirmPending ConfirmResult = iota
	ConfirmAccepted
	ConfirmDeclined
	ConfirmDismissed
)

// ConfirmModal is a yes/no dialog backed by a huh confirm field.
type ConfirmModal struct {
	message string
	form    *huh.Form
	value   *bool
	result  ConfirmResult
}

// NewConfirmModal creates a new confirmation modal. "Yes" is preselected, so
// enter accepts.
func NewConfirmModal(message string) *ConfirmModal {
	value := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&value),
		),
	).
		WithShowHelp(false).
		WithShowErrors(false).
		WithWidth(confirmModalWidth - 6).
		WithTheme(huh.ThemeCharm())

	return &ConfirmModal{
		message: message,
		form:    form,
		value:   &value,
	}
}

// Init focuses the confirm field.
func (m *ConfirmModal) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles input for the confirmation modal. Messages other than keys
// must be forwarded too: the form completes through its own commands.
func (m *ConfirmModal) Update(msg tea.Msg) tea.Cmd {
	if m.result != ConfirmPending {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.result = ConfirmDismissed
		return nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if *m.value {
			m.result = ConfirmAccepted
		} else {
			m.result = ConfirmDeclined
		}
		return nil
	case huh.StateAborted:
		m.result = ConfirmDismissed
		return nil
	}

	return cmd
}

// Result returns the current state of the dialog.
func (m *ConfirmModal) Result() ConfirmResult {
	return m.result
}

// Done reports whether the dialog has been answered or dismissed.
func (m *ConfirmModal) Done() bool {
	return m.result != ConfirmPending
}

// Message returns the prompt shown to the user.
func (m *ConfirmModal) Message() string {
	return m.message
}

// View renders the confirmation modal.
func (m *ConfirmModal) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.form.View(),
		styles.ModalHelpStyle.Render("y/n choose • enter confirm • esc dismiss"),
	)
	return styles.ModalStyle.Width(confirmModalWidth).Render(content)
}

// Overlay renders the modal centered in a width x height area.
func (m *ConfirmModal) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View())
}
