package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/styles"
)

const appTitle = "Text Editor"

// Title returns the window title for a document state: the app name, then
// " - name" when the document is named, then " *" when it has unsaved changes.
func Title(snap document.Snapshot) string {
	var b strings.Builder
	b.WriteString(appTitle)
	if snap.HasName() {
		b.WriteString(" - ")
		b.WriteString(snap.Name)
	}
	if snap.Modified {
		b.WriteString(" *")
	}
	return b.String()
}

// View renders the editor.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	title := m.renderTitleBar()
	footer := m.renderFooter()
	bodyHeight := max(m.height-lipgloss.Height(title)-lipgloss.Height(footer), 1)

	var body string
	switch m.state {
	case stateConfirming:
		if m.confirm != nil {
			body = m.confirm.Overlay(m.width, bodyHeight)
		}
	case statePicking:
		body = m.picker.Overlay(m.width, bodyHeight)
	case stateShowingHelp:
		body = m.helpDialog.Overlay(m.width, bodyHeight)
	default:
		frame := styles.EditorFrameActiveStyle
		if m.busy > 0 {
			frame = styles.EditorFrameStyle
		}
		body = frame.Render(m.editor.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer)
}

func (m Model) renderTitleBar() string {
	snap := m.session.Snapshot()

	title := styles.TitleStyle.Render(appTitle)
	if snap.HasName() {
		title += styles.TitleStyle.Render(" - " + snap.Name)
	}
	if snap.Modified {
		title += styles.TitleModifiedStyle.Render(" *")
	}

	right := ""
	if m.buildInfo.Version != "" {
		right = styles.TextMutedStyle.Render(m.buildInfo.Version)
	}

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(right)-styles.TitleBarStyle.GetHorizontalFrameSize(), 1)
	return styles.TitleBarStyle.Width(m.width).Render(title + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter() string {
	if toast := renderToast(m.toasts, m.width); toast != "" {
		return toast
	}

	status := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.busy > 0 {
		status = styles.TextWarningStyle.Render("working… ") + status
	}
	return styles.StatusBarStyle.Width(m.width).Render(status)
}
