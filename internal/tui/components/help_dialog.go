// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/styles"
)

const helpDialogWidth = 44

// ShortcutsMarkdown renders the shortcut list as a markdown table.
func ShortcutsMarkdown(title string, shortcuts []document.Shortcut) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "## %s\n\n", title)
	}
	b.WriteString("| Keys | Action |\n|------|--------|\n")
	for _, sc := range shortcuts {
		fmt.Fprintf(&b, "| `%s` | %s |\n", sc.Keys, sc.Description)
	}
	return b.String()
}

// RenderShortcuts renders the shortcut list for a terminal of the given width
// using glamour. On renderer failure it falls back to aligned plain lines.
func RenderShortcuts(title string, shortcuts []document.Shortcut, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err := r.Render(ShortcutsMarkdown(title, shortcuts))
		if err == nil {
			return strings.Trim(out, "\n")
		}
	}

	lines := make([]string, 0, len(shortcuts)+2)
	if title != "" {
		lines = append(lines, styles.HelpDialogSectionStyle.Render(title), "")
	}
	for _, sc := range shortcuts {
		lines = append(lines, formatKeyDesc(sc.Keys, sc.Description))
	}
	return strings.Join(lines, "\n")
}

// HelpDialog displays the keyboard shortcuts.
type HelpDialog struct {
	title     string
	shortcuts []document.Shortcut
	rendered  string
}

// NewHelpDialog creates a new help dialog for the given shortcuts.
func NewHelpDialog(title string, shortcuts []document.Shortcut) *HelpDialog {
	return &HelpDialog{
		title:     title,
		shortcuts: shortcuts,
		rendered:  RenderShortcuts("", shortcuts, helpDialogWidth-6),
	}
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		"",
		h.rendered,
		styles.HelpDialogHelpStyle.Render("esc/enter close"),
	)

	return styles.HelpDialogModalStyle.Width(helpDialogWidth).Render(content)
}

// Overlay renders the help dialog centered in a width x height area.
func (h *HelpDialog) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, h.View())
}

// formatKeyDesc formats a key-description pair with consistent alignment.
func formatKeyDesc(key, desc string) string {
	const keyWidth = 10

	// Pad key to fixed width for alignment using display width (handles Unicode)
	displayWidth := lipgloss.Width(key)
	paddedKey := key + Pad(max(keyWidth-displayWidth, 1))

	return styles.TextPrimaryBoldStyle.Render(paddedKey) + styles.TextForegroundStyle.Render(desc)
}
