package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hay-kot/txtpad/internal/core/notify"
	"github.com/hay-kot/txtpad/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// renderToast renders the current toast truncated to width. It returns "" when
// there is nothing to show.
func renderToast(c *ToastController, width int) string {
	n, ok := c.Current()
	if !ok {
		return ""
	}

	var icon string
	var style lipgloss.Style
	switch n.Level {
	case notify.LevelError:
		icon = styles.IconNotifyError
		style = styles.ToastErrorStyle
	case notify.LevelWarning:
		icon = styles.IconNotifyWarning
		style = styles.ToastWarningStyle
	default:
		icon = styles.IconNotifyInfo
		style = styles.ToastInfoStyle
	}

	content := icon + " " + n.Message
	if width > 0 {
		content = ansi.Truncate(content, max(width-style.GetHorizontalFrameSize(), 1), "…")
	}
	return style.Render(content)
}
