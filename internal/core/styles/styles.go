// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// Title bar.
	TitleBarStyle      lipgloss.Style
	TitleStyle         lipgloss.Style
	TitleModifiedStyle lipgloss.Style
	TitleActionStyle   lipgloss.Style

	// Editor area.
	EditorFrameStyle       lipgloss.Style
	EditorFrameActiveStyle lipgloss.Style
	StatusBarStyle         lipgloss.Style

	// Shared text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Modals.
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ConfirmMessageStyle lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// File picker.
	PickerDirStyle      lipgloss.Style
	PickerFileStyle     lipgloss.Style
	PickerDimmedStyle   lipgloss.Style
	PickerSelectedStyle lipgloss.Style
	PickerPathStyle     lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleBarStyle = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#ffffff")).
		Padding(0, 2)
	TitleStyle = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true)
	TitleModifiedStyle = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Warning).
		Bold(true)
	TitleActionStyle = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Secondary)

	EditorFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Muted).
		Padding(0, 1)
	EditorFrameActiveStyle = EditorFrameStyle.
		BorderForeground(p.Primary)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 1)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Bold(true).
		MarginBottom(1)

	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(p.Secondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	PickerDirStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	PickerFileStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	PickerDimmedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PickerSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	PickerPathStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)

	// Toasts replace the single footer line, so they carry no border.
	toastBase := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)
	ToastInfoStyle = toastBase.Foreground(p.Success)
	ToastWarningStyle = toastBase.Foreground(p.Warning)
	ToastErrorStyle = toastBase.Foreground(p.Error)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
