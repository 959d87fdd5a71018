package styles

// Notification icons
var (
	IconNotifyInfo    = "●"
	IconNotifyWarning = "▲"
	IconNotifyError   = "✘"
)

// Picker icons
var (
	IconFolder = "▸"
	IconFile   = " "
)
