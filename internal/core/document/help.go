package document

// Shortcut is a key combination bound to a session operation.
type Shortcut struct {
	Keys        string `json:"keys"`
	Action      string `json:"action"` // short name used in the status bar
	Description string `json:"description"`
}

// Shortcuts returns the bindings listed by the help dialog, in display order.
func Shortcuts() []Shortcut {
	return []Shortcut{
		{Keys: "ctrl+n", Action: "new", Description: "New file"},
		{Keys: "ctrl+o", Action: "open", Description: "Open file"},
		{Keys: "ctrl+s", Action: "save", Description: "Save file"},
	}
}
