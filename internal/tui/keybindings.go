package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/hay-kot/txtpad/internal/core/document"
)

// KeyMap holds the editor-level bindings. They are matched before the text
// area sees a key, so the text area never receives them.
type KeyMap struct {
	New  key.Binding
	Open key.Binding
	Save key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap builds the document bindings from document.Shortcuts and adds
// help and quit.
func DefaultKeyMap() KeyMap {
	bindings := make(map[string]key.Binding)
	for _, sc := range document.Shortcuts() {
		bindings[sc.Action] = key.NewBinding(key.WithKeys(sc.Keys), key.WithHelp(sc.Keys, sc.Action))
	}

	return KeyMap{
		New:  bindings["new"],
		Open: bindings["open"],
		Save: bindings["save"],
		Help: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Open, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.New, k.Open, k.Save}, {k.Help, k.Quit}}
}
