package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/txtpad/internal/core/document"
)

func TestDefaultKeyMap_matchesShortcuts(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlN}, km.New},
		{tea.KeyMsg{Type: tea.KeyCtrlO}, km.Open},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, km.Save},
		{tea.KeyMsg{Type: tea.KeyF1}, km.Help},
		{tea.KeyMsg{Type: tea.KeyCtrlQ}, km.Quit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		assert.True(t, key.Matches(tt.msg, tt.binding), tt.msg.String())
	}

	shortcuts := document.Shortcuts()
	for i, b := range []key.Binding{km.New, km.Open, km.Save} {
		assert.Equal(t, shortcuts[i].Keys, b.Help().Key)
		assert.Equal(t, shortcuts[i].Action, b.Help().Desc)
	}
}

func TestDefaultKeyMap_plainKeysDoNotMatch(t *testing.T) {
	km := DefaultKeyMap()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}

	assert.False(t, key.Matches(msg, km.New))
	assert.False(t, key.Matches(msg, km.Open))
	assert.False(t, key.Matches(msg, km.Save))
}
