package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/pkg/tuitest"
)

func TestShortcutsMarkdown(t *testing.T) {
	md := ShortcutsMarkdown("Shortcuts", document.Shortcuts())

	assert.Contains(t, md, "## Shortcuts")
	assert.Contains(t, md, "| `ctrl+n` | New file |")
	assert.Contains(t, md, "| `ctrl+o` | Open file |")
	assert.Contains(t, md, "| `ctrl+s` | Save file |")
}

func TestHelpDialog_View(t *testing.T) {
	h := NewHelpDialog("Keyboard shortcuts", document.Shortcuts())

	view := tuitest.StripANSI(h.View())
	assert.Contains(t, view, "Keyboard shortcuts")
	for _, sc := range document.Shortcuts() {
		assert.Contains(t, view, sc.Keys)
	}
}

func TestFormatKeyDesc(t *testing.T) {
	out := tuitest.StripANSI(formatKeyDesc("ctrl+s", "Save file"))
	assert.Equal(t, "ctrl+s    Save file", out)
}

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(0))
	assert.Empty(t, Pad(-3))
	assert.Len(t, Pad(4), 4)
	assert.Len(t, Pad(maxCachedPad+5), maxCachedPad+5)
}
