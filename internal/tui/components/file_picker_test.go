package components

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/txtpad/pkg/tuitest"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		file     string
		want     bool
	}{
		{"no patterns accepts all", nil, "image.png", true},
		{"txt matches", []string{"*.txt"}, "notes.txt", true},
		{"md rejected", []string{"*.txt"}, "notes.md", false},
		{"any of several", []string{"*.txt", "*.md"}, "notes.md", true},
		{"brace alternation", []string{"*.{txt,log}"}, "app.log", true},
		{"invalid pattern ignored", []string{"[", "*.txt"}, "a.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Accepts(tt.patterns, tt.file))
		})
	}
}

func pickerFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "A.txt", "notes.md", ".hidden.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner.txt"), []byte("inner"), 0o644))
	return dir
}

func entryNames(p *FilePicker) []string {
	var names []string
	for _, item := range p.list.Items() {
		names = append(names, item.(pickerEntry).name)
	}
	return names
}

func newTestPicker(t *testing.T, dir string, accept []string, hidden bool) *FilePicker {
	t.Helper()
	p := NewFilePicker(dir, accept, hidden)
	require.NoError(t, p.Err())
	p.SetSize(60, 20)
	return p
}

func TestFilePicker_ListsDirsFirstAndFilters(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, false)

	assert.Equal(t, []string{"..", "sub", "A.txt", "b.txt"}, entryNames(p))
}

func TestFilePicker_ShowHidden(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, true)

	assert.Contains(t, entryNames(p), ".hidden.txt")
}

func TestFilePicker_TabShowsAllFiles(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, false)

	res, _ := p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PickerBrowsing, res)
	assert.True(t, p.ShowingAll())
	assert.Contains(t, entryNames(p), "notes.md")
	assert.Contains(t, tuitest.StripANSI(p.View()), "all files")

	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.NotContains(t, entryNames(p), "notes.md")
}

func TestFilePicker_SelectFile(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, false)

	// "..", "sub", "A.txt"
	p.Update(tuitest.KeyDown())
	p.Update(tuitest.KeyDown())

	res, _ := p.Update(tuitest.KeyEnter())
	require.Equal(t, PickerSelected, res)
	assert.Equal(t, filepath.Join(p.Dir(), "A.txt"), p.Selected())

	p.Reset()
	assert.Empty(t, p.Selected())
}

func TestFilePicker_EnterDirectoryAndBack(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, false)
	start := p.Dir()

	p.list.Select(1) // sub
	res, _ := p.Update(tuitest.KeyEnter())
	assert.Equal(t, PickerBrowsing, res)
	assert.Equal(t, filepath.Join(start, "sub"), p.Dir())
	assert.Equal(t, []string{"..", "inner.txt"}, entryNames(p))

	p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, start, p.Dir())
}

func TestFilePicker_Cancel(t *testing.T) {
	p := newTestPicker(t, pickerFixture(t), nil, false)

	res, _ := p.Update(tuitest.KeyEsc())
	assert.Equal(t, PickerCancelled, res)
}

func TestFilePicker_LoadMissingDir(t *testing.T) {
	p := newTestPicker(t, pickerFixture(t), nil, false)
	before := p.Dir()

	err := p.Load(filepath.Join(before, "nope"))
	require.Error(t, err)
	assert.Equal(t, before, p.Dir())
}

func TestFilePicker_LoadErrorKeepsList(t *testing.T) {
	dir := pickerFixture(t)
	p := newTestPicker(t, dir, []string{"*.txt"}, false)
	start := p.Dir()

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "sub")))

	p.list.Select(1) // sub, now gone
	res, _ := p.Update(tuitest.KeyEnter())
	assert.Equal(t, PickerBrowsing, res)
	require.Error(t, p.Err())
	assert.Equal(t, start, p.Dir())

	view := tuitest.StripANSI(p.View())
	assert.Contains(t, view, "read dir")
	assert.Contains(t, view, "A.txt")
	assert.Contains(t, view, "b.txt")

	p.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.NoError(t, p.Err())
}
