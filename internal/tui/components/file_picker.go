package components

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/txtpad/internal/core/styles"
)

// PickerResult is what a FilePicker update produced.
type PickerResult int

const (
	PickerBrowsing PickerResult = iota
	PickerSelected
	PickerCancelled
)

// Accepts reports whether name matches any of the doublestar patterns. An
// empty pattern list accepts everything.
func Accepts(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

type pickerEntry struct {
	name     string
	path     string
	dir      bool
	parent   bool
	accepted bool
}

func (e pickerEntry) FilterValue() string { return e.name }

type pickerDelegate struct{}

func (pickerDelegate) Height() int                             { return 1 }
func (pickerDelegate) Spacing() int                            { return 0 }
func (pickerDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (pickerDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(pickerEntry)
	if !ok {
		return
	}

	var line string
	switch {
	case e.dir:
		line = styles.PickerDirStyle.Render(styles.IconFolder + " " + e.name + "/")
	case e.accepted:
		line = styles.PickerFileStyle.Render(styles.IconFile + " " + e.name)
	default:
		line = styles.PickerDimmedStyle.Render(styles.IconFile + " " + e.name)
	}

	if index == m.Index() {
		line = styles.PickerSelectedStyle.Render("> ") + line
	} else {
		line = "  " + line
	}

	_, _ = fmt.Fprint(w, line)
}

// FilePicker browses directories and picks a single file. Files not matching
// the accept patterns are hidden until the user toggles them on: the filter is
// a convenience, not a restriction.
type FilePicker struct {
	list       list.Model
	dir        string
	accept     []string
	showAll    bool
	showHidden bool
	selected   string
	err        error
	width      int
	height     int
}

// NewFilePicker creates a picker rooted at dir.
func NewFilePicker(dir string, accept []string, showHidden bool) *FilePicker {
	l := list.New(nil, pickerDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	p := &FilePicker{
		list:       l,
		accept:     accept,
		showHidden: showHidden,
	}
	p.err = p.Load(dir)
	return p
}

// Load lists dir.
func (p *FilePicker) Load(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("read dir: %w", err)
	}

	var dirs, files []list.Item
	for _, de := range entries {
		name := de.Name()
		if !p.showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(abs, name)
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}

		if isDir {
			dirs = append(dirs, pickerEntry{name: name, path: path, dir: true})
			continue
		}

		accepted := Accepts(p.accept, name)
		if !accepted && !p.showAll {
			continue
		}
		files = append(files, pickerEntry{name: name, path: path, accepted: accepted})
	}

	byName := func(items []list.Item) {
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].(pickerEntry).name) < strings.ToLower(items[j].(pickerEntry).name)
		})
	}
	byName(dirs)
	byName(files)

	items := make([]list.Item, 0, len(dirs)+len(files)+1)
	if parent := filepath.Dir(abs); parent != abs {
		items = append(items, pickerEntry{name: "..", path: parent, dir: true, parent: true})
	}
	items = append(items, dirs...)
	items = append(items, files...)

	p.list.ResetFilter()
	p.list.SetItems(items)
	p.list.ResetSelected()
	p.dir = abs
	p.err = nil
	return nil
}

// Dir returns the directory being listed.
func (p *FilePicker) Dir() string {
	return p.dir
}

// Selected returns the chosen file path, empty until a file is picked.
func (p *FilePicker) Selected() string {
	return p.selected
}

// Reset clears the selection so the same file can be picked again.
func (p *FilePicker) Reset() {
	p.selected = ""
}

// Err returns the last directory read error.
func (p *FilePicker) Err() error {
	return p.err
}

// ShowingAll reports whether files outside the accept patterns are listed.
func (p *FilePicker) ShowingAll() bool {
	return p.showAll
}

// SetSize sets the picker dimensions.
func (p *FilePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
	// header, error line, help and frame
	p.list.SetSize(width, max(height-5, 1))
}

// Update handles input for the picker.
func (p *FilePicker) Update(msg tea.Msg) (PickerResult, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || p.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return PickerBrowsing, cmd
	}

	switch keyMsg.String() {
	case "esc":
		if p.list.FilterState() == list.FilterApplied {
			p.list.ResetFilter()
			return PickerBrowsing, nil
		}
		return PickerCancelled, nil
	case "tab":
		p.showAll = !p.showAll
		p.err = p.Load(p.dir)
		return PickerBrowsing, nil
	case "backspace", "left":
		p.err = p.Load(filepath.Dir(p.dir))
		return PickerBrowsing, nil
	case "enter":
		entry, ok := p.list.SelectedItem().(pickerEntry)
		if !ok {
			return PickerBrowsing, nil
		}
		if entry.dir {
			p.err = p.Load(entry.path)
			return PickerBrowsing, nil
		}
		p.selected = entry.path
		return PickerSelected, nil
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return PickerBrowsing, cmd
}

// View renders the picker.
func (p *FilePicker) View() string {
	filter := strings.Join(p.accept, ", ")
	if filter == "" || p.showAll {
		filter = "all files"
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Open file"),
		styles.PickerPathStyle.Render(p.dir),
	)

	parts := []string{header, p.list.View()}
	if p.err != nil {
		parts = append(parts, styles.TextErrorStyle.Render(p.err.Error()))
	}
	parts = append(parts, styles.ModalHelpStyle.Render(fmt.Sprintf(
		"showing %s • tab toggle filter • enter open • backspace up • / search • esc cancel", filter)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Overlay renders the picker in a modal box centered in a width x height area.
func (p *FilePicker) Overlay(width, height int) string {
	box := styles.ModalStyle.Width(max(width-8, 20)).Render(p.View())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
