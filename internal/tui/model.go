// Package tui implements the terminal editor: a text area bound to a single
// document session, plus the open, confirm and help dialogs around it.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/txtpad/internal/core/config"
	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/logging"
	"github.com/hay-kot/txtpad/internal/core/notify"
	"github.com/hay-kot/txtpad/internal/core/styles"
	"github.com/hay-kot/txtpad/internal/tui/components"
)

// PromptQuit is asked before quitting with unsaved changes.
const PromptQuit = "Save changes before quitting?"

// UIState represents the current state of the TUI.
type UIState int

const (
	stateEditing UIState = iota
	stateConfirming
	statePicking
	stateShowingHelp
)

// Options configures the Model.
type Options struct {
	Config  *config.Config
	Session *document.Session

	// InitialFile is opened on start when set.
	InitialFile string

	// Context bounds every document flow. Defaults to context.Background.
	Context context.Context

	BuildInfo BuildInfo
}

// Model is the Bubble Tea model for the editor.
type Model struct {
	cfg     *config.Config
	session *document.Session
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	bridge *ConfirmBridge

	keys   KeyMap
	help   help.Model
	editor textarea.Model

	picker     *components.FilePicker
	confirm    *components.ConfirmModal
	pending    *confirmRequest
	helpDialog *components.HelpDialog
	toasts     *ToastController

	state UIState
	// prevState is restored when a confirmation arriving over another dialog
	// is answered.
	prevState UIState

	busy int // flows in flight

	initialFile string
	buildInfo   BuildInfo

	width  int
	height int
}

// New creates the editor model.
func New(opts Options) Model {
	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	cfg := opts.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	editor := textarea.New()
	editor.Placeholder = cfg.Editor.Placeholder
	editor.ShowLineNumbers = cfg.Editor.ShowLineNumbers
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Prompt = ""
	editor.Focus()

	busy := 0
	if opts.InitialFile != "" {
		busy = 1
	}

	return Model{
		cfg:         cfg,
		session:     opts.Session,
		log:         logging.Component("tui"),
		ctx:         ctx,
		cancel:      cancel,
		bridge:      NewConfirmBridge(),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		editor:      editor,
		picker:      components.NewFilePicker(".", cfg.Picker.Accept, cfg.Picker.ShowHidden),
		helpDialog:  components.NewHelpDialog("Keyboard shortcuts", opts.Session.Help()),
		toasts:      NewToastController(),
		busy:        busy,
		initialFile: opts.InitialFile,
		buildInfo:   opts.BuildInfo,
	}
}

// Init starts listening for confirmation prompts and opens the initial file.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.bridge.Listen()}
	if m.initialFile != "" {
		cmds = append(cmds, m.openCmd(m.initialFile))
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case confirmRequestMsg:
		return m.showConfirm(msg.req)

	case newDoneMsg:
		return m.handleNewDone(msg)
	case openDoneMsg:
		return m.handleOpenDone(msg)
	case saveDoneMsg:
		return m.handleSaveDone(msg)
	case quitDoneMsg:
		return m.handleQuitDone(msg)

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// The confirm form completes through its own messages.
	if m.state == stateConfirming && m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if m.state == statePicking {
		_, cmd := m.picker.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateConfirming:
		return m.updateConfirm(msg)
	case statePicking:
		return m.handlePickerKey(msg)
	case stateShowingHelp:
		return m.handleHelpDialogKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.startQuit()
	case key.Matches(msg, m.keys.New):
		return m.startNew()
	case key.Matches(msg, m.keys.Open):
		return m.openPicker()
	case key.Matches(msg, m.keys.Save):
		return m.startSave()
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
		return m, nil
	}

	// Read-only while a flow may replace the content underneath.
	if m.busy > 0 {
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.session.Edit(after)
	}
	return m, cmd
}

func (m Model) handleHelpDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "f1":
		m.state = stateEditing
	}
	return m, nil
}

func (m Model) openPicker() (tea.Model, tea.Cmd) {
	if err := m.picker.Load(m.picker.Dir()); err != nil {
		m.log.Debug().Err(err).Msg("refresh picker")
	}
	m.state = statePicking
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.state = stateEditing
		return m.startQuit()
	}

	result, cmd := m.picker.Update(msg)
	switch result {
	case components.PickerCancelled:
		m.state = stateEditing
		return m, nil
	case components.PickerSelected:
		m.state = stateEditing
		m.busy++
		return m, m.openCmd(m.picker.Selected())
	}
	return m, cmd
}

func (m Model) showConfirm(req confirmRequest) (tea.Model, tea.Cmd) {
	if m.state != stateConfirming {
		m.prevState = m.state
	}
	m.state = stateConfirming
	m.pending = &req
	m.confirm = components.NewConfirmModal(req.prompt)
	return m, m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.confirm.Update(msg)
	if !m.confirm.Done() {
		return m, cmd
	}

	var ans Answer
	switch m.confirm.Result() {
	case components.ConfirmAccepted:
		ans = AnswerYes
	case components.ConfirmDeclined:
		ans = AnswerNo
	default:
		ans = AnswerCancel
	}
	return m.resolveConfirm(ans)
}

// resolveConfirm answers the pending prompt and listens for the next one.
func (m Model) resolveConfirm(ans Answer) (tea.Model, tea.Cmd) {
	if m.pending != nil {
		m.pending.answer(ans)
	}
	m.pending = nil
	m.confirm = nil
	m.state = m.prevState
	if m.state == stateConfirming {
		m.state = stateEditing
	}
	return m, m.bridge.Listen()
}

// syncEditor loads the session content into the text area.
func (m *Model) syncEditor() {
	snap := m.session.Snapshot()
	if m.editor.Value() == snap.Content {
		return
	}
	m.editor.Reset()
	m.editor.SetValue(snap.Content)
}

func (m *Model) notify(n notify.Notification) tea.Cmd {
	m.toasts.Push(n)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) layout() {
	// one line each for the title bar and footer, plus the frame
	frame := styles.EditorFrameStyle
	editorHeight := max(m.height-2-frame.GetVerticalFrameSize(), 1)
	editorWidth := max(m.width-frame.GetHorizontalFrameSize(), 1)
	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(editorHeight)
	m.help.Width = m.width
	m.picker.SetSize(max(m.width-12, 20), max(m.height-6, 5))
}

// shutdown releases flows blocked on a prompt.
func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.bridge.Close()
	m.cancel()
	return m, tea.Quit
}

func isAborted(err error) bool {
	return errors.Is(err, document.ErrAborted) || errors.Is(err, context.Canceled)
}

// Unsaved reports whether the document has changes that were never saved.
func (m Model) Unsaved() bool {
	return m.session.Snapshot().Modified
}
