package tui

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/logging"
	"github.com/hay-kot/txtpad/internal/core/notify"
)

// Each document flow runs in a command goroutine and reports back with one of
// these messages. Confirmation prompts reach the Update loop through the
// ConfirmBridge while the flow waits.

type newDoneMsg struct {
	err error
}

type openDoneMsg struct {
	name string
	err  error
}

type saveDoneMsg struct {
	result document.SaveResult
	err    error
}

type quitDoneMsg struct {
	quit bool
	err  error
}

var flowCounter atomic.Uint64

// flowContext tags ctx for one user-triggered flow.
func flowContext(ctx context.Context, op string) context.Context {
	ctx = logging.WithOperation(ctx, op)
	return logging.WithFlowID(ctx, strconv.FormatUint(flowCounter.Add(1), 10))
}

func (m Model) startNew() (tea.Model, tea.Cmd) {
	m.busy++
	var (
		ctx     = flowContext(m.ctx, "new")
		session = m.session
		bridge  = m.bridge
	)
	return m, func() tea.Msg {
		return newDoneMsg{err: session.New(ctx, bridge)}
	}
}

func (m Model) handleNewDone(msg newDoneMsg) (tea.Model, tea.Cmd) {
	m.busy--
	if msg.err != nil {
		if isAborted(msg.err) {
			return m, nil
		}
		m.log.Error().Err(msg.err).Msg("new document")
		return m, m.notify(notify.Errorf("New failed: %v", msg.err))
	}

	m.syncEditor()
	return m, nil
}

func (m Model) openCmd(path string) tea.Cmd {
	var (
		ctx     = flowContext(m.ctx, "open")
		session = m.session
		bridge  = m.bridge
		file    = document.NewOSFile(path)
	)
	return func() tea.Msg {
		return openDoneMsg{name: file.Name(), err: session.Open(ctx, file, bridge)}
	}
}

func (m Model) handleOpenDone(msg openDoneMsg) (tea.Model, tea.Cmd) {
	m.busy--
	m.picker.Reset()

	if msg.err != nil {
		if isAborted(msg.err) {
			return m, nil
		}
		m.log.Error().Err(msg.err).Str("name", msg.name).Msg("open document")
		return m, m.notify(notify.Errorf("Could not open %s: %v", msg.name, cause(msg.err)))
	}

	m.syncEditor()
	return m, m.notify(notify.Infof("Opened %s", msg.name))
}

func (m Model) startSave() (tea.Model, tea.Cmd) {
	m.busy++
	var (
		ctx     = flowContext(m.ctx, "save")
		session = m.session
	)
	return m, func() tea.Msg {
		res, err := session.Save(ctx)
		return saveDoneMsg{result: res, err: err}
	}
}

func (m Model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	m.busy--
	if msg.err != nil {
		return m, m.notify(notify.Errorf("Save failed: %v", cause(msg.err)))
	}
	return m, m.notify(notify.Infof("Saved %s", msg.result.Path))
}

// startQuit exits right away when nothing is unsaved. Otherwise it asks whether
// to save first; dismissing the prompt keeps the editor open.
func (m Model) startQuit() (tea.Model, tea.Cmd) {
	if !m.session.Snapshot().Modified {
		return m.shutdown()
	}

	m.busy++
	var (
		ctx     = flowContext(m.ctx, "quit")
		session = m.session
		bridge  = m.bridge
	)
	return m, func() tea.Msg {
		ans, err := bridge.Ask(ctx, PromptQuit)
		if err != nil {
			return quitDoneMsg{err: err}
		}

		switch ans {
		case AnswerYes:
			if _, err := session.Save(ctx); err != nil {
				return quitDoneMsg{err: err}
			}
			return quitDoneMsg{quit: true}
		case AnswerNo:
			return quitDoneMsg{quit: true}
		default:
			return quitDoneMsg{}
		}
	}
}

func (m Model) handleQuitDone(msg quitDoneMsg) (tea.Model, tea.Cmd) {
	m.busy--
	if msg.err != nil {
		if isAborted(msg.err) {
			return m, nil
		}
		return m, m.notify(notify.Errorf("Save failed, not quitting: %v", cause(msg.err)))
	}
	if msg.quit {
		return m.shutdown()
	}
	return m, nil
}

// cause drops the operation prefix the session adds, since the toast already
// names the operation.
func cause(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
