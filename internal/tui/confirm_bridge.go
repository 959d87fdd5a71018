package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/txtpad/internal/core/document"
)

// Answer is the outcome of a confirmation prompt.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	AnswerCancel // dialog dismissed with esc
)

type confirmRequest struct {
	prompt string
	reply  chan Answer
}

// confirmRequestMsg asks the Update loop to show a confirmation modal.
type confirmRequestMsg struct {
	req confirmRequest
}

// ConfirmBridge lets document flows running in command goroutines wait on a
// prompt that is answered inside the Update loop.
type ConfirmBridge struct {
	requests chan confirmRequest
	done     chan struct{}
}

var _ document.Confirmer = (*ConfirmBridge)(nil)

func NewConfirmBridge() *ConfirmBridge {
	return &ConfirmBridge{
		requests: make(chan confirmRequest),
		done:     make(chan struct{}),
	}
}

// Confirm implements document.Confirmer. A dismissed dialog is reported as
// document.ErrDismissed; the session decides what that means for its operation.
func (b *ConfirmBridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	ans, err := b.Ask(ctx, prompt)
	if err != nil {
		return false, err
	}
	if ans == AnswerCancel {
		return false, document.ErrDismissed
	}
	return ans == AnswerYes, nil
}

// Ask sends the prompt to the UI and blocks until it is answered, the bridge is
// closed, or ctx is done.
func (b *ConfirmBridge) Ask(ctx context.Context, prompt string) (Answer, error) {
	req := confirmRequest{prompt: prompt, reply: make(chan Answer, 1)}

	select {
	case b.requests <- req:
	case <-b.done:
		return AnswerCancel, context.Canceled
	case <-ctx.Done():
		return AnswerCancel, ctx.Err()
	}

	select {
	case ans := <-req.reply:
		return ans, nil
	case <-b.done:
		return AnswerCancel, context.Canceled
	case <-ctx.Done():
		return AnswerCancel, ctx.Err()
	}
}

// Listen returns a command that delivers the next prompt as a
// confirmRequestMsg. It must be re-issued after every request.
func (b *ConfirmBridge) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case req := <-b.requests:
			return confirmRequestMsg{req: req}
		case <-b.done:
			return nil
		}
	}
}

// Close releases any flow still waiting on an answer.
func (b *ConfirmBridge) Close() {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
}

func (r confirmRequest) answer(a Answer) {
	r.reply <- a
}
