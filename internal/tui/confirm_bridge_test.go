package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/txtpad/internal/core/document"
)

type confirmResult struct {
	ok  bool
	err error
}

func confirmAsync(b *ConfirmBridge, ctx context.Context, prompt string) <-chan confirmResult {
	out := make(chan confirmResult, 1)
	go func() {
		ok, err := b.Confirm(ctx, prompt)
		out <- confirmResult{ok: ok, err: err}
	}()
	return out
}

func TestConfirmBridge_Answers(t *testing.T) {
	tests := []struct {
		name    string
		answer  Answer
		wantOK  bool
		wantErr error
	}{
		{"yes", AnswerYes, true, nil},
		{"no", AnswerNo, false, nil},
		{"dismissed", AnswerCancel, false, document.ErrDismissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfirmBridge()
			defer b.Close()

			result := confirmAsync(b, context.Background(), "save?")

			msg, ok := b.Listen()().(confirmRequestMsg)
			require.True(t, ok)
			assert.Equal(t, "save?", msg.req.prompt)

			msg.req.answer(tt.answer)

			got := <-result
			assert.Equal(t, tt.wantOK, got.ok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, got.err, tt.wantErr)
			} else {
				assert.NoError(t, got.err)
			}
		})
	}
}

func TestConfirmBridge_CloseReleasesWaiters(t *testing.T) {
	b := NewConfirmBridge()

	result := confirmAsync(b, context.Background(), "save?")
	_, ok := b.Listen()().(confirmRequestMsg)
	require.True(t, ok)

	b.Close()

	select {
	case got := <-result:
		assert.ErrorIs(t, got.err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("confirm did not return after Close")
	}

	assert.Nil(t, b.Listen()())
	assert.NotPanics(t, b.Close)
}

func TestConfirmBridge_ContextCancelled(t *testing.T) {
	b := NewConfirmBridge()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ans, err := b.Ask(ctx, "save?")
	assert.Equal(t, AnswerCancel, ans)
	assert.ErrorIs(t, err, context.Canceled)
}
