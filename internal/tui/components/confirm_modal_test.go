package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/txtpad/pkg/tuitest"
)

func TestConfirmModal_View(t *testing.T) {
	m := NewConfirmModal("Save changes before creating a new file?")
	m.Init()

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Save changes before creating a new file?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Equal(t, "Save changes before creating a new file?", m.Message())
}

func TestConfirmModal_EscDismisses(t *testing.T) {
	m := NewConfirmModal("Save?")
	m.Init()

	assert.False(t, m.Done())
	m.Update(tuitest.KeyEsc())

	assert.True(t, m.Done())
	assert.Equal(t, ConfirmDismissed, m.Result())
}

func TestConfirmModal_IgnoresInputWhenDone(t *testing.T) {
	m := NewConfirmModal("Save?")
	m.Init()
	m.Update(tuitest.KeyEsc())

	assert.Nil(t, m.Update(tuitest.KeyEnter()))
	assert.Equal(t, ConfirmDismissed, m.Result())
}
