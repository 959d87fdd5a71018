package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/txtpad/internal/core/notify"
	"github.com/hay-kot/txtpad/internal/core/styles"
	"github.com/hay-kot/txtpad/pkg/tuitest"
)

func TestRenderToast_empty(t *testing.T) {
	assert.Empty(t, renderToast(NewToastController(), 80))
}

func TestRenderToast_levels(t *testing.T) {
	tests := []struct {
		n    notify.Notification
		icon string
	}{
		{notify.Errorf("test msg"), styles.IconNotifyError},
		{notify.Warnf("test msg"), styles.IconNotifyWarning},
		{notify.Infof("test msg"), styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.n.Level), func(t *testing.T) {
			c := NewToastController()
			c.Push(tt.n)

			out := tuitest.StripANSI(renderToast(c, 80))
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestRenderToast_truncates(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Infof("%s", strings.Repeat("x", 200)))

	out := tuitest.StripANSI(renderToast(c, 40))
	assert.NotContains(t, out, strings.Repeat("x", 100))
}
