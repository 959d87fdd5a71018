package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		got   Notification
		level Level
		msg   string
	}{
		{Infof("saved %s", "a.txt"), LevelInfo, "saved a.txt"},
		{Warnf("discarded %d bytes", 3), LevelWarning, "discarded 3 bytes"},
		{Errorf("open failed"), LevelError, "open failed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, tt.got.Level)
		assert.Equal(t, tt.msg, tt.got.Message)
		assert.False(t, tt.got.CreatedAt.IsZero())
	}
}
