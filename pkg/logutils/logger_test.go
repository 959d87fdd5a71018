package logutils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_appendsToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "txtpad.log")

	for _, msg := range []string{"first", "second"} {
		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg(msg)
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"first"`)
	assert.Contains(t, lines[1], `"message":"second"`)
}

func TestNew_level(t *testing.T) {
	l, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNew_invalidLevel(t *testing.T) {
	_, _, err := New("chatty", "")
	assert.Error(t, err)
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewConsole("debug", &buf)
	require.NoError(t, err)

	l.Info().Str("name", "a.txt").Msg("document saved")

	out := buf.String()
	assert.Contains(t, out, "document saved")
	assert.Contains(t, out, "name=a.txt")
	assert.NotContains(t, out, "{")
}
