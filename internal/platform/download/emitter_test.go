package download

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/txtpad/internal/core/document"
)

func artifact(name, content string) document.Artifact {
	return document.Artifact{Name: name, MIMEType: document.MIMEType, Content: []byte(content)}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestEmitter_Emit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Downloads")
	e := New(dir, Options{Logger: zerolog.Nop()})

	path, err := e.Emit(context.Background(), artifact("nuevo-archivo.txt", "hello"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nuevo-archivo.txt"), path)
	assert.Equal(t, "hello", readFile(t, path))
	assert.Equal(t, []string{"nuevo-archivo.txt"}, listDir(t, dir), "no temp files left behind")
}

func TestEmitter_Emit_deduplicates(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, Options{Logger: zerolog.Nop()})

	want := []string{"notes.txt", "notes (1).txt", "notes (2).txt"}
	for i, name := range want {
		path, err := e.Emit(context.Background(), artifact("notes.txt", name))
		require.NoError(t, err, "save %d", i)
		assert.Equal(t, filepath.Join(dir, name), path)
		assert.Equal(t, name, readFile(t, path))
	}

	assert.ElementsMatch(t, want, listDir(t, dir))
}

func TestEmitter_Emit_overwrite(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, Options{Overwrite: true, Logger: zerolog.Nop()})

	_, err := e.Emit(context.Background(), artifact("notes.txt", "first"))
	require.NoError(t, err)
	path, err := e.Emit(context.Background(), artifact("notes.txt", "second"))
	require.NoError(t, err)

	assert.Equal(t, "second", readFile(t, path))
	assert.Equal(t, []string{"notes.txt"}, listDir(t, dir))
}

func TestEmitter_Emit_stripsDirectories(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, Options{Logger: zerolog.Nop()})

	path, err := e.Emit(context.Background(), artifact("../../etc/notes.txt", "x"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "notes.txt"), path)
}

func TestEmitter_Emit_invalidName(t *testing.T) {
	e := New(t.TempDir(), Options{Logger: zerolog.Nop()})

	for _, name := range []string{"", "..", "/"} {
		_, err := e.Emit(context.Background(), artifact(name, "x"))
		assert.Error(t, err, "name %q", name)
	}
}

func TestEmitter_Emit_cancelled(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, Options{Logger: zerolog.Nop()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Emit(ctx, artifact("notes.txt", "x"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, listDir(t, dir))
}

func TestSplitExt(t *testing.T) {
	tests := []struct {
		in, stem, ext string
	}{
		{"notes.txt", "notes", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".txt", ".txt", ""},
	}

	for _, tt := range tests {
		stem, ext := splitExt(tt.in)
		assert.Equal(t, tt.stem, stem, tt.in)
		assert.Equal(t, tt.ext, ext, tt.in)
	}
}
