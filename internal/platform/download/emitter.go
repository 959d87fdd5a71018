// Package download writes saved documents into a downloads directory, the way a
// browser drops a downloaded file.
package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/txtpad/internal/core/document"
)

// maxDuplicates bounds the "name (n).ext" search.
const maxDuplicates = 999

// Options configures an Emitter.
type Options struct {
	// Overwrite replaces an existing file instead of picking a numbered name.
	Overwrite bool
	Logger    zerolog.Logger
}

// Emitter writes artifacts into a single directory.
type Emitter struct {
	dir       string
	overwrite bool
	log       zerolog.Logger
}

var _ document.Emitter = (*Emitter)(nil)

// New returns an Emitter that writes into dir. The directory is created on the
// first save if it does not exist.
func New(dir string, opts Options) *Emitter {
	return &Emitter{
		dir:       dir,
		overwrite: opts.Overwrite,
		log:       opts.Logger,
	}
}

// Dir returns the downloads directory.
func (e *Emitter) Dir() string {
	return e.dir
}

// Emit writes the artifact and returns the path it landed at. The content is
// staged in a temporary file that is renamed into place, so a failed write never
// leaves a partial file under the final name.
func (e *Emitter) Emit(ctx context.Context, a document.Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := sanitizeName(a.Name)
	if name == "" {
		return "", fmt.Errorf("invalid file name %q", a.Name)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	target := filepath.Join(e.dir, name)
	if !e.overwrite {
		var err error
		target, err = uniquePath(e.dir, name)
		if err != nil {
			return "", err
		}
	}

	tmp, err := os.CreateTemp(e.dir, ".txtpad-*.part")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(a.Content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", fmt.Errorf("chmod %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return "", fmt.Errorf("move %s into place: %w", name, err)
	}

	e.log.Debug().
		Str("path", target).
		Str("mime", a.MIMEType).
		Int("bytes", len(a.Content)).
		Msg("artifact emitted")

	return target, nil
}

// sanitizeName strips any directory components so an artifact can never be
// written outside the downloads directory.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.FromSlash(name))
	switch name {
	case ".", "..", string(filepath.Separator):
		return ""
	}
	return strings.TrimSpace(name)
}

// uniquePath returns dir/name, or the first free "stem (n).ext" variant when
// that path is taken.
func uniquePath(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if !exists(candidate) {
		return candidate, nil
	}

	stem, ext := splitExt(name)
	for i := 1; i <= maxDuplicates; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !exists(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

func splitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		// dotfiles like ".txt" have no extension to keep
		return name, ""
	}
	return stem, ext
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
