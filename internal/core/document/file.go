package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// File is a user-selected file whose full text can be read.
type File interface {
	Name() string
	Text(ctx context.Context) (string, error)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText decodes raw file bytes as UTF-8. A leading byte order mark is
// dropped and invalid sequences are replaced with U+FFFD.
func DecodeText(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}

// OSFile is a File backed by a path on the local filesystem.
type OSFile struct {
	path string
}

// NewOSFile returns a File for path.
func NewOSFile(path string) *OSFile {
	return &OSFile{path: path}
}

// Name returns the base name of the file.
func (f *OSFile) Name() string {
	return filepath.Base(f.path)
}

// Path returns the path the file was selected from.
func (f *OSFile) Path() string {
	return f.path
}

func (f *OSFile) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Name(), err)
	}

	return DecodeText(data), nil
}
