// Package document implements the single-document session: the open file's
// name, its text, and whether it has unsaved changes.
package document

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

const (
	// DefaultName is the file name used when saving a document that was never named.
	DefaultName = "nuevo-archivo.txt"

	// MIMEType is the media type of every saved artifact.
	MIMEType = "text/plain;charset=utf-8"
)

// Confirmation prompts shown before unsaved changes would be lost.
const (
	PromptNew  = "Save changes before creating a new file?"
	PromptOpen = "Save changes before opening another file?"
)

// ErrAborted is returned when the user declines a confirmation that guards
// the operation.
var ErrAborted = errors.New("operation aborted")

// ErrDismissed is returned by a Confirmer when the prompt was closed without an
// answer. New treats it as "no"; Open treats it as an abort.
var ErrDismissed = errors.New("prompt dismissed")

// Confirmer asks the user a yes/no question. Implementations may block until the
// user answers or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Artifact is the downloadable result of a save.
type Artifact struct {
	Name     string
	MIMEType string
	Content  []byte
}

// Emitter turns an artifact into a file the user can pick up. It returns the
// location the artifact was written to.
type Emitter interface {
	Emit(ctx context.Context, a Artifact) (string, error)
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Name     string // empty when the document was never named
	Content  string
	Modified bool
}

// HasName reports whether the document was opened from, or saved as, a named file.
func (s Snapshot) HasName() bool {
	return s.Name != ""
}

// SaveResult describes a completed save.
type SaveResult struct {
	Name string // file name handed to the emitter
	Path string // location reported by the emitter, empty on failure
}

// Options configures a Session.
type Options struct {
	// DefaultName overrides DefaultName for unnamed documents.
	DefaultName string

	// AbortNewOnDecline makes New keep the current document when the user
	// declines to save it. By default New discards it.
	AbortNewOnDecline bool

	Logger zerolog.Logger
}

// Session owns the single open document. All methods are safe for concurrent
// use. New, Open and Save are serialized against each other; Edit and Snapshot
// never wait on them.
type Session struct {
	emitter     Emitter
	defaultName string
	abortNew    bool
	log         zerolog.Logger

	ops sync.Mutex // held for the whole of New, Open and Save

	mu       sync.RWMutex
	name     string
	content  string
	modified bool
}

// NewSession returns an empty, unnamed, unmodified session.
func NewSession(emitter Emitter, opts Options) *Session {
	name := opts.DefaultName
	if name == "" {
		name = DefaultName
	}

	return &Session{
		emitter:     emitter,
		defaultName: name,
		abortNew:    opts.AbortNewOnDecline,
		log:         opts.Logger,
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Name:     s.name,
		Content:  s.content,
		Modified: s.modified,
	}
}

// DisplayName returns the name a save would use right now.
func (s *Session) DisplayName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileName()
}

// Edit replaces the content and marks the document modified.
func (s *Session) Edit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = text
	s.modified = true
}

// Save emits the current content and clears the modified flag. The flag is
// cleared even when the emitter fails; the error is returned for reporting.
func (s *Session) Save(ctx context.Context) (SaveResult, error) {
	s.ops.Lock()
	defer s.ops.Unlock()
	return s.save(ctx)
}

func (s *Session) save(ctx context.Context) (SaveResult, error) {
	s.mu.RLock()
	artifact := Artifact{
		Name:     s.fileName(),
		MIMEType: MIMEType,
		Content:  []byte(s.content),
	}
	s.mu.RUnlock()

	path, err := s.emitter.Emit(ctx, artifact)

	s.mu.Lock()
	s.modified = false
	s.mu.Unlock()

	result := SaveResult{Name: artifact.Name, Path: path}
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("name", artifact.Name).Msg("save failed")
		return result, fmt.Errorf("save %s: %w", artifact.Name, err)
	}

	s.log.Info().Ctx(ctx).
		Str("name", artifact.Name).
		Str("path", path).
		Int("bytes", len(artifact.Content)).
		Msg("document saved")

	return result, nil
}

// New replaces the document with an empty, unnamed one. When there are unsaved
// changes the user is asked whether to save them first; a nil Confirmer or a
// dismissed prompt counts as declining.
func (s *Session) New(ctx context.Context, confirm Confirmer) error {
	s.ops.Lock()
	defer s.ops.Unlock()

	if s.isModified() {
		ok, err := ask(ctx, confirm, PromptNew)
		if err != nil && !errors.Is(err, ErrDismissed) {
			return fmt.Errorf("new: %w", err)
		}

		switch {
		case ok:
			// The reset happens whatever the save outcome; save already logged it.
			_, _ = s.save(ctx)
		case s.abortNew:
			return ErrAborted
		default:
			s.log.Warn().Ctx(ctx).Msg("discarding unsaved changes")
		}
	}

	s.replace("", "")
	s.log.Debug().Ctx(ctx).Msg("new document")
	return nil
}

// Open replaces the document with the contents of f. A nil f is a no-op. When
// there are unsaved changes the user is asked whether to save them first;
// declining or dismissing aborts with ErrAborted and leaves the session untouched.
func (s *Session) Open(ctx context.Context, f File, confirm Confirmer) error {
	if f == nil {
		return nil
	}

	s.ops.Lock()
	defer s.ops.Unlock()

	if s.isModified() {
		ok, err := ask(ctx, confirm, PromptOpen)
		if err != nil && !errors.Is(err, ErrDismissed) {
			return fmt.Errorf("open: %w", err)
		}
		if !ok {
			return ErrAborted
		}
		_, _ = s.save(ctx)
	}

	text, err := f.Text(ctx)
	if err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("name", f.Name()).Msg("open failed")
		return fmt.Errorf("open %s: %w", f.Name(), err)
	}

	s.replace(f.Name(), text)
	s.log.Info().Ctx(ctx).Str("name", f.Name()).Int("bytes", len(text)).Msg("document opened")
	return nil
}

// Help returns the keyboard shortcuts offered for the session operations.
func (s *Session) Help() []Shortcut {
	return Shortcuts()
}

func (s *Session) replace(name, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.name = name
	s.content = content
	s.modified = false
}

func (s *Session) isModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modified
}

// fileName must be called with mu held.
func (s *Session) fileName() string {
	if s.name != "" {
		return s.name
	}
	return s.defaultName
}

func ask(ctx context.Context, confirm Confirmer, prompt string) (bool, error) {
	if confirm == nil {
		return false, nil
	}
	return confirm.Confirm(ctx, prompt)
}
