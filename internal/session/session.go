// Package session owns the mutable state shared between the control surface
// and background operations: the accumulated units and the translation map.
// At most one long-running operation is in flight at a time; its outcome is
// delivered through a single completion channel.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"game-translator/internal/extract"
	"game-translator/internal/translation"
)

var (
	// ErrInvalidInput blocks an operation before any work starts.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBusy rejects a trigger while an operation is running. Triggers
	// are rejected, never queued.
	ErrBusy = errors.New("an operation is already running")
)

// Outcome is the terminal result of a background operation. Exactly one
// Outcome is sent per started operation.
type Outcome struct {
	Result *extract.Result
	Err    error
}

// Session is the controller object holding extraction and translation state.
type Session struct {
	extractor extract.Extractor

	mu           sync.Mutex
	busy         bool
	units        []extract.Unit
	translations *translation.Map
}

// New creates a session around the injected extractor.
func New(extractor extract.Extractor) *Session {
	return &Session{
		extractor:    extractor,
		translations: translation.NewMap(),
	}
}

// StartExtraction validates its inputs, then runs extraction and artifact
// persistence on a background goroutine. The returned channel delivers
// exactly one Outcome; once an extraction has started it runs to completion.
// On success the session's unit list is replaced with the new run's units.
func (s *Session) StartExtraction(ctx context.Context, root, outputDir string, exts []string) (<-chan Outcome, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("%w: source directory is required", ErrInvalidInput)
	}
	if strings.TrimSpace(outputDir) == "" {
		return nil, fmt.Errorf("%w: output directory is required", ErrInvalidInput)
	}
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: extension filter is empty", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	done := make(chan Outcome, 1)

	go func() {
		result, err := s.extractor.Extract(ctx, root, exts)
		if err == nil {
			err = extract.SaveArtifacts(result.Units, outputDir)
		}

		s.mu.Lock()
		if err == nil {
			s.units = result.Units
		}
		s.busy = false
		s.mu.Unlock()

		if err != nil {
			done <- Outcome{Err: err}
			return
		}
		done <- Outcome{Result: result}
	}()

	return done, nil
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Units returns a copy of the units from the last successful extraction.
func (s *Session) Units() []extract.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]extract.Unit, len(s.units))
	copy(out, s.units)
	return out
}

// SetTranslation records a translation for a source text.
func (s *Session) SetTranslation(text, translated string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translations.Set(text, translated)
}

// Translation looks up the translation for a source text.
func (s *Session) Translation(text string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translations.Get(text)
}

// TranslationCount returns the number of stored translations.
func (s *Session) TranslationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translations.Len()
}

// LoadTranslations replaces the translation map from a file. A malformed
// file leaves the current map unchanged.
func (s *Session) LoadTranslations(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translations.Load(path)
}

// SaveTranslations persists the translation map to a file.
func (s *Session) SaveTranslations(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.translations.Save(path)
}
