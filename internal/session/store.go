// Package session owns the open documents and their tab order.
package session

import (
	"fmt"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
)

// Options configures a Store.
type Options struct {
	// DefaultLanguage is assigned to blank documents. Defaults to lang.Default.
	DefaultLanguage lang.Language
	// NewBuffer creates the buffer for each document. Defaults to buffer.New.
	NewBuffer func() buffer.Buffer
}

// Store is the ordered set of open documents plus the active index.
//
// Once created it is never empty: removing the last document adds a blank
// one in the same call. Only Teardown leaves it empty.
type Store struct {
	docs   []*document.Document
	active int
	opts   Options
}

// NewStore returns a store holding one blank document.
func NewStore(opts Options) *Store {
	if !opts.DefaultLanguage.Valid() {
		opts.DefaultLanguage = lang.Default
	}
	if opts.NewBuffer == nil {
		opts.NewBuffer = func() buffer.Buffer { return buffer.New() }
	}
	s := &Store{opts: opts}
	s.addBlank()
	return s
}

// Create appends a document and makes it active. An empty path creates a
// blank document. If the file cannot be read nothing changes and a
// *document.LoadError is returned.
func (s *Store) Create(path string) (*document.Document, error) {
	if path == "" {
		return s.addBlank(), nil
	}
	d, err := document.Load(path, s.opts.NewBuffer())
	if err != nil {
		return nil, err
	}
	s.append(d)
	return d, nil
}

// Get returns the document with id and its tab index.
func (s *Store) Get(id document.ID) (*document.Document, int, bool) {
	for i, d := range s.docs {
		if d.ID() == id {
			return d, i, true
		}
	}
	return nil, -1, false
}

// Activate makes id the active document.
func (s *Store) Activate(id document.ID) error {
	_, i, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("activate %s: %w", id, ErrUnknownDocument)
	}
	s.active = i
	return nil
}

// ActivateIndex makes the document at tab index i active.
func (s *Store) ActivateIndex(i int) error {
	if i < 0 || i >= len(s.docs) {
		return fmt.Errorf("tab %d: %w", i+1, ErrUnknownDocument)
	}
	s.active = i
	return nil
}

// Active returns the active document. ok is false only after Teardown.
func (s *Store) Active() (*document.Document, bool) {
	if s.active < 0 || s.active >= len(s.docs) {
		return nil, false
	}
	return s.docs[s.active], true
}

// ActiveIndex returns the active tab index, or -1 after Teardown.
func (s *Store) ActiveIndex() int {
	if len(s.docs) == 0 {
		return -1
	}
	return s.active
}

// Len returns the number of open documents.
func (s *Store) Len() int { return len(s.docs) }

// Documents returns snapshots in tab order.
func (s *Store) Documents() []document.Info {
	out := make([]document.Info, len(s.docs))
	for i, d := range s.docs {
		out[i] = d.Info(i)
	}
	return out
}

// Modified returns the documents with unsaved edits in tab order.
func (s *Store) Modified() []*document.Document {
	var out []*document.Document
	for _, d := range s.docs {
		if d.Modified() {
			out = append(out, d)
		}
	}
	return out
}

// Remove destroys a document. The tab to its right becomes active when the
// active tab is removed, or the one to its left at the end of the row.
// Removing the last document leaves a fresh blank one.
func (s *Store) Remove(id document.ID) error {
	_, i, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("remove %s: %w", id, ErrUnknownDocument)
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)

	switch {
	case len(s.docs) == 0:
		s.active = 0
		s.addBlank()
	case i < s.active:
		s.active--
	case s.active >= len(s.docs):
		s.active = len(s.docs) - 1
	}
	return nil
}

// Teardown drops every document without creating a replacement.
func (s *Store) Teardown() {
	s.docs = nil
	s.active = -1
}

func (s *Store) addBlank() *document.Document {
	d := document.New(s.opts.DefaultLanguage, s.opts.NewBuffer())
	s.append(d)
	return d
}

func (s *Store) append(d *document.Document) {
	s.docs = append(s.docs, d)
	s.active = len(s.docs) - 1
}
