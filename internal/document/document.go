// Package document models one open file: its identity, location, language
// and the buffer holding its text.
package document

import (
	"path/filepath"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/storage"
	"github.com/google/uuid"
)

// UntitledName is shown for documents that were never saved.
const UntitledName = "Untitled"

// ID identifies a document for its whole lifetime.
type ID string

// NewID returns a fresh random document id.
func NewID() ID { return ID(uuid.NewString()) }

// Document is one open file. The session store owns every Document; other
// components only see Info snapshots.
type Document struct {
	id       ID
	path     string
	language lang.Language
	buf      buffer.Buffer
}

// Info is a read-only snapshot of a document.
type Info struct {
	ID       ID
	Path     string
	Language lang.Language
	Modified bool
	TabIndex int
}

// New returns a blank, untitled document.
func New(l lang.Language, buf buffer.Buffer) *Document {
	d := &Document{id: NewID(), buf: buf}
	d.SetLanguage(l)
	return d
}

// Load reads path into buf and returns a clean document for it. The language
// is picked from the file extension.
func Load(path string, buf buffer.Buffer) (*Document, error) {
	text, err := storage.ReadText(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	buf.Load(text)
	d := &Document{id: NewID(), path: path, buf: buf}
	d.SetLanguage(lang.FromPath(path))
	return d, nil
}

// ID returns the document id.
func (d *Document) ID() ID { return d.id }

// Path returns the backing file path, or "" when untitled.
func (d *Document) Path() string { return d.path }

// Untitled reports whether the document has never been saved.
func (d *Document) Untitled() bool { return d.path == "" }

// Language returns the assigned language.
func (d *Document) Language() lang.Language { return d.language }

// SetLanguage reassigns the language. Content and the modified flag are left
// alone.
func (d *Document) SetLanguage(l lang.Language) {
	d.language = l
	d.buf.SetHighlight(l)
}

// Modified reports whether there are unsaved edits.
func (d *Document) Modified() bool { return d.buf.Modified() }

// Buffer returns the text buffer.
func (d *Document) Buffer() buffer.Buffer { return d.buf }

// BaseName is the file name without directories, or UntitledName.
func (d *Document) BaseName() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// SuggestedFilename is offered by the save dialog. Untitled documents get a
// name derived from their language; titled ones keep their base name.
func (d *Document) SuggestedFilename() string {
	if d.path == "" {
		return d.language.SuggestedFilename()
	}
	return filepath.Base(d.path)
}

// Save writes the buffer to path. Only when the write succeeds does the
// document adopt path and become unmodified; on failure nothing changes.
func (d *Document) Save(path string) error {
	if err := storage.WriteText(path, d.buf.Text()); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	d.path = path
	d.buf.SetModified(false)
	return nil
}

// Info returns a snapshot of the document at the given tab position.
func (d *Document) Info(tabIndex int) Info {
	return Info{
		ID:       d.id,
		Path:     d.path,
		Language: d.language,
		Modified: d.Modified(),
		TabIndex: tabIndex,
	}
}

// BaseName mirrors Document.BaseName for snapshots.
func (i Info) BaseName() string {
	if i.Path == "" {
		return UntitledName
	}
	return filepath.Base(i.Path)
}
