// Package buffer is the in-memory text buffer behind every editor tab.
package buffer

import (
	"fmt"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/lang"
)

// Position is a 1-based cursor location.
type Position struct {
	Line int
	Col  int
}

// Buffer is what a document needs from its text storage.
//
// Only edits flip the modified flag on; Load and SetModified(false) are the
// only ways to clear it.
type Buffer interface {
	Text() string
	Load(text string)
	Modified() bool
	SetModified(modified bool)
	SetHighlight(l lang.Language)
	Highlight() lang.Language
	Cursor() Position
}

// Editor is a Buffer that supports line-oriented edits.
type Editor interface {
	Buffer
	LineCount() int
	Line(n int) (string, bool)
	Append(text string)
	InsertLine(n int, text string) error
	ReplaceLine(n int, text string) error
	DeleteLine(n int) error
	SetCursor(p Position)
}

// Lines stores text as a slice of lines split on "\n". Carriage returns and a
// trailing newline survive the split, so Text always returns the exact bytes
// that were loaded plus any edits.
type Lines struct {
	lines     []string
	modified  bool
	highlight lang.Language
	cursor    Position
}

var _ Editor = (*Lines)(nil)

// New returns an empty, unmodified buffer.
func New() *Lines {
	return &Lines{lines: []string{""}, cursor: Position{Line: 1, Col: 1}}
}

// Text returns the full buffer contents.
func (b *Lines) Text() string { return strings.Join(b.lines, "\n") }

// Load replaces the contents and clears the modified flag.
func (b *Lines) Load(text string) {
	b.lines = strings.Split(text, "\n")
	b.modified = false
	b.cursor = Position{Line: 1, Col: 1}
}

// Modified reports whether the buffer changed since the last load or save.
func (b *Lines) Modified() bool { return b.modified }

// SetModified overrides the modified flag.
func (b *Lines) SetModified(modified bool) { b.modified = modified }

// SetHighlight selects the syntax used for highlighting.
func (b *Lines) SetHighlight(l lang.Language) { b.highlight = l }

// Highlight returns the syntax used for highlighting.
func (b *Lines) Highlight() lang.Language { return b.highlight }

// Cursor returns the insert position.
func (b *Lines) Cursor() Position { return b.cursor }

// SetCursor moves the insert position, clamped to the buffer.
func (b *Lines) SetCursor(p Position) {
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	maxCol := len([]rune(b.lines[p.Line-1])) + 1
	if p.Col < 1 {
		p.Col = 1
	}
	if p.Col > maxCol {
		p.Col = maxCol
	}
	b.cursor = p
}

// LineCount returns the number of lines. A trailing newline counts as an
// empty final line.
func (b *Lines) LineCount() int { return len(b.lines) }

// Line returns line n (1-based).
func (b *Lines) Line(n int) (string, bool) {
	if n < 1 || n > len(b.lines) {
		return "", false
	}
	return b.lines[n-1], true
}

// Append adds text as a new line at the end of the buffer, keeping the
// buffer newline-terminated.
func (b *Lines) Append(text string) {
	last := len(b.lines) - 1
	if b.lines[last] == "" {
		b.lines = append(b.lines[:last], text, "")
	} else {
		b.lines = append(b.lines, text, "")
	}
	b.edited(Position{Line: len(b.lines), Col: 1})
}

// InsertLine inserts text before line n. n may be LineCount()+1 to add at
// the very end.
func (b *Lines) InsertLine(n int, text string) error {
	if n < 1 || n > len(b.lines)+1 {
		return b.rangeErr(n)
	}
	b.lines = append(b.lines, "")
	copy(b.lines[n:], b.lines[n-1:])
	b.lines[n-1] = text
	b.edited(Position{Line: n, Col: len([]rune(text)) + 1})
	return nil
}

// ReplaceLine overwrites line n.
func (b *Lines) ReplaceLine(n int, text string) error {
	if n < 1 || n > len(b.lines) {
		return b.rangeErr(n)
	}
	b.lines[n-1] = text
	b.edited(Position{Line: n, Col: len([]rune(text)) + 1})
	return nil
}

// DeleteLine removes line n. Deleting the only line empties it.
func (b *Lines) DeleteLine(n int) error {
	if n < 1 || n > len(b.lines) {
		return b.rangeErr(n)
	}
	if len(b.lines) == 1 {
		b.lines[0] = ""
	} else {
		b.lines = append(b.lines[:n-1], b.lines[n:]...)
	}
	b.edited(Position{Line: n, Col: 1})
	return nil
}

func (b *Lines) edited(cursor Position) {
	b.modified = true
	b.SetCursor(cursor)
}

func (b *Lines) rangeErr(n int) error {
	return fmt.Errorf("line %d out of range (1-%d)", n, len(b.lines))
}
