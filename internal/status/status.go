// Package status derives everything the window chrome shows from document
// snapshots. All functions are pure.
package status

import (
	"fmt"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
)

// AppName is the window title suffix.
const AppName = "Mint_Pad"

// Tab is one entry of the tab row.
type Tab struct {
	ID     document.ID
	Label  string
	Active bool
}

// Projection is the full chrome state after an event.
type Projection struct {
	Title    string
	Tabs     []Tab
	Status   string
	Language lang.Language
}

// TabLabel is the base name with a trailing "*" while modified.
func TabLabel(info document.Info) string {
	if info.Modified {
		return info.BaseName() + "*"
	}
	return info.BaseName()
}

// Title is "<name>[*] - Mint_Pad", or just the app name when no document is
// open.
func Title(info document.Info, ok bool) string {
	if !ok {
		return AppName
	}
	return TabLabel(info) + " - " + AppName
}

// Status is the cursor position text.
func Status(cursor buffer.Position) string {
	return fmt.Sprintf("Line: %d, Col: %d", cursor.Line, cursor.Col)
}

// Project builds the projection for docs with the active tab at index
// active (-1 for none).
func Project(docs []document.Info, active int, cursor buffer.Position) Projection {
	p := Projection{Tabs: make([]Tab, len(docs))}
	for i, d := range docs {
		p.Tabs[i] = Tab{ID: d.ID, Label: TabLabel(d), Active: i == active}
	}
	if active < 0 || active >= len(docs) {
		p.Title = Title(document.Info{}, false)
		return p
	}
	p.Title = Title(docs[active], true)
	p.Status = Status(cursor)
	p.Language = docs[active].Language
	return p
}
