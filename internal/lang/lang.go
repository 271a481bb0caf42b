// Package lang defines the closed set of source languages the editor can run.
package lang

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Language identifies a supported source language. The zero value is not a
// valid language.
type Language string

const (
	// Cpp is C++ and the default language for new documents.
	Cpp Language = "cpp"
	// C is ISO C.
	C Language = "c"
	// Python is Python 3.
	Python Language = "python"
)

// Default is assigned to blank documents.
const Default = Cpp

type info struct {
	display   string
	extension string
}

var table = map[Language]info{
	Cpp:    {display: "C++", extension: ".cpp"},
	C:      {display: "C", extension: ".c"},
	Python: {display: "Python", extension: ".py"},
}

// All returns every supported language in menu order.
func All() []Language {
	return []Language{Cpp, C, Python}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := table[l]
	return ok
}

// String returns the language id.
func (l Language) String() string { return string(l) }

// DisplayName returns the human-readable name, or the raw id when unknown.
func (l Language) DisplayName() string {
	if i, ok := table[l]; ok {
		return i.display
	}
	return string(l)
}

// Extension returns the default file extension including the leading dot,
// or "" for an unknown language.
func (l Language) Extension() string {
	return table[l].extension
}

// SuggestedFilename is offered by the save dialog for untitled documents.
func (l Language) SuggestedFilename() string {
	return "untitled" + l.Extension()
}

// Parse accepts a language id or display name, case-insensitively.
func Parse(raw string) (Language, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, l := range All() {
		if s == string(l) || s == strings.ToLower(table[l].display) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", raw)
}

// FromPath picks a language from a file extension. Anything other than .c or
// .py is treated as C++. The match is case-sensitive, so .C stays C++.
func FromPath(path string) Language {
	switch filepath.Ext(path) {
	case ".c":
		return C
	case ".py":
		return Python
	default:
		return Cpp
	}
}
