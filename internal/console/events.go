package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
)

// Event is one user action.
type Event interface {
	Name() string
}

type (
	// EvNew opens a blank tab.
	EvNew struct{}
	// EvOpen opens Path, or asks for one when empty.
	EvOpen struct{ Path string }
	// EvSave saves the active document.
	EvSave struct{}
	// EvSaveAs saves the active document under a new name.
	EvSaveAs struct{}
	// EvClose closes tab Tab (1-based); 0 means the active tab.
	EvClose struct{ Tab int }
	// EvExit quits once the exit flow allows it.
	EvExit struct{}
	// EvRun runs the active document.
	EvRun struct{}
	// EvLanguage reassigns the active document's language.
	EvLanguage struct{ Language lang.Language }
	// EvTab activates tab Tab (1-based).
	EvTab struct{ Tab int }
	// EvAppend adds a line at the end of the active buffer.
	EvAppend struct{ Text string }
	// EvInsert inserts a line before Line.
	EvInsert struct {
		Line int
		Text string
	}
	// EvReplace overwrites Line.
	EvReplace struct {
		Line int
		Text string
	}
	// EvDelete removes Line.
	EvDelete struct{ Line int }
	// EvPrint lists the active buffer.
	EvPrint struct{}
	// EvGoto moves the cursor.
	EvGoto struct{ Pos buffer.Position }
	// EvFont picks the editor font.
	EvFont struct{}
	// EvTheme toggles the dark palette.
	EvTheme struct{}
	// EvHelp lists commands.
	EvHelp struct{}
)

func (EvNew) Name() string      { return "new" }
func (EvOpen) Name() string     { return "open" }
func (EvSave) Name() string     { return "save" }
func (EvSaveAs) Name() string   { return "save-as" }
func (EvClose) Name() string    { return "close" }
func (EvExit) Name() string     { return "exit" }
func (EvRun) Name() string      { return "run" }
func (EvLanguage) Name() string { return "language" }
func (EvTab) Name() string      { return "tab" }
func (EvAppend) Name() string   { return "append" }
func (EvInsert) Name() string   { return "insert" }
func (EvReplace) Name() string  { return "replace" }
func (EvDelete) Name() string   { return "delete" }
func (EvPrint) Name() string    { return "print" }
func (EvGoto) Name() string     { return "goto" }
func (EvFont) Name() string     { return "font" }
func (EvTheme) Name() string    { return "theme" }
func (EvHelp) Name() string     { return "help" }

// Parse turns an input line into an event. Lines not starting with ':' are
// text to append; a leading "::" appends a line starting with ':'.
func Parse(line string) (Event, error) {
	if !strings.HasPrefix(line, ":") {
		return EvAppend{Text: line}, nil
	}
	if strings.HasPrefix(line, "::") {
		return EvAppend{Text: line[1:]}, nil
	}

	cmd, rest := cut(line[1:])
	switch cmd {
	case "new", "n":
		return EvNew{}, nil
	case "open", "o", "e":
		return EvOpen{Path: strings.TrimSpace(rest)}, nil
	case "w", "save":
		return EvSave{}, nil
	case "saveas", "sa":
		return EvSaveAs{}, nil
	case "close", "c":
		if strings.TrimSpace(rest) == "" {
			return EvClose{}, nil
		}
		n, err := positive(rest, "tab")
		return EvClose{Tab: n}, err
	case "q", "quit", "exit":
		return EvExit{}, nil
	case "run", "r!":
		return EvRun{}, nil
	case "lang", "language":
		l, err := lang.Parse(rest)
		if err != nil {
			return nil, err
		}
		return EvLanguage{Language: l}, nil
	case "tab", "t":
		n, err := positive(rest, "tab")
		return EvTab{Tab: n}, err
	case "i", "insert":
		n, text, err := lineAndText(rest)
		return EvInsert{Line: n, Text: text}, err
	case "r", "replace":
		n, text, err := lineAndText(rest)
		return EvReplace{Line: n, Text: text}, err
	case "d", "delete":
		n, err := positive(rest, "line")
		return EvDelete{Line: n}, err
	case "p", "print":
		return EvPrint{}, nil
	case "goto", "g":
		pos, err := parsePosition(rest)
		return EvGoto{Pos: pos}, err
	case "font":
		return EvFont{}, nil
	case "theme":
		return EvTheme{}, nil
	case "help", "h", "?":
		return EvHelp{}, nil
	case "":
		return nil, fmt.Errorf("empty command")
	default:
		return nil, fmt.Errorf("unknown command :%s (try :help)", cmd)
	}
}

// cut splits off the first word. The remainder keeps its inner and trailing
// spacing.
func cut(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	word, rest, _ = strings.Cut(s, " ")
	return word, strings.TrimLeft(rest, " ")
}

func positive(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("expected a %s number, got %q", what, s)
	}
	return n, nil
}

// lineAndText parses "<n> <text>". The text after the single separating
// space is kept verbatim.
func lineAndText(s string) (int, string, error) {
	num, text, _ := strings.Cut(s, " ")
	n, err := positive(num, "line")
	return n, text, err
}

func parsePosition(s string) (buffer.Position, error) {
	lineStr, colStr, hasCol := strings.Cut(strings.TrimSpace(s), ":")
	line, err := positive(lineStr, "line")
	if err != nil {
		return buffer.Position{}, err
	}
	col := 1
	if hasCol {
		if col, err = positive(colStr, "column"); err != nil {
			return buffer.Position{}, err
		}
	}
	return buffer.Position{Line: line, Col: col}, nil
}
