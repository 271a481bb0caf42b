// Package console is the interactive front-end. It turns input lines into
// events, applies each one to the session and re-renders the chrome
// afterwards.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Parikshit8902/Mint-Pad/internal/buffer"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/logger"
	"github.com/Parikshit8902/Mint-Pad/internal/runner"
	"github.com/Parikshit8902/Mint-Pad/internal/session"
	"github.com/Parikshit8902/Mint-Pad/internal/session/closeflow"
	"github.com/Parikshit8902/Mint-Pad/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// Runner launches a document's content.
type Runner interface {
	Run(ctx context.Context, l lang.Language, content string) (*runner.Invocation, error)
}

// Options configures a Shell.
type Options struct {
	Manager *session.Manager
	Runner  Runner
	Dialogs dialog.Service
	IO      IO

	// Renderer decides color support. Defaults to one probing IO.
	Renderer *lipgloss.Renderer
	// Width caps the tab row; 0 means unlimited.
	Width int

	Font          string
	Dark          bool
	SaveBeforeRun bool
}

// Shell is the console event loop.
type Shell struct {
	mgr     *session.Manager
	runner  Runner
	dialogs dialog.Service
	io      IO

	renderer *lipgloss.Renderer
	width    int

	font          string
	dark          bool
	saveBeforeRun bool
}

// New returns a shell.
func New(opts Options) *Shell {
	s := &Shell{
		mgr:           opts.Manager,
		runner:        opts.Runner,
		dialogs:       opts.Dialogs,
		io:            opts.IO,
		renderer:      opts.Renderer,
		width:         opts.Width,
		font:          opts.Font,
		dark:          opts.Dark,
		saveBeforeRun: opts.SaveBeforeRun,
	}
	if s.renderer == nil {
		s.renderer = lipgloss.NewRenderer(opts.IO)
	}
	return s
}

// Font returns the selected editor font.
func (s *Shell) Font() string { return s.font }

// Dark reports whether the dark palette is active.
func (s *Shell) Dark() bool { return s.dark }

// Run reads and applies events until the exit flow allows quitting.
//
// io.EOF from the reader (Ctrl-C or Ctrl-D on a terminal) is an exit request
// like :q, and a cancelled exit keeps the loop going. Only when the input
// itself has ended does Run return with the exit still refused.
func (s *Shell) Run(ctx context.Context) error {
	s.render()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.io.ReadLine(s.prompt())
		if errors.Is(err, io.EOF) {
			quit, exitErr := s.Handle(ctx, EvExit{})
			if exitErr != nil {
				s.report(ctx, exitErr)
			}
			if quit {
				return nil
			}
			if s.io.Exhausted() {
				logger.Warnf("input closed with unsaved documents; exiting without saving")
				return nil
			}
			s.render()
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		ev, err := Parse(line)
		if err != nil {
			s.printf("%s\n", err)
			continue
		}
		quit, err := s.Handle(ctx, ev)
		if err != nil {
			s.report(ctx, err)
		}
		if quit {
			return nil
		}
		if _, isText := ev.(EvAppend); !isText {
			s.render()
		}
	}
}

// Handle applies one event. quit is true once the application may exit.
func (s *Shell) Handle(ctx context.Context, ev Event) (quit bool, err error) {
	logger.Debugf("console: event %s", ev.Name())

	switch e := ev.(type) {
	case EvNew:
		_, err = s.mgr.Create(ctx, "")

	case EvOpen:
		if e.Path == "" {
			_, _, err = s.mgr.Open(ctx)
		} else {
			_, err = s.mgr.Create(ctx, e.Path)
		}

	case EvSave:
		err = s.withActive(func(id document.ID) error {
			_, err := s.mgr.Save(ctx, id)
			return err
		})

	case EvSaveAs:
		err = s.withActive(func(id document.ID) error {
			_, err := s.mgr.SaveAs(ctx, id)
			return err
		})

	case EvClose:
		err = s.closeTab(ctx, e.Tab)

	case EvExit:
		var res closeflow.Resolution
		res, err = s.mgr.Exit(ctx)
		quit = res == closeflow.ResolutionExitAllowed

	case EvRun:
		err = s.run(ctx)

	case EvLanguage:
		err = s.withActive(func(id document.ID) error {
			return s.mgr.SetLanguage(id, e.Language)
		})

	case EvTab:
		err = s.mgr.ActivateIndex(e.Tab - 1)

	case EvAppend:
		err = s.edit(func(ed buffer.Editor) error {
			ed.Append(e.Text)
			return nil
		})

	case EvInsert:
		err = s.edit(func(ed buffer.Editor) error { return ed.InsertLine(e.Line, e.Text) })

	case EvReplace:
		err = s.edit(func(ed buffer.Editor) error { return ed.ReplaceLine(e.Line, e.Text) })

	case EvDelete:
		err = s.edit(func(ed buffer.Editor) error { return ed.DeleteLine(e.Line) })

	case EvGoto:
		err = s.edit(func(ed buffer.Editor) error {
			ed.SetCursor(e.Pos)
			return nil
		})

	case EvPrint:
		err = s.withActive(func(id document.ID) error {
			text, err := s.mgr.Text(id)
			if err != nil {
				return err
			}
			s.printf("%s", RenderBuffer(text, s.theme()))
			return nil
		})

	case EvFont:
		font, ok, ferr := s.dialogs.ChooseFont(ctx, s.font)
		if ferr == nil && ok {
			s.font = font
			logger.Infof("font set to %q", font)
		}
		err = ferr

	case EvTheme:
		s.dark = !s.dark

	case EvHelp:
		s.printf("%s", helpText)

	default:
		err = fmt.Errorf("unhandled event %T", ev)
	}
	return quit, err
}

func (s *Shell) closeTab(ctx context.Context, tab int) error {
	var id document.ID
	if tab == 0 {
		info, ok := s.mgr.Active()
		if !ok {
			return nil
		}
		id = info.ID
	} else {
		docs := s.mgr.Documents()
		if tab > len(docs) {
			return fmt.Errorf("tab %d: %w", tab, session.ErrUnknownDocument)
		}
		id = docs[tab-1].ID
	}
	_, err := s.mgr.Close(ctx, id)
	return err
}

func (s *Shell) run(ctx context.Context) error {
	info, ok := s.mgr.Active()
	if !ok {
		return nil
	}
	if s.saveBeforeRun {
		// A failed save has been shown already; the run uses the buffer.
		if _, err := s.mgr.SaveIfTitled(ctx, info.ID); err != nil {
			logger.Warnf("run %s without saving: %v", info.BaseName(), err)
		}
	}
	text, err := s.mgr.Text(info.ID)
	if err != nil {
		return err
	}

	inv, err := s.runner.Run(ctx, info.Language, text)
	var writeErr *runner.EphemeralWriteError
	if errors.As(err, &writeErr) {
		s.dialogs.Notify(ctx, dialog.Notice{Title: "Could not prepare run", Err: err})
		return nil
	}
	if err != nil {
		return err
	}
	if inv != nil {
		s.printf("%s\n", s.theme().Dim.Render("running "+info.BaseName()+" in a new terminal"))
	}
	return nil
}

func (s *Shell) withActive(fn func(document.ID) error) error {
	info, ok := s.mgr.Active()
	if !ok {
		return nil
	}
	return fn(info.ID)
}

func (s *Shell) edit(fn func(buffer.Editor) error) error {
	return s.withActive(func(id document.ID) error {
		return s.mgr.Edit(id, fn)
	})
}

// report shows errors that were not already presented by a dialog.
func (s *Shell) report(ctx context.Context, err error) {
	var loadErr *document.LoadError
	var saveErr *document.SaveError
	if errors.As(err, &loadErr) || errors.As(err, &saveErr) {
		return
	}
	s.dialogs.Notify(ctx, dialog.Notice{Title: "Error", Err: err})
}

func (s *Shell) theme() Theme {
	if s.dark {
		return DarkTheme(s.renderer)
	}
	return LightTheme(s.renderer)
}

// Projection computes what the chrome currently shows.
func (s *Shell) Projection() status.Projection {
	docs := s.mgr.Documents()
	active := -1
	var cursor buffer.Position
	if info, ok := s.mgr.Active(); ok {
		active = info.TabIndex
		cursor, _ = s.mgr.Cursor(info.ID)
	}
	return status.Project(docs, active, cursor)
}

func (s *Shell) render() {
	s.printf("%s\n", Render(s.Projection(), s.theme(), s.width))
}

func (s *Shell) prompt() string {
	info, ok := s.mgr.Active()
	if !ok {
		return "> "
	}
	return info.Language.String() + "> "
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.io, format, args...)
}

const helpText = `Commands:
  :new                 open a blank tab
  :open [path]         open a file (asks when no path is given)
  :w, :save            save the active tab
  :saveas              save the active tab under a new name
  :close [n]           close tab n (default: active)
  :tab n               switch to tab n
  :q, :exit            quit, asking about unsaved tabs
  :run                 build and run the active tab in a terminal
  :lang cpp|c|python   change the active tab's language
  :p                   print the active buffer
  :i n text            insert a line before line n
  :r n text            replace line n
  :d n                 delete line n
  :goto line[:col]     move the cursor
  :font                choose the editor font
  :theme               toggle the dark theme
Any other line is appended to the active buffer. Start it with "::" to
append a line beginning with ':'.
`
