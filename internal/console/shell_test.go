package console

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog/dialogtest"
	"github.com/Parikshit8902/Mint-Pad/internal/lang"
	"github.com/Parikshit8902/Mint-Pad/internal/runner"
	"github.com/Parikshit8902/Mint-Pad/internal/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

type launches struct {
	commands []string
}

func (l *launches) Launch(commandLine string) {
	l.commands = append(l.commands, commandLine)
}

// ctrlD stands for a Ctrl-C or Ctrl-D keypress in a keyedIO script.
const ctrlD = "\x04"

// keyedIO replays typed lines the way a terminal delivers them: a ctrlD entry
// reads as io.EOF and input continues afterwards.
type keyedIO struct {
	out   *bytes.Buffer
	lines []string
}

func (k *keyedIO) ReadLine(prompt string) (string, error) {
	k.out.WriteString(prompt)
	if len(k.lines) == 0 {
		return "", io.EOF
	}
	line := k.lines[0]
	k.lines = k.lines[1:]
	if line == ctrlD {
		return "", io.EOF
	}
	return line, nil
}

func (k *keyedIO) Write(p []byte) (int, error) { return k.out.Write(p) }

func (k *keyedIO) Exhausted() bool { return len(k.lines) == 0 }

func newKeyedHarness(t *testing.T, lines []string, answers ...dialogtest.Answer) *harness {
	t.Helper()

	h := &harness{
		dialogs:  dialogtest.New(answers...),
		launches: &launches{},
		out:      &bytes.Buffer{},
		tempDir:  t.TempDir(),
	}
	return h.attach(&keyedIO{out: h.out, lines: lines})
}

type harness struct {
	shell    *Shell
	mgr      *session.Manager
	dialogs  *dialogtest.Scripted
	launches *launches
	out      *bytes.Buffer
	tempDir  string
}

func newHarness(t *testing.T, input string, answers ...dialogtest.Answer) *harness {
	t.Helper()

	h := &harness{
		dialogs:  dialogtest.New(answers...),
		launches: &launches{},
		out:      &bytes.Buffer{},
		tempDir:  t.TempDir(),
	}
	return h.attach(NewPlainIO(strings.NewReader(input), h.out))
}

// attach builds the shell over lineIO. Its output must go to h.out.
func (h *harness) attach(lineIO IO) *harness {
	h.mgr = session.NewManager(session.NewStore(session.Options{}), h.dialogs)
	h.shell = New(Options{
		Manager:       h.mgr,
		Runner:        runner.New(runner.Options{TempDir: h.tempDir, Launcher: h.launches}),
		Dialogs:       h.dialogs,
		IO:            lineIO,
		Renderer:      lipgloss.NewRenderer(h.out),
		SaveBeforeRun: true,
	})
	return h
}

func TestShellSaveThenExit(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "main.cpp")
	h := newHarness(t, "int main() {}\n:w\n:q\n", dialogtest.Save(dest))

	require.NoError(t, h.shell.Run(context.Background()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "int main() {}\n", string(data))
	require.Zero(t, h.dialogs.Count("confirm"))
	require.Contains(t, h.out.String(), "main.cpp - Mint_Pad")
	require.Empty(t, h.mgr.Documents())
}

func TestShellCancelledExitKeepsSession(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "draft\n:q\n:lang python\n:q\n",
		dialogtest.Choose(dialog.ChoiceCancel),
		dialogtest.Choose(dialog.ChoiceDiscard),
	)

	require.NoError(t, h.shell.Run(context.Background()))
	require.Equal(t, 2, h.dialogs.Count("confirm"))
	require.Contains(t, h.out.String(), "python> ")
}

func TestShellEndOfInputStartsExitFlow(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "unsaved", dialogtest.Choose(dialog.ChoiceCancel))

	require.NoError(t, h.shell.Run(context.Background()))
	require.Equal(t, 1, h.dialogs.Count("confirm"))
	call, err := h.dialogs.Last("confirm")
	require.NoError(t, err)
	require.Contains(t, call.Prompt.Message, "Untitled")

	// Input is gone, so Run returns, but nothing was discarded.
	docs := h.mgr.Documents()
	require.Len(t, docs, 1)
	require.True(t, docs[0].Modified)
}

func TestShellInterruptThenCancelKeepsEditing(t *testing.T) {
	t.Parallel()

	h := newKeyedHarness(t,
		[]string{"unsaved work", ctrlD, ":lang python", "print(1)", ctrlD},
		dialogtest.Choose(dialog.ChoiceCancel),
		dialogtest.Choose(dialog.ChoiceCancel),
	)

	require.NoError(t, h.shell.Run(context.Background()))
	require.Equal(t, 2, h.dialogs.Count("confirm"))

	docs := h.mgr.Documents()
	require.Len(t, docs, 1)
	require.True(t, docs[0].Modified)
	require.Equal(t, lang.Python, docs[0].Language)

	text, err := h.mgr.Text(docs[0].ID)
	require.NoError(t, err)
	require.Equal(t, "unsaved work\nprint(1)\n", text)
}

func TestShellInterruptThenDiscardQuits(t *testing.T) {
	t.Parallel()

	h := newKeyedHarness(t,
		[]string{"draft", ctrlD, "more", ctrlD, ":p"},
		dialogtest.Choose(dialog.ChoiceCancel),
		dialogtest.Choose(dialog.ChoiceDiscard),
	)

	require.NoError(t, h.shell.Run(context.Background()))
	require.Equal(t, 2, h.dialogs.Count("confirm"))
	require.Empty(t, h.mgr.Documents())
	require.NotContains(t, h.out.String(), "1 │ draft")
}

func TestShellRunLaunchesActiveBuffer(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "")
	ctx := context.Background()

	for _, line := range []string{":lang python", "print(1)", ":run"} {
		ev, err := Parse(line)
		require.NoError(t, err)
		_, err = h.shell.Handle(ctx, ev)
		require.NoError(t, err)
	}

	require.Len(t, h.launches.commands, 1)
	require.Contains(t, h.launches.commands[0], "python3")
	require.Zero(t, h.dialogs.Count("save"))

	data, err := os.ReadFile(filepath.Join(h.tempDir, "temp_run.py"))
	require.NoError(t, err)
	require.Equal(t, "print(1)\n", string(data))
}

func TestShellRunSavesTitledDocumentFirst(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hello.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))

	h := newHarness(t, "")
	ctx := context.Background()
	_, err := h.shell.Handle(ctx, EvOpen{Path: path})
	require.NoError(t, err)
	_, err = h.shell.Handle(ctx, EvAppend{Text: "int main(void) { return 0; }"})
	require.NoError(t, err)
	_, err = h.shell.Handle(ctx, EvRun{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "int x;\nint main(void) { return 0; }\n", string(data))

	info, ok := h.mgr.Active()
	require.True(t, ok)
	require.False(t, info.Modified)

	require.Len(t, h.launches.commands, 1)
	require.Contains(t, h.launches.commands[0], "gcc")
}

func TestShellRunProceedsWhenPreRunSaveFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.cpp")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))

	h := newHarness(t, "")
	ctx := context.Background()
	_, err := h.shell.Handle(ctx, EvOpen{Path: path})
	require.NoError(t, err)
	_, err = h.shell.Handle(ctx, EvAppend{Text: "int main() {}"})
	require.NoError(t, err)

	// A directory in place of the file makes the save fail.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err = h.shell.Handle(ctx, EvRun{})
	require.NoError(t, err)

	call, err := h.dialogs.Last("notice")
	require.NoError(t, err)
	require.Equal(t, "Could not save file", call.Notice.Title)

	require.Len(t, h.launches.commands, 1)
	data, err := os.ReadFile(filepath.Join(h.tempDir, "temp_run.cpp"))
	require.NoError(t, err)
	require.Equal(t, "int x;\nint main() {}\n", string(data))

	info, _ := h.mgr.Active()
	require.True(t, info.Modified)
}

func TestShellRunWriteFailureNotifies(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "")
	h.shell.runner = runner.New(runner.Options{
		TempDir:  filepath.Join(h.tempDir, "missing"),
		Launcher: h.launches,
	})

	_, err := h.shell.Handle(context.Background(), EvRun{})
	require.NoError(t, err)
	require.Empty(t, h.launches.commands)

	call, err := h.dialogs.Last("notice")
	require.NoError(t, err)
	require.Equal(t, "Could not prepare run", call.Notice.Title)
	var writeErr *runner.EphemeralWriteError
	require.ErrorAs(t, call.Notice.Err, &writeErr)
}

func TestShellCloseByTabNumber(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "")
	ctx := context.Background()
	for range 2 {
		_, err := h.shell.Handle(ctx, EvNew{})
		require.NoError(t, err)
	}
	require.Len(t, h.mgr.Documents(), 3)

	_, err := h.shell.Handle(ctx, EvClose{Tab: 2})
	require.NoError(t, err)
	require.Len(t, h.mgr.Documents(), 2)

	_, err = h.shell.Handle(ctx, EvClose{Tab: 9})
	require.ErrorIs(t, err, session.ErrUnknownDocument)
}

func TestShellEditingMovesStatus(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "")
	ctx := context.Background()
	for _, ev := range []Event{
		EvAppend{Text: "alpha"},
		EvAppend{Text: "beta"},
		EvReplace{Line: 1, Text: "gamma"},
		EvInsert{Line: 2, Text: "delta"},
		EvDelete{Line: 3},
	} {
		_, err := h.shell.Handle(ctx, ev)
		require.NoError(t, err, ev.Name())
	}

	info, _ := h.mgr.Active()
	text, err := h.mgr.Text(info.ID)
	require.NoError(t, err)
	require.Equal(t, "gamma\ndelta\n", text)

	p := h.shell.Projection()
	require.Equal(t, "Untitled* - Mint_Pad", p.Title)
	require.Equal(t, "Line: 3, Col: 1", p.Status)

	_, err = h.shell.Handle(ctx, EvPrint{})
	require.NoError(t, err)
	require.Contains(t, h.out.String(), "1 │ gamma")
}

func TestShellFontAndTheme(t *testing.T) {
	t.Parallel()

	h := newHarness(t, "", dialogtest.Save("Monospace 12"), dialogtest.Cancel())
	ctx := context.Background()

	_, err := h.shell.Handle(ctx, EvFont{})
	require.NoError(t, err)
	require.Equal(t, "Monospace 12", h.shell.Font())

	_, err = h.shell.Handle(ctx, EvFont{})
	require.NoError(t, err)
	require.Equal(t, "Monospace 12", h.shell.Font())

	require.False(t, h.shell.Dark())
	_, err = h.shell.Handle(ctx, EvTheme{})
	require.NoError(t, err)
	require.True(t, h.shell.Dark())
}

func TestShellPrintsParseErrors(t *testing.T) {
	t.Parallel()

	h := newHarness(t, ":bogus\n:q\n")
	require.NoError(t, h.shell.Run(context.Background()))
	require.Contains(t, h.out.String(), "unknown command :bogus")
}
