package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IO is the console's input and output.
//
// ReadLine returns io.EOF both when input is gone for good and for an
// interactive Ctrl-C or Ctrl-D, after which reading can go on. Exhausted
// tells the two apart.
type IO interface {
	io.Writer
	ReadLine(prompt string) (string, error)
	// Exhausted reports whether the underlying input has ended.
	Exhausted() bool
}

// eofReader remembers whether its reader has hit end of input or failed.
type eofReader struct {
	r    io.Reader
	done bool
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if err != nil {
		e.done = true
	}
	return n, err
}

// TerminalIO reads lines with editing and history on a raw-mode TTY.
type TerminalIO struct {
	fd    int
	state *term.State
	term  *term.Terminal
	in    *eofReader
}

// OpenTerminal switches in to raw mode and wraps it in a line editor.
// Close restores the previous terminal state.
func OpenTerminal(in *os.File, out io.Writer) (*TerminalIO, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	src := &eofReader{r: in}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{src, out}, "")
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}
	return &TerminalIO{fd: fd, state: state, term: t, in: src}, nil
}

// ReadLine implements IO. Ctrl-C, and Ctrl-D on an empty line, return
// io.EOF while the terminal stays usable.
func (t *TerminalIO) ReadLine(prompt string) (string, error) {
	t.term.SetPrompt(prompt)
	return t.term.ReadLine()
}

// Write implements io.Writer, translating "\n" to "\r\n" for raw mode.
func (t *TerminalIO) Write(p []byte) (int, error) { return t.term.Write(p) }

// Exhausted implements IO. It is true once the TTY itself stops delivering
// input, as after a hangup.
func (t *TerminalIO) Exhausted() bool { return t.in.done }

// Width returns the terminal width, or 0 when unknown.
func (t *TerminalIO) Width() int {
	w, _, err := term.GetSize(t.fd)
	if err != nil {
		return 0
	}
	return w
}

// Close restores the terminal.
func (t *TerminalIO) Close() error { return term.Restore(t.fd, t.state) }

// PlainIO reads newline-terminated input from any reader. It is used when
// stdin is a pipe and in tests.
type PlainIO struct {
	r    *bufio.Reader
	w    io.Writer
	done bool
}

// NewPlainIO returns line I/O over r and w.
func NewPlainIO(r io.Reader, w io.Writer) *PlainIO {
	return &PlainIO{r: bufio.NewReader(r), w: w}
}

// ReadLine implements IO. The prompt is written to the output first.
func (p *PlainIO) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(p.w, prompt); err != nil {
			return "", err
		}
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		p.done = true
	}
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Write implements io.Writer.
func (p *PlainIO) Write(b []byte) (int, error) { return p.w.Write(b) }

// Exhausted implements IO. A pipe or file never yields more after EOF.
func (p *PlainIO) Exhausted() bool { return p.done }
