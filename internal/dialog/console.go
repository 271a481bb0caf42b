package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Parikshit8902/Mint-Pad/internal/storage"
)

// LineReader reads one line of user input after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Console answers dialogs with line prompts on a terminal.
type Console struct {
	in  LineReader
	out io.Writer

	// Dir resolves relative paths. Empty means the process working
	// directory.
	Dir string
}

var _ Service = (*Console)(nil)

// NewConsole returns a dialog service reading from in and writing to out.
func NewConsole(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// OpenFile implements Service. An empty answer cancels.
func (c *Console) OpenFile(ctx context.Context) (string, bool, error) {
	answer, ok, err := c.ask(ctx, "Open file: ")
	if err != nil || !ok || answer == "" {
		return "", false, err
	}
	path, err := c.resolve(answer)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// SaveFile implements Service. An empty answer accepts the suggestion and
// "-" cancels. Existing files need a second confirmation.
func (c *Console) SaveFile(ctx context.Context, suggested string) (string, bool, error) {
	answer, ok, err := c.ask(ctx, fmt.Sprintf("Save as [%s] (- to cancel): ", suggested))
	if err != nil || !ok || answer == "-" {
		return "", false, err
	}
	if answer == "" {
		answer = suggested
	}
	path, err := c.resolve(answer)
	if err != nil {
		return "", false, err
	}

	if storage.Exists(path) {
		reply, ok, err := c.ask(ctx, fmt.Sprintf("%s already exists. Replace it? [y/N]: ", filepath.Base(path)))
		if err != nil || !ok {
			return "", false, err
		}
		if !strings.EqualFold(reply, "y") && !strings.EqualFold(reply, "yes") {
			return "", false, nil
		}
	}
	return path, true, nil
}

// ChooseFont implements Service. An empty answer keeps the current font.
func (c *Console) ChooseFont(ctx context.Context, current string) (string, bool, error) {
	answer, ok, err := c.ask(ctx, fmt.Sprintf("Font [%s]: ", current))
	if err != nil || !ok || answer == "" {
		return "", false, err
	}
	return answer, true, nil
}

// Confirm implements Service. It re-asks until it gets a recognised key.
func (c *Console) Confirm(ctx context.Context, p Prompt) (Choice, error) {
	fmt.Fprintln(c.out, p.Title)
	if p.Message != "" {
		fmt.Fprintln(c.out, p.Message)
	}
	line := fmt.Sprintf("[s] %s  [d] %s  [c] %s: ", p.SaveLabel, p.DiscardLabel, p.CancelLabel)
	for {
		answer, ok, err := c.ask(ctx, line)
		if err != nil || !ok {
			return ChoiceCancel, err
		}
		switch strings.ToLower(answer) {
		case "s", "save":
			return ChoiceSave, nil
		case "d", "discard", "n":
			return ChoiceDiscard, nil
		case "c", "cancel":
			return ChoiceCancel, nil
		}
	}
}

// Notify implements Service.
func (c *Console) Notify(_ context.Context, n Notice) {
	if n.Err == nil {
		fmt.Fprintf(c.out, "%s\n", n.Title)
		return
	}
	fmt.Fprintf(c.out, "%s: %v\n", n.Title, n.Err)
}

// ask reads a trimmed answer. ok is false when input ended.
func (c *Console) ask(ctx context.Context, prompt string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	line, err := c.in.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), true, nil
}

func (c *Console) resolve(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	if !filepath.IsAbs(p) && c.Dir != "" {
		p = filepath.Join(c.Dir, p)
	}
	return filepath.Abs(p)
}
