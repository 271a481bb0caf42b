// Package dialogtest provides a scripted dialog service for tests.
package dialogtest

import (
	"context"
	"fmt"

	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
)

// Answer is one queued reply. Path answers file and font prompts; Cancel
// answers them negatively; Choice answers confirmations.
type Answer struct {
	Path   string
	Cancel bool
	Choice dialog.Choice
	Err    error
}

// Save answers a file prompt with path.
func Save(path string) Answer { return Answer{Path: path} }

// Cancel answers any prompt negatively.
func Cancel() Answer { return Answer{Cancel: true, Choice: dialog.ChoiceCancel} }

// Choose answers a confirmation.
func Choose(c dialog.Choice) Answer { return Answer{Choice: c} }

// Call records one dialog invocation.
type Call struct {
	Kind      string
	Suggested string
	Prompt    dialog.Prompt
	Notice    dialog.Notice
}

// Scripted replays queued answers in order and records every call. Running
// out of answers cancels.
type Scripted struct {
	Answers []Answer
	Calls   []Call
}

var _ dialog.Service = (*Scripted)(nil)

// New returns a service that replays answers.
func New(answers ...Answer) *Scripted {
	return &Scripted{Answers: answers}
}

func (s *Scripted) next() Answer {
	if len(s.Answers) == 0 {
		return Cancel()
	}
	a := s.Answers[0]
	s.Answers = s.Answers[1:]
	return a
}

func (s *Scripted) file(call Call) (string, bool, error) {
	s.Calls = append(s.Calls, call)
	a := s.next()
	if a.Err != nil {
		return "", false, a.Err
	}
	if a.Cancel || a.Path == "" {
		return "", false, nil
	}
	return a.Path, true, nil
}

// OpenFile implements dialog.Service.
func (s *Scripted) OpenFile(context.Context) (string, bool, error) {
	return s.file(Call{Kind: "open"})
}

// SaveFile implements dialog.Service.
func (s *Scripted) SaveFile(_ context.Context, suggested string) (string, bool, error) {
	return s.file(Call{Kind: "save", Suggested: suggested})
}

// ChooseFont implements dialog.Service.
func (s *Scripted) ChooseFont(_ context.Context, current string) (string, bool, error) {
	return s.file(Call{Kind: "font", Suggested: current})
}

// Confirm implements dialog.Service.
func (s *Scripted) Confirm(_ context.Context, p dialog.Prompt) (dialog.Choice, error) {
	s.Calls = append(s.Calls, Call{Kind: "confirm", Prompt: p})
	a := s.next()
	return a.Choice, a.Err
}

// Notify implements dialog.Service.
func (s *Scripted) Notify(_ context.Context, n dialog.Notice) {
	s.Calls = append(s.Calls, Call{Kind: "notice", Notice: n})
}

// Count returns how many calls of kind were made.
func (s *Scripted) Count(kind string) int {
	n := 0
	for _, c := range s.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent call of kind.
func (s *Scripted) Last(kind string) (Call, error) {
	for i := len(s.Calls) - 1; i >= 0; i-- {
		if s.Calls[i].Kind == kind {
			return s.Calls[i], nil
		}
	}
	return Call{}, fmt.Errorf("no %s call recorded", kind)
}
