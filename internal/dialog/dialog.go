// Package dialog defines the modal prompts the editor relies on.
//
// Every call blocks the dispatch goroutine until the user answers and yields
// exactly one outcome. Cancelling is not an error.
package dialog

import "context"

// Choice is the answer to a three-way confirmation.
type Choice int

const (
	// ChoiceCancel keeps everything as it was. It is the zero value so an
	// interrupted prompt cancels.
	ChoiceCancel Choice = iota
	// ChoiceSave saves first (Save All in the exit prompt).
	ChoiceSave
	// ChoiceDiscard drops unsaved edits (Discard All in the exit prompt).
	ChoiceDiscard
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompt describes a confirmation dialog.
type Prompt struct {
	Title   string
	Message string

	SaveLabel    string
	DiscardLabel string
	CancelLabel  string
}

// Notice is a user-visible error report.
type Notice struct {
	Title string
	Err   error
}

// Service is the dialog collaborator.
type Service interface {
	// OpenFile asks for a file to open. ok is false when cancelled.
	OpenFile(ctx context.Context) (path string, ok bool, err error)
	// SaveFile asks for a destination, pre-filled with suggested.
	SaveFile(ctx context.Context, suggested string) (path string, ok bool, err error)
	// ChooseFont asks for a font description.
	ChooseFont(ctx context.Context, current string) (font string, ok bool, err error)
	// Confirm shows a three-way prompt.
	Confirm(ctx context.Context, p Prompt) (Choice, error)
	// Notify shows an error and returns once it has been displayed.
	Notify(ctx context.Context, n Notice)
}

// ClosePrompt is shown before closing a modified document.
func ClosePrompt(name string) Prompt {
	return Prompt{
		Title:        "Save changes to \"" + name + "\" before closing?",
		Message:      "Your changes will be lost if you don't save them.",
		SaveLabel:    "Save",
		DiscardLabel: "Don't Save",
		CancelLabel:  "Cancel",
	}
}

// ExitPrompt is shown when quitting with modified documents.
func ExitPrompt(names []string) Prompt {
	msg := "You have unsaved changes in:"
	for _, n := range names {
		msg += "\n  " + n
	}
	return Prompt{
		Title:        "Save changes before closing?",
		Message:      msg,
		SaveLabel:    "Save All",
		DiscardLabel: "Discard All",
		CancelLabel:  "Cancel",
	}
}
