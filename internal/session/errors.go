package session

import "errors"

var (
	// ErrUnknownDocument is returned for ids that are not in the session.
	ErrUnknownDocument = errors.New("unknown document")
	// ErrFlowBusy is returned when a close or exit flow is already running.
	ErrFlowBusy = errors.New("a close flow is already in progress")
	// ErrNotEditable is returned when a buffer does not support line edits.
	ErrNotEditable = errors.New("document buffer is not editable")
)
