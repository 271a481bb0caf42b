// Package closeflow is the confirmation state machine that runs when a tab
// is closed or the application exits with unsaved work.
//
// The reducer is pure. Prompts, saves and document destruction are effects
// interpreted by the session manager, which feeds the outcomes back in.
package closeflow

import (
	"github.com/Parikshit8902/Mint-Pad/internal/actor"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/document"
)

// Phase is the FSM state of a close flow.
type Phase string

const (
	// PhaseIdle means no flow has run yet.
	PhaseIdle Phase = "Idle"
	// PhasePrompting waits for the user's choice.
	PhasePrompting Phase = "Prompting"
	// PhaseSaving waits for a save sub-flow to finish.
	PhaseSaving Phase = "Saving"
	// PhaseDiscarding waits for documents to be destroyed.
	PhaseDiscarding Phase = "Discarding"
	// PhaseResolved holds the final Resolution until the next command.
	PhaseResolved Phase = "Resolved"
)

// Scope says what the flow is closing.
type Scope string

const (
	ScopeDocument Scope = "document"
	ScopeExit     Scope = "exit"
)

// Resolution is the outcome of a finished flow.
type Resolution string

const (
	// ResolutionDiscarded means the document was released (saved first or not).
	ResolutionDiscarded Resolution = "Discarded"
	// ResolutionCancelled means the document stays open.
	ResolutionCancelled Resolution = "Cancelled"
	// ResolutionExitAllowed means the application may quit.
	ResolutionExitAllowed Resolution = "ExitAllowed"
	// ResolutionExitAborted means the application keeps running.
	ResolutionExitAborted Resolution = "ExitAborted"
)

// SaveOutcome is the result of one save sub-flow.
type SaveOutcome string

const (
	SaveSaved     SaveOutcome = "saved"
	SaveCancelled SaveOutcome = "cancelled"
	SaveFailed    SaveOutcome = "failed"
)

// Target names a document the flow acts on.
type Target struct {
	ID   document.ID
	Name string
}

// State is the dispatcher-owned state of the close flow.
type State struct {
	Phase Phase
	Scope Scope

	// Targets are the documents in play, in tab order. For an exit flow they
	// are the modified documents only.
	Targets []Target

	// Cursor indexes the target currently being saved.
	Cursor int

	Resolution Resolution

	// Stopped is the document whose save failed or was cancelled during
	// Save All.
	Stopped document.ID
}

// Busy reports whether a flow is waiting on the user or the runtime.
func (s State) Busy() bool {
	switch s.Phase {
	case PhasePrompting, PhaseSaving, PhaseDiscarding:
		return true
	default:
		return false
	}
}

// Commands

// CmdClose asks to close one document.
type CmdClose struct {
	actor.InputBase
	Target   Target
	Modified bool
}

// CmdExit asks to quit. Modified lists every document with unsaved edits in
// tab order.
type CmdExit struct {
	actor.InputBase
	Modified []Target
}

// Events emitted by the runtime back into the reducer.

// EvPromptAnswered carries the user's choice from a close or exit prompt.
// For an exit prompt Save means Save All and Discard means Discard All.
type EvPromptAnswered struct {
	actor.InputBase
	Choice dialog.Choice
}

// EvSaveResolved reports how a save sub-flow ended.
type EvSaveResolved struct {
	actor.InputBase
	ID      document.ID
	Outcome SaveOutcome
}

// EvDestroyed reports that the requested documents are gone.
type EvDestroyed struct {
	actor.InputBase
}

// Effects

// EffPromptClose shows the Save / Don't Save / Cancel prompt for one document.
type EffPromptClose struct {
	actor.EffectBase
	Target Target
}

// EffPromptExit shows the Save All / Discard All / Cancel prompt.
type EffPromptExit struct {
	actor.EffectBase
	Targets []Target
}

// EffSave runs the save sub-flow for a document.
type EffSave struct {
	actor.EffectBase
	Target Target
}

// EffDestroy removes one document from the session.
type EffDestroy struct {
	actor.EffectBase
	ID document.ID
}

// EffTeardown removes every document ahead of quitting.
type EffTeardown struct {
	actor.EffectBase
}

// EffActivate brings a document to the front.
type EffActivate struct {
	actor.EffectBase
	ID document.ID
}
