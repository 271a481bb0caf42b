package closeflow

import (
	"github.com/Parikshit8902/Mint-Pad/internal/actor"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
)

// Reduce is the close flow reducer.
func Reduce(state State, input actor.Input) (State, []actor.Effect) {
	switch in := input.(type) {
	case CmdClose:
		return reduceClose(state, in)
	case CmdExit:
		return reduceExit(state, in)

	case EvPromptAnswered:
		return reducePromptAnswered(state, in)
	case EvSaveResolved:
		return reduceSaveResolved(state, in)
	case EvDestroyed:
		return reduceDestroyed(state)
	default:
		return state, nil
	}
}

func reduceClose(state State, cmd CmdClose) (State, []actor.Effect) {
	if state.Busy() {
		return state, nil
	}
	next := State{Scope: ScopeDocument, Targets: []Target{cmd.Target}}
	if !cmd.Modified {
		next.Phase = PhaseDiscarding
		return next, []actor.Effect{EffDestroy{ID: cmd.Target.ID}}
	}
	next.Phase = PhasePrompting
	return next, []actor.Effect{EffPromptClose{Target: cmd.Target}}
}

func reduceExit(state State, cmd CmdExit) (State, []actor.Effect) {
	if state.Busy() {
		return state, nil
	}
	targets := append([]Target(nil), cmd.Modified...)
	next := State{Scope: ScopeExit, Targets: targets}
	if len(targets) == 0 {
		next.Phase = PhaseDiscarding
		return next, []actor.Effect{EffTeardown{}}
	}
	next.Phase = PhasePrompting
	return next, []actor.Effect{EffPromptExit{Targets: targets}}
}

func reducePromptAnswered(state State, ev EvPromptAnswered) (State, []actor.Effect) {
	if state.Phase != PhasePrompting {
		return state, nil
	}

	switch ev.Choice {
	case dialog.ChoiceSave:
		state.Phase = PhaseSaving
		state.Cursor = 0
		return state, []actor.Effect{EffSave{Target: state.Targets[0]}}

	case dialog.ChoiceDiscard:
		state.Phase = PhaseDiscarding
		if state.Scope == ScopeExit {
			return state, []actor.Effect{EffTeardown{}}
		}
		return state, []actor.Effect{EffDestroy{ID: state.Targets[0].ID}}

	default:
		if state.Scope == ScopeExit {
			return resolve(state, ResolutionExitAborted), nil
		}
		return resolve(state, ResolutionCancelled), nil
	}
}

func reduceSaveResolved(state State, ev EvSaveResolved) (State, []actor.Effect) {
	if state.Phase != PhaseSaving || state.Cursor >= len(state.Targets) {
		return state, nil
	}
	current := state.Targets[state.Cursor]
	if ev.ID != current.ID {
		return state, nil
	}

	if ev.Outcome != SaveSaved {
		if state.Scope == ScopeDocument {
			return resolve(state, ResolutionCancelled), nil
		}
		// Save All stops at the first document that did not save. Earlier
		// documents stay saved.
		state.Stopped = current.ID
		return resolve(state, ResolutionExitAborted), []actor.Effect{
			EffActivate{ID: current.ID},
		}
	}

	if state.Scope == ScopeDocument {
		state.Phase = PhaseDiscarding
		return state, []actor.Effect{EffDestroy{ID: current.ID}}
	}

	state.Cursor++
	if state.Cursor < len(state.Targets) {
		return state, []actor.Effect{EffSave{Target: state.Targets[state.Cursor]}}
	}
	state.Phase = PhaseDiscarding
	return state, []actor.Effect{EffTeardown{}}
}

func reduceDestroyed(state State) (State, []actor.Effect) {
	if state.Phase != PhaseDiscarding {
		return state, nil
	}
	if state.Scope == ScopeExit {
		return resolve(state, ResolutionExitAllowed), nil
	}
	return resolve(state, ResolutionDiscarded), nil
}

func resolve(state State, r Resolution) State {
	state.Phase = PhaseResolved
	state.Resolution = r
	return state
}
