package session

import (
	"context"

	"github.com/Parikshit8902/Mint-Pad/internal/actor"
	"github.com/Parikshit8902/Mint-Pad/internal/dialog"
	"github.com/Parikshit8902/Mint-Pad/internal/logger"
	"github.com/Parikshit8902/Mint-Pad/internal/session/closeflow"
)

// flowRuntime interprets close flow effects against the manager's store and
// dialogs.
type flowRuntime struct {
	m *Manager
}

// HandleEffects implements actor.Runtime.
func (r *flowRuntime) HandleEffects(ctx context.Context, effects []actor.Effect, emit func(actor.Input)) {
	for _, eff := range effects {
		switch e := eff.(type) {
		case closeflow.EffPromptClose:
			emit(closeflow.EvPromptAnswered{Choice: r.confirm(ctx, dialog.ClosePrompt(e.Target.Name))})

		case closeflow.EffPromptExit:
			names := make([]string, len(e.Targets))
			for i, t := range e.Targets {
				names[i] = t.Name
			}
			emit(closeflow.EvPromptAnswered{Choice: r.confirm(ctx, dialog.ExitPrompt(names))})

		case closeflow.EffSave:
			emit(closeflow.EvSaveResolved{ID: e.Target.ID, Outcome: r.save(ctx, e.Target)})

		case closeflow.EffDestroy:
			if err := r.m.store.Remove(e.ID); err != nil {
				logger.Warnf("destroy: %v", err)
			}
			emit(closeflow.EvDestroyed{})

		case closeflow.EffTeardown:
			r.m.store.Teardown()
			emit(closeflow.EvDestroyed{})

		case closeflow.EffActivate:
			if err := r.m.store.Activate(e.ID); err != nil {
				logger.Warnf("activate: %v", err)
			}

		default:
			logger.Warnf("closeflow: unhandled effect %T", eff)
		}
	}
}

func (r *flowRuntime) confirm(ctx context.Context, p dialog.Prompt) dialog.Choice {
	choice, err := r.m.dialogs.Confirm(ctx, p)
	if err != nil {
		logger.Warnf("confirm dialog: %v", err)
		return dialog.ChoiceCancel
	}
	return choice
}

func (r *flowRuntime) save(ctx context.Context, t closeflow.Target) closeflow.SaveOutcome {
	d, _, ok := r.m.store.Get(t.ID)
	if !ok {
		logger.Warnf("save %s: document is gone", t.ID)
		return closeflow.SaveFailed
	}
	outcome, err := r.m.save(ctx, d, false)
	if err != nil {
		logger.Debugf("save %s during close: %v", t.ID, err)
	}
	return outcome
}

// flowHooks logs every close flow step at trace level.
func flowHooks() actor.Hooks[closeflow.State] {
	return actor.Hooks[closeflow.State]{
		OnInput: func(in actor.Input) {
			logger.Tracef("closeflow: input %T", in)
		},
		OnTransition: func(prev, next closeflow.State, _ actor.Input) {
			if prev.Phase != next.Phase {
				logger.Tracef("closeflow: %s -> %s", prev.Phase, next.Phase)
			}
		},
		OnEffects: func(effects []actor.Effect) {
			for _, eff := range effects {
				logger.Tracef("closeflow: effect %T", eff)
			}
		},
	}
}
