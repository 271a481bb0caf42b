// Package actortest provides test helpers for the actor dispatcher.
package actortest

import (
	"context"

	"github.com/Parikshit8902/Mint-Pad/internal/actor"
)

// FakeRuntime records effects passed to HandleEffects and optionally emits
// follow-up inputs for each one.
type FakeRuntime struct {
	effects []actor.Effect

	// EmitFn, when non-nil, is invoked for each effect during HandleEffects.
	// Tests use it to synthesize runtime answers such as prompt choices.
	EmitFn func(ctx context.Context, eff actor.Effect, emit func(actor.Input))
}

// HandleEffects implements actor.Runtime.
func (r *FakeRuntime) HandleEffects(ctx context.Context, effects []actor.Effect, emit func(actor.Input)) {
	r.effects = append(r.effects, effects...)
	if r.EmitFn == nil {
		return
	}
	for _, eff := range effects {
		r.EmitFn(ctx, eff, emit)
	}
}

// Effects returns a copy of the recorded effects.
func (r *FakeRuntime) Effects() []actor.Effect {
	out := make([]actor.Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Reset clears recorded effects.
func (r *FakeRuntime) Reset() { r.effects = nil }
