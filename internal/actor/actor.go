// Package actor provides a pure-reducer state machine scaffold with
// declarative side-effects, driven synchronously on the caller's goroutine.
//
// The core idea is:
//   - A pure reducer transforms state given an input and returns effects.
//   - A runtime interprets effects and emits follow-up inputs.
//   - The dispatcher drains follow-up inputs in FIFO order until quiescent.
//
// Effects may block (a modal prompt, a file write); the dispatcher simply
// waits. There is exactly one dispatch goroutine, so no locking is needed.
package actor

import (
	"context"
	"errors"
)

// Input is an item delivered to a dispatcher.
//
// Inputs can be events (observations from the runtime) or commands (requests
// from callers). This package does not require distinct interfaces for the
// two.
type Input interface {
	isActorInput()
}

// Effect is a declarative side-effect produced by a reducer.
//
// Effects are data, not execution. The Runtime interprets them and emits the
// resulting events back to the dispatcher.
type Effect interface {
	isActorEffect()
}

// ReducerFunc is a pure state transition function.
//
// Reducers must be side-effect free:
//   - no I/O
//   - no goroutine spawning
//   - no time.Now / random IDs (inject via inputs instead)
type ReducerFunc[S any] func(state S, input Input) (next S, effects []Effect)

// Runtime interprets effects and emits follow-up inputs.
//
// Implementations must not mutate dispatcher state directly. Emitted inputs
// are queued and reduced after the current batch of effects returns.
type Runtime interface {
	HandleEffects(ctx context.Context, effects []Effect, emit func(Input))
}

// RuntimeFunc adapts a function to the Runtime interface.
type RuntimeFunc func(ctx context.Context, effects []Effect, emit func(Input))

// HandleEffects implements Runtime.
func (f RuntimeFunc) HandleEffects(ctx context.Context, effects []Effect, emit func(Input)) {
	f(ctx, effects, emit)
}

// Hooks provide optional observability into a dispatcher's execution.
type Hooks[S any] struct {
	// OnInput is called after an input is dequeued, before reducing.
	OnInput func(input Input)
	// OnTransition is called after reducing, once the next state is applied.
	OnTransition func(prev S, next S, input Input)
	// OnEffects is called after reducing, before effects reach the Runtime.
	OnEffects func(effects []Effect)
	// OnPanic is called when reducing or effect handling panics. If nil,
	// panics propagate.
	OnPanic func(recovered any)
}

// ErrReentrant is returned when Dispatch is called from inside a Runtime.
// Runtimes must use the emit callback instead.
var ErrReentrant = errors.New("actor: reentrant dispatch")

// Dispatcher owns state of type S and applies inputs to it one at a time.
type Dispatcher[S any] struct {
	reduce  ReducerFunc[S]
	runtime Runtime
	hooks   Hooks[S]

	state   S
	queue   []Input
	running bool
}

// Option configures a Dispatcher.
type Option[S any] func(*Dispatcher[S])

// WithHooks attaches hooks for observability.
func WithHooks[S any](hooks Hooks[S]) Option[S] {
	return func(d *Dispatcher[S]) { d.hooks = hooks }
}

// New creates a dispatcher with initial state, reducer, and runtime.
func New[S any](initial S, reducer ReducerFunc[S], runtime Runtime, opts ...Option[S]) *Dispatcher[S] {
	d := &Dispatcher[S]{
		reduce:  reducer,
		runtime: runtime,
		state:   initial,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the current state.
func (d *Dispatcher[S]) State() S { return d.state }

// Reset replaces the current state. It must not be called while dispatching.
func (d *Dispatcher[S]) Reset(state S) { d.state = state }

// Dispatch reduces input, hands its effects to the runtime, and keeps going
// with any emitted inputs until none remain. It returns the resulting state.
func (d *Dispatcher[S]) Dispatch(ctx context.Context, input Input) (state S, err error) {
	if d.running {
		return d.state, ErrReentrant
	}
	if input == nil {
		return d.state, nil
	}

	d.running = true
	defer func() {
		d.running = false
		d.queue = nil
		if r := recover(); r != nil {
			if d.hooks.OnPanic == nil {
				panic(r)
			}
			d.hooks.OnPanic(r)
			state = d.state
		}
	}()

	emit := func(in Input) {
		if in != nil {
			d.queue = append(d.queue, in)
		}
	}

	d.queue = append(d.queue, input)
	for len(d.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return d.state, err
		}
		in := d.queue[0]
		d.queue = d.queue[1:]
		d.step(ctx, in, emit)
	}
	return d.state, nil
}

// step applies a single input.
func (d *Dispatcher[S]) step(ctx context.Context, in Input, emit func(Input)) {
	if d.hooks.OnInput != nil {
		d.hooks.OnInput(in)
	}

	prev := d.state
	next, effects := d.reduce(prev, in)
	d.state = next

	if d.hooks.OnTransition != nil {
		d.hooks.OnTransition(prev, next, in)
	}
	if len(effects) == 0 {
		return
	}
	if d.hooks.OnEffects != nil {
		d.hooks.OnEffects(effects)
	}
	if d.runtime != nil {
		d.runtime.HandleEffects(ctx, effects, emit)
	}
}
