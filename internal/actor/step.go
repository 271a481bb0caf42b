package actor

// Step applies a reducer to a single (state, input) pair without executing
// the resulting effects. Reducer unit tests use it to check one transition at
// a time.
func Step[S any](state S, input Input, reducer ReducerFunc[S]) (S, []Effect) {
	return reducer(state, input)
}

// Run feeds inputs through the reducer in order and returns the final state
// plus every effect produced along the way.
func Run[S any](state S, reducer ReducerFunc[S], inputs ...Input) (S, []Effect) {
	var all []Effect
	for _, in := range inputs {
		var effects []Effect
		state, effects = reducer(state, in)
		all = append(all, effects...)
	}
	return state, all
}
