// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// State is the state-threading instantiation.
// A State[S] is a transition from an input state to a pair
// (auxiliary value, output state). It holds no state of its own; state
// exists only while Run interprets the transition against a
// caller-supplied initial state.
//
// The auxiliary channel lets a step pass a value to its immediate
// successor. It has the same type as the state because its only
// producers are Get, which copies the state into it, and the empty
// State, which carries the zero value.
//
// States are immutable. Composing onto a State never changes it, so one
// State may be the shared prefix of any number of chains and may be
// used from several goroutines at once.
type State[S any] struct {
	frame stateFrame[S]
}

// Empty creates the no-op State: state -> (zero, state).
func Empty[S any]() State[S] {
	return State[S]{frame: pureFrame[S]{}}
}

// Compose implements Monad. The result runs m, hands m's auxiliary value
// to step, and runs the State that step returns on m's output state.
func (m State[S]) Compose(step func(S) State[S]) State[S] {
	return State[S]{frame: &bindFrame[S]{first: m.frame, step: step}}
}

// Valid implements Monad.
func (m State[S]) Valid() bool {
	return m.frame != nil
}

// Then sequences n after m, discarding m's auxiliary value.
func (m State[S]) Then(n State[S]) State[S] {
	return Then[State[S], S](m, n)
}

// Get passes the current state to the next step as the auxiliary value.
func (m State[S]) Get() State[S] {
	return Bound0(getStep[S])(m)
}

// Put unconditionally replaces the current state with s.
func (m State[S]) Put(s S) State[S] {
	return Bound(putStep[S])(m, s)
}

// Modify replaces the current state with f applied to it.
// It is Get followed by a Put of f(current).
func (m State[S]) Modify(f func(S) S) State[S] {
	return Bound(modifyStep[S])(m, f)
}

// Run executes the chain from initial and returns the final state.
// The auxiliary value is discarded.
func (m State[S]) Run(initial S) S {
	_, out := m.RunPair(initial)
	return out
}

// Eval executes the chain from initial and returns the final auxiliary value.
func (m State[S]) Eval(initial S) S {
	aux, _ := m.RunPair(initial)
	return aux
}

// RunPair executes the chain from initial and returns both the final
// auxiliary value and the final state.
func (m State[S]) RunPair(initial S) (aux S, out S) {
	mustValid(m)
	return evalState(m.frame, initial)
}

func getStep[S any](S) State[S] {
	return State[S]{frame: getFrame[S]{}}
}

func putStep[S any](aux S, s S) State[S] {
	return State[S]{frame: putFrame[S]{aux: aux, replacement: s}}
}

func modifyStep[S any](_ S, f func(S) S) State[S] {
	return Bound(applyStep[S])(Empty[S]().Get(), f)
}

func applyStep[S any](current S, f func(S) S) State[S] {
	return Empty[S]().Put(f(current))
}
