// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Erased represents a type-erased value held by the evaluation stack.
// Concrete types are recovered via type assertions when a value is popped.
type Erased = any

// stateFrame is the marker interface for defunctionalized State transitions.
// A State holds one frame; run interprets it against a caller-supplied state.
// Dispatch uses type switches, not tags.
type stateFrame[S any] interface {
	stateFrame() // unexported marker method
}

// pureFrame is the transition state -> (aux, state).
// The empty State uses it with the zero auxiliary value.
type pureFrame[S any] struct {
	aux S
}

func (pureFrame[S]) stateFrame() {}

// getFrame is the transition state -> (state, state).
type getFrame[S any] struct{}

func (getFrame[S]) stateFrame() {}

// putFrame is the transition state -> (aux, replacement).
// aux is the auxiliary value handed to put by the chain before it.
type putFrame[S any] struct {
	aux         S
	replacement S
}

func (putFrame[S]) stateFrame() {}

// bindFrame is sequential composition: run first, hand its auxiliary value
// to step, then run the returned State on the intermediate state.
type bindFrame[S any] struct {
	// first is the chain composed so far.
	first stateFrame[S]

	// step builds the next computation from first's auxiliary value.
	step func(S) State[S]
}

func (*bindFrame[S]) stateFrame() {}
