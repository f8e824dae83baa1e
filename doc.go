// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monad provides a composition protocol whose bind point can be
// swapped without touching the code that chains calls together.
//
// Domain operations are written as plain functions of (value, arguments)
// and bound once through the operation binder. Each call on an instance
// is redirected through the instance's [Monad.Compose], which decides
// whether the operation runs and how its result joins the chain. Two
// instantiations are provided:
//
//   - [Maybe]: short-circuiting. Once a chain reaches [Nothing], every
//     later operation is skipped and Nothing propagates unchanged.
//   - [State]: state-threading. Each operation receives an auxiliary value
//     from its predecessor and the chain is a transition over a hidden
//     state that only exists while [State.Run] executes.
//
// # Composition Protocol
//
//   - [Monad]: F-bounded contract, type Monad[M Monad[M, A], A any]
//   - [Compose]: chain a step through the instance's composition point
//   - [Direct]: default behaviour, run the step immediately
//   - [Then]: sequence two instances, discarding the first value
//   - [Chain]: compose several steps left to right
//
// Every composed result must be a valid instance of the family. An
// operation that returns an unconstructed (zero) instance is a defect;
// Compose panics at the violating call and the panic is never recovered.
//
// # Operation Binder
//
//   - [Bound0], [Bound], [Bound2]: wrap an operation taking zero, one or
//     two arguments so calls go through Compose
//
// # Maybe
//
//   - [Just], [Nothing]: constructors
//   - [Maybe.IsNothing], [Maybe.Get], [Maybe.OrElse]: inspection
//
// # State
//
//   - [Empty]: the no-op transition
//   - [State.Get], [State.Put], [State.Modify]: primitives, each bound
//     through the binder
//   - [State.Run], [State.Eval], [State.RunPair]: execute from an initial state
//
// State transitions are defunctionalized: a State holds a small frame
// tree rather than nested closures, and Run interprets it with an
// iterative loop, so arbitrarily long chains do not grow the Go stack.
//
// All instances are immutable. A chain may be reused as the prefix of
// any number of other chains and shared between goroutines freely.
//
// # Example
//
//	div := monad.Bound(func(v, d int) monad.Maybe[int] {
//		if d == 0 {
//			return monad.Nothing[int]()
//		}
//		return monad.Just(v / d)
//	})
//
//	div(monad.Just(10), 2)                   // Just(5)
//	div(div(monad.Just(10), 0), 2).IsNothing() // true, second call skipped
package monad
