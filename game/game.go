// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package game is a two-field state machine driven by single-rune moves.
//
// Moves are ordinary method calls. Each returns a new Game describing
// "the chain so far, then this move"; nothing happens until Run threads
// an initial State through the chain.
//
//	g := game.New().Move('c').Move('a')
//	g.Run(game.State{})             // {On:true Score:1}
//	g.Move('b').Run(game.State{})   // {On:true Score:0}, g is unchanged
package game

import (
	"code.hybscloud.com/monad"
)

// State is the hidden state threaded through a Game.
type State struct {
	On    bool
	Score int
}

// Game is an immutable chain of moves over State.
// The zero Game is not usable; construct one with New.
type Game struct {
	m monad.State[State]
}

// New creates the empty Game. Running it returns the initial state unchanged.
func New() Game {
	return Game{m: monad.Empty[State]()}
}

// Reusable move computations. Lookup hands out one of these for every
// move, so chains built from the same move share its frames.
var (
	addMove = Game{m: monad.Empty[State]().Modify(func(s State) State {
		if s.On {
			s.Score++
		}
		return s
	})}

	subMove = Game{m: monad.Empty[State]().Modify(func(s State) State {
		if s.On {
			s.Score--
		}
		return s
	})}

	switchMove = Game{m: monad.Empty[State]().Modify(func(s State) State {
		s.On = !s.On
		return s
	})}

	noopMove = New()
)

// move is resolved when Move is called, so a built chain keeps the
// computation it was given.
var move = monad.Bound(func(_ State, next monad.State[State]) monad.State[State] {
	return next
})

// Lookup returns the reusable computation for move c.
// 'a' adds a point and 'b' removes one while the game is on, 'c' toggles
// the on flag; anything else leaves the state unchanged.
func Lookup(c rune) Game {
	switch c {
	case 'a':
		return addMove
	case 'b':
		return subMove
	case 'c':
		return switchMove
	default:
		return noopMove
	}
}

// Move appends move c to the chain.
// Unrecognized runes are legal and leave the state unchanged.
func (g Game) Move(c rune) Game {
	return Game{m: move(g.m, Lookup(c).m)}
}

// Moves appends one move per rune of s.
func (g Game) Moves(s string) Game {
	for _, c := range s {
		g = g.Move(c)
	}
	return g
}

// Then appends every move of next after the moves of g.
func (g Game) Then(next Game) Game {
	return Game{m: g.m.Then(next.m)}
}

// Run threads initial through the chain and returns the final state.
func (g Game) Run(initial State) State {
	return g.m.Run(initial)
}

// State returns the underlying state-threading computation.
func (g Game) State() monad.State[State] {
	return g.m
}
