// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package game_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/monad/game"
)

var start = game.State{On: false, Score: 0}

func TestIgnoreDisabledGame(t *testing.T) {
	if got := game.New().Move('a').Move('b').Run(start); got != start {
		t.Fatalf("got %+v, want %+v", got, start)
	}
	if got := game.New().Move('a').Move('a').Move('a').Run(start); got != start {
		t.Fatalf("got %+v, want %+v", got, start)
	}
}

func TestToggleActiveGame(t *testing.T) {
	want := game.State{On: true, Score: 1}
	if got := game.New().Move('c').Move('a').Run(start); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAddOnA(t *testing.T) {
	want := game.State{On: true, Score: 2}
	if got := game.New().Move('c').Move('a').Move('a').Run(start); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSubOnB(t *testing.T) {
	want := game.State{On: true, Score: -1}
	if got := game.New().Move('c').Move('b').Run(start); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestChainCorrectly(t *testing.T) {
	g := game.New().Move('c').Move('a')
	if got := g.Move('b').Move('c').Move('a').Run(start); got != start {
		t.Fatalf("got %+v, want %+v", got, start)
	}
	want := game.State{On: true, Score: 1}
	if got := g.Run(start); got != want {
		t.Fatalf("shared prefix changed: got %+v, want %+v", got, want)
	}
}

func TestSharedPrefixBranches(t *testing.T) {
	opening := game.New().Move('c').Move('a')
	left := opening.Move('a').Move('a')
	right := opening.Move('b').Move('b')

	if got, want := left.Run(start), (game.State{On: true, Score: 3}); got != want {
		t.Fatalf("left: got %+v, want %+v", got, want)
	}
	if got, want := right.Run(start), (game.State{On: true, Score: -1}); got != want {
		t.Fatalf("right: got %+v, want %+v", got, want)
	}
}

func TestHaveNoop(t *testing.T) {
	s := game.State{On: true, Score: 1000}
	if got := game.New().Move('d').Run(s); got != s {
		t.Fatalf("got %+v, want %+v", got, s)
	}
}

func TestEmptyGameIsIdentity(t *testing.T) {
	for _, s := range []game.State{{}, {On: true}, {On: true, Score: 1000}, {Score: -3}} {
		if got := game.New().Run(s); got != s {
			t.Fatalf("got %+v, want %+v", got, s)
		}
	}
}

func TestUnrecognizedMovesAreInert(t *testing.T) {
	s := game.State{On: true, Score: 7}
	for _, c := range "dxyzABC 0!é" {
		if got := game.New().Move(c).Run(s); got != s {
			t.Fatalf("move %q: got %+v, want %+v", c, got, s)
		}
	}
}

func TestMoves(t *testing.T) {
	want := game.State{On: true, Score: 2}
	if got := game.New().Moves("cabaa").Run(start); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLookup(t *testing.T) {
	s := game.State{On: true, Score: 10}
	tests := []struct {
		move rune
		want game.State
	}{
		{'a', game.State{On: true, Score: 11}},
		{'b', game.State{On: true, Score: 9}},
		{'c', game.State{On: false, Score: 10}},
		{'z', s},
	}
	for _, tt := range tests {
		if got := game.Lookup(tt.move).Run(s); got != tt.want {
			t.Fatalf("Lookup(%q): got %+v, want %+v", tt.move, got, tt.want)
		}
	}
}

func TestReusableMovesShareable(t *testing.T) {
	add, toggle := game.Lookup('a'), game.Lookup('c')
	a := add.Then(add)
	b := toggle.Then(add)
	if got, want := a.Run(game.State{On: true}), (game.State{On: true, Score: 2}); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got, want := b.Run(start), (game.State{On: true, Score: 1}); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got, want := add.Run(game.State{On: true}), (game.State{On: true, Score: 1}); got != want {
		t.Fatalf("add changed: got %+v, want %+v", got, want)
	}
}

func TestThenMatchesMoves(t *testing.T) {
	left := game.New().Moves("ca")
	right := game.New().Moves("ab")
	if got, want := left.Then(right).Run(start), game.New().Moves("caab").Run(start); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

// simulate is a direct loop used as the reference for property tests.
func simulate(s game.State, moves string) game.State {
	for _, c := range moves {
		switch c {
		case 'a':
			if s.On {
				s.Score++
			}
		case 'b':
			if s.On {
				s.Score--
			}
		case 'c':
			s.On = !s.On
		}
	}
	return s
}

func randMoves(rng *rand.Rand) string {
	const alphabet = "abcd"
	b := make([]byte, rng.IntN(24))
	for i := range b {
		b[i] = alphabet[rng.IntN(len(alphabet))]
	}
	return string(b)
}

// TestPropertyMatchesSimulation: a chained Game agrees with a direct loop.
func TestPropertyMatchesSimulation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		moves := randMoves(rng)
		s := game.State{On: rng.IntN(2) == 0, Score: rng.IntN(201) - 100}
		if got, want := game.New().Moves(moves).Run(s), simulate(s, moves); got != want {
			t.Fatalf("moves %q from %+v: got %+v, want %+v", moves, s, got, want)
		}
	}
}

// TestPropertyThenAssociativity: (a.Then(b)).Then(c) ≡ a.Then(b.Then(c))
func TestPropertyThenAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 1000 {
		a := game.New().Moves(randMoves(rng))
		b := game.New().Moves(randMoves(rng))
		c := game.New().Moves(randMoves(rng))
		s := game.State{On: rng.IntN(2) == 0, Score: rng.IntN(201) - 100}
		if left, right := a.Then(b).Then(c).Run(s), a.Then(b.Then(c)).Run(s); left != right {
			t.Fatalf("then associativity: %+v != %+v", left, right)
		}
	}
}
