// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mathop is exact rational arithmetic that stops at the first
// division by zero.
//
// Each operation is a plain function of the carried value and its
// argument, routed through [monad.Maybe] by the operation binder. After a
// division by zero every later operation is skipped and the result
// renders as "<MathOp NaN>".
//
//	mathop.New(5).Mul(2).Add(17).Sub(4) // <MathOp 23>
//	mathop.New(5).Div(0).Mul(2)         // <MathOp NaN>
package mathop

import (
	"math/big"

	"code.hybscloud.com/monad"
)

// MathOp is an immutable arithmetic value or the terminal NaN.
// The zero MathOp is not usable; construct one with New, NewRat or NaN.
type MathOp struct {
	m monad.Maybe[*big.Rat]
}

// New creates a MathOp carrying the integer v.
func New(v int64) MathOp {
	return MathOp{m: monad.Just(big.NewRat(v, 1))}
}

// NewRat creates a MathOp carrying a copy of r.
// A nil r yields NaN.
func NewRat(r *big.Rat) MathOp {
	if r == nil {
		return NaN()
	}
	return MathOp{m: monad.Just(new(big.Rat).Set(r))}
}

// NaN creates the terminal no-value MathOp.
func NaN() MathOp {
	return MathOp{m: monad.Nothing[*big.Rat]()}
}

var (
	div = monad.Bound(func(v, d *big.Rat) monad.Maybe[*big.Rat] {
		if d.Sign() == 0 {
			return monad.Nothing[*big.Rat]()
		}
		return monad.Just(new(big.Rat).Quo(v, d))
	})
	mul = monad.Bound(func(v, f *big.Rat) monad.Maybe[*big.Rat] {
		return monad.Just(new(big.Rat).Mul(v, f))
	})
	add = monad.Bound(func(v, a *big.Rat) monad.Maybe[*big.Rat] {
		return monad.Just(new(big.Rat).Add(v, a))
	})
	sub = monad.Bound(func(v, s *big.Rat) monad.Maybe[*big.Rat] {
		return monad.Just(new(big.Rat).Sub(v, s))
	})
)

// Div divides by d. Dividing by zero yields NaN.
func (o MathOp) Div(d int64) MathOp { return o.DivRat(big.NewRat(d, 1)) }

// Mul multiplies by f.
func (o MathOp) Mul(f int64) MathOp { return o.MulRat(big.NewRat(f, 1)) }

// Add adds a.
func (o MathOp) Add(a int64) MathOp { return o.AddRat(big.NewRat(a, 1)) }

// Sub subtracts s.
func (o MathOp) Sub(s int64) MathOp { return o.SubRat(big.NewRat(s, 1)) }

// DivRat divides by d. Dividing by zero yields NaN.
func (o MathOp) DivRat(d *big.Rat) MathOp { return MathOp{m: div(o.m, d)} }

// MulRat multiplies by f.
func (o MathOp) MulRat(f *big.Rat) MathOp { return MathOp{m: mul(o.m, f)} }

// AddRat adds a.
func (o MathOp) AddRat(a *big.Rat) MathOp { return MathOp{m: add(o.m, a)} }

// SubRat subtracts s.
func (o MathOp) SubRat(s *big.Rat) MathOp { return MathOp{m: sub(o.m, s)} }

// IsNaN reports whether a division by zero has happened in the chain.
func (o MathOp) IsNaN() bool {
	return o.m.IsNothing()
}

// Value returns a copy of the carried value, or (nil, false) for NaN.
func (o MathOp) Value() (*big.Rat, bool) {
	v, ok := o.m.Get()
	if !ok {
		return nil, false
	}
	return new(big.Rat).Set(v), true
}

// Maybe returns the short-circuiting computation carrying a copy of the value.
func (o MathOp) Maybe() monad.Maybe[*big.Rat] {
	v, ok := o.Value()
	if !ok {
		return monad.Nothing[*big.Rat]()
	}
	return monad.Just(v)
}

// String renders "<MathOp v>" or "<MathOp NaN>".
// Integers render without a denominator; other values render as "a/b".
func (o MathOp) String() string {
	v, ok := o.m.Get()
	if !ok {
		return "<MathOp NaN>"
	}
	return "<MathOp " + v.RatString() + ">"
}
