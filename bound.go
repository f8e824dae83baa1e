// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Operation binder.
//
// A domain operation is written as a plain function of the value handed
// over by the computation so far and its own arguments. The binder turns
// it into a method-shaped function that never runs the operation itself:
// every call goes through the instance's Compose, which decides whether
// the operation runs and how its result joins the chain.
//
// Bind operations once, at definition time:
//
//	var div = monad.Bound(func(v *big.Rat, d *big.Rat) monad.Maybe[*big.Rat] { ... })
//
//	func (o MathOp) Div(d int64) MathOp { return MathOp{div(o.m, big.NewRat(d, 1))} }

// Bound0 binds an operation that takes no arguments.
func Bound0[M Monad[M, A], A any](op func(A) M) func(M) M {
	return func(m M) M {
		return Compose(m, op)
	}
}

// Bound binds an operation that takes one argument.
func Bound[M Monad[M, A], A, X any](op func(A, X) M) func(M, X) M {
	return func(m M, x X) M {
		return Compose(m, func(a A) M { return op(a, x) })
	}
}

// Bound2 binds an operation that takes two arguments.
func Bound2[M Monad[M, A], A, X, Y any](op func(A, X, Y) M) func(M, X, Y) M {
	return func(m M, x X, y Y) M {
		return Compose(m, func(a A) M { return op(a, x, y) })
	}
}
