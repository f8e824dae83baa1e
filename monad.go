// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Monad is the composition contract shared by every instantiation.
// Type parameters:
//   - M: the concrete instance type (self-referential bound)
//   - A: the value a step receives from the computation so far
//
// Compose decides whether and how step runs after the receiver.
// Valid reports whether the instance was built by a constructor of its
// family; the zero value of an instance type is never valid.
type Monad[M Monad[M, A], A any] interface {
	Compose(step func(A) M) M
	Valid() bool
}

// Compose chains step onto m through m's own composition point.
//
// The result must itself be a valid instance of the family. A step that
// returns an unconstructed instance is a defect in the domain operation
// and Compose panics at the violating call.
func Compose[M Monad[M, A], A any](m M, step func(A) M) M {
	mustValid(m)
	return mustValid(m.Compose(step))
}

// Direct is the default composition behaviour: run step on a immediately.
// Instantiations call it for the cases they do not intercept.
func Direct[M Monad[M, A], A any](a A, step func(A) M) M {
	return mustValid(step(a))
}

// Then sequences m before n, discarding the value m passes on.
// Then(Then(a, b), c) and Then(a, Then(b, c)) behave identically.
func Then[M Monad[M, A], A any](m, n M) M {
	mustValid(n)
	return Compose(m, func(A) M { return n })
}

// Chain composes steps onto m from left to right.
func Chain[M Monad[M, A], A any](m M, steps ...func(A) M) M {
	for _, step := range steps {
		m = Compose(m, step)
	}
	return m
}

func mustValid[M interface{ Valid() bool }](m M) M {
	if !m.Valid() {
		invariantViolation()
	}
	return m
}

func invariantViolation() {
	panic("monad: composition step returned an unconstructed instance")
}
