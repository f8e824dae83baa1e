// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

type maybeKind uint8

const (
	maybeUnset maybeKind = iota
	maybeJust
	maybeNothing
)

// Maybe is the short-circuiting instantiation.
// A Maybe holds either a carried value (Just) or no value at all (Nothing).
// Once a chain reaches Nothing, every later step is skipped and Nothing
// propagates unchanged.
type Maybe[A any] struct {
	value A
	kind  maybeKind
}

// Just creates a Maybe carrying a.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, kind: maybeJust}
}

// Nothing creates the terminal no-value Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{kind: maybeNothing}
}

// Compose implements Monad. When m is Nothing the step is not called.
func (m Maybe[A]) Compose(step func(A) Maybe[A]) Maybe[A] {
	if m.kind == maybeNothing {
		return m
	}
	return Direct(m.value, step)
}

// Valid implements Monad.
func (m Maybe[A]) Valid() bool {
	return m.kind != maybeUnset
}

// Then sequences n after m. It is Nothing when m is Nothing.
func (m Maybe[A]) Then(n Maybe[A]) Maybe[A] {
	return Then[Maybe[A], A](m, n)
}

// IsNothing reports whether m is the terminal no-value state.
func (m Maybe[A]) IsNothing() bool {
	return m.kind == maybeNothing
}

// Get returns the carried value and true, or the zero value and false
// for Nothing.
func (m Maybe[A]) Get() (A, bool) {
	if m.kind != maybeJust {
		var zero A
		return zero, false
	}
	return m.value, true
}

// OrElse returns the carried value, or def for Nothing.
func (m Maybe[A]) OrElse(def A) A {
	if m.kind != maybeJust {
		return def
	}
	return m.value
}
