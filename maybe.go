// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"cmp"
	"fmt"
)

// Nothing is the empty alternative of [Maybe].
type Nothing struct{}

// Maybe is an optional value: either a value of type A, or Nothing.
// It is a two-alternative union, Sum2[Nothing, A], so the zero value is
// Nothing.
//
// Maybe is comparable with == when A is comparable. Lifecycle hooks of A
// are honored through the same operations as the underlying union.
type Maybe[A any] struct {
	s Sum2[Nothing, A]
}

// Just creates a Maybe holding a.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{s: NewSum2Arg2[Nothing](a)}
}

// None returns the Nothing value of Maybe[A].
func None[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr returns Just(*p), or Nothing when p is nil.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return None[A]()
	}
	return Just(*p)
}

// IsNothing reports whether m holds no value.
func (m Maybe[A]) IsNothing() bool { return m.s.Is1() }

// IsValue reports whether m holds a value.
func (m Maybe[A]) IsValue() bool { return m.s.Is2() }

// Get returns the value and true, or the zero A and false.
func (m Maybe[A]) Get() (A, bool) { return m.s.Get2() }

// Must returns the value, panicking if m is Nothing.
func (m Maybe[A]) Must() A {
	v, ok := m.s.Get2()
	if !ok {
		panic("ftl: attempting to read the value of Nothing")
	}
	return v
}

// OrElse returns the value, or fallback if m is Nothing.
func (m Maybe[A]) OrElse(fallback A) A {
	if v, ok := m.s.Get2(); ok {
		return v
	}
	return fallback
}

// OrElseFunc returns the value, or the result of f if m is Nothing.
// f is not called when m holds a value.
func (m Maybe[A]) OrElseFunc(f func() A) A {
	if v, ok := m.s.Get2(); ok {
		return v
	}
	return f()
}

// Ptr returns a pointer to a copy of the value, or nil if m is Nothing.
func (m Maybe[A]) Ptr() *A {
	v, ok := m.s.Get2()
	if !ok {
		return nil
	}
	return &v
}

// Trivial reports whether A carries no lifecycle hook.
func (m Maybe[A]) Trivial() bool { return m.s.Trivial() }

// Copy returns a copy of m through A's [Copier] hook, if any.
func (m Maybe[A]) Copy() (Maybe[A], error) {
	s, err := m.s.Copy()
	if err != nil {
		return Maybe[A]{}, err
	}
	return Maybe[A]{s: s}, nil
}

// Assign replaces m with a copy of src. See [Sum2.Assign].
func (m *Maybe[A]) Assign(src *Maybe[A]) error { return m.s.Assign(&src.s) }

// MoveFrom transfers src into m. See [Sum2.MoveFrom].
func (m *Maybe[A]) MoveFrom(src *Maybe[A]) { m.s.MoveFrom(&src.s) }

// Release releases the value, if any, and resets m to Nothing.
func (m *Maybe[A]) Release() { m.s.Release() }

// Union returns m as its underlying union, for use with the union matchers.
func (m Maybe[A]) Union() Sum2[Nothing, A] { return m.s }

// Equal reports whether both are Nothing, or both hold equal values.
func (m Maybe[A]) Equal(o Maybe[A]) bool { return m.s.Equal(o.s) }

func (m Maybe[A]) String() string {
	if v, ok := m.s.Get2(); ok {
		return fmt.Sprintf("Just(%v)", v)
	}
	return "Nothing"
}

// CompareMaybe orders Maybe values: Nothing sorts before every value, and
// values compare with [cmp.Compare].
func CompareMaybe[A cmp.Ordered](x, y Maybe[A]) int {
	xv, xok := x.Get()
	yv, yok := y.Get()
	switch {
	case xok && yok:
		return cmp.Compare(xv, yv)
	case xok:
		return 1
	case yok:
		return -1
	}
	return 0
}

// MatchMaybe calls onNothing or onJust depending on m.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if v, ok := m.s.Get2(); ok {
		return onJust(v)
	}
	return onNothing()
}

// EqualMaybe compares Maybe values of a comparable type.
// It is equivalent to x == y.
func EqualMaybe[A comparable](x, y Maybe[A]) bool {
	return x == y
}
