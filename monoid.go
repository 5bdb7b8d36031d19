// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "github.com/samber/lo"

// Monoid is an associative append operation with an identity element.
//
// Instances are dictionaries passed explicitly; the laws are
//
//	Append(Empty(), a) == a
//	Append(a, Empty()) == a
//	Append(Append(a, b), c) == Append(a, Append(b, c))
//
// The laws package checks them for any instance.
type Monoid[T any] interface {
	Empty() T
	Append(a, b T) T
}

// Number is the constraint of the numeric monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// AddMonoid is the monoid of N under addition.
type AddMonoid[N Number] struct{}

func (AddMonoid[N]) Empty() N { return 0 }
func (AddMonoid[N]) Append(a, b N) N { return a + b }

// MulMonoid is the monoid of N under multiplication.
type MulMonoid[N Number] struct{}

func (MulMonoid[N]) Empty() N { return 1 }
func (MulMonoid[N]) Append(a, b N) N { return a * b }

// StringMonoid is the monoid of strings under concatenation.
type StringMonoid struct{}

func (StringMonoid) Empty() string { return "" }
func (StringMonoid) Append(a, b string) string { return a + b }

// SliceMonoid is the monoid of slices under concatenation.
// Append never aliases its arguments.
type SliceMonoid[T any] struct{}

func (SliceMonoid[T]) Empty() []T { return nil }

func (SliceMonoid[T]) Append(a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// MaybeMonoid lifts a monoid on A into Maybe[A].
// Nothing is the identity; two values append through Inner.
type MaybeMonoid[A any] struct {
	Inner Monoid[A]
}

func (MaybeMonoid[A]) Empty() Maybe[A] { return None[A]() }

func (m MaybeMonoid[A]) Append(a, b Maybe[A]) Maybe[A] {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		return Just(m.Inner.Append(av, bv))
	case aok:
		return a
	}
	return b
}

// FirstMonoid keeps the leftmost value.
type FirstMonoid[A any] struct{}

func (FirstMonoid[A]) Empty() Maybe[A] { return None[A]() }

func (FirstMonoid[A]) Append(a, b Maybe[A]) Maybe[A] {
	if a.IsValue() {
		return a
	}
	return b
}

// LastMonoid keeps the rightmost value.
type LastMonoid[A any] struct{}

func (LastMonoid[A]) Empty() Maybe[A] { return None[A]() }

func (LastMonoid[A]) Append(a, b Maybe[A]) Maybe[A] {
	if b.IsValue() {
		return b
	}
	return a
}

// MonoidFunc builds a monoid from an identity and an append function.
// The caller is responsible for the laws.
type MonoidFunc[T any] struct {
	Identity T
	Op       func(a, b T) T
}

func (m MonoidFunc[T]) Empty() T { return m.Identity }
func (m MonoidFunc[T]) Append(a, b T) T { return m.Op(a, b) }

// Concat folds xs from the left with m, starting at m.Empty().
func Concat[T any](m Monoid[T], xs ...T) T {
	return lo.Reduce(xs, func(acc T, x T, _ int) T {
		return m.Append(acc, x)
	}, m.Empty())
}

// FoldMap maps every element of xs into the monoid and concatenates the results.
func FoldMap[A, T any](m Monoid[T], xs []A, f func(A) T) T {
	return lo.Reduce(xs, func(acc T, x A, _ int) T {
		return m.Append(acc, f(x))
	}, m.Empty())
}
