// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"fmt"
	"reflect"
)

// Sum3 is the three-alternative counterpart of [Sum2].
// It holds exactly one of A, B or C; the zero value holds the zero value of A.
type Sum3[A, B, C any] struct {
	index uint8
	v1    A
	v2    B
	v3    C
}

var _ Union = Sum3[int, string, bool]{}

// NewSum3Arg1 creates a Sum3 holding A.
func NewSum3Arg1[A, B, C any](v A) Sum3[A, B, C] {
	return Sum3[A, B, C]{v1: v}
}

// NewSum3Arg2 creates a Sum3 holding B.
func NewSum3Arg2[A, B, C any](v B) Sum3[A, B, C] {
	return Sum3[A, B, C]{index: 1, v2: v}
}

// NewSum3Arg3 creates a Sum3 holding C.
func NewSum3Arg3[A, B, C any](v C) Sum3[A, B, C] {
	return Sum3[A, B, C]{index: 2, v3: v}
}

// NewSum3 creates a Sum3 holding v as the alternative named by the tag.
func NewSum3[A, B, C, T any](_ Tag[T], v T) Sum3[A, B, C] {
	var s Sum3[A, B, C]
	switch indexOf[T](s) {
	case 0:
		s.v1 = cast[A](v)
	case 1:
		s.index, s.v2 = 1, cast[B](v)
	case 2:
		s.index, s.v3 = 2, cast[C](v)
	}
	return s
}

// Index returns the live discriminant.
func (s Sum3[A, B, C]) Index() int { return int(s.index) }

// Arity returns the number of alternatives, 3.
func (Sum3[A, B, C]) Arity() int { return 3 }

// Value returns the live alternative boxed as any.
func (s Sum3[A, B, C]) Value() any {
	switch s.index {
	case 1:
		return s.v2
	case 2:
		return s.v3
	}
	return s.v1
}

// Alternatives returns the alternative types in declaration order.
func (Sum3[A, B, C]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

// Trivial reports whether no alternative carries a lifecycle hook.
func (Sum3[A, B, C]) Trivial() bool {
	return trivialUnion[Sum3[A, B, C]](func() bool {
		return trivial[A]() && trivial[B]() && trivial[C]()
	})
}

// Is1 reports whether A is live.
func (s Sum3[A, B, C]) Is1() bool { return s.index == 0 }

// Is2 reports whether B is live.
func (s Sum3[A, B, C]) Is2() bool { return s.index == 1 }

// Is3 reports whether C is live.
func (s Sum3[A, B, C]) Is3() bool { return s.index == 2 }

// Get1 returns the A value and true, or the zero A and false.
func (s Sum3[A, B, C]) Get1() (A, bool) { return s.v1, s.index == 0 }

// Get2 returns the B value and true, or the zero B and false.
func (s Sum3[A, B, C]) Get2() (B, bool) { return s.v2, s.index == 1 }

// Get3 returns the C value and true, or the zero C and false.
func (s Sum3[A, B, C]) Get3() (C, bool) { return s.v3, s.index == 2 }

// UnsafeGet1 returns the A slot without checking the discriminant.
func (s Sum3[A, B, C]) UnsafeGet1() A { return s.v1 }

// UnsafeGet2 returns the B slot without checking the discriminant.
func (s Sum3[A, B, C]) UnsafeGet2() B { return s.v2 }

// UnsafeGet3 returns the C slot without checking the discriminant.
func (s Sum3[A, B, C]) UnsafeGet3() C { return s.v3 }

// Set1 stores v as the live alternative. See [Sum2.Set1].
func (s *Sum3[A, B, C]) Set1(v A) {
	if s.Trivial() {
		*s = Sum3[A, B, C]{v1: v}
		return
	}
	if s.index == 0 {
		assignValue(&s.v1, v)
		return
	}
	s.Release()
	s.v1 = v
}

// Set2 stores v as the live alternative. See [Sum2.Set1].
func (s *Sum3[A, B, C]) Set2(v B) {
	if s.Trivial() {
		*s = Sum3[A, B, C]{index: 1, v2: v}
		return
	}
	if s.index == 1 {
		assignValue(&s.v2, v)
		return
	}
	s.Release()
	s.index, s.v2 = 1, v
}

// Set3 stores v as the live alternative. See [Sum2.Set1].
func (s *Sum3[A, B, C]) Set3(v C) {
	if s.Trivial() {
		*s = Sum3[A, B, C]{index: 2, v3: v}
		return
	}
	if s.index == 2 {
		assignValue(&s.v3, v)
		return
	}
	s.Release()
	s.index, s.v3 = 2, v
}

// Copy returns a copy of s, running the live alternative's [Copier] hook.
func (s Sum3[A, B, C]) Copy() (Sum3[A, B, C], error) {
	if s.Trivial() {
		return s, nil
	}
	var (
		out Sum3[A, B, C]
		err error
	)
	out.index = s.index
	switch s.index {
	case 0:
		out.v1, err = copyOf(s.v1)
	case 1:
		out.v2, err = copyOf(s.v2)
	case 2:
		out.v3, err = copyOf(s.v3)
	}
	if err != nil {
		return Sum3[A, B, C]{}, err
	}
	return out, nil
}

// Assign replaces s with a copy of src; see [Sum2.Assign] for the failure contract.
func (s *Sum3[A, B, C]) Assign(src *Sum3[A, B, C]) error {
	if s == src {
		return nil
	}
	if s.Trivial() {
		*s = *src
		return nil
	}
	tmp, err := src.Copy()
	if err != nil {
		return err
	}
	s.Release()
	*s = tmp
	return nil
}

// MoveFrom transfers src into s without copying; src is left holding the zero value of its alternative.
func (s *Sum3[A, B, C]) MoveFrom(src *Sum3[A, B, C]) {
	if s == src {
		return
	}
	s.Release()
	*s = *src
	*src = Sum3[A, B, C]{index: src.index}
}

// Release runs the live alternative's [Releaser] hook and resets s.
func (s *Sum3[A, B, C]) Release() {
	if !s.Trivial() {
		switch s.index {
		case 0:
			releaseValue(&s.v1)
		case 1:
			releaseValue(&s.v2)
		case 2:
			releaseValue(&s.v3)
		}
	}
	*s = Sum3[A, B, C]{}
}

// Equal reports whether s and o hold the same alternative with equal values.
func (s Sum3[A, B, C]) Equal(o Sum3[A, B, C]) bool {
	if s.index != o.index {
		return false
	}
	switch s.index {
	case 1:
		return equalValues(s.v2, o.v2)
	case 2:
		return equalValues(s.v3, o.v3)
	}
	return equalValues(s.v1, o.v1)
}

// String formats s as Sum3[index](value).
func (s Sum3[A, B, C]) String() string {
	return fmt.Sprintf("Sum3[%d](%v)", s.index, s.Value())
}

// Visit calls the handler of the live alternative.
func (s Sum3[A, B, C]) Visit(f1 func(A), f2 func(B), f3 func(C)) {
	switch s.index {
	case 1:
		f2(s.v2)
	case 2:
		f3(s.v3)
	default:
		f1(s.v1)
	}
}

// VisitRef calls the handler of the live alternative with a pointer into s.
func (s *Sum3[A, B, C]) VisitRef(f1 func(*A), f2 func(*B), f3 func(*C)) {
	switch s.index {
	case 1:
		f2(&s.v2)
	case 2:
		f3(&s.v3)
	default:
		f1(&s.v1)
	}
}

// Match3 runs the handler of the live alternative and returns its result.
func Match3[A, B, C, R any](s Sum3[A, B, C], f1 func(A) R, f2 func(B) R, f3 func(C) R) R {
	switch s.index {
	case 1:
		return f2(s.v2)
	case 2:
		return f3(s.v3)
	default:
		return f1(s.v1)
	}
}

// MatchRef3 is like [Match3] but passes a pointer into s.
func MatchRef3[A, B, C, R any](s *Sum3[A, B, C], f1 func(*A) R, f2 func(*B) R, f3 func(*C) R) R {
	switch s.index {
	case 1:
		return f2(&s.v2)
	case 2:
		return f3(&s.v3)
	default:
		return f1(&s.v1)
	}
}

// Equal3 compares unions of comparable alternatives.
func Equal3[A, B, C comparable](x, y Sum3[A, B, C]) bool {
	return x == y
}

// EqualFunc3 compares x and y with one comparer per alternative.
func EqualFunc3[A, B, C any](x, y Sum3[A, B, C], eq1 func(A, A) bool, eq2 func(B, B) bool, eq3 func(C, C) bool) bool {
	if x.index != y.index {
		return false
	}
	switch x.index {
	case 1:
		return eq2(x.v2, y.v2)
	case 2:
		return eq3(x.v3, y.v3)
	}
	return eq1(x.v1, y.v1)
}
