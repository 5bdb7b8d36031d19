// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"fmt"
	"reflect"
)

// Sum4 is the four-alternative counterpart of [Sum2].
// It holds exactly one of A, B, C or D; the zero value holds the zero value of A.
type Sum4[A, B, C, D any] struct {
	index uint8
	v1    A
	v2    B
	v3    C
	v4    D
}

var _ Union = Sum4[int, string, bool, float64]{}

// NewSum4Arg1 creates a Sum4 holding A.
func NewSum4Arg1[A, B, C, D any](v A) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{v1: v}
}

// NewSum4Arg2 creates a Sum4 holding B.
func NewSum4Arg2[A, B, C, D any](v B) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{index: 1, v2: v}
}

// NewSum4Arg3 creates a Sum4 holding C.
func NewSum4Arg3[A, B, C, D any](v C) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{index: 2, v3: v}
}

// NewSum4Arg4 creates a Sum4 holding D.
func NewSum4Arg4[A, B, C, D any](v D) Sum4[A, B, C, D] {
	return Sum4[A, B, C, D]{index: 3, v4: v}
}

// NewSum4 creates a Sum4 holding v as the alternative named by the tag.
func NewSum4[A, B, C, D, T any](_ Tag[T], v T) Sum4[A, B, C, D] {
	var s Sum4[A, B, C, D]
	switch indexOf[T](s) {
	case 0:
		s.v1 = cast[A](v)
	case 1:
		s.index, s.v2 = 1, cast[B](v)
	case 2:
		s.index, s.v3 = 2, cast[C](v)
	case 3:
		s.index, s.v4 = 3, cast[D](v)
	}
	return s
}

// Index returns the live discriminant.
func (s Sum4[A, B, C, D]) Index() int { return int(s.index) }

// Arity returns the number of alternatives, 4.
func (Sum4[A, B, C, D]) Arity() int { return 4 }

// Value returns the live alternative boxed as any.
func (s Sum4[A, B, C, D]) Value() any {
	switch s.index {
	case 1:
		return s.v2
	case 2:
		return s.v3
	case 3:
		return s.v4
	}
	return s.v1
}

// Alternatives returns the alternative types in declaration order.
func (Sum4[A, B, C, D]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}
}

// Trivial reports whether no alternative carries a lifecycle hook.
func (Sum4[A, B, C, D]) Trivial() bool {
	return trivialUnion[Sum4[A, B, C, D]](func() bool {
		return trivial[A]() && trivial[B]() && trivial[C]() && trivial[D]()
	})
}

// Is1 reports whether A is live.
func (s Sum4[A, B, C, D]) Is1() bool { return s.index == 0 }

// Is2 reports whether B is live.
func (s Sum4[A, B, C, D]) Is2() bool { return s.index == 1 }

// Is3 reports whether C is live.
func (s Sum4[A, B, C, D]) Is3() bool { return s.index == 2 }

// Is4 reports whether D is live.
func (s Sum4[A, B, C, D]) Is4() bool { return s.index == 3 }

// Get1 returns the A value and true, or the zero A and false.
func (s Sum4[A, B, C, D]) Get1() (A, bool) { return s.v1, s.index == 0 }

// Get2 returns the B value and true, or the zero B and false.
func (s Sum4[A, B, C, D]) Get2() (B, bool) { return s.v2, s.index == 1 }

// Get3 returns the C value and true, or the zero C and false.
func (s Sum4[A, B, C, D]) Get3() (C, bool) { return s.v3, s.index == 2 }

// Get4 returns the D value and true, or the zero D and false.
func (s Sum4[A, B, C, D]) Get4() (D, bool) { return s.v4, s.index == 3 }

// UnsafeGet1 returns the A slot without checking the discriminant.
func (s Sum4[A, B, C, D]) UnsafeGet1() A { return s.v1 }

// UnsafeGet2 returns the B slot without checking the discriminant.
func (s Sum4[A, B, C, D]) UnsafeGet2() B { return s.v2 }

// UnsafeGet3 returns the C slot without checking the discriminant.
func (s Sum4[A, B, C, D]) UnsafeGet3() C { return s.v3 }

// UnsafeGet4 returns the D slot without checking the discriminant.
func (s Sum4[A, B, C, D]) UnsafeGet4() D { return s.v4 }

// Set1 stores v as the live alternative. See [Sum2.Set1].
func (s *Sum4[A, B, C, D]) Set1(v A) {
	if s.Trivial() {
		*s = Sum4[A, B, C, D]{v1: v}
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
func (s *Sum4[A, B, C, D]) Set2(v B) {
	if s.Trivial() {
		*s = Sum4[A, B, C, D]{index: 1, v2: v}
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
func (s *Sum4[A, B, C, D]) Set3(v C) {
	if s.Trivial() {
		*s = Sum4[A, B, C, D]{index: 2, v3: v}
		return
	}
	if s.index == 2 {
		assignValue(&s.v3, v)
		return
	}
	s.Release()
	s.index, s.v3 = 2, v
}

// Set4 stores v as the live alternative. See [Sum2.Set1].
func (s *Sum4[A, B, C, D]) Set4(v D) {
	if s.Trivial() {
		*s = Sum4[A, B, C, D]{index: 3, v4: v}
		return
	}
	if s.index == 3 {
		assignValue(&s.v4, v)
		return
	}
	s.Release()
	s.index, s.v4 = 3, v
}

// Copy returns a copy of s, running the live alternative's [Copier] hook.
func (s Sum4[A, B, C, D]) Copy() (Sum4[A, B, C, D], error) {
	if s.Trivial() {
		return s, nil
	}
	var (
		out Sum4[A, B, C, D]
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
	case 3:
		out.v4, err = copyOf(s.v4)
	}
	if err != nil {
		return Sum4[A, B, C, D]{}, err
	}
	return out, nil
}

// Assign replaces s with a copy of src; see [Sum2.Assign] for the failure contract.
func (s *Sum4[A, B, C, D]) Assign(src *Sum4[A, B, C, D]) error {
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
func (s *Sum4[A, B, C, D]) MoveFrom(src *Sum4[A, B, C, D]) {
	if s == src {
		return
	}
	s.Release()
	*s = *src
	*src = Sum4[A, B, C, D]{index: src.index}
}

// Release runs the live alternative's [Releaser] hook and resets s.
func (s *Sum4[A, B, C, D]) Release() {
	if !s.Trivial() {
		switch s.index {
		case 0:
			releaseValue(&s.v1)
		case 1:
			releaseValue(&s.v2)
		case 2:
			releaseValue(&s.v3)
		case 3:
			releaseValue(&s.v4)
		}
	}
	*s = Sum4[A, B, C, D]{}
}

// Equal reports whether s and o hold the same alternative with equal values.
func (s Sum4[A, B, C, D]) Equal(o Sum4[A, B, C, D]) bool {
	if s.index != o.index {
		return false
	}
	switch s.index {
	case 1:
		return equalValues(s.v2, o.v2)
	case 2:
		return equalValues(s.v3, o.v3)
	case 3:
		return equalValues(s.v4, o.v4)
	}
	return equalValues(s.v1, o.v1)
}

// String formats s as Sum4[index](value).
func (s Sum4[A, B, C, D]) String() string {
	return fmt.Sprintf("Sum4[%d](%v)", s.index, s.Value())
}

// Visit calls the handler of the live alternative.
func (s Sum4[A, B, C, D]) Visit(f1 func(A), f2 func(B), f3 func(C), f4 func(D)) {
	switch s.index {
	case 1:
		f2(s.v2)
	case 2:
		f3(s.v3)
	case 3:
		f4(s.v4)
	default:
		f1(s.v1)
	}
}

// VisitRef calls the handler of the live alternative with a pointer into s.
func (s *Sum4[A, B, C, D]) VisitRef(f1 func(*A), f2 func(*B), f3 func(*C), f4 func(*D)) {
	switch s.index {
	case 1:
		f2(&s.v2)
	case 2:
		f3(&s.v3)
	case 3:
		f4(&s.v4)
	default:
		f1(&s.v1)
	}
}

// Match4 runs the handler of the live alternative and returns its result.
func Match4[A, B, C, D, R any](s Sum4[A, B, C, D], f1 func(A) R, f2 func(B) R, f3 func(C) R, f4 func(D) R) R {
	switch s.index {
	case 1:
		return f2(s.v2)
	case 2:
		return f3(s.v3)
	case 3:
		return f4(s.v4)
	default:
		return f1(s.v1)
	}
}

// MatchRef4 is like [Match4] but passes a pointer into s.
func MatchRef4[A, B, C, D, R any](s *Sum4[A, B, C, D], f1 func(*A) R, f2 func(*B) R, f3 func(*C) R, f4 func(*D) R) R {
	switch s.index {
	case 1:
		return f2(&s.v2)
	case 2:
		return f3(&s.v3)
	case 3:
		return f4(&s.v4)
	default:
		return f1(&s.v1)
	}
}

// Equal4 compares unions of comparable alternatives.
func Equal4[A, B, C, D comparable](x, y Sum4[A, B, C, D]) bool {
	return x == y
}

// EqualFunc4 compares x and y with one comparer per alternative.
func EqualFunc4[A, B, C, D any](x, y Sum4[A, B, C, D], eq1 func(A, A) bool, eq2 func(B, B) bool, eq3 func(C, C) bool, eq4 func(D, D) bool) bool {
	if x.index != y.index {
		return false
	}
	switch x.index {
	case 1:
		return eq2(x.v2, y.v2)
	case 2:
		return eq3(x.v3, y.v3)
	case 3:
		return eq4(x.v4, y.v4)
	}
	return eq1(x.v1, y.v1)
}
