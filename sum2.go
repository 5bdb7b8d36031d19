// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"fmt"
	"reflect"
)

// Sum2 is a tagged union holding exactly one of A or B.
//
// The zero value holds the zero value of A. Inactive alternatives always
// hold their zero value, so a Sum2 whose alternatives are all comparable
// is comparable with == and == agrees with [Sum2.Equal].
//
// Copying a Sum2 with Go assignment is a bitwise copy. For unions whose
// alternatives carry lifecycle hooks ([Copier], [Releaser], [Assigner]),
// use [Sum2.Copy], [Sum2.Assign], [Sum2.MoveFrom] and [Sum2.Release]
// so the hooks run.
type Sum2[A, B any] struct {
	index uint8
	v1    A
	v2    B
}

var _ Union = Sum2[int, string]{}

// NewSum2Arg1 creates a Sum2 holding alternative A.
func NewSum2Arg1[A, B any](v A) Sum2[A, B] {
	return Sum2[A, B]{v1: v}
}

// NewSum2Arg2 creates a Sum2 holding alternative B.
func NewSum2Arg2[A, B any](v B) Sum2[A, B] {
	return Sum2[A, B]{index: 1, v2: v}
}

// NewSum2 creates a Sum2 holding v as the alternative named by the tag.
// The tag must name exactly one of the alternatives; otherwise NewSum2
// panics with [ErrNotAlternative] or [ErrAmbiguousAlternative] in the message.
//
//	s := ftl.NewSum2[int, rune](ftl.Type[int](), 5)
func NewSum2[A, B, T any](_ Tag[T], v T) Sum2[A, B] {
	var s Sum2[A, B]
	switch indexOf[T](s) {
	case 0:
		s.v1 = cast[A](v)
	case 1:
		s.index, s.v2 = 1, cast[B](v)
	}
	return s
}

// Index returns the live discriminant: 0 for A, 1 for B.
func (s Sum2[A, B]) Index() int { return int(s.index) }

// Arity returns the number of alternatives, 2.
func (Sum2[A, B]) Arity() int { return 2 }

// Value returns the live alternative boxed as any.
func (s Sum2[A, B]) Value() any {
	if s.index == 1 {
		return s.v2
	}
	return s.v1
}

// Alternatives returns the alternative types in declaration order.
func (Sum2[A, B]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

// Trivial reports whether no alternative carries a lifecycle hook.
// Every lifecycle operation on a trivial union is a plain copy with no
// hook lookup. The classification is computed once per instantiation.
func (Sum2[A, B]) Trivial() bool {
	return trivialUnion[Sum2[A, B]](func() bool {
		return trivial[A]() && trivial[B]()
	})
}

// Is1 reports whether A is live.
func (s Sum2[A, B]) Is1() bool { return s.index == 0 }

// Is2 reports whether B is live.
func (s Sum2[A, B]) Is2() bool { return s.index == 1 }

// Get1 returns the A value and true, or the zero A and false.
func (s Sum2[A, B]) Get1() (A, bool) { return s.v1, s.index == 0 }

// Get2 returns the B value and true, or the zero B and false.
func (s Sum2[A, B]) Get2() (B, bool) { return s.v2, s.index == 1 }

// UnsafeGet1 returns the A slot without checking the discriminant.
// Precondition: A is live. Reading an inactive slot yields its zero value.
func (s Sum2[A, B]) UnsafeGet1() A { return s.v1 }

// UnsafeGet2 returns the B slot without checking the discriminant.
func (s Sum2[A, B]) UnsafeGet2() B { return s.v2 }

// Set1 stores v as the live alternative, taking ownership of v.
//
// If A is already live, v is assigned in place through [Assigner] when *A
// implements it, with no Copy or Release hook. Without an Assigner the old
// value is released and overwritten. If another alternative is live it is
// released before v is stored. On a trivial union Set1 is a plain store.
func (s *Sum2[A, B]) Set1(v A) {
	if s.Trivial() {
		*s = Sum2[A, B]{v1: v}
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
func (s *Sum2[A, B]) Set2(v B) {
	if s.Trivial() {
		*s = Sum2[A, B]{index: 1, v2: v}
		return
	}
	if s.index == 1 {
		assignValue(&s.v2, v)
		return
	}
	s.Release()
	s.index, s.v2 = 1, v
}

// Copy returns a copy of s. The live alternative is copied through its
// [Copier] hook when it has one; the error of a failing Copy is returned
// unmodified.
func (s Sum2[A, B]) Copy() (Sum2[A, B], error) {
	if s.Trivial() {
		return s, nil
	}
	var (
		out Sum2[A, B]
		err error
	)
	out.index = s.index
	switch s.index {
	case 0:
		out.v1, err = copyOf(s.v1)
	case 1:
		out.v2, err = copyOf(s.v2)
	}
	if err != nil {
		return Sum2[A, B]{}, err
	}
	return out, nil
}

// Assign replaces s with a copy of src.
//
// The copy is made before the current alternative is released, so a failing
// [Copier] leaves s exactly as it was and its error is returned unmodified.
// When the incoming alternative has no Copier the copy is a plain value copy
// and cannot fail. Assigning a union to itself is a no-op.
func (s *Sum2[A, B]) Assign(src *Sum2[A, B]) error {
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

// MoveFrom transfers the live alternative of src into s without copying.
// The current alternative of s is released first. src keeps its
// discriminant but its value is reset to the zero value of that alternative.
func (s *Sum2[A, B]) MoveFrom(src *Sum2[A, B]) {
	if s == src {
		return
	}
	s.Release()
	*s = *src
	*src = Sum2[A, B]{index: src.index}
}

// Release runs the [Releaser] hook of the live alternative, if any, and
// resets s to its zero value. Release on a trivial union only resets it.
func (s *Sum2[A, B]) Release() {
	if !s.Trivial() {
		switch s.index {
		case 0:
			releaseValue(&s.v1)
		case 1:
			releaseValue(&s.v2)
		}
	}
	*s = Sum2[A, B]{}
}

// Equal reports whether s and o hold the same alternative with equal values.
// Values are compared with their Equal method when they have one, else ==.
func (s Sum2[A, B]) Equal(o Sum2[A, B]) bool {
	if s.index != o.index {
		return false
	}
	if s.index == 1 {
		return equalValues(s.v2, o.v2)
	}
	return equalValues(s.v1, o.v1)
}

// String formats s as Sum2[index](value).
func (s Sum2[A, B]) String() string {
	return fmt.Sprintf("Sum2[%d](%v)", s.index, s.Value())
}

// Visit calls the handler of the live alternative.
func (s Sum2[A, B]) Visit(f1 func(A), f2 func(B)) {
	switch s.index {
	case 1:
		f2(s.v2)
	default:
		f1(s.v1)
	}
}

// VisitRef calls the handler of the live alternative with a pointer into s.
// Mutations through the pointer are visible in s.
func (s *Sum2[A, B]) VisitRef(f1 func(*A), f2 func(*B)) {
	switch s.index {
	case 1:
		f2(&s.v2)
	default:
		f1(&s.v1)
	}
}

// Match2 runs the handler of the live alternative and returns its result.
// Exactly one handler runs. The handler list is exhaustive by construction.
//
// Example:
//
//	n := ftl.Match2(s,
//		func(a A) int { return 0 },
//		func(b B) int { return 1 },
//	)
func Match2[A, B, R any](s Sum2[A, B], f1 func(A) R, f2 func(B) R) R {
	switch s.index {
	case 1:
		return f2(s.v2)
	default:
		return f1(s.v1)
	}
}

// MatchRef2 is like [Match2] but passes a pointer into s, so handlers
// may mutate the live alternative in place.
func MatchRef2[A, B, R any](s *Sum2[A, B], f1 func(*A) R, f2 func(*B) R) R {
	switch s.index {
	case 1:
		return f2(&s.v2)
	default:
		return f1(&s.v1)
	}
}

// Equal2 compares unions of comparable alternatives.
// It is equivalent to x == y.
func Equal2[A, B comparable](x, y Sum2[A, B]) bool {
	return x == y
}

// EqualFunc2 compares x and y with one comparer per alternative.
func EqualFunc2[A, B any](x, y Sum2[A, B], eq1 func(A, A) bool, eq2 func(B, B) bool) bool {
	if x.index != y.index {
		return false
	}
	if x.index == 1 {
		return eq2(x.v2, y.v2)
	}
	return eq1(x.v1, y.v1)
}
