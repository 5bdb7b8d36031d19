// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"fmt"
	"reflect"
)

// Union is the arity-independent view of a tagged union.
// Every SumN instantiation implements Union with value receivers.
//
// Index reports the live discriminant in [0, Arity()). Value returns the
// live alternative boxed as any. Alternatives lists the alternative types
// in declaration order.
type Union interface {
	Index() int
	Arity() int
	Value() any
	Alternatives() []reflect.Type
}

// Tag is a zero-size construction tag naming alternative T.
// It disambiguates construction when several alternatives could accept
// the same argument (for example an untyped constant).
type Tag[T any] struct{}

// Type returns the construction tag for T.
//
//	s := ftl.NewSum2[int, rune](ftl.Type[rune](), 'a')
func Type[T any]() Tag[T] { return Tag[T]{} }

// Otherwise is the parameter type of a fallback match handler.
// See [Else].
type Otherwise struct{}

// indexOf resolves the position of T among the alternatives of u.
// Panics if T is not an alternative or names more than one.
func indexOf[T any](u Union) int {
	t := reflect.TypeFor[T]()
	idx := -1
	for i, alt := range u.Alternatives() {
		if alt != t {
			continue
		}
		if idx >= 0 {
			panic(fmt.Sprintf("ftl: %v: %s", ErrAmbiguousAlternative, t))
		}
		idx = i
	}
	if idx < 0 {
		panic(fmt.Sprintf("ftl: %v: %s", ErrNotAlternative, t))
	}
	return idx
}

// cast converts v to A; the caller has established that T and A are the
// same type. A nil interface value converts to the zero A.
func cast[A, T any](v T) A {
	a, _ := any(v).(A)
	return a
}

// Is reports whether the live alternative of u is exactly T.
// Panics if T is not one of u's alternatives.
func Is[T any](u Union) bool {
	return u.Index() == indexOf[T](u)
}

// Get returns the live alternative of u as T and true, or the zero T and
// false when another alternative is live.
// Panics if T is not one of u's alternatives.
func Get[T any](u Union) (T, bool) {
	if !Is[T](u) {
		var zero T
		return zero, false
	}
	return UnsafeGet[T](u), true
}

// UnsafeGet returns the live alternative of u as T without checking the
// discriminant.
//
// Precondition: T is live, established by [Is] or a prior match.
// Violating the precondition panics with an unspecified message, or, when
// T is an interface implemented by the live alternative, returns that
// alternative.
func UnsafeGet[T any](u Union) T {
	v := u.Value()
	if t, ok := v.(T); ok {
		return t
	}
	if v != nil {
		panic("ftl: unsafe access of non-live alternative " + reflect.TypeFor[T]().String())
	}
	var zero T
	return zero
}
