// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import (
	"reflect"
	"slices"
)

// Order-independent visitation.
//
// The positional matchers (Match2, Match3, Match4) are exhaustive by
// construction: the compiler rejects a missing handler or a handler of the
// wrong type. The case-set matchers below trade that for handlers listed in
// any order, handlers typed by an interface the alternatives implement, and
// an opt-in fallback. Case sets are validated against the alternatives:
// every alternative must be covered by exactly one case, or by the fallback.

// Case is a single handler in a case set.
// Construct cases with [On] and [Else].
type Case[R any] struct {
	param reflect.Type // nil marks the fallback
	call  func(any) R
}

// On creates a case handling every alternative assignable to T.
// T is either an alternative type or an interface implemented by one or
// more alternatives.
func On[T, R any](f func(T) R) Case[R] {
	return Case[R]{
		param: reflect.TypeFor[T](),
		call: func(v any) R {
			t, _ := v.(T)
			return f(t)
		},
	}
}

// Else creates the fallback case covering every alternative not handled by
// another case. It must be the last case of its set.
func Else[R any](f func(Otherwise) R) Case[R] {
	return Case[R]{
		call: func(any) R { return f(Otherwise{}) },
	}
}

// covers reports whether a case with parameter type param accepts alt.
func covers(param, alt reflect.Type) bool {
	if param == alt {
		return true
	}
	return param.Kind() == reflect.Interface && alt.Implements(param)
}

// plan maps each alternative position to the index of the case handling it.
func plan[R any](alts []reflect.Type, cases []Case[R]) ([]int, error) {
	table := make([]int, len(alts))
	for i := range table {
		table[i] = -1
	}
	fallback := -1
	for ci, c := range cases {
		if c.param == nil {
			if ci != len(cases)-1 {
				return nil, &MatchError{Err: ErrFallbackPosition}
			}
			fallback = ci
			continue
		}
		used := false
		for ai, alt := range alts {
			if !covers(c.param, alt) {
				continue
			}
			if table[ai] >= 0 {
				return nil, &MatchError{Type: alt, Err: ErrDuplicateCase}
			}
			table[ai] = ci
			used = true
		}
		if !used {
			return nil, &MatchError{Type: c.param, Err: ErrUnusedCase}
		}
	}
	for ai, alt := range alts {
		if table[ai] >= 0 {
			continue
		}
		if fallback < 0 {
			return nil, &MatchError{Type: alt, Err: ErrNonExhaustive}
		}
		table[ai] = fallback
	}
	return table, nil
}

// Match dispatches the live alternative of u to the single case covering it.
// Panics with a [*MatchError] if the case set is invalid for u.
//
// Example:
//
//	r := ftl.Match(s,
//		ftl.On(func(a A) int { return 0 }),
//		ftl.Else(func(ftl.Otherwise) int { return 1 }),
//	)
func Match[R any](u Union, cases ...Case[R]) R {
	table, err := plan(u.Alternatives(), cases)
	if err != nil {
		panic(err)
	}
	return cases[table[u.Index()]].call(u.Value())
}

// Matcher is a case set validated once against the alternatives of U.
// Use it on hot paths instead of revalidating with [Match] on every call.
type Matcher[U Union, R any] struct {
	cases []Case[R]
	table []int
}

// NewMatcher validates cases against the alternatives of U.
// U must be a SumN value type; pointer and interface types are rejected
// with [ErrNotUnionValue]. Returns a [*MatchError] on invalid sets.
func NewMatcher[U Union, R any](cases ...Case[R]) (*Matcher[U, R], error) {
	if t := reflect.TypeFor[U](); t.Kind() != reflect.Struct {
		return nil, &MatchError{Type: t, Err: ErrNotUnionValue}
	}
	var zero U
	table, err := plan(zero.Alternatives(), cases)
	if err != nil {
		return nil, err
	}
	return &Matcher[U, R]{cases: slices.Clone(cases), table: table}, nil
}

// MustMatcher is like [NewMatcher] but panics on an invalid case set.
func MustMatcher[U Union, R any](cases ...Case[R]) *Matcher[U, R] {
	m, err := NewMatcher[U, R](cases...)
	if err != nil {
		panic(err)
	}
	return m
}

// Match dispatches the live alternative of u. Exactly one case runs.
func (m *Matcher[U, R]) Match(u U) R {
	return m.cases[m.table[u.Index()]].call(u.Value())
}
