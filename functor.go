// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl

import "github.com/samber/lo"

// Functor instances for Go collections.
//
// Maps have no Foldable or Monoid instance here: iteration order is
// unspecified, so folds with a non-commutative function would give
// different results for equal maps.

// MapValues maps f over the values of m into a new map with the same keys.
// m is not modified.
func MapValues[K comparable, V, U any](m map[K]V, f func(V) U) map[K]U {
	if m == nil {
		return nil
	}
	return lo.MapValues(m, func(v V, _ K) U {
		return f(v)
	})
}

// MapValuesInPlace rewrites every value of m with f and returns m.
// It is the no-copy form of [MapValues] for endofunctions on maps the
// caller no longer needs.
func MapValuesInPlace[K comparable, V any](m map[K]V, f func(V) V) map[K]V {
	for k, v := range m {
		m[k] = f(v)
	}
	return m
}

// MapSlice maps f over xs into a new slice.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	if xs == nil {
		return nil
	}
	return lo.Map(xs, func(x A, _ int) B {
		return f(x)
	})
}
