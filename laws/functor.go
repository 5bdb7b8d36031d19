// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"maps"

	"code.hybscloud.com/ftl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// MaybeFunctor checks the functor laws of MapMaybe with the functions f and h.
func MaybeFunctor[A comparable](params *gopter.TestParameters, g gopter.Gen, f, h func(A) A) *gopter.Properties {
	properties := gopter.NewProperties(params)
	gm := GenMaybe[A](g)

	properties.Property("identity", prop.ForAll(func(m ftl.Maybe[A]) bool {
		return ftl.MapMaybe(m, func(a A) A { return a }) == m
	}, gm))

	properties.Property("composition", prop.ForAll(func(m ftl.Maybe[A]) bool {
		composed := ftl.MapMaybe(m, func(a A) A { return h(f(a)) })
		return composed == ftl.MapMaybe(ftl.MapMaybe(m, f), h)
	}, gm))

	return properties
}

// MaybeMonad checks the monad laws of BindMaybe with the functions f and h.
func MaybeMonad[A comparable](params *gopter.TestParameters, g gopter.Gen, f, h func(A) ftl.Maybe[A]) *gopter.Properties {
	properties := gopter.NewProperties(params)
	gm := GenMaybe[A](g)

	properties.Property("left identity", prop.ForAll(func(a A) bool {
		return ftl.BindMaybe(ftl.Just(a), f) == f(a)
	}, g))

	properties.Property("right identity", prop.ForAll(func(m ftl.Maybe[A]) bool {
		return ftl.BindMaybe(m, ftl.Just[A]) == m
	}, gm))

	properties.Property("associativity", prop.ForAll(func(m ftl.Maybe[A]) bool {
		left := ftl.BindMaybe(ftl.BindMaybe(m, f), h)
		right := ftl.BindMaybe(m, func(a A) ftl.Maybe[A] {
			return ftl.BindMaybe(f(a), h)
		})
		return left == right
	}, gm))

	return properties
}

// SumFunctor checks the functor laws of MapArg2 on right-biased Sum2 values.
func SumFunctor[E, A comparable](params *gopter.TestParameters, ge, ga gopter.Gen, f, h func(A) A) *gopter.Properties {
	properties := gopter.NewProperties(params)
	gs := GenSum2[E, A](ge, ga)

	properties.Property("identity", prop.ForAll(func(s ftl.Sum2[E, A]) bool {
		return ftl.MapArg2(s, func(a A) A { return a }) == s
	}, gs))

	properties.Property("composition", prop.ForAll(func(s ftl.Sum2[E, A]) bool {
		composed := ftl.MapArg2(s, func(a A) A { return h(f(a)) })
		return composed == ftl.MapArg2(ftl.MapArg2(s, f), h)
	}, gs))

	return properties
}

// MapFunctor checks the functor laws of MapValues and that MapValuesInPlace
// agrees with it.
func MapFunctor[K, V comparable](params *gopter.TestParameters, g gopter.Gen, f, h func(V) V) *gopter.Properties {
	properties := gopter.NewProperties(params)

	properties.Property("identity", prop.ForAll(func(m map[K]V) bool {
		return maps.Equal(ftl.MapValues(m, func(v V) V { return v }), m)
	}, g))

	properties.Property("composition", prop.ForAll(func(m map[K]V) bool {
		composed := ftl.MapValues(m, func(v V) V { return h(f(v)) })
		return maps.Equal(composed, ftl.MapValues(ftl.MapValues(m, f), h))
	}, g))

	properties.Property("in place agrees", prop.ForAll(func(m map[K]V) bool {
		want := ftl.MapValues(m, f)
		return maps.Equal(ftl.MapValuesInPlace(maps.Clone(m), f), want)
	}, g))

	return properties
}
