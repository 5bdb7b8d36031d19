// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"code.hybscloud.com/ftl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type sample = ftl.Sum3[int, string, bool]

// isZero reports whether the live alternative of s holds its zero value.
func isZero(s sample) bool {
	return ftl.Match3(s,
		func(v int) bool { return v == 0 },
		func(v string) bool { return v == "" },
		func(v bool) bool { return !v },
	)
}

// UnionLifecycle checks the lifecycle contract of a trivial tagged union:
// one live alternative, typed access, copy and assignment round trips,
// move semantics and equality.
func UnionLifecycle(params *gopter.TestParameters) *gopter.Properties {
	properties := gopter.NewProperties(params)
	g := GenSum3[int, string, bool](gen.Int(), gen.AlphaString(), gen.Bool())

	properties.Property("exactly one alternative is live", prop.ForAll(func(s sample) bool {
		live := 0
		for _, ok := range []bool{ftl.Is[int](s), ftl.Is[string](s), ftl.Is[bool](s)} {
			if ok {
				live++
			}
		}
		return live == 1
	}, g))

	properties.Property("typed access returns the stored value", prop.ForAll(func(s sample) bool {
		return ftl.Match3(s,
			func(v int) bool { return ftl.UnsafeGet[int](s) == v },
			func(v string) bool { return ftl.UnsafeGet[string](s) == v },
			func(v bool) bool { return ftl.UnsafeGet[bool](s) == v },
		)
	}, g))

	properties.Property("assign round trip", prop.ForAll(func(dst, src sample) bool {
		if err := dst.Assign(&src); err != nil {
			return false
		}
		return dst == src && dst.Index() == src.Index()
	}, g, g))

	properties.Property("copy is equal", prop.ForAll(func(s sample) bool {
		c, err := s.Copy()
		return err == nil && c.Equal(s) && c == s
	}, g))

	properties.Property("move transfers and resets source", prop.ForAll(func(dst, src sample) bool {
		want := src
		dst.MoveFrom(&src)
		return dst == want && src.Index() == want.Index() && isZero(src)
	}, g, g))

	properties.Property("equality is reflexive and symmetric", prop.ForAll(func(a, b sample) bool {
		return a.Equal(a) && a.Equal(b) == b.Equal(a) && a.Equal(b) == (a == b)
	}, g, g))

	properties.Property("set then get", prop.ForAll(func(s sample, v string) bool {
		s.Set2(v)
		got, ok := s.Get2()
		return ok && got == v && s.Is2()
	}, g, gen.AlphaString()))

	return properties
}
