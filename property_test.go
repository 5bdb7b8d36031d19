// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"testing"

	"code.hybscloud.com/ftl"
	"code.hybscloud.com/ftl/laws"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPropertyTagConstruction(t *testing.T) {
	properties := gopter.NewProperties(laws.Parameters(42, 0))

	properties.Property("tag and positional construction agree", prop.ForAll(func(n int, s string) bool {
		a := ftl.NewSum3[int, string, bool](ftl.Type[int](), n)
		b := ftl.NewSum3[int, string, bool](ftl.Type[string](), s)
		return a == ftl.NewSum3Arg1[int, string, bool](n) &&
			b == ftl.NewSum3Arg2[int, string, bool](s)
	}, gen.Int(), gen.AlphaString()))

	properties.Property("typed get after set", prop.ForAll(func(s ftl.Sum3[int, string, bool], v bool) bool {
		s.Set3(v)
		got, ok := ftl.Get[bool](s)
		return ok && got == v && !ftl.Is[int](s)
	}, laws.GenSum3[int, string, bool](gen.Int(), gen.AlphaString(), gen.Bool()), gen.Bool()))

	properties.TestingRun(t)
}

func TestPropertyMaybeInterop(t *testing.T) {
	properties := gopter.NewProperties(laws.Parameters(42, 0))

	properties.Property("option round trip", prop.ForAll(func(m ftl.Maybe[int]) bool {
		return ftl.FromOption(ftl.ToOption(m)) == m
	}, laws.GenMaybe[int](gen.Int())))

	properties.Property("either round trip", prop.ForAll(func(s ftl.Sum2[string, int]) bool {
		return ftl.FromEither(ftl.ToEither(s)) == s
	}, laws.GenSum2[string, int](gen.AlphaString(), gen.Int())))

	properties.Property("compare is antisymmetric", prop.ForAll(func(a, b ftl.Maybe[int]) bool {
		return ftl.CompareMaybe(a, b) == -ftl.CompareMaybe(b, a)
	}, laws.GenMaybe[int](gen.Int()), laws.GenMaybe[int](gen.Int())))

	properties.TestingRun(t)
}

func TestPropertyMatchAgreesWithPositional(t *testing.T) {
	properties := gopter.NewProperties(laws.Parameters(42, 0))
	m := ftl.MustMatcher[ftl.Sum3[int, string, bool], int](
		ftl.On(func(string) int { return 1 }),
		ftl.On(func(bool) int { return 2 }),
		ftl.On(func(int) int { return 0 }),
	)

	properties.Property("case set and positional match pick the same handler", prop.ForAll(func(s ftl.Sum3[int, string, bool]) bool {
		return m.Match(s) == s.Index()
	}, laws.GenSum3[int, string, bool](gen.Int(), gen.AlphaString(), gen.Bool())))

	properties.TestingRun(t)
}
