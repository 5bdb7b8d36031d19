// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"code.hybscloud.com/ftl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// GenMaybe generates Maybe values, Nothing or Just of a value drawn from g.
// g must generate values of type A.
func GenMaybe[A any](g gopter.Gen) gopter.Gen {
	return gopter.CombineGens(gen.Bool(), g).Map(func(vs []interface{}) ftl.Maybe[A] {
		if !vs[0].(bool) {
			return ftl.None[A]()
		}
		return ftl.Just(vs[1].(A))
	})
}

// GenSum2 generates Sum2 values with either alternative live.
func GenSum2[A, B any](ga, gb gopter.Gen) gopter.Gen {
	return gopter.CombineGens(gen.IntRange(0, 1), ga, gb).Map(func(vs []interface{}) ftl.Sum2[A, B] {
		if vs[0].(int) == 1 {
			return ftl.NewSum2Arg2[A](vs[2].(B))
		}
		return ftl.NewSum2Arg1[A, B](vs[1].(A))
	})
}

// GenSum3 generates Sum3 values with any alternative live.
func GenSum3[A, B, C any](ga, gb, gc gopter.Gen) gopter.Gen {
	return gopter.CombineGens(gen.IntRange(0, 2), ga, gb, gc).Map(func(vs []interface{}) ftl.Sum3[A, B, C] {
		switch vs[0].(int) {
		case 1:
			return ftl.NewSum3Arg2[A, B, C](vs[2].(B))
		case 2:
			return ftl.NewSum3Arg3[A, B](vs[3].(C))
		}
		return ftl.NewSum3Arg1[A, B, C](vs[1].(A))
	})
}
