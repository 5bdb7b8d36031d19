// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"code.hybscloud.com/ftl"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// Monoid checks identity and associativity of m on values drawn from g.
// eq decides equality of T; nil params selects gopter's defaults.
func Monoid[T any](params *gopter.TestParameters, m ftl.Monoid[T], g gopter.Gen, eq func(a, b T) bool) *gopter.Properties {
	properties := gopter.NewProperties(params)

	properties.Property("left identity", prop.ForAll(func(a T) bool {
		return eq(m.Append(m.Empty(), a), a)
	}, g))

	properties.Property("right identity", prop.ForAll(func(a T) bool {
		return eq(m.Append(a, m.Empty()), a)
	}, g))

	properties.Property("associativity", prop.ForAll(func(a, b, c T) bool {
		return eq(m.Append(m.Append(a, b), c), m.Append(a, m.Append(b, c)))
	}, g, g, g))

	properties.Property("concat folds from the left", prop.ForAll(func(a, b, c T) bool {
		return eq(ftl.Concat(m, a, b, c), m.Append(m.Append(a, b), c))
	}, g, g, g))

	return properties
}
