// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"math"
	"testing"

	"code.hybscloud.com/ftl"
	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert.Equal(t, 10, ftl.Concat[int](ftl.AddMonoid[int]{}, 1, 2, 3, 4))
	assert.Equal(t, 24, ftl.Concat[int](ftl.MulMonoid[int]{}, 1, 2, 3, 4))
	assert.Equal(t, 1, ftl.Concat[int](ftl.MulMonoid[int]{}))
	assert.Equal(t, "abc", ftl.Concat[string](ftl.StringMonoid{}, "a", "b", "c"))
	assert.Equal(t, 1.5, ftl.Concat[float64](ftl.AddMonoid[float64]{}, 1, 0.5))
}

func TestFoldMap(t *testing.T) {
	words := []string{"go", "ftl", ""}
	total := ftl.FoldMap(ftl.Monoid[int](ftl.AddMonoid[int]{}), words, func(s string) int { return len(s) })
	assert.Equal(t, 5, total)

	assert.Equal(t, 0, ftl.FoldMap(ftl.Monoid[int](ftl.AddMonoid[int]{}), nil, func(s string) int { return len(s) }))
}

func TestSliceMonoid(t *testing.T) {
	var m ftl.SliceMonoid[int]
	a := make([]int, 1, 8)
	a[0] = 1
	b := []int{2, 3}

	got := m.Append(a, b)
	assert.Equal(t, []int{1, 2, 3}, got)
	got[0] = 9
	assert.Equal(t, 1, a[0], "Append does not alias its arguments")
	assert.Nil(t, m.Append(nil, nil))
	assert.Equal(t, []int{1, 2, 3}, ftl.Concat[[]int](m, []int{1}, nil, []int{2, 3}))
}

func TestMaybeMonoid(t *testing.T) {
	m := ftl.MaybeMonoid[string]{Inner: ftl.StringMonoid{}}

	assert.Equal(t, ftl.Just("ab"), m.Append(ftl.Just("a"), ftl.Just("b")))
	assert.Equal(t, ftl.Just("a"), m.Append(ftl.Just("a"), ftl.None[string]()))
	assert.Equal(t, ftl.Just("b"), m.Append(ftl.None[string](), ftl.Just("b")))
	assert.True(t, m.Append(ftl.None[string](), ftl.None[string]()).IsNothing())
	assert.Equal(t, ftl.Just("abc"), ftl.Concat[ftl.Maybe[string]](m, ftl.Just("a"), ftl.None[string](), ftl.Just("bc")))
}

func TestFirstLastMonoid(t *testing.T) {
	xs := []ftl.Maybe[int]{ftl.None[int](), ftl.Just(1), ftl.None[int](), ftl.Just(2), ftl.None[int]()}

	assert.Equal(t, ftl.Just(1), ftl.Concat[ftl.Maybe[int]](ftl.FirstMonoid[int]{}, xs...))
	assert.Equal(t, ftl.Just(2), ftl.Concat[ftl.Maybe[int]](ftl.LastMonoid[int]{}, xs...))
	assert.True(t, ftl.Concat[ftl.Maybe[int]](ftl.FirstMonoid[int]{}).IsNothing())
}

func TestMonoidFunc(t *testing.T) {
	maxInt := ftl.MonoidFunc[int]{Identity: math.MinInt, Op: func(a, b int) int { return max(a, b) }}
	assert.Equal(t, 7, ftl.Concat[int](maxInt, 3, 7, -2))
	assert.Equal(t, math.MinInt, ftl.Concat[int](maxInt))
}
