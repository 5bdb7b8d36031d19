// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/ftl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeBasics(t *testing.T) {
	var zero ftl.Maybe[int]
	assert.True(t, zero.IsNothing())
	assert.Equal(t, ftl.None[int](), zero)

	m := ftl.Just(3)
	assert.True(t, m.IsValue())
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, m.Must())
	assert.Equal(t, 3, m.OrElse(9))
	assert.Equal(t, 9, zero.OrElse(9))
	assert.Equal(t, "Just(3)", m.String())
	assert.Equal(t, "Nothing", zero.String())
}

func TestMaybeMustNothing(t *testing.T) {
	assert.PanicsWithValue(t, "ftl: attempting to read the value of Nothing", func() {
		ftl.None[string]().Must()
	})
}

func TestMaybeOrElseFuncLazy(t *testing.T) {
	called := false
	fallback := func() int { called = true; return 0 }

	assert.Equal(t, 1, ftl.Just(1).OrElseFunc(fallback))
	assert.False(t, called)
	assert.Equal(t, 0, ftl.None[int]().OrElseFunc(fallback))
	assert.True(t, called)
}

func TestMaybePointers(t *testing.T) {
	n := 5
	m := ftl.FromPtr(&n)
	assert.Equal(t, ftl.Just(5), m)
	assert.True(t, ftl.FromPtr[int](nil).IsNothing())

	p := m.Ptr()
	*p = 6
	assert.Equal(t, 5, m.Must(), "Ptr points to a copy")
	assert.Nil(t, ftl.None[int]().Ptr())
}

func TestMaybeEquality(t *testing.T) {
	assert.True(t, ftl.Just("a").Equal(ftl.Just("a")))
	assert.False(t, ftl.Just("a").Equal(ftl.Just("b")))
	assert.False(t, ftl.Just("").Equal(ftl.None[string]()), "Just of zero is not Nothing")
	assert.True(t, ftl.EqualMaybe(ftl.None[string](), ftl.None[string]()))
}

func TestCompareMaybe(t *testing.T) {
	xs := []ftl.Maybe[int]{ftl.Just(3), ftl.None[int](), ftl.Just(-1), ftl.Just(2)}
	slices.SortFunc(xs, ftl.CompareMaybe[int])
	assert.Equal(t, []ftl.Maybe[int]{ftl.None[int](), ftl.Just(-1), ftl.Just(2), ftl.Just(3)}, xs)
	assert.Zero(t, ftl.CompareMaybe(ftl.None[int](), ftl.None[int]()))
}

func TestMatchMaybe(t *testing.T) {
	describe := func(m ftl.Maybe[int]) string {
		return ftl.MatchMaybe(m,
			func() string { return "nothing" },
			strconv.Itoa,
		)
	}
	assert.Equal(t, "nothing", describe(ftl.None[int]()))
	assert.Equal(t, "42", describe(ftl.Just(42)))
}

func TestMaybeUnion(t *testing.T) {
	u := ftl.Just("x").Union()
	assert.True(t, ftl.Is[string](u))
	assert.False(t, ftl.Is[ftl.Nothing](u))
}

func TestMaybeMonad(t *testing.T) {
	parse := func(s string) ftl.Maybe[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ftl.None[int]()
		}
		return ftl.Just(n)
	}

	assert.Equal(t, ftl.Just(12), ftl.BindMaybe(ftl.Just("12"), parse))
	assert.True(t, ftl.BindMaybe(ftl.Just("x"), parse).IsNothing())
	assert.True(t, ftl.BindMaybe(ftl.None[string](), func(string) ftl.Maybe[int] {
		t.Fatal("bind on Nothing must not call f")
		return ftl.None[int]()
	}).IsNothing())

	assert.Equal(t, ftl.Just("3"), ftl.MapMaybe(ftl.Just(3), strconv.Itoa))
	assert.Equal(t, ftl.None[string](), ftl.MapMaybe(ftl.None[int](), strconv.Itoa))

	assert.Equal(t, ftl.Just("b"), ftl.ThenMaybe(ftl.Just(1), ftl.Just("b")))
	assert.True(t, ftl.ThenMaybe(ftl.None[int](), ftl.Just("b")).IsNothing())

	assert.Equal(t, ftl.Just(1), ftl.FlattenMaybe(ftl.Just(ftl.Just(1))))
	assert.True(t, ftl.FlattenMaybe(ftl.Just(ftl.None[int]())).IsNothing())
	assert.True(t, ftl.FlattenMaybe(ftl.None[ftl.Maybe[int]]()).IsNothing())
}

type counter struct{ n int }

func (c *counter) incr() { c.n++ }

func TestModifyMaybe(t *testing.T) {
	m := ftl.Just(counter{n: 1})
	ftl.ModifyMaybe(&m, (*counter).incr)
	assert.Equal(t, 2, m.Must().n)

	none := ftl.None[counter]()
	assert.Same(t, &none, ftl.ModifyMaybe(&none, (*counter).incr))
	assert.True(t, none.IsNothing())
}

func TestMaybeLifecycle(t *testing.T) {
	assert.True(t, ftl.Maybe[int]{}.Trivial())
	assert.False(t, ftl.Maybe[tracked]{}.Trivial())
	assert.False(t, ftl.Sum2[int, ftl.Maybe[tracked]]{}.Trivial())

	c := &counters{}
	m := ftl.Just(tracked{c: c, v: 1})
	cp, err := m.Copy()
	require.NoError(t, err)
	assert.Equal(t, 1, c.copies)
	assert.Equal(t, 1, cp.Must().v)

	var dst ftl.Maybe[tracked]
	require.NoError(t, dst.Assign(&m))
	assert.Equal(t, 2, c.copies)

	dst.Release()
	assert.Equal(t, 1, c.releases)
	assert.True(t, dst.IsNothing())
}

func TestMaybeNestedRelease(t *testing.T) {
	c := &counters{}
	s := ftl.NewSum2Arg2[int](ftl.Just(tracked{c: c}))
	s.Set1(0)
	assert.Equal(t, 1, c.releases)

	_, err := ftl.Bracket(
		func() (ftl.Maybe[tracked], error) { return ftl.Just(tracked{c: c}), nil },
		func(m *ftl.Maybe[tracked]) (bool, error) { return m.IsValue(), nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 2, c.releases)
}
