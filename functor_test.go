// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/ftl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	got := ftl.MapValues(m, strconv.Itoa)

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, m, "source map is unchanged")
	assert.Nil(t, ftl.MapValues(map[string]int(nil), strconv.Itoa))
	assert.Empty(t, ftl.MapValues(map[string]int{}, strconv.Itoa))
}

func TestMapValuesInPlace(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	got := ftl.MapValuesInPlace(m, func(n int) int { return n * 10 })

	assert.Equal(t, map[string]int{"a": 10, "b": 20}, m)
	got["c"] = 30
	assert.Len(t, m, 3, "the same map is returned")
}

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, ftl.MapSlice([]int{1, 2}, strconv.Itoa))
	assert.Nil(t, ftl.MapSlice([]int(nil), strconv.Itoa))
}

func TestSumEither(t *testing.T) {
	type result = ftl.Sum2[error, int]
	errEmpty := assert.AnError

	parse := func(s string) result {
		if s == "" {
			return ftl.NewSum2Arg1[error, int](errEmpty)
		}
		return ftl.NewSum2Arg2[error](len(s))
	}
	double := func(n int) int { return n * 2 }
	half := func(n int) result {
		if n%2 != 0 {
			return ftl.NewSum2Arg1[error, int](strconv.ErrRange)
		}
		return ftl.NewSum2Arg2[error](n / 2)
	}

	r := ftl.MapArg2(parse("abc"), double)
	require.True(t, r.Is2())
	assert.Equal(t, 6, r.UnsafeGet2())

	l := ftl.MapArg2(parse(""), double)
	require.True(t, l.Is1())
	assert.Equal(t, errEmpty, l.UnsafeGet1())

	assert.Equal(t, 2, ftl.BindArg2(parse("abcd"), half).UnsafeGet2())
	assert.Equal(t, strconv.ErrRange, ftl.BindArg2(parse("abc"), half).UnsafeGet1())
	assert.Equal(t, errEmpty, ftl.BindArg2(parse(""), half).UnsafeGet1())

	msg := ftl.MapArg1(parse(""), func(err error) string { return err.Error() })
	assert.Equal(t, errEmpty.Error(), msg.UnsafeGet1())
	assert.Equal(t, 3, ftl.MapArg1(parse("abc"), func(err error) string { return err.Error() }).UnsafeGet2())
}
