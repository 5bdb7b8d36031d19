// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ftl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource = ftl.Sum2[int, tracked]

func TestBracketReleases(t *testing.T) {
	c := &counters{}
	got, err := ftl.Bracket(
		func() (resource, error) { return ftl.NewSum2Arg2[int](tracked{c: c, v: 3}), nil },
		func(r *resource) (int, error) { return r.UnsafeGet2().v, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 1, c.releases)
}

func TestBracketReleasesOnError(t *testing.T) {
	c := &counters{}
	errUse := errors.New("use failed")
	_, err := ftl.Bracket(
		func() (resource, error) { return ftl.NewSum2Arg2[int](tracked{c: c}), nil },
		func(*resource) (int, error) { return 0, errUse },
	)
	assert.ErrorIs(t, err, errUse)
	assert.Equal(t, 1, c.releases)
}

func TestBracketReleasesOnPanic(t *testing.T) {
	c := &counters{}
	assert.Panics(t, func() {
		_, _ = ftl.Bracket(
			func() (resource, error) { return ftl.NewSum2Arg2[int](tracked{c: c}), nil },
			func(*resource) (int, error) { panic("boom") },
		)
	})
	assert.Equal(t, 1, c.releases)
}

func TestBracketAcquireFails(t *testing.T) {
	called := false
	_, err := ftl.Bracket(
		func() (resource, error) { return resource{}, errCopy },
		func(*resource) (int, error) { called = true; return 0, nil },
	)
	assert.Equal(t, errCopy, err)
	assert.False(t, called)
}

func TestOnError(t *testing.T) {
	c := &counters{}
	r := ftl.NewSum2Arg2[int](tracked{c: c, v: 1})

	_, err := ftl.OnError(&r, func(r *resource) (int, error) { return r.UnsafeGet2().v, nil })
	require.NoError(t, err)
	assert.Equal(t, 0, c.releases, "success keeps ownership")
	assert.True(t, r.Is2())

	_, err = ftl.OnError(&r, func(*resource) (int, error) { return 0, errCopy })
	assert.Equal(t, errCopy, err)
	assert.Equal(t, 1, c.releases)
	assert.Equal(t, resource{}, r)
}
