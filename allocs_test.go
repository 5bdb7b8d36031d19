// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ftl_test

import (
	"code.hybscloud.com/ftl"
	"testing"
)

func TestAllocationsPositional(t *testing.T) {
	s := ftl.NewSum2Arg2[int]("x")
	f1 := func(n int) int { return n }
	f2 := func(v string) int { return len(v) }

	allocs := testing.AllocsPerRun(100, func() {
		_ = ftl.Match2(s, f1, f2)
	})
	if allocs > 0 {
		t.Errorf("Match2 allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		s.Set2("y")
		_ = s.Is1()
		_, _ = s.Get2()
	})
	if allocs > 0 {
		t.Errorf("Set2/Is1/Get2 allocs = %v; want 0", allocs)
	}
}

// wide is large enough that boxing it into an interface allocates.
type wide struct{ words [32]int64 }

func TestAllocationsTrivialLifecycle(t *testing.T) {
	src := ftl.NewSum2Arg2[int](wide{words: [32]int64{1}})
	var dst ftl.Sum2[int, wide]
	if !dst.Trivial() {
		t.Fatal("Sum2[int, wide] should be trivial")
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = dst.Assign(&src)
		dst.Set1(1)
		dst.Set2(wide{})
		dst.Set2(wide{})
		_, _ = dst.Copy()
		dst.MoveFrom(&src)
		dst.Release()
	})
	if allocs > 0 {
		t.Errorf("trivial Assign/Set/Copy/MoveFrom/Release allocs = %v; want 0", allocs)
	}
}
