// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/traverse"
)

func TestTakeFoldBoundary(t *testing.T) {
	// Fold over Take(2, [1 2 3 4]) is 3 and the third element is
	// never drawn.
	c := counted(1, 2, 3, 4)
	got := traverse.Fold[int](traverse.Take[int](2, c), 0, func(acc, e int) int {
		return acc + e
	})
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if c.yields != 2 {
		t.Fatalf("yields = %d, want 2", c.yields)
	}
}

func TestTakeFindBeyondBoundAbsent(t *testing.T) {
	// The match sits just past the bound: absent, exactly 2 draws.
	c := counted(1, 2, 3, 4)
	_, ok := traverse.Find[int](traverse.Take[int](2, c), func(e int) bool { return e == 3 })
	if ok {
		t.Fatal("found element beyond the bound")
	}
	if c.yields != 2 {
		t.Fatalf("yields = %d, want 2", c.yields)
	}
}

func TestTakeZeroNeverTouchesSource(t *testing.T) {
	c := counted(1, 2, 3)
	p := traverse.Take[int](0, c)
	out := traverse.FoldWhile[int, int](p, 7, func(acc, e int) traverse.Signal[int] {
		t.Fatal("step called under zero bound")
		return traverse.Continue(acc)
	})
	if out.Halted() || out.Value() != 7 {
		t.Fatalf("got (%d, halted=%v), want (7, false)", out.Value(), out.Halted())
	}
	if _, ok := p.Next(); ok {
		t.Fatal("Next yielded under zero bound")
	}
	if c.polls != 0 {
		t.Fatalf("source polled %d times", c.polls)
	}
}

func TestTakeNegativeBound(t *testing.T) {
	c := counted(1, 2)
	got := traverse.Collect[int](traverse.Take[int](-3, c))
	if got != nil {
		t.Fatalf("got %v, want nil", got)
	}
	if c.polls != 0 {
		t.Fatalf("source polled %d times", c.polls)
	}
}

func TestTakeCallerStopStaysStop(t *testing.T) {
	// A stop requested by the caller's own step must not be reported
	// as the bound being reached.
	out := traverse.FoldWhile[int, int](traverse.Take[int](5, traverse.Of(1, 2, 3)), 0,
		func(acc, e int) traverse.Signal[int] {
			if e == 2 {
				return traverse.Stop(-1)
			}
			return traverse.Continue(acc + e)
		})
	if !out.Halted() {
		t.Fatal("caller stop reported as exhaustion")
	}
	if got := out.Value(); got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestTakeBoundStopIsExhaustion(t *testing.T) {
	// The bound being reached is exhaustion of the prefix, not a stop.
	out := traverse.FoldWhile[int, int](traverse.Take[int](2, traverse.Of(1, 2, 3, 4)), 0,
		func(acc, e int) traverse.Signal[int] {
			return traverse.Continue(acc + e)
		})
	if out.Halted() {
		t.Fatal("bound reported as caller stop")
	}
	if got := out.Value(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestTakeStopOnLastBoundedElement(t *testing.T) {
	// Caller stop and bound coincide on the same element: the caller's
	// stop wins, with its value.
	out := traverse.FoldWhile[int, int](traverse.Take[int](2, traverse.Of(1, 2, 3)), 0,
		func(acc, e int) traverse.Signal[int] {
			if e == 2 {
				return traverse.Stop(99)
			}
			return traverse.Continue(acc + e)
		})
	if !out.Halted() {
		t.Fatal("stop not reported")
	}
	if got := out.Value(); got != 99 {
		t.Fatalf("got %d, want 99", got)
	}
}

func TestTakeShorterSource(t *testing.T) {
	c := counted(1, 2)
	got := traverse.Fold[int](traverse.Take[int](10, c), 0, func(acc, e int) int {
		return acc + e
	})
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestTakeSourceNotRepolledAfterExhaustion(t *testing.T) {
	c := counted(1, 2)
	p := traverse.Take[int](10, c)
	traverse.Collect[int](p)
	polls := c.polls
	if _, ok := p.Next(); ok {
		t.Fatal("Next yielded after exhaustion")
	}
	traverse.Collect[int](p)
	if c.polls != polls {
		t.Fatalf("source polled %d more times after exhaustion", c.polls-polls)
	}
}

func TestTakeResumesAfterPartialPull(t *testing.T) {
	p := traverse.Take[int](3, traverse.Of(1, 2, 3, 4, 5))
	p.Next()
	got := traverse.Collect[int](p)
	if !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("got %v, want [2 3]", got)
	}
}

func TestTakeOfChain(t *testing.T) {
	// The bound gates a composite source and still stops mid-way
	// through its front part.
	front := counted(1, 2, 3)
	back := counted(4, 5)
	p := traverse.Take[int](2, traverse.Concat[int](front, back))
	got := traverse.Collect[int](p)
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
	if front.yields != 2 {
		t.Fatalf("front yields = %d, want 2", front.yields)
	}
	if back.polls != 0 {
		t.Fatalf("back polls = %d, want 0", back.polls)
	}
}
