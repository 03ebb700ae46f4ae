// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse_test

import (
	"code.hybscloud.com/traverse"
)

// pullOnly hides everything but the pull primitives, forcing the
// default kernels even when the wrapped sequence has specialized ones.
type pullOnly[E any] struct {
	src traverse.Reversible[E]
}

func pulls[E any](elems ...E) *pullOnly[E] {
	return &pullOnly[E]{src: traverse.Of(elems...)}
}

func (p *pullOnly[E]) Next() (E, bool)     { return p.src.Next() }
func (p *pullOnly[E]) NextBack() (E, bool) { return p.src.NextBack() }

// counting instruments the pull primitives: polls counts primitive
// calls, yields counts elements actually produced, and log records the
// produced elements in draw order. It supplies no kernel, so all
// traversal over it runs the default pull loops.
type counting[E any] struct {
	src    traverse.Reversible[E]
	polls  int
	yields int
	log    []E
}

func counted[E any](elems ...E) *counting[E] {
	return &counting[E]{src: traverse.Of(elems...)}
}

func (c *counting[E]) Next() (E, bool) {
	c.polls++
	e, ok := c.src.Next()
	if ok {
		c.yields++
		c.log = append(c.log, e)
	}
	return e, ok
}

func (c *counting[E]) NextBack() (E, bool) {
	c.polls++
	e, ok := c.src.NextBack()
	if ok {
		c.yields++
		c.log = append(c.log, e)
	}
	return e, ok
}

// forwardOnly exposes just Next, for exercising the backward-capability
// panics.
type forwardOnly[E any] struct {
	src traverse.Sequence[E]
}

func (f *forwardOnly[E]) Next() (E, bool) { return f.src.Next() }
