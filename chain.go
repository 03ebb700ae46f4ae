// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// chainDraw records which sides of a concatenation may still be drawn
// from. A side exhausted during traversal is marked and never polled
// again; the marker is checked on every primitive call and every
// kernel entry, never assumed, since a single kernel invocation may
// itself exhaust a side mid-call.
type chainDraw uint8

const (
	drawBoth      chainDraw = iota // neither side known exhausted
	drawBackOnly                   // front exhausted
	drawFrontOnly                  // back exhausted
)

// Chain is the concatenation of two sequences: all elements of the
// front part, then all elements of the back part.
type Chain[E any] struct {
	front Sequence[E]
	back  Sequence[E]
	draw  chainDraw
}

// Concat concatenates front and back.
//
// Forward traversal needs only the forward primitive on both parts.
// Backward traversal additionally requires both parts to be
// [Reversible]; NextBack on a chain with a forward-only part panics.
func Concat[E any](front, back Sequence[E]) *Chain[E] {
	return &Chain[E]{front: front, back: back}
}

// Next draws from the front part until it is exhausted, then from the
// back part.
func (c *Chain[E]) Next() (E, bool) {
	if c.draw != drawBackOnly {
		if e, ok := c.front.Next(); ok {
			return e, true
		}
		if c.draw == drawFrontOnly {
			var zero E
			return zero, false
		}
		c.draw = drawBackOnly
	}
	return c.back.Next()
}

// NextBack draws from the back part until it is exhausted, then from
// the front part.
func (c *Chain[E]) NextBack() (E, bool) {
	if c.draw != drawFrontOnly {
		if e, ok := reversible(c.back).NextBack(); ok {
			return e, true
		}
		if c.draw == drawBackOnly {
			var zero E
			return zero, false
		}
		c.draw = drawFrontOnly
	}
	return reversible(c.front).NextBack()
}

// FoldWhile implements [Folder] by unrolling the concatenation: run
// the front part's kernel, propagate its Stop untouched without ever
// touching the back part, otherwise feed its final accumulator to the
// back part's kernel. Each part is dispatched through foldErased, so
// a specialized kernel on either part — or on a nested chain — is
// still reached.
func (c *Chain[E]) FoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	if c.draw != drawBackOnly {
		out := foldErased(c.front, acc, step)
		if out.halted {
			return out
		}
		if c.draw == drawFrontOnly {
			return out
		}
		acc = out.value
		c.draw = drawBackOnly
	}
	return foldErased(c.back, acc, step)
}

// RFoldWhile implements [RFolder]: the back part's backward kernel
// first, then the front part's.
func (c *Chain[E]) RFoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	if c.draw != drawFrontOnly {
		out := rfoldErased(c.back, acc, step)
		if out.halted {
			return out
		}
		if c.draw == drawBackOnly {
			return out
		}
		acc = out.value
		c.draw = drawFrontOnly
	}
	return rfoldErased(c.front, acc, step)
}
