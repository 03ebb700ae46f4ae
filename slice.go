// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// SliceSeq is a double-ended sequence over a slice. The head and tail
// cursors converge; the sequence is exhausted when they meet.
//
// SliceSeq supplies specialized kernels in both directions, so every
// derived operation on it — including through Concat and Reverse
// wrappers — runs as a plain indexed loop instead of per-element
// Next calls.
type SliceSeq[E any] struct {
	elems []E
	head  int // next front index
	tail  int // one past next back index
}

// FromSlice returns a sequence over elems. The slice is not copied;
// the sequence reads it in place.
func FromSlice[E any](elems []E) *SliceSeq[E] {
	return &SliceSeq[E]{elems: elems, tail: len(elems)}
}

// Of returns a sequence over the given elements.
func Of[E any](elems ...E) *SliceSeq[E] {
	return FromSlice(elems)
}

// Len returns the number of elements not yet yielded from either end.
func (s *SliceSeq[E]) Len() int {
	return s.tail - s.head
}

// Next yields the next element from the front.
func (s *SliceSeq[E]) Next() (E, bool) {
	if s.head >= s.tail {
		var zero E
		return zero, false
	}
	e := s.elems[s.head]
	s.head++
	return e, true
}

// NextBack yields the next element from the back.
func (s *SliceSeq[E]) NextBack() (E, bool) {
	if s.head >= s.tail {
		var zero E
		return zero, false
	}
	s.tail--
	return s.elems[s.tail], true
}

// FoldWhile implements [Folder] over the remaining window, advancing
// the head cursor as it goes so a stopped traversal can be resumed.
func (s *SliceSeq[E]) FoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	for s.head < s.tail {
		e := s.elems[s.head]
		s.head++
		out := step(acc, e)
		if out.halted {
			return out
		}
		acc = out.value
	}
	return Continue(acc)
}

// RFoldWhile implements [RFolder] over the remaining window,
// retreating the tail cursor.
func (s *SliceSeq[E]) RFoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	for s.head < s.tail {
		s.tail--
		out := step(acc, s.elems[s.tail])
		if out.halted {
			return out
		}
		acc = out.value
	}
	return Continue(acc)
}
