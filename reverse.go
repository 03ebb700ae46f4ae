// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Reversed is a back-to-front view of a reversible sequence. It holds
// no traversal logic of its own: every call is remapped to the
// opposite-direction machinery of the source, so a kernel written once
// for the source accelerates both orientations.
type Reversed[E any] struct {
	src Reversible[E]
}

// Reverse returns a view of s that yields its elements back-to-front.
// Reversing a reversed view returns the original source.
func Reverse[E any](s Reversible[E]) Reversible[E] {
	if r, ok := s.(*Reversed[E]); ok {
		return r.src
	}
	return &Reversed[E]{src: s}
}

// Next draws from the back of the source.
func (r *Reversed[E]) Next() (E, bool) {
	return r.src.NextBack()
}

// NextBack draws from the front of the source.
func (r *Reversed[E]) NextBack() (E, bool) {
	return r.src.Next()
}

// FoldWhile implements [Folder] as the source's backward traversal,
// dispatched through rfoldErased so a specialized backward kernel on
// the source is reached.
func (r *Reversed[E]) FoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	return rfoldErased[E](r.src, acc, step)
}

// RFoldWhile implements [RFolder] as the source's forward traversal.
func (r *Reversed[E]) RFoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	return foldErased[E](r.src, acc, step)
}
