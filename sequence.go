// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Sequence is the pull-based forward primitive: any source of elements
// that can produce them one at a time from the front.
//
// Next returns the next element and true, or the zero value and false
// once the sequence is exhausted. Behavior of further Next calls after
// exhaustion is the sequence's own business; the kernels in this
// package never issue one.
type Sequence[E any] interface {
	Next() (E, bool)
}

// Reversible is a sequence that can also produce elements from the
// back. Front and back cursors converge: an element yielded by one end
// is never yielded again by the other.
type Reversible[E any] interface {
	Sequence[E]
	NextBack() (E, bool)
}

// Erased is the type-erased accumulator used at the kernel boundary.
// Go methods cannot introduce type parameters, so the override point
// is declared over Erased and the typed entry points in fold.go carry
// the accumulator type across the boundary.
type Erased = any

// Folder is the optional forward kernel capability. A sequence that
// implements it supplies its own traversal loop, and every forward
// derived operation (Fold, All, Any, Find, Position, ...) automatically
// routes through it instead of the default pull loop.
//
// Contract: apply step to each remaining element front-to-back,
// threading the accumulator through Continue values; return the first
// Stop unchanged without consuming further elements; return
// Continue(acc) when the sequence is exhausted.
type Folder[E any] interface {
	FoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased]
}

// RFolder is the backward counterpart of Folder, traversing
// back-to-front. The same contract applies with the draw direction
// reversed.
type RFolder[E any] interface {
	RFoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased]
}

// foldErased is the single forward dispatch point: specialized kernel
// if the dynamic type provides one, default pull loop otherwise.
// Composite adaptors recurse through it, so an override anywhere in a
// wrapper stack is reached no matter how deeply it is buried.
func foldErased[E any](s Sequence[E], acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	if f, ok := s.(Folder[E]); ok {
		return f.FoldWhile(acc, step)
	}
	for {
		e, ok := s.Next()
		if !ok {
			return Continue(acc)
		}
		out := step(acc, e)
		if out.halted {
			return out
		}
		acc = out.value
	}
}

// rfoldErased is the backward dispatch point. A specialized backward
// kernel wins; otherwise the sequence must expose the backward pull
// primitive for the default loop.
func rfoldErased[E any](s Sequence[E], acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	if f, ok := s.(RFolder[E]); ok {
		return f.RFoldWhile(acc, step)
	}
	r := reversible(s)
	for {
		e, ok := r.NextBack()
		if !ok {
			return Continue(acc)
		}
		out := step(acc, e)
		if out.halted {
			return out
		}
		acc = out.value
	}
}

// reversible asserts the backward pull capability.
func reversible[E any](s Sequence[E]) Reversible[E] {
	r, ok := s.(Reversible[E])
	if !ok {
		panic("traverse: sequence does not support backward traversal")
	}
	return r
}
