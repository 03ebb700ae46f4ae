// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Kernel entry points.
//
// FoldWhile/RFoldWhile are the public invocations of the traversal
// kernel; everything in derive.go is a thin specialization of them.
// Guarantee: no element is drawn past the one whose step result
// stopped the traversal — stopping is immediate, not deferred by one
// pull.

// FoldWhile folds s front-to-back, threading the accumulator through
// Continue values and ending immediately on the first Stop.
// Returns Continue(acc) if the sequence was exhausted, or the step's
// Stop signal unchanged.
//
// An empty sequence yields Continue(init) without calling step.
func FoldWhile[A, E any](s Sequence[E], init A, step func(A, E) Signal[A]) Signal[A] {
	return unerase[A](foldErased(s, Erased(init), eraseStep(step)))
}

// RFoldWhile folds s back-to-front. Identical contract to FoldWhile
// with the draw direction reversed.
func RFoldWhile[A, E any](s Reversible[E], init A, step func(A, E) Signal[A]) Signal[A] {
	return unerase[A](rfoldErased[E](s, Erased(init), eraseStep(step)))
}

// eraseStep carries a typed combining step across the erased kernel
// boundary.
func eraseStep[A, E any](step func(A, E) Signal[A]) func(Erased, E) Signal[Erased] {
	return func(acc Erased, e E) Signal[Erased] {
		var a A
		if acc != nil {
			a = acc.(A)
		}
		return erase(step(a, e))
	}
}

// Fold reduces s front-to-back with combine. The step never stops, so
// this is the one derived operation that cannot short-circuit; an
// unbounded sequence will not terminate under it.
//
// An empty sequence returns init unchanged.
func Fold[A, E any](s Sequence[E], init A, combine func(A, E) A) A {
	return FoldWhile(s, init, func(acc A, e E) Signal[A] {
		return Continue(combine(acc, e))
	}).Value()
}

// RFold reduces s back-to-front.
func RFold[A, E any](s Reversible[E], init A, combine func(A, E) A) A {
	return RFoldWhile(s, init, func(acc A, e E) Signal[A] {
		return Continue(combine(acc, e))
	}).Value()
}

// TryFold folds s with a fallible step. A non-nil error ends traversal
// immediately; the accumulator as of the failing element and that
// error are returned. A nil error on every element returns the final
// accumulator and nil.
//
// The error channel here is borrowed vocabulary, not necessarily
// failure: a caller may stop early with a sentinel (the fs.SkipAll
// pattern) and treat it as success at the call site. The kernel never
// inspects or wraps the error.
func TryFold[A, E any](s Sequence[E], init A, step func(A, E) (A, error)) (A, error) {
	var stopErr error
	out := FoldWhile(s, init, func(acc A, e E) Signal[A] {
		next, err := step(acc, e)
		if err != nil {
			stopErr = err
			return Stop(acc)
		}
		return Continue(next)
	})
	return out.Value(), stopErr
}

// TryRFold is the back-to-front counterpart of TryFold.
func TryRFold[A, E any](s Reversible[E], init A, step func(A, E) (A, error)) (A, error) {
	var stopErr error
	out := RFoldWhile(s, init, func(acc A, e E) Signal[A] {
		next, err := step(acc, e)
		if err != nil {
			stopErr = err
			return Stop(acc)
		}
		return Continue(next)
	})
	return out.Value(), stopErr
}
