// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Derived operations.
//
// Each is a particular combining step handed to the kernel plus a
// particular reading of the final signal. None of them loop on their
// own, so a sequence that supplies a specialized kernel speeds up all
// of them at once.

// All reports whether pred holds for every element of s.
// Stops at the first element that fails. Vacuously true on an empty
// sequence.
func All[E any](s Sequence[E], pred func(E) bool) bool {
	return FoldWhile(s, true, func(acc bool, e E) Signal[bool] {
		if !pred(e) {
			return Stop(false)
		}
		return Continue(acc)
	}).Value()
}

// Any reports whether pred holds for some element of s.
// Stops at the first element that succeeds. Vacuously false on an
// empty sequence.
func Any[E any](s Sequence[E], pred func(E) bool) bool {
	return FoldWhile(s, false, func(acc bool, e E) Signal[bool] {
		if pred(e) {
			return Stop(true)
		}
		return Continue(acc)
	}).Value()
}

// Find returns the first element of s satisfying pred.
// The second result is false if no element matches.
func Find[E any](s Sequence[E], pred func(E) bool) (E, bool) {
	var zero E
	out := FoldWhile(s, zero, func(acc E, e E) Signal[E] {
		if pred(e) {
			return Stop(e)
		}
		return Continue(acc)
	})
	if out.Halted() {
		return out.Value(), true
	}
	return zero, false
}

// RFind returns the last element of s satisfying pred.
func RFind[E any](s Reversible[E], pred func(E) bool) (E, bool) {
	var zero E
	out := RFoldWhile(s, zero, func(acc E, e E) Signal[E] {
		if pred(e) {
			return Stop(e)
		}
		return Continue(acc)
	})
	if out.Halted() {
		return out.Value(), true
	}
	return zero, false
}

// Position returns the index of the first element satisfying pred,
// counted from the front starting at zero. The accumulator is the
// running index, incremented on every Continue.
func Position[E any](s Sequence[E], pred func(E) bool) (int, bool) {
	out := FoldWhile(s, 0, func(i int, e E) Signal[int] {
		if pred(e) {
			return Stop(i)
		}
		return Continue(i + 1)
	})
	if out.Halted() {
		return out.Value(), true
	}
	return 0, false
}

// RPosition returns the index of the last element satisfying pred,
// counted from the back starting at zero (0 is the last element).
func RPosition[E any](s Reversible[E], pred func(E) bool) (int, bool) {
	out := RFoldWhile(s, 0, func(i int, e E) Signal[int] {
		if pred(e) {
			return Stop(i)
		}
		return Continue(i + 1)
	})
	if out.Halted() {
		return out.Value(), true
	}
	return 0, false
}

// Each applies f to every element of s, front-to-back.
func Each[E any](s Sequence[E], f func(E)) {
	Fold(s, struct{}{}, func(acc struct{}, e E) struct{} {
		f(e)
		return acc
	})
}
