// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Signal is the control carrier of the traversal protocol.
// A combining step returns either Continue(v), meaning traversal should
// proceed with v as the new accumulator, or Stop(v), meaning traversal
// must end immediately with v as the final result.
//
// Both variants carry a value, so a stop without a result is
// unrepresentable: whichever branch a step takes, the kernel always has
// an accumulator to hand back.
type Signal[V any] struct {
	halted bool
	value  V
}

// Continue signals that traversal should proceed with v.
func Continue[V any](v V) Signal[V] {
	return Signal[V]{value: v}
}

// Stop signals that traversal must end immediately with v.
func Stop[V any](v V) Signal[V] {
	return Signal[V]{halted: true, value: v}
}

// Halted reports whether the signal requests an immediate stop.
func (s Signal[V]) Halted() bool {
	return s.halted
}

// Value returns the carried value regardless of variant.
// Total: it never fails and never requires checking Halted first.
func (s Signal[V]) Value() V {
	return s.value
}

// Match pattern matches on the signal, calling onContinue or onStop.
func Match[V, T any](s Signal[V], onContinue func(V) T, onStop func(V) T) T {
	if s.halted {
		return onStop(s.value)
	}
	return onContinue(s.value)
}

// erase widens a typed signal to the erased kernel boundary.
func erase[V any](s Signal[V]) Signal[Erased] {
	return Signal[Erased]{halted: s.halted, value: s.value}
}

// unerase narrows an erased signal back to its typed form.
// A nil carried value maps to the zero value of V: asserting a nil
// interface would panic even for V = any.
func unerase[V any](s Signal[Erased]) Signal[V] {
	if s.value == nil {
		var zero V
		return Signal[V]{halted: s.halted, value: zero}
	}
	return Signal[V]{halted: s.halted, value: s.value.(V)}
}
