// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

import "iter"

// Bridge to the standard library's push-style iteration.
//
// FromSeq turns an iter.Seq into a pull [Sequence]; Values turns any
// [Sequence] into an iter.Seq. Values routes through the kernel, so a
// range-over-func loop over a chained or reversed sequence still
// benefits from specialized kernels.

// PullSeq adapts a push sequence to the pull protocol via [iter.Pull].
// It is forward-only.
//
// The adapter owns the pull iterator's goroutine; callers that abandon
// a PullSeq before exhausting it must call Close.
type PullSeq[E any] struct {
	next func() (E, bool)
	stop func()
}

// FromSeq returns a pull sequence over seq.
func FromSeq[E any](seq iter.Seq[E]) *PullSeq[E] {
	next, stop := iter.Pull(seq)
	return &PullSeq[E]{next: next, stop: stop}
}

// Next yields the next pushed element.
func (p *PullSeq[E]) Next() (E, bool) {
	return p.next()
}

// Close releases the underlying pull iterator. Idempotent.
func (p *PullSeq[E]) Close() {
	p.stop()
}

// Values exposes s as a push sequence usable with for range. A break
// in the loop body becomes a Stop through the kernel, so traversal
// ends immediately.
func Values[E any](s Sequence[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		FoldWhile(s, struct{}{}, func(acc struct{}, e E) Signal[struct{}] {
			if !yield(e) {
				return Stop(acc)
			}
			return Continue(acc)
		})
	}
}

// Collect drains s front-to-back into a slice.
func Collect[E any](s Sequence[E]) []E {
	return Fold(s, []E(nil), func(acc []E, e E) []E {
		return append(acc, e)
	})
}
