// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package traverse

// Prefix is a bounded-length prefix of a sequence: at most n elements
// are drawn from the source, however long it actually is.
//
// Prefix is forward-only. Drawing the last element of a prefix would
// require knowing how many elements the source holds, which the pull
// protocol does not expose, so no backward primitive or kernel is
// provided.
type Prefix[E any] struct {
	src Sequence[E]
	n   int
}

// Take bounds s to its first n elements. A non-positive n yields an
// empty sequence that never touches s.
func Take[E any](n int, s Sequence[E]) *Prefix[E] {
	if n < 0 {
		n = 0
	}
	return &Prefix[E]{src: s, n: n}
}

// Next draws from the source, decrementing the remaining count exactly
// once per element yielded. Once the count or the source is exhausted
// the source is not polled again.
func (p *Prefix[E]) Next() (E, bool) {
	if p.n <= 0 {
		var zero E
		return zero, false
	}
	e, ok := p.src.Next()
	if !ok {
		p.n = 0
		return e, false
	}
	p.n--
	return e, true
}

// boundStop tags a stop forced by the prefix bound, distinguishing it
// from a stop the caller's own step requested. Unexported, so no
// caller accumulator can collide with it.
type boundStop struct {
	acc Erased
}

// FoldWhile implements [Folder]. The source's kernel runs with a
// wrapped step that counts elements down and forces a tagged stop when
// the bound is reached, regardless of what the caller's step decided
// for that element. On exit the tag picks the reported reason: a
// bound stop is exhaustion of the prefix and unwraps to Continue, a
// caller stop propagates as Stop.
func (p *Prefix[E]) FoldWhile(acc Erased, step func(Erased, E) Signal[Erased]) Signal[Erased] {
	if p.n <= 0 {
		return Continue(acc)
	}
	out := foldErased(p.src, acc, func(a Erased, e E) Signal[Erased] {
		p.n--
		r := step(a, e)
		if r.halted {
			return r
		}
		if p.n == 0 {
			return Stop[Erased](boundStop{acc: r.value})
		}
		return r
	})
	if out.halted {
		if b, ok := out.value.(boundStop); ok {
			return Continue(b.acc)
		}
		return out
	}
	// Source exhausted before the bound; drop the count so the
	// exhausted source is never polled again.
	p.n = 0
	return out
}
