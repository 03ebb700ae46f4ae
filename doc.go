// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package traverse provides a composable, short-circuiting internal
// iteration protocol for sequence types in Go.
//
// A sequence supplies one traversal implementation and automatically
// gains efficient versions of a whole family of derived operations —
// exists, forall, find, position, fold, and their back-to-front
// counterparts — including when the sequence is built by composing
// other sequences.
//
// # Design Philosophy
//
// traverse provides:
//   - A single override point per sequence type ([Folder]/[RFolder])
//     that accelerates every derived operation at once
//   - Recursive composition: wrapper sequences ([Chain], [Prefix],
//     [Reversed]) forward through the protocol instead of
//     re-implementing each derived operation
//   - Direction symmetry: an optimization written once for one
//     traversal direction also serves consumers of the other, through
//     the reversal bridge
//
// # Control Signal
//
// [Signal] is the two-variant carrier every combining step returns:
// [Continue] to proceed with a new accumulator, [Stop] to end
// traversal immediately. Both variants carry a value, so the kernel
// always has a result to hand back and a stop without one is
// unrepresentable.
//
// # Traversal Kernel
//
// [FoldWhile] and [RFoldWhile] invoke the kernel. The default kernel
// drives the pull primitives ([Sequence.Next], [Reversible.NextBack]);
// a sequence overrides it by implementing [Folder] or [RFolder] over
// the erased accumulator boundary. Dispatch happens on every
// invocation, so an override buried inside a wrapper stack is still
// reached.
//
// The kernel guarantee: no element is drawn past the one whose step
// result stopped the traversal. This is what makes [Find] genuinely
// short-circuiting rather than a full fold filtered afterwards.
//
// # Derived Operations
//
//   - [All]: forall — vacuously true on empty
//   - [Any]: exists — vacuously false on empty
//   - [Find], [RFind]: first/last matching element
//   - [Position], [RPosition]: index of first/last match
//   - [Fold], [RFold]: never-stopping reduction
//   - [TryFold], [TryRFold]: fallible step, error-typed early exit
//   - [Each], [Collect], [Values]: push-style consumption
//
// # Composite Adaptors
//
//   - [Concat]: concatenation; runs the front part's kernel and, only
//     if it did not stop, the back part's
//   - [Take]: bounded prefix; the bound forces a stop that is
//     reported as exhaustion, never confused with a caller stop
//   - [Reverse]: back-to-front view; its forward kernel is the
//     source's backward kernel and vice versa, so optimizations
//     transfer across reversal for free
//
// # Concurrency
//
// The protocol is synchronous and single-threaded. A sequence value is
// exclusively owned by the one traversal in progress; concurrent
// traversal requires independently owned sequence values. There is no
// cancellation beyond the combining step returning [Stop], and a
// never-stopping step over an unbounded sequence does not terminate.
package traverse
