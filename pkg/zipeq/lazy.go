// Package zipeq zips two iterators that must have the same length.
//
// This file contains Lazy, the zipper that checks lengths at every step.
package zipeq

import (
	"iter"

	"github.com/norio-nomura/zipeq/pkg/xiter"
)

// Lazy zips two inputs of unknown length and checks at every step that they end together.
//
// When one input runs out before the other, the step that notices returns false and
// Err reports a *MismatchError. The zipper yields nothing after that.
//
// Lazy provides the same operations as Eager. Bulk walks pull one extra item from the
// second input after the first one drains, and backward operations compare the inputs'
// lengths first when both know them.
type Lazy[A, B any] struct {
	zipper[A, B, checkEqual]
}

// Err returns the length mismatch found so far, or nil.
func (z *Lazy[A, B]) Err() error {
	return z.err
}

// Len returns the remaining number of pairs when both inputs know their lengths and agree.
// The result is not verified until iteration gets there. After a mismatch it reports false.
func (z *Lazy[A, B]) Len() (int, bool) {
	if z.err != nil {
		return 0, false
	}
	if z.done {
		return 0, true
	}
	la, okA := xiter.Len(z.a)
	lb, okB := xiter.Len(z.b)
	if !okA || !okB || la != lb {
		return 0, false
	}
	return la, true
}

// Last drains the zipper and returns the final pair.
// Unlike Eager.Last it walks every pair so a mismatch is still reported.
func (z *Lazy[A, B]) Last() (xiter.Pair[A, B], bool) {
	var (
		last xiter.Pair[A, B]
		seen bool
	)
	if !z.ForEach(func(p xiter.Pair[A, B]) bool {
		last, seen = p, true
		return true
	}) {
		return xiter.Pair[A, B]{}, false
	}
	return last, seen
}

// All returns an iter.Seq over the remaining pairs. Check Err after the loop.
func (z *Lazy[A, B]) All() iter.Seq[xiter.Pair[A, B]] {
	return func(yield func(xiter.Pair[A, B]) bool) {
		z.ForEach(yield)
	}
}
