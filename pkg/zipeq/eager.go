// Package zipeq zips two iterators that must have the same length.
//
// This file contains Eager, the zipper whose inputs are known to have equal length.
package zipeq

import (
	"iter"

	"github.com/norio-nomura/zipeq/pkg/xiter"
)

// Eager zips two inputs whose remaining lengths are known to be equal.
//
// No step checks for one input running out before the other. If that happens anyway,
// because Unchecked was given inputs of different lengths, the step panics.
//
// Besides Next, Eager provides NextBack, Nth, NthBack, ForEach, ForEachBack, Count
// and SizeHint. The backward operations panic unless both inputs are double-ended.
type Eager[A, B any] struct {
	zipper[A, B, assumeEqual]
}

// Len returns the exact number of remaining pairs, taken from whichever input knows its length.
// It panics if neither input nor the combined size hint pins the length down.
// xiter.Len checks SizeHint before calling Len and so never hits that case.
func (z *Eager[A, B]) Len() int {
	if z.done {
		return 0
	}
	if n, ok := xiter.Len(z.a); ok {
		return n
	}
	if n, ok := xiter.Len(z.b); ok {
		return n
	}
	if h := z.SizeHint(); h.IsExact() {
		return h.Lower
	}
	panic("zipeq: Len requires an input of exact size")
}

// TrustedLen reports whether the first input guarantees its length.
// Both inputs have the same length, so the guarantee carries over to the pairs.
func (z *Eager[A, B]) TrustedLen() bool {
	return xiter.IsTrustedLen(z.a)
}

// Last drains both inputs and returns their final items.
func (z *Eager[A, B]) Last() (xiter.Pair[A, B], bool) {
	if z.done {
		return xiter.Pair[A, B]{}, false
	}
	a, okA := xiter.Last(z.a)
	b, okB := xiter.Last(z.b)
	p, ok := z.both(opLast, z.front, false, a, okA, b, okB)
	z.done = true
	return p, ok
}

// All returns an iter.Seq over the remaining pairs.
func (z *Eager[A, B]) All() iter.Seq[xiter.Pair[A, B]] {
	return func(yield func(xiter.Pair[A, B]) bool) {
		z.ForEach(yield)
	}
}
