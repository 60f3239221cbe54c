// Package zipeq zips two iterators that must have the same length.
//
// This file contains the pairing logic shared by Eager and Lazy.
package zipeq

import (
	"fmt"

	"github.com/norio-nomura/zipeq/pkg/xiter"
)

// mismatchPolicy decides what happens when one input runs out before the other.
type mismatchPolicy interface {
	// verifies reports whether operations spend extra pulls or length checks to catch a mismatch
	// that stepping alone would miss.
	verifies() bool
	// mismatch returns the error to record on the zipper, or panics.
	mismatch(e *MismatchError) error
}

// assumeEqual treats a mismatch as a broken invariant.
type assumeEqual struct{}

func (assumeEqual) verifies() bool { return false }

func (assumeEqual) mismatch(e *MismatchError) error {
	panic("zipeq: unreachable: " + e.detail() + "; inputs of an eager zip must have equal length")
}

// checkEqual reports a mismatch as an error.
type checkEqual struct{}

func (checkEqual) verifies() bool { return true }

func (checkEqual) mismatch(e *MismatchError) error { return e }

// zipper holds the pairing logic shared by Eager and Lazy.
type zipper[A, B any, P mismatchPolicy] struct {
	a      xiter.Iterator[A]
	b      xiter.Iterator[B]
	front  int
	back   int
	done   bool
	err    error
	policy P
}

// both pairs the results of pulling from each input once.
func (z *zipper[A, B, P]) both(op string, index int, fromBack bool, a A, okA bool, b B, okB bool) (xiter.Pair[A, B], bool) {
	if okA && okB {
		return xiter.Pair[A, B]{V1: a, V2: b}, true
	}
	if okA || okB {
		z.fail(op, index, fromBack, sideOut(okA))
	} else {
		z.done = true
	}
	var zero xiter.Pair[A, B]
	return zero, false
}

// sideOut returns the input that is exhausted when exactly one of them produced an item.
func sideOut(aProduced bool) Side {
	if aProduced {
		return SideB
	}
	return SideA
}

func (z *zipper[A, B, P]) fail(op string, index int, fromBack bool, short Side) {
	z.err = z.policy.mismatch(&MismatchError{Op: op, Index: index, FromBack: fromBack, Short: short})
	z.done = true
}

// backs returns both inputs as double-ended iterators.
func (z *zipper[A, B, P]) backs(op string) (xiter.DoubleEnded[A], xiter.DoubleEnded[B]) {
	a, okA := z.a.(xiter.DoubleEnded[A])
	b, okB := z.b.(xiter.DoubleEnded[B])
	if !okA || !okB {
		panic(fmt.Sprintf("zipeq: %s requires double-ended inputs, got %T and %T", op, z.a, z.b))
	}
	return a, b
}

// checkBackLen fails early when both remaining lengths are known and differ,
// since pulling from the back would otherwise pair items at different positions.
func (z *zipper[A, B, P]) checkBackLen(op string) bool {
	if !z.policy.verifies() {
		return true
	}
	la, okA := xiter.Len(z.a)
	lb, okB := xiter.Len(z.b)
	if okA && okB && la != lb {
		z.fail(op, z.back, true, sideOut(la > lb))
		return false
	}
	return true
}

// remaining is an input's length before a skip, if it was known.
type remaining struct {
	n     int
	known bool
}

func remainingOf[T any](it xiter.Iterator[T]) remaining {
	n, ok := xiter.Len(it)
	return remaining{n: n, known: ok}
}

// skipped returns how many items the short input gave up during a skip of n before running out.
// Without a known length the requested offset n is the best bound.
func skipped(n int, aProduced bool, ra, rb remaining) int {
	short := ra
	if aProduced {
		short = rb
	}
	if short.known {
		return min(short.n, n)
	}
	return n
}

// Next returns the next pair from the front.
func (z *zipper[A, B, P]) Next() (xiter.Pair[A, B], bool) {
	if z.done {
		return xiter.Pair[A, B]{}, false
	}
	a, okA := z.a.Next()
	b, okB := z.b.Next()
	p, ok := z.both(opNext, z.front, false, a, okA, b, okB)
	if ok {
		z.front++
	}
	return p, ok
}

// NextBack returns the next pair from the back. It panics unless both inputs are double-ended.
func (z *zipper[A, B, P]) NextBack() (xiter.Pair[A, B], bool) {
	if z.done {
		return xiter.Pair[A, B]{}, false
	}
	da, db := z.backs(opNextBack)
	if !z.checkBackLen(opNextBack) {
		return xiter.Pair[A, B]{}, false
	}
	a, okA := da.NextBack()
	b, okB := db.NextBack()
	p, ok := z.both(opNextBack, z.back, true, a, okA, b, okB)
	if ok {
		z.back++
	}
	return p, ok
}

// Nth skips n pairs from the front and returns the following one.
func (z *zipper[A, B, P]) Nth(n int) (xiter.Pair[A, B], bool) {
	if z.done {
		return xiter.Pair[A, B]{}, false
	}
	ra, rb := remainingOf(z.a), remainingOf(z.b)
	a, okA := xiter.Nth(z.a, n)
	b, okB := xiter.Nth(z.b, n)
	p, ok := z.both(opNth, z.front+skipped(n, okA, ra, rb), false, a, okA, b, okB)
	if ok {
		z.front += n + 1
	}
	return p, ok
}

// NthBack skips n pairs from the back and returns the following one.
// It panics unless both inputs are double-ended.
func (z *zipper[A, B, P]) NthBack(n int) (xiter.Pair[A, B], bool) {
	if z.done {
		return xiter.Pair[A, B]{}, false
	}
	da, db := z.backs(opNthBack)
	if !z.checkBackLen(opNthBack) {
		return xiter.Pair[A, B]{}, false
	}
	ra, rb := remainingOf(z.a), remainingOf(z.b)
	a, okA := xiter.NthBack(da, n)
	b, okB := xiter.NthBack(db, n)
	p, ok := z.both(opNthBack, z.back+skipped(n, okA, ra, rb), true, a, okA, b, okB)
	if ok {
		z.back += n + 1
	}
	return p, ok
}

// ForEach calls f on each remaining pair until f returns false.
// It drives the first input's own bulk walk and pulls one item of the second input per call.
func (z *zipper[A, B, P]) ForEach(f func(xiter.Pair[A, B]) bool) bool {
	if z.done {
		return z.err == nil
	}
	drained := xiter.ForEach(z.a, func(a A) bool {
		b, ok := z.b.Next()
		if !ok {
			z.fail(opForEach, z.front, false, SideB)
			return false
		}
		z.front++
		return f(xiter.Pair[A, B]{V1: a, V2: b})
	})
	return z.finish(opForEach, drained, z.front, false, z.b.Next)
}

// ForEachBack is ForEach from the back. It panics unless both inputs are double-ended.
func (z *zipper[A, B, P]) ForEachBack(f func(xiter.Pair[A, B]) bool) bool {
	if z.done {
		return z.err == nil
	}
	da, db := z.backs(opForEachBack)
	if !z.checkBackLen(opForEachBack) {
		return false
	}
	drained := xiter.ForEachBack(da, func(a A) bool {
		b, ok := db.NextBack()
		if !ok {
			z.fail(opForEachBack, z.back, true, SideB)
			return false
		}
		z.back++
		return f(xiter.Pair[A, B]{V1: a, V2: b})
	})
	return z.finish(opForEachBack, drained, z.back, true, db.NextBack)
}

// finish settles the state after a bulk walk over the first input.
func (z *zipper[A, B, P]) finish(op string, drained bool, index int, fromBack bool, pullB func() (B, bool)) bool {
	if z.err != nil || !drained {
		return false
	}
	if z.policy.verifies() {
		if _, ok := pullB(); ok {
			z.fail(op, index, fromBack, SideA)
			return false
		}
	}
	z.done = true
	return true
}

// Count drains the zipper and returns the number of pairs it produced.
func (z *zipper[A, B, P]) Count() int {
	n := 0
	z.ForEach(func(xiter.Pair[A, B]) bool {
		n++
		return true
	})
	return n
}

// SizeHint combines the size hints of both inputs.
func (z *zipper[A, B, P]) SizeHint() xiter.SizeHint {
	if z.done {
		return xiter.Exact(0)
	}
	return combineSizeHints(z.a.SizeHint(), z.b.SizeHint())
}
