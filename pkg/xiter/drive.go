// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains generic drivers that consume an Iterator, using its
// optional capabilities when available.
package xiter

import "iter"

// ForEach calls f on each remaining item of it until f returns false.
// It returns false if f stopped the walk.
func ForEach[T any](it Iterator[T], f func(T) bool) bool {
	if fe, ok := it.(ForEacher[T]); ok {
		return fe.ForEach(f)
	}
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		if !f(v) {
			return false
		}
	}
}

// ForEachBack is ForEach from the back.
func ForEachBack[T any](it DoubleEnded[T], f func(T) bool) bool {
	if fe, ok := it.(BackForEacher[T]); ok {
		return fe.ForEachBack(f)
	}
	for {
		v, ok := it.NextBack()
		if !ok {
			return true
		}
		if !f(v) {
			return false
		}
	}
}

// Fold combines every remaining item into an accumulator, front to back.
func Fold[T, R any](it Iterator[T], init R, f func(R, T) R) R {
	acc := init
	ForEach(it, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// TryFold is Fold with early exit: when f returns false the fold stops and
// TryFold returns the accumulator as it was before the failing call, and false.
func TryFold[T, R any](it Iterator[T], init R, f func(R, T) (R, bool)) (R, bool) {
	acc := init
	ok := ForEach(it, func(v T) bool {
		next, ok := f(acc, v)
		if ok {
			acc = next
		}
		return ok
	})
	return acc, ok
}

// RFold is Fold from the back.
func RFold[T, R any](it DoubleEnded[T], init R, f func(R, T) R) R {
	acc := init
	ForEachBack(it, func(v T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}

// TryRFold is TryFold from the back.
func TryRFold[T, R any](it DoubleEnded[T], init R, f func(R, T) (R, bool)) (R, bool) {
	acc := init
	ok := ForEachBack(it, func(v T) bool {
		next, ok := f(acc, v)
		if ok {
			acc = next
		}
		return ok
	})
	return acc, ok
}

// Nth discards n items and returns the following one.
func Nth[T any](it Iterator[T], n int) (T, bool) {
	if n < 0 {
		panic("xiter: negative skip count")
	}
	if s, ok := it.(Skipper[T]); ok {
		return s.Nth(n)
	}
	for range n {
		if _, ok := it.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return it.Next()
}

// NthBack is Nth from the back.
func NthBack[T any](it DoubleEnded[T], n int) (T, bool) {
	if n < 0 {
		panic("xiter: negative skip count")
	}
	if s, ok := it.(BackSkipper[T]); ok {
		return s.NthBack(n)
	}
	for range n {
		if _, ok := it.NextBack(); !ok {
			var zero T
			return zero, false
		}
	}
	return it.NextBack()
}

// Count drains it and returns the number of items it produced.
func Count[T any](it Iterator[T]) int {
	n := 0
	ForEach(it, func(T) bool {
		n++
		return true
	})
	return n
}

// Last drains it and returns its final item.
func Last[T any](it Iterator[T]) (T, bool) {
	if l, ok := it.(Laster[T]); ok {
		return l.Last()
	}
	var (
		last T
		seen bool
	)
	ForEach(it, func(v T) bool {
		last, seen = v, true
		return true
	})
	return last, seen
}

// Len returns the exact remaining length of it, if known.
// The size hint is consulted first, so ExactSize.Len is only called once the hint is exact.
func Len[T any](it Iterator[T]) (int, bool) {
	h := it.SizeHint()
	if !h.IsExact() {
		return 0, false
	}
	if es, ok := it.(ExactSize[T]); ok {
		return es.Len(), true
	}
	return h.Lower, true
}

// IsTrustedLen reports whether it guarantees its Len.
func IsTrustedLen[T any](it Iterator[T]) bool {
	tl, ok := it.(TrustedLen[T])
	return ok && tl.TrustedLen()
}

// Collect drains it into a new slice, preallocated from its size hint.
func Collect[T any](it Iterator[T]) []T {
	s := make([]T, 0, it.SizeHint().Lower)
	ForEach(it, func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// All returns an iter.Seq that drains it front to back.
// Breaking out of the range loop leaves the remaining items in it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		ForEach(it, yield)
	}
}

// Backward returns an iter.Seq that drains it back to front.
func Backward[T any](it DoubleEnded[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		ForEachBack(it, yield)
	}
}
