// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains SliceIter, a double-ended iterator over a slice.
package xiter

// SliceIter iterates over a slice from both ends. Its length is always trusted.
type SliceIter[T any] struct {
	s []T
}

// Slice returns an iterator over s. The slice is not copied.
func Slice[T any](s []T) *SliceIter[T] {
	return &SliceIter[T]{s: s}
}

// Next returns the front item.
func (it *SliceIter[T]) Next() (T, bool) {
	if len(it.s) == 0 {
		var zero T
		return zero, false
	}
	v := it.s[0]
	it.s = it.s[1:]
	return v, true
}

// NextBack returns the back item.
func (it *SliceIter[T]) NextBack() (T, bool) {
	n := len(it.s)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := it.s[n-1]
	it.s = it.s[:n-1]
	return v, true
}

// Nth skips n items from the front and returns the next one.
// Skipping past the end drains the iterator.
func (it *SliceIter[T]) Nth(n int) (T, bool) {
	if n >= len(it.s) {
		it.s = it.s[len(it.s):]
		var zero T
		return zero, false
	}
	it.s = it.s[n:]
	return it.Next()
}

// NthBack skips n items from the back and returns the next one.
func (it *SliceIter[T]) NthBack(n int) (T, bool) {
	if n >= len(it.s) {
		it.s = it.s[:0]
		var zero T
		return zero, false
	}
	it.s = it.s[:len(it.s)-n]
	return it.NextBack()
}

// ForEach calls f on the remaining items front to back.
func (it *SliceIter[T]) ForEach(f func(T) bool) bool {
	for i, v := range it.s {
		if !f(v) {
			it.s = it.s[i+1:]
			return false
		}
	}
	it.s = it.s[len(it.s):]
	return true
}

// ForEachBack calls f on the remaining items back to front.
func (it *SliceIter[T]) ForEachBack(f func(T) bool) bool {
	for i := len(it.s) - 1; i >= 0; i-- {
		if !f(it.s[i]) {
			it.s = it.s[:i]
			return false
		}
	}
	it.s = it.s[:0]
	return true
}

// Last drains the iterator and returns its final item.
func (it *SliceIter[T]) Last() (T, bool) {
	v, ok := it.NextBack()
	it.s = it.s[:0]
	return v, ok
}

// Len returns the number of remaining items.
func (it *SliceIter[T]) Len() int { return len(it.s) }

// TrustedLen always returns true.
func (it *SliceIter[T]) TrustedLen() bool { return true }

// SizeHint returns the exact remaining length.
func (it *SliceIter[T]) SizeHint() SizeHint { return Exact(len(it.s)) }
