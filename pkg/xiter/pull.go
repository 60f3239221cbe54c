// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains PullIter, which turns a push-style iter.Seq into an Iterator.
package xiter

import "iter"

// PullIter is a forward-only Iterator over an iter.Seq. Its length is unknown.
type PullIter[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Pull returns an Iterator over seq.
// The underlying coroutine is released when the sequence is exhausted or Stop is called.
func Pull[T any](seq iter.Seq[T]) *PullIter[T] {
	next, stop := iter.Pull(seq)
	return &PullIter[T]{next: next, stop: stop}
}

// Next returns the next item of the sequence.
func (it *PullIter[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.Stop()
	}
	return v, ok
}

// Stop releases the sequence. Later calls to Next return false.
func (it *PullIter[T]) Stop() {
	if !it.done {
		it.done = true
		it.stop()
	}
}

// SizeHint reports nothing beyond an empty lower bound, or an exact zero once stopped.
func (it *PullIter[T]) SizeHint() SizeHint {
	if it.done {
		return Exact(0)
	}
	return AtLeast(0)
}
