// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains SeqOf, which builds a sequence from its arguments.
package xiter

import "iter"

// SeqOf returns an iter.Seq[T] that yields all the given values in order.
func SeqOf[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}
