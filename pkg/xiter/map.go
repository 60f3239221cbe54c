// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains Map, which transforms each item of a sequence.
package xiter

import "iter"

// Map returns an iter.Seq[U] that yields f(v) for each v in seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}
