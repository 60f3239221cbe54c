// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains Filter, which drops the items a predicate rejects.
package xiter

import "iter"

// Filter returns an iter.Seq[T] that yields only the items of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
