// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains Dedupe, which drops repeated values from a sequence.
package xiter

import "iter"

// Dedupe yields the first occurrence of each distinct value in seq.
func Dedupe[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}
