// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains Zip, the truncating pairwise zip of two sequences.
package xiter

import "iter"

// Zip pairs the items of seqT and seqU positionally and stops as soon as either is exhausted.
// A length difference is silently truncated; see package zipeq for checked variants.
func Zip[T, U any](seqT iter.Seq[T], seqU iter.Seq[U]) iter.Seq[Pair[T, U]] {
	return func(yield func(Pair[T, U]) bool) {
		uNext, uStop := iter.Pull(seqU)
		defer uStop()
		for t := range seqT {
			u, ok := uNext()
			if !ok || !yield(Pair[T, U]{V1: t, V2: u}) {
				return
			}
		}
	}
}
