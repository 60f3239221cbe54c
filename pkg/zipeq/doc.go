// Package zipeq zips two iterators that must have the same length.
//
// An ordinary zip stops at the end of the shorter input and drops the rest. The
// zippers in this package treat a length difference as a failure instead. Two
// strategies are provided:
//
//   - [Eager] is built after the lengths were compared. [NewEager] requires both
//     inputs to implement [xiter.TrustedLen] and fails before any pairing if their
//     lengths differ. [Unchecked] skips the comparison when the caller already knows
//     the lengths match. No step of an Eager zipper checks lengths again.
//   - [Lazy] is built by [NewLazy] without any requirement on the inputs. Every
//     step checks that both inputs produced an item or both ended, and records a
//     [*MismatchError] at the first step where they disagree.
//
// Both zippers implement the protocol of package xiter: forward and backward
// stepping, skipping, bulk walks with early exit, and size queries. Bulk walks drive
// the first input's own walk and pull the second input one item at a time, so a
// short-circuiting fold never reads ahead.
//
//	a := []int{1, 2, 3}
//	b := []string{"x", "y"}
//	if _, err := zipeq.Slices(a, b); errors.Is(err, zipeq.ErrLengthMismatch) {
//		// lengths differ
//	}
//
// This file contains the package overview only.
package zipeq
