// Package zipeq zips two iterators that must have the same length.
//
// This file contains the builders that compare lengths up front or defer the check.
package zipeq

import (
	"fmt"

	"github.com/norio-nomura/zipeq/pkg/xiter"
)

// Unchecked zips a and b without comparing their lengths.
// The caller guarantees that both have the same number of items; if they do not,
// the returned zipper panics at the step where one of them runs out first.
func Unchecked[A, B any](a xiter.Iterator[A], b xiter.Iterator[B]) *Eager[A, B] {
	return &Eager[A, B]{zipper: zipper[A, B, assumeEqual]{a: a, b: b}}
}

// NewEager compares the trusted lengths of a and b and zips them if they are equal.
// It returns ErrUntrustedLen if either input does not guarantee its length, and a
// *MismatchError if the lengths differ. No items are consumed in either case.
func NewEager[A, B any](a xiter.TrustedLen[A], b xiter.TrustedLen[B]) (*Eager[A, B], error) {
	if !a.TrustedLen() {
		return nil, fmt.Errorf("%w: input a (%T)", ErrUntrustedLen, a)
	}
	if !b.TrustedLen() {
		return nil, fmt.Errorf("%w: input b (%T)", ErrUntrustedLen, b)
	}
	if la, lb := a.Len(), b.Len(); la != lb {
		return nil, &MismatchError{
			Op:    opNewEager,
			Index: min(la, lb),
			Short: sideOut(la > lb),
			LenA:  la,
			LenB:  lb,
		}
	}
	return Unchecked[A, B](a, b), nil
}

// MustEager is like NewEager but panics on error.
func MustEager[A, B any](a xiter.TrustedLen[A], b xiter.TrustedLen[B]) *Eager[A, B] {
	z, err := NewEager(a, b)
	if err != nil {
		panic(err)
	}
	return z
}

// NewLazy zips a and b, deferring the length check to iteration.
func NewLazy[A, B any](a xiter.Iterator[A], b xiter.Iterator[B]) *Lazy[A, B] {
	return &Lazy[A, B]{zipper: zipper[A, B, checkEqual]{a: a, b: b}}
}

// Slices zips two slices after checking that they have the same length.
func Slices[A, B any](a []A, b []B) (*Eager[A, B], error) {
	return NewEager[A, B](xiter.Slice(a), xiter.Slice(b))
}

// LazySlices zips two slices, checking their lengths during iteration.
func LazySlices[A, B any](a []A, b []B) *Lazy[A, B] {
	return NewLazy[A, B](xiter.Slice(a), xiter.Slice(b))
}
