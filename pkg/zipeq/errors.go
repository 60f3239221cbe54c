// Package zipeq zips two iterators that must have the same length.
//
// This file contains the errors reporting inputs of different lengths.
package zipeq

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is matched by every error reporting inputs of different lengths.
	ErrLengthMismatch = errors.New("zipeq: inputs have different lengths")
	// ErrUntrustedLen is returned by NewEager when an input cannot vouch for its length.
	ErrUntrustedLen = errors.New("zipeq: input length is not trusted")
)

const (
	opNewEager    = "NewEager"
	opNext        = "Next"
	opNextBack    = "NextBack"
	opNth         = "Nth"
	opNthBack     = "NthBack"
	opForEach     = "ForEach"
	opForEachBack = "ForEachBack"
	opLast        = "Last"
)

// Side names one of the two zipped inputs.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// MismatchError describes where two zipped inputs were found to differ in length.
type MismatchError struct {
	// Op is the operation that observed the difference.
	Op string
	// Index is the number of pairs taken from the stepped end before the short input ran out.
	// For Nth and NthBack over a short input of unknown length it is the requested offset,
	// an upper bound on that number.
	Index int
	// FromBack is set when Index counts from the back.
	FromBack bool
	// Short is the input that ran out first.
	Short Side
	// LenA and LenB are set by NewEager, which compares lengths up front.
	LenA, LenB int
}

func (e *MismatchError) Error() string {
	return "zipeq: " + e.detail()
}

func (e *MismatchError) detail() string {
	if e.Op == opNewEager {
		return fmt.Sprintf("%s: len(a)=%d, len(b)=%d", e.Op, e.LenA, e.LenB)
	}
	end := "front"
	if e.FromBack {
		end = "back"
	}
	return fmt.Sprintf("%s: reached the end of input %s before the other at index %d from the %s", e.Op, e.Short, e.Index, end)
}

// Unwrap returns ErrLengthMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrLengthMismatch
}
