// Package zipeq zips two iterators that must have the same length.
//
// This file contains the size hint of a zip.
package zipeq

import "github.com/norio-nomura/zipeq/pkg/xiter"

// combineSizeHints estimates the length of zipping two inputs.
// The lower bound is the larger one: a shorter input ends in a mismatch, not in fewer pairs.
func combineSizeHints(a, b xiter.SizeHint) xiter.SizeHint {
	h := xiter.SizeHint{Lower: max(a.Lower, b.Lower)}
	switch {
	case a.HasUpper && b.HasUpper:
		h.Upper, h.HasUpper = min(a.Upper, b.Upper), true
	case a.HasUpper:
		h.Upper, h.HasUpper = a.Upper, true
	case b.HasUpper:
		h.Upper, h.HasUpper = b.Upper, true
	}
	return h
}
