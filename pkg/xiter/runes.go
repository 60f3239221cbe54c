// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains RuneIter, which decodes a string from both ends.
package xiter

import "unicode/utf8"

// RuneIter yields the runes of a string. Invalid UTF-8 bytes decode to utf8.RuneError,
// the same as ranging over the string.
type RuneIter struct {
	s string
}

// Runes returns an iterator over the runes of s.
func Runes(s string) *RuneIter {
	return &RuneIter{s: s}
}

// Next decodes the front rune.
func (it *RuneIter) Next() (rune, bool) {
	if it.s == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(it.s)
	it.s = it.s[size:]
	return r, true
}

// NextBack decodes the back rune.
func (it *RuneIter) NextBack() (rune, bool) {
	if it.s == "" {
		return 0, false
	}
	r, size := utf8.DecodeLastRuneInString(it.s)
	it.s = it.s[:len(it.s)-size]
	return r, true
}

// ForEach calls f on the remaining runes front to back.
func (it *RuneIter) ForEach(f func(rune) bool) bool {
	for it.s != "" {
		r, size := utf8.DecodeRuneInString(it.s)
		it.s = it.s[size:]
		if !f(r) {
			return false
		}
	}
	return true
}

// ForEachBack calls f on the remaining runes back to front.
func (it *RuneIter) ForEachBack(f func(rune) bool) bool {
	for it.s != "" {
		r, size := utf8.DecodeLastRuneInString(it.s)
		it.s = it.s[:len(it.s)-size]
		if !f(r) {
			return false
		}
	}
	return true
}

// SizeHint bounds the rune count by the byte length: every rune takes one to four bytes.
func (it *RuneIter) SizeHint() SizeHint {
	n := len(it.s)
	return SizeHint{Lower: (n + 3) / 4, Upper: n, HasUpper: true}
}
