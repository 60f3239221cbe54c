// Package xiter provides stateful pull iterators and adapters for Go 1.23+ iter.Seq.
//
// This file contains the iteration protocol: the Iterator interface and the
// optional capabilities an iterator may implement.
package xiter

// Iterator is a stateful sequence that is consumed one item at a time.
type Iterator[T any] interface {
	// Next advances the iterator and returns the next item.
	// It returns false once the sequence is exhausted.
	Next() (T, bool)
	// SizeHint returns bounds on the number of remaining items.
	SizeHint() SizeHint
}

// DoubleEnded is implemented by iterators that can also be consumed from the back.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// Skipper is implemented by iterators that can skip n items cheaper than calling Next n times.
// Nth discards n items and returns the following one.
type Skipper[T any] interface {
	Iterator[T]
	Nth(n int) (T, bool)
}

// BackSkipper is the reverse counterpart of Skipper.
type BackSkipper[T any] interface {
	DoubleEnded[T]
	NthBack(n int) (T, bool)
}

// ForEacher is implemented by iterators with a native bulk walk.
// ForEach calls f for each remaining item until f returns false.
// It returns false if f stopped the walk, and true once the iterator is drained.
type ForEacher[T any] interface {
	Iterator[T]
	ForEach(f func(T) bool) bool
}

// BackForEacher is the reverse counterpart of ForEacher.
type BackForEacher[T any] interface {
	DoubleEnded[T]
	ForEachBack(f func(T) bool) bool
}

// ExactSize is implemented by iterators that know how many items remain.
// Their SizeHint must be exact whenever Len can answer.
type ExactSize[T any] interface {
	Iterator[T]
	Len() int
}

// TrustedLen marks an ExactSize iterator whose Len is a guarantee rather than a hint.
// Consumers may rely on Len only when TrustedLen returns true.
type TrustedLen[T any] interface {
	ExactSize[T]
	TrustedLen() bool
}

// Laster is implemented by iterators that can return their last item without walking.
type Laster[T any] interface {
	Iterator[T]
	Last() (T, bool)
}

// SizeHint holds a lower bound and an optional upper bound on the remaining length.
type SizeHint struct {
	Lower    int
	Upper    int
	HasUpper bool
}

// Exact returns a SizeHint for exactly n items.
func Exact(n int) SizeHint {
	return SizeHint{Lower: n, Upper: n, HasUpper: true}
}

// AtLeast returns a SizeHint with lower bound n and no upper bound.
func AtLeast(n int) SizeHint {
	return SizeHint{Lower: n}
}

// IsExact reports whether the bounds pin down a single length.
func (h SizeHint) IsExact() bool {
	return h.HasUpper && h.Lower == h.Upper
}

// Pair holds one item from each of two zipped sequences.
type Pair[T, U any] struct {
	V1 T
	V2 U
}
