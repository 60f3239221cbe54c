// Package bench measures the checked zippers against an ordinary truncating zip.
//
// This file contains the workloads and their shared input.
package bench

import (
	"fmt"
	"iter"
	"slices"

	"github.com/norio-nomura/zipeq/pkg/xiter"
	"github.com/norio-nomura/zipeq/pkg/zipeq"
)

// Input holds the data shared by all workloads of one run.
type Input struct {
	Out      []float64
	LHS, RHS []float64
	Text     string
	Reversed string

	outRefs []*float64
}

// NewInput allocates arrays of the given size and prepares two strings of equal rune count.
func NewInput(size int, text string) *Input {
	in := &Input{
		Out:  make([]float64, size),
		LHS:  make([]float64, size),
		RHS:  make([]float64, size),
		Text: text,
	}
	for i := range size {
		in.LHS[i] = float64(i)
		in.RHS[i] = float64(size - i)
	}
	in.outRefs = make([]*float64, size)
	for i := range in.Out {
		in.outRefs[i] = &in.Out[i]
	}
	runes := []rune(text)
	slices.Reverse(runes)
	in.Reversed = string(runes)
	return in
}

// Workload is one way of running a pairwise computation. Run returns a checksum.
type Workload struct {
	Name string
	Run  func(in *Input) (float64, error)
}

// Workloads lists every workload in the order they are reported.
var Workloads = []Workload{
	{"slices-std", addSlicesStd},
	{"slices-eager", addSlicesEager},
	{"slices-lazy", addSlicesLazy},
	{"chars-std", addCharsStd},
	{"chars-unchecked", addCharsUnchecked},
	{"chars-lazy", addCharsLazy},
}

// Lookup returns the workload with the given name.
func Lookup(name string) (Workload, error) {
	i := slices.IndexFunc(Workloads, func(w Workload) bool { return w.Name == name })
	if i < 0 {
		return Workload{}, fmt.Errorf("unknown workload %q", name)
	}
	return Workloads[i], nil
}

func sumOut(out []float64) float64 {
	var s float64
	for _, v := range out {
		s += v
	}
	return s
}

type outPair = xiter.Pair[*float64, float64]

func addSlicesStd(in *Input) (float64, error) {
	seq := xiter.Zip(xiter.Zip(slices.Values(in.outRefs), slices.Values(in.LHS)), slices.Values(in.RHS))
	for p := range seq {
		*p.V1.V1 = p.V1.V2 + p.V2
	}
	return sumOut(in.Out), nil
}

func addSlicesEager(in *Input) (float64, error) {
	inner, err := zipeq.NewEager[*float64, float64](xiter.Slice(in.outRefs), xiter.Slice(in.LHS))
	if err != nil {
		return 0, err
	}
	z, err := zipeq.NewEager[outPair, float64](inner, xiter.Slice(in.RHS))
	if err != nil {
		return 0, err
	}
	z.ForEach(func(p xiter.Pair[outPair, float64]) bool {
		*p.V1.V1 = p.V1.V2 + p.V2
		return true
	})
	return sumOut(in.Out), nil
}

func addSlicesLazy(in *Input) (float64, error) {
	inner := zipeq.LazySlices(in.outRefs, in.LHS)
	z := zipeq.NewLazy[outPair, float64](inner, xiter.Slice(in.RHS))
	z.ForEach(func(p xiter.Pair[outPair, float64]) bool {
		*p.V1.V1 = p.V1.V2 + p.V2
		return true
	})
	if err := inner.Err(); err != nil {
		return 0, err
	}
	if err := z.Err(); err != nil {
		return 0, err
	}
	return sumOut(in.Out), nil
}

func runeSeq(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

type runePair = xiter.Pair[rune, rune]

func addRunes(acc uint32, p runePair) uint32 {
	return acc + uint32(p.V1) + uint32(p.V2)
}

func addCharsStd(in *Input) (float64, error) {
	var acc uint32
	for p := range xiter.Zip(runeSeq(in.Text), runeSeq(in.Reversed)) {
		acc = addRunes(acc, p)
	}
	return float64(acc), nil
}

// addCharsUnchecked relies on NewInput building two strings with the same rune count.
func addCharsUnchecked(in *Input) (float64, error) {
	z := zipeq.Unchecked[rune, rune](xiter.Runes(in.Text), xiter.Runes(in.Reversed))
	return float64(xiter.Fold(z, 0, addRunes)), nil
}

func addCharsLazy(in *Input) (float64, error) {
	z := zipeq.NewLazy[rune, rune](xiter.Runes(in.Text), xiter.Runes(in.Reversed))
	acc := xiter.Fold(z, 0, addRunes)
	return float64(acc), z.Err()
}
