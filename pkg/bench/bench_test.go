package bench

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/norio-nomura/zipeq/pkg/options"
	"github.com/norio-nomura/zipeq/pkg/zipeq"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func smallOptions() *options.Options {
	o := options.Default()
	o.Size = 16
	o.Rounds = 2
	return o
}

func TestWorkloadNamesAreValidOptions(t *testing.T) {
	o := smallOptions()
	o.Workloads = nil
	for _, w := range Workloads {
		o.Workloads = append(o.Workloads, w.Name)
	}
	assert.NilError(t, o.Validate())
	assert.DeepEqual(t, o.Workloads, options.Default().Workloads)
}

func TestLookup(t *testing.T) {
	w, err := Lookup("chars-lazy")
	assert.NilError(t, err)
	assert.Equal(t, w.Name, "chars-lazy")
	_, err = Lookup("nope")
	assert.ErrorContains(t, err, `unknown workload "nope"`)
}

func TestWorkloadsAgree(t *testing.T) {
	in := NewInput(64, "zip équal lengths")
	sums := map[string]float64{}
	for _, w := range Workloads {
		sum, err := w.Run(in)
		assert.NilError(t, err, w.Name)
		sums[w.Name] = sum
	}
	// out[i] = i + (64 - i)
	assert.Equal(t, sums["slices-std"], float64(64*64))
	assert.Equal(t, sums["slices-eager"], sums["slices-std"])
	assert.Equal(t, sums["slices-lazy"], sums["slices-std"])
	assert.Equal(t, sums["chars-unchecked"], sums["chars-std"])
	assert.Equal(t, sums["chars-lazy"], sums["chars-std"])
}

func TestWorkloads_Mismatch(t *testing.T) {
	in := NewInput(8, "abc")
	in.RHS = in.RHS[:7]
	in.Reversed = "ab"

	_, err := addSlicesEager(in)
	assert.Assert(t, errors.Is(err, zipeq.ErrLengthMismatch))
	_, err = addSlicesLazy(in)
	var me *zipeq.MismatchError
	assert.Assert(t, errors.As(err, &me))
	assert.Equal(t, me.Short, zipeq.SideB)
	assert.Equal(t, me.Index, 7)
	_, err = addCharsLazy(in)
	assert.Assert(t, errors.Is(err, zipeq.ErrLengthMismatch))

	// The truncating baseline does not notice.
	_, err = addSlicesStd(in)
	assert.NilError(t, err)
	assert.Assert(t, is.Panics(func() { addCharsUnchecked(in) }))
}

func TestRun(t *testing.T) {
	o := smallOptions()
	o.Workloads = []string{"slices-eager", "chars-lazy", "slices-eager"}
	results, err := Run(context.Background(), o)
	assert.NilError(t, err)
	assert.Equal(t, len(results), 2)
	for _, r := range results {
		assert.Equal(t, r.Rounds, 2)
		assert.NilError(t, r.Err)
	}

	var buf bytes.Buffer
	Render(&buf, results)
	assert.Assert(t, is.Contains(buf.String(), "slices-eager"))
	assert.Assert(t, is.Contains(buf.String(), "Per op"))
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cause := errors.New("stop")
	cancel(cause)
	results, err := Run(ctx, smallOptions())
	assert.Assert(t, errors.Is(err, cause))
	assert.Equal(t, len(results), 1)
	assert.Equal(t, results[0].Rounds, 0)
}

func TestResult_PerOp(t *testing.T) {
	assert.Equal(t, Result{}.PerOp().Nanoseconds(), int64(0))
	assert.Equal(t, Result{Rounds: 4, Total: 8}.PerOp().Nanoseconds(), int64(2))
}

var sink float64

func benchmarkWorkload(b *testing.B, name string) {
	w, err := Lookup(name)
	if err != nil {
		b.Fatal(err)
	}
	o := options.Default()
	in := NewInput(o.Size, o.Text)
	b.ResetTimer()
	for range b.N {
		s, err := w.Run(in)
		if err != nil {
			b.Fatal(err)
		}
		sink = s
	}
}

func BenchmarkSlicesStd(b *testing.B)      { benchmarkWorkload(b, "slices-std") }
func BenchmarkSlicesEager(b *testing.B)    { benchmarkWorkload(b, "slices-eager") }
func BenchmarkSlicesLazy(b *testing.B)     { benchmarkWorkload(b, "slices-lazy") }
func BenchmarkCharsStd(b *testing.B)       { benchmarkWorkload(b, "chars-std") }
func BenchmarkCharsUnchecked(b *testing.B) { benchmarkWorkload(b, "chars-unchecked") }
func BenchmarkCharsLazy(b *testing.B)      { benchmarkWorkload(b, "chars-lazy") }
