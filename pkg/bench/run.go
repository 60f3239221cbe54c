// Package bench measures the checked zippers against an ordinary truncating zip.
//
// This file contains the runner and the result table.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/norio-nomura/zipeq/pkg/options"
	"github.com/norio-nomura/zipeq/pkg/xiter"
	"github.com/olekukonko/tablewriter"
)

// Result is the outcome of running one workload.
type Result struct {
	Name     string
	Rounds   int
	Total    time.Duration
	Checksum float64
	Err      error
}

// PerOp returns the mean duration of one round.
func (r Result) PerOp() time.Duration {
	if r.Rounds == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Rounds)
}

func (r Result) failed() bool { return r.Err != nil }

// Run executes the workloads named in o, each o.Rounds times, on a fresh Input of o.Size.
// It stops early when ctx is done and returns the results gathered so far.
func Run(ctx context.Context, o *options.Options) ([]Result, error) {
	names := slices.Collect(xiter.Dedupe(slices.Values(o.Workloads)))
	workloads := make([]Workload, 0, len(names))
	for _, name := range names {
		w, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		workloads = append(workloads, w)
	}

	in := NewInput(o.Size, o.Text)
	results := make([]Result, 0, len(workloads))
	for _, w := range workloads {
		slog.Debug("Running workload", "name", w.Name, "rounds", o.Rounds, "size", o.Size)
		r, err := runWorkload(ctx, w, in, o.Rounds)
		results = append(results, r)
		if err != nil {
			return results, err
		}
		if r.Err != nil {
			slog.Error("Workload failed", "name", w.Name, slog.Any("err", r.Err))
			continue
		}
		slog.Info("Workload finished", "name", w.Name, "total", r.Total, "per_op", r.PerOp())
	}

	failed := slices.Collect(xiter.Map(xiter.Filter(slices.Values(results), Result.failed), func(r Result) error {
		return fmt.Errorf("%s: %w", r.Name, r.Err)
	}))
	return results, errors.Join(failed...)
}

func runWorkload(ctx context.Context, w Workload, in *Input, rounds int) (Result, error) {
	r := Result{Name: w.Name}
	start := time.Now()
	for range rounds {
		if err := ctx.Err(); err != nil {
			r.Total = time.Since(start)
			return r, context.Cause(ctx)
		}
		sum, err := w.Run(in)
		r.Rounds++
		if err != nil {
			r.Err = err
			break
		}
		r.Checksum = sum
	}
	r.Total = time.Since(start)
	return r, nil
}

// Render writes results as a table.
func Render(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Workload", "Rounds", "Total", "Per op", "Checksum", "Error"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		table.Append([]string{
			r.Name,
			strconv.Itoa(r.Rounds),
			r.Total.String(),
			r.PerOp().String(),
			strconv.FormatFloat(r.Checksum, 'f', -1, 64),
			errText,
		})
	}
	table.Render()
}
