// Package divisors computes divisor lists and checks that a parallel
// computation agrees with a sequential one.
package divisors

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultNumbers is the benchmark input used by the CLI.
var DefaultNumbers = []int{128, 255, 99999, 10651060}

// Compute returns every divisor of n in ascending order, from 1 to n.
func Compute(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d: %w", n, ErrNonPositive)
	}
	var low, high []int
	for i := 1; i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	slices.Reverse(high)
	return append(low, high...), nil
}

// RunSequential computes the divisor list of each number in input order.
func RunSequential(numbers []int) ([][]int, error) {
	out := make([][]int, len(numbers))
	for i, n := range numbers {
		d, err := Compute(n)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// RunParallel computes the same mapping as RunSequential with one task per
// number, at most workers at a time. Results keep input order regardless of
// completion order. workers < 1 means one per CPU.
func RunParallel(ctx context.Context, numbers []int, workers int) ([][]int, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	out := make([][]int, len(numbers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range numbers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := Compute(n)
			if err != nil {
				return err
			}
			out[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Verify checks seq and par element-wise for the given input numbers. When
// one side is shorter, the first missing index is reported with a nil list
// for that side.
func Verify(numbers []int, seq, par [][]int) error {
	for i := range max(len(seq), len(par)) {
		var s, p []int
		if i < len(seq) {
			s = seq[i]
		}
		if i < len(par) {
			p = par[i]
		}
		if i < len(seq) && i < len(par) && slices.Equal(s, p) {
			continue
		}
		n := 0
		if i < len(numbers) {
			n = numbers[i]
		}
		return &MismatchError{Index: i, Number: n, Sequential: s, Parallel: p}
	}
	return nil
}

// Result holds both computations and how long each took.
type Result struct {
	Numbers        []int
	Sequential     [][]int
	Parallel       [][]int
	SequentialTime time.Duration
	ParallelTime   time.Duration
}

// Benchmark times RunSequential and RunParallel over numbers and verifies
// that they agree. A disagreement is returned as a *MismatchError alongside
// the partial Result.
func Benchmark(ctx context.Context, numbers []int, workers int) (Result, error) {
	res := Result{Numbers: numbers}

	start := time.Now()
	seq, err := RunSequential(numbers)
	if err != nil {
		return res, err
	}
	res.Sequential = seq
	res.SequentialTime = time.Since(start)

	start = time.Now()
	par, err := RunParallel(ctx, numbers, workers)
	if err != nil {
		return res, err
	}
	res.Parallel = par
	res.ParallelTime = time.Since(start)

	return res, Verify(numbers, seq, par)
}
