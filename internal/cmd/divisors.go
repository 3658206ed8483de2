package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dendrascience/bucketsort/divisors"
	"github.com/spf13/cobra"
)

// NewDivisorsCmd creates and returns the divisors subcommand for the bucketsort CLI.
func NewDivisorsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "divisors [N...]",
		Short: "Compare sequential and parallel divisor computation",
		Long: `Compute the divisors of each number twice, once sequentially and once
in parallel, print how long each took, and fail if the results differ.

Without arguments the default list 128 255 99999 10651060 is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers, err := parseNumbers(args)
			if err != nil {
				return err
			}
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			return runDivisors(ctx, cmd, *opts, numbers)
		},
	}
}

func parseNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return divisors.DefaultNumbers, nil
	}
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid number %q: %w", a, divisors.ErrNonPositive)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func runDivisors(ctx context.Context, cmd *cobra.Command, opts globalOptions, numbers []int) error {
	out := cmd.OutOrStdout()
	res, err := divisors.Benchmark(ctx, numbers, opts.workers)

	if res.Sequential != nil {
		fmt.Fprintf(out, "Sync time: %s\n", res.SequentialTime)
	}
	if res.Parallel != nil {
		fmt.Fprintf(out, "Parallel time: %s\n", res.ParallelTime)
	}

	var mismatch *divisors.MismatchError
	if errors.As(err, &mismatch) {
		return fmt.Errorf("sequential and parallel results disagree: %w", err)
	}
	if err != nil {
		return err
	}

	if opts.verbose {
		for i, n := range numbers {
			fmt.Fprintf(out, "  %d: %v\n", n, res.Sequential[i])
		}
	}
	return nil
}
