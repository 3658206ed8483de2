package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/dendrascience/bucketsort/divisors"
	"github.com/dendrascience/bucketsort/sorter"
	"github.com/dendrascience/bucketsort/version"
	"github.com/spf13/cobra"
)

// globalOptions are persistent flags shared by every subcommand.
type globalOptions struct {
	workers int
	timeout time.Duration
	verbose bool
}

// NewRootCmd creates and returns the root cobra command for the bucketsort CLI.
// Run on its own it sorts --source into --target and then runs the divisor
// benchmark; subcommands run each piece separately.
func NewRootCmd() *cobra.Command {
	var (
		opts       globalOptions
		source     string
		target     string
		reportPath string
	)

	rootCmd := &cobra.Command{
		Use:   "bucketsort",
		Short: "bucketsort - sort a directory tree into per-extension buckets",
		Long: `bucketsort copies every file under a source directory into
subdirectories of a target directory named after each file's extension.
Files without an extension go to "unknown". Subdirectories are walked
concurrently by a bounded pool of workers.

After sorting, the divisor benchmark computes the divisors of a fixed list
of numbers sequentially and in parallel and checks that both agree.

Use subcommands to run each piece on its own:
  - sort: Sort a directory tree into extension buckets
  - divisors: Run the divisor benchmark
  - count: Count files per extension bucket without copying
  - seed: Generate a random test tree
  - validate: Check a sorted target against its source`,
		Version: version.GetFullVersion(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			return runAll(ctx, cmd, opts, source, target, reportPath)
		},
	}

	rootCmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", 0, "Worker pool size (default: number of CPUs)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Abort after this long (0 disables the deadline)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().StringVarP(&source, "source", "s", "", "Source directory with files to sort (required)")
	rootCmd.Flags().StringVarP(&target, "target", "t", sorter.DefaultTarget, "Target directory to save sorted files")
	rootCmd.Flags().StringVarP(&reportPath, "report", "r", "", "Write a JSON summary of the sort to this file")
	rootCmd.MarkFlagRequired("source")

	groupUtilities := "utilities"
	groupSorting := "sorting"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupSorting,
		Title: "Sorting and Benchmarks",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	sortCmd := NewSortCmd(&opts)
	divisorsCmd := NewDivisorsCmd(&opts)
	countCmd := NewCountCmd()
	seedCmd := NewSeedCmd()
	validateCmd := NewValidateCmd()

	sortCmd.GroupID = groupSorting
	divisorsCmd.GroupID = groupSorting
	countCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	validateCmd.GroupID = groupUtilities

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(divisorsCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}

// commandContext derives the command context, applying --timeout if set.
func (o globalOptions) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.timeout > 0 {
		return context.WithTimeout(ctx, o.timeout)
	}
	return context.WithCancel(ctx)
}

// runAll reproduces the original single-shot behaviour: sort, then benchmark.
// Copy failures are reported but do not prevent the benchmark from running.
func runAll(ctx context.Context, cmd *cobra.Command, opts globalOptions, source, target, reportPath string) error {
	report, sortErr := runSort(ctx, cmd, opts, source, target, reportPath)
	if report == nil {
		return sortErr
	}
	if err := runDivisors(ctx, cmd, opts, divisors.DefaultNumbers); err != nil {
		return err
	}
	if sortErr != nil {
		return fmt.Errorf("sort finished with errors: %w", sortErr)
	}
	return nil
}
