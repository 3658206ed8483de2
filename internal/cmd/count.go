package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dendrascience/bucketsort/util"
	"github.com/spf13/cobra"
)

// NewCountCmd creates and returns the count subcommand for the bucketsort CLI.
// It reports how many files would land in each extension bucket.
func NewCountCmd() *cobra.Command {
	var (
		path         string
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "count [PATH]",
		Short: "Count files per extension bucket",
		Long: `Count the files in a directory tree, grouped by the extension bucket
each would be sorted into. Nothing is copied.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runCount(cmd, path, showProgress)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "./", "Path to count files in")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Show progress every 10,000 files")

	return cmd
}

func runCount(cmd *cobra.Command, path string, showProgress bool) error {
	out := cmd.OutOrStdout()
	var progress func(int)
	if showProgress {
		progress = func(total int) {
			if total%10000 == 0 {
				fmt.Fprintf(out, "Progress: %d files counted\n", total)
			}
		}
	}

	counts, err := util.CountBuckets(path, progress)
	if err != nil {
		return fmt.Errorf("error counting files: %w", err)
	}

	total := 0
	for _, bucket := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(out, "%-12s %d\n", bucket, counts[bucket])
		total += counts[bucket]
	}
	fmt.Fprintf(out, "Total files: %d\n", total)
	return nil
}
