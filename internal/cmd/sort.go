package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/dendrascience/bucketsort/sorter"
	"github.com/dendrascience/bucketsort/util"
	"github.com/spf13/cobra"
)

// NewSortCmd creates and returns the sort subcommand for the bucketsort CLI.
func NewSortCmd(opts *globalOptions) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "sort SOURCE [TARGET]",
		Short: "Sort a directory tree into extension buckets",
		Long: `Copy every file under SOURCE into TARGET/<ext>/, where <ext> is the
lower-cased file extension, or "unknown" for files without one.

TARGET defaults to "dist" and is created if missing. Files sharing a name and
extension overwrite one another; the last copy to finish wins. A file that
fails to copy is reported and does not stop the rest of the sort.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := sorter.DefaultTarget
			if len(args) > 1 {
				target = args[1]
			}
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			_, err := runSort(ctx, cmd, *opts, args[0], target, reportPath)
			return err
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Write a JSON summary of the sort to this file")

	return cmd
}

func runSort(ctx context.Context, cmd *cobra.Command, opts globalOptions, source, target, reportPath string) (*sorter.Report, error) {
	switch pathOverlap(source, target) {
	case overlapTargetInSource:
		log.Printf("Warning: target %s is inside source %s; it is skipped while walking", target, source)
	case overlapSourceInTarget:
		log.Printf("Warning: source %s is inside target %s; files already in a matching bucket are copied onto themselves", source, target)
	}

	s := sorter.New(
		sorter.WithWorkers(opts.workers),
		sorter.WithLogger(util.NewStdLogger(opts.verbose)),
	)
	if opts.verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Sorting %s into %s with %d workers\n", source, target, s.Workers())
	}

	report, err := s.Sort(ctx, source, target)
	if report == nil {
		return nil, err
	}
	printReport(cmd, report)
	if reportPath != "" {
		if saveErr := report.Save(reportPath); saveErr != nil {
			log.Printf("Warning: Failed to write report: %v", saveErr)
		}
	}
	return report, err
}

func printReport(cmd *cobra.Command, r *sorter.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sorted %d files into %d buckets in %s (%s)\n",
		r.Copied, len(r.Buckets), r.Target, r.Elapsed.Round(time.Millisecond))
	if len(r.Buckets) > 0 {
		fmt.Fprintf(out, "  Buckets: %s\n", strings.Join(r.Buckets, ", "))
	}
	if r.Skipped > 0 {
		fmt.Fprintf(out, "  Skipped entries: %d\n", r.Skipped)
	}
	if len(r.Failures) > 0 {
		fmt.Fprintf(out, "%d entries failed:\n", len(r.Failures))
		for _, f := range r.Failures {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}
}

type overlap int

const (
	overlapNone overlap = iota
	overlapTargetInSource
	overlapSourceInTarget
)

// pathOverlap reports whether target lies strictly inside source or source
// strictly inside target. Equal paths are left to the sorter to reject.
func pathOverlap(source, target string) overlap {
	absSrc, err := filepath.Abs(source)
	if err != nil {
		return overlapNone
	}
	absDst, err := filepath.Abs(target)
	if err != nil {
		return overlapNone
	}
	if absSrc == absDst {
		return overlapNone
	}
	sep := string(filepath.Separator)
	switch {
	case strings.HasPrefix(absDst+sep, absSrc+sep):
		return overlapTargetInSource
	case strings.HasPrefix(absSrc+sep, absDst+sep):
		return overlapSourceInTarget
	}
	return overlapNone
}
