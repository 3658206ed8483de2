package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/dendrascience/bucketsort/util"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the bucketsort CLI.
// It checks that a sorted target holds a copy of every source file.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate SOURCE TARGET",
		Short: "Check a sorted target against its source",
		Long: `Validate that every file under SOURCE has a copy in its extension bucket
under TARGET with matching content.

When several source files share a destination, the copy only has to match
one of them, since the last copy to finish wins.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runValidate(cmd, args[0], args[1], verbose)
		},
	}
}

func runValidate(cmd *cobra.Command, source, target string, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Validating %s against %s\n", target, source)
	}

	checked, problems, err := validateTree(source, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nValidation complete:\n")
	fmt.Fprintf(out, "  Destinations checked: %d\n", checked)
	fmt.Fprintf(out, "  Total errors: %d\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	if len(problems) > 0 {
		return fmt.Errorf("validation found %d errors", len(problems))
	}
	return nil
}

// validateTree groups source files by destination and checks each
// destination against the hashes of the files that map to it.
func validateTree(source, target string) (checked int, problems []string, err error) {
	skip, _ := filepath.Abs(target)
	expected := make(map[string][]string) // destination -> source hashes

	err = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, _ := filepath.Abs(path); abs == skip {
				return filepath.SkipDir
			}
			return nil
		}
		kind, err := util.Classify(path, d)
		if err != nil {
			return err
		}
		if kind != util.KindFile {
			return nil
		}
		hash, err := util.GetFileHash(path)
		if err != nil {
			return err
		}
		dest := filepath.Join(util.BucketPath(target, d.Name()), d.Name())
		expected[dest] = append(expected[dest], hash)
		return nil
	})
	if err != nil {
		return 0, nil, fmt.Errorf("error walking source directory: %w", err)
	}

	for dest, hashes := range expected {
		checked++
		got, err := util.GetFileHash(dest)
		if os.IsNotExist(err) {
			problems = append(problems, fmt.Sprintf("missing %s", dest))
			continue
		}
		if err != nil {
			problems = append(problems, fmt.Sprintf("unreadable %s: %v", dest, err))
			continue
		}
		if !slices.Contains(hashes, got) {
			problems = append(problems, fmt.Sprintf("content mismatch %s", dest))
		}
	}
	slices.Sort(problems)
	return checked, problems, nil
}
