package cmd

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// seedExtensions is the pool seeded file names draw from. The empty entry
// produces extensionless files; mixed case checks bucket lower-casing.
var seedExtensions = []string{".txt", ".json", ".jpg", ".PNG", ".tar.gz", ".go", ""}

// NewSeedCmd creates and returns the seed subcommand for the bucketsort CLI.
// It generates a tree of test files to sort.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		depth      int
		collisions int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a random test tree",
		Long: `Generate a directory tree of test files for bucketsort.

Files are spread over nested directories up to --depth levels deep, with a
mix of extensions, upper-case extensions and extensionless names. Each file
contains a single UUID line. A --collisions percentage of files are named
"same" so that several files race for one destination when sorted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Generating %d test files in %s\n", fileCount, outputPath)
			}
			stats, err := seedTree(outputPath, fileCount, depth, collisions)
			if err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully created %d files\n", stats.files)
				fmt.Fprintf(cmd.OutOrStdout(), "Files distributed across %d directories\n", stats.dirs)
				fmt.Fprintf(cmd.OutOrStdout(), "Colliding names: %d\n", stats.collisions)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 1000, "Number of files to generate")
	cmd.Flags().IntVarP(&depth, "depth", "d", 4, "Maximum directory depth")
	cmd.Flags().IntVar(&collisions, "collisions", 5, "Percentage of files given a colliding name")

	cmd.MarkFlagRequired("output")

	return cmd
}

type seedStats struct {
	files      int
	dirs       int
	collisions int
}

func seedTree(outputPath string, fileCount, depth, collisionPct int) (seedStats, error) {
	var stats seedStats
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}
	if depth < 0 {
		depth = 0
	}

	dirs := make(map[string]struct{})
	maxAttempts := fileCount*10 + 100
	for attempt := 0; stats.files < fileCount; attempt++ {
		if attempt >= maxAttempts {
			return stats, fmt.Errorf("created only %d of %d files; widen --depth or lower --collisions", stats.files, fileCount)
		}
		dirPath := outputPath
		for range randInt(int64(depth) + 1) {
			dirPath = filepath.Join(dirPath, fmt.Sprintf("dir-%02d", randInt(8)))
		}
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dirPath, err)
			continue
		}

		ext := seedExtensions[randInt(int64(len(seedExtensions)))]
		base := uuid.New().String()
		colliding := randInt(100) < int64(collisionPct)
		if colliding {
			base = "same"
		}
		filePath := filepath.Join(dirPath, base+ext)

		// Skip if file already exists
		if _, err := os.Stat(filePath); err == nil {
			continue
		}

		content := uuid.New().String() + "\n"
		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", filePath, err)
			continue
		}

		dirs[dirPath] = struct{}{}
		stats.files++
		if colliding {
			stats.collisions++
		}
	}
	stats.dirs = len(dirs)
	return stats, nil
}

func randInt(n int64) int64 {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0
	}
	return v.Int64()
}
