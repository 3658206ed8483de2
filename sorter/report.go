package sorter

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dendrascience/bucketsort/util"
	"github.com/dendrascience/bucketsort/version"
)

// Report summarizes a finished sort.
type Report struct {
	Source   string
	Target   string
	Copied   int
	Skipped  int
	Buckets  []string
	Failures []*util.CopyError
	Elapsed  time.Duration
}

// Err joins every per-file failure, or returns nil if there were none.
func (r *Report) Err() error {
	if r == nil || len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

type collector struct {
	copied   atomic.Int64
	skipped  atomic.Int64
	mu       sync.Mutex
	failures []*util.CopyError
}

func (c *collector) fail(path, dest string, err error) {
	c.mu.Lock()
	c.failures = append(c.failures, &util.CopyError{Path: path, Dest: dest, Err: err})
	c.mu.Unlock()
}

func (c *collector) report(source, target string, buckets *util.Buckets, elapsed time.Duration) *Report {
	c.mu.Lock()
	failures := slices.Clone(c.failures)
	c.mu.Unlock()
	slices.SortFunc(failures, func(a, b *util.CopyError) int {
		return strings.Compare(a.Path, b.Path)
	})
	return &Report{
		Source:   source,
		Target:   target,
		Copied:   int(c.copied.Load()),
		Skipped:  int(c.skipped.Load()),
		Buckets:  buckets.Names(),
		Failures: failures,
		Elapsed:  elapsed,
	}
}

// Summary is the JSON form of a Report.
type Summary struct {
	Version   string            `json:"version"`
	Source    string            `json:"source"`
	Target    string            `json:"target"`
	Copied    int               `json:"copied"`
	Skipped   int               `json:"skipped"`
	Buckets   []string          `json:"buckets"`
	Failures  map[string]string `json:"failures,omitempty"`
	ElapsedMS int64             `json:"elapsed_ms"`
}

// Summary converts the report for serialization. Failures are keyed by
// source path.
func (r *Report) Summary() Summary {
	s := Summary{
		Version:   version.GetVersion(),
		Source:    r.Source,
		Target:    r.Target,
		Copied:    r.Copied,
		Skipped:   r.Skipped,
		Buckets:   r.Buckets,
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
	if len(r.Failures) > 0 {
		s.Failures = make(map[string]string, len(r.Failures))
		for _, f := range r.Failures {
			s.Failures[f.Path] = f.Err.Error()
		}
	}
	return s
}

// Save writes the report summary as JSON to path.
func (r *Report) Save(path string) error {
	return util.WriteJSONFile(path, r.Summary())
}
