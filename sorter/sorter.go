package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dendrascience/bucketsort/util"
)

// DefaultTarget is the target directory used when none is given.
const DefaultTarget = "dist"

// ErrSameDirectory is returned when source and target resolve to the same path.
var ErrSameDirectory = errors.New("source and target are the same directory")

// Option configures a Sorter.
type Option func(*Sorter)

// WithWorkers sets the size of the worker pool. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *Sorter) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger used for per-file tracing and failures.
func WithLogger(l util.Logger) Option {
	return func(s *Sorter) {
		if l != nil {
			s.log = l
		}
	}
}

// Sorter copies files into extension buckets. A Sorter holds no per-run
// state and may be reused, including concurrently.
type Sorter struct {
	workers int
	log     util.Logger
}

// New returns a Sorter with one worker per CPU unless configured otherwise.
func New(opts ...Option) *Sorter {
	s := &Sorter{
		workers: runtime.NumCPU(),
		log:     util.NullLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workers returns the configured pool size.
func (s *Sorter) Workers() int {
	return s.workers
}

// Sort copies every file under source into target/<ext>/ using a default Sorter.
func Sort(ctx context.Context, source, target string) (*Report, error) {
	return New().Sort(ctx, source, target)
}

// Sort copies every file under source into target/<ext>/.
//
// Setup failures return a nil Report. Otherwise the Report is always
// returned, and the error is either ctx.Err() or the joined per-file
// failures (each a *util.CopyError).
func (s *Sorter) Sort(ctx context.Context, source, target string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if target == "" {
		target = DefaultTarget
	}
	start := time.Now()

	skip, err := nestedTarget(source, target)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s: %w", source, util.ErrExpectedDirectory)
	}
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", source, err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create target directory %s: %w", target, err)
	}
	buckets, err := util.NewBuckets(target)
	if err != nil {
		return nil, err
	}

	r := &run{
		ctx:     ctx,
		log:     s.log,
		skip:    skip,
		buckets: buckets,
		queue:   newQueue(),
	}
	r.enqueueChildren(source, entries)
	r.wait(s.workers)

	report := r.stats.report(source, target, buckets, time.Since(start))
	s.log.Info("sorted %d files into %d buckets in %s (%d failed, %d skipped)",
		report.Copied, len(report.Buckets), report.Elapsed, len(report.Failures), report.Skipped)
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, report.Err()
}

// nestedTarget returns the path of target as seen while walking source, or
// "" if target does not live inside source.
func nestedTarget(source, target string) (string, error) {
	absSrc, err := filepath.Abs(source)
	if err != nil {
		return "", err
	}
	absDst, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	if absSrc == absDst {
		return "", ErrSameDirectory
	}
	rel, err := filepath.Rel(absSrc, absDst)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", nil
	}
	return filepath.Join(source, rel), nil
}

type run struct {
	ctx     context.Context
	log     util.Logger
	skip    string
	buckets *util.Buckets
	queue   *queue
	pending sync.WaitGroup
	stats   collector
}

// wait starts the pool and blocks until every queued task, including tasks
// queued by other tasks, has finished.
func (r *run) wait(workers int) {
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go r.worker(&wg)
	}
	go func() {
		r.pending.Wait()
		r.queue.close()
	}()
	wg.Wait()
}

func (r *run) worker(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		t, ok := r.queue.pop()
		if !ok {
			return
		}
		r.handle(t)
		r.pending.Done()
	}
}

func (r *run) handle(t task) {
	if r.ctx.Err() != nil {
		return
	}
	switch t.kind {
	case util.KindDir:
		entries, err := os.ReadDir(t.path)
		if err != nil {
			r.log.Error("failed to read directory %s: %v", t.path, err)
			r.stats.fail(t.path, "", err)
			return
		}
		r.enqueueChildren(t.path, entries)
	case util.KindFile:
		r.copy(t.path)
	}
}

func (r *run) copy(path string) {
	name := filepath.Base(path)
	dir, err := r.buckets.Ensure(util.BucketName(name))
	if err != nil {
		r.log.Error("failed to create bucket for %s: %v", path, err)
		r.stats.fail(path, "", err)
		return
	}
	dest := filepath.Join(dir, name)
	if err := util.CopyFile(path, dest); err != nil {
		r.log.Error("failed to copy %s: %v", path, err)
		r.stats.fail(path, dest, err)
		return
	}
	r.stats.copied.Add(1)
	r.log.Verbose("copied %s -> %s", path, dest)
}

func (r *run) enqueueChildren(dir string, entries []fs.DirEntry) {
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		kind, err := util.Classify(path, e)
		if err != nil {
			r.stats.fail(path, "", err)
			continue
		}
		if kind == util.KindSkip || (kind == util.KindDir && path == r.skip) {
			r.stats.skipped.Add(1)
			r.log.Verbose("skipping %s", path)
			continue
		}
		r.pending.Add(1)
		r.queue.push(task{path: path, kind: kind})
	}
}
