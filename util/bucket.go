package util

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/taigrr/colorhash"
)

// UnknownBucket is the bucket used for files without an extension.
const UnknownBucket = "unknown"

// bucketStripes is the number of mutexes guarding bucket creation.
const bucketStripes = 64

// BucketName returns the extension bucket for a file name: the lower-cased
// final suffix without its dot. Names without a usable suffix, including
// dot-files like ".bashrc" and names ending in a bare dot, map to UnknownBucket.
func BucketName(name string) string {
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	if ext == "" || ext == "." || ext == name {
		return UnknownBucket
	}
	return strings.ToLower(ext[1:])
}

// BucketPath joins the target directory with the bucket for name.
func BucketPath(target, name string) string {
	return filepath.Join(target, BucketName(name))
}

// Buckets tracks which bucket directories under a target already exist.
// It is safe for concurrent use; the zero value is not, use NewBuckets.
type Buckets struct {
	target  string
	created sync.Map // bucket name -> struct{}
	stripes [bucketStripes]sync.Mutex
}

// NewBuckets returns a bucket registry rooted at target.
func NewBuckets(target string) (*Buckets, error) {
	if target == "" {
		return nil, ErrEmptyTarget
	}
	return &Buckets{target: target}, nil
}

// Ensure creates the named bucket directory if it is missing and returns its
// path. Concurrent calls for the same bucket serialize on one stripe; a
// bucket that already exists on disk is not an error.
func (b *Buckets) Ensure(bucket string) (string, error) {
	dir := filepath.Join(b.target, bucket)
	if _, ok := b.created.Load(bucket); ok {
		return dir, nil
	}

	mu := &b.stripes[stripeFor(bucket)]
	mu.Lock()
	defer mu.Unlock()

	if _, ok := b.created.Load(bucket); ok {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	b.created.Store(bucket, struct{}{})
	return dir, nil
}

// Names returns the buckets created or confirmed through this registry, sorted.
func (b *Buckets) Names() []string {
	var names []string
	b.created.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}

func stripeFor(bucket string) int {
	return int(uint(colorhash.HashString(bucket)) % bucketStripes)
}
