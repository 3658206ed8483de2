package util

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestBucketName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple extension", input: "a.txt", expected: "txt"},
		{name: "upper case extension", input: "photo.JPG", expected: "jpg"},
		{name: "double extension keeps last", input: "backup.tar.gz", expected: "gz"},
		{name: "no extension", input: "Makefile", expected: UnknownBucket},
		{name: "dot file", input: ".bashrc", expected: UnknownBucket},
		{name: "trailing dot", input: "weird.", expected: UnknownBucket},
		{name: "dot file with extension", input: ".config.yaml", expected: "yaml"},
		{name: "path is reduced to base", input: filepath.Join("some.dir", "README"), expected: UnknownBucket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketName(tt.input); got != tt.expected {
				t.Errorf("BucketName(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewBuckets_EmptyTarget(t *testing.T) {
	if _, err := NewBuckets(""); err != ErrEmptyTarget {
		t.Errorf("NewBuckets(\"\") error = %v, want %v", err, ErrEmptyTarget)
	}
}

func TestBuckets_EnsureIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	// A bucket left over from an earlier run must not be an error.
	if err := os.Mkdir(filepath.Join(tmpDir, "txt"), 0755); err != nil {
		t.Fatal(err)
	}

	b, err := NewBuckets(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		dir, err := b.Ensure("txt")
		if err != nil {
			t.Fatalf("Ensure() error = %v", err)
		}
		if dir != filepath.Join(tmpDir, "txt") {
			t.Errorf("Ensure() = %s, want %s", dir, filepath.Join(tmpDir, "txt"))
		}
	}
}

func TestBuckets_EnsureConcurrent(t *testing.T) {
	tmpDir := t.TempDir()
	b, err := NewBuckets(tmpDir)
	if err != nil {
		t.Fatal(err)
	}

	names := []string{"txt", "jpg", "png", "unknown"}
	var wg sync.WaitGroup
	errs := make(chan error, 64*len(names))
	for i := range 64 * len(names) {
		wg.Add(1)
		go func(bucket string) {
			defer wg.Done()
			if _, err := b.Ensure(bucket); err != nil {
				errs <- err
			}
		}(names[i%len(names)])
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Ensure() error = %v", err)
	}
	for _, name := range names {
		info, err := os.Stat(filepath.Join(tmpDir, name))
		if err != nil || !info.IsDir() {
			t.Errorf("bucket %s missing after concurrent Ensure(): %v", name, err)
		}
	}

	got := b.Names()
	want := []string{"jpg", "png", "txt", "unknown"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStripeFor_InRange(t *testing.T) {
	for _, bucket := range []string{"", "txt", "unknown", "a-very-long-extension-name"} {
		s := stripeFor(bucket)
		if s < 0 || s >= bucketStripes {
			t.Errorf("stripeFor(%q) = %d, out of range", bucket, s)
		}
		if again := stripeFor(bucket); again != s {
			t.Errorf("stripeFor(%q) not stable: %d then %d", bucket, s, again)
		}
	}
}
