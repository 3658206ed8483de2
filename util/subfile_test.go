package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tmpDir := t.TempDir()
	os.WriteFile(filepath.Join(tmpDir, "file.txt"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(tmpDir, "dir"), 0755)
	os.Symlink(filepath.Join(tmpDir, "file.txt"), filepath.Join(tmpDir, "filelink"))
	os.Symlink(filepath.Join(tmpDir, "dir"), filepath.Join(tmpDir, "dirlink"))
	os.Symlink(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dangling"))

	expected := map[string]EntryKind{
		"file.txt": KindFile,
		"dir":      KindDir,
		"filelink": KindFile,
		"dirlink":  KindSkip,
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		kind, err := Classify(filepath.Join(tmpDir, e.Name()), e)
		if e.Name() == "dangling" {
			if err == nil {
				t.Error("Classify(dangling) expected error")
			}
			continue
		}
		if err != nil {
			t.Errorf("Classify(%s) error = %v", e.Name(), err)
			continue
		}
		if kind != expected[e.Name()] {
			t.Errorf("Classify(%s) = %v, expected %v", e.Name(), kind, expected[e.Name()])
		}
	}
}

func TestCountBuckets(t *testing.T) {
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "sub", "deeper"), 0755)
	files := []string{
		"a.txt",
		"b.TXT",
		"README",
		filepath.Join("sub", "c.jpg"),
		filepath.Join("sub", "deeper", "d.txt"),
	}
	for _, f := range files {
		os.WriteFile(filepath.Join(tmpDir, f), []byte(f), 0644)
	}

	var calls int
	counts, err := CountBuckets(tmpDir, func(total int) { calls = total })
	if err != nil {
		t.Fatalf("CountBuckets() error = %v", err)
	}

	expected := map[string]int{"txt": 3, "jpg": 1, UnknownBucket: 1}
	if len(counts) != len(expected) {
		t.Errorf("CountBuckets() = %v, expected %v", counts, expected)
	}
	for bucket, n := range expected {
		if counts[bucket] != n {
			t.Errorf("CountBuckets()[%s] = %d, expected %d", bucket, counts[bucket], n)
		}
	}
	if calls != len(files) {
		t.Errorf("progress last reported %d, expected %d", calls, len(files))
	}
}

func TestCountBuckets_NotDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if _, err := CountBuckets(file, nil); err != ErrExpectedDirectory {
		t.Errorf("CountBuckets(file) error = %v, want %v", err, ErrExpectedDirectory)
	}
}
