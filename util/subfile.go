package util

import (
	"io/fs"
	"os"
	"path/filepath"
)

// EntryKind classifies a directory entry the way the sorter treats it.
type EntryKind int

const (
	KindSkip EntryKind = iota
	KindFile
	KindDir
)

// Classify reports whether the entry at path is a file to copy, a directory
// to descend into, or something to skip. Symlinks to regular files count as
// files; symlinks to directories are skipped so traversal cannot cycle.
func Classify(path string, d fs.DirEntry) (EntryKind, error) {
	switch t := d.Type(); {
	case t.IsDir():
		return KindDir, nil
	case t.IsRegular():
		return KindFile, nil
	case t&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return KindSkip, err
		}
		if info.Mode().IsRegular() {
			return KindFile, nil
		}
	}
	return KindSkip, nil
}

// CountBuckets walks path and counts how many files would land in each
// extension bucket. Entries that cannot be classified, such as dangling
// symlinks, are not counted. If progress is non-nil it is called with the running
// total after every file.
func CountBuckets(path string, progress func(total int)) (map[string]int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, ErrExpectedDirectory
	}

	counts := make(map[string]int)
	total := 0
	err = filepath.WalkDir(path, func(subpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		kind, err := Classify(subpath, d)
		if err != nil || kind != KindFile {
			return nil
		}
		counts[BucketName(d.Name())]++
		total++
		if progress != nil {
			progress(total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
