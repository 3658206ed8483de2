package util

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyFile copies the regular file at src to dst, carrying over permission
// bits and access/modification times where the platform allows.
//
// The data is first written to a temporary file next to dst and then renamed
// over it, so a reader never observes a partially written dst. When several
// copies race for the same dst, the last rename wins.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return ErrExpectedFile
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".bucketsort-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = copyMetadata(tmpName, info); err != nil {
		return err
	}
	if err = os.Rename(tmpName, dst); err != nil {
		return err
	}
	committed = true
	return nil
}

func copyMetadata(path string, info os.FileInfo) error {
	if err := os.Chmod(path, info.Mode().Perm()); err != nil {
		return err
	}
	mtime := info.ModTime()
	atime := accessTime(info)
	if atime.IsZero() {
		atime = mtime
	}
	if err := os.Chtimes(path, atime, mtime); err != nil && !errors.Is(err, os.ErrPermission) {
		return err
	}
	return nil
}

// accessTime is overridden per platform; the fallback has no access time.
var accessTime = func(os.FileInfo) time.Time { return time.Time{} }
