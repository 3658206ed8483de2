package util

import (
	"errors"
	"fmt"
)

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Bucket errors
	ErrEmptyTarget = errors.New("target directory must not be empty")
)

// CopyError records a single file that could not be copied into its bucket.
type CopyError struct {
	Path string // source path
	Dest string // intended destination, empty if it was never resolved
	Err  error
}

func (e *CopyError) Error() string {
	if e.Dest == "" {
		return fmt.Sprintf("copy %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("copy %s -> %s: %v", e.Path, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
