// Package util provides the filesystem building blocks bucketsort is made of.
//
// Key Components:
//
// Extension Buckets:
//   - BucketName maps a file name to its lower-cased extension, or "unknown"
//   - Buckets creates bucket directories lazily, once per bucket, and is safe
//     for concurrent use; creation is serialized per bucket on a striped mutex
//     chosen by hashing the bucket name
//
// Copying:
//   - CopyFile copies content, permission bits and timestamps through a
//     temporary file and an atomic rename
//   - CopyError records a per-file failure without aborting other work
//
// Traversal and Verification:
//   - Classify decides whether a directory entry is copied, walked or skipped
//   - CountBuckets tallies files per bucket without copying
//   - GetFileHash and GetHash provide SHA-256 content hashes
//
// Output:
//   - Logger, StdLogger and NullLogger for diagnostic output
//   - WriteJSONFile for machine-readable reports
package util
