// Package sorter copies the files of a directory tree into per-extension
// bucket directories.
//
// A Sorter runs one bounded pool of workers over an explicit queue of pending
// tasks. Listing a directory turns each child into a task: files become copy
// tasks, subdirectories become listing tasks. Every task is counted when it
// is queued and released when it finishes, so Sort returns only after the
// whole tree has been processed, and a directory never holds a worker while
// its children run.
//
// Bucket directories are the only shared state. They are created through a
// util.Buckets registry, which makes creation idempotent and safe when many
// workers discover the same extension at once.
//
// Failures are collected, not fatal. A file that cannot be copied, or a
// subdirectory that cannot be listed, is recorded in the Report and its
// siblings carry on. Only setup problems (missing source, uncreatable
// target) and context cancellation abort a sort.
//
// Two source files with the same name and extension map to the same
// destination. Each copy is written to a temporary file and renamed into
// place, so the bucket ends up holding one complete copy: whichever rename
// ran last.
package sorter
