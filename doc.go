// Package main provides the bucketsort command-line interface.
//
// bucketsort copies every file of a directory tree into per-extension bucket
// directories, walking the tree with a bounded pool of workers. It also runs
// a small benchmark comparing sequential and parallel divisor computation.
//
// The main binary supports multiple subcommands:
//   - sort: Sort a directory tree into extension buckets
//   - divisors: Run the divisor benchmark
//   - count: Count files per extension bucket
//   - seed: Generate a random test tree
//   - validate: Check a sorted target against its source
package main
