// Package cmd provides the command-line interface implementation for bucketsort.
//
// This package contains all the subcommand implementations for the bucketsort CLI tool.
// It uses the Cobra library for command structure and Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: Sorts --source into --target, then runs the divisor benchmark
//   - sort: Extension bucket sorting on its own
//   - divisors: Sequential versus parallel divisor benchmark
//   - count: Files per extension bucket, without copying
//   - seed: Random test tree generation
//   - validate: Sorted target consistency checking
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command.
package cmd
