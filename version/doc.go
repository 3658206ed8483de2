// Package version provides version information and build metadata for bucketsort.
//
// Version, Commit and Date may be injected at link time:
//
//	-ldflags "-X github.com/dendrascience/bucketsort/version.Version=v1.0.0"
//
// When they are not, the values recorded by the Go toolchain in the binary's
// build info are used, falling back to development defaults.
package version
