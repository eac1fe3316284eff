// Package types defines the interfaces shared across scaffold packages.
// It currently holds FS, the filesystem abstraction the materializer
// writes through, so that tests can swap in an in-memory or failing
// implementation.
package types
