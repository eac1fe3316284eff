// Package filesystem provides filesystem implementations for scaffold.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed filesystem used for
// in-memory tests.
package filesystem
