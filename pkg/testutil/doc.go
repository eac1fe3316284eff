// Package testutil provides utilities for testing scaffold components.
//
// Key components:
//   - CreateFile / CreateDir / WriteTree: set up template trees on disk
//   - ReadTree / AssertTree: snapshot a generated project and diff it with go-cmp
//   - FailingFS: a types.FS that fails at the N-th mutating call, for
//     all-or-nothing tests
//   - NewTestFS: an in-memory types.FS
package testutil
