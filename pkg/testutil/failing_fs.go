package testutil

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/arthur-debert/scaffold/pkg/types"
)

// ErrInjected is returned by FailingFS at the configured call
var ErrInjected = errors.New("injected failure")

// FailingFS wraps a types.FS and fails the N-th mutating call (1-based).
// Every other call passes through, so cleanup after the failure still works.
// With FailAt zero it only counts calls.
type FailingFS struct {
	types.FS

	FailAt int

	mu    sync.Mutex
	calls int
	ops   []string
}

// NewFailingFS wraps inner, failing the failAt-th mutating call
func NewFailingFS(inner types.FS, failAt int) *FailingFS {
	return &FailingFS{FS: inner, FailAt: failAt}
}

// Calls returns how many mutating calls were made
func (f *FailingFS) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Ops returns the mutating calls made, as "op path"
func (f *FailingFS) Ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ops...)
}

func (f *FailingFS) tick(op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ops = append(f.ops, op+" "+path)
	if f.calls == f.FailAt {
		return &fs.PathError{Op: op, Path: path, Err: ErrInjected}
	}
	return nil
}

func (f *FailingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.tick("write", name); err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FailingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.tick("mkdir", path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FailingFS) Remove(name string) error {
	if err := f.tick("remove", name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *FailingFS) RemoveAll(path string) error {
	if err := f.tick("removeall", path); err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

func (f *FailingFS) Rename(oldpath, newpath string) error {
	if err := f.tick("rename", oldpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}
