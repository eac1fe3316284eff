package materialize

import (
	"context"
	"path"
	"path/filepath"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/types"
)

// Stager writes plan entries beneath an existing staging directory.
// Entries arrive in plan order, so parents precede their children.
type Stager interface {
	Stage(ctx context.Context, dir string, entries []PlanEntry) error
}

// FSStager stages through a types.FS
type FSStager struct {
	fs types.FS
}

// NewFSStager creates a stager writing through fsys
func NewFSStager(fsys types.FS) *FSStager {
	return &FSStager{fs: fsys}
}

// Stage writes every entry, checking ctx between entries
func (s *FSStager) Stage(ctx context.Context, dir string, entries []PlanEntry) error {
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		target := filepath.Join(dir, filepath.FromSlash(path.Clean(e.Path)))
		if e.IsDir {
			if err := s.fs.MkdirAll(target, e.Mode); err != nil {
				return errors.Wrapf(err, errors.ErrIOFailure, "failed to create directory %s", e.Path).
					WithDetail("path", e.Path)
			}
			continue
		}
		if err := s.fs.WriteFile(target, e.Content, e.Mode); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", e.Path).
				WithDetail("path", e.Path)
		}
	}
	return nil
}
