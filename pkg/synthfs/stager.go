// Package synthfs stages materialization plans on the OS filesystem by
// running them through a synthfs pipeline.
package synthfs

import (
	"context"
	"fmt"
	"io/fs"
	"time"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/materialize"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"
)

// Stager executes plan entries as synthfs operations rooted at the staging directory
type Stager struct {
	logger zerolog.Logger
}

// NewStager creates a synthfs-backed stager
func NewStager() *Stager {
	return &Stager{logger: logging.GetLogger("synthfs")}
}

var _ materialize.Stager = (*Stager)(nil)

// Stage builds one pipeline for all entries and runs it against dir
func (s *Stager) Stage(ctx context.Context, dir string, entries []materialize.PlanEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for i, e := range entries {
		op := s.convert(i, e)
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to add %s to staging pipeline", e.Path).
				WithDetail("path", e.Path)
		}
	}

	s.logger.Debug().Str("dir", dir).Int("operationCount", len(entries)).Msg("Executing staging pipeline")

	result := synthfs.NewExecutor().Run(ctx, pipeline, filesystem.NewOSFileSystem(dir))
	if err := result.GetError(); err != nil {
		s.logger.Error().Err(err).Str("dir", dir).Msg("Staging pipeline failed")
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to stage files in %s", dir).
			WithDetail("path", dir)
	}
	return nil
}

func (s *Stager) convert(i int, e materialize.PlanEntry) synthfs.Operation {
	if e.IsDir {
		opID := core.OperationID(fmt.Sprintf("create-dir-%04d-%s", i, e.Path))
		op := operations.NewCreateDirectoryOperation(opID, e.Path)
		op.SetItem(&directoryItem{path: e.Path, mode: e.Mode})
		return synthfs.NewOperationsPackageAdapter(op)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%04d-%s", i, e.Path))
	op := operations.NewCreateFileOperation(opID, e.Path)
	op.SetItem(&fileItem{path: e.Path, content: e.Content, mode: e.Mode})
	return synthfs.NewOperationsPackageAdapter(op)
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
