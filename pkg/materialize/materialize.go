package materialize

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/rules"
	"github.com/arthur-debert/scaffold/pkg/types"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Result describes a finished run
type Result struct {
	Destination string
	Files       int
	Dirs        int
	Digest      string
	DryRun      bool
	Plan        *Plan
}

// Materializer turns templates into project trees
type Materializer struct {
	fs          types.FS
	stager      Stager
	overwrite   bool
	conventions map[string]string
	newID       func() string
	logger      zerolog.Logger
}

// Option configures a Materializer
type Option func(*Materializer)

// WithOverwrite allows replacing an existing non-empty destination
func WithOverwrite(overwrite bool) Option {
	return func(m *Materializer) { m.overwrite = overwrite }
}

// WithStager replaces the default FSStager
func WithStager(s Stager) Option {
	return func(m *Materializer) { m.stager = s }
}

// WithConventions sets the directory to variable conventions
func WithConventions(conventions map[string]string) Option {
	return func(m *Materializer) { m.conventions = conventions }
}

// WithIDGenerator sets how staging and backup names are made unique
func WithIDGenerator(fn func() string) Option {
	return func(m *Materializer) { m.newID = fn }
}

// New creates a Materializer writing through fsys
func New(fsys types.FS, opts ...Option) *Materializer {
	m := &Materializer{
		fs:          fsys,
		conventions: rules.DefaultConventions,
		newID:       uuid.NewString,
		logger:      logging.GetLogger("materialize"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.stager == nil {
		m.stager = NewFSStager(fsys)
	}
	return m
}

type destState int

const (
	destAbsent destState = iota
	destEmpty
	destOccupied
)

// DryRun plans the run and checks the destination without writing
func (m *Materializer) DryRun(desc *locator.Descriptor, vars variables.VariableSet, destination string) (*Result, error) {
	plan, err := m.Plan(desc, vars)
	if err != nil {
		return nil, err
	}

	dest := filepath.Clean(destination)
	state, err := m.inspect(dest)
	if err != nil {
		return nil, err
	}
	if state == destOccupied && !m.overwrite {
		return nil, notEmpty(dest)
	}
	return newResult(dest, plan, true), nil
}

// Materialize plans, stages and promotes the template into destination
func (m *Materializer) Materialize(ctx context.Context, desc *locator.Descriptor, vars variables.VariableSet, destination string) (*Result, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	plan, err := m.Plan(desc, vars)
	if err != nil {
		return nil, err
	}

	dest := filepath.Clean(destination)
	state, err := m.inspect(dest)
	if err != nil {
		return nil, err
	}
	if state == destOccupied && !m.overwrite {
		return nil, notEmpty(dest)
	}

	parent := filepath.Dir(dest)
	created, err := m.ensureDir(parent)
	if err != nil {
		m.removeCreated(created)
		return nil, err
	}

	staging := filepath.Join(parent, "."+filepath.Base(dest)+".scaffold-"+m.newID())
	if err := m.fs.MkdirAll(staging, DirMode); err != nil {
		m.discard(staging, created)
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to create staging directory %s", staging).
			WithDetail("path", staging)
	}

	m.logger.Debug().Str("staging", staging).Int("entries", len(plan.Entries)).Msg("Staging plan")
	if err := m.stager.Stage(ctx, staging, plan.Entries); err != nil {
		m.discard(staging, created)
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to stage %s", dest).
				WithDetail("path", dest)
		}
		return nil, err
	}

	if err := m.promote(ctx, staging, dest); err != nil {
		m.discard(staging, created)
		return nil, err
	}

	m.logger.Info().
		Str("destination", dest).
		Int("files", plan.Files()).
		Int("dirs", plan.Dirs()).
		Msg("Project materialized")
	return newResult(dest, plan, false), nil
}

// promote moves the staged tree into place. An occupied destination is
// moved aside first when overwriting and restored if the rename fails.
func (m *Materializer) promote(ctx context.Context, staging, dest string) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	state, err := m.inspect(dest)
	if err != nil {
		return err
	}

	var backup string
	switch state {
	case destEmpty:
		if err := m.fs.Remove(dest); err != nil {
			if m.occupied(dest) {
				return notEmpty(dest)
			}
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to replace empty directory %s", dest).
				WithDetail("path", dest)
		}
	case destOccupied:
		if !m.overwrite {
			return notEmpty(dest)
		}
		backup = filepath.Join(filepath.Dir(dest), "."+filepath.Base(dest)+".scaffold-backup-"+m.newID())
		if err := m.fs.Rename(dest, backup); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to move existing %s aside", dest).
				WithDetail("path", dest)
		}
		m.logger.Debug().Str("backup", backup).Msg("Moved existing destination aside")
	}

	if err := m.fs.Rename(staging, dest); err != nil {
		raced := errors.Is(err, fs.ErrExist) || m.occupied(dest)
		if backup != "" && !raced {
			if restoreErr := m.fs.Rename(backup, dest); restoreErr != nil {
				m.logger.Error().Err(restoreErr).Str("backup", backup).Msg("Failed to restore previous destination")
			}
		}
		if raced {
			conflict := notEmpty(dest)
			if backup != "" {
				m.logger.Warn().Str("path", dest).Str("backup", backup).
					Msg("Destination was recreated during overwrite, previous contents kept at backup")
				conflict = conflict.WithDetail("backup", backup)
			}
			return conflict
		}
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to move staged tree to %s", dest).
			WithDetail("path", dest)
	}

	if backup != "" {
		if err := m.fs.RemoveAll(backup); err != nil {
			m.logger.Warn().Err(err).Str("backup", backup).Msg("Failed to remove previous destination")
		}
	}
	return nil
}

func (m *Materializer) inspect(dest string) (destState, error) {
	info, err := m.fs.Stat(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return destAbsent, nil
		}
		return destAbsent, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", dest).
			WithDetail("path", dest)
	}
	if !info.IsDir() {
		return destOccupied, nil
	}
	entries, err := m.fs.ReadDir(dest)
	if err != nil {
		return destAbsent, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", dest).
			WithDetail("path", dest)
	}
	if len(entries) == 0 {
		return destEmpty, nil
	}
	return destOccupied, nil
}

func (m *Materializer) occupied(dest string) bool {
	state, err := m.inspect(dest)
	return err == nil && state == destOccupied
}

// ensureDir creates dir and returns the directories it had to create,
// outermost first
func (m *Materializer) ensureDir(dir string) ([]string, error) {
	var missing []string
	for current := dir; ; current = filepath.Dir(current) {
		info, err := m.fs.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return nil, errors.Newf(errors.ErrIOFailure, "%s is not a directory", current).
					WithDetail("path", current)
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to inspect %s", current).
				WithDetail("path", current)
		}
		missing = append([]string{current}, missing...)
		if parent := filepath.Dir(current); parent == current {
			break
		}
	}

	if len(missing) == 0 {
		return nil, nil
	}
	if err := m.fs.MkdirAll(dir, DirMode); err != nil {
		return missing, errors.Wrapf(err, errors.ErrIOFailure, "failed to create %s", dir).
			WithDetail("path", dir)
	}
	return missing, nil
}

// removeCreated removes directories created for this run, innermost first.
// Remove only deletes empty directories.
func (m *Materializer) removeCreated(created []string) {
	for i := len(created) - 1; i >= 0; i-- {
		_ = m.fs.Remove(created[i])
	}
}

func (m *Materializer) discard(staging string, created []string) {
	if err := m.fs.RemoveAll(staging); err != nil {
		m.logger.Warn().Err(err).Str("staging", staging).Msg("Failed to remove staging directory")
	}
	m.removeCreated(created)
}

func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "materialization cancelled")
	}
	return nil
}

func notEmpty(dest string) *errors.ScaffoldError {
	return errors.Newf(errors.ErrDestinationNotEmpty, "destination %s already exists and is not empty", dest).
		WithDetail("path", dest)
}

func newResult(dest string, plan *Plan, dryRun bool) *Result {
	return &Result{
		Destination: dest,
		Files:       plan.Files(),
		Dirs:        plan.Dirs(),
		Digest:      plan.Digest,
		DryRun:      dryRun,
		Plan:        plan,
	}
}
