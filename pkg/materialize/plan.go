package materialize

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/render"
	"github.com/arthur-debert/scaffold/pkg/rules"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/zeebo/blake3"
)

const (
	DirMode        fs.FileMode = 0755
	FileMode       fs.FileMode = 0644
	ExecutableMode fs.FileMode = 0755

	// binarySniffLen is how much of a file is checked for NUL bytes
	binarySniffLen = 8000
)

// PlanEntry is one directory or file to create, relative to the destination
type PlanEntry struct {
	// Source is the template-relative path the entry came from
	Source string

	// Path is the rendered, slash-separated destination path
	Path    string
	IsDir   bool
	Content []byte
	Mode    fs.FileMode

	// Verbatim is set for files copied without rendering
	Verbatim bool
}

// Plan is the complete, ordered set of entries for one run
type Plan struct {
	Template string
	Entries  []PlanEntry

	// Digest is a blake3 hash over paths, modes and contents
	Digest string
}

// Files returns the number of file entries
func (p *Plan) Files() int {
	n := 0
	for _, e := range p.Entries {
		if !e.IsDir {
			n++
		}
	}
	return n
}

// Dirs returns the number of directory entries
func (p *Plan) Dirs() int {
	return len(p.Entries) - p.Files()
}

// Plan walks the template and computes every entry without writing anything
func (m *Materializer) Plan(desc *locator.Descriptor, vars variables.VariableSet) (*Plan, error) {
	if desc == nil || desc.FS == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no template to materialize")
	}

	man := desc.Manifest
	if man == nil {
		return nil, errors.Newf(errors.ErrInternal, "template %s has no manifest loaded", desc.Name)
	}

	ruleset := rules.Build(
		man.SelectionRules(),
		rules.ConventionRules(m.conventions),
		rules.IgnoreRules(man.IgnorePatterns()),
	)

	plan := &Plan{Template: desc.Name}
	sources := make(map[string]string)

	err := fs.WalkDir(desc.FS, ".", func(rel string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.Wrapf(walkErr, errors.ErrIOFailure, "failed to read template entry %s", rel).
				WithDetail("path", rel)
		}
		if rel == "." {
			return nil
		}

		isDir, ok, err := entryKind(desc.FS, rel, d)
		if err != nil {
			return err
		}
		if !ok {
			m.logger.Debug().Str("path", rel).Msg("Skipping irregular template entry")
			return nil
		}

		entry := rules.Entry{Path: rel, IsDir: isDir}
		if !rules.ShouldInclude(entry, ruleset, vars) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		dest, err := render.RenderPath(rel, vars)
		if err != nil {
			return err
		}
		if !isDir {
			dest = render.StripTemplateSuffix(dest)
		}

		if prev, dup := sources[dest]; dup {
			return errors.Newf(errors.ErrPathCollision, "%s and %s both render to %s", prev, rel, dest).
				WithDetail("path", dest).
				WithDetail("sources", []string{prev, rel})
		}
		sources[dest] = rel

		if isDir {
			plan.Entries = append(plan.Entries, PlanEntry{Source: rel, Path: dest, IsDir: true, Mode: DirMode})
			return nil
		}

		pe, err := m.planFile(desc, entry, dest, vars)
		if err != nil {
			return err
		}
		plan.Entries = append(plan.Entries, pe)
		return nil
	})
	if err != nil {
		return nil, err
	}

	plan.Digest = digest(plan.Entries)
	m.logger.Debug().
		Str("template", desc.Name).
		Int("files", plan.Files()).
		Int("dirs", plan.Dirs()).
		Str("digest", plan.Digest).
		Msg("Plan computed")
	return plan, nil
}

// entryKind resolves symlinks so that linked files and directories in a
// user template behave like regular ones. Anything else is skipped.
func entryKind(fsys fs.FS, rel string, d fs.DirEntry) (isDir bool, ok bool, err error) {
	if d.IsDir() {
		return true, true, nil
	}
	if d.Type().IsRegular() {
		return false, true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, false, nil
	}
	info, statErr := fs.Stat(fsys, rel)
	if statErr != nil {
		return false, false, errors.Wrapf(statErr, errors.ErrIOFailure, "failed to resolve link %s", rel).
			WithDetail("path", rel)
	}
	// WalkDir does not descend into linked directories
	if info.IsDir() {
		return false, false, nil
	}
	return false, info.Mode().IsRegular(), nil
}

func (m *Materializer) planFile(desc *locator.Descriptor, entry rules.Entry, dest string, vars variables.VariableSet) (PlanEntry, error) {
	data, err := fs.ReadFile(desc.FS, entry.Path)
	if err != nil {
		return PlanEntry{}, errors.Wrapf(err, errors.ErrIOFailure, "failed to read template file %s", entry.Path).
			WithDetail("path", entry.Path)
	}

	mode := FileMode
	if info, err := fs.Stat(desc.FS, entry.Path); err == nil && info.Mode()&0111 != 0 {
		mode = ExecutableMode
	}
	if desc.Manifest.IsExecutable(entry) {
		mode = ExecutableMode
	}

	pe := PlanEntry{Source: entry.Path, Path: dest, Mode: mode}

	if desc.Manifest.IsVerbatim(entry) || isBinary(data) {
		pe.Content = data
		pe.Verbatim = true
		return pe, nil
	}

	rendered, err := render.Render(string(data), vars, entry.Path)
	if err != nil {
		return PlanEntry{}, err
	}
	pe.Content = []byte(rendered)
	return pe, nil
}

func isBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

func digest(entries []PlanEntry) string {
	h := blake3.New()
	for _, e := range entries {
		kind := "f"
		if e.IsDir {
			kind = "d"
		}
		fmt.Fprintf(h, "%s\x00%s\x00%o\x00%d\x00", kind, e.Path, e.Mode, len(e.Content))
		h.Write(e.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
