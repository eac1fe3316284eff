// Package manifest reads the optional scaffold.toml file at the root of a
// template. The manifest declares required variables, files to copy without
// rendering, files to mark executable, extra ignore patterns and
// conditional inclusion rules.
package manifest

import (
	"bytes"
	"io/fs"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/rules"
	"github.com/pelletier/go-toml/v2"
)

const (
	// FileName is the manifest file at the template root
	FileName = "scaffold.toml"

	// CurrentVersion is the only manifest version understood
	CurrentVersion = 1
)

// Manifest describes a template
type Manifest struct {
	Version     int        `toml:"version"`
	Description string     `toml:"description"`
	Required    []string   `toml:"required"`
	Verbatim    []string   `toml:"verbatim"`
	Executable  []string   `toml:"executable"`
	Ignore      []string   `toml:"ignore"`
	Rules       []RuleSpec `toml:"rules"`

	// Present is false when the template has no manifest file
	Present bool `toml:"-"`

	rules []rules.Rule
}

// RuleSpec is a [[rules]] entry
type RuleSpec struct {
	Path string `toml:"path"`
	When string `toml:"when"`
}

// Empty returns the manifest of a template that has none
func Empty() *Manifest {
	return &Manifest{Version: CurrentVersion}
}

// Load reads the manifest from the root of fsys. A missing file yields Empty().
func Load(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrInvalidTemplate, "failed to read %s", FileName)
	}
	return Parse(data)
}

// Parse decodes and validates manifest data. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidTemplate, "failed to parse %s", FileName)
	}
	m.Present = true

	if m.Version == 0 {
		m.Version = CurrentVersion
	}
	if m.Version != CurrentVersion {
		return nil, errors.Newf(errors.ErrInvalidTemplate,
			"unsupported %s version %d, expected %d", FileName, m.Version, CurrentVersion).
			WithDetail("version", m.Version)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	lists := map[string][]string{
		"verbatim":   m.Verbatim,
		"executable": m.Executable,
		"ignore":     m.Ignore,
	}
	for field, patterns := range lists {
		for _, p := range patterns {
			if !rules.ValidatePattern(p) {
				return invalid("invalid %s pattern %q", field, p)
			}
		}
	}

	for _, key := range m.Required {
		if strings.TrimSpace(key) == "" {
			return invalid("required variable names must not be empty")
		}
	}

	m.rules = make([]rules.Rule, 0, len(m.Rules))
	for i, rs := range m.Rules {
		if !rules.ValidatePattern(rs.Path) {
			return invalid("rule %d has an invalid path %q", i+1, rs.Path)
		}
		pred, err := rules.ParsePredicate(rs.When)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidTemplate, "rule %d for %s has an invalid condition", i+1, rs.Path).
				WithDetail("rule", rs.Path)
		}
		m.rules = append(m.rules, rules.Rule{Pattern: rs.Path, Predicate: pred, Origin: rules.OriginManifest})
	}
	return nil
}

// SelectionRules returns the parsed [[rules]] entries, in file order
func (m *Manifest) SelectionRules() []rules.Rule {
	return m.rules
}

// IgnorePatterns returns the built-in ignores plus the manifest's own
func (m *Manifest) IgnorePatterns() []string {
	out := []string{FileName}
	out = append(out, rules.DefaultIgnores...)
	return append(out, m.Ignore...)
}

// IsVerbatim reports whether entry is copied without rendering
func (m *Manifest) IsVerbatim(entry rules.Entry) bool {
	return rules.MatchAny(m.Verbatim, entry)
}

// IsExecutable reports whether entry is written with the executable mode
func (m *Manifest) IsExecutable(entry rules.Entry) bool {
	return rules.MatchAny(m.Executable, entry)
}

func invalid(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrInvalidTemplate, "invalid %s: "+format, append([]interface{}{FileName}, args...)...)
}
