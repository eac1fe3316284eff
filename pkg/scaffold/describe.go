package scaffold

import (
	"bytes"
	"io/fs"
	"sort"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/render"
	"github.com/arthur-debert/scaffold/pkg/rules"
)

// ReadmeName is shown by describe when a template has one
const ReadmeName = "README.md"

// Description summarizes a template for display
type Description struct {
	*locator.Descriptor

	// Readme is the raw template README, possibly empty
	Readme string

	// Variables are the variable names referenced anywhere in the template
	Variables []string

	// Required are the manifest's required variables
	Required []string
}

// Describe locates name and collects what a user needs to fill it in
func (e *Engine) Describe(name, configFile string) (*Description, error) {
	cfg, err := e.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	desc, err := e.Locate(cfg, name)
	if err != nil {
		return nil, err
	}

	out := &Description{Descriptor: desc, Required: desc.Manifest.Required}
	if data, err := fs.ReadFile(desc.FS, ReadmeName); err == nil {
		out.Readme = string(data)
	}

	vars, err := referencedVariables(desc)
	if err != nil {
		return nil, err
	}
	out.Variables = vars
	return out, nil
}

// referencedVariables scans every path and non-verbatim file for tokens
func referencedVariables(desc *locator.Descriptor) ([]string, error) {
	ignores := desc.Manifest.IgnorePatterns()
	seen := make(map[string]bool)
	add := func(keys []string) {
		for _, k := range keys {
			seen[k] = true
		}
	}

	err := fs.WalkDir(desc.FS, ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to read template entry %s", rel).
				WithDetail("path", rel)
		}
		if rel == "." {
			return nil
		}
		entry := rules.Entry{Path: rel, IsDir: d.IsDir()}
		if rules.MatchAny(ignores, entry) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		add(render.Tokens(rel))
		if d.IsDir() || !d.Type().IsRegular() || desc.Manifest.IsVerbatim(entry) {
			return nil
		}

		data, err := fs.ReadFile(desc.FS, rel)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", rel).
				WithDetail("path", rel)
		}
		if bytes.IndexByte(data, 0) >= 0 {
			return nil
		}
		add(render.Tokens(string(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
