package locator

import (
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/manifest"
)

// Precedence decides whether user or built-in roots are searched first
type Precedence string

const (
	PrecedenceUserFirst    Precedence = "user-first"
	PrecedenceBuiltinFirst Precedence = "builtin-first"
)

// BuiltinPrefix marks built-in templates in display paths
const BuiltinPrefix = "builtin:"

// Root is a directory of templates
type Root struct {
	// Name is a display path for the root
	Name    string
	FS      fs.FS
	BuiltIn bool
}

// NewDirRoot creates a root for a directory on disk
func NewDirRoot(dir string) Root {
	return Root{Name: dir, FS: os.DirFS(dir)}
}

// Descriptor identifies a resolved template
type Descriptor struct {
	Name string

	// Root is the template's display path, or builtin:<name>
	Root     string
	RootName string
	BuiltIn  bool

	// FS is rooted at the template directory
	FS       fs.FS
	Manifest *manifest.Manifest
}

// SearchRoots orders the built-in root and user directories by precedence.
// User directories keep their configured order.
func SearchRoots(builtin Root, userDirs []string, precedence Precedence) []Root {
	user := make([]Root, 0, len(userDirs))
	for _, dir := range userDirs {
		if dir != "" {
			user = append(user, NewDirRoot(dir))
		}
	}

	if precedence == PrecedenceBuiltinFirst {
		return append([]Root{builtin}, user...)
	}
	return append(user, builtin)
}

// ValidateName rejects names that are not a single path element
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) {
		return errors.Newf(errors.ErrInvalidInput, "invalid template name %q", name).
			WithDetail("template", name)
	}
	return nil
}

// Locate returns the first template named name in roots
func Locate(name string, roots []Root) (*Descriptor, error) {
	logger := logging.GetLogger("locator")

	if err := ValidateName(name); err != nil {
		return nil, err
	}

	searched := make([]string, 0, len(roots))
	for _, root := range roots {
		searched = append(searched, root.Name)

		found, err := hasTemplateDir(root, name)
		if err != nil {
			logger.Debug().Err(err).Str("root", root.Name).Msg("Skipping unreadable template root")
			continue
		}
		if !found {
			continue
		}

		logger.Debug().Str("template", name).Str("root", root.Name).Bool("builtin", root.BuiltIn).Msg("Template located")
		return describe(name, root)
	}

	return nil, errors.Newf(errors.ErrTemplateNotFound, "template %q not found in %s", name, strings.Join(searched, ", ")).
		WithDetail("template", name).
		WithDetail("searched", searched)
}

// hasTemplateDir matches name against the root's entries so that the
// comparison is case-sensitive even on case-insensitive filesystems.
func hasTemplateDir(root Root, name string) (bool, error) {
	entries, err := fs.ReadDir(root.FS, ".")
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.Name() != name {
			continue
		}
		info, err := fs.Stat(root.FS, name)
		if err != nil {
			return false, err
		}
		return info.IsDir(), nil
	}
	return false, nil
}

func describe(name string, root Root) (*Descriptor, error) {
	sub, err := fs.Sub(root.FS, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to open template %s", name)
	}

	display := path.Join(root.Name, name)
	if root.BuiltIn {
		display = BuiltinPrefix + name
	}

	entries, err := fs.ReadDir(sub, ".")
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read template %s", display).
			WithDetail("template", name).
			WithDetail("root", display)
	}
	if len(entries) == 0 {
		return nil, errors.Newf(errors.ErrInvalidTemplate, "template %s is empty", display).
			WithDetail("template", name).
			WithDetail("root", display)
	}

	m, err := manifest.Load(sub)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidTemplate, "template %s has an invalid manifest", display).
			WithDetail("template", name).
			WithDetail("root", display)
	}

	return &Descriptor{
		Name:     name,
		Root:     display,
		RootName: root.Name,
		BuiltIn:  root.BuiltIn,
		FS:       sub,
		Manifest: m,
	}, nil
}
