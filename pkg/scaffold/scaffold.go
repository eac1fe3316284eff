package scaffold

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/scaffold/pkg/answers"
	"github.com/arthur-debert/scaffold/pkg/catalog"
	"github.com/arthur-debert/scaffold/pkg/config"
	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/filesystem"
	"github.com/arthur-debert/scaffold/pkg/license"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/materialize"
	"github.com/arthur-debert/scaffold/pkg/paths"
	"github.com/arthur-debert/scaffold/pkg/synthfs"
	"github.com/arthur-debert/scaffold/pkg/types"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/rs/zerolog"
)

// Well-known variable names
const (
	VarProjectName = "project_name"
	VarModuleName  = "module_name"
	VarProjectSlug = "project_slug"
	VarLicense     = "license"
	VarLicenseText = "license_text"
	VarAuthor      = "author"
	VarEmail       = "email"
	VarYear        = "year"
)

// Request describes one generation run
type Request struct {
	// ProjectName becomes project_name and overrides every other source
	ProjectName string

	// Template is the boilerplate name. When empty the built-in template
	// for the resolved project_type is used.
	Template string

	// Destination defaults to the project name in the working directory
	Destination string

	AnswersFile string
	Set         []string
	ConfigFile  string
	Overwrite   bool
	DryRun      bool
}

// Engine runs generation requests
type Engine struct {
	fs       types.FS
	paths    *paths.Paths
	builtin  locator.Root
	now      func() time.Time
	identity func() Identity
	logger   zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithFS sets the destination filesystem
func WithFS(fsys types.FS) Option {
	return func(e *Engine) { e.fs = fsys }
}

// WithPaths sets the directories used for config and user boilerplates
func WithPaths(p *paths.Paths) Option {
	return func(e *Engine) { e.paths = p }
}

// WithBuiltin replaces the embedded catalog
func WithBuiltin(root locator.Root) Option {
	return func(e *Engine) { e.builtin = root }
}

// WithClock sets the clock used for the year default
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIdentity sets where default author and email come from
func WithIdentity(fn func() Identity) Option {
	return func(e *Engine) { e.identity = fn }
}

// New creates an Engine writing to the OS filesystem
func New(opts ...Option) *Engine {
	e := &Engine{
		fs:       filesystem.NewOS(),
		builtin:  catalog.Root(),
		now:      time.Now,
		identity: GitIdentity,
		logger:   logging.GetLogger("scaffold"),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.paths == nil {
		e.paths = paths.New()
	}
	return e
}

// LoadConfig loads configuration, using file when set
func (e *Engine) LoadConfig(file string) (*config.Config, error) {
	return config.Load(config.Options{File: file, Paths: e.paths, Now: e.now})
}

// Roots returns the template search roots in precedence order
func (e *Engine) Roots(cfg *config.Config) []locator.Root {
	dirs := append([]string{e.paths.UserBoilerplatesDir()}, cfg.Settings.Boilerplates...)
	return locator.SearchRoots(e.builtin, dirs, cfg.Settings.Precedence)
}

// Locate finds a template using the configured roots
func (e *Engine) Locate(cfg *config.Config, name string) (*locator.Descriptor, error) {
	return locator.Locate(name, e.Roots(cfg))
}

// Generate runs a request end to end
func (e *Engine) Generate(ctx context.Context, req Request) (*materialize.Result, error) {
	done := logging.LogOperationStart(e.logger, "generate")
	defer done()

	cfg, err := e.LoadConfig(req.ConfigFile)
	if err != nil {
		return nil, err
	}

	name, err := e.TemplateName(cfg, req)
	if err != nil {
		return nil, err
	}

	desc, err := e.Locate(cfg, name)
	if err != nil {
		return nil, err
	}
	e.logger.Info().Str("template", desc.Name).Str("root", desc.Root).Msg("Using template")

	vars, err := e.ResolveVariables(cfg, desc, req)
	if err != nil {
		return nil, err
	}

	dest, err := e.destination(req, vars)
	if err != nil {
		return nil, err
	}

	m := materialize.New(e.fs, e.materializeOptions(cfg, req)...)
	if req.DryRun {
		return m.DryRun(desc, vars, dest)
	}
	return m.Materialize(ctx, desc, vars, dest)
}

func (e *Engine) materializeOptions(cfg *config.Config, req Request) []materialize.Option {
	opts := []materialize.Option{materialize.WithOverwrite(req.Overwrite)}
	if cfg.Settings.Conventions != nil {
		opts = append(opts, materialize.WithConventions(cfg.Settings.Conventions))
	}
	if filesystem.IsOS(e.fs) {
		opts = append(opts, materialize.WithStager(synthfs.NewStager()))
	}
	return opts
}

// TemplateName returns req.Template, or the built-in template for the
// project_type the request resolves to
func (e *Engine) TemplateName(cfg *config.Config, req Request) (string, error) {
	if req.Template != "" {
		return req.Template, nil
	}

	sources, err := e.sources(cfg, req)
	if err != nil {
		return "", err
	}
	merged, err := variables.Resolve(nil, sources...)
	if err != nil {
		return "", err
	}

	projectType, ok := merged.Lookup(VarProjectType)
	if !ok || projectType == "" {
		return "", errors.New(errors.ErrInvalidInput, "no template or project_type given")
	}
	name, err := TemplateForType(projectType)
	if err != nil {
		return "", err
	}
	e.logger.Debug().Str("projectType", projectType).Str("template", name).Msg("Template chosen by project type")
	return name, nil
}

// sources returns the variable layers for req, lowest precedence first
func (e *Engine) sources(cfg *config.Config, req Request) ([]variables.Source, error) {
	sources := []variables.Source{cfg.Defaults}

	if e.identity != nil {
		if values := e.identity().source(); len(values) > 0 {
			sources = append(sources, variables.Source{Name: "git config", Values: values})
		}
	}
	sources = append(sources, cfg.Variables)

	if req.AnswersFile != "" {
		src, err := answers.LoadFile(req.AnswersFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	set, err := answers.ParseSet(req.Set)
	if err != nil {
		return nil, err
	}
	sources = append(sources, set)

	if req.ProjectName != "" {
		sources = append(sources, variables.Source{
			Name:   "project name",
			Values: map[string]any{VarProjectName: req.ProjectName},
		})
	}
	return sources, nil
}

// ResolveVariables merges every variable source for req and checks the
// template's required variables
func (e *Engine) ResolveVariables(cfg *config.Config, desc *locator.Descriptor, req Request) (variables.VariableSet, error) {
	sources, err := e.sources(cfg, req)
	if err != nil {
		return variables.VariableSet{}, err
	}

	merged, err := variables.Resolve(nil, sources...)
	if err != nil {
		return variables.VariableSet{}, err
	}

	if name, ok := merged.Lookup(VarProjectName); ok {
		if err := ValidateProjectName(name); err != nil {
			return variables.VariableSet{}, err
		}
	}

	var required []string
	if desc != nil && desc.Manifest != nil {
		required = desc.Manifest.Required
	}

	derived := variables.Source{Name: "derived values", Values: Derive(merged)}
	vars, err := variables.Resolve(required, append([]variables.Source{derived}, sources...)...)
	if err != nil {
		return variables.VariableSet{}, err
	}

	e.logger.Debug().Strs("keys", vars.Keys()).Msg("Variables resolved")
	return vars, nil
}

// Derive computes the values other variables imply. They have the lowest
// precedence, so any source can override them.
func Derive(vars variables.VariableSet) map[string]any {
	out := make(map[string]any)

	if name, ok := vars.Lookup(VarProjectName); ok && name != "" {
		out[VarModuleName] = ModuleName(name)
		out[VarProjectSlug] = Slug(name)
	}

	if name, ok := vars.Lookup(VarLicense); ok {
		author, _ := vars.Lookup(VarAuthor)
		year, _ := vars.Lookup(VarYear)
		out[VarLicenseText] = license.Text(name, author, year)
	}

	return out
}

func (e *Engine) destination(req Request, vars variables.VariableSet) (string, error) {
	dest := req.Destination
	if dest == "" {
		name, ok := vars.Lookup(VarProjectName)
		if !ok || name == "" {
			return "", errors.New(errors.ErrInvalidInput, "no destination or project name given")
		}
		dest = name
	}

	dest = paths.ExpandHome(dest)
	if filesystem.IsOS(e.fs) && !filepath.IsAbs(dest) {
		abs, err := filepath.Abs(dest)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid destination %s", dest).
				WithDetail("path", dest)
		}
		dest = abs
	}
	return dest, nil
}

// List returns every template visible with the given config
func (e *Engine) List(configFile string) ([]locator.Listing, error) {
	cfg, err := e.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	return locator.List(e.Roots(cfg)), nil
}

// ReadFile reads a file from a located template
func ReadFile(desc *locator.Descriptor, name string) ([]byte, error) {
	data, err := fs.ReadFile(desc.FS, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s from %s", name, desc.Root).
			WithDetail("path", name)
	}
	return data, nil
}
