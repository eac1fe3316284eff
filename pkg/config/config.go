package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/paths"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// SettingsKey is the config table holding engine settings
	SettingsKey = "scaffold"

	// VariablesKey is the table holding template variables
	VariablesKey = "variables"

	// EnvPrefix is the prefix for environment overrides
	EnvPrefix = "SCAFFOLD_"
)

// envKeys maps the supported environment variables to settings keys.
// Other SCAFFOLD_* variables (the directory overrides) are not settings.
var envKeys = map[string]string{
	"SCAFFOLD_PRECEDENCE":   "scaffold.precedence",
	"SCAFFOLD_BOILERPLATES": "scaffold.boilerplates",
	"SCAFFOLD_LOG_LEVEL":    "scaffold.log.level",
	"SCAFFOLD_LOG_FILE":     "scaffold.log.file",
}

// Settings configures the engine
type Settings struct {
	// Boilerplates are extra user template directories, searched in order
	Boilerplates []string `koanf:"boilerplates"`

	// Precedence is user-first or builtin-first
	Precedence locator.Precedence `koanf:"precedence"`

	// Conventions maps a template directory name to the variable that enables it
	Conventions map[string]string `koanf:"conventions"`

	Log LogSettings `koanf:"log"`
}

// LogSettings configures logging when no -v flag is given
type LogSettings struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Config is the loaded configuration
type Config struct {
	Settings Settings

	// File is the config file that was loaded, empty when none exists
	File string

	// Defaults are the built-in variable values, including computed ones
	Defaults variables.Source

	// Variables are the values from the config file
	Variables variables.Source
}

// Options controls where configuration is read from
type Options struct {
	// File is an explicit config file. It must exist.
	File string

	// Paths locates the global config file when File is empty
	Paths *paths.Paths

	// Now supplies the clock for computed defaults; defaults to time.Now
	Now func() time.Time
}

// Load reads and merges all configuration layers
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. Computed defaults
	computed := map[string]interface{}{
		VariablesKey + ".year": int64(now().Year()),
	}
	if err := k.Load(confmap.Provider(computed, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load computed defaults")
	}

	cfg := &Config{
		Defaults: variables.Source{Name: "built-in defaults", Values: k.Cut(VariablesKey).All()},
	}

	// 3. Config file
	path, err := resolveFile(opts)
	if err != nil {
		return nil, err
	}
	cfg.Variables = variables.Source{Name: "config file", Values: map[string]any{}}
	if path != "" {
		fileK, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.MergeAt(fileK.Cut(SettingsKey), SettingsKey); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to merge settings from %s", path).
				WithDetail("path", path)
		}
		cfg.File = path
		cfg.Variables = variables.Source{Name: "config file " + path, Values: fileVariables(fileK)}
		logger.Debug().Str("path", path).Int("variables", len(cfg.Variables.Values)).Msg("Loaded config file")
	}

	// 4. Environment overrides for settings
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 5. Decode settings
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf(SettingsKey, &settings, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid [%s] settings", SettingsKey).
			WithDetail("path", cfg.File)
	}
	if err := normalizeSettings(&settings); err != nil {
		return nil, err
	}
	cfg.Settings = settings

	return cfg, nil
}

func resolveFile(opts Options) (string, error) {
	if opts.File != "" {
		path := paths.ExpandHome(opts.File)
		info, err := os.Stat(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		if info.IsDir() {
			return "", errors.Newf(errors.ErrConfigLoad, "config file %s is a directory", path).
				WithDetail("path", path)
		}
		return path, nil
	}
	if opts.Paths != nil {
		return opts.Paths.GlobalConfigFile(), nil
	}
	return "", nil
}

func loadFile(path string) (*koanf.Koanf, error) {
	fileK := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file extension %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	if err := fileK.Load(file.Provider(path), parser); err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return fileK, nil
}

// fileVariables flattens every non-settings key of the config file
func fileVariables(fileK *koanf.Koanf) map[string]any {
	values := make(map[string]any)
	for key, value := range fileK.All() {
		switch {
		case key == SettingsKey || strings.HasPrefix(key, SettingsKey+"."):
			continue
		case strings.HasPrefix(key, VariablesKey+"."):
			values[strings.TrimPrefix(key, VariablesKey+".")] = value
		default:
			values[key] = value
		}
	}
	return values
}

func normalizeSettings(s *Settings) error {
	s.Precedence = locator.Precedence(strings.ToLower(strings.TrimSpace(string(s.Precedence))))
	if s.Precedence == "" {
		s.Precedence = locator.PrecedenceUserFirst
	}
	if s.Precedence != locator.PrecedenceUserFirst && s.Precedence != locator.PrecedenceBuiltinFirst {
		return errors.Newf(errors.ErrConfigParse,
			"invalid precedence %q, expected %s or %s", s.Precedence, locator.PrecedenceUserFirst, locator.PrecedenceBuiltinFirst).
			WithDetail("precedence", string(s.Precedence))
	}

	dirs := s.Boilerplates[:0]
	for _, dir := range s.Boilerplates {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, paths.ExpandHome(dir))
		}
	}
	s.Boilerplates = dirs
	s.Log.File = paths.ExpandHome(s.Log.File)

	for dir, key := range s.Conventions {
		if strings.TrimSpace(key) == "" {
			delete(s.Conventions, dir)
		}
	}
	return nil
}
