package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/scaffold/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for scaffold
	EnvConfigDir = "SCAFFOLD_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for scaffold
	EnvDataDir = "SCAFFOLD_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for scaffold
	EnvStateDir = "SCAFFOLD_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the scaffold directories. These are not user-configurable.
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "scaffold"

	// BoilerplatesDir is the subdirectory of the data dir holding user boilerplates
	BoilerplatesDir = "boilerplates"

	// LogFileName is the name of the log file
	LogFileName = "scaffold.log"
)

// ConfigFileNames are the global config file names, in lookup order
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths resolves the directories scaffold reads from and writes to
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves all directories from the environment
func New() *Paths {
	return &Paths{
		configDir: resolveDir(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome),
		dataDir:   resolveDir(EnvDataDir, "XDG_DATA_HOME", xdg.DataHome),
		stateDir:  resolveDir(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome),
	}
}

// resolveDir picks the app override, then the XDG variable as currently set,
// then the value adrg/xdg computed at startup.
func resolveDir(appEnv, xdgEnv, xdgDefault string) string {
	if dir := os.Getenv(appEnv); dir != "" {
		return ExpandHome(dir)
	}
	if base := os.Getenv(xdgEnv); base != "" {
		return filepath.Join(base, AppDirName)
	}
	return filepath.Join(xdgDefault, AppDirName)
}

// ConfigDir returns the config directory for scaffold
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// DataDir returns the data directory for scaffold
func (p *Paths) DataDir() string {
	return p.dataDir
}

// StateDir returns the state directory for scaffold
func (p *Paths) StateDir() string {
	return p.stateDir
}

// UserBoilerplatesDir returns the default directory for user-supplied boilerplates
func (p *Paths) UserBoilerplatesDir() string {
	return filepath.Join(p.dataDir, BoilerplatesDir)
}

// LogFilePath returns the path to the scaffold log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// GlobalConfigFile returns the first existing global config file, or "" if none exists
func (p *Paths) GlobalConfigFile() string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(p.configDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to get home directory")
	}
	return homeDir, nil
}
