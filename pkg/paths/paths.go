package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ctp/pkg/errors"
)

// Environment variable names
const (
	// EnvConfig overrides the default config file location
	EnvConfig = "CTP_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "ctp"

	// LegacyConfigFile is the traditional config file name in the home directory
	LegacyConfigFile = ".ctp"
)

// xdgConfigFiles are searched in order under the XDG config directories.
var xdgConfigFiles = []string{"config.toml", "config.yaml", "config.yml"}

// DefaultConfigPath returns the config file used when --config is not given.
// Priority:
//  1. $CTP_CONFIG
//  2. $XDG_CONFIG_HOME/ctp/config.{toml,yaml,yml} (and the XDG config dirs)
//  3. ~/.ctp
//
// When nothing exists the ~/.ctp path is returned so the caller can report
// the traditional location as missing.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandHome(p)
	}

	for _, name := range xdgConfigFiles {
		if p, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return p
		}
	}

	return filepath.Join(GetHomeDirectoryWithDefault("."), LegacyConfigFile)
}

// XDGConfigPath returns where genconfig writes a new config file.
func XDGConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, xdgConfigFiles[0])
}

// ResolveOutput turns the --output value into an absolute path. An empty
// output defaults to ./<projectName>.
func ResolveOutput(output, projectName string) (string, error) {
	if output == "" {
		output = projectName
	}

	abs, err := filepath.Abs(ExpandHome(output))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidOutput, "failed to resolve output path %s", output).
			WithDetail("path", output)
	}
	return abs, nil
}

// ResolveTemplate expands ~ in a template location and makes relative
// locations absolute against the working directory.
func ResolveTemplate(location string) (string, error) {
	abs, err := filepath.Abs(ExpandHome(location))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve template location %s", location).
			WithDetail("path", location)
	}
	return abs, nil
}

// ExpandHome expands a leading ~ to the user's home directory. Paths of the
// form ~user are returned unchanged.
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

	return path
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME.
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

// GetHomeDirectoryWithDefault returns the home directory or a default value
func GetHomeDirectoryWithDefault(defaultDir string) string {
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return homeDir
}
