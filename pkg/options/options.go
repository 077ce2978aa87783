// Package options builds the validated, immutable description of a single
// ctp run from raw command-line input.
package options

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/paths"
	"github.com/arthur-debert/ctp/pkg/tokens"
)

// invalidNameChars may not appear in a project name or output directory name.
const invalidNameChars = "#\\%&{}<>*?/$!'\":+`|="

// Raw is the unvalidated input collected by the CLI.
type Raw struct {
	ConfigPath        string
	Language          string
	ProjectName       string
	OutputPath        string
	DryRun            bool
	BinaryPassthrough bool
}

// Options describes one run. Build it with New; it is not modified afterwards.
type Options struct {
	ConfigPath        string
	Language          string
	ProjectName       string
	OutputPath        string
	DryRun            bool
	BinaryPassthrough bool
}

// New validates raw input and resolves its paths.
func New(raw Raw) (Options, error) {
	configPath, err := ConfigPath(raw.ConfigPath)
	if err != nil {
		return Options{}, err
	}

	if !ValidName(raw.ProjectName) {
		return Options{}, errors.Newf(errors.ErrInvalidProjectName,
			"%s is not a valid output directory name, please use --output for a valid directory name or use a different project name.",
			raw.ProjectName).
			WithDetail("projectName", raw.ProjectName)
	}

	if raw.OutputPath != "" && !ValidName(filepath.Base(raw.OutputPath)) {
		return Options{}, errors.Newf(errors.ErrInvalidOutput,
			"%q is not a valid output directory name, please enter a new output directory.", raw.OutputPath).
			WithDetail("path", raw.OutputPath)
	}

	output, err := paths.ResolveOutput(raw.OutputPath, raw.ProjectName)
	if err != nil {
		return Options{}, err
	}

	return Options{
		ConfigPath:        configPath,
		Language:          raw.Language,
		ProjectName:       raw.ProjectName,
		OutputPath:        output,
		DryRun:            raw.DryRun,
		BinaryPassthrough: raw.BinaryPassthrough,
	}, nil
}

// ConfigPath resolves the config file location, falling back to the
// default search order when path is empty. The file must exist.
func ConfigPath(path string) (string, error) {
	if path == "" {
		path = paths.DefaultConfigPath()
	}
	path = paths.ExpandHome(path)

	if _, err := os.Stat(path); err != nil {
		return "", errors.New(errors.ErrNoConfigFile,
			"No config file found. Please create one at $HOME/.ctp or pass in a config file location with --config.").
			WithDetail("path", path)
	}
	return path, nil
}

// ValidName reports whether name can be used as a directory name.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, invalidNameChars)
}

// Vars returns the placeholder values for this run.
func (o Options) Vars() tokens.Vars {
	return tokens.Vars{ProjectName: o.ProjectName, OutputPath: o.OutputPath}
}
