package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ctp/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// File is the typed shape of a configuration file, used when generating one.
// Loading goes through Document instead so unknown keys are tolerated.
type File struct {
	Templates      map[string]string   `toml:"templates" yaml:"templates"`
	CommandsBefore map[string][]string `toml:"commands-before" yaml:"commands-before"`
	CommandsAfter  map[string][]string `toml:"commands-after" yaml:"commands-after"`
}

const starterHeader = `Configuration for ctp.

[templates] maps a language name to the template directory copied for it.
Relative paths are resolved against the directory ctp is run from.

[commands-before] and [commands-after] map a language name to the commands
run before the copy and inside the new project after it. Commands are split
on whitespace; no shell quoting is applied.

In template files and commands, {{__NAME__}} is replaced with the project
name and {{__OUT__}} with the absolute output path.
`

// Starter returns the example configuration written by genconfig.
func Starter() File {
	return File{
		Templates: map[string]string{
			"python": "~/templates/python",
			"go":     "~/templates/go",
		},
		CommandsBefore: map[string][]string{
			"python": {"echo creating {{__NAME__}}"},
		},
		CommandsAfter: map[string][]string{
			"python": {"git init", "python3 -m venv .venv"},
			"go":     {"git init", "go mod init {{__NAME__}}"},
		},
	}
}

// Generate renders f in the requested format, preceded by a comment block.
func Generate(f File, format Format) ([]byte, error) {
	var body []byte
	var err error
	switch format {
	case FormatYAML:
		body, err = yamlv3.Marshal(f)
	default:
		body, err = gotoml.Marshal(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to render %s config", format)
	}

	var buf bytes.Buffer
	for _, line := range bytes.Split(bytes.TrimSpace([]byte(starterHeader)), []byte("\n")) {
		if len(line) == 0 {
			buf.WriteString("#\n")
			continue
		}
		buf.WriteString("# ")
		buf.Write(line)
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

// WriteStarter writes the starter configuration to path. An existing file is
// only replaced when force is set.
func WriteStarter(path string, format Format, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "config file already exists: %s (use --force to overwrite)", path).
			WithDetail("path", path)
	}

	content, err := Generate(Starter(), format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path).
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write config file %s", path).
			WithDetail("path", path)
	}
	return nil
}
