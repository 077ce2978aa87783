package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the parser for a config file from its extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatTOML:
		return FormatTOML, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported config format %q (expected toml or yaml)", name)
	}
}

func parserFor(format Format) koanf.Parser {
	if format == FormatYAML {
		return yaml.Parser()
	}
	return toml.Parser()
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Document, error) {
	logger := logging.GetLogger("config")

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path).
			WithDetail("path", path)
	}

	doc, err := parse(data, FormatForPath(path), path)
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Loaded config")
	return doc, nil
}

// Parse builds a Document from in-memory config data.
func Parse(data []byte, format Format) (*Document, error) {
	return parse(data, format, "")
}

func parse(data []byte, format Format, path string) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(documentBytes{data: data, path: path}, parserFor(format)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s config", format).
			WithDetail("path", path)
	}
	return NewDocument(k.Raw(), path), nil
}
