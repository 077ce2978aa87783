package config

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/logging"
)

// Document is a parsed configuration file. It is read-only once built.
type Document struct {
	root interface{}
	path string
}

// NewDocument wraps an already parsed tree. path may be empty for documents
// that did not come from a file.
func NewDocument(root interface{}, path string) *Document {
	return &Document{root: root, path: path}
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// TemplateLocation returns the template directory configured for language,
// verbatim as written in the document.
func (d *Document) TemplateLocation(language string) (string, error) {
	templates, err := d.templates()
	if err != nil {
		return "", err
	}

	value, ok := templates[language]
	if !ok {
		return "", errors.Newf(errors.ErrLanguageNotFound,
			"The language %q could not be found in your config.", language).
			WithDetail("language", language)
	}

	location, ok := value.(string)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidType,
			"The value of %q is an invalid type, expected String", language).
			WithDetail("language", language).
			WithDetail("type", fmt.Sprintf("%T", value))
	}

	return location, nil
}

// Commands returns the command list configured for language under the
// variant's section. ok is false when there is nothing to run: the section
// or language key is absent, or the value is not a list of strings. Only a
// malformed document root or a missing templates section produce an error.
func (d *Document) Commands(language string, variant Variant) (commands []string, ok bool, err error) {
	if _, err := d.templates(); err != nil {
		return nil, false, err
	}

	logger := logging.GetLogger("config").With().
		Str("language", language).
		Str("section", variant.Section()).
		Logger()

	root, _ := d.root.(map[string]interface{})
	section, ok := root[variant.Section()].(map[string]interface{})
	if !ok {
		logger.Debug().Msg("No command section")
		return nil, false, nil
	}

	value, ok := section[language]
	if !ok {
		logger.Debug().Msg("No commands for language")
		return nil, false, nil
	}

	commands, ok = stringList(value)
	if !ok {
		logger.Debug().Str("type", fmt.Sprintf("%T", value)).Msg("Ignoring command list that is not a list of strings")
		return nil, false, nil
	}

	return commands, true, nil
}

// Languages returns the sorted language keys of the templates section.
func (d *Document) Languages() ([]string, error) {
	templates, err := d.templates()
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(templates))
	for language := range templates {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages, nil
}

func (d *Document) templates() (map[string]interface{}, error) {
	root, ok := d.root.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigStructure,
			"config root must be a table, got %T", d.root).
			WithDetail("path", d.path)
	}

	value, ok := root[SectionTemplates]
	if !ok {
		return nil, errors.New(errors.ErrSectionNotFound,
			`"templates" section could not be found in your config. Add it with [templates]`).
			WithDetail("section", SectionTemplates).
			WithDetail("path", d.path)
	}

	templates, ok := value.(map[string]interface{})
	if !ok {
		return nil, errors.Newf(errors.ErrConfigStructure,
			`"templates" must be a table, got %T`, value).
			WithDetail("section", SectionTemplates).
			WithDetail("path", d.path)
	}

	return templates, nil
}

func stringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
