package config

import (
	"github.com/arthur-debert/ctp/pkg/errors"
)

// documentBytes feeds an already read config file to koanf. Only the
// parser path (ReadBytes) is supported.
type documentBytes struct {
	data []byte
	path string
}

func (d documentBytes) ReadBytes() ([]byte, error) { return d.data, nil }

func (d documentBytes) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "config bytes must be loaded with a parser").
		WithDetail("path", d.path)
}
