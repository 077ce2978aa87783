// Package copier replicates a template directory into a new project,
// substituting placeholders in every file it writes.
package copier

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/logging"
	"github.com/arthur-debert/ctp/pkg/tokens"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// VCSPrefix marks directories that are never copied (.git, .github, ...).
const VCSPrefix = ".git"

const dirPerm = 0755

// Stats counts what a copy produced.
type Stats struct {
	Dirs    int
	Files   int
	Skipped int
}

// Copier copies template trees. The zero value is not usable; use New.
type Copier struct {
	fs                afero.Fs
	logger            zerolog.Logger
	binaryPassthrough bool
	onFile            func(src, dst string)
}

// Option configures a Copier.
type Option func(*Copier)

// WithFs sets the filesystem to copy on. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(c *Copier) { c.fs = fs }
}

// WithBinaryPassthrough copies files that are not valid UTF-8 unmodified
// instead of failing the copy.
func WithBinaryPassthrough(enabled bool) Option {
	return func(c *Copier) { c.binaryPassthrough = enabled }
}

// WithFileHook registers a function called after each file is written.
func WithFileHook(fn func(src, dst string)) Option {
	return func(c *Copier) { c.onFile = fn }
}

// New creates a Copier.
func New(opts ...Option) *Copier {
	c := &Copier{
		fs:     afero.NewOsFs(),
		logger: logging.GetLogger("copier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CopyTree copies src into dst, which must not already exist as a
// directory. Any failure aborts the copy and leaves what was already
// written in place.
func (c *Copier) CopyTree(src, dst string, vars tokens.Vars) (Stats, error) {
	var stats Stats

	info, err := c.fs.Stat(src)
	if err != nil || !info.IsDir() {
		e := errors.Newf(errors.ErrSourceNotDir, "template directory does not exist or is not a directory: %s", src).
			WithDetail("path", src)
		e.Wrapped = err
		return stats, e
	}

	if info, err := c.fs.Stat(dst); err == nil && info.IsDir() {
		return stats, errors.Newf(errors.ErrDestinationExists, "Directory already exists: %s", dst).
			WithDetail("path", dst)
	}

	done := logging.LogOperationStart(c.logger, "copy tree")
	defer done()

	err = c.copyDir(src, dst, vars, &stats)
	return stats, err
}

func (c *Copier) copyDir(src, dst string, vars tokens.Vars, stats *Stats) error {
	if err := c.fs.MkdirAll(dst, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination directory: %s", dst).
			WithDetail("path", dst)
	}
	stats.Dirs++

	entries, err := afero.ReadDir(c.fs, src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirRead, "failed to read source directory: %s", src).
			WithDetail("path", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		mode := entry.Mode()
		if mode&os.ModeSymlink != 0 {
			target, err := c.fs.Stat(srcPath)
			if err != nil {
				c.logger.Warn().Err(err).Str("path", srcPath).Msg("Skipping dangling symlink")
				stats.Skipped++
				continue
			}
			if target.IsDir() {
				c.logger.Warn().Str("path", srcPath).Msg("Skipping symlink to directory")
				stats.Skipped++
				continue
			}
			mode = target.Mode()
		}

		switch {
		case mode.IsDir():
			if strings.HasPrefix(entry.Name(), VCSPrefix) {
				c.logger.Debug().Str("path", srcPath).Msg("Skipping version control directory")
				stats.Skipped++
				continue
			}
			if err := c.copyDir(srcPath, dstPath, vars, stats); err != nil {
				return err
			}
		case mode.IsRegular():
			if err := c.copyFile(srcPath, dstPath, mode.Perm(), vars); err != nil {
				return err
			}
			stats.Files++
		default:
			c.logger.Warn().Str("path", srcPath).Str("mode", mode.String()).Msg("Skipping special file")
			stats.Skipped++
		}
	}

	return nil
}

func (c *Copier) copyFile(src, dst string, perm os.FileMode, vars tokens.Vars) error {
	data, err := afero.ReadFile(c.fs, src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read file: %s", src).
			WithDetail("path", src)
	}

	if utf8.Valid(data) {
		data = []byte(vars.Apply(string(data)))
	} else if !c.binaryPassthrough {
		return errors.Newf(errors.ErrNonTextFile, "file is not valid UTF-8 text: %s (use --binary-passthrough to copy it unmodified)", src).
			WithDetail("path", src)
	} else {
		c.logger.Debug().Str("path", src).Msg("Copying binary file without substitution")
	}

	if err := afero.WriteFile(c.fs, dst, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write to output file: %s", dst).
			WithDetail("path", dst)
	}

	c.logger.Trace().Str("src", src).Str("dst", dst).Msg("Copied file")
	if c.onFile != nil {
		c.onFile(src, dst)
	}
	return nil
}
