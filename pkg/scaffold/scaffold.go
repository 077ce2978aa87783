// Package scaffold drives a complete project instantiation: it resolves the
// template for a language, runs the "before" commands, copies the template
// into the output directory and runs the "after" commands inside it.
//
// Each stage short-circuits the run on its first error, which is returned
// as a *StageError. Nothing already written or executed is undone.
package scaffold

import (
	"context"

	"github.com/arthur-debert/ctp/pkg/config"
	"github.com/arthur-debert/ctp/pkg/copier"
	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/logging"
	"github.com/arthur-debert/ctp/pkg/options"
	"github.com/arthur-debert/ctp/pkg/paths"
	"github.com/arthur-debert/ctp/pkg/runner"
	"github.com/arthur-debert/ctp/pkg/tokens"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CommandRunner executes a single configured command line.
type CommandRunner interface {
	Run(ctx context.Context, line string, vars tokens.Vars, dir string) error
}

// TreeCopier replicates a template directory.
type TreeCopier interface {
	CopyTree(src, dst string, vars tokens.Vars) (copier.Stats, error)
}

// Scaffolder runs the scaffolding pipeline.
type Scaffolder struct {
	runner CommandRunner
	copier TreeCopier
	fs     afero.Fs
	logger zerolog.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

func WithRunner(r CommandRunner) Option {
	return func(s *Scaffolder) { s.runner = r }
}

func WithCopier(c TreeCopier) Option {
	return func(s *Scaffolder) { s.copier = c }
}

// WithFs sets the filesystem used to check the output directory. It should
// be the same filesystem the copier writes to.
func WithFs(fs afero.Fs) Option {
	return func(s *Scaffolder) { s.fs = fs }
}

// New creates a Scaffolder backed by the OS filesystem and real processes
// unless overridden.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{logger: logging.GetLogger("scaffold")}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.runner == nil {
		s.runner = runner.New()
	}
	if s.copier == nil {
		s.copier = copier.New(copier.WithFs(s.fs))
	}
	return s
}

// Result summarizes a successful run.
type Result struct {
	Template  string
	Output    string
	Stats     copier.Stats
	BeforeRun int
	AfterRun  int
}

// Run instantiates the template for opts.Language into opts.OutputPath.
// Before commands run in the caller's working directory; after commands run
// in the output directory. The process working directory is not changed.
func (s *Scaffolder) Run(ctx context.Context, opts options.Options, doc *config.Document) (Result, error) {
	logger := s.logger.With().
		Str("language", opts.Language).
		Str("project", opts.ProjectName).
		Str("output", opts.OutputPath).
		Logger()
	done := logging.LogOperationStart(logger, "scaffold")
	defer done()

	result := Result{Output: opts.OutputPath}
	vars := opts.Vars()

	template, err := resolveTemplate(doc, opts.Language)
	if err != nil {
		return result, stageErr(StageResolveTemplate, err)
	}
	result.Template = template
	logger.Info().Str("template", template).Msg("Resolved template")

	result.BeforeRun, err = s.runCommands(ctx, doc, opts.Language, config.Before, vars, "")
	if err != nil {
		return result, stageErr(StageBeforeCommands, err)
	}

	result.Stats, err = s.copier.CopyTree(template, opts.OutputPath, vars)
	if err != nil {
		return result, stageErr(StageCopyTree, err)
	}
	logger.Info().
		Int("files", result.Stats.Files).
		Int("dirs", result.Stats.Dirs).
		Int("skipped", result.Stats.Skipped).
		Msg("Copied template")

	workDir, err := s.enterOutput(opts.OutputPath)
	if err != nil {
		return result, stageErr(StageEnterOutput, err)
	}

	result.AfterRun, err = s.runCommands(ctx, doc, opts.Language, config.After, vars, workDir)
	if err != nil {
		return result, stageErr(StageAfterCommands, err)
	}

	logger.Info().Msg("Project created")
	return result, nil
}

func resolveTemplate(doc *config.Document, language string) (string, error) {
	location, err := doc.TemplateLocation(language)
	if err != nil {
		return "", err
	}
	return paths.ResolveTemplate(location)
}

// runCommands runs the variant's commands in order and stops at the first
// failure. It returns how many commands succeeded.
func (s *Scaffolder) runCommands(ctx context.Context, doc *config.Document, language string, variant config.Variant, vars tokens.Vars, dir string) (int, error) {
	commands, ok, err := doc.Commands(language, variant)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	for i, line := range commands {
		s.logger.Debug().
			Str("variant", variant.String()).
			Int("index", i).
			Str("command", line).
			Msg("Running command")
		if err := s.runner.Run(ctx, line, vars, dir); err != nil {
			return i, err
		}
	}
	return len(commands), nil
}

func (s *Scaffolder) enterOutput(output string) (string, error) {
	info, err := s.fs.Stat(output)
	if err != nil || !info.IsDir() {
		e := errors.Newf(errors.ErrOutputNotDir, "output directory is not available: %s", output).
			WithDetail("path", output)
		e.Wrapped = err
		return "", e
	}
	return output, nil
}
