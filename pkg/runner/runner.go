// Package runner executes configured command lines as child processes.
//
// A command line is token-substituted, split on whitespace into a program
// and its arguments, and run to completion with its output captured. No
// shell is involved: quotes, pipes and redirections are passed through as
// literal arguments.
package runner

import (
	"bytes"
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/logging"
	"github.com/arthur-debert/ctp/pkg/tokens"
	"github.com/rs/zerolog"
)

// Environment variables exported to every command.
const (
	EnvProjectName = "CTP_PROJECT_NAME"
	EnvOutput      = "CTP_OUTPUT"
)

// Runner runs one command line at a time. It holds no per-run state.
type Runner struct {
	logger zerolog.Logger
	out    io.Writer
	env    []string
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets where the command echo and captured output are written.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithEnv replaces the base environment passed to commands.
func WithEnv(env []string) Option {
	return func(r *Runner) { r.env = env }
}

// New creates a Runner writing to stdout and inheriting the process environment.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: logging.GetLogger("runner"),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Split breaks a command line on ASCII whitespace. ok is false when the line
// holds no program.
func Split(line string) (program string, args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}

// Run substitutes vars into line and executes it in dir, or in the current
// directory when dir is empty. It blocks until the child exits; no timeout
// is applied beyond what ctx imposes.
func (r *Runner) Run(ctx context.Context, line string, vars tokens.Vars, dir string) error {
	substituted := vars.Apply(line)

	program, args, ok := Split(substituted)
	if !ok {
		return errors.New(errors.ErrEmptyCommand, "Cannot execute empty command.").
			WithDetail("command", line)
	}

	fmt.Fprintf(r.out, "Executing: %s [%s]\n", program, strings.Join(args, ", "))
	logging.LogCommand(r.logger, program, args, dir)

	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir
	cmd.Env = append(r.baseEnv(),
		EnvProjectName+"="+vars.ProjectName,
		EnvOutput+"="+vars.OutputPath,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stdout.Len() > 0 {
		fmt.Fprint(r.out, stdout.String())
		r.logger.Debug().Str("output", stdout.String()).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		fmt.Fprint(r.out, stderr.String())
		r.logger.Debug().Str("output", stderr.String()).Msg("Command stderr")
	}

	if err == nil {
		r.logger.Info().Str("command", substituted).Msg("Command executed successfully")
		return nil
	}

	var exitErr *exec.ExitError
	if goerrors.As(err, &exitErr) {
		r.logger.Error().
			Str("command", substituted).
			Int("exitCode", exitErr.ExitCode()).
			Str("stderr", stderr.String()).
			Msg("Command exited with failure")

		return errors.Newf(errors.ErrCommandExit, "command %q failed with %s", substituted, exitErr.ProcessState.String()).
			WithDetail("command", substituted).
			WithDetail("exitCode", exitErr.ExitCode()).
			WithDetail("stderr", stderr.String())
	}

	r.logger.Error().Err(err).Str("command", substituted).Msg("Command could not be started")
	return errors.Wrapf(err, errors.ErrCommandLaunch, "failed to execute command %q", substituted).
		WithDetail("command", substituted).
		WithDetail("dir", dir)
}

func (r *Runner) baseEnv() []string {
	if r.env != nil {
		return append([]string(nil), r.env...)
	}
	return os.Environ()
}
