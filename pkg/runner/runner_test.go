package runner

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/ctp/pkg/errors"
	"github.com/arthur-debert/ctp/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vars = tokens.Vars{ProjectName: "demo", OutputPath: "/tmp/demo"}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX utilities")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		program string
		args    []string
		ok      bool
	}{
		{"program_only", "ls", "ls", []string{}, true},
		{"with_args", "git commit -m init", "git", []string{"commit", "-m", "init"}, true},
		{"extra_whitespace", "  go\tmod \n init  ", "go", []string{"mod", "init"}, true},
		{"quotes_are_literal", `echo "a b"`, "echo", []string{`"a`, `b"`}, true},
		{"empty", "", "", nil, false},
		{"whitespace_only", " \t\n ", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, args, ok := Split(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.program, program)
			if tt.ok {
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestRunEmptyCommand(t *testing.T) {
	for _, line := range []string{"", "   ", "\t\n"} {
		var out bytes.Buffer
		r := New(WithOutput(&out))

		err := r.Run(context.Background(), line, vars, "")

		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyCommand))
		assert.Equal(t, "Cannot execute empty command.", err.Error())
		assert.Empty(t, out.String(), "nothing should be echoed for an empty command")
	}
}

func TestRunEmptyAfterSubstitution(t *testing.T) {
	r := New(WithOutput(&bytes.Buffer{}))
	err := r.Run(context.Background(), "{{__NAME__}}", tokens.Vars{ProjectName: " "}, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyCommand))
}

func TestRunEchoesCommandAndOutput(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := New(WithOutput(&out))

	err := r.Run(context.Background(), "echo {{__NAME__}} {{__OUT__}}", vars, "")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Executing: echo [demo, /tmp/demo]\n")
	assert.Contains(t, out.String(), "demo /tmp/demo\n")
}

func TestRunNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := New(WithOutput(&out))

	err := r.Run(context.Background(), "ls /ctp-path-that-does-not-exist", vars, "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExit))
	details := errors.GetErrorDetails(err)
	assert.NotEqual(t, 0, details["exitCode"])
	assert.NotEmpty(t, details["stderr"])
	assert.Contains(t, out.String(), "ctp-path-that-does-not-exist", "stderr should be echoed")
}

func TestRunFalse(t *testing.T) {
	skipOnWindows(t)
	r := New(WithOutput(&bytes.Buffer{}))

	err := r.Run(context.Background(), "false", vars, "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExit))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["exitCode"])
}

func TestRunLaunchFailure(t *testing.T) {
	r := New(WithOutput(&bytes.Buffer{}))

	err := r.Run(context.Background(), "ctp-no-such-binary-4821 --flag", vars, "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandLaunch))
	assert.Equal(t, "ctp-no-such-binary-4821 --flag", errors.GetErrorDetails(err)["command"])
}

func TestRunInWorkingDirectory(t *testing.T) {
	skipOnWindows(t)
	dir := t.TempDir()
	var out bytes.Buffer
	r := New(WithOutput(&out))

	require.NoError(t, r.Run(context.Background(), "pwd", vars, dir))

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.True(t,
		strings.Contains(out.String(), dir) || strings.Contains(out.String(), resolved),
		"output %q should name %s", out.String(), dir)
}

func TestRunExportsEnvironment(t *testing.T) {
	skipOnWindows(t)
	var out bytes.Buffer
	r := New(WithOutput(&out), WithEnv([]string{"PATH=/usr/bin:/bin"}))

	require.NoError(t, r.Run(context.Background(), "printenv CTP_PROJECT_NAME CTP_OUTPUT", vars, ""))

	assert.Contains(t, out.String(), "demo\n/tmp/demo\n")
}
