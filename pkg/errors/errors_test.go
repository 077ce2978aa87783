package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/ctp/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "language_not_found",
			code:    errors.ErrLanguageNotFound,
			message: `The language "rust" could not be found in your config.`,
			wantStr: `The language "rust" could not be found in your config.`,
		},
		{
			name:    "empty_command",
			code:    errors.ErrEmptyCommand,
			message: "Cannot execute empty command.",
			wantStr: "Cannot execute empty command.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrCommandExit, "command %q exited with status %d", "make", 2)
	if err.Message != `command "make" exited with status 2` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "failed to read file: /tpl/main.py")

		if err.Code != errors.ErrFileRead {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrFileRead)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "failed to read file: /tpl/main.py: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCommandExit, "exited").
		WithDetail("command", "make build").
		WithDetail("exitCode", 2)

	if err.Details["command"] != "make build" {
		t.Errorf("WithDetail() command = %v", err.Details["command"])
	}
	if err.Details["exitCode"] != 2 {
		t.Errorf("WithDetail() exitCode = %v", err.Details["exitCode"])
	}

	var zero errors.CtpError
	zero.WithDetail("path", "/x")
	if zero.Details["path"] != "/x" {
		t.Error("WithDetail() should initialize nil details")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDestinationExists, "error 1")
	err2 := errors.New(errors.ErrDestinationExists, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_through_fmt_wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("copy tree: %w", err1)
		if !stderrors.Is(wrapped, err2) {
			t.Error("errors.Is() should see through fmt.Errorf wrapping")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrSectionNotFound, "missing"),
			code:     errors.ErrSectionNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrSectionNotFound, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrCommandLaunch, "denied"),
			code:     errors.ErrCommandLaunch,
			expected: true,
		},
		{
			name:     "non_ctp_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrSectionNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrSectionNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrNonTextFile, "binary")); got != errors.ErrNonTextFile {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN", got)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want UNKNOWN", got)
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := fmt.Errorf("stage: %w", errors.New(errors.ErrLanguageNotFound, "nope").WithDetail("language", "go"))
	details := errors.GetErrorDetails(err)
	if details["language"] != "go" {
		t.Errorf("GetErrorDetails() = %v", details)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for non-ctp errors")
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileRead, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(configErr, errors.ErrConfigLoad) {
			t.Error("Top level should have ErrConfigLoad code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var ctpErr *errors.CtpError
		if !stderrors.As(configErr.Unwrap(), &ctpErr) {
			t.Fatal("middle error should be a CtpError")
		}
		if ctpErr.Code != errors.ErrFileRead {
			t.Errorf("middle code = %v, want FILE_READ", ctpErr.Code)
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(configErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
