// Package errors provides coded errors for ctp.
//
// Every failure that reaches the user carries an ErrorCode so that tests
// can assert on the category of a failure without matching message text,
// and a Details map holding the context needed to diagnose it (language,
// section, path, command, exit code).
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrConfigStructure  ErrorCode = "CONFIG_STRUCTURE"
	ErrSectionNotFound  ErrorCode = "SECTION_NOT_FOUND"
	ErrLanguageNotFound ErrorCode = "LANGUAGE_NOT_FOUND"
	ErrInvalidType      ErrorCode = "INVALID_TYPE"

	// Option errors
	ErrNoConfigFile       ErrorCode = "NO_CONFIG_FILE"
	ErrInvalidProjectName ErrorCode = "INVALID_PROJECT_NAME"
	ErrInvalidOutput      ErrorCode = "INVALID_OUTPUT"

	// Process errors
	ErrEmptyCommand  ErrorCode = "EMPTY_COMMAND"
	ErrCommandLaunch ErrorCode = "COMMAND_LAUNCH"
	ErrCommandExit   ErrorCode = "COMMAND_EXIT"

	// FileSystem errors
	ErrDestinationExists ErrorCode = "DESTINATION_EXISTS"
	ErrSourceNotDir      ErrorCode = "SOURCE_NOT_DIR"
	ErrFileRead          ErrorCode = "FILE_READ"
	ErrFileWrite         ErrorCode = "FILE_WRITE"
	ErrDirCreate         ErrorCode = "DIR_CREATE"
	ErrDirRead           ErrorCode = "DIR_READ"
	ErrNonTextFile       ErrorCode = "NON_TEXT_FILE"
	ErrOutputNotDir      ErrorCode = "OUTPUT_NOT_DIR"
)

// CtpError represents a structured error with code and details
type CtpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CtpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *CtpError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CtpError with the same code
func (e *CtpError) Is(target error) bool {
	var targetErr *CtpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CtpError with the given code and message
func New(code ErrorCode, message string) *CtpError {
	return &CtpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CtpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CtpError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a CtpError
func Wrap(err error, code ErrorCode, message string) *CtpError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CtpError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *CtpError) WithDetail(key string, value interface{}) *CtpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ctpErr *CtpError
	if errors.As(err, &ctpErr) {
		return ctpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CtpError
func GetErrorCode(err error) ErrorCode {
	var ctpErr *CtpError
	if errors.As(err, &ctpErr) {
		return ctpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CtpError
func GetErrorDetails(err error) map[string]interface{} {
	var ctpErr *CtpError
	if errors.As(err, &ctpErr) {
		return ctpErr.Details
	}
	return nil
}
