// Package errors provides typed error definitions for umbrel-dev.
// This package consolidates error handling and provides structured error types
// that can be used for better error classification and handling.
package errors

import (
	stderrors "errors"
	"fmt"
	"os/exec"
)

// ErrorCode represents a unique identifier for different error types
type ErrorCode string

const (
	// Environment errors
	ErrEnvNotInitialized ErrorCode = "ENV_NOT_INITIALIZED"
	ErrEnvNotEmpty       ErrorCode = "ENV_NOT_EMPTY"
	ErrEnvLocked         ErrorCode = "ENV_LOCKED"

	// Host dependency errors
	ErrDependencyMissing ErrorCode = "DEPENDENCY_MISSING"

	// Argument errors
	ErrArgMissing ErrorCode = "ARG_MISSING"

	// Git errors
	ErrGitCloneFailed ErrorCode = "GIT_CLONE_FAILED"
	ErrGitRepoInvalid ErrorCode = "GIT_REPO_INVALID"

	// VM errors
	ErrVMCommandFailed ErrorCode = "VM_COMMAND_FAILED"
	ErrVMNotRunning    ErrorCode = "VM_NOT_RUNNING"

	// Configuration errors
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrComposeParse   ErrorCode = "COMPOSE_PARSE"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// File/IO errors
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileSystem ErrorCode = "FILE_SYSTEM"

	// Internal errors
	ErrCancelled ErrorCode = "CANCELLED"
)

// UmbrelError represents a structured error with additional context
type UmbrelError struct {
	Code    ErrorCode
	Message string
	Details string
	Cause   error
}

// Error implements the error interface
func (e *UmbrelError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *UmbrelError) Unwrap() error {
	return e.Cause
}

// New creates a new UmbrelError
func New(code ErrorCode, message string) *UmbrelError {
	return &UmbrelError{
		Code:    code,
		Message: message,
	}
}

// NewWithDetails creates a new UmbrelError with details
func NewWithDetails(code ErrorCode, message, details string) *UmbrelError {
	return &UmbrelError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Wrap creates a new UmbrelError that wraps an existing error
func Wrap(code ErrorCode, message string, cause error) *UmbrelError {
	return &UmbrelError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithDetails creates a new UmbrelError with details that wraps an existing error
func WrapWithDetails(code ErrorCode, message, details string, cause error) *UmbrelError {
	return &UmbrelError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// GetCode extracts the error code from an error, if it's an UmbrelError
func GetCode(err error) ErrorCode {
	var ue *UmbrelError
	if stderrors.As(err, &ue) {
		return ue.Code
	}
	return ""
}

// HasCode checks if an error has a specific error code
func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// ExitError carries an explicit process exit status. Commands that mirror an
// external tool's exit status wrap its error in one of these; commands that
// print their own diagnostics mark the error silent so main does not repeat
// them.
type ExitError struct {
	Code   int
	Silent bool
	Err    error
}

// Error implements the error interface
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the wrapped error
func (e *ExitError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err with an explicit exit code
func WithExitCode(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// SilentExit returns an error that sets the exit status without any output
func SilentExit(code int) *ExitError {
	return &ExitError{Code: code, Silent: true}
}

// ExitCode resolves the process exit status for err. Explicit codes win,
// then the exit status of a failed external process, then 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if stderrors.As(err, &ee) {
		return ee.Code
	}
	var xe *exec.ExitError
	if stderrors.As(err, &xe) {
		return xe.ExitCode()
	}
	return 1
}

// IsSilent reports whether err has already been reported to the user
func IsSilent(err error) bool {
	var ee *ExitError
	return stderrors.As(err, &ee) && ee.Silent
}

// PassthroughExit converts a finished external command's non-zero exit into a
// silent exit with the same status. The tool already wrote its diagnostics to
// the terminal; repeating them as an error adds nothing. Other errors pass
// through unchanged.
func PassthroughExit(err error) error {
	if err == nil {
		return nil
	}
	var xe *exec.ExitError
	if stderrors.As(err, &xe) {
		return &ExitError{Code: xe.ExitCode(), Silent: true, Err: err}
	}
	return err
}
