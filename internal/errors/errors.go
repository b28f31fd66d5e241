package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the installer.
const (
	// ExitSuccess indicates the installation completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (unsupported OS, missing
	// prerequisite, unrecoverable config path, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, registry).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnsupportedOS indicates the host operating system has no
	// installation path defined.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrPrerequisiteMissing indicates a required external tool (such as
	// Homebrew) is not available on the execution path.
	ErrPrerequisiteMissing = errors.New("prerequisite missing")

	// ErrConfigNotFound indicates the client configuration file could not
	// be located, even after interactive correction.
	ErrConfigNotFound = errors.New("client config file not found")

	// ErrRegistryUnavailable indicates the persistent environment store
	// cannot be accessed on this host.
	ErrRegistryUnavailable = errors.New("user environment registry unavailable")
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
