// Package errors provides error handling conventions for the murf-setup CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It also re-exports the wrapping
// helpers from cockroachdb/errors so callers need a single import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, setuperrors.ErrPrerequisiteMissing) {
//	    // tell the user how to install the prerequisite
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Installation completed successfully
//   - ExitUser (1): User-related error (unsupported OS, missing config, etc.)
//   - ExitSystem (2): System-related error (I/O, network, registry)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := setuperrors.NewUserError(setuperrors.ErrPrerequisiteMissing, "Install Homebrew first")
//	var exitErr *setuperrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
