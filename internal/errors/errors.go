// Package errors defines the exit-code-carrying error type used by the
// dmx-launcher CLI.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for dmx-launcher
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitConfigError  = 2
	ExitMenuNotFound = 3
	ExitMenuInvalid  = 4
	ExitSelectFailed = 5
	ExitLaunchFailed = 6
)

// LauncherError is the base error type for dmx-launcher
type LauncherError struct {
	Code    int
	Message string
	Cause   error
}

func (e *LauncherError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LauncherError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *LauncherError) ExitCode() int {
	return e.Code
}

// New creates a new LauncherError
func New(code int, message string) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a LauncherError
func Wrap(code int, message string, cause error) *LauncherError {
	return &LauncherError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for picker configuration issues
func ConfigError(message string, cause error) *LauncherError {
	return Wrap(ExitConfigError, message, cause)
}

// MenuNotFound returns an error for a missing menu
func MenuNotFound(name string, cause error) *LauncherError {
	return Wrap(ExitMenuNotFound, fmt.Sprintf("menu not found: %s", name), cause)
}

// MenuInvalid returns an error for a malformed menu document
func MenuInvalid(name string, cause error) *LauncherError {
	return Wrap(ExitMenuInvalid, fmt.Sprintf("invalid menu %s", name), cause)
}

// SelectFailed returns an error for picker invocation failures
func SelectFailed(cause error) *LauncherError {
	return Wrap(ExitSelectFailed, "selection failed", cause)
}

// LaunchFailed returns an error for program launch failures
func LaunchFailed(key string, cause error) *LauncherError {
	return Wrap(ExitLaunchFailed, fmt.Sprintf("failed to launch %s", key), cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var launcherErr *LauncherError
	if errors.As(err, &launcherErr) {
		return launcherErr.ExitCode()
	}
	return ExitGeneralError
}
