package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the program.
// These codes signal the outcome of the execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates the wrap-identity cross-check failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags
// or malformed coefficient lists. It indicates that the application cannot
// proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ConvolutionError encapsulates a convolution failure while preserving the
// original cause, so callers can inspect what went wrong with errors.Is and
// errors.As.
type ConvolutionError struct {
	// Cause is the underlying error that triggered this failure.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e ConvolutionError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error.
func (e ConvolutionError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies
// which field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w,
// preserving the chain for errors.Is and errors.As. Returns nil if err is
// nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the ANSI color codes used when rendering error
// messages, decoupling this package from the terminal theme layer.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleConvolutionError writes a user-facing description of a failed run
// and returns the exit code matching the failure class.
func HandleConvolutionError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sTimeout exceeded after %s.%s\n", colors.Red(), duration, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sOperation canceled.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
