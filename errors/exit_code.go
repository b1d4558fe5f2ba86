package errors

import (
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
)

const (
	// ExitCodeRemote is used for failures reported by the remote service.
	ExitCodeRemote = 1
	// ExitCodeConfig is used for invalid invocations detected before any remote call.
	ExitCodeConfig = 2
	// ExitCodeCancelled follows the POSIX convention for SIGINT (128 + 2).
	ExitCodeCancelled = 130
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

// GetExitCode extracts the exit code from an error chain.
//
// It checks, in order:
//  1. an exit code attached via WithExitCode,
//  2. cancellation (context.Canceled or ErrOperationCancelled),
//  3. exec.ExitError,
//  4. configuration sentinels,
//  5. the default of 1.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, ErrOperationCancelled) {
		return ExitCodeCancelled
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	if IsConfigError(err) {
		return ExitCodeConfig
	}

	return ExitCodeRemote
}

// IsConfigError reports whether err was detected before any remote call.
func IsConfigError(err error) bool {
	for _, sentinel := range []error{
		ErrMissingRequiredParameter,
		ErrUnknownParameter,
		ErrInvalidSelector,
		ErrInvalidRequestMapping,
		ErrInvalidFlagValue,
		ErrInvalidLogLevel,
		ErrInvalidOutputFormat,
		ErrConfirmationRequired,
		ErrOperationNotFound,
		ErrLoadConfig,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
