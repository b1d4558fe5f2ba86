package errors

import (
	"github.com/cockroachdb/errors"
)

// Configuration errors. Detected before any remote call.
var (
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	ErrUnknownParameter         = errors.New("unknown parameter")
	ErrInvalidSelector          = errors.New("invalid select expression")
	ErrInvalidRequestMapping    = errors.New("invalid request field mapping")
	ErrInvalidFlagValue         = errors.New("invalid flag value")
	ErrInvalidLogLevel          = errors.New("invalid log level")
	ErrInvalidOutputFormat      = errors.New("invalid output format")
	ErrConfirmationRequired     = errors.New("confirmation required")
	ErrUserAborted              = errors.New("operation aborted by user")
	ErrOperationNotFound        = errors.New("operation not found")
	ErrLoadConfig               = errors.New("failed to load configuration")
	ErrLoadAwsConfig            = errors.New("failed to load AWS config")
)

// Remote errors. Surfaced by the SDK while an operation is in flight.
var (
	ErrRemoteCall         = errors.New("remote call failed")
	ErrNameResolution     = errors.New("name resolution failure")
	ErrOperationCancelled = errors.New("operation cancelled")
)

// Output errors.
var (
	ErrQueryEvaluation = errors.New("failed to evaluate query")
	ErrWriteOutput     = errors.New("failed to write output")
)

// ErrWrapFormat joins a sentinel with its cause so both match errors.Is.
const ErrWrapFormat = "%w: %w"
