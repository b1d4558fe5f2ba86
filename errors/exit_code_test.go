package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), ExitCodeRemote},
		{"explicit exit code", WithExitCode(errors.New("boom"), 7), 7},
		{"missing required parameter", fmt.Errorf(ErrWrapFormat, ErrMissingRequiredParameter, errors.New("cluster-name")), ExitCodeConfig},
		{"invalid selector", Build(ErrInvalidSelector).Err(), ExitCodeConfig},
		{"context cancelled", fmt.Errorf("list addons: %w", context.Canceled), ExitCodeCancelled},
		{"operation cancelled", Build(ErrOperationCancelled).Err(), ExitCodeCancelled},
		{"remote call", Build(errors.New("throttled")).WithSentinel(ErrRemoteCall).Err(), ExitCodeRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.Nil(t, WithExitCode(nil, 3))
}

func TestWithExitCode_Unwrap(t *testing.T) {
	err := WithExitCode(ErrUserAborted, 5)
	assert.ErrorIs(t, err, ErrUserAborted)
	assert.Equal(t, ErrUserAborted.Error(), err.Error())
}

func TestIsConfigError(t *testing.T) {
	assert.True(t, IsConfigError(ErrConfirmationRequired))
	assert.False(t, IsConfigError(ErrRemoteCall))
	assert.False(t, IsConfigError(errors.New("boom")))
}
