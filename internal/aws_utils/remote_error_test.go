package aws_utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	cockroach "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ekscli/errors"
)

func apiFailure(code string, status int) error {
	return &smithy.OperationError{
		ServiceID:     "EKS",
		OperationName: "DescribeNodegroup",
		Err: &awshttp.ResponseError{
			ResponseError: &smithyhttp.ResponseError{
				Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
				Err:      &smithy.GenericAPIError{Code: code, Message: "nodegroup not found"},
			},
			RequestID: "req-123",
		},
	}
}

func TestWrapRemoteError_Nil(t *testing.T) {
	assert.NoError(t, WrapRemoteError("ListAddons", nil))
}

func TestWrapRemoteError_APIError(t *testing.T) {
	err := WrapRemoteError("DescribeNodegroup", apiFailure("ResourceNotFoundException", http.StatusNotFound))

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrRemoteCall)
	assert.Equal(t, errUtils.ExitCodeRemote, errUtils.GetExitCode(err))
	assert.Contains(t, err.Error(), "nodegroup not found")
	assert.Contains(t, cockroach.GetAllHints(err), errorCodeHints["ResourceNotFoundException"])

	var apiErr smithy.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "ResourceNotFoundException", apiErr.ErrorCode())
}

func TestWrapRemoteError_UnknownCodeHasNoHint(t *testing.T) {
	err := WrapRemoteError("DescribeNodegroup", apiFailure("SomethingNew", http.StatusBadRequest))

	assert.ErrorIs(t, err, errUtils.ErrRemoteCall)
	assert.Empty(t, cockroach.GetAllHints(err))
}

func TestWrapRemoteError_NameResolution(t *testing.T) {
	cause := fmt.Errorf("send request: %w", &net.DNSError{Err: "no such host", Name: "eks.nowhere-1.amazonaws.com", IsNotFound: true})

	err := WrapRemoteError("ListAddons", cause)

	assert.ErrorIs(t, err, errUtils.ErrRemoteCall)
	assert.ErrorIs(t, err, errUtils.ErrNameResolution)
	hints := cockroach.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "eks.nowhere-1.amazonaws.com")
	assert.Len(t, cockroach.GetAllDetails(err), 1)
}

func TestWrapRemoteError_Cancelled(t *testing.T) {
	err := WrapRemoteError("ListAddons", &smithy.CanceledError{Err: context.Canceled})

	assert.ErrorIs(t, err, errUtils.ErrOperationCancelled)
	assert.False(t, errors.Is(err, errUtils.ErrRemoteCall))
	assert.Equal(t, errUtils.ExitCodeCancelled, errUtils.GetExitCode(err))
}
