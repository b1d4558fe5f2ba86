package aws_utils

import (
	"context"
	"net"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"

	errUtils "github.com/cloudposse/ekscli/errors"
)

// errorCodeHints maps common EKS error codes to a remediation hint.
var errorCodeHints = map[string]string{
	"ResourceNotFoundException":            "Check the cluster and resource names passed to the command",
	"AccessDeniedException":                "Check the IAM permissions of the calling identity",
	"UnrecognizedClientException":          "Check that the AWS credentials are valid for this region",
	"ExpiredTokenException":                "Refresh the AWS session credentials",
	"InvalidParameterException":            "Check the values passed to the command flags",
	"InvalidRequestException":              "The resource is not in a state that allows this operation",
	"ResourceInUseException":               "The resource is in use; wait for pending updates to finish",
	"ThrottlingException":                  "The request was throttled; retry later or raise aws.max_attempts",
	"ServiceUnavailableException":          "The service is temporarily unavailable; retry later",
	"ClientException":                      "Check the values passed to the command flags",
	"ServerException":                      "The service failed to process the request; retry later",
	"ResourceLimitExceededException":       "A service quota was reached",
	"UnsupportedAvailabilityZoneException": "Choose a supported availability zone",
}

// WrapRemoteError classifies an error returned by an SDK call.
// A cancelled call matches errUtils.ErrOperationCancelled. Any other failure matches
// errUtils.ErrRemoteCall, and also ErrNameResolution when the endpoint did not resolve.
// It returns nil for a nil error.
func WrapRemoteError(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return errUtils.Build(err).
			WithSentinel(errUtils.ErrOperationCancelled).
			WithContext("operation", operation).
			Err()
	}

	b := errUtils.Build(err).
		WithSentinel(errUtils.ErrRemoteCall).
		WithContext("operation", operation)

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return b.WithSentinel(errUtils.ErrNameResolution).
			WithExplanation("The service endpoint host name did not resolve. "+
				"This usually means a mistyped region or endpoint URL, or no DNS on this network.").
			WithHintf("Could not resolve %s; check the region and --endpoint-url", dnsErr.Name).
			Err()
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		b = b.WithContext("status", respErr.HTTPStatusCode())
		if respErr.RequestID != "" {
			b = b.WithContext("request_id", respErr.RequestID)
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		b = b.WithContext("error_code", apiErr.ErrorCode())
		if hint, ok := errorCodeHints[apiErr.ErrorCode()]; ok {
			b = b.WithHint(hint)
		}
	}

	return b.Err()
}
