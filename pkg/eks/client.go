// Package eks exposes Amazon EKS operations as descriptors for the operation pipeline.
package eks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseks "github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/cloudposse/ekscli/pkg/perf"
)

// API is the subset of the EKS client the CLI calls. It allows us to mock the AWS EKS client.
type API interface {
	AssociateAccessPolicy(ctx context.Context, params *awseks.AssociateAccessPolicyInput, optFns ...func(*awseks.Options)) (*awseks.AssociateAccessPolicyOutput, error)
	DescribeAddon(ctx context.Context, params *awseks.DescribeAddonInput, optFns ...func(*awseks.Options)) (*awseks.DescribeAddonOutput, error)
	ListAddons(ctx context.Context, params *awseks.ListAddonsInput, optFns ...func(*awseks.Options)) (*awseks.ListAddonsOutput, error)
	DescribeAddonVersions(ctx context.Context, params *awseks.DescribeAddonVersionsInput, optFns ...func(*awseks.Options)) (*awseks.DescribeAddonVersionsOutput, error)
	DescribeCapability(ctx context.Context, params *awseks.DescribeCapabilityInput, optFns ...func(*awseks.Options)) (*awseks.DescribeCapabilityOutput, error)
	DescribeIdentityProviderConfig(ctx context.Context, params *awseks.DescribeIdentityProviderConfigInput, optFns ...func(*awseks.Options)) (*awseks.DescribeIdentityProviderConfigOutput, error)
	DescribeNodegroup(ctx context.Context, params *awseks.DescribeNodegroupInput, optFns ...func(*awseks.Options)) (*awseks.DescribeNodegroupOutput, error)
	DescribePodIdentityAssociation(ctx context.Context, params *awseks.DescribePodIdentityAssociationInput, optFns ...func(*awseks.Options)) (*awseks.DescribePodIdentityAssociationOutput, error)
	DescribeUpdate(ctx context.Context, params *awseks.DescribeUpdateInput, optFns ...func(*awseks.Options)) (*awseks.DescribeUpdateOutput, error)
	DeleteCapability(ctx context.Context, params *awseks.DeleteCapabilityInput, optFns ...func(*awseks.Options)) (*awseks.DeleteCapabilityOutput, error)
	DeleteFargateProfile(ctx context.Context, params *awseks.DeleteFargateProfileInput, optFns ...func(*awseks.Options)) (*awseks.DeleteFargateProfileOutput, error)
}

// Ensure the SDK client satisfies API.
var _ API = (*awseks.Client)(nil)

// NewClient creates an EKS client. The client is reused for every page of an invocation.
func NewClient(cfg aws.Config) API {
	defer perf.Track(nil, "eks.NewClient")()

	return awseks.NewFromConfig(cfg)
}
