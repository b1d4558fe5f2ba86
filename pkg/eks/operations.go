package eks

import (
	"context"
	"fmt"

	awseks "github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/samber/lo"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/operation"
	"github.com/cloudposse/ekscli/pkg/perf"
)

const nextTokenParam = "next-token"

// Parameters shared by several operations.
var (
	clusterNameParam = operation.Param{
		Name:        "cluster-name",
		Field:       "ClusterName",
		Kind:        operation.KindString,
		Description: "The name of the cluster",
		Required:    true,
	}
	addonNameParam = operation.Param{
		Name:        "addon-name",
		Field:       "AddonName",
		Kind:        operation.KindString,
		Description: "The name of the add-on",
	}
	capabilityNameParam = operation.Param{
		Name:        "capability-name",
		Field:       "CapabilityName",
		Kind:        operation.KindString,
		Description: "The name of the capability",
		Required:    true,
	}
	nodegroupNameParam = operation.Param{
		Name:        "nodegroup-name",
		Field:       "NodegroupName",
		Kind:        operation.KindString,
		Description: "The name of the node group",
	}
	maxResultsParam = operation.Param{
		Name:        "max-results",
		Field:       "MaxResults",
		Kind:        operation.KindInt,
		Description: "The maximum number of results returned per page",
	}
	nextTokenParamDef = operation.Param{
		Name:        nextTokenParam,
		Field:       "NextToken",
		Kind:        operation.KindString,
		Description: "The continuation token from a previous page; fetches only that page",
	}
)

func required(p operation.Param) operation.Param {
	p.Required = true
	return p
}

func accessScopeTypes() []string {
	return lo.Map(ekstypes.AccessScopeType("").Values(), func(t ekstypes.AccessScopeType, _ int) string {
		return string(t)
	})
}

// operations is the table of every EKS operation the CLI exposes.
var operations = []operation.Operation[API]{
	&operation.Op[API, awseks.AssociateAccessPolicyInput, awseks.AssociateAccessPolicyOutput]{
		Desc: operation.Descriptor{
			Name:    "AssociateAccessPolicy",
			Command: "associate-access-policy",
			Short:   "Associate an access policy and its scope to an access entry",
			Params: []operation.Param{
				clusterNameParam,
				{Name: "principal-arn", Field: "PrincipalArn", Kind: operation.KindString, Required: true, Description: "The ARN of the IAM user or role of the access entry"},
				{Name: "policy-arn", Field: "PolicyArn", Kind: operation.KindString, Required: true, Description: "The ARN of the access policy to associate"},
				{Name: "access-scope-type", Field: "AccessScope.Type", Kind: operation.KindString, ValidValues: accessScopeTypes(), Description: "The scope type of the access policy"},
				{Name: "access-scope-namespace", Field: "AccessScope.Namespaces", Kind: operation.KindStringSlice, Description: "Kubernetes namespaces the policy is scoped to"},
			},
			Destructive:   true,
			DefaultSelect: operation.SelectAll,
		},
		Call: func(ctx context.Context, c API, in *awseks.AssociateAccessPolicyInput) (*awseks.AssociateAccessPolicyOutput, error) {
			return c.AssociateAccessPolicy(ctx, in)
		},
	},
	&operation.Op[API, awseks.DescribeAddonInput, awseks.DescribeAddonOutput]{
		Desc: operation.Descriptor{
			Name:          "DescribeAddon",
			Command:       "describe-addon",
			Short:         "Describe an Amazon EKS add-on",
			Params:        []operation.Param{clusterNameParam, required(addonNameParam)},
			DefaultSelect: "Addon",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeAddonInput) (*awseks.DescribeAddonOutput, error) {
			return c.DescribeAddon(ctx, in)
		},
	},
	&operation.Op[API, awseks.ListAddonsInput, awseks.ListAddonsOutput]{
		Desc: operation.Descriptor{
			Name:          "ListAddons",
			Command:       "list-addons",
			Short:         "List the installed add-ons of a cluster",
			Params:        []operation.Param{clusterNameParam, maxResultsParam, nextTokenParamDef},
			Paginated:     true,
			TokenParam:    nextTokenParam,
			DefaultSelect: "Addons",
		},
		Call: func(ctx context.Context, c API, in *awseks.ListAddonsInput) (*awseks.ListAddonsOutput, error) {
			return c.ListAddons(ctx, in)
		},
		NextToken: func(out *awseks.ListAddonsOutput) *string { return out.NextToken },
		SetToken:  func(in *awseks.ListAddonsInput, token *string) { in.NextToken = token },
	},
	&operation.Op[API, awseks.DescribeAddonVersionsInput, awseks.DescribeAddonVersionsOutput]{
		Desc: operation.Descriptor{
			Name:    "DescribeAddonVersions",
			Command: "describe-addon-versions",
			Short:   "Describe the versions available for add-ons",
			Params: []operation.Param{
				addonNameParam,
				{Name: "kubernetes-version", Field: "KubernetesVersion", Kind: operation.KindString, Description: "The Kubernetes version the add-on can be used with"},
				{Name: "owner", Field: "Owners", Kind: operation.KindStringSlice, Description: "The owner of the add-on"},
				{Name: "publisher", Field: "Publishers", Kind: operation.KindStringSlice, Description: "The publisher of the add-on"},
				{Name: "type", Field: "Types", Kind: operation.KindStringSlice, Description: "The type of the add-on"},
				maxResultsParam,
				nextTokenParamDef,
			},
			Paginated:     true,
			TokenParam:    nextTokenParam,
			DefaultSelect: "Addons",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeAddonVersionsInput) (*awseks.DescribeAddonVersionsOutput, error) {
			return c.DescribeAddonVersions(ctx, in)
		},
		NextToken: func(out *awseks.DescribeAddonVersionsOutput) *string { return out.NextToken },
		SetToken:  func(in *awseks.DescribeAddonVersionsInput, token *string) { in.NextToken = token },
	},
	&operation.Op[API, awseks.DescribeCapabilityInput, awseks.DescribeCapabilityOutput]{
		Desc: operation.Descriptor{
			Name:          "DescribeCapability",
			Command:       "describe-capability",
			Short:         "Describe a capability of a cluster",
			Params:        []operation.Param{clusterNameParam, capabilityNameParam},
			DefaultSelect: "Capability",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeCapabilityInput) (*awseks.DescribeCapabilityOutput, error) {
			return c.DescribeCapability(ctx, in)
		},
	},
	&operation.Op[API, awseks.DescribeIdentityProviderConfigInput, awseks.DescribeIdentityProviderConfigOutput]{
		Desc: operation.Descriptor{
			Name:    "DescribeIdentityProviderConfig",
			Command: "describe-identity-provider-config",
			Short:   "Describe an identity provider configuration",
			Params: []operation.Param{
				clusterNameParam,
				{Name: "identity-provider-config-name", Field: "IdentityProviderConfig.Name", Kind: operation.KindString, Description: "The name of the identity provider configuration"},
				{Name: "identity-provider-config-type", Field: "IdentityProviderConfig.Type", Kind: operation.KindString, ValidValues: []string{"oidc"}, Description: "The type of the identity provider configuration"},
			},
			DefaultSelect: "IdentityProviderConfig",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeIdentityProviderConfigInput) (*awseks.DescribeIdentityProviderConfigOutput, error) {
			return c.DescribeIdentityProviderConfig(ctx, in)
		},
	},
	&operation.Op[API, awseks.DescribeNodegroupInput, awseks.DescribeNodegroupOutput]{
		Desc: operation.Descriptor{
			Name:          "DescribeNodegroup",
			Command:       "describe-nodegroup",
			Short:         "Describe a managed node group",
			Params:        []operation.Param{clusterNameParam, required(nodegroupNameParam)},
			DefaultSelect: "Nodegroup",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeNodegroupInput) (*awseks.DescribeNodegroupOutput, error) {
			return c.DescribeNodegroup(ctx, in)
		},
	},
	&operation.Op[API, awseks.DescribePodIdentityAssociationInput, awseks.DescribePodIdentityAssociationOutput]{
		Desc: operation.Descriptor{
			Name:    "DescribePodIdentityAssociation",
			Command: "describe-pod-identity-association",
			Short:   "Describe an EKS Pod Identity association",
			Params: []operation.Param{
				clusterNameParam,
				{Name: "association-id", Field: "AssociationId", Kind: operation.KindString, Required: true, Description: "The ID of the association"},
			},
			DefaultSelect: "Association",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribePodIdentityAssociationInput) (*awseks.DescribePodIdentityAssociationOutput, error) {
			return c.DescribePodIdentityAssociation(ctx, in)
		},
	},
	&operation.Op[API, awseks.DescribeUpdateInput, awseks.DescribeUpdateOutput]{
		Desc: operation.Descriptor{
			Name:    "DescribeUpdate",
			Command: "describe-update",
			Short:   "Describe an update to a cluster, node group or add-on",
			Params: []operation.Param{
				{Name: "name", Field: "Name", Kind: operation.KindString, Required: true, Description: "The name of the cluster the update belongs to"},
				{Name: "update-id", Field: "UpdateId", Kind: operation.KindString, Required: true, Description: "The ID of the update"},
				nodegroupNameParam,
				addonNameParam,
			},
			DefaultSelect: "Update",
		},
		Call: func(ctx context.Context, c API, in *awseks.DescribeUpdateInput) (*awseks.DescribeUpdateOutput, error) {
			return c.DescribeUpdate(ctx, in)
		},
	},
	&operation.Op[API, awseks.DeleteCapabilityInput, awseks.DeleteCapabilityOutput]{
		Desc: operation.Descriptor{
			Name:          "DeleteCapability",
			Command:       "delete-capability",
			Short:         "Delete a capability from a cluster",
			Params:        []operation.Param{clusterNameParam, capabilityNameParam},
			Destructive:   true,
			DefaultSelect: "Capability",
		},
		Call: func(ctx context.Context, c API, in *awseks.DeleteCapabilityInput) (*awseks.DeleteCapabilityOutput, error) {
			return c.DeleteCapability(ctx, in)
		},
	},
	&operation.Op[API, awseks.DeleteFargateProfileInput, awseks.DeleteFargateProfileOutput]{
		Desc: operation.Descriptor{
			Name:    "DeleteFargateProfile",
			Command: "delete-fargate-profile",
			Short:   "Delete a Fargate profile",
			Params: []operation.Param{
				clusterNameParam,
				{Name: "fargate-profile-name", Field: "FargateProfileName", Kind: operation.KindString, Required: true, Description: "The name of the Fargate profile to delete"},
			},
			Destructive:   true,
			DefaultSelect: "FargateProfile",
		},
		Call: func(ctx context.Context, c API, in *awseks.DeleteFargateProfileInput) (*awseks.DeleteFargateProfileOutput, error) {
			return c.DeleteFargateProfile(ctx, in)
		},
	},
}

// Operations returns every exposed EKS operation in table order.
func Operations() []operation.Operation[API] {
	return append([]operation.Operation[API](nil), operations...)
}

// Lookup finds an operation by its subcommand or remote operation name.
func Lookup(name string) (operation.Operation[API], error) {
	defer perf.Track(nil, "eks.Lookup")()

	op, ok := lo.Find(operations, func(op operation.Operation[API]) bool {
		d := op.Descriptor()
		return d.Command == name || d.Name == name
	})
	if !ok {
		return nil, errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrOperationNotFound, name)).
			WithHint("Run 'ekscli eks --help' to list the available operations").
			Err()
	}
	return op, nil
}
