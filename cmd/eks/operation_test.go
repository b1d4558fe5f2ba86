package eks

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awseks "github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cloudposse/ekscli/cmd/internal"
	errUtils "github.com/cloudposse/ekscli/errors"
	eksops "github.com/cloudposse/ekscli/pkg/eks"
	"github.com/cloudposse/ekscli/pkg/schema"
	"github.com/cloudposse/ekscli/pkg/ui"
)

type recordingConfirmer struct {
	calls   int
	summary string
	err     error
}

func (r *recordingConfirmer) Confirm(_ context.Context, _, summary string, _ bool) error {
	r.calls++
	r.summary = summary
	return r.err
}

// stubClient swaps the client factory for the duration of a test.
func stubClient(t *testing.T, client eksops.API) {
	t.Helper()
	orig := newClient
	newClient = func(context.Context, *schema.AWS) (eksops.API, error) {
		if client == nil {
			t.Fatal("the service must not be called")
		}
		return client, nil
	}
	t.Cleanup(func() { newClient = orig })
}

func stubConfirmer(t *testing.T, c *recordingConfirmer) {
	t.Helper()
	orig := confirmer
	confirmer = c
	t.Cleanup(func() { confirmer = orig })
}

func execute(t *testing.T, cfg *schema.Configuration, command string, args ...string) (string, error) {
	t.Helper()

	op, err := eksops.Lookup(command)
	require.NoError(t, err)

	cmd := newOperationCmd(op)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(internal.WithConfig(context.Background(), cfg))
	return out.String(), err
}

func jsonConfig() *schema.Configuration {
	return &schema.Configuration{Output: schema.Output{Format: "json"}}
}

func TestEksCmd_HasEveryOperation(t *testing.T) {
	names := make([]string, 0, len(eksCmd.Commands()))
	for _, c := range eksCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, op := range eksops.Operations() {
		assert.Contains(t, names, op.Descriptor().Command)
	}
	assert.Len(t, names, len(eksops.Operations()))
}

func TestOperationCmd_Flags(t *testing.T) {
	op, err := eksops.Lookup("list-addons")
	require.NoError(t, err)
	cmd := newOperationCmd(op)

	for _, name := range []string{"cluster-name", "max-results", "next-token", "select", "force", "no-auto-iteration", "dry-run", "query"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "Addons", cmd.Flags().Lookup("select").DefValue)
	assert.True(t, strings.HasSuffix(cmd.Flags().Lookup("cluster-name").Usage, "(required)"))
	assert.Contains(t, cmd.Long, "--next-token")
}

func TestListAddons_StreamsEveryPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := eksops.NewMockAPI(ctrl)
	stubClient(t, client)

	gomock.InOrder(
		client.EXPECT().ListAddons(gomock.Any(), gomock.Any()).
			Return(&awseks.ListAddonsOutput{Addons: []string{"coredns"}, NextToken: aws.String("t1")}, nil),
		client.EXPECT().ListAddons(gomock.Any(), gomock.Any()).
			Return(&awseks.ListAddonsOutput{Addons: []string{"kube-proxy"}, NextToken: aws.String("t2")}, nil),
		client.EXPECT().ListAddons(gomock.Any(), gomock.Any()).
			Return(&awseks.ListAddonsOutput{Addons: []string{"vpc-cni"}}, nil),
	)

	out, err := execute(t, jsonConfig(), "list-addons", "--cluster-name", "prod", "--max-results", "1")
	require.NoError(t, err)

	assert.Equal(t, "[\n  \"coredns\"\n]\n[\n  \"kube-proxy\"\n]\n[\n  \"vpc-cni\"\n]\n", out)
}

func TestListAddons_YAMLWithQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := eksops.NewMockAPI(ctrl)
	stubClient(t, client)

	client.EXPECT().ListAddons(gomock.Any(), gomock.Any()).
		Return(&awseks.ListAddonsOutput{Addons: []string{"coredns", "kube-proxy"}}, nil)

	cfg := &schema.Configuration{Output: schema.Output{Format: "yaml"}}
	out, err := execute(t, cfg, "list-addons", "--cluster-name", "prod", "--select", "*", "--query", ".Addons[0]")
	require.NoError(t, err)
	assert.Equal(t, "coredns\n", out)
}

func TestListAddons_QueryKeepsEveryNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := eksops.NewMockAPI(ctrl)
	stubClient(t, client)

	client.EXPECT().ListAddons(gomock.Any(), gomock.Any()).
		Return(&awseks.ListAddonsOutput{Addons: []string{"coredns", "kube-proxy"}}, nil)

	out, err := execute(t, jsonConfig(), "list-addons", "--cluster-name", "prod", "--select", "*", "--query", ".Addons[]")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"coredns\",\n  \"kube-proxy\"\n]\n", out)
}

func TestAssociateAccessPolicy_DryRun(t *testing.T) {
	stubClient(t, nil)
	c := &recordingConfirmer{}
	stubConfirmer(t, c)

	out, err := execute(t, jsonConfig(), "associate-access-policy",
		"--cluster-name", "prod",
		"--principal-arn", "arn:aws:iam::123456789012:role/admin",
		"--policy-arn", "arn:aws:eks::aws:cluster-access-policy/AmazonEKSViewPolicy",
		"--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, `"ClusterName": "prod"`)
	assert.NotContains(t, out, "AccessScope")
	assert.NotContains(t, out, "null")
	assert.Zero(t, c.calls, "a dry run never asks for confirmation")
}

func TestDeleteCapability_RequiresConfirmation(t *testing.T) {
	stubClient(t, nil)
	stubConfirmer(t, &recordingConfirmer{err: errUtils.ErrConfirmationRequired})

	_, err := execute(t, jsonConfig(), "delete-capability", "--cluster-name", "prod", "--capability-name", "argo")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrConfirmationRequired)
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}

func TestDeleteCapability_NonInteractiveWithoutForce(t *testing.T) {
	stubClient(t, nil)
	orig := confirmer
	confirmer = &ui.Confirmer{Interactive: func() bool { return false }}
	t.Cleanup(func() { confirmer = orig })

	_, err := execute(t, jsonConfig(), "delete-capability", "--cluster-name", "prod", "--capability-name", "argo")
	assert.ErrorIs(t, err, errUtils.ErrConfirmationRequired)
}

func TestDeleteFargateProfile_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := eksops.NewMockAPI(ctrl)
	stubClient(t, client)
	c := &recordingConfirmer{}
	stubConfirmer(t, c)

	client.EXPECT().DeleteFargateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *awseks.DeleteFargateProfileInput, _ ...func(*awseks.Options)) (*awseks.DeleteFargateProfileOutput, error) {
			assert.Equal(t, "prod", aws.ToString(in.ClusterName))
			assert.Equal(t, "default", aws.ToString(in.FargateProfileName))
			return &awseks.DeleteFargateProfileOutput{
				FargateProfile: &ekstypes.FargateProfile{
					FargateProfileName: aws.String("default"),
					Status:             ekstypes.FargateProfileStatusDeleting,
				},
			}, nil
		})

	out, err := execute(t, jsonConfig(), "delete-fargate-profile", "--cluster-name", "prod", "--fargate-profile-name", "default", "--force")
	require.NoError(t, err)

	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "--cluster-name=prod --fargate-profile-name=default", c.summary)
	assert.Contains(t, out, `"Status": "DELETING"`)
}

func TestDescribeNodegroup_StrictRequired(t *testing.T) {
	stubClient(t, nil)

	cfg := jsonConfig()
	cfg.Validation.StrictRequired = true

	_, err := execute(t, cfg, "describe-nodegroup", "--cluster-name", "prod")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrMissingRequiredParameter)
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}

func TestDescribeNodegroup_LenientRequiredCallsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := eksops.NewMockAPI(ctrl)
	stubClient(t, client)

	client.EXPECT().DescribeNodegroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *awseks.DescribeNodegroupInput, _ ...func(*awseks.Options)) (*awseks.DescribeNodegroupOutput, error) {
			assert.Nil(t, in.NodegroupName)
			return &awseks.DescribeNodegroupOutput{}, nil
		})

	out, err := execute(t, jsonConfig(), "describe-nodegroup", "--cluster-name", "prod")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestDescribeAddon_InvalidSelect(t *testing.T) {
	stubClient(t, nil)

	_, err := execute(t, jsonConfig(), "describe-addon", "--cluster-name", "prod", "--addon-name", "coredns", "--select", "Nodegroup")
	assert.ErrorIs(t, err, errUtils.ErrInvalidSelector)
}

func TestAssociateAccessPolicy_InvalidScopeType(t *testing.T) {
	stubClient(t, nil)

	_, err := execute(t, jsonConfig(), "associate-access-policy", "--access-scope-type", "account")
	assert.ErrorIs(t, err, errUtils.ErrInvalidFlagValue)
}

func TestOperationCmd_RejectsPositionalArgs(t *testing.T) {
	stubClient(t, nil)

	_, err := execute(t, jsonConfig(), "describe-update", "prod")
	assert.Error(t, err)
}
