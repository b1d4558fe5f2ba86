package eks

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/ekscli/cmd/internal"
	eksops "github.com/cloudposse/ekscli/pkg/eks"
	log "github.com/cloudposse/ekscli/pkg/logger"
)

// eksCmd groups one subcommand per EKS operation.
var eksCmd = &cobra.Command{
	Use:   "eks",
	Short: "Call Amazon EKS operations",
	Long: `Each subcommand calls one Amazon EKS API operation and writes the selected part of every
response to stdout as it arrives. Paginated operations fetch all pages unless --no-auto-iteration
or an explicit --next-token is given.`,
	FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
	Args:               cobra.NoArgs,
}

func init() {
	// Descriptors are checked against the SDK shapes at startup.
	for _, op := range eksops.Operations() {
		if err := op.Validate(); err != nil {
			log.Error("Skipping invalid operation", "operation", op.Descriptor().Name, "error", err)
			continue
		}
		eksCmd.AddCommand(newOperationCmd(op))
	}

	internal.Register(&CommandProvider{})
}

// CommandProvider implements the CommandProvider interface.
type CommandProvider struct{}

func (p *CommandProvider) GetCommand() *cobra.Command {
	return eksCmd
}

func (p *CommandProvider) GetName() string {
	return "eks"
}

func (p *CommandProvider) GetGroup() string {
	return "Cloud Operations"
}
