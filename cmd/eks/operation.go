package eks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cloudposse/ekscli/cmd/internal"
	"github.com/cloudposse/ekscli/internal/aws_utils"
	"github.com/cloudposse/ekscli/pkg/data"
	eksops "github.com/cloudposse/ekscli/pkg/eks"
	"github.com/cloudposse/ekscli/pkg/flags"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/operation"
	"github.com/cloudposse/ekscli/pkg/perf"
	"github.com/cloudposse/ekscli/pkg/schema"
	"github.com/cloudposse/ekscli/pkg/ui"
)

const (
	selectFlag          = "select"
	forceFlag           = "force"
	noAutoIterationFlag = "no-auto-iteration"
	dryRunFlag          = "dry-run"
	queryFlag           = "query"
)

// newClient builds the EKS client for an invocation.
var newClient = func(ctx context.Context, settings *schema.AWS) (eksops.API, error) {
	cfg, err := aws_utils.LoadAWSConfig(ctx, settings)
	if err != nil {
		return nil, err
	}
	return eksops.NewClient(cfg), nil
}

// confirmer gates destructive operations.
var confirmer interface {
	Confirm(ctx context.Context, operation, summary string, force bool) error
} = ui.NewConfirmer()

// runOptions are the flags every operation subcommand shares.
type runOptions struct {
	Select          string
	Force           bool
	NoAutoIteration bool
	DryRun          bool
	Query           string
}

// newOperationCmd builds the subcommand for one operation. Parameter flags come from the descriptor.
func newOperationCmd(op operation.Operation[eksops.API]) *cobra.Command {
	d := op.Descriptor()

	params := flags.NewStandardFlagParser(paramFlagOptions(d)...)

	defaultSelect := lo.Ternary(d.DefaultSelect == "", operation.SelectAll, d.DefaultSelect)
	common := flags.NewStandardFlagParser(
		flags.WithStringFlag(selectFlag, "", defaultSelect, "Part of each response to write: '*', a response field, or '^<parameter>'"),
		flags.WithBoolFlag(forceFlag, "f", false, "Skip the confirmation prompt for operations that modify remote state"),
		flags.WithBoolFlag(noAutoIterationFlag, "", false, "Fetch a single page instead of following continuation tokens"),
		flags.WithBoolFlag(dryRunFlag, "", false, "Print the request that would be sent without calling the service"),
		flags.WithStringFlag(queryFlag, "q", "", "yq expression applied to every emitted document"),
	)

	cmd := &cobra.Command{
		Use:                d.Command,
		Short:              d.Short,
		Long:               longDescription(d),
		Args:               cobra.NoArgs,
		FParseErrWhitelist: struct{ UnknownFlags bool }{UnknownFlags: false},
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := params.ChangedValues(cmd)
			if err != nil {
				return err
			}
			opts, err := parseRunOptions(cmd)
			if err != nil {
				return err
			}
			return run(cmd, op, values, opts)
		},
	}

	params.RegisterFlags(cmd)
	common.RegisterFlags(cmd)

	return cmd
}

func paramFlagOptions(d *operation.Descriptor) []flags.Option {
	var opts []flags.Option
	for _, p := range d.Params {
		switch p.Kind {
		case operation.KindInt:
			opts = append(opts, flags.WithIntFlag(p.Name, "", 0, p.Description))
		case operation.KindStringSlice:
			opts = append(opts, flags.WithStringSliceFlag(p.Name, "", nil, p.Description))
		default:
			opts = append(opts, flags.WithStringFlag(p.Name, "", "", p.Description))
		}
		if p.Required {
			opts = append(opts, flags.WithRequired(p.Name))
		}
		if len(p.ValidValues) > 0 {
			opts = append(opts, flags.WithValidValues(p.Name, p.ValidValues...))
		}
	}
	return opts
}

func longDescription(d *operation.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nCalls the EKS %s operation.", d.Short, d.Name)
	if d.Paginated {
		fmt.Fprintf(&b, " Results are paginated; every page is written as it arrives. Use --%s or --%s to page manually.", noAutoIterationFlag, d.TokenParam)
	}
	if d.Destructive {
		fmt.Fprintf(&b, " This operation modifies remote state and asks for confirmation unless --%s is given.", forceFlag)
	}
	return b.String()
}

func parseRunOptions(cmd *cobra.Command) (runOptions, error) {
	fs := cmd.Flags()

	var (
		opts runOptions
		err  error
	)
	if fs.Changed(selectFlag) {
		if opts.Select, err = fs.GetString(selectFlag); err != nil {
			return opts, err
		}
	}
	if opts.Force, err = fs.GetBool(forceFlag); err != nil {
		return opts, err
	}
	if opts.NoAutoIteration, err = fs.GetBool(noAutoIterationFlag); err != nil {
		return opts, err
	}
	if opts.DryRun, err = fs.GetBool(dryRunFlag); err != nil {
		return opts, err
	}
	if opts.Query, err = fs.GetString(queryFlag); err != nil {
		return opts, err
	}
	return opts, nil
}

// run drives one invocation: bind, optionally confirm, then page and emit.
func run(cmd *cobra.Command, op operation.Operation[eksops.API], values map[string]any, opts runOptions) error {
	defer perf.Track(nil, "eks.run")()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := internal.ConfigFromContext(ctx)
	d := op.Descriptor()

	inv, err := op.Bind(values, operation.BindOptions{
		Strict:          cfg.Validation.StrictRequired,
		Select:          opts.Select,
		NoAutoIteration: opts.NoAutoIteration,
	})
	if err != nil {
		return err
	}

	writer, err := data.NewWriter(cmd.OutOrStdout(), cfg.Output.Format, opts.Query)
	if err != nil {
		return err
	}
	if hl := cfg.Output.SyntaxHighlighting; hl.Enabled && ui.IsColorTerminal(cmd.OutOrStdout()) {
		writer.Highlight(hl.Theme)
	}

	if opts.DryRun {
		req, err := op.Translate(inv)
		if err != nil {
			return err
		}
		log.Info("Dry run, request not sent", "operation", d.Name)
		return writer.Emit(req)
	}

	if d.Destructive {
		if err := confirmer.Confirm(ctx, d.Command, summarize(inv), opts.Force); err != nil {
			return err
		}
	}

	client, err := newClient(ctx, &cfg.AWS)
	if err != nil {
		return err
	}

	log.Debug("Invoking operation", "operation", d.Name, "select", inv.Selector.String())
	if err := op.Invoke(ctx, client, inv, writer.Emit); err != nil {
		return err
	}
	log.Debug("Operation complete", "operation", d.Name, "documents", writer.Count())
	return nil
}

// summarize renders the bound parameters for the confirmation prompt.
func summarize(inv *operation.Invocation) string {
	names := lo.Keys(inv.Values)
	slices.Sort(names)
	return strings.Join(lo.Map(names, func(name string, _ int) string {
		return fmt.Sprintf("--%s=%v", name, inv.Values[name])
	}), " ")
}
