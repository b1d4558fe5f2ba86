package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/cloudposse/ekscli/cmd/eks"
	"github.com/cloudposse/ekscli/cmd/internal"
	errUtils "github.com/cloudposse/ekscli/errors"
	cfg "github.com/cloudposse/ekscli/pkg/config"
	"github.com/cloudposse/ekscli/pkg/flags"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
	"github.com/cloudposse/ekscli/pkg/ui"
)

const heatmapFlag = "heatmap"

// globalParser declares the persistent flags shared by every command. Each is bound to a config key.
var globalParser = flags.NewStandardFlagParser(
	flags.WithStringFlag("logs-level", "", "", "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off"),
	flags.WithViperKey("logs-level", "logs.level"),
	flags.WithValidValues("logs-level", "Trace", "Debug", "Info", "Warning", "Off"),
	flags.WithStringFlag("logs-file", "", "", "The file to write logs to: '/dev/stderr' (default), '/dev/stdout' or a path"),
	flags.WithViperKey("logs-file", "logs.file"),

	flags.WithStringFlag("region", "", "", "AWS region of the EKS endpoint"),
	flags.WithViperKey("region", "aws.region"),
	flags.WithEnvVars("region", "EKSCLI_AWS_REGION", "AWS_REGION"),
	flags.WithStringFlag("profile", "", "", "AWS shared config profile"),
	flags.WithViperKey("profile", "aws.profile"),
	flags.WithEnvVars("profile", "EKSCLI_AWS_PROFILE", "AWS_PROFILE"),
	flags.WithStringFlag("role-arn", "", "", "IAM role to assume before calling EKS"),
	flags.WithViperKey("role-arn", "aws.role_arn"),
	flags.WithStringFlag("endpoint-url", "", "", "Override the EKS endpoint URL"),
	flags.WithViperKey("endpoint-url", "aws.endpoint_url"),
	flags.WithEnvVars("endpoint-url", "EKSCLI_AWS_ENDPOINT_URL", "AWS_ENDPOINT_URL_EKS"),

	flags.WithStringFlag("output", "o", "", "Output format: json or yaml"),
	flags.WithViperKey("output", "output.format"),
	flags.WithValidValues("output", cfg.SupportedOutputFormats...),
	flags.WithBoolFlag("strict", "", false, "Fail when a required parameter is missing instead of warning"),
	flags.WithViperKey("strict", "validation.strict_required"),

	flags.WithBoolFlag(heatmapFlag, "", false, "Print a timing breakdown of internal functions after the command"),
)

// activeLogger is the logger built from the loaded configuration. It owns the log file, if any.
var activeLogger *log.Logger

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ekscli",
	Short: "Call Amazon EKS operations from the shell",
	Long: `ekscli exposes Amazon EKS API operations as subcommands. Flags map to request fields,
responses are written to stdout as JSON or YAML, and paginated results stream page by page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		heatmap, _ := cmd.Flags().GetBool(heatmapFlag)
		if !heatmap {
			return nil
		}
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderHeatmap(perf.Snapshot()))
		return err
	},
}

// setup loads the configuration, installs the logger and stores the configuration on the command context.
func setup(cmd *cobra.Command) error {
	defer perf.Track(nil, "cmd.setup")()

	if heatmap, _ := cmd.Flags().GetBool(heatmapFlag); heatmap {
		perf.Enable()
	}

	config, err := cfg.LoadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := log.NewLoggerFromConfig(&config)
	if err != nil {
		if errors.Is(err, log.ErrInvalidLogLevel) {
			return errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrInvalidLogLevel, err)).
				WithHint("Use --logs-level or EKSCLI_LOGS_LEVEL with one of Trace, Debug, Info, Warning, Off").
				Err()
		}
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadConfig, err)
	}
	closeLogger()
	activeLogger = logger
	log.SetDefault(logger)

	if err := errUtils.InitializeSentry(&config.Errors.Sentry); err != nil {
		log.Warn("Error reporting disabled", "error", err)
	}

	if config.CliConfigPath != "" {
		log.Debug("Loaded configuration", "file", config.CliConfigPath)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(internal.WithConfig(ctx, &config))
	return nil
}

// FormatterConfig returns the error formatting settings for the current log level.
func FormatterConfig() errUtils.FormatterConfig {
	config := errUtils.DefaultFormatterConfig()
	config.Verbose = log.GetLevel() <= log.DebugLevel
	return config
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Cleanup flushes error reports and closes the log file.
func Cleanup() {
	errUtils.CloseSentry()
	closeLogger()
}

func closeLogger() {
	if activeLogger == nil {
		return
	}
	if err := activeLogger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	activeLogger = nil
}

func init() {
	globalParser.RegisterPersistentFlags(RootCmd)
	if err := globalParser.BindToViper(viper.GetViper()); err != nil {
		log.Error("Failed to bind global flags", "error", err)
	}

	for _, p := range internal.Providers() {
		RootCmd.AddCommand(p.GetCommand())
	}
}
