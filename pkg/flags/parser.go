package flags

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

const requiredSuffix = " (required)"

// StandardFlagParser registers flags with Cobra, binds them to Viper and reports the values
// the user actually set.
//
// Usage:
//
//	parser := flags.NewStandardFlagParser(
//	    flags.WithStringFlag("cluster-name", "", "", "The name of the cluster"),
//	    flags.WithRequired("cluster-name"),
//	)
//
//	// In command setup:
//	parser.RegisterFlags(cmd)
//
//	// In RunE:
//	values, err := parser.ChangedValues(cmd)
type StandardFlagParser struct {
	registry *FlagRegistry
	cmd      *cobra.Command
}

// NewStandardFlagParser creates a new StandardFlagParser with the given options.
func NewStandardFlagParser(opts ...Option) *StandardFlagParser {
	defer perf.Track(nil, "flags.NewStandardFlagParser")()

	config := &parserConfig{
		registry: NewFlagRegistry(),
	}
	for _, opt := range opts {
		opt(config)
	}

	return &StandardFlagParser{registry: config.registry}
}

// Registry returns the parser's flag registry.
func (p *StandardFlagParser) Registry() *FlagRegistry {
	return p.registry
}

// RegisterFlags adds the flags to the command's local flag set.
func (p *StandardFlagParser) RegisterFlags(cmd *cobra.Command) {
	defer perf.Track(nil, "flags.StandardFlagParser.RegisterFlags")()

	p.cmd = cmd
	for _, flag := range p.registry.All() {
		registerFlag(cmd.Flags(), flag)
	}
	p.registerCompletions(cmd)
}

// RegisterPersistentFlags adds the flags as persistent flags, inherited by every subcommand.
func (p *StandardFlagParser) RegisterPersistentFlags(cmd *cobra.Command) {
	defer perf.Track(nil, "flags.StandardFlagParser.RegisterPersistentFlags")()

	p.cmd = cmd
	for _, flag := range p.registry.All() {
		registerFlag(cmd.PersistentFlags(), flag)
	}
	p.registerCompletions(cmd)
}

func registerFlag(fs *pflag.FlagSet, flag Flag) {
	description := flag.GetDescription()
	if flag.IsRequired() {
		description += requiredSuffix
	}

	switch f := flag.(type) {
	case *StringFlag:
		fs.StringP(f.Name, f.Shorthand, f.Default, description)
	case *BoolFlag:
		fs.BoolP(f.Name, f.Shorthand, f.Default, description)
	case *IntFlag:
		fs.IntP(f.Name, f.Shorthand, f.Default, description)
	case *StringSliceFlag:
		fs.StringSliceP(f.Name, f.Shorthand, f.Default, description)
	}
}

// registerCompletions registers shell completion for flags with valid values.
func (p *StandardFlagParser) registerCompletions(cmd *cobra.Command) {
	for _, flag := range p.registry.All() {
		values := flag.GetValidValues()
		if len(values) == 0 {
			continue
		}
		_ = cmd.RegisterFlagCompletionFunc(flag.GetName(), func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		})
	}
}

// BindToViper binds every flag, and its environment variables, to Viper.
// Precedence is flag > env > config > default.
func (p *StandardFlagParser) BindToViper(v *viper.Viper) error {
	defer perf.Track(nil, "flags.StandardFlagParser.BindToViper")()

	for _, flag := range p.registry.All() {
		viperKey := getViperKey(flag)
		if err := bindFlagToViper(v, viperKey, flag); err != nil {
			return err
		}

		if p.cmd == nil {
			continue
		}
		cobraFlag := p.cmd.Flags().Lookup(flag.GetName())
		if cobraFlag == nil {
			cobraFlag = p.cmd.PersistentFlags().Lookup(flag.GetName())
		}
		if cobraFlag != nil {
			if err := v.BindPFlag(viperKey, cobraFlag); err != nil {
				return fmt.Errorf("failed to bind pflag %s to viper: %w", flag.GetName(), err)
			}
		}
	}

	return nil
}

// ChangedValues returns the typed values of the registered flags that were set on the command line.
// Flags left at their defaults are absent from the map.
func (p *StandardFlagParser) ChangedValues(cmd *cobra.Command) (map[string]any, error) {
	defer perf.Track(nil, "flags.StandardFlagParser.ChangedValues")()

	fs := cmd.Flags()
	values := make(map[string]any)

	for _, flag := range p.registry.All() {
		name := flag.GetName()
		if pf := fs.Lookup(name); pf == nil || !pf.Changed {
			continue
		}

		var (
			value any
			err   error
		)
		switch flag.(type) {
		case *StringFlag:
			value, err = fs.GetString(name)
		case *BoolFlag:
			value, err = fs.GetBool(name)
		case *IntFlag:
			value, err = fs.GetInt(name)
		case *StringSliceFlag:
			value, err = fs.GetStringSlice(name)
		default:
			continue
		}
		if err != nil {
			return nil, errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrInvalidFlagValue, err)).
				WithContext("flag", name).
				Err()
		}

		if err := validateValue(flag, value); err != nil {
			return nil, err
		}
		values[name] = value
	}

	return values, nil
}

// validateValue checks a value against the flag's valid values, if any.
func validateValue(flag Flag, value any) error {
	valid := flag.GetValidValues()
	if len(valid) == 0 {
		return nil
	}

	var candidates []string
	switch v := value.(type) {
	case string:
		candidates = []string{v}
	case []string:
		candidates = v
	}

	for _, candidate := range candidates {
		if !lo.Contains(valid, candidate) {
			return errUtils.Build(fmt.Errorf("%w: --%s=%q", errUtils.ErrInvalidFlagValue, flag.GetName(), candidate)).
				WithHintf("Valid values for --%s: %s", flag.GetName(), strings.Join(valid, ", ")).
				Err()
		}
	}
	return nil
}
