package flags

import (
	"github.com/cloudposse/ekscli/pkg/perf"
)

// Option is a functional option for configuring a StandardFlagParser.
//
// Usage:
//
//	parser := flags.NewStandardFlagParser(
//	    flags.WithStringFlag("cluster-name", "", "", "The name of the cluster"),
//	    flags.WithBoolFlag("force", "", false, "Skip confirmation"),
//	)
type Option func(*parserConfig)

// parserConfig holds the configuration for a StandardFlagParser.
type parserConfig struct {
	registry *FlagRegistry
}

// WithStringFlag adds a string flag to the parser configuration.
//
// Parameters:
//   - name: Long flag name (without --)
//   - shorthand: Short flag name (single character, without -)
//   - defaultValue: Default value if flag not provided
//   - description: Help text
func WithStringFlag(name, shorthand, defaultValue, description string) Option {
	defer perf.Track(nil, "flags.WithStringFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&StringFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithBoolFlag adds a boolean flag to the parser configuration.
func WithBoolFlag(name, shorthand string, defaultValue bool, description string) Option {
	defer perf.Track(nil, "flags.WithBoolFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&BoolFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithIntFlag adds an integer flag to the parser configuration.
func WithIntFlag(name, shorthand string, defaultValue int, description string) Option {
	defer perf.Track(nil, "flags.WithIntFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&IntFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithStringSliceFlag adds a string slice flag to the parser configuration.
//
// Usage:
//
//	WithStringSliceFlag("access-scope-namespace", "", nil, "Namespaces the policy is scoped to")
func WithStringSliceFlag(name, shorthand string, defaultValue []string, description string) Option {
	defer perf.Track(nil, "flags.WithStringSliceFlag")()

	return func(cfg *parserConfig) {
		cfg.registry.Register(&StringSliceFlag{
			Name:        name,
			Shorthand:   shorthand,
			Default:     defaultValue,
			Description: description,
		})
	}
}

// WithRequired marks a previously added flag as required.
// Required flags are annotated in help output; enforcement is left to the caller.
func WithRequired(flagName string) Option {
	defer perf.Track(nil, "flags.WithRequired")()

	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.Required = true
		case *IntFlag:
			f.Required = true
		case *StringSliceFlag:
			f.Required = true
		}
	}
}

// WithEnvVars binds environment variables to a previously added flag.
// Must be applied after the option that adds the flag.
//
// Usage:
//
//	WithStringFlag("region", "", "", "AWS region"),
//	WithEnvVars("region", "EKSCLI_AWS_REGION", "AWS_REGION"),
func WithEnvVars(flagName string, envVars ...string) Option {
	defer perf.Track(nil, "flags.WithEnvVars")()

	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.EnvVars = envVars
		case *BoolFlag:
			f.EnvVars = envVars
		case *IntFlag:
			f.EnvVars = envVars
		case *StringSliceFlag:
			f.EnvVars = envVars
		}
	}
}

// WithValidValues restricts a previously added string or string slice flag to a set of values.
// The values also drive shell completion.
func WithValidValues(flagName string, validValues ...string) Option {
	defer perf.Track(nil, "flags.WithValidValues")()

	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.ValidValues = validValues
		case *StringSliceFlag:
			f.ValidValues = validValues
		}
	}
}

// WithViperKey overrides the Viper key a previously added flag binds to.
//
// Usage:
//
//	WithStringFlag("logs-level", "", "", "Logs level"),
//	WithViperKey("logs-level", "logs.level"),
func WithViperKey(flagName, viperKey string) Option {
	defer perf.Track(nil, "flags.WithViperKey")()

	return func(cfg *parserConfig) {
		switch f := cfg.registry.Get(flagName).(type) {
		case *StringFlag:
			f.ViperKey = viperKey
		case *BoolFlag:
			f.ViperKey = viperKey
		case *IntFlag:
			f.ViperKey = viperKey
		case *StringSliceFlag:
			f.ViperKey = viperKey
		}
	}
}
