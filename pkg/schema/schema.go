package schema

import "time"

// Configuration structure represents schema for the `ekscli.yaml` CLI config.
type Configuration struct {
	Logs       Logs         `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	AWS        AWS          `yaml:"aws,omitempty" json:"aws,omitempty" mapstructure:"aws"`
	Output     Output       `yaml:"output,omitempty" json:"output,omitempty" mapstructure:"output"`
	Validation Validation   `yaml:"validation,omitempty" json:"validation,omitempty" mapstructure:"validation"`
	Errors     ErrorsConfig `yaml:"errors,omitempty" json:"errors,omitempty" mapstructure:"errors"`

	// CliConfigPath is the absolute path of the config file that was loaded, if any.
	CliConfigPath string `yaml:"cli_config_path,omitempty" json:"cli_config_path,omitempty" mapstructure:"cli_config_path"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// AWS holds the settings used to build the SDK configuration for remote calls.
type AWS struct {
	Region             string        `yaml:"region,omitempty" json:"region,omitempty" mapstructure:"region"`
	Profile            string        `yaml:"profile,omitempty" json:"profile,omitempty" mapstructure:"profile"`
	RoleArn            string        `yaml:"role_arn,omitempty" json:"role_arn,omitempty" mapstructure:"role_arn"`
	EndpointURL        string        `yaml:"endpoint_url,omitempty" json:"endpoint_url,omitempty" mapstructure:"endpoint_url"`
	AssumeRoleDuration time.Duration `yaml:"assume_role_duration,omitempty" json:"assume_role_duration,omitempty" mapstructure:"assume_role_duration"`
	MaxAttempts        int           `yaml:"max_attempts,omitempty" json:"max_attempts,omitempty" mapstructure:"max_attempts"`
}

type Output struct {
	Format             string             `yaml:"format" json:"format" mapstructure:"format"`
	SyntaxHighlighting SyntaxHighlighting `yaml:"syntax_highlighting" json:"syntax_highlighting" mapstructure:"syntax_highlighting"`
}

// SyntaxHighlighting colours documents written to a terminal. Theme is a chroma style name.
type SyntaxHighlighting struct {
	Enabled bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Theme   string `yaml:"theme" json:"theme" mapstructure:"theme"`
}

// Validation controls how the parameter binder treats missing required parameters.
type Validation struct {
	StrictRequired bool `yaml:"strict_required" json:"strict_required" mapstructure:"strict_required"`
}

type ErrorsConfig struct {
	Sentry SentryConfig `yaml:"sentry,omitempty" json:"sentry,omitempty" mapstructure:"sentry"`
}

// SentryConfig configures optional error reporting.
type SentryConfig struct {
	Enabled             bool              `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	DSN                 string            `yaml:"dsn" json:"dsn" mapstructure:"dsn"`
	Environment         string            `yaml:"environment,omitempty" json:"environment,omitempty" mapstructure:"environment"`
	Release             string            `yaml:"release,omitempty" json:"release,omitempty" mapstructure:"release"`
	SampleRate          float64           `yaml:"sample_rate,omitempty" json:"sample_rate,omitempty" mapstructure:"sample_rate"`
	Debug               bool              `yaml:"debug,omitempty" json:"debug,omitempty" mapstructure:"debug"`
	Tags                map[string]string `yaml:"tags,omitempty" json:"tags,omitempty" mapstructure:"tags"`
	CaptureStackContext bool              `yaml:"capture_stack_context,omitempty" json:"capture_stack_context,omitempty" mapstructure:"capture_stack_context"`
}
