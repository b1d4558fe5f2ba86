package config

const (
	// CliConfigFileName is the config file name without extension.
	CliConfigFileName = "ekscli"
	// CliConfigFileExtension is the only supported config format.
	CliConfigFileExtension = "yaml"
	// DotCliConfigDirName is the per-user config directory under $HOME.
	DotCliConfigDirName = ".ekscli"

	SystemDirConfigFilePath = "/usr/local/etc/ekscli"
	WindowsAppDataEnvVar    = "LOCALAPPDATA"

	// EnvPrefix prefixes every environment variable read by the CLI, e.g. EKSCLI_LOGS_LEVEL.
	EnvPrefix = "EKSCLI"
	// CliConfigPathEnvVar points at an extra directory containing ekscli.yaml.
	CliConfigPathEnvVar = "EKSCLI_CLI_CONFIG_PATH"

	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	DefaultLogsFile      = "/dev/stderr"
	DefaultLogsLevel     = "Info"
	DefaultOutputFormat  = OutputFormatJSON
	DefaultMaxAttempts   = 3
	DefaultSentrySampler = 1.0
	DefaultSyntaxTheme   = "dracula"
)

// SupportedOutputFormats lists the accepted values of output.format.
var SupportedOutputFormats = []string{OutputFormatJSON, OutputFormatYAML}
