package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/ekscli/errors"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
	"github.com/cloudposse/ekscli/pkg/schema"
)

// LoadConfig loads the CLI configuration into v and decodes it.
// Sources, from lower to higher priority:
//
//	defaults
//	system dir (`/usr/local/etc/ekscli` on Linux, `%LOCALAPPDATA%/ekscli` on Windows)
//	XDG config dir (`$XDG_CONFIG_HOME/ekscli`)
//	home dir (`~/.ekscli`)
//	current directory
//	EKSCLI_CLI_CONFIG_PATH
//	ENV vars (EKSCLI_*)
//	command-line flags bound to v
func LoadConfig(v *viper.Viper) (schema.Configuration, error) {
	defer perf.Track(nil, "config.LoadConfig")()

	var config schema.Configuration

	v.SetConfigType(CliConfigFileExtension)
	v.SetTypeByDefaultValue(true)
	setDefaultConfiguration(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, dir := range searchDirs() {
		if err := mergeConfigDir(v, dir); err != nil {
			return config, err
		}
	}

	if dir := os.Getenv(CliConfigPathEnvVar); dir != "" {
		if err := mergeConfigDir(v, dir); err != nil {
			return config, err
		}
		log.Debug("Found config ENV", CliConfigPathEnvVar, dir)
	}

	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		return config, errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadConfig, err)).
			WithHint("Check the types of the values in ekscli.yaml").
			Err()
	}

	config.CliConfigPath = v.ConfigFileUsed()
	if config.CliConfigPath == "" {
		log.Debug("'ekscli.yaml' CLI config was not found", "paths", "system dir, xdg config dir, home dir, current dir, ENV vars")
		log.Debug("Using the default CLI config")
	}

	if err := validate(&config); err != nil {
		return config, err
	}

	return config, nil
}

// setDefaultConfiguration sets defaults for every known key so AutomaticEnv can resolve them.
func setDefaultConfiguration(v *viper.Viper) {
	v.SetDefault("logs.file", DefaultLogsFile)
	v.SetDefault("logs.level", DefaultLogsLevel)
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.role_arn", "")
	v.SetDefault("aws.endpoint_url", "")
	v.SetDefault("aws.assume_role_duration", time.Hour)
	v.SetDefault("aws.max_attempts", DefaultMaxAttempts)
	v.SetDefault("output.format", DefaultOutputFormat)
	v.SetDefault("output.syntax_highlighting.enabled", true)
	v.SetDefault("output.syntax_highlighting.theme", DefaultSyntaxTheme)
	v.SetDefault("validation.strict_required", false)
	v.SetDefault("errors.sentry.enabled", false)
	v.SetDefault("errors.sentry.dsn", "")
	v.SetDefault("errors.sentry.environment", "")
	v.SetDefault("errors.sentry.sample_rate", DefaultSentrySampler)
}

// searchDirs returns the config directories in increasing priority.
func searchDirs() []string {
	var dirs []string

	if runtime.GOOS == "windows" {
		if appDataDir := os.Getenv(WindowsAppDataEnvVar); appDataDir != "" {
			dirs = append(dirs, filepath.Join(appDataDir, CliConfigFileName))
		}
	} else {
		dirs = append(dirs, SystemDirConfigFilePath)
	}

	dirs = append(dirs, filepath.Join(xdg.ConfigHome, CliConfigFileName))

	if xdg.Home != "" {
		dirs = append(dirs, filepath.Join(xdg.Home, DotCliConfigDirName))
	}

	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	return lo.Uniq(dirs)
}

// mergeConfigDir merges `ekscli.yaml` from dir into v. A missing file is not an error.
func mergeConfigDir(v *viper.Viper, dir string) error {
	path := filepath.Join(dir, CliConfigFileName+"."+CliConfigFileExtension)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadConfig, err)).
			WithContext("file", path).
			Err()
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrLoadConfig, err)).
			WithHintf("Fix the YAML syntax in %s", path).
			WithContext("file", path).
			Err()
	}

	log.Debug("Merged config", "file", path)
	return nil
}

func validate(config *schema.Configuration) error {
	if !IsSupportedOutputFormat(config.Output.Format) {
		return errUtils.Build(fmt.Errorf("%w: %q", errUtils.ErrInvalidOutputFormat, config.Output.Format)).
			WithHintf("Supported formats: %s", strings.Join(SupportedOutputFormats, ", ")).
			Err()
	}
	if config.AWS.MaxAttempts < 0 {
		return errUtils.Build(fmt.Errorf("%w: aws.max_attempts must not be negative", errUtils.ErrLoadConfig)).Err()
	}
	return nil
}

// IsSupportedOutputFormat reports whether format is one of SupportedOutputFormats.
func IsSupportedOutputFormat(format string) bool {
	return lo.Contains(SupportedOutputFormats, format)
}
