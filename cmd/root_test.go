package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/config"
	"github.com/cloudposse/ekscli/pkg/version"
)

func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.CliConfigPathEnvVar, "")
	t.Setenv("AWS_REGION", "us-east-1")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

// run executes the root command and restores the global flags it touched.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
		RootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})

	err := Execute(context.Background())
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range RootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "eks")
	assert.Contains(t, names, "version")
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"logs-level", "logs-file", "region", "profile", "role-arn", "endpoint-url", "output", "strict", "heatmap"} {
		assert.NotNil(t, RootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ekscli "+version.Version)
}

func TestInvalidLogLevel(t *testing.T) {
	isolate(t)

	_, err := run(t, "version", "--logs-level", "Loud")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrInvalidLogLevel)
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}

func TestDryRunThroughRoot_UsesConfigFile(t *testing.T) {
	wd := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(wd, "ekscli.yaml"), []byte("output:\n  format: yaml\n"), 0o600))

	out, err := run(t, "eks", "describe-addon", "--cluster-name", "prod", "--addon-name", "coredns", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "ClusterName: prod")
	assert.Contains(t, out, "AddonName: coredns")
}

func TestFormatterConfig_VerboseFollowsLogLevel(t *testing.T) {
	isolate(t)

	_, err := run(t, "version", "--logs-level", "Debug")
	require.NoError(t, err)
	assert.True(t, FormatterConfig().Verbose)

	_, err = run(t, "version", "--logs-level", "Info")
	require.NoError(t, err)
	assert.False(t, FormatterConfig().Verbose)
}
