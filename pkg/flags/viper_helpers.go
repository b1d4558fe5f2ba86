package flags

import (
	"fmt"
	"reflect"

	"github.com/spf13/viper"

	"github.com/cloudposse/ekscli/pkg/perf"
)

// getViperKey returns the Viper key a flag binds to.
func getViperKey(flag Flag) string {
	if key := flag.GetViperKey(); key != "" {
		return key
	}
	return flag.GetName()
}

// bindFlagToViper binds a single flag's default and environment variables to Viper.
// Zero defaults are not registered so they never shadow defaults set by the config loader.
func bindFlagToViper(v *viper.Viper, viperKey string, flag Flag) error {
	defer perf.Track(nil, "flags.bindFlagToViper")()

	if def := flag.GetDefault(); def != nil && !reflect.ValueOf(def).IsZero() {
		v.SetDefault(viperKey, def)
	}

	envVars := flag.GetEnvVars()
	if len(envVars) == 0 {
		return nil
	}

	args := make([]string, 0, len(envVars)+1)
	args = append(args, viperKey)
	args = append(args, envVars...)
	if err := v.BindEnv(args...); err != nil {
		return fmt.Errorf("failed to bind env vars for flag %s: %w", flag.GetName(), err)
	}
	return nil
}
