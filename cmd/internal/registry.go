// Package internal holds the plumbing shared by command packages: the command
// provider registry and the loaded configuration carried on the command context.
package internal

import (
	"context"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cloudposse/ekscli/pkg/schema"
)

// CommandProvider contributes a top-level command to the root command.
type CommandProvider interface {
	GetCommand() *cobra.Command
	GetName() string
	GetGroup() string
}

var (
	mu        sync.RWMutex
	providers = map[string]CommandProvider{}
)

// Register adds a provider. Registering the same name twice replaces the earlier provider.
func Register(p CommandProvider) {
	mu.Lock()
	defer mu.Unlock()
	providers[p.GetName()] = p
}

// Providers returns the registered providers sorted by name.
func Providers() []CommandProvider {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]CommandProvider, 0, len(providers))
	for _, p := range providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetName() < out[j].GetName() })
	return out
}

type configKey struct{}

// WithConfig returns a context carrying the loaded configuration.
func WithConfig(ctx context.Context, cfg *schema.Configuration) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or an empty one.
func ConfigFromContext(ctx context.Context) *schema.Configuration {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*schema.Configuration); ok && cfg != nil {
			return cfg
		}
	}
	return &schema.Configuration{}
}
