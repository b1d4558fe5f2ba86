package flags

import (
	"github.com/cloudposse/ekscli/pkg/perf"
)

// FlagRegistry holds flags in registration order.
// Registering a flag under an existing name replaces the earlier definition in place.
type FlagRegistry struct {
	flags []Flag
	index map[string]int
}

// NewFlagRegistry creates an empty registry.
func NewFlagRegistry() *FlagRegistry {
	defer perf.Track(nil, "flags.NewFlagRegistry")()

	return &FlagRegistry{index: make(map[string]int)}
}

// Register adds a flag to the registry.
func (r *FlagRegistry) Register(flag Flag) {
	defer perf.Track(nil, "flags.FlagRegistry.Register")()

	if i, ok := r.index[flag.GetName()]; ok {
		r.flags[i] = flag
		return
	}
	r.index[flag.GetName()] = len(r.flags)
	r.flags = append(r.flags, flag)
}

// Get returns the flag with the given name, or nil.
func (r *FlagRegistry) Get(name string) Flag {
	if i, ok := r.index[name]; ok {
		return r.flags[i]
	}
	return nil
}

// All returns every registered flag in registration order.
func (r *FlagRegistry) All() []Flag {
	return append([]Flag(nil), r.flags...)
}

// Len returns the number of registered flags.
func (r *FlagRegistry) Len() int {
	return len(r.flags)
}
