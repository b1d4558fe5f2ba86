package operation

// Invocation holds the state of one command invocation: the bound values and the resolved projection.
type Invocation struct {
	Descriptor *Descriptor
	// Values holds only the parameters the caller set, keyed by flag name.
	Values map[string]any
	// Missing lists required parameters the caller did not set. Non-empty only in lenient mode.
	Missing  []string
	Selector Selector
	// NoAutoIteration stops the pagination loop after the first page.
	NoAutoIteration bool
}

// BindOptions controls how caller input is bound into an Invocation.
type BindOptions struct {
	// Strict turns missing required parameters into an error instead of a warning.
	Strict bool
	// Select is the projection expression. Empty means the descriptor default.
	Select          string
	NoAutoIteration bool
}

// IsSet reports whether the caller supplied the named parameter.
func (inv *Invocation) IsSet(name string) bool {
	_, ok := inv.Values[name]
	return ok
}

// Manual reports whether the caller took control of paging, either by disabling
// auto-iteration or by passing an explicit continuation token.
func (inv *Invocation) Manual() bool {
	if inv.NoAutoIteration {
		return true
	}
	token := inv.Descriptor.TokenParam
	return token != "" && inv.IsSet(token)
}
