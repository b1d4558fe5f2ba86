// Package operation turns a declarative description of a remote operation into a
// bind, translate, page and project pipeline.
package operation

import (
	"strings"

	"github.com/samber/lo"
)

// ParamKind is the value type of a parameter as it arrives from the command line.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindStringSlice
)

func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindStringSlice:
		return "stringSlice"
	default:
		return "unknown"
	}
}

// Param maps one command-line flag to a field of the request.
type Param struct {
	// Name is the flag name, e.g. "cluster-name".
	Name string
	// Field is the dotted path of the request field, e.g. "AccessScope.Type".
	// A path through a nested structure only materializes that structure when one of its fields is set.
	Field       string
	Kind        ParamKind
	Description string
	Required    bool
	// ValidValues restricts string values. Empty means unrestricted.
	ValidValues []string
}

// Descriptor is the static metadata of one remote operation.
type Descriptor struct {
	// Name is the remote operation name, e.g. "ListAddons".
	Name string
	// Command is the subcommand name, e.g. "list-addons".
	Command string
	Short   string
	Params  []Param
	// Paginated operations loop on a continuation token until the service stops returning one.
	Paginated bool
	// TokenParam names the parameter that carries the caller-supplied continuation token.
	TokenParam string
	// Destructive operations ask for confirmation unless forced.
	Destructive bool
	// DefaultSelect is the projection used when the caller does not pass one.
	DefaultSelect string
}

// Param returns the parameter with the given flag name.
func (d *Descriptor) Param(name string) (Param, bool) {
	return lo.Find(d.Params, func(p Param) bool { return p.Name == name })
}

// RequiredParams returns the names of the required parameters.
func (d *Descriptor) RequiredParams() []string {
	return lo.FilterMap(d.Params, func(p Param, _ int) (string, bool) { return p.Name, p.Required })
}

// ParamNames returns every parameter name in declaration order.
func (d *Descriptor) ParamNames() []string {
	return lo.Map(d.Params, func(p Param, _ int) string { return p.Name })
}

// findParam resolves a selector reference to a parameter by flag name or request field, ignoring case.
func (d *Descriptor) findParam(ref string) (Param, bool) {
	return lo.Find(d.Params, func(p Param) bool {
		return strings.EqualFold(p.Name, ref) || strings.EqualFold(p.Field, ref)
	})
}
