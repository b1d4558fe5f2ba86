package operation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

const (
	// SelectAll selects the whole response.
	SelectAll = "*"
	// paramPrefix marks a selector that echoes a bound parameter.
	paramPrefix = "^"
	// resultMetadataField is SDK bookkeeping and never selectable.
	resultMetadataField = "ResultMetadata"
)

// SelectorKind tells the projector which part of a response to emit.
type SelectorKind int

const (
	SelectWhole SelectorKind = iota
	SelectField
	SelectParam
)

// Selector is a parsed projection expression.
type Selector struct {
	Kind SelectorKind
	// Field is the resolved response field name for SelectField.
	Field string
	// Param is the resolved parameter name for SelectParam.
	Param string
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectField:
		return s.Field
	case SelectParam:
		return paramPrefix + s.Param
	default:
		return SelectAll
	}
}

// ParseSelector resolves a projection expression against the descriptor's parameters and the response type.
// Field and parameter names match case-insensitively.
func ParseSelector(expr string, d *Descriptor, outType reflect.Type) (Selector, error) {
	defer perf.Track(nil, "operation.ParseSelector")()

	expr = strings.TrimSpace(expr)
	switch {
	case expr == SelectAll:
		return Selector{Kind: SelectWhole}, nil

	case strings.HasPrefix(expr, paramPrefix):
		ref := strings.TrimPrefix(expr, paramPrefix)
		p, ok := d.findParam(ref)
		if !ok {
			return Selector{}, errUtils.Build(fmt.Errorf("%w: %q names no parameter of %s", errUtils.ErrInvalidSelector, expr, d.Command)).
				WithHintf("Parameters: %s", strings.Join(d.ParamNames(), ", ")).
				Err()
		}
		return Selector{Kind: SelectParam, Param: p.Name}, nil

	case expr == "":
		return Selector{}, errUtils.Build(fmt.Errorf("%w: empty expression", errUtils.ErrInvalidSelector)).
			WithHint("Use '*' to select the whole response").
			Err()
	}

	fields := selectableFields(outType)
	name, ok := lo.Find(fields, func(f string) bool { return strings.EqualFold(f, expr) })
	if !ok {
		return Selector{}, errUtils.Build(fmt.Errorf("%w: %q is not a field of the %s response", errUtils.ErrInvalidSelector, expr, d.Name)).
			WithHintf("Fields: %s", strings.Join(fields, ", ")).
			WithHint("Use '*' for the whole response or '^<parameter>' to echo a parameter").
			Err()
	}
	return Selector{Kind: SelectField, Field: name}, nil
}

// selectableFields lists the exported response fields a selector may name.
func selectableFields(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous || f.Name == resultMetadataField {
			continue
		}
		fields = append(fields, f.Name)
	}
	return fields
}

// Project applies the selector to a response. out may be nil for SelectParam.
func (s Selector) Project(out any, inv *Invocation) any {
	switch s.Kind {
	case SelectParam:
		return inv.Values[s.Param]
	case SelectField:
		v := reflect.ValueOf(out)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
		return v.FieldByName(s.Field).Interface()
	default:
		return out
	}
}
