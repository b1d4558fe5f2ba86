package operation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/ekscli/errors"
	log "github.com/cloudposse/ekscli/pkg/logger"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// Bind validates caller input against the descriptor and produces an Invocation.
//
// values must contain only parameters the caller actually set. Unknown names, values of the wrong
// type and bad selectors are configuration errors. A missing required parameter is logged as a
// warning and the invocation proceeds, leaving the service to reject the request, unless
// opts.Strict is set.
func Bind(d *Descriptor, outType reflect.Type, values map[string]any, opts BindOptions) (*Invocation, error) {
	defer perf.Track(nil, "operation.Bind")()

	bound := make(map[string]any, len(values))
	for name, value := range values {
		p, ok := d.Param(name)
		if !ok {
			return nil, errUtils.Build(fmt.Errorf("%w: %q for %s", errUtils.ErrUnknownParameter, name, d.Command)).
				WithHintf("Parameters: %s", strings.Join(d.ParamNames(), ", ")).
				Err()
		}

		v, err := coerce(p, value)
		if err != nil {
			return nil, err
		}
		bound[name] = v
	}

	expr := opts.Select
	if expr == "" {
		expr = d.DefaultSelect
	}
	if expr == "" {
		expr = SelectAll
	}
	selector, err := ParseSelector(expr, d, outType)
	if err != nil {
		return nil, err
	}

	missing := lo.Filter(d.RequiredParams(), func(name string, _ int) bool {
		_, ok := bound[name]
		return !ok
	})
	if len(missing) > 0 {
		if opts.Strict {
			return nil, errUtils.Build(fmt.Errorf("%w: %s", errUtils.ErrMissingRequiredParameter, strings.Join(missing, ", "))).
				WithHintf("Pass %s", strings.Join(lo.Map(missing, func(n string, _ int) string { return "--" + n }), " ")).
				WithContext("operation", d.Name).
				Err()
		}
		for _, name := range missing {
			log.Warn("Missing required parameter; the service may reject the request", "operation", d.Name, "parameter", name)
		}
	}

	return &Invocation{
		Descriptor:      d,
		Values:          bound,
		Missing:         missing,
		Selector:        selector,
		NoAutoIteration: opts.NoAutoIteration,
	}, nil
}

// coerce checks a caller value against the parameter kind and normalizes it.
func coerce(p Param, value any) (any, error) {
	switch p.Kind {
	case KindString:
		if s, ok := value.(string); ok {
			return s, checkValid(p, s)
		}
	case KindInt:
		switch n := value.(type) {
		case int:
			return n, nil
		case int32:
			return int(n), nil
		case int64:
			return int(n), nil
		}
	case KindStringSlice:
		switch s := value.(type) {
		case []string:
			for _, item := range s {
				if err := checkValid(p, item); err != nil {
					return nil, err
				}
			}
			return s, nil
		case string:
			return []string{s}, checkValid(p, s)
		}
	}

	return nil, errUtils.Build(fmt.Errorf("%w: --%s expects %s, got %T", errUtils.ErrInvalidFlagValue, p.Name, p.Kind, value)).Err()
}

func checkValid(p Param, s string) error {
	if len(p.ValidValues) == 0 || lo.Contains(p.ValidValues, s) {
		return nil
	}
	return errUtils.Build(fmt.Errorf("%w: --%s=%q", errUtils.ErrInvalidFlagValue, p.Name, s)).
		WithHintf("Valid values for --%s: %s", p.Name, strings.Join(p.ValidValues, ", ")).
		Err()
}
