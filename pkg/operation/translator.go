package operation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// Translate builds a request of type In from the parameters the caller set.
//
// Unset parameters never reach the request, so their fields keep the zero value (nil for the
// SDK's pointer fields). A nested structure is created only when at least one of its fields
// is set; otherwise it stays absent.
func Translate[In any](inv *Invocation) (*In, error) {
	defer perf.Track(nil, "operation.Translate")()

	tree, err := fieldTree(inv)
	if err != nil {
		return nil, err
	}

	req := new(In)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      req,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrInvalidRequestMapping, err)
	}
	if err := decoder.Decode(tree); err != nil {
		return nil, errUtils.Build(fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrInvalidRequestMapping, err)).
			WithContext("operation", inv.Descriptor.Name).
			Err()
	}
	return req, nil
}

// fieldTree arranges the set values along their request field paths.
func fieldTree(inv *Invocation) (map[string]any, error) {
	tree := make(map[string]any)
	for _, p := range inv.Descriptor.Params {
		value, ok := inv.Values[p.Name]
		if !ok {
			continue
		}

		path := strings.Split(p.Field, ".")
		node := tree
		for _, segment := range path[:len(path)-1] {
			child, exists := node[segment]
			if !exists {
				child = make(map[string]any)
				node[segment] = child
			}
			next, isMap := child.(map[string]any)
			if !isMap {
				return nil, errUtils.Build(fmt.Errorf("%w: %s conflicts with another parameter at %s",
					errUtils.ErrInvalidRequestMapping, p.Field, segment)).Err()
			}
			node = next
		}
		leaf := path[len(path)-1]
		if _, exists := node[leaf]; exists {
			return nil, errUtils.Build(fmt.Errorf("%w: %s is mapped by more than one parameter",
				errUtils.ErrInvalidRequestMapping, p.Field)).Err()
		}
		node[leaf] = value
	}
	return tree, nil
}

// checkFieldPath verifies that a dotted path resolves to a field of t compatible with kind.
func checkFieldPath(t reflect.Type, path string, kind ParamKind) error {
	for _, segment := range strings.Split(path, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return fmt.Errorf("%w: %s: %s is not a structure", errUtils.ErrInvalidRequestMapping, path, t)
		}
		f, ok := t.FieldByName(segment)
		if !ok || !f.IsExported() {
			return fmt.Errorf("%w: %s: no field %s in %s", errUtils.ErrInvalidRequestMapping, path, segment, t)
		}
		t = f.Type
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var compatible bool
	switch kind {
	case KindString:
		compatible = t.Kind() == reflect.String
	case KindInt:
		switch t.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			compatible = true
		}
	case KindStringSlice:
		compatible = t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String
	}
	if !compatible {
		return fmt.Errorf("%w: %s: %s parameter cannot fill %s", errUtils.ErrInvalidRequestMapping, path, kind, t)
	}
	return nil
}
