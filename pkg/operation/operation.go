package operation

import (
	"context"
	"fmt"
	"reflect"

	errUtils "github.com/cloudposse/ekscli/errors"
	"github.com/cloudposse/ekscli/pkg/perf"
)

// Emitter receives each projected result as soon as it is available.
type Emitter func(value any) error

// Operation is the type-erased view of an Op used by the command layer. C is the client type.
type Operation[C any] interface {
	Descriptor() *Descriptor
	Bind(values map[string]any, opts BindOptions) (*Invocation, error)
	// Translate returns the request that Invoke would send first.
	Translate(inv *Invocation) (any, error)
	Invoke(ctx context.Context, client C, inv *Invocation, emit Emitter) error
	Validate() error
}

// Op binds a Descriptor to one client method with request type In and response type Out.
type Op[C, In, Out any] struct {
	Desc Descriptor
	Call func(ctx context.Context, client C, in *In) (*Out, error)
	// NextToken and SetToken are required for paginated operations.
	NextToken func(out *Out) *string
	SetToken  func(in *In, token *string)
}

func (o *Op[C, In, Out]) Descriptor() *Descriptor {
	return &o.Desc
}

// Bind validates caller input for this operation.
func (o *Op[C, In, Out]) Bind(values map[string]any, opts BindOptions) (*Invocation, error) {
	return Bind(&o.Desc, reflect.TypeFor[Out](), values, opts)
}

func (o *Op[C, In, Out]) Translate(inv *Invocation) (any, error) {
	return Translate[In](inv)
}

// Validate checks the descriptor against the request and response types.
func (o *Op[C, In, Out]) Validate() error {
	defer perf.Track(nil, "operation.Op.Validate")()

	d := &o.Desc
	if d.Name == "" || d.Command == "" || o.Call == nil {
		return fmt.Errorf("%w: operation needs a name, a command and a call", errUtils.ErrInvalidRequestMapping)
	}

	seen := make(map[string]bool, len(d.Params))
	for _, p := range d.Params {
		if seen[p.Name] {
			return fmt.Errorf("%w: %s: duplicate parameter %s", errUtils.ErrInvalidRequestMapping, d.Name, p.Name)
		}
		seen[p.Name] = true
		if err := checkFieldPath(reflect.TypeFor[In](), p.Field, p.Kind); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}

	if d.Paginated {
		if o.NextToken == nil || o.SetToken == nil {
			return fmt.Errorf("%w: %s: paginated operation needs token accessors", errUtils.ErrInvalidRequestMapping, d.Name)
		}
		if _, ok := d.Param(d.TokenParam); !ok {
			return fmt.Errorf("%w: %s: token parameter %q is not declared", errUtils.ErrInvalidRequestMapping, d.Name, d.TokenParam)
		}
	}

	if d.DefaultSelect != "" {
		if _, err := ParseSelector(d.DefaultSelect, d, reflect.TypeFor[Out]()); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}

// Invoke runs the invocation: translate, call the service page by page, project and emit.
//
// Each page is emitted before the next is requested. A failure ends the invocation; results
// already emitted stay emitted.
func (o *Op[C, In, Out]) Invoke(ctx context.Context, client C, inv *Invocation, emit Emitter) error {
	defer perf.Track(nil, "operation.Op.Invoke")()

	// Echoing a parameter needs no response. Destructive calls still run for their effect.
	if inv.Selector.Kind == SelectParam && !o.Desc.Destructive {
		return emit(inv.Selector.Project(nil, inv))
	}

	req, err := Translate[In](inv)
	if err != nil {
		return err
	}

	pager := &Pager[In, Out]{
		Operation: o.Desc.Name,
		Call: func(ctx context.Context, in *In) (*Out, error) {
			return o.Call(ctx, client, in)
		},
		NextToken:    o.NextToken,
		SetToken:     o.SetToken,
		InitialToken: initialToken(inv),
		Manual:       !o.Desc.Paginated || inv.Manual() || inv.Selector.Kind == SelectParam,
		TokenFlag:    o.Desc.TokenParam,
	}

	return pager.Run(ctx, req, func(out *Out) error {
		return emit(inv.Selector.Project(out, inv))
	})
}

// initialToken returns the continuation token the caller passed, if any.
func initialToken(inv *Invocation) *string {
	token, ok := inv.Values[inv.Descriptor.TokenParam].(string)
	if !ok || inv.Descriptor.TokenParam == "" {
		return nil
	}
	return &token
}
