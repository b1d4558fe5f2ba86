package operation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ekscli/errors"
)

func TestBind_DefaultSelect(t *testing.T) {
	op := newTestOp(false)

	inv, err := op.Bind(map[string]any{"cluster-name": "prod"}, BindOptions{})
	require.NoError(t, err)

	assert.Equal(t, Selector{Kind: SelectField, Field: "Items"}, inv.Selector)
	assert.Empty(t, inv.Missing)
}

func TestBind_FallsBackToWholeResponse(t *testing.T) {
	op := newTestOp(false)
	op.Desc.DefaultSelect = ""

	inv, err := op.Bind(map[string]any{"cluster-name": "prod"}, BindOptions{})
	require.NoError(t, err)
	assert.Equal(t, SelectWhole, inv.Selector.Kind)
}

func TestBind_StrictMissingRequired(t *testing.T) {
	op := newTestOp(false)

	_, err := op.Bind(map[string]any{"max-results": 5}, BindOptions{Strict: true})

	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrMissingRequiredParameter)
	assert.Contains(t, err.Error(), "cluster-name")
	assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
}

func TestBind_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		values   map[string]any
		opts     BindOptions
		sentinel error
	}{
		{"unknown parameter", map[string]any{"cluster": "prod"}, BindOptions{}, errUtils.ErrUnknownParameter},
		{"wrong type", map[string]any{"max-results": "ten"}, BindOptions{}, errUtils.ErrInvalidFlagValue},
		{"invalid value", map[string]any{"scope-type": "global"}, BindOptions{}, errUtils.ErrInvalidFlagValue},
		{"unknown field selector", map[string]any{}, BindOptions{Select: "Addons"}, errUtils.ErrInvalidSelector},
		{"metadata is not selectable", map[string]any{}, BindOptions{Select: "ResultMetadata"}, errUtils.ErrInvalidSelector},
		{"unknown parameter selector", map[string]any{}, BindOptions{Select: "^region"}, errUtils.ErrInvalidSelector},
		{"blank selector", map[string]any{}, BindOptions{Select: "  "}, errUtils.ErrInvalidSelector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestOp(false).Bind(tt.values, tt.opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, errUtils.ExitCodeConfig, errUtils.GetExitCode(err))
		})
	}
}

func TestBind_CoercesValues(t *testing.T) {
	op := newTestOp(false)

	inv, err := op.Bind(map[string]any{
		"cluster-name":    "prod",
		"max-results":     int32(7),
		"scope-namespace": "default",
	}, BindOptions{})
	require.NoError(t, err)

	assert.Equal(t, 7, inv.Values["max-results"])
	assert.Equal(t, []string{"default"}, inv.Values["scope-namespace"])
}

func TestParseSelector(t *testing.T) {
	d := &newTestOp(false).Desc
	outType := reflect.TypeFor[testOutput]()

	tests := []struct {
		expr     string
		expected Selector
	}{
		{"*", Selector{Kind: SelectWhole}},
		{"Items", Selector{Kind: SelectField, Field: "Items"}},
		{"items", Selector{Kind: SelectField, Field: "Items"}},
		{"nexttoken", Selector{Kind: SelectField, Field: "NextToken"}},
		{"^cluster-name", Selector{Kind: SelectParam, Param: "cluster-name"}},
		{"^clustername", Selector{Kind: SelectParam, Param: "cluster-name"}},
		{"^Scope.Type", Selector{Kind: SelectParam, Param: "scope-type"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			s, err := ParseSelector(tt.expr, d, outType)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestSelector_Project(t *testing.T) {
	inv := &Invocation{Values: map[string]any{"cluster-name": "prod"}}
	out := &testOutput{Items: []string{"a"}}

	assert.Same(t, out, Selector{Kind: SelectWhole}.Project(out, inv))
	assert.Equal(t, []string{"a"}, Selector{Kind: SelectField, Field: "Items"}.Project(out, inv))
	assert.Equal(t, "prod", Selector{Kind: SelectParam, Param: "cluster-name"}.Project(nil, inv))
	assert.Nil(t, Selector{Kind: SelectParam, Param: "max-results"}.Project(nil, inv))
	assert.Nil(t, Selector{Kind: SelectField, Field: "Items"}.Project((*testOutput)(nil), inv))
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "*", Selector{Kind: SelectWhole}.String())
	assert.Equal(t, "Items", Selector{Kind: SelectField, Field: "Items"}.String())
	assert.Equal(t, "^cluster-name", Selector{Kind: SelectParam, Param: "cluster-name"}.String())
}
