// Package gqltesting provides a trivial Executor implementation for
// exercising the subscription kernel's plumbing in tests, without pulling
// in a real field-resolution engine. It is grounded on the teacher
// package of the same name, but that package drove a full query executor
// through jsondiff-compared expectations; query/mutation execution is out
// of scope here (spec.md §1), so this package instead offers the smallest
// Executor a subscription test needs plus a handful of assertion helpers
// built on testify.
package gqltesting

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphql "github.com/fenwickgql/graphqlcore"
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// EchoExecutor is a graphql.Executor that, for the single selected response
// field, reads root[fieldName] by reflection (map key or exported struct
// field) and reports it back as that field's value. It ignores schema, doc
// and op beyond locating the operation's sole top-level field, which is all
// the subscription kernel's tests need: a stand-in that turns "an event
// arrived" into "a Result carrying that event's data" without a resolver
// graph.
type EchoExecutor struct{}

func (EchoExecutor) Execute(_ context.Context, _ *typesystem.Schema, _ *ast.Document, op *ast.OperationDefinition, root interface{}, _ map[string]interface{}) *graphql.Result {
	if len(op.Selections) != 1 {
		return &graphql.Result{Errors: []*errors.QueryError{errors.Errorf("EchoExecutor requires exactly one selected field")}}
	}
	field, ok := op.Selections[0].(*ast.Field)
	if !ok {
		return &graphql.Result{Errors: []*errors.QueryError{errors.Errorf("EchoExecutor requires a plain field selection")}}
	}
	name := field.Alias.Name
	if name == "" {
		name = field.Name.Name
	}

	value := lookup(root, field.Name.Name)
	return &graphql.Result{Data: &ast.ObjectValue{
		Fields: []*ast.ObjectField{{Name: ast.Ident{Name: name}, Value: goToValue(value)}},
	}}
}

// goToValue lowers a plain Go value into the ast.Value shapes EchoExecutor
// needs to report a subscription event back to a test: the reverse
// direction of internal/execctx.ValueToGo, minus variables.
func goToValue(v interface{}) ast.Value {
	switch x := v.(type) {
	case nil:
		return &ast.NullValue{}
	case bool:
		return &ast.BoolValue{Val: x}
	case int:
		return &ast.IntValue{Val: int32(x)}
	case int32:
		return &ast.IntValue{Val: x}
	case float64:
		return &ast.FloatValue{Val: x}
	case string:
		return &ast.StringValue{Val: x}
	case []interface{}:
		vals := make([]ast.Value, len(x))
		for i, e := range x {
			vals[i] = goToValue(e)
		}
		return &ast.ListValue{Values: vals}
	case map[string]interface{}:
		fields := make([]*ast.ObjectField, 0, len(x))
		for k, e := range x {
			fields = append(fields, &ast.ObjectField{Name: ast.Ident{Name: k}, Value: goToValue(e)})
		}
		return &ast.ObjectValue{Fields: fields}
	default:
		return &ast.StringValue{Val: reflect.ValueOf(v).String()}
	}
}

func lookup(root interface{}, name string) interface{} {
	if m, ok := root.(map[string]interface{}); ok {
		return m[name]
	}
	v := reflect.ValueOf(root)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	b := []byte(name)
	if len(b) > 0 && b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	f := v.FieldByName(string(b))
	if !f.IsValid() {
		return nil
	}
	return f.Interface()
}

// AssertNoErrors fails t if result carries any errors, logging them first.
func AssertNoErrors(t *testing.T, result *graphql.Result) {
	t.Helper()
	if !assert.Empty(t, result.Errors) {
		for _, e := range result.Errors {
			t.Logf("unexpected error: %s", e.Error())
		}
	}
}

// RequireErrorRule fails t unless result carries at least one error whose
// Rule matches want.
func RequireErrorRule(t *testing.T, result *graphql.Result, want string) {
	t.Helper()
	for _, e := range result.Errors {
		if e.Rule == want {
			return
		}
	}
	require.Failf(t, "expected error rule not found", "want %q, got %v", want, result.Errors)
}
