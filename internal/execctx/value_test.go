package execctx_test

import (
	"reflect"
	"testing"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/execctx"
)

func TestValueToGoLiterals(t *testing.T) {
	tests := []struct {
		name string
		v    ast.Value
		want interface{}
	}{
		{"null", &ast.NullValue{}, nil},
		{"bool", &ast.BoolValue{Val: true}, true},
		{"int", &ast.IntValue{Val: 42}, int32(42)},
		{"float", &ast.FloatValue{Val: 3.5}, 3.5},
		{"string", &ast.StringValue{Val: "hi"}, "hi"},
		{"enum", &ast.EnumValue{Val: "RED"}, "RED"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := execctx.ValueToGo(test.v, nil)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("want %#v, got %#v", test.want, got)
			}
		})
	}
}

func TestValueToGoList(t *testing.T) {
	v := &ast.ListValue{Values: []ast.Value{&ast.IntValue{Val: 1}, &ast.IntValue{Val: 2}}}
	got, err := execctx.ValueToGo(v, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []interface{}{int32(1), int32(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %#v, got %#v", want, got)
	}
}

func TestValueToGoObject(t *testing.T) {
	v := &ast.ObjectValue{Fields: []*ast.ObjectField{
		{Name: ast.Ident{Name: "x"}, Value: &ast.IntValue{Val: 1}},
	}}
	got, err := execctx.ValueToGo(v, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := map[string]interface{}{"x": int32(1)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %#v, got %#v", want, got)
	}
}

func TestValueToGoVariableResolution(t *testing.T) {
	v := &ast.Variable{Name: "x"}
	got, err := execctx.ValueToGo(v, map[string]interface{}{"x": "resolved"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != "resolved" {
		t.Errorf("expected the variable to resolve to %q, got %v", "resolved", got)
	}
}

func TestValueToGoUndefinedVariableErrors(t *testing.T) {
	v := &ast.Variable{Name: "missing"}
	_, err := execctx.ValueToGo(v, nil)
	if err == nil {
		t.Fatal("expected an error resolving an undefined variable")
	}
}

func TestCoerceArgumentsAppliesDefaultsAndSkipsOmitted(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	declared := ast.InputValueDefinitionList{
		{Name: ast.Ident{Name: "loud"}, Type: &ast.NonNull{OfType: &ast.TypeName{Name: ast.Ident{Name: "Boolean"}}}, Default: &ast.BoolValue{Val: false}},
		{Name: ast.Ident{Name: "unset"}, Type: &ast.TypeName{Name: ast.Ident{Name: "Boolean"}}},
	}
	supplied := ast.ArgumentList{}
	got, err := execctx.CoerceArguments(schema, declared, supplied, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got["loud"] != false {
		t.Errorf("expected the default value to be applied, got %v", got["loud"])
	}
	if _, ok := got["unset"]; ok {
		t.Error("expected an omitted argument with no default to be absent, not present with a zero value")
	}
}

func TestCoerceArgumentsSuppliedOverridesDefault(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	declared := ast.InputValueDefinitionList{
		{Name: ast.Ident{Name: "loud"}, Type: &ast.NonNull{OfType: &ast.TypeName{Name: ast.Ident{Name: "Boolean"}}}, Default: &ast.BoolValue{Val: false}},
	}
	supplied := ast.ArgumentList{
		{Name: ast.Ident{Name: "loud"}, Value: &ast.BoolValue{Val: true}},
	}
	got, err := execctx.CoerceArguments(schema, declared, supplied, nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got["loud"] != true {
		t.Errorf("expected the supplied value to win, got %v", got["loud"])
	}
}

func TestCoerceArgumentsRejectsWrongScalarType(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	declared := ast.InputValueDefinitionList{
		{Name: ast.Ident{Name: "count"}, Type: &ast.NonNull{OfType: &ast.TypeName{Name: ast.Ident{Name: "Int"}}}},
	}
	supplied := ast.ArgumentList{
		{Name: ast.Ident{Name: "count"}, Value: &ast.StringValue{Val: "not-an-int"}},
	}
	_, err := execctx.CoerceArguments(schema, declared, supplied, nil)
	if err == nil {
		t.Fatal("expected an error coercing a String literal against an Int! argument")
	}
}
