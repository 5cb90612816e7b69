package execctx_test

import (
	"testing"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/execctx"
)

func nonNull(name string) ast.Type {
	return &ast.NonNull{OfType: &ast.TypeName{Name: ast.Ident{Name: name}}}
}

func TestCoerceValueScalarsAndConversions(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	tests := []struct {
		name    string
		t       ast.Type
		in      interface{}
		want    interface{}
		wantErr bool
	}{
		{"int passthrough", nonNull("Int"), int32(3), int32(3), false},
		{"int from float", nonNull("Int"), float64(3), int32(3), false},
		{"int from non-integral float fails", nonNull("Int"), float64(3.5), nil, true},
		{"float from int", nonNull("Float"), int32(2), float64(2), false},
		{"string rejects int", nonNull("String"), int32(1), nil, true},
		{"boolean rejects string", nonNull("Boolean"), "true", nil, true},
		{"id accepts int as string", nonNull("ID"), int32(7), "7", false},
		{"null on nullable is fine", &ast.TypeName{Name: ast.Ident{Name: "String"}}, nil, nil, false},
		{"null on non-null fails", nonNull("String"), nil, nil, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := execctx.CoerceValue(schema, test.t, test.in)
			if test.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != test.want {
				t.Errorf("want %#v, got %#v", test.want, got)
			}
		})
	}
}

func TestCoerceValueListWrapsBareValue(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	listType := &ast.List{OfType: &ast.TypeName{Name: ast.Ident{Name: "Int"}}}
	got, err := execctx.CoerceValue(schema, listType, int32(5))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	list, ok := got.([]interface{})
	if !ok || len(list) != 1 || list[0] != int32(5) {
		t.Fatalf("expected a single-element list, got %#v", got)
	}
}

func TestCoerceValueListElementFailurePropagates(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	listType := &ast.List{OfType: &ast.TypeName{Name: ast.Ident{Name: "Int"}}}
	_, err := execctx.CoerceValue(schema, listType, []interface{}{int32(1), "nope"})
	if err == nil {
		t.Fatal("expected an error coercing a non-Int list element")
	}
}

func TestCoerceValueEnumRejectsUnknownMember(t *testing.T) {
	schema := buildTestSchema(t, `
enum Color { RED GREEN BLUE }
type Query { hello: String! }
`)
	enumType := nonNull("Color")
	if _, err := execctx.CoerceValue(schema, enumType, "RED"); err != nil {
		t.Fatalf("unexpected error for a known member: %s", err)
	}
	if _, err := execctx.CoerceValue(schema, enumType, "PURPLE"); err == nil {
		t.Fatal("expected an error for an unrecognized enum member")
	}
}

func TestCoerceValueInputObjectAppliesDefaultsAndRejectsUnknownFields(t *testing.T) {
	schema := buildTestSchema(t, `
input Filter {
	name: String = "anon"
	limit: Int!
}
type Query { hello: String! }
`)
	inputType := nonNull("Filter")

	got, err := execctx.CoerceValue(schema, inputType, map[string]interface{}{"limit": int32(10)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	obj := got.(map[string]interface{})
	if obj["name"] != "anon" {
		t.Errorf("expected the declared default to be applied, got %v", obj["name"])
	}
	if obj["limit"] != int32(10) {
		t.Errorf("expected limit to be coerced through, got %v", obj["limit"])
	}

	if _, err := execctx.CoerceValue(schema, inputType, map[string]interface{}{"name": "x"}); err == nil {
		t.Fatal("expected an error for a missing required field with no default")
	}

	if _, err := execctx.CoerceValue(schema, inputType, map[string]interface{}{"limit": int32(1), "bogus": true}); err == nil {
		t.Fatal("expected an error for an unknown input object field")
	}
}
