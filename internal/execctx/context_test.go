package execctx_test

import (
	"testing"

	"github.com/fenwickgql/graphqlcore/internal/execctx"
	"github.com/fenwickgql/graphqlcore/internal/parser"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

func buildTestSchema(t *testing.T, sdl string) *typesystem.Schema {
	t.Helper()
	doc, perr := parser.Parse(sdl, "schema")
	if perr != nil {
		t.Fatalf("unexpected schema parse error: %s", perr)
	}
	schema, berr := typesystem.Build(doc)
	if berr != nil {
		t.Fatalf("unexpected build error: %s", berr)
	}
	return schema
}

const greetingSchema = `
type Query {
	hello(name: String): String!
	noop: String!
}
type Mutation {
	noop: String!
}
`

func TestBuildSelectsSoleOperationWhenNameOmitted(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`{ hello }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	ctx, err := execctx.Build(schema, doc, "", nil)
	if err != nil {
		t.Fatalf("unexpected build error: %s", err)
	}
	if ctx.Operation.Name.Name != "" {
		t.Errorf("expected the anonymous operation, got %q", ctx.Operation.Name.Name)
	}
	if ctx.Strategy != execctx.Parallel {
		t.Error("expected a query to select the Parallel strategy")
	}
}

func TestBuildAmbiguousOperationWithoutName(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`
query One { hello }
query Two { hello }
`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "", nil)
	if err == nil || err.Rule != "AmbiguousOperation" {
		t.Fatalf("expected AmbiguousOperation, got %v", err)
	}
}

func TestBuildUnknownOperationName(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`query One { hello }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "Missing", nil)
	if err == nil || err.Rule != "UnknownOperation" {
		t.Fatalf("expected UnknownOperation, got %v", err)
	}
}

func TestBuildNoOperationInDocument(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`fragment F on Query { hello }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "", nil)
	if err == nil || err.Rule != "NoOperation" {
		t.Fatalf("expected NoOperation, got %v", err)
	}
}

func TestBuildMutationSelectsSerialStrategy(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`mutation { noop }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	ctx, err := execctx.Build(schema, doc, "", nil)
	if err != nil {
		t.Fatalf("unexpected build error: %s", err)
	}
	if ctx.Strategy != execctx.Serial {
		t.Error("expected a mutation to select the Serial strategy")
	}
}

func TestBuildVariableDefaultApplied(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`query Greet($name: String = "world") { hello(name: $name) }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	ctx, err := execctx.Build(schema, doc, "", nil)
	if err != nil {
		t.Fatalf("unexpected build error: %s", err)
	}
	if got := ctx.Variables["name"]; got != "world" {
		t.Errorf("expected default variable value %q, got %v", "world", got)
	}
}

func TestBuildVariableSuppliedOverridesDefault(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`query Greet($name: String = "world") { hello(name: $name) }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	ctx, err := execctx.Build(schema, doc, "", map[string]interface{}{"name": "gopher"})
	if err != nil {
		t.Fatalf("unexpected build error: %s", err)
	}
	if got := ctx.Variables["name"]; got != "gopher" {
		t.Errorf("expected supplied variable value %q, got %v", "gopher", got)
	}
}

func TestBuildMissingRequiredVariableFails(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`query Greet($name: String!) { hello(name: $name) }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "", nil)
	if err == nil || err.Rule != "VariableCoercionFailed" {
		t.Fatalf("expected VariableCoercionFailed, got %v", err)
	}
}

func TestBuildVariableWrongTypeFails(t *testing.T) {
	schema := buildTestSchema(t, greetingSchema)
	doc, perr := parser.Parse(`query Greet($name: Int!) { hello(name: $name) }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "", map[string]interface{}{"name": "not-an-int"})
	if err == nil || err.Rule != "VariableCoercionFailed" {
		t.Fatalf("expected VariableCoercionFailed for a String value supplied to an Int! variable, got %v", err)
	}
}

func TestBuildVariableUnknownEnumValueFails(t *testing.T) {
	schema := buildTestSchema(t, `
enum Color { RED GREEN BLUE }
type Query {
	hello(name: String): String!
	byColor(c: Color): String!
}
`)
	doc, perr := parser.Parse(`query Pick($c: Color!) { byColor(c: $c) }`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	_, err := execctx.Build(schema, doc, "", map[string]interface{}{"c": "PURPLE"})
	if err == nil || err.Rule != "VariableCoercionFailed" {
		t.Fatalf("expected VariableCoercionFailed for an unrecognized enum literal, got %v", err)
	}
}

func TestBuildCollectsFragmentDefinitions(t *testing.T) {
	schema := buildTestSchema(t, `
type Query { hello: Greeting! }
type Greeting { text: String! }
`)
	doc, perr := parser.Parse(`
query { hello { ...Fields } }
fragment Fields on Greeting { text }
`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	ctx, err := execctx.Build(schema, doc, "", nil)
	if err != nil {
		t.Fatalf("unexpected build error: %s", err)
	}
	if _, ok := ctx.Fragments["Fields"]; !ok {
		t.Error("expected the Fields fragment to be collected")
	}
}
