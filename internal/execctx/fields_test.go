package execctx_test

import (
	"testing"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/execctx"
	"github.com/fenwickgql/graphqlcore/internal/parser"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

func buildSchemaAndQuery(t *testing.T, sdl, query string) (*typesystem.Schema, *ast.OperationDefinition, map[string]*ast.FragmentDefinition) {
	t.Helper()
	sdlDoc, perr := parser.Parse(sdl, "schema")
	if perr != nil {
		t.Fatalf("unexpected schema parse error: %s", perr)
	}
	schema, berr := typesystem.Build(sdlDoc)
	if berr != nil {
		t.Fatalf("unexpected build error: %s", berr)
	}
	queryDoc, perr := parser.Parse(query, "query")
	if perr != nil {
		t.Fatalf("unexpected query parse error: %s", perr)
	}
	var op *ast.OperationDefinition
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, def := range queryDoc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			op = d
		case *ast.FragmentDefinition:
			fragments[d.Name.Name] = d
		}
	}
	return schema, op, fragments
}

func TestCollectFieldsMergesDuplicateFieldsUnderOneKey(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`{ hello hello }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	fields, _ := out.Get("hello")
	if len(fields) != 2 {
		t.Fatalf("expected both occurrences of hello merged under one key, got %d", len(fields))
	}
}

func TestCollectFieldsHonorsAliases(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`{ greeting: hello }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !out.Has("greeting") {
		t.Fatal("expected the alias to be used as the response key")
	}
}

func TestCollectFieldsSkipDirectiveExcludesField(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! world: String! }`,
		`query($skip: Boolean!) { hello @skip(if: $skip) world }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	vars := map[string]interface{}{"skip": true}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, vars, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Has("hello") {
		t.Error("expected hello to be excluded by @skip(if: true)")
	}
	if !out.Has("world") {
		t.Error("expected world to remain")
	}
}

func TestCollectFieldsIncludeDirectiveFalseExcludesField(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`query($show: Boolean!) { hello @include(if: $show) }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	vars := map[string]interface{}{"show": false}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, vars, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Has("hello") {
		t.Error("expected hello to be excluded by @include(if: false)")
	}
}

func TestCollectFieldsFollowsFragmentSpread(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`{ ...Fields } fragment Fields on Query { hello }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !out.Has("hello") {
		t.Fatal("expected the fragment's field to be collected")
	}
}

func TestCollectFieldsInlineFragmentTypeConditionMismatchSkips(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`
type Query { hello: String! }
type Other { unused: String! }
`,
		`{ ... on Other { unused } hello }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if out.Has("unused") {
		t.Error("expected the inline fragment on a mismatched type to be skipped")
	}
	if !out.Has("hello") {
		t.Error("expected hello to still be collected")
	}
}

func TestCollectFieldsUnknownFragmentSpreadErrors(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`{ ...Missing }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err == nil {
		t.Fatal("expected an error for a spread of an undefined fragment")
	}
}

func TestCollectFieldsCycleSafeViaVisitedSet(t *testing.T) {
	schema, op, fragments := buildSchemaAndQuery(t,
		`type Query { hello: String! }`,
		`{ ...A } fragment A on Query { hello ...A }`,
	)
	out := typesystem.NewOrderedMap[[]*ast.Field]()
	visited := map[string]bool{}
	if err := execctx.CollectFields(schema, fragments, op.Selections, schema.Query, nil, out, visited); err != nil {
		t.Fatalf("expected the visited set to prevent infinite recursion, got error: %s", err)
	}
	fields, _ := out.Get("hello")
	if len(fields) != 1 {
		t.Errorf("expected the self-referencing fragment to contribute hello exactly once, got %d", len(fields))
	}
}
