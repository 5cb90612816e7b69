package graphql_test

import (
	"strings"
	"testing"

	graphql "github.com/fenwickgql/graphqlcore"
)

func TestParseSchemaBuildsAndValidates(t *testing.T) {
	_, err := graphql.ParseSchema(`
type Query { hello: String! }
`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestParseSchemaSurfacesValidationErrors(t *testing.T) {
	_, err := graphql.ParseSchema(`
interface Named { name: String! }
type Query { hello: String! }
type Person implements Named { age: Int! }
`)
	if err == nil {
		t.Fatal("expected a validation error for a missing interface field")
	}
	if !strings.Contains(err.Error(), "schema error") {
		t.Errorf("expected an Errors-formatted message, got %q", err.Error())
	}
}

func TestParseSchemaSurfacesSyntaxErrors(t *testing.T) {
	_, err := graphql.ParseSchema(`type Query { hello: }`)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
}

func TestMustParseSchemaPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustParseSchema to panic on an invalid schema")
		}
	}()
	graphql.MustParseSchema(`type Query { hello: }`)
}

func TestExtendAddsFieldsWithoutMutatingOriginal(t *testing.T) {
	original := graphql.MustParseSchema(`type Query { hello: String! }`)
	extended, err := original.Extend(`
extend type Query {
	goodbye: String!
}
`)
	if err != nil {
		t.Fatalf("unexpected extend error: %s", err)
	}
	if extended == original {
		t.Fatal("expected Extend to return a distinct Schema when definitions were added")
	}
}

func TestExtendPropagatesOptionsFromBaseSchema(t *testing.T) {
	original := graphql.MustParseSchema(`type Query { hello: String! }`, graphql.AssumeValid(true))
	_, err := original.Extend(`
interface Named { name: String! }
extend type Query implements Named {
	name: Int!
}
`)
	if err != nil {
		t.Fatalf("expected AssumeValid from the base schema to carry through Extend and skip validation, got error: %s", err)
	}
}

func TestAssumeValidSkipsValidation(t *testing.T) {
	_, err := graphql.ParseSchema(`
interface Named { name: String! }
type Query { hello: String! }
type Person implements Named { age: Int! }
`, graphql.AssumeValid(true))
	if err != nil {
		t.Fatalf("expected AssumeValid to skip validation entirely, got error: %s", err)
	}
}
