package typesystem_test

import (
	"testing"

	"github.com/fenwickgql/graphqlcore/internal/parser"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

func fieldType(t *testing.T, schema *typesystem.Schema, typeName, fieldName string) interface {
	Kind() string
	String() string
} {
	t.Helper()
	nt, ok := schema.TypeMap.Get(typeName)
	if !ok {
		t.Fatalf("type %q not found", typeName)
	}
	obj, ok := nt.(*typesystem.Object)
	if !ok {
		iface, ok := nt.(*typesystem.Interface)
		if !ok {
			t.Fatalf("type %q is neither an Object nor an Interface", typeName)
		}
		f, ok := iface.Fields.Get(fieldName)
		if !ok {
			t.Fatalf("field %q not found on %q", fieldName, typeName)
		}
		return f.Type
	}
	f, ok := obj.Fields.Get(fieldName)
	if !ok {
		t.Fatalf("field %q not found on %q", fieldName, typeName)
	}
	return f.Type
}

func TestIsCovariantSubtypeNonNullNarrowing(t *testing.T) {
	doc, perr := parser.Parse(`
type Query { hello: String! }
interface HasName { name: String }
type Widget implements HasName { name: String! }
`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	schema, berr := typesystem.Build(doc)
	if berr != nil {
		t.Fatalf("unexpected build error: %s", berr)
	}

	ifaceType := fieldType(t, schema, "HasName", "name")
	objType := fieldType(t, schema, "Widget", "name")

	if !typesystem.IsCovariantSubtype(schema, objType, ifaceType) {
		t.Error("expected String! to be a covariant subtype of String")
	}
	if typesystem.IsCovariantSubtype(schema, ifaceType, objType) {
		t.Error("did not expect String to be a covariant subtype of String!")
	}
}

func TestIsCovariantSubtypeListElementCovariance(t *testing.T) {
	doc, perr := parser.Parse(`
type Query { hello: String! }
interface Named { name: String! }
interface HasTags { tags: [Named] }
type Widget implements HasTags & Named {
	tags: [Widget!]
	name: String!
}
`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	schema, berr := typesystem.Build(doc)
	if berr != nil {
		t.Fatalf("unexpected build error: %s", berr)
	}

	ifaceType := fieldType(t, schema, "HasTags", "tags")
	objType := fieldType(t, schema, "Widget", "tags")

	if !typesystem.IsCovariantSubtype(schema, objType, ifaceType) {
		t.Error("expected [Widget!] to be a covariant subtype of [Named], since Widget implements Named")
	}
}

func TestIsCovariantSubtypeRejectsUnrelatedScalars(t *testing.T) {
	doc, perr := parser.Parse(`
type Query { hello: String! }
interface Named { name: String }
type Widget implements Named { name: Int }
`, "test")
	if perr != nil {
		t.Fatalf("unexpected parse error: %s", perr)
	}
	schema, berr := typesystem.Build(doc)
	if berr != nil {
		t.Fatalf("unexpected build error: %s", berr)
	}

	ifaceType := fieldType(t, schema, "Named", "name")
	objType := fieldType(t, schema, "Widget", "name")

	if typesystem.IsCovariantSubtype(schema, objType, ifaceType) {
		t.Error("Int should never be a covariant subtype of String")
	}
}
