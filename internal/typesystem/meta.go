package typesystem

import "github.com/fenwickgql/graphqlcore/ast"

// Meta holds the built-in scalars, introspection types, and built-in
// directives that must be present in every schema and are never replaced
// by a user definition of the same name (§3 "Built-in preservation"). They
// are constructed exactly once, at package init, so that the "identity-
// equal across builds" property holds: every call to Build/Extend seeds
// its type map from these same pointers rather than fresh copies.
var Meta struct {
	Scalars       *OrderedMap[NamedType]
	Introspection *OrderedMap[NamedType]
	Directives    *OrderedMap[*Directive]
}

func namedRef(t ast.Type) ast.Type { return t }

func scalarType(name string) ast.Type { return Meta.Scalars.MustGet(name) }

func nonNull(t ast.Type) ast.Type { return &ast.NonNull{OfType: t} }
func listOf(t ast.Type) ast.Type  { return &ast.List{OfType: t} }

func field(name string, typ ast.Type) *Field {
	return &Field{Name: name, Type: typ, Args: NewOrderedMap[*Argument]()}
}

func init() {
	Meta.Scalars = NewOrderedMap[NamedType]()
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		Meta.Scalars.Set(name, &Scalar{Name: name, Desc: builtinScalarDesc[name]})
	}

	Meta.Introspection = NewOrderedMap[NamedType]()
	buildIntrospectionTypes()

	Meta.Directives = NewOrderedMap[*Directive]()
	buildBuiltinDirectives()
}

var builtinScalarDesc = map[string]string{
	"Int":     "The `Int` scalar type represents non-fractional signed whole numeric values.",
	"Float":    "The `Float` scalar type represents signed double-precision fractional values.",
	"String":   "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	"Boolean":  "The `Boolean` scalar type represents `true` or `false`.",
	"ID":       "The `ID` scalar type represents a unique identifier, often used to refetch an object.",
}

// buildIntrospectionTypes constructs a minimal but self-consistent subset
// of the standard introspection schema: enough for the types to be present
// and linkable (§3 "Built-in preservation"), without implementing the
// introspection resolvers themselves, which belong to the query executor
// (out of scope, §1).
func buildIntrospectionTypes() {
	typeKind := &Enum{Name: "__TypeKind", Desc: "An enum describing what kind of type a given `__Type` is.", Values: NewOrderedMap[*EnumValueDef]()}
	for _, v := range []string{"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL"} {
		typeKind.Values.Set(v, &EnumValueDef{Name: v})
	}
	Meta.Introspection.Set(typeKind.Name, typeKind)

	dirLoc := &Enum{Name: "__DirectiveLocation", Desc: "A Directive can be adjacent to many parts of the GraphQL language.", Values: NewOrderedMap[*EnumValueDef]()}
	for _, v := range []string{
		"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION", "FRAGMENT_SPREAD",
		"INLINE_FRAGMENT", "VARIABLE_DEFINITION", "SCHEMA", "SCALAR", "OBJECT", "FIELD_DEFINITION",
		"ARGUMENT_DEFINITION", "INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT", "INPUT_FIELD_DEFINITION",
	} {
		dirLoc.Values.Set(v, &EnumValueDef{Name: v})
	}
	Meta.Introspection.Set(dirLoc.Name, dirLoc)

	inputValue := &Object{Name: "__InputValue", Fields: NewOrderedMap[*Field]()}
	enumValue := &Object{Name: "__EnumValue", Fields: NewOrderedMap[*Field]()}
	typ := &Object{Name: "__Type", Fields: NewOrderedMap[*Field]()}
	fld := &Object{Name: "__Field", Fields: NewOrderedMap[*Field]()}
	directive := &Object{Name: "__Directive", Fields: NewOrderedMap[*Field]()}
	schemaType := &Object{Name: "__Schema", Fields: NewOrderedMap[*Field]()}

	inputValue.Fields.Set("name", field("name", nonNull(scalarType("String"))))
	inputValue.Fields.Set("description", field("description", scalarType("String")))
	inputValue.Fields.Set("type", field("type", nonNull(namedRef(typ))))
	inputValue.Fields.Set("defaultValue", field("defaultValue", scalarType("String")))

	enumValue.Fields.Set("name", field("name", nonNull(scalarType("String"))))
	enumValue.Fields.Set("description", field("description", scalarType("String")))
	enumValue.Fields.Set("isDeprecated", field("isDeprecated", nonNull(scalarType("Boolean"))))
	enumValue.Fields.Set("deprecationReason", field("deprecationReason", scalarType("String")))

	fld.Fields.Set("name", field("name", nonNull(scalarType("String"))))
	fld.Fields.Set("description", field("description", scalarType("String")))
	fld.Fields.Set("args", field("args", nonNull(listOf(nonNull(namedRef(inputValue))))))
	fld.Fields.Set("type", field("type", nonNull(namedRef(typ))))
	fld.Fields.Set("isDeprecated", field("isDeprecated", nonNull(scalarType("Boolean"))))
	fld.Fields.Set("deprecationReason", field("deprecationReason", scalarType("String")))

	typ.Fields.Set("kind", field("kind", nonNull(namedRef(typeKind))))
	typ.Fields.Set("name", field("name", scalarType("String")))
	typ.Fields.Set("description", field("description", scalarType("String")))
	typ.Fields.Set("specifiedByURL", field("specifiedByURL", scalarType("String")))
	typ.Fields.Set("fields", field("fields", listOf(nonNull(namedRef(fld)))))
	typ.Fields.Set("interfaces", field("interfaces", listOf(nonNull(namedRef(typ)))))
	typ.Fields.Set("possibleTypes", field("possibleTypes", listOf(nonNull(namedRef(typ)))))
	typ.Fields.Set("enumValues", field("enumValues", listOf(nonNull(namedRef(enumValue)))))
	typ.Fields.Set("inputFields", field("inputFields", listOf(nonNull(namedRef(inputValue)))))
	typ.Fields.Set("ofType", field("ofType", namedRef(typ)))

	directive.Fields.Set("name", field("name", nonNull(scalarType("String"))))
	directive.Fields.Set("description", field("description", scalarType("String")))
	directive.Fields.Set("locations", field("locations", nonNull(listOf(nonNull(namedRef(dirLoc))))))
	directive.Fields.Set("args", field("args", nonNull(listOf(nonNull(namedRef(inputValue))))))
	directive.Fields.Set("isRepeatable", field("isRepeatable", nonNull(scalarType("Boolean"))))

	schemaType.Fields.Set("description", field("description", scalarType("String")))
	schemaType.Fields.Set("types", field("types", nonNull(listOf(nonNull(namedRef(typ))))))
	schemaType.Fields.Set("queryType", field("queryType", nonNull(namedRef(typ))))
	schemaType.Fields.Set("mutationType", field("mutationType", namedRef(typ)))
	schemaType.Fields.Set("subscriptionType", field("subscriptionType", namedRef(typ)))
	schemaType.Fields.Set("directives", field("directives", nonNull(listOf(nonNull(namedRef(directive))))))

	for _, t := range []NamedType{inputValue, enumValue, typ, fld, directive, schemaType} {
		Meta.Introspection.Set(t.TypeName(), t)
	}
}

func buildBuiltinDirectives() {
	ifArg := &Argument{Name: "if", Type: nonNull(scalarType("Boolean"))}
	args := func(a ...*Argument) *OrderedMap[*Argument] {
		m := NewOrderedMap[*Argument]()
		for _, x := range a {
			m.Set(x.Name, x)
		}
		return m
	}

	Meta.Directives.Set("skip", &Directive{
		Name:      "skip",
		Desc:      "Directs the executor to skip this field or fragment when the `if` argument is true.",
		Locations: []DirectiveLocation{LocField, LocFragmentSpread, LocInlineFragment},
		Args:      args(ifArg),
	})
	Meta.Directives.Set("include", &Directive{
		Name:      "include",
		Desc:      "Directs the executor to include this field or fragment only when the `if` argument is true.",
		Locations: []DirectiveLocation{LocField, LocFragmentSpread, LocInlineFragment},
		Args:      args(ifArg),
	})
	Meta.Directives.Set("deprecated", &Directive{
		Name:      "deprecated",
		Desc:      "Marks an element of a GraphQL schema as no longer supported.",
		Locations: []DirectiveLocation{LocFieldDefinition, LocArgumentDefinition, LocInputFieldDefinition, LocEnumValue},
		Args: args(&Argument{
			Name:    "reason",
			Type:    scalarType("String"),
			Default: &ast.StringValue{Val: "No longer supported"},
		}),
	})
	Meta.Directives.Set("specifiedBy", &Directive{
		Name:      "specifiedBy",
		Desc:      "Exposes a URL that specifies the behavior of this scalar.",
		Locations: []DirectiveLocation{LocScalar},
		Args:      args(&Argument{Name: "url", Type: nonNull(scalarType("String"))}),
	})
	Meta.Directives.Set("oneOf", &Directive{
		Name:      "oneOf",
		Desc:      "Indicates that an input object is a oneOf input object.",
		Locations: []DirectiveLocation{LocInputObject},
		Args:      NewOrderedMap[*Argument](),
	})
}

// IsBuiltinType reports whether name is a built-in scalar or introspection
// type, never replaceable by a user definition.
func IsBuiltinType(name string) bool {
	return Meta.Scalars.Has(name) || Meta.Introspection.Has(name)
}

// IsBuiltinDirective reports whether name is one of the five built-in
// directives, never replaceable by a user definition.
func IsBuiltinDirective(name string) bool {
	return Meta.Directives.Has(name)
}
