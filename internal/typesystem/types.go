// Package typesystem is the in-memory linked representation of a GraphQL
// schema (spec component B), the builder that produces it from an AST
// (component C), and the validator that checks it (component D).
package typesystem

import (
	"github.com/fenwickgql/graphqlcore/ast"
)

// NamedType is one of Scalar, Object, Interface, Union, Enum, InputObject.
// It also satisfies ast.Type (Kind/String), so a linked NamedType can sit
// directly in the same Type-typed field that held an unresolved
// *ast.TypeName before linking — see ast.Type's doc comment.
type NamedType interface {
	ast.Type
	TypeName() string
	Description() string
	// ASTNode is the definition that introduced this type, nil for
	// built-ins synthesized without source text.
	ASTNode() ast.Definition
	// ExtensionASTNodes are the extend-clauses that contributed to this
	// type, in document order, across every extend() call in its history.
	ExtensionASTNodes() []ast.Extension
}

// Scalar is a leaf type whose representation is defined by callbacks
// supplied out of band (never parsed from SDL).
type Scalar struct {
	Name           string
	Desc           string
	SpecifiedByURL string
	Serialize      func(interface{}) (interface{}, error)
	ParseValue     func(interface{}) (interface{}, error)
	ParseLiteral   func(ast.Value) (interface{}, error)
	Node           ast.Definition
	ExtNodes       []ast.Extension
}

func (t *Scalar) Kind() string                      { return "SCALAR" }
func (t *Scalar) String() string                     { return t.Name }
func (t *Scalar) TypeName() string                  { return t.Name }
func (t *Scalar) Description() string               { return t.Desc }
func (t *Scalar) ASTNode() ast.Definition           { return t.Node }
func (t *Scalar) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// Object is a concrete, selectable type: an ordered field map, the
// interfaces it implements (in definition order, extensions appended,
// deduplicated by name keeping the first), and an optional isTypeOf.
type Object struct {
	Name       string
	Desc       string
	Fields     *OrderedMap[*Field]
	Interfaces []*Interface
	IsTypeOf   func(interface{}) bool
	Node       ast.Definition
	ExtNodes   []ast.Extension

	pendingInterfaces []string
}

func (t *Object) Kind() string                      { return "OBJECT" }
func (t *Object) String() string                     { return t.Name }
func (t *Object) TypeName() string                  { return t.Name }
func (t *Object) Description() string               { return t.Desc }
func (t *Object) ASTNode() ast.Definition           { return t.Node }
func (t *Object) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// Interface declares a field contract that Objects (and other Interfaces)
// may implement. ResolveType determines the concrete runtime Object for an
// abstract-typed field whose static type is this interface.
type Interface struct {
	Name        string
	Desc        string
	Fields      *OrderedMap[*Field]
	Interfaces  []*Interface
	ResolveType func(interface{}) *Object
	Node        ast.Definition
	ExtNodes    []ast.Extension

	pendingInterfaces []string
}

func (t *Interface) Kind() string                      { return "INTERFACE" }
func (t *Interface) String() string                     { return t.Name }
func (t *Interface) TypeName() string                  { return t.Name }
func (t *Interface) Description() string               { return t.Desc }
func (t *Interface) ASTNode() ast.Definition           { return t.Node }
func (t *Interface) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// Union is a set of possible Object types with no fields of its own.
type Union struct {
	Name          string
	Desc          string
	PossibleTypes []*Object
	ResolveType   func(interface{}) *Object
	Node          ast.Definition
	ExtNodes      []ast.Extension

	pendingMembers []string
}

func (t *Union) Kind() string                      { return "UNION" }
func (t *Union) String() string                     { return t.Name }
func (t *Union) TypeName() string                  { return t.Name }
func (t *Union) Description() string               { return t.Desc }
func (t *Union) ASTNode() ast.Definition           { return t.Node }
func (t *Union) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// Enum is a closed set of named values.
type Enum struct {
	Name     string
	Desc     string
	Values   *OrderedMap[*EnumValueDef]
	Node     ast.Definition
	ExtNodes []ast.Extension
}

func (t *Enum) Kind() string                      { return "ENUM" }
func (t *Enum) String() string                     { return t.Name }
func (t *Enum) TypeName() string                  { return t.Name }
func (t *Enum) Description() string               { return t.Desc }
func (t *Enum) ASTNode() ast.Definition           { return t.Node }
func (t *Enum) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// EnumValueDef is one member of an Enum: its underlying value (the name
// itself, unless a future extension supplies a distinct internal value)
// and its deprecation state.
type EnumValueDef struct {
	Name             string
	Desc             string
	DeprecationReason string
	Node             *ast.EnumValueDefinition
}

// InputObject is an input-only composite type: its fields may reference
// only input types (Scalar, Enum, InputObject), enforced by the validator.
type InputObject struct {
	Name     string
	Desc     string
	Fields   *OrderedMap[*InputField]
	IsOneOf  bool
	Node     ast.Definition
	ExtNodes []ast.Extension
}

func (t *InputObject) Kind() string                      { return "INPUT_OBJECT" }
func (t *InputObject) String() string                     { return t.Name }
func (t *InputObject) TypeName() string                  { return t.Name }
func (t *InputObject) Description() string               { return t.Desc }
func (t *InputObject) ASTNode() ast.Definition           { return t.Node }
func (t *InputObject) ExtensionASTNodes() []ast.Extension { return t.ExtNodes }

// Field is one entry of an Object or Interface's field map: its output
// type, its ordered argument map, and the capabilities a resolver needs.
type Field struct {
	Name              string
	Desc              string
	Type              ast.Type
	Args              *OrderedMap[*Argument]
	DeprecationReason string
	Resolve           FieldResolveFn
	Subscribe         FieldSubscribeFn
	Node              *ast.FieldDefinition
}

// FieldResolveFn resolves one field's value given the parent value, coerced
// argument map, and the opaque per-request context.
type FieldResolveFn func(ctx interface{}, source interface{}, args map[string]interface{}) (interface{}, error)

// FieldSubscribeFn resolves a subscription root field into a source event
// stream (anything satisfying the iterator.AsyncIterator capability, §4.G).
// Only meaningful on fields of the subscription root type.
type FieldSubscribeFn func(ctx interface{}, source interface{}, args map[string]interface{}) (interface{}, error)

// Argument and InputField share a shape: an input type, optional default,
// optional deprecation. They are kept as distinct Go types because they
// appear in distinct positions (field/directive arguments vs. input object
// fields) with distinct validation rules (§3).
type Argument struct {
	Name              string
	Desc              string
	Type              ast.Type
	Default           ast.Value
	DeprecationReason string
	Node              *ast.InputValueDefinition
}

type InputField struct {
	Name              string
	Desc              string
	Type              ast.Type
	Default           ast.Value
	DeprecationReason string
	Node              *ast.InputValueDefinition
}

// DirectiveLocation enumerates where a directive may legally be applied,
// per the GraphQL spec's two location families (type system, executable).
type DirectiveLocation string

const (
	LocQuery              DirectiveLocation = "QUERY"
	LocMutation           DirectiveLocation = "MUTATION"
	LocSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocField              DirectiveLocation = "FIELD"
	LocFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"

	LocSchema               DirectiveLocation = "SCHEMA"
	LocScalar                DirectiveLocation = "SCALAR"
	LocObject                DirectiveLocation = "OBJECT"
	LocFieldDefinition       DirectiveLocation = "FIELD_DEFINITION"
	LocArgumentDefinition    DirectiveLocation = "ARGUMENT_DEFINITION"
	LocInterface             DirectiveLocation = "INTERFACE"
	LocUnion                 DirectiveLocation = "UNION"
	LocEnum                  DirectiveLocation = "ENUM"
	LocEnumValue             DirectiveLocation = "ENUM_VALUE"
	LocInputObject           DirectiveLocation = "INPUT_OBJECT"
	LocInputFieldDefinition  DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// Directive is a linked directive definition: its legal locations, ordered
// argument map, and whether it may be applied more than once per location.
type Directive struct {
	Name       string
	Desc       string
	Locations  []DirectiveLocation
	Args       *OrderedMap[*Argument]
	Repeatable bool
	Node       *ast.DirectiveDefinition
}

// Schema is the immutable, linked result of the builder (§4.C). It is
// constructed once (via Build or Extend) and never mutated afterward;
// Extend always returns a new Schema, leaving its input untouched.
type Schema struct {
	Desc         string
	TypeMap      *OrderedMap[NamedType]
	Directives   *OrderedMap[*Directive]
	Query        *Object
	Mutation     *Object
	Subscription *Object
	AssumeValid  bool

	Node     *ast.SchemaDefinition
	ExtNodes []ast.Extension

	// possibleTypes caches, per interface name, the Objects that implement
	// it (a union's members are its own PossibleTypes) — built once after linking, since it is
	// needed on every abstract-type resolution during execution.
	possibleTypes map[string][]*Object

	// invalidRoots records an operation-type override that resolved to a
	// non-Object type, for the validator to report (§3 "Root operation
	// types, if present, are Objects").
	invalidRoots map[string]NamedType
}

// Resolve implements the symbolic-name lookup the builder uses when
// rewriting Type references into linked NamedType values.
func (s *Schema) Resolve(name string) NamedType {
	t, _ := s.TypeMap.Get(name)
	return t
}

// GetPossibleTypes returns every Object that can occur at runtime where an
// interface or union's static type is named: the union's members, or the
// objects recorded as implementing the interface.
func (s *Schema) GetPossibleTypes(abstract NamedType) []*Object {
	switch t := abstract.(type) {
	case *Union:
		return t.PossibleTypes
	case *Interface:
		return s.possibleTypes[t.Name]
	default:
		return nil
	}
}

// IsSubType reports whether obj is among abstract's possible runtime types.
func (s *Schema) IsSubType(abstract NamedType, obj *Object) bool {
	for _, p := range s.GetPossibleTypes(abstract) {
		if p == obj {
			return true
		}
	}
	return false
}

// GetImplementations returns every Object or Interface that directly
// implements the named interface (not transitively through another
// interface), in the order encountered while linking.
func (s *Schema) GetImplementations(iface *Interface) []NamedType {
	var out []NamedType
	for _, name := range s.TypeMap.Keys() {
		t, _ := s.TypeMap.Get(name)
		switch x := t.(type) {
		case *Object:
			if implementsInterface(x.Interfaces, iface.Name) {
				out = append(out, x)
			}
		case *Interface:
			if x.Name != iface.Name && implementsInterface(x.Interfaces, iface.Name) {
				out = append(out, x)
			}
		}
	}
	return out
}

func implementsInterface(ifaces []*Interface, name string) bool {
	for _, i := range ifaces {
		if i.Name == name {
			return true
		}
	}
	return false
}
