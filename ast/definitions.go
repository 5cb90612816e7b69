package ast

import "github.com/fenwickgql/graphqlcore/errors"

// Definition is any top-level production recognized inside a Document: a
// type system definition or extension, a directive definition, a schema
// definition or extension, or (for executable documents) an operation or
// fragment definition.
type Definition interface {
	Location() errors.Location
	isDefinition()
}

// Document is an ordered list of definitions, exactly as encountered in
// source. The schema builder partitions it by definition kind; it ignores
// OperationDefinition and FragmentDefinition entries entirely.
type Document struct {
	Definitions []Definition
}

// InputValueDefinition declares one argument (on a field or directive) or
// one input object field: its type, optional default, and optional
// deprecation via the `@deprecated` directive.
type InputValueDefinition struct {
	Name       Ident
	Type       Type
	Default    Value
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
	TypeLoc    errors.Location
}

type InputValueDefinitionList []*InputValueDefinition

func (l InputValueDefinitionList) Get(name string) *InputValueDefinition {
	for _, v := range l {
		if v.Name.Name == name {
			return v
		}
	}
	return nil
}

func (l InputValueDefinitionList) Names() []string {
	names := make([]string, len(l))
	for i, v := range l {
		names[i] = v.Name.Name
	}
	return names
}

// FieldDefinition declares one field of an object or interface type.
type FieldDefinition struct {
	Name       Ident
	Arguments  InputValueDefinitionList
	Type       Type
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type FieldDefinitionList []*FieldDefinition

func (l FieldDefinitionList) Get(name string) *FieldDefinition {
	for _, f := range l {
		if f.Name.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldDefinitionList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name.Name
	}
	return names
}

// EnumValueDefinition declares one member of an enum type.
type EnumValueDefinition struct {
	Name       Ident
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type EnumValueDefinitionList []*EnumValueDefinition

// ScalarTypeDefinition declares a custom scalar. Its behavior (serialize,
// parse value/literal) is not part of the AST, and building a schema does
// not attach it; the AST only carries the declaration and any `@specifiedBy`.
type ScalarTypeDefinition struct {
	Name       Ident
	Desc       string
	Directives DirectiveList
	Loc        errors.Location
}

type ObjectTypeDefinition struct {
	Name       Ident
	Interfaces []Ident
	Fields     FieldDefinitionList
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type InterfaceTypeDefinition struct {
	Name       Ident
	Interfaces []Ident
	Fields     FieldDefinitionList
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type UnionTypeDefinition struct {
	Name       Ident
	Members    []Ident
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type EnumTypeDefinition struct {
	Name       Ident
	Values     EnumValueDefinitionList
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

type InputObjectTypeDefinition struct {
	Name       Ident
	Fields     InputValueDefinitionList
	Directives DirectiveList
	Desc       string
	Loc        errors.Location
}

// DirectiveDefinition declares a directive: its legal locations, arguments,
// and whether it may appear more than once per location.
type DirectiveDefinition struct {
	Name       Ident
	Arguments  InputValueDefinitionList
	Locations  []string
	Repeatable bool
	Desc       string
	Loc        errors.Location
}

// SchemaDefinition is the optional `schema { query: ... }` block.
type SchemaDefinition struct {
	OperationTypes []*OperationTypeDefinition
	Directives     DirectiveList
	Desc           string
	Loc            errors.Location
}

// OperationTypeDefinition is one `query: Query` style entry inside a
// schema definition or extension, in document order.
type OperationTypeDefinition struct {
	Operation string // "query", "mutation", or "subscription"
	Type      Ident
	Loc       errors.Location
}

func (d *InputValueDefinition) Location() errors.Location      { return d.Loc }
func (d *FieldDefinition) Location() errors.Location           { return d.Loc }
func (d *ScalarTypeDefinition) Location() errors.Location      { return d.Loc }
func (d *ObjectTypeDefinition) Location() errors.Location      { return d.Loc }
func (d *InterfaceTypeDefinition) Location() errors.Location   { return d.Loc }
func (d *UnionTypeDefinition) Location() errors.Location       { return d.Loc }
func (d *EnumTypeDefinition) Location() errors.Location        { return d.Loc }
func (d *InputObjectTypeDefinition) Location() errors.Location { return d.Loc }
func (d *DirectiveDefinition) Location() errors.Location       { return d.Loc }
func (d *SchemaDefinition) Location() errors.Location          { return d.Loc }

func (*ScalarTypeDefinition) isDefinition()      {}
func (*ObjectTypeDefinition) isDefinition()      {}
func (*InterfaceTypeDefinition) isDefinition()   {}
func (*UnionTypeDefinition) isDefinition()       {}
func (*EnumTypeDefinition) isDefinition()        {}
func (*InputObjectTypeDefinition) isDefinition() {}
func (*DirectiveDefinition) isDefinition()       {}
func (*SchemaDefinition) isDefinition()          {}

// TypeName returns the declared name for any of the six type definition
// kinds, so callers keyed off an interface{} don't need a type switch.
func (d *ScalarTypeDefinition) TypeName() string      { return d.Name.Name }
func (d *ObjectTypeDefinition) TypeName() string      { return d.Name.Name }
func (d *InterfaceTypeDefinition) TypeName() string   { return d.Name.Name }
func (d *UnionTypeDefinition) TypeName() string       { return d.Name.Name }
func (d *EnumTypeDefinition) TypeName() string        { return d.Name.Name }
func (d *InputObjectTypeDefinition) TypeName() string { return d.Name.Name }
