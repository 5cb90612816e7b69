package ast

import "github.com/fenwickgql/graphqlcore/errors"

// Extension is any `extend ...` definition. ExtendedType names the target
// being extended; the concrete fields appended/overridden depend on kind.
type Extension interface {
	Definition
	ExtendedType() string
}

type ScalarTypeExtension struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

type ObjectTypeExtension struct {
	Name       Ident
	Interfaces []Ident
	Fields     FieldDefinitionList
	Directives DirectiveList
	Loc        errors.Location
}

type InterfaceTypeExtension struct {
	Name       Ident
	Interfaces []Ident
	Fields     FieldDefinitionList
	Directives DirectiveList
	Loc        errors.Location
}

type UnionTypeExtension struct {
	Name       Ident
	Members    []Ident
	Directives DirectiveList
	Loc        errors.Location
}

type EnumTypeExtension struct {
	Name       Ident
	Values     EnumValueDefinitionList
	Directives DirectiveList
	Loc        errors.Location
}

type InputObjectTypeExtension struct {
	Name       Ident
	Fields     InputValueDefinitionList
	Directives DirectiveList
	Loc        errors.Location
}

// SchemaExtension overrides or adds root operation types and/or directives
// on the schema as a whole.
type SchemaExtension struct {
	OperationTypes []*OperationTypeDefinition
	Directives     DirectiveList
	Loc            errors.Location
}

func (d *ScalarTypeExtension) Location() errors.Location      { return d.Loc }
func (d *ObjectTypeExtension) Location() errors.Location      { return d.Loc }
func (d *InterfaceTypeExtension) Location() errors.Location   { return d.Loc }
func (d *UnionTypeExtension) Location() errors.Location       { return d.Loc }
func (d *EnumTypeExtension) Location() errors.Location        { return d.Loc }
func (d *InputObjectTypeExtension) Location() errors.Location { return d.Loc }
func (d *SchemaExtension) Location() errors.Location          { return d.Loc }

func (*ScalarTypeExtension) isDefinition()      {}
func (*ObjectTypeExtension) isDefinition()      {}
func (*InterfaceTypeExtension) isDefinition()   {}
func (*UnionTypeExtension) isDefinition()       {}
func (*EnumTypeExtension) isDefinition()        {}
func (*InputObjectTypeExtension) isDefinition() {}
func (*SchemaExtension) isDefinition()          {}

func (d *ScalarTypeExtension) ExtendedType() string      { return d.Name.Name }
func (d *ObjectTypeExtension) ExtendedType() string      { return d.Name.Name }
func (d *InterfaceTypeExtension) ExtendedType() string   { return d.Name.Name }
func (d *UnionTypeExtension) ExtendedType() string       { return d.Name.Name }
func (d *EnumTypeExtension) ExtendedType() string        { return d.Name.Name }
func (d *InputObjectTypeExtension) ExtendedType() string { return d.Name.Name }
func (d *SchemaExtension) ExtendedType() string          { return "schema" }
