package ast

import "github.com/fenwickgql/graphqlcore/errors"

// Value is the sum of literal value shapes that can appear in a GraphQL
// document: as a field argument, a directive argument, or a default value.
//
// http://spec.graphql.org/draft/#sec-Input-Values
type Value interface {
	Location() errors.Location
	isValue()
}

type NullValue struct {
	Loc errors.Location
}

type BoolValue struct {
	Val bool
	Loc errors.Location
}

type IntValue struct {
	Val int32
	Loc errors.Location
}

type FloatValue struct {
	Val float64
	Loc errors.Location
}

// StringValue is either a single-line `"..."` string or a block
// `"""..."""` string; Block records which.
type StringValue struct {
	Val   string
	Block bool
	Loc   errors.Location
}

// EnumValue is a bare identifier used where an enum member name is
// expected, e.g. `color: RED`. It is distinct from the type system's
// EnumValueDefinition, which declares the member in the first place.
type EnumValue struct {
	Val string
	Loc errors.Location
}

type ListValue struct {
	Values []Value
	Loc    errors.Location
}

type ObjectField struct {
	Name  Ident
	Value Value
}

type ObjectValue struct {
	Fields []*ObjectField
	Loc    errors.Location
}

// Variable is only legal where a document's own variables are in scope
// (query/mutation/subscription argument values); it never appears as a
// type-system default value.
type Variable struct {
	Name string
	Loc  errors.Location
}

func (v *NullValue) Location() errors.Location   { return v.Loc }
func (v *BoolValue) Location() errors.Location   { return v.Loc }
func (v *IntValue) Location() errors.Location    { return v.Loc }
func (v *FloatValue) Location() errors.Location  { return v.Loc }
func (v *StringValue) Location() errors.Location { return v.Loc }
func (v *EnumValue) Location() errors.Location   { return v.Loc }
func (v *ListValue) Location() errors.Location   { return v.Loc }
func (v *ObjectValue) Location() errors.Location { return v.Loc }
func (v *Variable) Location() errors.Location    { return v.Loc }

func (*NullValue) isValue()   {}
func (*BoolValue) isValue()   {}
func (*IntValue) isValue()    {}
func (*FloatValue) isValue()  {}
func (*StringValue) isValue() {}
func (*EnumValue) isValue()   {}
func (*ListValue) isValue()   {}
func (*ObjectValue) isValue() {}
func (*Variable) isValue()    {}

// ObjectFieldList supports name lookup on an ObjectValue's fields.
type ObjectFieldList []*ObjectField

func (l ObjectFieldList) Get(name string) (Value, bool) {
	for _, f := range l {
		if f.Name.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}
