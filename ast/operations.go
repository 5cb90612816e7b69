package ast

import "github.com/fenwickgql/graphqlcore/errors"

// OperationType distinguishes the three kinds of executable operation.
type OperationType string

const (
	Query        OperationType = "QUERY"
	Mutation     OperationType = "MUTATION"
	Subscription OperationType = "SUBSCRIPTION"
)

// OperationDefinition is a `query`/`mutation`/`subscription` block in an
// executable document. The schema builder (component C) never looks at
// these; only the execution context builder (component E) and the
// subscription kernel (component F) do.
type OperationDefinition struct {
	Type       OperationType
	Name       Ident
	Vars       InputValueDefinitionList
	Directives DirectiveList
	Selections []Selection
	Loc        errors.Location
}

type OperationList []*OperationDefinition

func (l OperationList) Get(name string) *OperationDefinition {
	for _, op := range l {
		if op.Name.Name == name {
			return op
		}
	}
	return nil
}

// FragmentDefinition is a top-level named `fragment F on T { ... }`.
type FragmentDefinition struct {
	Fragment
	Name Ident
	Loc  errors.Location
}

type FragmentList []*FragmentDefinition

func (l FragmentList) Get(name string) *FragmentDefinition {
	for _, f := range l {
		if f.Name.Name == name {
			return f
		}
	}
	return nil
}

// Fragment is the shared shape of a named fragment definition and an
// inline fragment: a type condition plus a selection set.
type Fragment struct {
	On         TypeName
	Directives DirectiveList
	Selections []Selection
}

// Selection is one entry of a selection set: a field, an inline fragment,
// or a fragment spread.
type Selection interface {
	isSelection()
}

type Field struct {
	Alias           Ident
	Name            Ident
	Arguments       ArgumentList
	Directives      DirectiveList
	SelectionSet    []Selection
	SelectionSetLoc errors.Location
}

type InlineFragment struct {
	Fragment
	Loc errors.Location
}

type FragmentSpread struct {
	Name       Ident
	Directives DirectiveList
	Loc        errors.Location
}

func (*Field) isSelection()          {}
func (*InlineFragment) isSelection() {}
func (*FragmentSpread) isSelection() {}

func (d *OperationDefinition) Location() errors.Location { return d.Loc }
func (d *FragmentDefinition) Location() errors.Location  { return d.Loc }

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}
