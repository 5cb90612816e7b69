package ast

import "github.com/fenwickgql/graphqlcore/errors"

// Ident is a name token together with the source location it was read from.
type Ident struct {
	Name string
	Loc  errors.Location
}
