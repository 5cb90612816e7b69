package execctx

import (
	"fmt"

	"github.com/fenwickgql/graphqlcore/errors"
)

func errNoOperation() *errors.QueryError {
	return &errors.QueryError{Message: "no operations in document", Rule: "NoOperation"}
}

func errAmbiguousOperation() *errors.QueryError {
	return &errors.QueryError{Message: "more than one operation and no operation name supplied", Rule: "AmbiguousOperation"}
}

func errUnknownOperation(name string) *errors.QueryError {
	return &errors.QueryError{Message: fmt.Sprintf("no operation named %q", name), Rule: "UnknownOperation"}
}

func errVariableCoercionFailed(name, reason string, loc errors.Location) *errors.QueryError {
	return &errors.QueryError{
		Message:   fmt.Sprintf("variable %q: %s", name, reason),
		Locations: []errors.Location{loc},
		Rule:      "VariableCoercionFailed",
	}
}
