package graphql

import (
	"context"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// Executor is the query/mutation execution black box (§6 "External
// interfaces"). Query/mutation execution is out of scope for this module
// (spec.md §1); the subscription kernel and internal/execctx are written
// against this interface only, and gqltesting supplies a trivial
// implementation for exercising the kernel's plumbing in tests.
type Executor interface {
	Execute(ctx context.Context, schema *typesystem.Schema, doc *ast.Document, op *ast.OperationDefinition, root interface{}, vars map[string]interface{}) *Result
}

// Result is the outcome of executing one operation (or mapping one
// subscription event through one): a response value plus any errors
// encountered producing it. A non-empty Errors list does not necessarily
// mean Data is empty — partial results are legal GraphQL.
type Result struct {
	Data   ast.Value
	Errors []*errors.QueryError
}
