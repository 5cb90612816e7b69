// Package trace defines the tracing capability that schema build/validate
// and the subscription kernel report through, plus a no-op implementation.
package trace

import (
	"context"

	"github.com/fenwickgql/graphqlcore/errors"
)

// QueryFinishFunc is returned by TraceQuery to be called
// once the traced unit of work completes, with any errors it produced.
type QueryFinishFunc = func([]*errors.QueryError)

// FieldFinishFunc is returned by TraceField, called once that field (or
// mapped event) finishes, with its error if any.
type FieldFinishFunc = func(*errors.QueryError)

// ValidationFinishFunc is returned by TraceValidation, called with the
// validator's full collected error list.
type ValidationFinishFunc = func([]*errors.QueryError)

// Tracer instruments the lifecycle of a request: one query-shaped span per
// subscribed stream or executed operation, one field span per resolved
// field or mapped subscription event, and one validation span per schema
// build/validate.
type Tracer interface {
	TraceQuery(ctx context.Context, queryString, operationName string, variables map[string]interface{}) (context.Context, QueryFinishFunc)
	TraceField(ctx context.Context, label, typeName, fieldName string, trivial bool, args map[string]interface{}) (context.Context, FieldFinishFunc)
	TraceValidation(ctx context.Context) ValidationFinishFunc
}

// NoopTracer discards every span; it is the default when no Tracer is
// configured and what tests use unless they're asserting on tracing itself.
type NoopTracer struct{}

func (NoopTracer) TraceQuery(ctx context.Context, _, _ string, _ map[string]interface{}) (context.Context, QueryFinishFunc) {
	return ctx, func([]*errors.QueryError) {}
}

func (NoopTracer) TraceField(ctx context.Context, _, _, _ string, _ bool, _ map[string]interface{}) (context.Context, FieldFinishFunc) {
	return ctx, func(*errors.QueryError) {}
}

func (NoopTracer) TraceValidation(ctx context.Context) ValidationFinishFunc {
	return func([]*errors.QueryError) {}
}
