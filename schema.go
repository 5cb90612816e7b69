// Package graphql is the public entry point: parsing SDL into a validated
// Schema, extending a Schema, and driving a subscription operation through
// an Executor. It wires internal/parser (an AST producer) and
// internal/typesystem (the linked type graph, builder, and validator)
// together behind the contract spec.md treats as given.
package graphql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fenwickgql/graphqlcore/config"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/parser"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
	"github.com/fenwickgql/graphqlcore/log"
	"github.com/fenwickgql/graphqlcore/trace"
)

// Schema is a fully-linked, validated GraphQL type system, immutable once
// returned from ParseSchema or Extend (§3 "Lifecycles").
type Schema struct {
	linked *typesystem.Schema
	config *config.Config
	tracer trace.Tracer
	logger log.Logger
}

// SchemaOpt configures a Schema at ParseSchema/Extend time.
type SchemaOpt func(*Schema)

// UseFieldResolverFallback controls whether a subscription root field with
// neither a subscribe nor a resolve callback may fall back to reading
// rootValue[fieldName] by reflection (default: enabled). A field with only
// a resolve callback uses it either way.
func UseFieldResolverFallback(v bool) SchemaOpt {
	return func(s *Schema) { s.config.UseFieldResolverFallback = v }
}

// AssumeValid skips schema validation entirely after building or
// extending. The caller is asserting the schema is already known-good.
func AssumeValid(v bool) SchemaOpt {
	return func(s *Schema) { s.config.AssumeValid = v }
}

// MaxSubscriptionEventTimeout sets the deadline on the context passed to
// the executor for a single subscription event. The kernel waits for the
// executor to return and does not itself report a timeout error.
func MaxSubscriptionEventTimeout(d time.Duration) SchemaOpt {
	return func(s *Schema) { s.config.MaxSubscriptionEventTimeout = d }
}

// WithTracer attaches a trace.Tracer; the default is trace.NoopTracer.
func WithTracer(t trace.Tracer) SchemaOpt {
	return func(s *Schema) { s.tracer = t }
}

// WithLogger attaches a log.Logger; the default is &log.DefaultLogger{}.
func WithLogger(l log.Logger) SchemaOpt {
	return func(s *Schema) { s.logger = l }
}

func newSchema(linked *typesystem.Schema, base *Schema, opts []SchemaOpt) (*Schema, error) {
	s := &Schema{linked: linked, config: config.Default(), tracer: trace.NoopTracer{}, logger: &log.DefaultLogger{}}
	if base != nil {
		s.config = &config.Config{
			UseFieldResolverFallback:    base.config.UseFieldResolverFallback,
			MaxSubscriptionEventTimeout: base.config.MaxSubscriptionEventTimeout,
			AssumeValid:                 base.config.AssumeValid,
		}
		s.tracer = base.tracer
		s.logger = base.logger
	}
	for _, opt := range opts {
		opt(s)
	}
	// Extend's identity short-circuit hands back the exact same
	// *typesystem.Schema pointer as base.linked when the extension
	// contributes no new type-system definitions. Writing AssumeValid
	// through that shared pointer would mutate base's own schema in
	// place, so clone it first whenever it's aliased.
	if base != nil && linked == base.linked {
		clone := *linked
		linked = &clone
		s.linked = linked
	}
	linked.AssumeValid = s.config.AssumeValid

	finish := s.tracer.TraceValidation(context.Background())
	errs := typesystem.Validate(linked)
	finish(errs)
	if len(errs) > 0 {
		return nil, Errors(errs)
	}
	return s, nil
}

// ParseSchema parses sdl (a GraphQL SDL document) and builds a fresh,
// validated Schema from it (§4.C "build", existing is empty).
func ParseSchema(sdl string, opts ...SchemaOpt) (*Schema, error) {
	doc, qerr := parser.Parse(sdl, "schema")
	if qerr != nil {
		return nil, qerr
	}
	linked, qerr := typesystem.Build(doc)
	if qerr != nil {
		return nil, qerr
	}
	return newSchema(linked, nil, opts)
}

// MustParseSchema is ParseSchema, panicking on error. Intended for
// package-level schema initialization.
func MustParseSchema(sdl string, opts ...SchemaOpt) *Schema {
	s, err := ParseSchema(sdl, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend parses sdl and produces a new Schema incorporating its
// definitions and extend clauses on top of s, without mutating s (§3
// "extension purity").
func (s *Schema) Extend(sdl string, opts ...SchemaOpt) (*Schema, error) {
	doc, qerr := parser.Parse(sdl, "extend")
	if qerr != nil {
		return nil, qerr
	}
	linked, qerr := typesystem.Extend(s.linked, doc)
	if qerr != nil {
		return nil, qerr
	}
	return newSchema(linked, s, opts)
}

// Errors adapts a collected validator error list to the error interface.
type Errors []*errors.QueryError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("graphql: %d schema error(s): %s", len(e), strings.Join(msgs, "; "))
}
