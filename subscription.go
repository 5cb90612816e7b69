package graphql

import (
	"context"
	"fmt"
	"reflect"

	pkgerrors "github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/execctx"
	"github.com/fenwickgql/graphqlcore/internal/iterator"
	"github.com/fenwickgql/graphqlcore/internal/parser"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// Subscribe resolves queryString's single subscription field into a lazy
// event stream and wires each event through executor (§4.F). The returned
// channel is closed when the source iterator is exhausted or ctx is done;
// canceling ctx cancels the underlying iterator (§5).
//
// A setup failure (steps 1-6) produces a channel with exactly one Result
// before it closes. A per-event failure (step 7, or any error the executor
// itself returns) is embedded in that event's Result.Errors; the stream
// continues.
func (s *Schema) Subscribe(ctx context.Context, executor Executor, queryString, opName string, vars map[string]interface{}, root interface{}) <-chan *Result {
	id := ksuid.New().String()
	spanCtx, finishQuery := s.tracer.TraceQuery(ctx, queryString, opName, vars)

	doc, qerr := parser.Parse(queryString, "query")
	if qerr != nil {
		return s.oneShot(id, finishQuery, qerr)
	}

	execCtx, qerr := execctx.Build(s.linked, doc, opName, vars)
	if qerr != nil {
		return s.oneShot(id, finishQuery, qerr)
	}

	rootType := s.linked.Subscription
	if rootType == nil {
		return s.oneShot(id, finishQuery, errNoSubscriptionRoot())
	}

	fields := typesystem.NewOrderedMap[[]*ast.Field]()
	if qerr := execctx.CollectFields(s.linked, execCtx.Fragments, execCtx.Operation.Selections, rootType, execCtx.Variables, fields, make(map[string]bool)); qerr != nil {
		return s.oneShot(id, finishQuery, qerr)
	}
	if fields.Len() != 1 {
		return s.oneShot(id, finishQuery, errMultiRootSubscription())
	}
	responseName := fields.Keys()[0]
	astFields := fields.MustGet(responseName)
	fieldNode := astFields[0]

	fieldDef, ok := rootType.Fields.Get(fieldNode.Name.Name)
	if !ok {
		return s.oneShot(id, finishQuery, errUnknownSubscriptionField(fieldNode.Name.Name))
	}

	args, err := coerceFieldArguments(s.linked, fieldDef.Args, fieldNode.Arguments, execCtx.Variables)
	if err != nil {
		return s.oneShot(id, finishQuery, withSubscriptionID(errors.Errorf("%s", err).WithLocations(fieldNode.Name.Loc), id))
	}

	source, qerr := s.invokeSubscribe(spanCtx, fieldDef, root, args, fieldNode.Name.Name)
	if qerr != nil {
		return s.oneShot(id, finishQuery, qerr)
	}

	mapped := iterator.NewMappingIterator(source, func(eventCtx context.Context, event interface{}) (interface{}, error) {
		if se, ok := event.(errors.SubscriptionError); ok {
			if terminal := se.SubscriptionError(); terminal != nil {
				return nil, &subscriptionTerminalError{terminal}
			}
		}

		fieldCtx, finishField := s.tracer.TraceField(eventCtx, "Subscription event", rootType.Name, fieldNode.Name.Name, false, args)
		timeoutCtx, cancel := context.WithTimeout(fieldCtx, s.config.MaxSubscriptionEventTimeout)
		defer cancel()
		result := s.executeEvent(timeoutCtx, executor, doc, execCtx, event, fieldNode.Name.Name)
		var fieldErr *errors.QueryError
		if len(result.Errors) > 0 {
			fieldErr = result.Errors[0]
		}
		finishField(fieldErr)
		for _, e := range result.Errors {
			withSubscriptionID(e, id)
		}
		return result, nil
	})

	out := make(chan *Result)
	go func() {
		defer close(out)
		defer finishQuery(nil)
		defer mapped.Cancel()
		for {
			v, ok, mapErr := mapped.Next(ctx)
			if terminal, isTerminal := mapErr.(*subscriptionTerminalError); isTerminal {
				select {
				case out <- &Result{Errors: []*errors.QueryError{withSubscriptionID(errors.Errorf("%s", terminal.err), id)}}:
				case <-ctx.Done():
				}
				return
			}
			// ok is authoritative for end-of-stream: a cancelled ctx
			// surfaces as (ok=false, err=ctx.Err()) from the source, and
			// that is a clean shutdown, not a per-event failure to report.
			if !ok {
				return
			}
			if mapErr != nil {
				select {
				case out <- &Result{Errors: []*errors.QueryError{withSubscriptionID(errors.Errorf("%s", mapErr), id)}}:
				case <-ctx.Done():
					return
				}
				continue
			}
			result, _ := v.(*Result)
			if result == nil {
				result = &Result{}
			}
			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// oneShot returns a channel carrying exactly one Result before closing,
// per §7 "setup errors produce a single Result".
func (s *Schema) oneShot(id string, finish func([]*errors.QueryError), err *errors.QueryError) <-chan *Result {
	err = withSubscriptionID(err, id)
	finish([]*errors.QueryError{err})
	out := make(chan *Result, 1)
	out <- &Result{Errors: []*errors.QueryError{err}}
	close(out)
	return out
}

// executeEvent runs the executor for a single subscription event, recovering
// a panicking resolver (§4.I) rather than letting it cross into the mapping
// iterator and take down the consuming goroutine.
func (s *Schema) executeEvent(ctx context.Context, executor Executor, doc *ast.Document, execCtx *execctx.Context, event interface{}, fieldName string) (result *Result) {
	defer func() {
		if value := recover(); value != nil {
			result = &Result{Errors: []*errors.QueryError{s.panicError(ctx, fieldName, value)}}
		}
	}()
	return executor.Execute(ctx, s.linked, doc, execCtx.Operation, event, execCtx.Variables)
}

// panicError reports a recovered panic through s.logger and wraps it as a
// QueryError whose ResolverError carries the stack-traced cause.
func (s *Schema) panicError(ctx context.Context, fieldName string, value interface{}) *errors.QueryError {
	s.logger.LogPanic(ctx, value)
	qerr := errors.Errorf("graphql: panic occurred while resolving %q", fieldName)
	qerr.ResolverError = pkgerrors.Errorf("panic: %v", value)
	return qerr
}

func coerceFieldArguments(schema *typesystem.Schema, declared *typesystem.OrderedMap[*typesystem.Argument], supplied ast.ArgumentList, vars map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, declared.Len())
	for _, name := range declared.Keys() {
		a := declared.MustGet(name)
		val, ok := supplied.Get(name)
		if !ok {
			if a.Default == nil {
				continue
			}
			val = a.Default
		}
		v, err := execctx.ValueToGo(val, vars)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		v, err = execctx.CoerceValue(schema, a.Type, v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// invokeSubscribe runs the field's subscribe callback (falling back to
// resolve, falling back to reading rootValue[fieldName] by reflection if
// config.UseFieldResolverFallback is set) and asserts the result satisfies
// the async-iterator capability (§4.F step 6).
func (s *Schema) invokeSubscribe(ctx context.Context, field *typesystem.Field, root interface{}, args map[string]interface{}, fieldName string) (it iterator.AsyncIterator, qerr *errors.QueryError) {
	defer func() {
		if value := recover(); value != nil {
			it, qerr = nil, s.panicError(ctx, fieldName, value)
		}
	}()

	var value interface{}
	var err error
	switch {
	case field.Subscribe != nil:
		value, err = field.Subscribe(ctx, root, args)
	case field.Resolve != nil:
		value, err = field.Resolve(ctx, root, args)
	case s.config.UseFieldResolverFallback:
		value, err = defaultResolve(root, fieldName)
	default:
		return nil, errUnknownSubscriptionField(fieldName)
	}
	if err != nil {
		return nil, errors.Errorf("%s", err)
	}

	switch v := value.(type) {
	case iterator.AsyncIterator:
		return v, nil
	case <-chan interface{}:
		return iterator.NewChannelIterator(v), nil
	case chan interface{}:
		return iterator.NewChannelIterator(v), nil
	default:
		return nil, errSubscriptionNotIterable(fieldName)
	}
}

// defaultResolve reads rootValue[fieldName] (map key, exported struct
// field, or zero-argument method, tried in that order) by reflection.
func defaultResolve(root interface{}, fieldName string) (interface{}, error) {
	if m, ok := root.(map[string]interface{}); ok {
		return m[fieldName], nil
	}
	v := reflect.ValueOf(root)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	name := exportedName(fieldName)
	switch v.Kind() {
	case reflect.Struct:
		if f := v.FieldByName(name); f.IsValid() {
			return f.Interface(), nil
		}
		if m := reflect.ValueOf(root).MethodByName(name); m.IsValid() && m.Type().NumIn() == 0 {
			out := m.Call(nil)
			if len(out) > 0 {
				return out[0].Interface(), nil
			}
		}
	}
	return nil, fmt.Errorf("cannot resolve field %q on %T", fieldName, root)
}

func exportedName(fieldName string) string {
	if fieldName == "" {
		return fieldName
	}
	b := []byte(fieldName)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
