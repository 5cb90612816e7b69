// Package execctx builds the per-request execution context (§4.E):
// resolving which operation runs, coercing its variables, collecting its
// fragment definitions, and choosing a field-execution strategy.
package execctx

import (
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// Strategy is how sibling fields of a selection set are executed.
type Strategy int

const (
	// Parallel executes sibling fields concurrently, in no particular
	// completion order (queries).
	Parallel Strategy = iota
	// Serial executes sibling fields one at a time, in selection order
	// (mutations, and subscription event mapping).
	Serial
)

// Context is the immutable result of Build: everything the executor or
// subscription kernel needs to run one operation.
type Context struct {
	Operation *ast.OperationDefinition
	Fragments map[string]*ast.FragmentDefinition
	Variables map[string]interface{}
	Strategy  Strategy
}

// Build selects the operation named opName (or the document's sole
// operation if opName is empty), coerces its declared variables against
// rawVars (applying defaults, rejecting a missing non-null variable with no
// default, and validating each supplied or defaulted value against its
// declared type per schema), and returns the resulting Context.
func Build(schema *typesystem.Schema, doc *ast.Document, opName string, rawVars map[string]interface{}) (*Context, *errors.QueryError) {
	var ops []*ast.OperationDefinition
	fragments := make(map[string]*ast.FragmentDefinition)
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			ops = append(ops, d)
		case *ast.FragmentDefinition:
			fragments[d.Name.Name] = d
		}
	}
	if len(ops) == 0 {
		return nil, errNoOperation()
	}

	var op *ast.OperationDefinition
	if opName == "" {
		if len(ops) > 1 {
			return nil, errAmbiguousOperation()
		}
		op = ops[0]
	} else {
		op = ast.OperationList(ops).Get(opName)
		if op == nil {
			return nil, errUnknownOperation(opName)
		}
	}

	vars, err := coerceVariables(schema, op.Vars, rawVars)
	if err != nil {
		return nil, err
	}

	strategy := Parallel
	if op.Type != ast.Query {
		strategy = Serial
	}

	return &Context{Operation: op, Fragments: fragments, Variables: vars, Strategy: strategy}, nil
}

func coerceVariables(schema *typesystem.Schema, defs ast.InputValueDefinitionList, raw map[string]interface{}) (map[string]interface{}, *errors.QueryError) {
	out := make(map[string]interface{}, len(defs))
	for _, d := range defs {
		val, provided := raw[d.Name.Name]
		if provided && val != nil {
			v, err := CoerceValue(schema, d.Type, val)
			if err != nil {
				return nil, errVariableCoercionFailed(d.Name.Name, err.Error(), d.Loc)
			}
			out[d.Name.Name] = v
			continue
		}
		if d.Default != nil {
			v, err := ValueToGo(d.Default, raw)
			if err != nil {
				return nil, errVariableCoercionFailed(d.Name.Name, err.Error(), d.Loc)
			}
			v, err = CoerceValue(schema, d.Type, v)
			if err != nil {
				return nil, errVariableCoercionFailed(d.Name.Name, err.Error(), d.Loc)
			}
			out[d.Name.Name] = v
			continue
		}
		if ast.IsNonNull(d.Type) {
			return nil, errVariableCoercionFailed(d.Name.Name, "must be provided", d.Loc)
		}
		if provided {
			out[d.Name.Name] = nil
		}
	}
	return out, nil
}
