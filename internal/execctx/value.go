package execctx

import (
	"fmt"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// ValueToGo lowers a document-literal Value into a plain Go value (the same
// shape a JSON-decoded argument map would take: nil, bool, int32, float64,
// string, []interface{}, map[string]interface{}), substituting variable
// references from vars. Used both for coercing variable default values and
// for coercing field/directive argument values at the subscription root
// (§4.F step 5).
func ValueToGo(v ast.Value, vars map[string]interface{}) (interface{}, error) {
	switch x := v.(type) {
	case *ast.NullValue:
		return nil, nil
	case *ast.BoolValue:
		return x.Val, nil
	case *ast.IntValue:
		return x.Val, nil
	case *ast.FloatValue:
		return x.Val, nil
	case *ast.StringValue:
		return x.Val, nil
	case *ast.EnumValue:
		return x.Val, nil
	case *ast.ListValue:
		out := make([]interface{}, len(x.Values))
		for i, e := range x.Values {
			ev, err := ValueToGo(e, vars)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case *ast.ObjectValue:
		out := make(map[string]interface{}, len(x.Fields))
		for _, f := range x.Fields {
			fv, err := ValueToGo(f.Value, vars)
			if err != nil {
				return nil, err
			}
			out[f.Name.Name] = fv
		}
		return out, nil
	case *ast.Variable:
		val, ok := vars[x.Name]
		if !ok {
			return nil, fmt.Errorf("undefined variable %q", x.Name)
		}
		return val, nil
	default:
		return nil, fmt.Errorf("unrecognized value node %T", v)
	}
}

// CoerceArguments resolves an AST argument list against its field/directive
// declaration's default values and the request's variable map, in
// declaration order, validating each resulting value against its declared
// type. Missing optional arguments are simply absent from the result
// (callers distinguish "omitted" from "explicit null" by key presence, not
// by a zero value).
func CoerceArguments(schema *typesystem.Schema, declared ast.InputValueDefinitionList, supplied ast.ArgumentList, vars map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(declared))
	for _, d := range declared {
		val, ok := supplied.Get(d.Name.Name)
		if !ok {
			if d.Default == nil {
				continue
			}
			val = d.Default
		}
		v, err := ValueToGo(val, vars)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", d.Name.Name, err)
		}
		v, err = CoerceValue(schema, d.Type, v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", d.Name.Name, err)
		}
		out[d.Name.Name] = v
	}
	return out, nil
}
