package execctx

import (
	"fmt"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// CoerceValue type-checks and lowers value (already in "JSON-decoded" Go
// shape: nil, bool, int32/int/float64, string, []interface{},
// map[string]interface{}) against the declared input type t, per the
// GraphQL spec's input coercion rules: NonNull/List wrappers are unwrapped
// recursively, scalar leaves are validated against their representation
// (or handed to a custom scalar's ParseValue callback, if one is
// attached), enum leaves must name a declared member, and InputObject
// leaves are coerced field-by-field, applying declared defaults and
// rejecting both missing required fields and unknown fields.
func CoerceValue(schema *typesystem.Schema, t ast.Type, value interface{}) (interface{}, error) {
	if nn, ok := t.(*ast.NonNull); ok {
		if value == nil {
			return nil, fmt.Errorf("must not be null")
		}
		return CoerceValue(schema, nn.OfType, value)
	}
	if value == nil {
		return nil, nil
	}

	if list, ok := t.(*ast.List); ok {
		elems, ok := value.([]interface{})
		if !ok {
			// A bare value is coerced as a single-element list.
			elems = []interface{}{value}
		}
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			ev, err := CoerceValue(schema, list.OfType, e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = ev
		}
		return out, nil
	}

	// A field/argument declaration's type is already linked to a NamedType
	// by the schema builder, but an operation's own variable declarations
	// are parsed independently of the schema and never go through that
	// linking pass — their leaf is still an unresolved *ast.TypeName, so it
	// is resolved against schema here instead.
	named, ok := t.(typesystem.NamedType)
	if !ok {
		tn, isName := t.(*ast.TypeName)
		if !isName {
			return nil, fmt.Errorf("unresolved type reference %q", t.String())
		}
		named = schema.Resolve(tn.Name.Name)
		if named == nil {
			return nil, fmt.Errorf("unknown type %q", tn.Name.Name)
		}
	}
	switch nt := named.(type) {
	case *typesystem.Scalar:
		return coerceScalar(nt, value)
	case *typesystem.Enum:
		return coerceEnum(nt, value)
	case *typesystem.InputObject:
		return coerceInputObject(schema, nt, value)
	default:
		return nil, fmt.Errorf("%q is not an input type", named.TypeName())
	}
}

// coerceScalar defers to a custom scalar's ParseValue callback if one is
// attached; the built-in scalars carry no such callback (they are
// synthesized once at package init with no representation logic of their
// own, see typesystem.Meta), so their coercion is hard-coded here. A custom
// scalar with no ParseValue callback attached is passed through unchanged —
// this module exposes no API to attach one (that belongs to whatever wires
// resolvers into a Schema), so accepting the raw value is the only useful
// behavior available.
func coerceScalar(s *typesystem.Scalar, value interface{}) (interface{}, error) {
	if s.ParseValue != nil {
		return s.ParseValue(value)
	}
	switch s.Name {
	case "Int":
		switch v := value.(type) {
		case int32:
			return v, nil
		case int:
			return int32(v), nil
		case float64:
			if v == float64(int32(v)) {
				return int32(v), nil
			}
		}
		return nil, fmt.Errorf("cannot coerce %v to Int", value)
	case "Float":
		switch v := value.(type) {
		case float64:
			return v, nil
		case int32:
			return float64(v), nil
		case int:
			return float64(v), nil
		}
		return nil, fmt.Errorf("cannot coerce %v to Float", value)
	case "String":
		if v, ok := value.(string); ok {
			return v, nil
		}
		return nil, fmt.Errorf("cannot coerce %v to String", value)
	case "Boolean":
		if v, ok := value.(bool); ok {
			return v, nil
		}
		return nil, fmt.Errorf("cannot coerce %v to Boolean", value)
	case "ID":
		switch v := value.(type) {
		case string:
			return v, nil
		case int32:
			return fmt.Sprintf("%d", v), nil
		case int:
			return fmt.Sprintf("%d", v), nil
		}
		return nil, fmt.Errorf("cannot coerce %v to ID", value)
	default:
		return value, nil
	}
}

func coerceEnum(e *typesystem.Enum, value interface{}) (interface{}, error) {
	name, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("enum %s value must be a name, got %T", e.Name, value)
	}
	if !e.Values.Has(name) {
		return nil, fmt.Errorf("%q is not a member of enum %s", name, e.Name)
	}
	return name, nil
}

func coerceInputObject(schema *typesystem.Schema, io *typesystem.InputObject, value interface{}) (interface{}, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("input object %s must be an object, got %T", io.Name, value)
	}
	out := make(map[string]interface{}, len(m))
	for _, name := range io.Fields.Keys() {
		f := io.Fields.MustGet(name)
		val, provided := m[name]
		if !provided || val == nil {
			if provided {
				if ast.IsNonNull(f.Type) {
					return nil, fmt.Errorf("field %q of input object %s must not be null", name, io.Name)
				}
				out[name] = nil
				continue
			}
			if f.Default != nil {
				dv, err := ValueToGo(f.Default, nil)
				if err != nil {
					return nil, fmt.Errorf("field %q default: %w", name, err)
				}
				cv, err := CoerceValue(schema, f.Type, dv)
				if err != nil {
					return nil, fmt.Errorf("field %q: %w", name, err)
				}
				out[name] = cv
				continue
			}
			if ast.IsNonNull(f.Type) {
				return nil, fmt.Errorf("field %q of input object %s is required", name, io.Name)
			}
			continue
		}
		cv, err := CoerceValue(schema, f.Type, val)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = cv
	}
	for k := range m {
		if !io.Fields.Has(k) {
			return nil, fmt.Errorf("unknown field %q on input object %s", k, io.Name)
		}
	}
	return out, nil
}
