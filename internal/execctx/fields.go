package execctx

import (
	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/typesystem"
)

// CollectFields performs standard GraphQL field-collection over selections,
// honoring @skip/@include, fragment spreads, and inline fragments, against
// runtimeType (§4.F step 3). The result maps each response key (alias, or
// field name with no alias) to every AST field node contributing to it, in
// first-occurrence order — the caller merges/validates as appropriate for
// its context (the subscription kernel requires exactly one response key).
func CollectFields(
	schema *typesystem.Schema,
	fragments map[string]*ast.FragmentDefinition,
	selections []ast.Selection,
	runtimeType *typesystem.Object,
	vars map[string]interface{},
	out *typesystem.OrderedMap[[]*ast.Field],
	visited map[string]bool,
) *errors.QueryError {
	for _, sel := range selections {
		switch s := sel.(type) {
		case *ast.Field:
			include, err := shouldInclude(s.Directives, vars)
			if err != nil {
				return err
			}
			if !include {
				continue
			}
			name := s.Alias.Name
			if name == "" {
				name = s.Name.Name
			}
			existing, _ := out.Get(name)
			out.Set(name, append(existing, s))

		case *ast.InlineFragment:
			include, err := shouldInclude(s.Directives, vars)
			if err != nil {
				return err
			}
			if !include || !typeConditionMatches(schema, s.On.Name.Name, runtimeType) {
				continue
			}
			if err := CollectFields(schema, fragments, s.Selections, runtimeType, vars, out, visited); err != nil {
				return err
			}

		case *ast.FragmentSpread:
			include, err := shouldInclude(s.Directives, vars)
			if err != nil {
				return err
			}
			if !include || visited[s.Name.Name] {
				continue
			}
			visited[s.Name.Name] = true
			fd, ok := fragments[s.Name.Name]
			if !ok {
				return errors.Errorf("unknown fragment %q", s.Name.Name).WithLocations(s.Loc)
			}
			if !typeConditionMatches(schema, fd.On.Name.Name, runtimeType) {
				continue
			}
			if err := CollectFields(schema, fragments, fd.Selections, runtimeType, vars, out, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

func typeConditionMatches(schema *typesystem.Schema, cond string, runtimeType *typesystem.Object) bool {
	if cond == "" || cond == runtimeType.Name {
		return true
	}
	t, ok := schema.TypeMap.Get(cond)
	if !ok {
		return false
	}
	return schema.IsSubType(t, runtimeType)
}

func shouldInclude(directives ast.DirectiveList, vars map[string]interface{}) (bool, *errors.QueryError) {
	if d := directives.Get("skip"); d != nil {
		v, err := directiveBoolArg(d, vars)
		if err != nil {
			return false, err
		}
		if v {
			return false, nil
		}
	}
	if d := directives.Get("include"); d != nil {
		v, err := directiveBoolArg(d, vars)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

func directiveBoolArg(d *ast.Directive, vars map[string]interface{}) (bool, *errors.QueryError) {
	val, ok := d.Arguments.Get("if")
	if !ok {
		return false, errors.Errorf("directive %q requires argument \"if\"", d.Name.Name).WithLocations(d.Name.Loc)
	}
	v, err := ValueToGo(val, vars)
	if err != nil {
		return false, errors.Errorf("%s", err).WithLocations(d.Name.Loc)
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Errorf("directive %q argument \"if\" must be a boolean", d.Name.Name).WithLocations(d.Name.Loc)
	}
	return b, nil
}
