package typesystem

import "github.com/fenwickgql/graphqlcore/ast"

// IsCovariantSubtype reports whether t is a valid subtype of u for
// interface-implementation purposes (GLOSSARY "Covariant subtype"): t = u;
// or t = NonNull(t') with t' a subtype of u (or of u' if u = NonNull(u'));
// or both are lists with covariant element types; or u names an
// interface/union and t names one of its possible Objects.
func IsCovariantSubtype(schema *Schema, t, u ast.Type) bool {
	if nn, ok := u.(*ast.NonNull); ok {
		tnn, ok := t.(*ast.NonNull)
		if !ok {
			return false
		}
		return IsCovariantSubtype(schema, tnn.OfType, nn.OfType)
	}
	if tnn, ok := t.(*ast.NonNull); ok {
		return IsCovariantSubtype(schema, tnn.OfType, u)
	}
	if tl, ok := t.(*ast.List); ok {
		ul, ok := u.(*ast.List)
		if !ok {
			return false
		}
		return IsCovariantSubtype(schema, tl.OfType, ul.OfType)
	}
	if _, ok := u.(*ast.List); ok {
		return false
	}

	tNamed, tOK := t.(NamedType)
	uNamed, uOK := u.(NamedType)
	if !tOK || !uOK {
		return false
	}
	if tNamed == uNamed {
		return true
	}
	if obj, ok := tNamed.(*Object); ok {
		return schema.IsSubType(uNamed, obj)
	}
	return false
}
