package ast

// Type is a type reference as it appears in source: a bare name, a list, or
// a non-null wrapper. The schema builder builds a linked copy of a Type
// whose leaf is the concrete NamedType the TypeName names, leaving the AST's
// own Type unchanged; both shapes satisfy this interface, so the linked copy
// serves as the type expression hanging off a field, argument, or input field.
//
// http://spec.graphql.org/draft/#sec-Wrapping-Types
type Type interface {
	// Kind returns "NAMED", "LIST", or "NON_NULL" for an unlinked (or
	// still-wrapping) Type, and the linked NamedType's own Kind (e.g.
	// "OBJECT", "SCALAR") once the leaf has been resolved.
	Kind() string
	String() string
}

// TypeName is an unresolved reference to a named type, by name. In the
// schema builder's linked copy it is replaced with the NamedType it resolves to.
type TypeName struct {
	Name Ident
}

func (t *TypeName) Kind() string   { return "NAMED" }
func (t *TypeName) String() string { return t.Name.Name }

// List wraps an element type: `[T]`.
type List struct {
	OfType Type
}

func (t *List) Kind() string   { return "LIST" }
func (t *List) String() string { return "[" + t.OfType.String() + "]" }

// NonNull wraps a named or list type: `T!` or `[T]!`. NonNull(NonNull(_))
// is never constructed by the parser or the builder.
type NonNull struct {
	OfType Type
}

func (t *NonNull) Kind() string   { return "NON_NULL" }
func (t *NonNull) String() string { return t.OfType.String() + "!" }

// Unwrap strips NonNull and List wrappers, returning the bare leaf Type
// (a *TypeName before linking, a NamedType after).
func Unwrap(t Type) Type {
	for {
		switch w := t.(type) {
		case *NonNull:
			t = w.OfType
		case *List:
			t = w.OfType
		default:
			return t
		}
	}
}

// IsNonNull reports whether t is a NonNull wrapper.
func IsNonNull(t Type) bool {
	_, ok := t.(*NonNull)
	return ok
}
