package ast

// Argument is a single `name: value` pair as it appears applied to a field
// or directive in a document (as opposed to InputValueDefinition, which
// declares an argument's type in a type system definition).
type Argument struct {
	Name  Ident
	Value Value
}

type ArgumentList []*Argument

func (l ArgumentList) Get(name string) (Value, bool) {
	for _, a := range l {
		if a.Name.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

func (l ArgumentList) MustGet(name string) Value {
	v, ok := l.Get(name)
	if !ok {
		panic("argument not found: " + name)
	}
	return v
}

// Directive is a single `@name(args...)` usage site.
type Directive struct {
	Name      Ident
	Arguments ArgumentList
}

type DirectiveList []*Directive

func (l DirectiveList) Get(name string) *Directive {
	for _, d := range l {
		if d.Name.Name == name {
			return d
		}
	}
	return nil
}

// All returns every usage of the named directive, for directives declared
// repeatable.
func (l DirectiveList) All(name string) []*Directive {
	var out []*Directive
	for _, d := range l {
		if d.Name.Name == name {
			out = append(out, d)
		}
	}
	return out
}
