// Package parser turns GraphQL source text into an *ast.Document. It is the
// concrete stand-in for the "lexer and parser" that spec.md treats as an
// external collaborator: the schema builder and execution context builder
// only ever consume the ast package's types, never this package.
package parser

import (
	"fmt"
	"text/scanner"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/lexer"
)

// Parse parses a GraphQL document containing any mix of type system
// definitions, extensions, and executable definitions (operations,
// fragments). source names the originating file or string; it is not
// recorded in the returned AST or error locations, which carry only line
// and column.
func Parse(text, source string) (*ast.Document, *errors.QueryError) {
	l := lexer.New(text, source)
	doc := &ast.Document{}
	var syntaxErr *errors.QueryError
	err := l.CatchSyntaxError(func() {
		for l.Peek() != scanner.EOF {
			doc.Definitions = append(doc.Definitions, parseDefinition(l))
		}
	})
	if err != nil {
		return nil, err
	}
	return doc, syntaxErr
}

func parseDefinition(l *lexer.Lexer) ast.Definition {
	if l.Peek() == '{' {
		op := &ast.OperationDefinition{Type: ast.Query, Loc: l.Location()}
		op.Selections = parseSelectionSet(l)
		return op
	}

	desc := l.DescComment()
	loc := l.Location()
	switch kw := l.ConsumeIdent(); kw {
	case "schema":
		return parseSchemaDefinition(l, desc, loc)
	case "scalar":
		return parseScalarTypeDefinition(l, desc, loc)
	case "type":
		return parseObjectTypeDefinition(l, desc, loc)
	case "interface":
		return parseInterfaceTypeDefinition(l, desc, loc)
	case "union":
		return parseUnionTypeDefinition(l, desc, loc)
	case "enum":
		return parseEnumTypeDefinition(l, desc, loc)
	case "input":
		return parseInputObjectTypeDefinition(l, desc, loc)
	case "directive":
		return parseDirectiveDefinition(l, desc, loc)
	case "extend":
		return parseExtension(l, loc)
	case "query":
		return parseOperation(l, ast.Query, loc)
	case "mutation":
		return parseOperation(l, ast.Mutation, loc)
	case "subscription":
		return parseOperation(l, ast.Subscription, loc)
	case "fragment":
		return parseFragmentDefinition(l, loc)
	default:
		l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting a type system or executable definition`, kw))
		panic("unreachable")
	}
}

func parseSchemaDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.SchemaDefinition {
	s := &ast.SchemaDefinition{Desc: desc, Loc: loc}
	s.Directives = parseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		opLoc := l.Location()
		op := l.ConsumeIdent()
		l.ConsumeToken(':')
		typeName := l.ConsumeIdentWithLoc()
		s.OperationTypes = append(s.OperationTypes, &ast.OperationTypeDefinition{
			Operation: op, Type: typeName, Loc: opLoc,
		})
	}
	l.ConsumeToken('}')
	return s
}

func parseScalarTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.ScalarTypeDefinition {
	name := l.ConsumeIdentWithLoc()
	directives := parseDirectives(l)
	return &ast.ScalarTypeDefinition{Name: name, Desc: desc, Directives: directives, Loc: loc}
}

func parseImplementsList(l *lexer.Lexer) []ast.Ident {
	var ifaces []ast.Ident
	if l.Peek() == scanner.Ident && l.TokenText() == "implements" {
		l.ConsumeKeyword("implements")
		if l.Peek() == '&' {
			l.ConsumeToken('&')
		}
		for {
			ifaces = append(ifaces, l.ConsumeIdentWithLoc())
			if l.Peek() != '&' {
				break
			}
			l.ConsumeToken('&')
		}
	}
	return ifaces
}

func parseObjectTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.ObjectTypeDefinition {
	o := &ast.ObjectTypeDefinition{Desc: desc, Loc: loc}
	o.Name = l.ConsumeIdentWithLoc()
	o.Interfaces = parseImplementsList(l)
	o.Directives = parseDirectives(l)
	o.Fields = parseFieldDefList(l)
	return o
}

func parseInterfaceTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.InterfaceTypeDefinition {
	i := &ast.InterfaceTypeDefinition{Desc: desc, Loc: loc}
	i.Name = l.ConsumeIdentWithLoc()
	i.Interfaces = parseImplementsList(l)
	i.Directives = parseDirectives(l)
	i.Fields = parseFieldDefList(l)
	return i
}

func parseUnionTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.UnionTypeDefinition {
	u := &ast.UnionTypeDefinition{Desc: desc, Loc: loc}
	u.Name = l.ConsumeIdentWithLoc()
	u.Directives = parseDirectives(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		if l.Peek() == '|' {
			l.ConsumeToken('|')
		}
		u.Members = append(u.Members, l.ConsumeIdentWithLoc())
		for l.Peek() == '|' {
			l.ConsumeToken('|')
			u.Members = append(u.Members, l.ConsumeIdentWithLoc())
		}
	}
	return u
}

func parseEnumTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.EnumTypeDefinition {
	e := &ast.EnumTypeDefinition{Desc: desc, Loc: loc}
	e.Name = l.ConsumeIdentWithLoc()
	e.Directives = parseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		v := &ast.EnumValueDefinition{}
		v.Desc = l.DescComment()
		v.Loc = l.Location()
		v.Name = l.ConsumeIdentWithLoc()
		v.Directives = parseDirectives(l)
		e.Values = append(e.Values, v)
	}
	l.ConsumeToken('}')
	return e
}

func parseInputObjectTypeDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.InputObjectTypeDefinition {
	i := &ast.InputObjectTypeDefinition{Desc: desc, Loc: loc}
	i.Name = l.ConsumeIdentWithLoc()
	i.Directives = parseDirectives(l)
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		i.Fields = append(i.Fields, parseInputValue(l))
	}
	l.ConsumeToken('}')
	return i
}

func parseDirectiveDefinition(l *lexer.Lexer, desc string, loc errors.Location) *ast.DirectiveDefinition {
	d := &ast.DirectiveDefinition{Desc: desc, Loc: loc}
	l.ConsumeToken('@')
	d.Name = l.ConsumeIdentWithLoc()
	d.Arguments = parseArgumentDefList(l)
	if l.Peek() == scanner.Ident && l.TokenText() == "repeatable" {
		l.ConsumeIdent()
		d.Repeatable = true
	}
	l.ConsumeKeyword("on")
	if l.Peek() == '|' {
		l.ConsumeToken('|')
	}
	for {
		d.Locations = append(d.Locations, l.ConsumeIdent())
		if l.Peek() != '|' {
			break
		}
		l.ConsumeToken('|')
	}
	return d
}

func parseExtension(l *lexer.Lexer, loc errors.Location) ast.Extension {
	switch kw := l.ConsumeIdent(); kw {
	case "schema":
		s := &ast.SchemaExtension{Loc: loc}
		s.Directives = parseDirectives(l)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				opLoc := l.Location()
				op := l.ConsumeIdent()
				l.ConsumeToken(':')
				typeName := l.ConsumeIdentWithLoc()
				s.OperationTypes = append(s.OperationTypes, &ast.OperationTypeDefinition{
					Operation: op, Type: typeName, Loc: opLoc,
				})
			}
			l.ConsumeToken('}')
		}
		return s
	case "scalar":
		name := l.ConsumeIdentWithLoc()
		directives := parseDirectives(l)
		return &ast.ScalarTypeExtension{Name: name, Directives: directives, Loc: loc}
	case "type":
		e := &ast.ObjectTypeExtension{Loc: loc}
		e.Name = l.ConsumeIdentWithLoc()
		e.Interfaces = parseImplementsList(l)
		e.Directives = parseDirectives(l)
		if l.Peek() == '{' {
			e.Fields = parseFieldDefList(l)
		}
		return e
	case "interface":
		e := &ast.InterfaceTypeExtension{Loc: loc}
		e.Name = l.ConsumeIdentWithLoc()
		e.Interfaces = parseImplementsList(l)
		e.Directives = parseDirectives(l)
		if l.Peek() == '{' {
			e.Fields = parseFieldDefList(l)
		}
		return e
	case "union":
		e := &ast.UnionTypeExtension{Loc: loc}
		e.Name = l.ConsumeIdentWithLoc()
		e.Directives = parseDirectives(l)
		if l.Peek() == '=' {
			l.ConsumeToken('=')
			if l.Peek() == '|' {
				l.ConsumeToken('|')
			}
			e.Members = append(e.Members, l.ConsumeIdentWithLoc())
			for l.Peek() == '|' {
				l.ConsumeToken('|')
				e.Members = append(e.Members, l.ConsumeIdentWithLoc())
			}
		}
		return e
	case "enum":
		e := &ast.EnumTypeExtension{Loc: loc}
		e.Name = l.ConsumeIdentWithLoc()
		e.Directives = parseDirectives(l)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				v := &ast.EnumValueDefinition{}
				v.Desc = l.DescComment()
				v.Loc = l.Location()
				v.Name = l.ConsumeIdentWithLoc()
				v.Directives = parseDirectives(l)
				e.Values = append(e.Values, v)
			}
			l.ConsumeToken('}')
		}
		return e
	case "input":
		e := &ast.InputObjectTypeExtension{Loc: loc}
		e.Name = l.ConsumeIdentWithLoc()
		e.Directives = parseDirectives(l)
		if l.Peek() == '{' {
			l.ConsumeToken('{')
			for l.Peek() != '}' {
				e.Fields = append(e.Fields, parseInputValue(l))
			}
			l.ConsumeToken('}')
		}
		return e
	default:
		l.SyntaxError(fmt.Sprintf(`unexpected %q, expecting "schema", "scalar", "type", "interface", "union", "enum" or "input"`, kw))
		panic("unreachable")
	}
}
