package parser

import (
	"text/scanner"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
	"github.com/fenwickgql/graphqlcore/internal/lexer"
)

func parseOperation(l *lexer.Lexer, opType ast.OperationType, loc errors.Location) *ast.OperationDefinition {
	op := &ast.OperationDefinition{Type: opType, Loc: loc}
	if l.Peek() == scanner.Ident {
		op.Name = l.ConsumeIdentWithLoc()
	}
	if l.Peek() == '(' {
		op.Vars = parseVariableDefinitions(l)
	}
	op.Directives = parseDirectives(l)
	op.Selections = parseSelectionSet(l)
	return op
}

func parseVariableDefinitions(l *lexer.Lexer) ast.InputValueDefinitionList {
	var vars ast.InputValueDefinitionList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		v := &ast.InputValueDefinition{}
		v.Loc = l.Location()
		l.ConsumeToken('$')
		v.Name = l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		v.TypeLoc = l.Location()
		v.Type = parseType(l)
		if l.Peek() == '=' {
			l.ConsumeToken('=')
			v.Default = parseValue(l, true)
		}
		v.Directives = parseDirectives(l)
		vars = append(vars, v)
	}
	l.ConsumeToken(')')
	return vars
}

func parseFragmentDefinition(l *lexer.Lexer, loc errors.Location) *ast.FragmentDefinition {
	f := &ast.FragmentDefinition{Loc: loc}
	f.Name = l.ConsumeIdentWithLoc()
	l.ConsumeKeyword("on")
	f.On = ast.TypeName{Name: l.ConsumeIdentWithLoc()}
	f.Directives = parseDirectives(l)
	f.Selections = parseSelectionSet(l)
	return f
}

func parseSelectionSet(l *lexer.Lexer) []ast.Selection {
	var sels []ast.Selection
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		sels = append(sels, parseSelection(l))
	}
	l.ConsumeToken('}')
	return sels
}

func parseSelection(l *lexer.Lexer) ast.Selection {
	if l.Peek() == '.' {
		return parseSpreadOrInlineFragment(l)
	}
	return parseField(l)
}

func parseSpreadOrInlineFragment(l *lexer.Lexer) ast.Selection {
	loc := l.Location()
	l.ConsumeToken('.')
	l.ConsumeToken('.')
	l.ConsumeToken('.')

	if l.Peek() == scanner.Ident && l.TokenText() != "on" {
		spread := &ast.FragmentSpread{Loc: loc}
		spread.Name = l.ConsumeIdentWithLoc()
		spread.Directives = parseDirectives(l)
		return spread
	}

	inline := &ast.InlineFragment{Loc: loc}
	if l.Peek() == scanner.Ident && l.TokenText() == "on" {
		l.ConsumeKeyword("on")
		inline.On = ast.TypeName{Name: l.ConsumeIdentWithLoc()}
	}
	inline.Directives = parseDirectives(l)
	inline.Selections = parseSelectionSet(l)
	return inline
}

func parseField(l *lexer.Lexer) *ast.Field {
	f := &ast.Field{}
	name := l.ConsumeIdentWithLoc()
	if l.Peek() == ':' {
		l.ConsumeToken(':')
		f.Alias = name
		f.Name = l.ConsumeIdentWithLoc()
	} else {
		f.Name = name
		f.Alias = name
	}
	if l.Peek() == '(' {
		f.Arguments = parseArgumentList(l)
	}
	f.Directives = parseDirectives(l)
	if l.Peek() == '{' {
		f.SelectionSetLoc = l.Location()
		f.SelectionSet = parseSelectionSet(l)
	}
	return f
}
