package parser

import (
	"text/scanner"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/internal/lexer"
)

func parseType(l *lexer.Lexer) ast.Type {
	t := parseNullableType(l)
	if l.Peek() == '!' {
		l.ConsumeToken('!')
		return &ast.NonNull{OfType: t}
	}
	return t
}

func parseNullableType(l *lexer.Lexer) ast.Type {
	if l.Peek() == '[' {
		l.ConsumeToken('[')
		ofType := parseType(l)
		l.ConsumeToken(']')
		return &ast.List{OfType: ofType}
	}
	return &ast.TypeName{Name: l.ConsumeIdentWithLoc()}
}

// parseValue parses a literal value. If constOnly, a `$variable` reference
// is a syntax error (used for default values and directive-definition
// arguments, which may never reference a variable).
func parseValue(l *lexer.Lexer, constOnly bool) ast.Value {
	loc := l.Location()
	switch l.Peek() {
	case '$':
		if constOnly {
			l.SyntaxError("variable not allowed")
		}
		l.ConsumeToken('$')
		return &ast.Variable{Name: l.ConsumeIdent(), Loc: loc}

	case scanner.Int:
		lit := l.ConsumeLiteral()
		return &ast.IntValue{Val: parseInt32(lit.Text), Loc: loc}

	case scanner.Float:
		lit := l.ConsumeLiteral()
		return &ast.FloatValue{Val: parseFloat(lit.Text), Loc: loc}

	case scanner.String:
		text := l.ConsumeLiteral().Text
		return &ast.StringValue{Val: unquote(text), Loc: loc}

	case scanner.Ident:
		text := l.TokenText()
		switch text {
		case "true":
			l.ConsumeLiteral()
			return &ast.BoolValue{Val: true, Loc: loc}
		case "false":
			l.ConsumeLiteral()
			return &ast.BoolValue{Val: false, Loc: loc}
		case "null":
			l.ConsumeLiteral()
			return &ast.NullValue{Loc: loc}
		default:
			lit := l.ConsumeLiteral()
			return &ast.EnumValue{Val: lit.Text, Loc: loc}
		}

	case '-':
		l.ConsumeToken('-')
		lit := l.ConsumeLiteral()
		if lit.Type == scanner.Float {
			return &ast.FloatValue{Val: -parseFloat(lit.Text), Loc: loc}
		}
		return &ast.IntValue{Val: -parseInt32(lit.Text), Loc: loc}

	case '[':
		l.ConsumeToken('[')
		var values []ast.Value
		for l.Peek() != ']' {
			values = append(values, parseValue(l, constOnly))
		}
		l.ConsumeToken(']')
		return &ast.ListValue{Values: values, Loc: loc}

	case '{':
		l.ConsumeToken('{')
		var fields []*ast.ObjectField
		for l.Peek() != '}' {
			name := l.ConsumeIdentWithLoc()
			l.ConsumeToken(':')
			value := parseValue(l, constOnly)
			fields = append(fields, &ast.ObjectField{Name: name, Value: value})
		}
		l.ConsumeToken('}')
		return &ast.ObjectValue{Fields: fields, Loc: loc}

	default:
		l.SyntaxError("invalid value")
		panic("unreachable")
	}
}

func parseArgumentList(l *lexer.Lexer) ast.ArgumentList {
	var args ast.ArgumentList
	l.ConsumeToken('(')
	for l.Peek() != ')' {
		name := l.ConsumeIdentWithLoc()
		l.ConsumeToken(':')
		value := parseValue(l, false)
		args = append(args, &ast.Argument{Name: name, Value: value})
	}
	l.ConsumeToken(')')
	return args
}

func parseDirectives(l *lexer.Lexer) ast.DirectiveList {
	var directives ast.DirectiveList
	for l.Peek() == '@' {
		l.ConsumeToken('@')
		d := &ast.Directive{Name: l.ConsumeIdentWithLoc()}
		if l.Peek() == '(' {
			d.Arguments = parseArgumentList(l)
		}
		directives = append(directives, d)
	}
	return directives
}

func parseInputValue(l *lexer.Lexer) *ast.InputValueDefinition {
	p := &ast.InputValueDefinition{}
	p.Loc = l.Location()
	p.Desc = l.DescComment()
	p.Name = l.ConsumeIdentWithLoc()
	l.ConsumeToken(':')
	p.TypeLoc = l.Location()
	p.Type = parseType(l)
	if l.Peek() == '=' {
		l.ConsumeToken('=')
		p.Default = parseValue(l, true)
	}
	p.Directives = parseDirectives(l)
	return p
}

func parseArgumentDefList(l *lexer.Lexer) ast.InputValueDefinitionList {
	var args ast.InputValueDefinitionList
	if l.Peek() == '(' {
		l.ConsumeToken('(')
		for l.Peek() != ')' {
			args = append(args, parseInputValue(l))
		}
		l.ConsumeToken(')')
	}
	return args
}

func parseFieldDefList(l *lexer.Lexer) ast.FieldDefinitionList {
	var fields ast.FieldDefinitionList
	l.ConsumeToken('{')
	for l.Peek() != '}' {
		f := &ast.FieldDefinition{}
		f.Desc = l.DescComment()
		f.Loc = l.Location()
		f.Name = l.ConsumeIdentWithLoc()
		f.Arguments = parseArgumentDefList(l)
		l.ConsumeToken(':')
		f.Type = parseType(l)
		f.Directives = parseDirectives(l)
		fields = append(fields, f)
	}
	l.ConsumeToken('}')
	return fields
}
