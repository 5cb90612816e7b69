// Package lexer tokenizes GraphQL source text. It backs both the SDL/schema
// parser and the executable-document parser in internal/parser.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/fenwickgql/graphqlcore/ast"
	"github.com/fenwickgql/graphqlcore/errors"
)

type syntaxError string

// Lexer wraps text/scanner.Scanner with GraphQL's lexical rules: commas and
// `#`-comments are insignificant whitespace, and a run of comments (or a
// description string) immediately preceding a definition becomes that
// definition's description.
type Lexer struct {
	sc          *scanner.Scanner
	next        rune
	descComment string
	source      string
}

// New creates a Lexer over s and primes it to the first token.
func New(s, source string) *Lexer {
	sc := &scanner.Scanner{
		Mode: scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings,
	}
	sc.Init(strings.NewReader(s))
	l := &Lexer{sc: sc, source: source}
	l.ConsumeWhitespace()
	return l
}

// CatchSyntaxError runs f, converting any panic raised via SyntaxError into
// a returned *errors.QueryError. Panics of any other kind propagate.
func (l *Lexer) CatchSyntaxError(f func()) (errRes *errors.QueryError) {
	defer func() {
		if err := recover(); err != nil {
			if msg, ok := err.(syntaxError); ok {
				errRes = errors.Errorf("syntax error: %s", msg)
				errRes.Locations = []errors.Location{l.Location()}
				return
			}
			panic(err)
		}
	}()
	f()
	return
}

func (l *Lexer) Peek() rune { return l.next }

// TokenText returns the raw text of the current, not-yet-consumed token.
func (l *Lexer) TokenText() string { return l.sc.TokenText() }

// ConsumeWhitespace advances past whitespace, commas, and `#` comments,
// accumulating comment text into the pending description.
func (l *Lexer) ConsumeWhitespace() {
	l.descComment = ""
	for {
		l.next = l.sc.Scan()

		if l.next == ',' {
			continue
		}

		if l.next == '#' {
			l.consumeComment()
			continue
		}

		break
	}
}

func (l *Lexer) ConsumeIdent() string {
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return name
}

func (l *Lexer) ConsumeIdentWithLoc() ast.Ident {
	loc := l.Location()
	name := l.sc.TokenText()
	l.ConsumeToken(scanner.Ident)
	return ast.Ident{Name: name, Loc: loc}
}

func (l *Lexer) ConsumeKeyword(keyword string) {
	if l.next != scanner.Ident || l.sc.TokenText() != keyword {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %q", l.sc.TokenText(), keyword))
	}
	l.ConsumeWhitespace()
}

// BasicLit is a scalar literal token: an int, float, string, or bare
// identifier (used for `true`/`false`/`null`/enum values).
type BasicLit struct {
	Type rune
	Text string
}

func (l *Lexer) ConsumeLiteral() *BasicLit {
	lit := &BasicLit{Type: l.next, Text: l.sc.TokenText()}
	l.ConsumeWhitespace()
	return lit
}

func (l *Lexer) ConsumeToken(expected rune) {
	if l.next != expected {
		l.SyntaxError(fmt.Sprintf("unexpected %q, expecting %s", l.sc.TokenText(), scanner.TokenString(expected)))
	}
	l.ConsumeWhitespace()
}

// DescComment optionally consumes a `"""block"""` or `"line"` description
// string that appears where a `#` comment run would otherwise go, then
// returns the accumulated description text (comment run or string).
func (l *Lexer) DescComment() string {
	if l.next == scanner.String {
		tokenText := l.sc.TokenText()
		l.descComment = ""
		if l.sc.Peek() == '"' {
			l.next = l.sc.Next()
			l.consumeTripleQuoteComment()
		} else {
			l.consumeStringComment(tokenText)
		}
		l.ConsumeWhitespace2()
	}
	return l.descComment
}

// ConsumeWhitespace2 is like ConsumeWhitespace but preserves the
// description accumulated by DescComment immediately before it.
func (l *Lexer) ConsumeWhitespace2() {
	saved := l.descComment
	for {
		l.next = l.sc.Scan()
		if l.next == ',' {
			continue
		}
		if l.next == '#' {
			l.consumeComment()
			continue
		}
		break
	}
	l.descComment = saved
}

func (l *Lexer) SyntaxError(message string) {
	panic(syntaxError(message))
}

func (l *Lexer) Location() errors.Location {
	return errors.Location{Line: l.sc.Line, Column: l.sc.Column}
}

func (l *Lexer) consumeTripleQuoteComment() {
	if l.next != '"' {
		panic("consumeTripleQuoteComment used in wrong context: no third quote?")
	}
	var b strings.Builder
	numQuotes := 0
	for {
		l.next = l.sc.Next()
		if l.next == '"' {
			numQuotes++
		} else {
			numQuotes = 0
		}
		b.WriteRune(l.next)
		if numQuotes == 3 || l.next == scanner.EOF {
			break
		}
	}
	s := b.String()
	l.descComment = strings.TrimSpace(s[:len(s)-numQuotes])
}

func (l *Lexer) consumeStringComment(str string) {
	value, err := strconv.Unquote(str)
	if err != nil {
		panic(err)
	}
	l.descComment = value
}

// consumeComment consumes from `#` to the line terminator, appending to the
// pending description so that adjacent comment lines merge into one
// paragraph.
func (l *Lexer) consumeComment() {
	if l.next != '#' {
		panic("consumeComment used in wrong context")
	}
	if l.sc.Peek() == ' ' {
		l.sc.Next()
	}
	if l.descComment != "" {
		l.descComment += "\n"
	}
	var b strings.Builder
	b.WriteString(l.descComment)
	for {
		next := l.sc.Next()
		if next == '\r' || next == '\n' || next == scanner.EOF {
			break
		}
		b.WriteRune(next)
	}
	l.descComment = b.String()
}
