package lexer_test

import (
	"testing"

	"github.com/fenwickgql/graphqlcore/internal/lexer"
)

func TestConsumeWhitespaceAccumulatesCommentRun(t *testing.T) {
	tests := []struct {
		description string
		definition  string
		expected    string
	}{
		{
			description: "merges adjacent comment lines into one paragraph",
			definition: `
# Comment line 1
#Comment line 2
,,,,,, # trailing comma is insignificant
type Hello {
	world: String!
}`,
			expected: "Comment line 1\nComment line 2\ntrailing comma is insignificant",
		},
		{
			description: "no comment run leaves an empty description",
			definition:  `type Hello { world: String! }`,
			expected:    "",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			lex := lexer.New(test.definition, "test")
			if got := lex.DescComment(); got != test.expected {
				t.Errorf("wrong description value:\nwant: %q\ngot : %q", test.expected, got)
			}
		})
	}
}

func TestDescCommentConsumesBlockString(t *testing.T) {
	lex := lexer.New(`
"""
New style comments
"""
type Hello {
	world: String!
}`, "test")

	if got, want := lex.DescComment(), "New style comments"; got != want {
		t.Errorf("wrong description value:\nwant: %q\ngot : %q", want, got)
	}
	if got, want := lex.ConsumeIdent(), "type"; got != want {
		t.Errorf("expected to land on %q after the description, got %q", want, got)
	}
}

func TestDescCommentConsumesSingleLineString(t *testing.T) {
	lex := lexer.New(`"single line" type Hello { world: String! }`, "test")

	if got, want := lex.DescComment(), "single line"; got != want {
		t.Errorf("wrong description value:\nwant: %q\ngot : %q", want, got)
	}
}

func TestConsumeIdentWithLocTracksPosition(t *testing.T) {
	lex := lexer.New("type Hello", "test")
	id := lex.ConsumeIdentWithLoc()
	if id.Name != "type" {
		t.Fatalf("expected first ident %q, got %q", "type", id.Name)
	}
	if id.Loc.Line != 1 || id.Loc.Column != 1 {
		t.Errorf("expected location 1:1, got %d:%d", id.Loc.Line, id.Loc.Column)
	}
}

func TestConsumeKeywordSyntaxError(t *testing.T) {
	lex := lexer.New("type Hello", "test")
	err := lex.CatchSyntaxError(func() {
		lex.ConsumeKeyword("interface")
	})
	if err == nil {
		t.Fatal("expected a syntax error for a mismatched keyword")
	}
}

func TestConsumeTokenAdvancesPastCommas(t *testing.T) {
	lex := lexer.New("Int, String", "test")
	got := lex.ConsumeIdent()
	if got != "Int" {
		t.Fatalf("expected %q, got %q", "Int", got)
	}
	got = lex.ConsumeIdent()
	if got != "String" {
		t.Fatalf("commas should be skipped as insignificant whitespace, got %q", got)
	}
}

func TestConsumeLiteralReportsTokenType(t *testing.T) {
	lex := lexer.New(`42`, "test")
	lit := lex.ConsumeLiteral()
	if lit.Text != "42" {
		t.Errorf("expected literal text %q, got %q", "42", lit.Text)
	}
}
