package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	lexer := NewLexer(src)
	var tokens []Token
	for {
		tok, err := lexer.NextToken()
		require.NoError(t, err)
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestLexProgram(t *testing.T) {
	tokens := lexAll(t, `("3" -> int) + "a".load`)
	expected := []Token{
		{TokenLParen, "("},
		{TokenString, `"3"`},
		{TokenSymbol, "->"},
		{TokenIdent, "int"},
		{TokenRParen, ")"},
		{TokenSymbol, "+"},
		{TokenString, `"a"`},
		{TokenSymbol, "."},
		{TokenIdent, "load"},
	}
	assert.Equal(t, expected, tokens)
}

func TestLexMaximalMunch(t *testing.T) {
	cases := map[string][]string{
		"a->b":   {"a", "->", "b"},
		"a<-b":   {"a", "<-", "b"},
		"a=<b":   {"a", "=<", "b"},
		"a==b":   {"a", "==", "b"},
		"a!=b":   {"a", "!=", "b"},
		"a<b":    {"a", "<", "b"},
		`\abc`:   {`\`, "abc"},
		"a;b|c":  {"a", ";", "b", "|", "c"},
		"a % b":  {"a", "%", "b"},
		"x1*y_2": {"x1", "*", "y_2"},
	}
	for src, want := range cases {
		tokens := lexAll(t, src)
		var got []string
		for _, tok := range tokens {
			got = append(got, tok.Lexeme)
		}
		assert.Equal(t, want, got, "source %q", src)
	}
}

func TestLexStringKeepsQuotes(t *testing.T) {
	tokens := lexAll(t, `"hello world"`)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestLexRejectsForeignRunes(t *testing.T) {
	for _, src := range []string{"{aaa}", "#", "a = b", "a & b", "[x]"} {
		lexer := NewLexer(src)
		var err error
		for err == nil {
			var tok Token
			tok, err = lexer.NextToken()
			if err == nil && tok.Type == TokenEOF {
				t.Fatalf("source %q lexed without error", src)
			}
		}
		assert.Error(t, err, "source %q", src)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	lexer := NewLexer(`"abc`)
	_, err := lexer.NextToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated")
}

func TestLexWhitespaceOnly(t *testing.T) {
	tokens := lexAll(t, " \t\r\n ")
	assert.Empty(t, tokens)
}
