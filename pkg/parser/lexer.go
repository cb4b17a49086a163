package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenType classifies lexer output.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenSymbol
	TokenIdent
	TokenString
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenSymbol:
		return "SYMBOL"
	case TokenIdent:
		return "IDENT"
	case TokenString:
		return "STRING"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	default:
		return fmt.Sprintf("TOKEN(%d)", int(t))
	}
}

// Token is one lexeme of rill source. String tokens keep their surrounding
// double quotes so downstream consumers can tell literals from identifiers by
// the leading quote.
type Token struct {
	Type   TokenType
	Lexeme string
}

// twoRuneSymbols are matched before their one-rune prefixes (maximal munch).
var twoRuneSymbols = []string{"->", "<-", "=<", "==", "!="}

const oneRuneSymbols = ";|<+-*%\\."

// Lexer scans rill source into tokens over the fixed symbol alphabet.
type Lexer struct {
	src   string
	pos   int // byte index into src
	ch    rune
	width int
	done  bool
}

func NewLexer(src string) *Lexer {
	l := &Lexer{src: src}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	if l.pos >= len(l.src) {
		l.ch = 0
		l.width = 0
		l.done = true
		return
	}
	r, w := utf8.DecodeRuneInString(l.src[l.pos:])
	l.ch = r
	l.width = w
	l.pos += w
}

// NextToken returns the next token, or an error for any rune outside the
// language's alphabet.
func (l *Lexer) NextToken() (Token, error) {
	for !l.done && (l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n') {
		l.readRune()
	}
	if l.done {
		return Token{Type: TokenEOF}, nil
	}

	switch {
	case l.ch == '(':
		l.readRune()
		return Token{Type: TokenLParen, Lexeme: "("}, nil
	case l.ch == ')':
		l.readRune()
		return Token{Type: TokenRParen, Lexeme: ")"}, nil
	case l.ch == '"':
		return l.lexString()
	case isIdentRune(l.ch):
		return l.lexIdent(), nil
	}

	for _, sym := range twoRuneSymbols {
		if rune(sym[0]) == l.ch && l.peekRune() == rune(sym[1]) {
			l.readRune()
			l.readRune()
			return Token{Type: TokenSymbol, Lexeme: sym}, nil
		}
	}
	for _, r := range oneRuneSymbols {
		if l.ch == r {
			l.readRune()
			return Token{Type: TokenSymbol, Lexeme: string(r)}, nil
		}
	}
	return Token{}, fmt.Errorf("unexpected character %q", l.ch)
}

func (l *Lexer) peekRune() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func (l *Lexer) lexString() (Token, error) {
	start := l.pos - l.width
	l.readRune() // opening quote
	for !l.done && l.ch != '"' {
		l.readRune()
	}
	if l.done {
		return Token{}, fmt.Errorf("unterminated string literal")
	}
	l.readRune() // closing quote
	return Token{Type: TokenString, Lexeme: l.src[start : l.pos-l.width]}, nil
}

func (l *Lexer) lexIdent() Token {
	start := l.pos - l.width
	for !l.done && isIdentRune(l.ch) {
		l.readRune()
	}
	return Token{Type: TokenIdent, Lexeme: l.src[start : l.pos-l.width]}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
