package parser

import "fmt"

// Operator precedence, loosest binding first. Every operator has its own
// level and is left-associative.
var operatorOrder = []string{
	";", "|", "->", "<-", "=<", "==", "!=", "<", "+", "-", "*", "%", "\\", ".",
}

var precedence = func() map[string]int {
	m := make(map[string]int, len(operatorOrder))
	for i, op := range operatorOrder {
		m[op] = i
	}
	return m
}()

// Parse tokenizes src and parses it into a generic operator tree.
func Parse(src string) (Node, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	node, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token %q", p.cur.Lexeme)
	}
	return node, nil
}

type parser struct {
	lexer *Lexer
	cur   Token
}

func newParser(src string) (*parser, error) {
	p := &parser{lexer: NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

// parseExpression implements precedence climbing over the binary operators.
func (p *parser) parseExpression(minPrec int) (Node, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenSymbol {
		prec := precedence[p.cur.Lexeme]
		if prec < minPrec {
			break
		}
		label := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &Operator{Label: label, Left: left, Right: right}
	}
	return left, nil
}

// parseOperand parses a leaf, a parenthesized group, or a prefix operator
// occurrence, which stands for an operator whose left operand is missing and
// becomes a Placeholder.
func (p *parser) parseOperand() (Node, error) {
	switch p.cur.Type {
	case TokenIdent, TokenString:
		leaf := &Leaf{Label: p.cur.Lexeme}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return leaf, nil
	case TokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TokenRParen {
			return nil, fmt.Errorf("expected closing parenthesis, got %q", p.cur.Lexeme)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Group{Inner: inner}, nil
	case TokenSymbol:
		label := p.cur.Lexeme
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExpression(precedence[label] + 1)
		if err != nil {
			return nil, err
		}
		return &Operator{Label: label, Left: &Placeholder{}, Right: operand}, nil
	case TokenEOF:
		return nil, fmt.Errorf("unexpected end of input")
	default:
		return nil, fmt.Errorf("unexpected token %q", p.cur.Lexeme)
	}
}
