// Package parser builds expression trees out of prefix arithmetic source.
//
// The grammar is binary only:
//
//	expr := INTEGER | '(' op expr expr ')'
//	op   := '+' | '-' | '*' | '/'
//
// Every grammar violation is an immediate, unrecoverable failure: the parser
// returns either a complete tree or a typed error, never a partial result.
package parser

import (
	"strconv"

	"github.com/sexpcalc/sexpcalc/ast"
	"github.com/sexpcalc/sexpcalc/lexer"
)

// Parser consumes tokens from a lexer, one at a time, and builds an
// expression tree by recursive descent. It carries no state of its own
// beyond the lexer's current token.
type Parser struct {
	lx *lexer.Lexer
}

// New creates a parser over the given lexer and scans the first token, so
// that the current token is always meaningful inside the parser.
func New(lx *lexer.Lexer) *Parser {
	lx.Scan()
	return &Parser{lx: lx}
}

// Parse matches a single expression and requires the input to be fully
// consumed afterwards.
func (p *Parser) Parse() (*ast.Node, error) {
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !p.lx.Done() {
		return nil, &TrailingInputError{Actual: p.curr()}
	}

	return node, nil
}

func (p *Parser) curr() lexer.Token {
	return p.lx.Current()
}

// next returns the current token and advances the lexer past it.
func (p *Parser) next() lexer.Token {
	tok := p.lx.Current()
	p.lx.Scan()
	return tok
}

// consume requires the current token to be of the given type, advances past
// it and returns it.
func (p *Parser) consume(tt lexer.TokenType) (lexer.Token, error) {
	tok := p.curr()
	if !tok.Is(tt) {
		return tok, &ExpectedTokenError{Expected: tt, Actual: tok}
	}
	return p.next(), nil
}

func (p *Parser) parseExpression() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {

	case lexer.TokenInteger:
		p.next()
		v, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, &MalformedNumberError{Token: tok, Err: err}
		}
		return ast.NewInt(tok, v), nil

	case lexer.TokenOpenParen:
		return p.parseBinary()

	default:
		return nil, &UnexpectedTokenError{Expected: "expression", Actual: tok}
	}
}

func (p *Parser) parseBinary() (*ast.Node, error) {
	if _, err := p.consume(lexer.TokenOpenParen); err != nil {
		return nil, err
	}

	opTok := p.curr()
	if !opTok.Type().IsOperator() {
		return nil, &UnexpectedTokenError{Expected: "operator", Actual: opTok}
	}
	p.next()

	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.TokenCloseParen); err != nil {
		return nil, err
	}

	return ast.NewBinary(opTok, opTok.Text()[0], left, right), nil
}

// Parse builds an expression tree out of the given input.
func Parse(in []byte) (*ast.Node, error) {
	return New(lexer.New(string(in))).Parse()
}
