package parser

import (
	"fmt"

	"github.com/sexpcalc/sexpcalc/lexer"
)

// UnexpectedTokenError reports a token that does not satisfy the grammar at
// the current position. Expected names the grammar category that was
// required there ("expression", "operator").
type UnexpectedTokenError struct {
	Expected string
	Actual   lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	line, col := e.Actual.Pos()
	return fmt.Sprintf("%d:%d: expected %s, got %v", line, col, e.Expected, e.Actual.Type())
}

// ExpectedTokenError reports the absence of a specific required token, such
// as a closing parenthesis.
type ExpectedTokenError struct {
	Expected lexer.TokenType
	Actual   lexer.Token
}

func (e *ExpectedTokenError) Error() string {
	line, col := e.Actual.Pos()
	return fmt.Sprintf("%d:%d: expected %v, got %v", line, col, e.Expected, e.Actual.Type())
}

// TrailingInputError reports unconsumed tokens left over after a complete
// expression was parsed.
type TrailingInputError struct {
	Actual lexer.Token
}

func (e *TrailingInputError) Error() string {
	line, col := e.Actual.Pos()
	return fmt.Sprintf("%d:%d: trailing input after expression, got %v", line, col, e.Actual.Type())
}

// MalformedNumberError reports an integer token whose text could not be
// parsed. The lexer only emits digit runs, so in practice this means the
// literal does not fit in an int64.
type MalformedNumberError struct {
	Token lexer.Token
	Err   error
}

func (e *MalformedNumberError) Error() string {
	line, col := e.Token.Pos()
	return fmt.Sprintf("%d:%d: malformed number %q", line, col, e.Token.Text())
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}
