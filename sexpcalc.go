// Package sexpcalc evaluates parenthesized prefix arithmetic expressions
// over integers, e.g. (* (- 7 4) (+ (/ 26 2) 1)) evaluates to 42.
//
// The pipeline is tokenize, parse, evaluate: the lexer package turns source
// text into tokens, the parser package builds an expression tree out of
// them, and Eval reduces the tree to a single integer.
package sexpcalc

import (
	"github.com/sexpcalc/sexpcalc/ast"
	"github.com/sexpcalc/sexpcalc/parser"
)

// Parse builds an expression tree out of the given input.
func Parse(in []byte) (*ast.Node, error) {
	return parser.Parse(in)
}

// EvalString tokenizes, parses and evaluates a single expression. It holds
// no state between calls: evaluating the same source any number of times
// yields the same result.
func EvalString(src string) (int64, error) {
	node, err := parser.Parse([]byte(src))
	if err != nil {
		return 0, err
	}
	return Eval(node)
}
