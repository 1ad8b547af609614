// Package ast defines the expression tree built by the parser.
package ast

import (
	"fmt"

	"github.com/sexpcalc/sexpcalc/lexer"
)

// Node represents a node of the expression tree: either an integer leaf or
// an operator applied to exactly two children. A binary node exclusively
// owns its subtrees; nodes are never mutated after construction.
type Node struct {
	nt  NodeType
	tok lexer.Token

	value int64

	op    byte
	left  *Node
	right *Node
}

// NewInt creates and returns a leaf node holding an integer value
func NewInt(tok lexer.Token, v int64) *Node {
	return &Node{
		nt:    NodeTypeInt,
		tok:   tok,
		value: v,
	}
}

// NewBinary creates and returns a node applying an operator to two subtrees
func NewBinary(tok lexer.Token, op byte, left, right *Node) *Node {
	return &Node{
		nt:    NodeTypeBinary,
		tok:   tok,
		op:    op,
		left:  left,
		right: right,
	}
}

// Token returns the token associated to the node
func (n Node) Token() lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Int returns the integer value of a leaf node
func (n Node) Int() int64 {
	return n.value
}

// Op returns the operator character of a binary node
func (n Node) Op() byte {
	return n.op
}

// Left returns the first operand of a binary node
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the second operand of a binary node
func (n *Node) Right() *Node {
	return n.right
}

func (n Node) String() string {
	if n.nt == NodeTypeBinary {
		return fmt.Sprintf("(%v): %c", n.nt, n.op)
	}
	return fmt.Sprintf("(%v): %d", n.nt, n.value)
}
