package sexpcalc

import (
	"fmt"

	"github.com/sexpcalc/sexpcalc/ast"
	"github.com/sexpcalc/sexpcalc/lexer"
)

// DivisionByZeroError reports a division whose right operand evaluated to
// zero. Token is the operator token of the offending division.
type DivisionByZeroError struct {
	Token lexer.Token
}

func (e *DivisionByZeroError) Error() string {
	line, col := e.Token.Pos()
	return fmt.Sprintf("%d:%d: division by zero", line, col)
}

// Eval reduces an expression tree to a single integer. Subtrees are
// evaluated left before right; division is native int64 division,
// truncating toward zero.
func Eval(n *ast.Node) (int64, error) {
	switch n.Type() {

	case ast.NodeTypeInt:
		return n.Int(), nil

	case ast.NodeTypeBinary:
		left, err := Eval(n.Left())
		if err != nil {
			return 0, err
		}

		right, err := Eval(n.Right())
		if err != nil {
			return 0, err
		}

		switch n.Op() {
		case '+':
			return left + right, nil
		case '-':
			return left - right, nil
		case '*':
			return left * right, nil
		case '/':
			if right == 0 {
				return 0, &DivisionByZeroError{Token: n.Token()}
			}
			return left / right, nil
		}
	}

	// unreachable for trees built by the parser
	return 0, fmt.Errorf("unknown node %v", n)
}
