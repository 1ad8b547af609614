package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sexpcalc/sexpcalc/ast"
	"github.com/sexpcalc/sexpcalc/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  `5`,
			Out: `5`,
		},
		{
			In:  `(+ 1 2)`,
			Out: `(+ 1 2)`,
		},
		{
			In:  "(+\n\t1\n\t2)",
			Out: `(+ 1 2)`,
		},
		{
			In:  `(- 10 (* 2 3))`,
			Out: `(- 10 (* 2 3))`,
		},
		{
			In:  `(* (- 7 4) (+ (/ 26 2) 1))`,
			Out: `(* (- 7 4) (+ (/ 26 2) 1))`,
		},
		{
			In:  `  ( /  26   2 )  `,
			Out: `(/ 26 2)`,
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))
		require.NoError(t, err, "case %d: %q", i, testCases[i].In)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)), "case %d", i)
	}
}

func TestParserLeafNode(t *testing.T) {
	root, err := Parse([]byte(`5`))
	require.NoError(t, err)

	assert.Equal(t, ast.NodeTypeInt, root.Type())
	assert.Equal(t, int64(5), root.Int())
}

func TestParserBinaryNode(t *testing.T) {
	root, err := Parse([]byte(`(+ 1 (* 2 3))`))
	require.NoError(t, err)

	require.Equal(t, ast.NodeTypeBinary, root.Type())
	assert.Equal(t, byte('+'), root.Op())
	assert.Equal(t, ast.NodeTypeInt, root.Left().Type())
	assert.Equal(t, ast.NodeTypeBinary, root.Right().Type())
}

func TestParserTrailingInput(t *testing.T) {
	for _, in := range []string{
		`(+ 1 2) 3`,
		`(+ 1 2))`,
		`1 2`,
	} {
		_, err := Parse([]byte(in))
		require.Error(t, err, "input %q", in)

		var trailingErr *TrailingInputError
		assert.True(t, errors.As(err, &trailingErr), "input %q: %v", in, err)
	}
}

func TestParserMissingOperand(t *testing.T) {
	// the second operand is missing, so the closing parenthesis shows up
	// where an expression is required
	_, err := Parse([]byte(`(+ 1)`))
	require.Error(t, err)

	var unexpectedErr *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpectedErr), "%v", err)
	assert.Equal(t, "expression", unexpectedErr.Expected)
	assert.Equal(t, lexer.TokenCloseParen, unexpectedErr.Actual.Type())
}

func TestParserMissingCloseParen(t *testing.T) {
	_, err := Parse([]byte(`(+ 1 2`))
	require.Error(t, err)

	var expectedErr *ExpectedTokenError
	require.True(t, errors.As(err, &expectedErr), "%v", err)
	assert.Equal(t, lexer.TokenCloseParen, expectedErr.Expected)
	assert.Equal(t, lexer.TokenEOF, expectedErr.Actual.Type())
}

func TestParserExpectedOperator(t *testing.T) {
	for _, in := range []string{
		`(% 1 2)`,
		`(1 2 3)`,
		`()`,
	} {
		_, err := Parse([]byte(in))
		require.Error(t, err, "input %q", in)

		var unexpectedErr *UnexpectedTokenError
		require.True(t, errors.As(err, &unexpectedErr), "input %q: %v", in, err)
		assert.Equal(t, "operator", unexpectedErr.Expected, "input %q", in)
	}
}

func TestParserExpectedExpression(t *testing.T) {
	for _, in := range []string{
		``,
		`   `,
		`)`,
		`%`,
	} {
		_, err := Parse([]byte(in))
		require.Error(t, err, "input %q", in)

		var unexpectedErr *UnexpectedTokenError
		require.True(t, errors.As(err, &unexpectedErr), "input %q: %v", in, err)
		assert.Equal(t, "expression", unexpectedErr.Expected, "input %q", in)
	}
}

func TestParserMalformedNumber(t *testing.T) {
	// a digit run that overflows int64
	_, err := Parse([]byte(`99999999999999999999`))
	require.Error(t, err)

	var malformedErr *MalformedNumberError
	require.True(t, errors.As(err, &malformedErr), "%v", err)
	assert.Equal(t, "99999999999999999999", malformedErr.Token.Text())
	assert.Error(t, malformedErr.Unwrap())
}

func TestParserErrorPosition(t *testing.T) {
	_, err := Parse([]byte("(+ 1\n   ?)"))
	require.Error(t, err)

	var unexpectedErr *UnexpectedTokenError
	require.True(t, errors.As(err, &unexpectedErr), "%v", err)

	line, col := unexpectedErr.Actual.Pos()
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)
}

func TestParserFirstTokenScannedOnNew(t *testing.T) {
	lx := lexer.New(`5`)
	p := New(lx)

	// New performs the first scan, so the lexer already sits on a token
	assert.True(t, lx.Current().Is(lexer.TokenInteger))

	root, err := p.Parse()
	require.NoError(t, err)
	assert.Equal(t, int64(5), root.Int())
	assert.True(t, lx.Done())
}
