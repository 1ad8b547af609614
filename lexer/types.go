package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
	TokenPlus                 // Plus sign: "+"
	TokenMinus                // Minus sign: "-"
	TokenStar                 // Asterisk: "*"
	TokenSlash                // Forward slash: "/"
	TokenInteger              // Run of decimal digits
	TokenEOF                  // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenStar:       "star",
	TokenSlash:      "slash",
	TokenInteger:    "integer",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

var operatorChars = map[TokenType]byte{
	TokenPlus:  '+',
	TokenMinus: '-',
	TokenStar:  '*',
	TokenSlash: '/',
}

// IsOperator returns true if the token type is one of the four arithmetic
// operators.
func (tt TokenType) IsOperator() bool {
	_, ok := operatorChars[tt]
	return ok
}

var singleCharTokens = map[byte]TokenType{
	'(': TokenOpenParen,
	')': TokenCloseParen,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f'
}
