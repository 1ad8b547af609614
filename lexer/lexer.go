// Package lexer scans prefix arithmetic source text into tokens.
package lexer

// Lexer represents a lexical analyzer. It produces one token per call to
// Scan; the parser pulls tokens from it on demand.
type Lexer struct {
	src string
	off int

	line int
	col  int

	tok Token
}

// New initializes a Lexer positioned at the start of the source. The current
// token is not meaningful until the first call to Scan.
func New(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  1,
	}
}

// Current returns the most recently scanned token without consuming further
// input.
func (lx *Lexer) Current() Token {
	return lx.tok
}

// Done returns true once the lexer has produced its EOF token. The check is
// token based rather than offset based: a lexer whose offset sits at the end
// of the source is not done until Scan has actually returned TokenEOF.
func (lx *Lexer) Done() bool {
	return lx.tok.tt == TokenEOF
}

// Scan skips whitespace, consumes exactly one token and returns it. At the
// end of the input it returns TokenEOF, and keeps returning it on further
// calls. Unrecognized characters come back as TokenInvalid; rejecting them
// is the parser's job.
func (lx *Lexer) Scan() Token {
	lx.skipWhitespace()

	line, col := lx.line, lx.col

	if lx.off >= len(lx.src) {
		lx.tok = NewToken(TokenEOF, "", line, col)
		return lx.tok
	}

	c := lx.src[lx.off]

	if tt, ok := singleCharTokens[c]; ok {
		lx.tok = NewToken(tt, lx.src[lx.off:lx.off+1], line, col)
		lx.advance()
		return lx.tok
	}

	if isDigit(c) {
		start := lx.off
		for lx.off < len(lx.src) && isDigit(lx.src[lx.off]) {
			lx.advance()
		}
		lx.tok = NewToken(TokenInteger, lx.src[start:lx.off], line, col)
		return lx.tok
	}

	lx.tok = NewToken(TokenInvalid, lx.src[lx.off:lx.off+1], line, col)
	lx.advance()
	return lx.tok
}

func (lx *Lexer) advance() {
	if lx.src[lx.off] == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	lx.off++
}

func (lx *Lexer) skipWhitespace() {
	for lx.off < len(lx.src) && isWhitespace(lx.src[lx.off]) {
		lx.advance()
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the final EOF token.
func Tokenize(in []byte) []Token {
	lx := New(string(in))

	tokens := []Token{}
	for {
		tok := lx.Scan()
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens
		}
	}
}
