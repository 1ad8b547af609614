package main

import (
	"fmt"

	"github.com/sexpcalc/sexpcalc/lexer"
)

func main() {
	input := `(* (- 7 4) (+ (/ 26 2) 1))`

	tokens := lexer.Tokenize([]byte(input))

	for i, tok := range tokens {
		line, col := tok.Pos()
		text := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, text)
	}
}
