package main

import (
	"fmt"
	"log"

	"github.com/sexpcalc/sexpcalc"
	"github.com/sexpcalc/sexpcalc/ast"
)

func main() {
	input := `(* (- 7 4) (+ (/ 26 2) 1))`

	root, err := sexpcalc.Parse([]byte(input))
	if err != nil {
		log.Fatal("sexpcalc.Parse:", err)
	}

	ast.Print(root)

	result, err := sexpcalc.Eval(root)
	if err != nil {
		log.Fatal("sexpcalc.Eval:", err)
	}

	fmt.Printf("%s = %d\n", ast.Encode(root), result)
}
