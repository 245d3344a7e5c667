package main

import (
	"log"

	"github.com/xiam/wisp/ast"
	"github.com/xiam/wisp/parser"
)

func main() {
	input := "fn_a\n  fn_b '(89 A B (67 3.27))\n  (fn_c 66 3 53 \"Hello world!\" \"😊\")"

	arena, roots, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(arena, roots...)
}
