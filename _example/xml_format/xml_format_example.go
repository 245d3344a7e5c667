package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/wisp/ast"
	"github.com/xiam/wisp/parser"
)

func printTree(arena *ast.Arena, roots []ast.Ref) {
	for _, ref := range roots {
		printIndentedTree(arena, ref, 0)
	}
}

func printIndentedTree(arena *ast.Arena, ref ast.Ref, indentationLevel int) {
	node := arena.Node(ref)
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsVector() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		for _, child := range arena.Children(ref) {
			printIndentedTree(arena, child, indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node.Value(), node.Type())
}

func main() {
	input := "fn_a\n  fn_b '(89 A B (67 3.27))\n  (fn_c 66 3 53 \"Hello world!\" \"😊\")"

	arena, roots, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(arena, roots)
}
