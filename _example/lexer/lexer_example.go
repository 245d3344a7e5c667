package main

import (
	"fmt"
	"log"

	"github.com/xiam/wisp/lexer"
)

func main() {
	input := `
define (fn_a x)
  fn_b '(89 A B (67 3.27))
  fn_c 66 3 53 "Hello world!"
`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		start, end := tok.Offsets()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, offsets: %d-%d, width: %d)\n\t-> %q\n\n", i, tt, tok.Line(), start, end, tok.Width(), lexeme)
	}
}
