package ast_test

import (
	"fmt"

	"github.com/plorth/go-plorth/ast"
	"github.com/plorth/go-plorth/token"
)

// A parser builds trees bottom-up: leaves first, composites from the
// already-built handles. Consumers dispatch on the discriminator.
func Example() {
	pos := token.Pos{Filename: "hello.plorth", Line: 1, Column: 1}
	quote := ast.NewQuote(pos, []ast.Node{
		ast.NewString(pos, "hello, world"),
		ast.NewSymbol(pos, "println"),
	})
	program := ast.NewArray(pos, []ast.Node{quote})

	for _, elt := range program.Elements() {
		switch elt.Type() {
		case ast.QuoteType:
			fmt.Println("quote with", len(elt.(*ast.Quote).Children()), "children")
		default:
			fmt.Println(elt.Type())
		}
	}
	// Output: quote with 2 children
}
