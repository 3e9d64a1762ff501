package query

import "github.com/plorth/go-plorth/ast"

// Walk traverses the tree rooted at node depth first, children in insertion
// order, calling fn for each node with its depth below the root. A false
// return from fn skips the node's children. A word's symbol counts as its
// only child.
func Walk(node ast.Node, fn func(n ast.Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node ast.Node, depth int, fn func(n ast.Node, depth int) bool) {
	if !fn(node, depth) {
		return
	}
	switch x := node.(type) {
	case *ast.Array:
		for _, elt := range x.Elements() {
			walk(elt, depth+1, fn)
		}
	case *ast.Object:
		for _, prop := range x.Properties() {
			walk(prop.Value, depth+1, fn)
		}
	case *ast.Quote:
		for _, c := range x.Children() {
			walk(c, depth+1, fn)
		}
	case *ast.Word:
		walk(x.Symbol(), depth+1, fn)
	}
}
