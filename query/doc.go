// Package query provides traversal and predicate queries over syntax trees.
//
// Walk visits every node of a tree depth first in insertion order. Query
// compiles an expr-lang predicate once and evaluates it against each visited
// node; the expression sees the node through a small flat environment:
//
//	type   the variant name ("Array", "Object", "Quote", "String", "Symbol", "Word")
//	value  the payload of a string literal, else ""
//	id     the identifier of a symbol or of a word's symbol, else ""
//	len    the child count of a composite, else 0
//	line   the node's source line
//	depth  the node's depth below the queried root
//
// For example, selecting every symbol spelled "dup":
//
//	q, err := query.Compile(`type == "Symbol" && id == "dup"`)
//	nodes, err := q.Select(root)
package query
