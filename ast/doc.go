// Package ast defines the syntax tree produced by parsing Plorth source code.
//
// # Overview
//
// A Plorth program parses into a tree of [Node] values. Node is a closed
// family of six variants: array, object and quote literals contain further
// nodes; string and symbol are leaves; a word definition wraps exactly one
// symbol. Every node records the source position it was found at.
//
// Nodes are built bottom-up by a parser, leaves first, and are immutable
// afterwards. The same node handle may appear in several containers; sharing
// is safe because nothing mutates a built node, and containment is tree
// shaped, so plain garbage collection covers node lifetime. A fully built
// tree may be read concurrently without synchronization.
//
// # Dispatch
//
// Consumers switch on [Node.Type] and assert to the matching concrete type:
//
//	switch n.Type() {
//	case ast.ArrayType:
//	    for _, elt := range n.(*ast.Array).Elements() { ... }
//	case ast.StringType:
//	    s := n.(*ast.String).Value()
//	...
//	}
//
// The discriminator is authoritative; the assertions above cannot fail on a
// well-formed tree.
//
// # Object keys
//
// Object properties keep their source order, and duplicate keys are kept as
// distinct pairs. Deduplication, if wanted, belongs to the evaluator.
//
// # Interchange form
//
// Nodes marshal to a JSON interchange form and are restored with [Decode].
// The form round-trips order, duplicate keys and positions exactly; see
// ast_json.go.
package ast
