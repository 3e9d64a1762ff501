package ast

import (
	"slices"

	"github.com/plorth/go-plorth/token"
)

// Node is a single piece of parsed source structure. All nodes carry the
// position at which they were found and a type discriminator for dispatch.
// Nodes are immutable once constructed and safe to share between goroutines
// and between containers; containment is tree shaped, never cyclic.
type Node interface {
	// Pos returns the position in source code where the node was found.
	Pos() token.Pos

	// Type returns the variant of the node. It is authoritative: a node
	// reporting ArrayType is always an *Array, and so on for each variant.
	Type() Type

	node()
}

// Array is an array literal: an ordered sequence of element nodes.
type Array struct {
	pos      token.Pos
	elements []Node
}

// NewArray builds an array literal node. The elements slice is copied;
// the element handles themselves are stored as given.
func NewArray(pos token.Pos, elements []Node) *Array {
	return &Array{pos: pos, elements: slices.Clone(elements)}
}

func (a *Array) Pos() token.Pos { return a.pos }
func (a *Array) Type() Type     { return ArrayType }
func (a *Array) node()          {}

// Elements returns the elements of the array in source order. The returned
// slice is shared with the node and must not be modified.
func (a *Array) Elements() []Node { return a.elements }

// Property is one key/value pair of an object literal.
type Property struct {
	Key   string
	Value Node
}

// Object is an object literal: an ordered sequence of key/value pairs.
// Insertion order is source order and is preserved. Duplicate keys are legal
// at this layer and kept as distinct pairs.
type Object struct {
	pos        token.Pos
	properties []Property
}

// NewObject builds an object literal node. The properties slice is copied.
func NewObject(pos token.Pos, properties []Property) *Object {
	return &Object{pos: pos, properties: slices.Clone(properties)}
}

func (o *Object) Pos() token.Pos { return o.pos }
func (o *Object) Type() Type     { return ObjectType }
func (o *Object) node()          {}

// Properties returns the properties of the object in source order. The
// returned slice is shared with the node and must not be modified.
func (o *Object) Properties() []Property { return o.properties }

// Quote is a quote literal: a nested block of child nodes to be executed
// later. It contains children exactly like an array but is a distinct
// variant.
type Quote struct {
	pos      token.Pos
	children []Node
}

// NewQuote builds a quote literal node. The children slice is copied.
func NewQuote(pos token.Pos, children []Node) *Quote {
	return &Quote{pos: pos, children: slices.Clone(children)}
}

func (q *Quote) Pos() token.Pos { return q.pos }
func (q *Quote) Type() Type     { return QuoteType }
func (q *Quote) node()          {}

// Children returns the child nodes of the quote in source order. The
// returned slice is shared with the node and must not be modified.
func (q *Quote) Children() []Node { return q.children }

// String is a string literal.
type String struct {
	pos   token.Pos
	value string
}

func NewString(pos token.Pos, value string) *String {
	return &String{pos: pos, value: value}
}

func (s *String) Pos() token.Pos { return s.pos }
func (s *String) Type() Type     { return StringType }
func (s *String) node()          {}

// Value returns the text contents of the string literal.
func (s *String) Value() string { return s.value }

// Symbol is an identifier. Whether the identifier is lexically valid is the
// producer's concern, not this layer's.
type Symbol struct {
	pos token.Pos
	id  string
}

func NewSymbol(pos token.Pos, id string) *Symbol {
	return &Symbol{pos: pos, id: id}
}

func (s *Symbol) Pos() token.Pos { return s.pos }
func (s *Symbol) Type() Type     { return SymbolType }
func (s *Symbol) node()          {}

// ID returns the identifier of the symbol.
func (s *Symbol) ID() string { return s.id }

// Word is a word definition. Its payload is constrained to a symbol node;
// the field type makes a word with any other payload unrepresentable.
type Word struct {
	pos    token.Pos
	symbol *Symbol
}

// NewWord builds a word definition node. It panics if symbol is nil: a word
// without a backing symbol is malformed and cannot be represented.
func NewWord(pos token.Pos, symbol *Symbol) *Word {
	if symbol == nil {
		panic("ast: NewWord with nil symbol")
	}
	return &Word{pos: pos, symbol: symbol}
}

func (w *Word) Pos() token.Pos { return w.pos }
func (w *Word) Type() Type     { return WordType }
func (w *Word) node()          {}

// Symbol returns the symbol naming the word. It is never nil.
func (w *Word) Symbol() *Symbol { return w.symbol }
