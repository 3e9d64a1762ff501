package ast

import "fmt"

// Type discriminates the node variants. It is a pure function of the concrete
// node type and never changes over a node's lifetime.
type Type int

const (
	ArrayType Type = iota
	ObjectType
	QuoteType
	StringType
	SymbolType
	WordType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ArrayType:  "Array",
		ObjectType: "Object",
		QuoteType:  "Quote",
		StringType: "String",
		SymbolType: "Symbol",
		WordType:   "Word",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Array":  ArrayType,
		"Object": ObjectType,
		"Quote":  QuoteType,
		"String": StringType,
		"Symbol": SymbolType,
		"Word":   WordType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ArrayType,
		ObjectType,
		QuoteType,
		StringType,
		SymbolType,
		WordType,
	}
}

// IsLeaf reports whether nodes of this type carry no child nodes. A word is
// not a leaf: its payload is a symbol node.
func (t Type) IsLeaf() bool {
	switch t {
	case StringType, SymbolType:
		return true
	default:
		return false
	}
}
