package ast

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Positions take no part in the comparison.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type())
	rankB := rank(b.Type())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type() {
	case StringType:
		return strings.Compare(a.(*String).Value(), b.(*String).Value())
	case SymbolType:
		return strings.Compare(a.(*Symbol).ID(), b.(*Symbol).ID())
	case WordType:
		return Compare(a.(*Word).Symbol(), b.(*Word).Symbol())
	case QuoteType:
		return compareNodes(a.(*Quote).Children(), b.(*Quote).Children())
	case ArrayType:
		return compareNodes(a.(*Array).Elements(), b.(*Array).Elements())
	case ObjectType:
		return compareObjects(a.(*Object), b.(*Object))
	}
	return 0
}

// Equal reports whether two nodes are structurally equal, positions aside.
func Equal(a, b Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: String < Symbol < Word < Quote < Array < Object
func rank(t Type) int {
	switch t {
	case StringType:
		return 0
	case SymbolType:
		return 1
	case WordType:
		return 2
	case QuoteType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNodes(a, b []Node) int {
	minLen := min(len(a), len(b))
	for i := 0; i < minLen; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareObjects(a, b *Object) int {
	aProps := a.Properties()
	bProps := b.Properties()
	minLen := min(len(aProps), len(bProps))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(aProps[i].Key, bProps[i].Key); c != 0 {
			return c
		}
		if c := Compare(aProps[i].Value, bProps[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aProps), len(bProps))
}
