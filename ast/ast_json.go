package ast

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/plorth/go-plorth/token"
)

// The JSON interchange form is the contract between an external parser front
// end and consumers of this package. Each node encodes as an object with
// "type", "position" and one variant-specific payload key. Decoding restores
// the tree handle for handle: order, duplicate object keys and string
// payloads survive a round trip unchanged.

type wireBase struct {
	Type Type      `json:"type"`
	Pos  token.Pos `json:"position"`
}

func (a *Array) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		Elements []Node `json:"elements"`
	}
	return json.Marshal(wire{wireBase{ArrayType, a.pos}, a.elements})
}

type wireProperty struct {
	Key   string `json:"key"`
	Value Node   `json:"value"`
}

func (o *Object) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		Properties []wireProperty `json:"properties"`
	}
	props := make([]wireProperty, len(o.properties))
	for i, prop := range o.properties {
		props[i] = wireProperty{Key: prop.Key, Value: prop.Value}
	}
	return json.Marshal(wire{wireBase{ObjectType, o.pos}, props})
}

func (q *Quote) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		Children []Node `json:"children"`
	}
	return json.Marshal(wire{wireBase{QuoteType, q.pos}, q.children})
}

func (s *String) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		Value string `json:"value"`
	}
	return json.Marshal(wire{wireBase{StringType, s.pos}, s.value})
}

func (s *Symbol) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		ID string `json:"id"`
	}
	return json.Marshal(wire{wireBase{SymbolType, s.pos}, s.id})
}

func (w *Word) MarshalJSON() ([]byte, error) {
	type wire struct {
		wireBase
		Symbol *Symbol `json:"symbol"`
	}
	return json.Marshal(wire{wireBase{WordType, w.pos}, w.symbol})
}

// Decode restores a node from its JSON interchange form.
func Decode(d []byte) (Node, error) {
	return decodeNode(d)
}

// DecodeReader reads all of r and decodes it like [Decode].
func DecodeReader(r io.Reader) (Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Decode(d)
}

func decodeNode(d json.RawMessage) (Node, error) {
	var tmp struct {
		Type       json.RawMessage   `json:"type"`
		Pos        token.Pos         `json:"position"`
		Elements   []json.RawMessage `json:"elements"`
		Properties []struct {
			Key   string          `json:"key"`
			Value json.RawMessage `json:"value"`
		} `json:"properties"`
		Children []json.RawMessage `json:"children"`
		Value    string            `json:"value"`
		ID       string            `json:"id"`
		Symbol   json.RawMessage   `json:"symbol"`
	}
	if err := json.Unmarshal(d, &tmp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(tmp.Type) == 0 {
		return nil, fmt.Errorf("%w: missing node type", ErrDecode)
	}
	var typeName string
	if err := json.Unmarshal(tmp.Type, &typeName); err != nil {
		return nil, fmt.Errorf("%w: node type must be a string: %s", ErrDecode, tmp.Type)
	}
	var typ Type
	if err := typ.UnmarshalText([]byte(typeName)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	switch typ {
	case ArrayType:
		elts, err := decodeNodes(tmp.Elements)
		if err != nil {
			return nil, err
		}
		return NewArray(tmp.Pos, elts), nil
	case ObjectType:
		props := make([]Property, len(tmp.Properties))
		for i, p := range tmp.Properties {
			val, err := decodeNode(p.Value)
			if err != nil {
				return nil, err
			}
			props[i] = Property{Key: p.Key, Value: val}
		}
		return NewObject(tmp.Pos, props), nil
	case QuoteType:
		children, err := decodeNodes(tmp.Children)
		if err != nil {
			return nil, err
		}
		return NewQuote(tmp.Pos, children), nil
	case StringType:
		return NewString(tmp.Pos, tmp.Value), nil
	case SymbolType:
		return NewSymbol(tmp.Pos, tmp.ID), nil
	case WordType:
		if len(tmp.Symbol) == 0 {
			return nil, fmt.Errorf("%w: %w: missing symbol", ErrDecode, ErrMalformedWord)
		}
		symNode, err := decodeNode(tmp.Symbol)
		if err != nil {
			return nil, err
		}
		sym, ok := symNode.(*Symbol)
		if !ok {
			return nil, fmt.Errorf("%w: %w: got %s", ErrDecode, ErrMalformedWord, symNode.Type())
		}
		return NewWord(tmp.Pos, sym), nil
	}
	return nil, fmt.Errorf("%w: unrecognized node type %d", ErrDecode, typ)
}

func decodeNodes(raw []json.RawMessage) ([]Node, error) {
	nodes := make([]Node, len(raw))
	for i, d := range raw {
		n, err := decodeNode(d)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	return nodes, nil
}

// ToJSONAny converts a node to the interchange form built from plain maps and
// slices, suitable for re-encoding in formats other than JSON.
func ToJSONAny(n Node) any {
	res := map[string]any{
		"type":     n.Type().String(),
		"position": posAny(n.Pos()),
	}
	switch x := n.(type) {
	case *Array:
		elts := make([]any, len(x.elements))
		for i, elt := range x.elements {
			elts[i] = ToJSONAny(elt)
		}
		res["elements"] = elts
	case *Object:
		props := make([]any, len(x.properties))
		for i, prop := range x.properties {
			props[i] = map[string]any{
				"key":   prop.Key,
				"value": ToJSONAny(prop.Value),
			}
		}
		res["properties"] = props
	case *Quote:
		children := make([]any, len(x.children))
		for i, c := range x.children {
			children[i] = ToJSONAny(c)
		}
		res["children"] = children
	case *String:
		res["value"] = x.value
	case *Symbol:
		res["id"] = x.id
	case *Word:
		res["symbol"] = ToJSONAny(x.symbol)
	}
	return res
}

func posAny(pos token.Pos) any {
	res := map[string]any{
		"line":   pos.Line,
		"column": pos.Column,
	}
	if pos.Filename != "" {
		res["filename"] = pos.Filename
	}
	return res
}
