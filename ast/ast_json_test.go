package ast

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTree() Node {
	return NewArray(p1, []Node{
		NewString(p2, "a"),
		NewQuote(p2, []Node{
			NewSymbol(p3, "dup"),
			NewWord(p3, NewSymbol(p3, "twice")),
		}),
		NewObject(p2, []Property{
			{Key: "x", Value: NewString(p3, "1")},
			{Key: "x", Value: NewString(p3, "2")},
			{Key: "y", Value: NewArray(p3, nil)},
		}),
	})
}

func TestJSONRoundTrip(t *testing.T) {
	want := testTree()
	d, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Decode(d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !Equal(want, got) {
		t.Errorf("round trip changed the tree:\n%s", d)
	}
	// positions survive too
	if got.Pos() != want.Pos() {
		t.Errorf("root Pos() = %v, want %v", got.Pos(), want.Pos())
	}
	q := got.(*Array).Elements()[1].(*Quote)
	if q.Pos() != p2 {
		t.Errorf("quote Pos() = %v, want %v", q.Pos(), p2)
	}
	if diff := cmp.Diff(ToJSONAny(want), ToJSONAny(got)); diff != "" {
		t.Errorf("interchange forms differ (-want +got):\n%s", diff)
	}
}

func TestDecodeDuplicateKeys(t *testing.T) {
	d, err := json.Marshal(testTree())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Decode(d)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	props := got.(*Array).Elements()[2].(*Object).Properties()
	if len(props) != 3 {
		t.Fatalf("len(Properties()) = %d, want 3", len(props))
	}
	if props[0].Key != "x" || props[1].Key != "x" {
		t.Errorf("duplicate keys were not preserved: %q, %q", props[0].Key, props[1].Key)
	}
}

func TestDecodeMalformedWord(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "string payload",
			doc:  `{"type":"Word","position":{"line":1,"column":1},"symbol":{"type":"String","position":{"line":1,"column":3},"value":"foo"}}`,
		},
		{
			name: "missing symbol",
			doc:  `{"type":"Word","position":{"line":1,"column":1}}`,
		},
		{
			name: "null symbol",
			doc:  `{"type":"Word","position":{"line":1,"column":1},"symbol":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			if err == nil {
				t.Fatalf("decode accepted a malformed word")
			}
			if !errors.Is(err, ErrMalformedWord) && !errors.Is(err, ErrDecode) {
				t.Errorf("err = %v, want ErrMalformedWord or ErrDecode", err)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"garbage", "not json"},
		{"missing type", `{"position":{"line":1,"column":1}}`},
		{"unknown type", `{"type":"Number","position":{"line":1,"column":1}}`},
		{"numeric type", `{"type":3,"position":{"line":1,"column":1},"value":"a"}`},
		{"null type", `{"type":null,"position":{"line":1,"column":1}}`},
		{"bad element", `{"type":"Array","position":{"line":1,"column":1},"elements":[{"position":{}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc)); err == nil {
				t.Errorf("decode accepted %q", tt.doc)
			}
		})
	}
}

func TestDecodeReader(t *testing.T) {
	d, err := json.Marshal(NewSymbol(p1, "swap"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := DecodeReader(strings.NewReader(string(d)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.(*Symbol).ID() != "swap" {
		t.Errorf("ID() = %q", got.(*Symbol).ID())
	}
}

func TestToJSONAnyLeaf(t *testing.T) {
	got := ToJSONAny(NewString(p1, "hello"))
	want := map[string]any{
		"type": "String",
		"position": map[string]any{
			"filename": "test.plorth",
			"line":     1,
			"column":   1,
		},
		"value": "hello",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToJSONAny (-want +got):\n%s", diff)
	}
}
