package query

import (
	"testing"

	"github.com/plorth/go-plorth/ast"
)

func TestCompileErrors(t *testing.T) {
	tests := []string{
		"id ==",          // syntax error
		`id + 3`,         // not a boolean
		`nosuchvar == 1`, // unknown name
	}
	for _, src := range tests {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) succeeded", src)
		}
	}
}

func TestQueryMatch(t *testing.T) {
	tests := []struct {
		src  string
		node ast.Node
		want bool
	}{
		{`type == "Symbol"`, ast.NewSymbol(pos, "dup"), true},
		{`type == "Symbol"`, ast.NewString(pos, "dup"), false},
		{`id == "dup"`, ast.NewSymbol(pos, "dup"), true},
		{`id == "dup"`, ast.NewWord(pos, ast.NewSymbol(pos, "dup")), true},
		{`value == "a"`, ast.NewString(pos, "a"), true},
		{`len > 1`, ast.NewQuote(pos, []ast.Node{ast.NewSymbol(pos, "x"), ast.NewSymbol(pos, "y")}), true},
		{`len > 1`, ast.NewQuote(pos, nil), false},
		{`line == 1`, ast.NewSymbol(pos, "x"), true},
	}
	for _, tt := range tests {
		q, err := Compile(tt.src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.src, err)
		}
		got, err := q.Match(tt.node)
		if err != nil {
			t.Fatalf("Match(%q): %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("%q on %s = %v, want %v", tt.src, tt.node.Type(), got, tt.want)
		}
	}
}

func TestQuerySelect(t *testing.T) {
	q, err := Compile(`type == "Symbol"`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	nodes, err := q.Select(testTree())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("selected %d nodes, want 2", len(nodes))
	}
	if nodes[0].(*ast.Symbol).ID() != "dup" || nodes[1].(*ast.Symbol).ID() != "twice" {
		t.Errorf("selected ids = %q, %q", nodes[0].(*ast.Symbol).ID(), nodes[1].(*ast.Symbol).ID())
	}
}

func TestQuerySelectDepth(t *testing.T) {
	q, err := Compile(`depth == 1`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	nodes, err := q.Select(testTree())
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(nodes) != 3 {
		t.Errorf("selected %d nodes at depth 1, want 3", len(nodes))
	}
}
