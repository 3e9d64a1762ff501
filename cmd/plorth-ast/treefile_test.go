package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plorth/go-plorth/ast"

	"github.com/scott-cotton/cli"
)

const symbolDoc = `{"type":"Symbol","position":{"line":1,"column":1},"id":"dup"}`

func TestGetTreeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.json")
	if err := os.WriteFile(path, []byte(symbolDoc), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	node, err := getTreeFile(&cli.Context{}, path)
	if err != nil {
		t.Fatalf("getTreeFile: %v", err)
	}
	if node.Type() != ast.SymbolType {
		t.Errorf("Type() = %s, want Symbol", node.Type())
	}
	if node.(*ast.Symbol).ID() != "dup" {
		t.Errorf("ID() = %q, want %q", node.(*ast.Symbol).ID(), "dup")
	}
}

func TestGetTreeFileStdin(t *testing.T) {
	cc := &cli.Context{In: io.NopCloser(strings.NewReader(symbolDoc))}
	node, err := getTreeFile(cc, "-")
	if err != nil {
		t.Fatalf("getTreeFile: %v", err)
	}
	if node.Type() != ast.SymbolType {
		t.Errorf("Type() = %s, want Symbol", node.Type())
	}
}

func TestGetTreeFileErrors(t *testing.T) {
	if _, err := getTreeFile(&cli.Context{}, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Errorf("missing file accepted")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := getTreeFile(&cli.Context{}, path); err == nil {
		t.Errorf("malformed file accepted")
	}
}
