package main

import (
	"fmt"
	"io"
	"os"

	"github.com/plorth/go-plorth/ast"
	"github.com/plorth/go-plorth/debug"

	"github.com/scott-cotton/cli"
)

func getTreeFile(cc *cli.Context, path string) (ast.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	node, err := ast.DecodeReader(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	if debug.Decode() {
		debug.Logf("decoded %s node from %s: %s\n", node.Type(), path, node)
	}
	return node, nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
