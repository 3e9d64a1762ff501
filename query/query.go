package query

import (
	"fmt"

	"github.com/plorth/go-plorth/ast"
	"github.com/plorth/go-plorth/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is the environment a predicate expression evaluates in, one instance
// per visited node.
type Env struct {
	Type  string `expr:"type"`
	Value string `expr:"value"`
	ID    string `expr:"id"`
	Len   int    `expr:"len"`
	Line  int    `expr:"line"`
	Depth int    `expr:"depth"`
}

// Query is a compiled predicate over nodes.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles an expr-lang predicate. The expression must evaluate to a
// boolean.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src,
		expr.Env(Env{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates the predicate against a single node at depth 0.
func (q *Query) Match(n ast.Node) (bool, error) {
	return q.match(n, 0)
}

func (q *Query) match(n ast.Node, depth int) (bool, error) {
	res, err := expr.Run(q.prg, nodeEnv(n, depth))
	if err != nil {
		return false, fmt.Errorf("running query %q: %w", q.src, err)
	}
	return res.(bool), nil
}

// Select walks the tree under root and returns the nodes matching the
// predicate, in traversal order.
func (q *Query) Select(root ast.Node) ([]ast.Node, error) {
	var (
		res     []ast.Node
		walkErr error
	)
	Walk(root, func(n ast.Node, depth int) bool {
		ok, err := q.match(n, depth)
		if err != nil {
			walkErr = err
			return false
		}
		if ok {
			if debug.Query() {
				debug.Logf("query %q matched %s node at %s\n", q.src, n.Type(), n.Pos())
			}
			res = append(res, n)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return res, nil
}

func nodeEnv(n ast.Node, depth int) Env {
	env := Env{Depth: depth}
	if n == nil {
		return env
	}
	env.Type = n.Type().String()
	env.Line = n.Pos().Line
	switch x := n.(type) {
	case *ast.Array:
		env.Len = len(x.Elements())
	case *ast.Object:
		env.Len = len(x.Properties())
	case *ast.Quote:
		env.Len = len(x.Children())
	case *ast.String:
		env.Value = x.Value()
	case *ast.Symbol:
		env.ID = x.ID()
	case *ast.Word:
		env.ID = x.Symbol().ID()
	}
	return env
}
