package main

import (
	"fmt"

	"github.com/plorth/go-plorth/encode"
	"github.com/plorth/go-plorth/query"

	"github.com/scott-cotton/cli"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a predicate", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		node, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		matches, err := q.Select(node)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		for _, m := range matches {
			src := encode.MustString(m, encode.EncodeWire(true))
			if _, err := fmt.Fprintf(cc.Out, "%s: %s\n", m.Pos(), src); err != nil {
				return err
			}
		}
	}
	return nil
}
