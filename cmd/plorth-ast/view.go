package main

import (
	"fmt"

	"github.com/plorth/go-plorth/debug"
	"github.com/plorth/go-plorth/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		node, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		if debug.Encode() {
			debug.Logf("encoding %s node from %s\n", node.Type(), arg)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
