package main

import (
	"encoding/json"
	"fmt"

	"github.com/plorth/go-plorth/ast"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range argsOrStdin(args) {
		node, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		var d []byte
		if cfg.Y {
			d, err = yaml.Marshal(ast.ToJSONAny(node))
		} else {
			d, err = json.MarshalIndent(node, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
		if !cfg.Y {
			d = append(d, '\n')
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
