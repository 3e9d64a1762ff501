package main

import (
	"fmt"

	"github.com/plorth/go-plorth/ast"
	"github.com/plorth/go-plorth/encode"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	a, err := getTreeFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getTreeFile(cc, args[1])
	if err != nil {
		return err
	}
	if ast.Equal(a, b) {
		return nil
	}
	srcA := encode.MustString(a) + "\n"
	srcB := encode.MustString(b) + "\n"
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(srcA, srcB, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	var out string
	if cfg.Color {
		out = diffCfg.DiffPrettyText(diffs)
	} else {
		out = plainDiff(diffs)
	}
	if _, err := fmt.Fprint(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func plainDiff(diffs []diffpatch.Diff) string {
	res := ""
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			res += "{+" + d.Text + "+}"
		case diffpatch.DiffDelete:
			res += "{-" + d.Text + "-}"
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res
}
