package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plorth/go-plorth/ast"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch file", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %q: %w", args[0], err)
	}
	p, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("error decoding patch %q: %w", args[0], err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		node, err := getTreeFile(cc, arg)
		if err != nil {
			return err
		}
		doc, err := json.Marshal(node)
		if err != nil {
			return err
		}
		patched, err := p.Apply(doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		// the patched document must still be a well-formed tree
		res, err := ast.Decode(patched)
		if err != nil {
			return fmt.Errorf("patch result for %s is not a valid tree: %w", arg, err)
		}
		d, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
