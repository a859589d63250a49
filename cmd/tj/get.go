package main

import (
	"fmt"

	"github.com/signadot/tinyjson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	colors := cfg.colors(cc.Out)
	return cfg.eachDoc(args[1:], func(file string, i int, y *ir.Node) error {
		if cfg.List {
			res, err := y.ListPath(nil, path)
			if err != nil {
				return fmt.Errorf("error executing list on %s: %w", file, err)
			}
			for _, r := range res {
				if err := dumpNode(cc.Out, colors, path, r); err != nil {
					return err
				}
			}
			return nil
		}
		res, err := y.GetPath(path)
		if err != nil {
			return fmt.Errorf("error executing get on %s document %d: %w", file, i, err)
		}
		if res == nil {
			return nil
		}
		return dumpNode(cc.Out, colors, path, res)
	})
}
