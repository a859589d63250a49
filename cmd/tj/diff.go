package main

import (
	"fmt"

	"github.com/signadot/tinyjson/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := cfg.parseFile(args[0])
	if err != nil {
		return err
	}
	to, err := cfg.parseFile(args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	var opts []libdiff.DiffOption
	if cfg.Key != "" {
		opts = append(opts, libdiff.DiffArrayKey(cfg.Key))
	}
	changes := libdiff.Diff(from, to, opts...)
	colors := cfg.colors(cc.Out)
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, colors.Op(c.Op, c.String())); err != nil {
			return err
		}
	}
	if cfg.Exit && len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
