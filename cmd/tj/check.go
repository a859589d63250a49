package main

import (
	"github.com/signadot/tinyjson/ir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	log := newLog(cc.Out)
	failed := 0
	for _, file := range args {
		n := 0
		err := cfg.eachFileDoc(file, func(_ string, _ int, _ *ir.Node) error {
			n++
			return nil
		})
		if err != nil {
			failed++
			log.Error("failed", "file", file, "err", err)
			continue
		}
		if !cfg.Quiet {
			log.Info("ok", "file", file, "documents", n)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
