package main

import (
	"fmt"
	"io"

	"github.com/signadot/tinyjson/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	return cfg.eachDoc(args, func(file string, i int, y *ir.Node) error {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := dumpNode(cc.Out, colors, "$", y); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
		return nil
	})
}

// dumpNode writes y and its descendants, one per line, each preceded by
// its path.
func dumpNode(w io.Writer, colors *Colors, path string, y *ir.Node) error {
	_, err := fmt.Fprintf(w, "%s %s\n",
		colors.Color(y.Type(), PathColor, path),
		colors.Color(y.Type(), ValueColor, y.String()))
	if err != nil {
		return err
	}
	for i, v := range y.Values() {
		if err := dumpNode(w, colors, ir.PathIndex(path, i), v); err != nil {
			return err
		}
	}
	for k, v := range y.Fields() {
		if err := dumpNode(w, colors, ir.PathField(path, k), v); err != nil {
			return err
		}
	}
	return nil
}
