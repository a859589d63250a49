package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
	"github.com/signadot/tinyjson/token"

	"github.com/scott-cotton/cli"
)

func tjMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// eachDoc calls f with every document in files, or in stdin if files is
// empty. A file may hold several concatenated documents unless -complete
// is given.
func (cfg *MainConfig) eachDoc(files []string, f func(file string, i int, y *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := cfg.eachFileDoc(file, f); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *MainConfig) eachFileDoc(file string, f func(file string, i int, y *ir.Node) error) error {
	r, closer, err := openArg(file)
	if err != nil {
		return err
	}
	defer closer()
	if cfg.Complete {
		y, err := parse.ParseReader(r, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		return f(file, 0, y)
	}
	c, err := token.NewReaderCursor(r)
	if err != nil {
		return err
	}
	i := 0
	for y, err := range parse.NewReader(c, cfg.parseOpts()...).All() {
		if err != nil {
			return fmt.Errorf("error decoding %s document %d: %w", file, i, err)
		}
		if err := f(file, i, y); err != nil {
			return err
		}
		i++
	}
	return nil
}

// parseFile reads the first document of file.
func (cfg *MainConfig) parseFile(file string) (*ir.Node, error) {
	r, closer, err := openArg(file)
	if err != nil {
		return nil, err
	}
	defer closer()
	y, err := parse.ParseReader(r, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}

func openArg(file string) (io.Reader, func() error, error) {
	if file == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, f.Close, nil
}
