package main

import (
	"io"
	"os"

	"github.com/signadot/tinyjson/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='output with color'"`
	NoEmpty  bool `cli:"name=noEmpty desc='reject empty arrays and objects'"`
	Strict   bool `cli:"name=strict desc='reject numbers with missing digits'"`
	Complete bool `cli:"name=complete desc='require exactly one value per input'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth (0 for none)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseEmptyCollections(!cfg.NoEmpty),
		parse.ParseStrictNumbers(cfg.Strict),
		parse.ParseComplete(cfg.Complete),
		parse.ParseMaxDepth(cfg.MaxDepth),
	}
}

// colors returns the colors to write to w with: those asked for with
// -color, and otherwise colors if w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *Colors {
	if cfg.Color {
		color.NoColor = false
		return NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return PlainColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return PlainColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return NewColors()
	}
	return PlainColors()
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report failures'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type GetConfig struct {
	*MainConfig
	List bool `cli:"name=l aliases=list desc='allow [*] and .. and print every match'"`

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Key     string `cli:"name=key desc='align arrays of objects by this field'"`
	Exit    bool   `cli:"name=exit desc='exit with status 1 if there are differences'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}
