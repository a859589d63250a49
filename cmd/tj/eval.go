package main

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/signadot/tinyjson/gomap"
	"github.com/signadot/tinyjson/ir"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func tjEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return cfg.eachDoc(args[1:], func(file string, i int, y *ir.Node) error {
		res, err := evalDoc(src, y, cfg.Env)
		if err != nil {
			return fmt.Errorf("error evaluating %s document %d: %w", file, i, err)
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		d, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		_, err = cc.Out.Write(d)
		return err
	})
}

// evalDoc evaluates src with doc and the variables of env.
func evalDoc(src string, doc *ir.Node, env map[string]any) (any, error) {
	v, err := gomap.Convert(doc, gomap.Any())
	if err != nil {
		return nil, err
	}
	runEnv := make(map[string]any, len(env)+1)
	maps.Copy(runEnv, env)
	runEnv["doc"] = v
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, runEnv)
}

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			if res == nil {
				return nil, nil
			}
			return gomap.Convert(res, gomap.Any())
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[0].(string)
			yRes, err := doc.ListPath(nil, path)
			if err != nil {
				return nil, err
			}
			return gomap.Convert(ir.FromSlice(yRes), gomap.Any())
		},
			new(func(string) []any)),
		expr.Function("truth", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := doc.GetPath(path)
			if err != nil {
				return nil, err
			}
			return ir.Truth(res), nil
		},
			new(func(string) bool)),
	}
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	if key == "doc" {
		return fmt.Errorf("%w: %q is reserved for the document", cli.ErrUsage, key)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
