package main

import (
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/libdiff"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	PathColor
	TypeColor
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

// Colors holds the coloring functions for output.
type Colors struct {
	Map map[Colorable]func(string, ...any) string
	Ops map[libdiff.Op]func(string, ...any) string
}

func NewColors() *Colors {
	colors := PlainColors()
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: TypeColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: PathColor}] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Type = ir.ArrayType
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	able.Type = ir.ObjectType
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	colors.Ops[libdiff.Insert] = color.GreenString
	colors.Ops[libdiff.Delete] = color.RedString
	colors.Ops[libdiff.Replace] = color.YellowString
	return colors
}

// PlainColors returns Colors which leave their input unchanged.
func PlainColors() *Colors {
	return &Colors{
		Map: map[Colorable]func(string, ...any) string{},
		Ops: map[libdiff.Op]func(string, ...any) string{},
	}
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return s
	}
	return f("%s", s)
}

func (c *Colors) Op(o libdiff.Op, s string) string {
	f := c.Ops[o]
	if f == nil {
		return s
	}
	return f("%s", s)
}
