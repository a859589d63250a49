package libdiff

import (
	"fmt"

	"github.com/signadot/tinyjson/debug"
	"github.com/signadot/tinyjson/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Symbol returns the one character marker used when printing o.
func (o Op) Symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Change is one difference between two trees. From is nil for an Insert
// and To is nil for a Delete. Path is the path in the old tree, except for
// an Insert where it is the path in the new tree.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Op.Symbol(), c.Path, c.To)
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Op.Symbol(), c.Path, c.From)
	default:
		return fmt.Sprintf("%s %s %s -> %s", c.Op.Symbol(), c.Path, c.From, c.To)
	}
}

type diffOpts struct {
	arrayKey string
}

type DiffOption func(*diffOpts)

// DiffArrayKey aligns arrays whose elements are all objects with a leaf
// field key by the value of that field, so that elements with the same key
// are compared with each other.
func DiffArrayKey(key string) DiffOption {
	return func(o *diffOpts) { o.arrayKey = key }
}

// Diff returns the changes which turn from into to, in document order.
// Equal trees give no changes.
func Diff(from, to *ir.Node, opts ...DiffOption) []Change {
	d := &differ{}
	for _, f := range opts {
		f(&d.opts)
	}
	d.diff("$", from, to)
	return d.changes
}

type differ struct {
	opts    diffOpts
	changes []Change
}

func (d *differ) add(c Change) {
	if debug.Diff() {
		debug.Logger().Debug("change", "op", c.Op, "path", c.Path)
	}
	d.changes = append(d.changes, c)
}

func (d *differ) diff(path string, from, to *ir.Node) {
	if from.Type() != to.Type() {
		d.add(Change{Op: Replace, Path: path, From: from, To: to})
		return
	}
	switch from.Type() {
	case ir.ObjectType:
		d.diffObject(path, from, to)
	case ir.ArrayType:
		d.diffArray(path, from, to)
	default:
		if !ir.Equal(from, to) {
			d.add(Change{Op: Replace, Path: path, From: from, To: to})
		}
	}
}
