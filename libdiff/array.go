package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/tinyjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffArray aligns the elements of from and to. Runs of deleted elements
// followed by inserted ones are compared pairwise unless the arrays are
// aligned by key.
func (d *differ) diffArray(path string, from, to *ir.Node) {
	fromRunes, toRunes, keyed := d.align(from, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	var dels, ins []int
	flush := func() {
		n := 0
		if !keyed {
			n = min(len(dels), len(ins))
		}
		for k := range n {
			d.diff(ir.PathIndex(path, dels[k]), from.Index(dels[k]), to.Index(ins[k]))
		}
		for _, i := range dels[n:] {
			d.add(Change{Op: Delete, Path: ir.PathIndex(path, i), From: from.Index(i)})
		}
		for _, i := range ins[n:] {
			d.add(Change{Op: Insert, Path: ir.PathIndex(path, i), To: to.Index(i)})
		}
		dels, ins = dels[:0], ins[:0]
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				dels = append(dels, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				ins = append(ins, ti)
				ti++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.diff(ir.PathIndex(path, fi), from.Index(fi), to.Index(ti))
				fi++
				ti++
			}
		}
	}
	flush()
}

// align gives each element of from and to a rune such that elements with
// the same rune are to be compared. Elements are identified by the value
// of the array key if one is set and every element has it, and otherwise
// by equality.
func (d *differ) align(from, to *ir.Node) (fromRunes, toRunes []rune, keyed bool) {
	if key := d.opts.arrayKey; key != "" {
		fk, fok := keysOf(from, key)
		tk, tok := keysOf(to, key)
		if fok && tok {
			fromRunes, toRunes = internRunes(fk, tk)
			return fromRunes, toRunes, true
		}
	}
	fromRunes, toRunes = internRunes(elements(from), elements(to))
	return fromRunes, toRunes, false
}

func elements(y *ir.Node) []*ir.Node {
	vs, _ := y.AsArray()
	return vs
}

func keysOf(y *ir.Node, key string) ([]*ir.Node, bool) {
	res := make([]*ir.Node, 0, y.Len())
	for _, v := range y.Values() {
		k, ok := v.Get(key)
		if !ok || !k.Type().IsLeaf() {
			return nil, false
		}
		res = append(res, k)
	}
	return res, true
}

func internRunes(from, to []*ir.Node) ([]rune, []rune) {
	var seen []*ir.Node
	id := func(y *ir.Node) rune {
		for i, s := range seen {
			if ir.Equal(s, y) {
				return idRune(i)
			}
		}
		seen = append(seen, y)
		return idRune(len(seen) - 1)
	}
	fromRunes := make([]rune, len(from))
	for i, y := range from {
		fromRunes[i] = id(y)
	}
	toRunes := make([]rune, len(to))
	for i, y := range to {
		toRunes[i] = id(y)
	}
	return fromRunes, toRunes
}
