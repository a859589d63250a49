package libdiff

import (
	"github.com/signadot/tinyjson/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffObject aligns the keys of from and to, then recurses on the values
// of keys in both. A key which moved within the object is compared rather
// than deleted and inserted.
func (d *differ) diffObject(path string, from, to *ir.Node) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from.Keys())
	toRunes := mapFieldsTo(fieldMap, runeMap, to.Keys())
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			key := runeMap[r]
			fv, inFrom := from.Get(key)
			tv, inTo := to.Get(key)
			fieldPath := ir.PathField(path, key)
			switch {
			case diff.Type == diffpatch.DiffDelete && !inTo:
				d.add(Change{Op: Delete, Path: fieldPath, From: fv})
			case diff.Type == diffpatch.DiffInsert && !inFrom:
				d.add(Change{Op: Insert, Path: fieldPath, To: tv})
			case diff.Type != diffpatch.DiffDelete:
				d.diff(fieldPath, fv, tv)
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, f := range keys {
		r, ok := m[f]
		if !ok {
			r = idRune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}

// idRune maps n to a rune which survives conversion to a string, skipping
// the surrogate range.
func idRune(n int) rune {
	r := rune(n)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}
