package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case NumberType:
		return cmp.Compare(a.number, b.number)
	case StringType:
		return strings.Compare(a.str, b.str)
	case BoolType:
		if a.boolean == b.boolean {
			return 0
		}
		if !a.boolean {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal. Object field
// order does not matter.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case NumberType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// objects are compared as their fields sorted by key.
func compareObjects(a, b *Node) int {
	keysA := slices.Sorted(slices.Values(a.fields))
	keysB := slices.Sorted(slices.Values(b.fields))
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		va, _ := a.Get(keysA[i])
		vb, _ := b.Get(keysB[i])
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}
