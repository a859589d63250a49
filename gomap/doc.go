// Package gomap converts IR nodes into Go values.
//
// A [Converter] projects a node into one Go type. Converters for the leaf
// types are provided by [Number], [String] and [Bool]; container converters
// are built from the converters of their elements:
//
//	// [[1,2],[3,4]] -> [][]int
//	c := gomap.Slice(gomap.Slice(gomap.Number[int]()))
//	v, err := gomap.Convert(node, c)
//
//	// {"hello":1,"world":2} -> map[string]float64
//	m, err := gomap.Convert(node, gomap.Map(gomap.Number[float64]()))
//
//	// ["a", 1] -> gomap.Pair[string, int]
//	p, err := gomap.Convert(node, gomap.PairOf(gomap.String(), gomap.Number[int]()))
//
// The target type is fixed by the converter at compile time, so there is
// no way to ask for a type with no converter.
//
// A node of the wrong type fails with an [*ir.TypeError], which matches
// [ir.ErrTypeMismatch]. Failures below the top level are wrapped in a
// [*ConvertError] giving the path of the failing node.
//
// Conversion never modifies the node; converting a tree twice gives equal
// results.
//
// # Related Packages
//
//   - github.com/signadot/tinyjson/ir - IR representation
//   - github.com/signadot/tinyjson/parse - building IR from text
package gomap
