// Package ir provides the in-memory value tree produced by the parser.
//
// # Overview
//
// A document is represented as a tree of [Node] values. Each Node is a
// tagged union whose [Type] selects one of:
//
//   - NullType: null
//   - BoolType: true or false
//   - NumberType: a float64
//   - StringType: a string
//   - ArrayType: an ordered list of nodes
//   - ObjectType: string keyed fields, keys unique, document order kept
//
// Nodes are immutable. A parent owns its children, there is no sharing
// between trees and no parent pointer, so a tree may be read concurrently
// and is reclaimed as a whole once the caller drops it.
//
// # Accessing Values
//
// The typed accessors return the payload or a [*TypeError] which matches
// [ErrTypeMismatch]:
//
//	n, err := node.AsNumber()
//	if errors.Is(err, ir.ErrTypeMismatch) {
//	    ...
//	}
//
// Containers may be walked without copying through [Node.Values],
// [Node.Fields], [Node.Get] and [Node.Index].
//
// # Paths
//
// [Node.GetPath] and [Node.ListPath] navigate a tree with paths such as
// "$.a[0].b", "$.items[*]" and "$..name". Keys containing path syntax are
// quoted: "$.'a.b'".
//
// # Related Packages
//
//   - github.com/signadot/tinyjson/parse - Parse text to IR
//   - github.com/signadot/tinyjson/gomap - Convert IR to Go values
package ir
