// Package libdiff computes structural differences between IR nodes.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//	    fmt.Println(c)
//	}
//
//	// Align arrays of objects by an identifying field
//	changes := libdiff.Diff(oldNode, newNode, libdiff.DiffArrayKey("id"))
//
// Each [Change] names the path of a node which was inserted, deleted or
// replaced. Object fields are matched by key. Array elements are aligned
// with a longest common subsequence, so an insertion in the middle of an
// array is reported as one insertion rather than a change to every
// following element.
//
// # Related Packages
//
//   - github.com/signadot/tinyjson/ir - IR representation
package libdiff
