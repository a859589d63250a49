// Package parse parses JSON text into IR nodes.
//
// # Usage
//
//	// Parse bytes
//	node, err := parse.Parse([]byte(`{"name": "alice", "age": 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.ParseComplete(true))
//
//	// Read a sequence of values from a stream
//	r := parse.NewReader(cursor)
//	for node, err := range r.All() {
//	    ...
//	}
//
// A parse reads exactly one value and stops right after it; anything
// following is left unread unless [ParseComplete] is given.
//
// Strings support the escapes \" \\ \/ \b \f \n \r \t. The \u escape is
// rejected with [ErrNotImplemented].
//
// # Related Packages
//
//   - github.com/signadot/tinyjson/ir - IR representation
//   - github.com/signadot/tinyjson/token - Input cursors
//   - github.com/signadot/tinyjson/gomap - Convert IR to Go values
package parse
