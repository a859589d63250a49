// Package token provides the character cursor the parser reads from.
//
// A [Cursor] presents its input as a peekable byte stream which ends in the
// [End] sentinel. Several backings share the one interface:
//
//	c, err := token.NewBufferCursor(data)  // nil data fails with ErrInvalidArgument
//	c := token.NewStringCursor(`[1, 2]`)
//	c := token.NewReaderCursor(os.Stdin)
//	c := token.NewSeqCursor(seq)           // any iter.Seq[byte]
//
// Every cursor tracks a [Pos] for error reporting.
package token
