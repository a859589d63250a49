package token

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
)

// End is what Peek returns once a cursor is past the end of its input.
// Input is NUL terminated: a NUL byte in the input also ends it.
const End byte = 0

// Cursor is a peekable byte stream.
//
// Peek never reads past the end of the input and, once the end is reached,
// always returns End. Advance past the end is a no-op.
type Cursor interface {
	Peek() byte
	Advance()
	Pos() Pos
}

// BufferCursor is a Cursor over an in-memory buffer.
type BufferCursor struct {
	d   []byte
	i   int
	pos Pos
}

// NewBufferCursor returns a cursor over d. The buffer is not copied and must
// not be modified while the cursor is in use. A nil buffer is an error.
func NewBufferCursor(d []byte) (*BufferCursor, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: data is nil", ErrInvalidArgument)
	}
	return newBufferCursor(d), nil
}

func NewStringCursor(s string) *BufferCursor {
	return newBufferCursor([]byte(s))
}

func newBufferCursor(d []byte) *BufferCursor {
	if i := bytes.IndexByte(d, End); i >= 0 {
		d = d[:i]
	}
	return &BufferCursor{d: d}
}

func (c *BufferCursor) Peek() byte {
	if c.i < len(c.d) {
		return c.d[c.i]
	}
	return End
}

func (c *BufferCursor) Advance() {
	if c.i >= len(c.d) {
		return
	}
	c.pos.advance(c.d[c.i])
	c.i++
}

func (c *BufferCursor) Pos() Pos { return c.pos }

// Rest returns the unconsumed input.
func (c *BufferCursor) Rest() []byte { return c.d[c.i:] }

// ReaderCursor is a Cursor over an io.Reader. A read error other than io.EOF
// ends the input and is reported by Err.
type ReaderCursor struct {
	r    *bufio.Reader
	cur  byte
	ok   bool
	done bool
	err  error
	pos  Pos
}

func NewReaderCursor(r io.Reader) (*ReaderCursor, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrInvalidArgument)
	}
	return &ReaderCursor{r: bufio.NewReader(r)}, nil
}

func (c *ReaderCursor) fill() {
	if c.ok || c.done {
		return
	}
	b, err := c.r.ReadByte()
	if err != nil {
		c.done = true
		if err != io.EOF {
			c.err = err
		}
		return
	}
	if b == End {
		c.done = true
		return
	}
	c.cur, c.ok = b, true
}

func (c *ReaderCursor) Peek() byte {
	c.fill()
	if !c.ok {
		return End
	}
	return c.cur
}

func (c *ReaderCursor) Advance() {
	c.fill()
	if !c.ok {
		return
	}
	c.pos.advance(c.cur)
	c.ok = false
}

func (c *ReaderCursor) Pos() Pos { return c.pos }

func (c *ReaderCursor) Err() error { return c.err }

// SeqCursor adapts a byte iterator to a Cursor. Close releases the
// iterator if the cursor is abandoned before the end.
type SeqCursor struct {
	next func() (byte, bool)
	stop func()
	cur  byte
	ok   bool
	done bool
	pos  Pos
}

func NewSeqCursor(seq iter.Seq[byte]) (*SeqCursor, error) {
	if seq == nil {
		return nil, fmt.Errorf("%w: sequence is nil", ErrInvalidArgument)
	}
	next, stop := iter.Pull(seq)
	return &SeqCursor{next: next, stop: stop}, nil
}

func (c *SeqCursor) fill() {
	if c.ok || c.done {
		return
	}
	b, more := c.next()
	if !more || b == End {
		c.Close()
		return
	}
	c.cur, c.ok = b, true
}

func (c *SeqCursor) Peek() byte {
	c.fill()
	if !c.ok {
		return End
	}
	return c.cur
}

func (c *SeqCursor) Advance() {
	c.fill()
	if !c.ok {
		return
	}
	c.pos.advance(c.cur)
	c.ok = false
}

func (c *SeqCursor) Pos() Pos { return c.pos }

func (c *SeqCursor) Close() {
	c.done = true
	c.ok = false
	c.stop()
}

// IsSpace reports whether c is JSON whitespace, including \f and \v.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\f', '\n', '\r', '\t', '\v':
		return true
	default:
		return false
	}
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// SkipSpace advances c past any whitespace.
func SkipSpace(c Cursor) {
	for IsSpace(c.Peek()) {
		c.Advance()
	}
}
