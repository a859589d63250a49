package parse

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strings"

	"github.com/signadot/tinyjson/debug"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/token"
)

// Parse parses the value at the start of d. A nil d fails with
// ErrInvalidArgument.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	c, err := token.NewBufferCursor(d)
	if err != nil {
		return nil, err
	}
	return parseOne(c, opts)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return parseOne(token.NewStringCursor(s), opts)
}

// ParseReader parses the value at the start of rd. Input after the value
// is only read when ParseComplete is given.
func ParseReader(rd io.Reader, opts ...ParseOption) (*ir.Node, error) {
	c, err := token.NewReaderCursor(rd)
	if err != nil {
		return nil, err
	}
	return parseOne(c, opts)
}

func parseOne(c token.Cursor, opts []ParseOption) (*ir.Node, error) {
	r := NewReader(c, opts...)
	res, err := r.Read()
	if err != nil {
		return nil, err
	}
	if r.opts.complete && r.More() {
		return nil, newErr(c.Pos(), ErrTrailingData, "%s", describe(c.Peek()))
	}
	if err := r.cursorErr(); err != nil {
		return nil, err
	}
	return res, nil
}

// Reader reads values from a cursor, one per call to Read.
type Reader struct {
	c     token.Cursor
	opts  *parseOpts
	depth int
}

func NewReader(c token.Cursor, opts ...ParseOption) *Reader {
	return &Reader{c: c, opts: newParseOpts(opts)}
}

// Read reads one value, leaving the cursor immediately after it. On error
// no value is returned and the cursor position is unspecified.
func (r *Reader) Read() (*ir.Node, error) {
	r.depth = 0
	res, err := r.readValue()
	if cErr := r.cursorErr(); cErr != nil {
		return nil, cErr
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// More skips whitespace and reports whether any input remains.
func (r *Reader) More() bool {
	token.SkipSpace(r.c)
	return r.c.Peek() != token.End
}

// All iterates over the values remaining in the input. Iteration stops
// after the first error.
func (r *Reader) All() iter.Seq2[*ir.Node, error] {
	return func(yield func(*ir.Node, error) bool) {
		for r.More() {
			y, err := r.Read()
			if !yield(y, err) || err != nil {
				return
			}
		}
		if err := r.cursorErr(); err != nil {
			yield(nil, err)
		}
	}
}

func (r *Reader) cursorErr() error {
	ec, ok := r.c.(interface{ Err() error })
	if !ok || ec.Err() == nil {
		return nil
	}
	return fmt.Errorf("error reading input: %w", ec.Err())
}

func (r *Reader) readValue() (*ir.Node, error) {
	token.SkipSpace(r.c)
	pos := r.c.Pos()
	var (
		res *ir.Node
		err error
	)
	switch c := r.c.Peek(); {
	case c == '-' || token.IsDigit(c):
		var f float64
		f, err = r.readNumber()
		if err == nil {
			res = ir.FromNumber(f)
		}
	case c == '"':
		var s string
		s, err = r.readString()
		if err == nil {
			res = ir.FromString(s)
		}
	case c == '[':
		res, err = r.nested(pos, r.readArray)
	case c == '{':
		res, err = r.nested(pos, r.readObject)
	case c == 't':
		err = r.readKeyword("true")
		res = ir.FromBool(true)
	case c == 'f':
		err = r.readKeyword("false")
		res = ir.FromBool(false)
	case c == 'n':
		err = r.readKeyword("null")
		res = ir.Null()
	default:
		err = expectedErr("value", c, pos)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logger().Debug("read value", "value", res.String(), "offset", pos.Offset)
	}
	return res, nil
}

func (r *Reader) nested(pos token.Pos, f func() (*ir.Node, error)) (*ir.Node, error) {
	if r.opts.maxDepth > 0 && r.depth >= r.opts.maxDepth {
		return nil, newErr(pos, ErrTooDeep, "more than %d levels", r.opts.maxDepth)
	}
	r.depth++
	defer func() { r.depth-- }()
	return f()
}

func (r *Reader) readKeyword(kw string) error {
	pos := r.c.Pos()
	for i := 0; i < len(kw); i++ {
		if r.c.Peek() != kw[i] {
			return newErr(pos, ErrInvalidFormat, "expected %q", kw)
		}
		r.c.Advance()
	}
	return nil
}

func (r *Reader) expect(ch byte) error {
	if c := r.c.Peek(); c != ch {
		return expectedErr(describe(ch), c, r.c.Pos())
	}
	r.c.Advance()
	return nil
}

// exponents are capped well past the point where 10^e overflows.
const maxExponent = 1 << 16

func (r *Reader) readNumber() (float64, error) {
	sign := 1.0
	if r.c.Peek() == '-' {
		sign = -1
		r.c.Advance()
	}
	number, n := r.digits(0)
	if err := r.checkDigits(n); err != nil {
		return 0, err
	}
	if r.c.Peek() == '.' {
		r.c.Advance()
		number, n = r.digits(number)
		if err := r.checkDigits(n); err != nil {
			return 0, err
		}
		number /= pow10(n)
	}
	if c := r.c.Peek(); c == 'e' || c == 'E' {
		r.c.Advance()
		neg := false
		switch r.c.Peek() {
		case '+':
			r.c.Advance()
		case '-':
			neg = true
			r.c.Advance()
		}
		e := 0
		n = 0
		for c := r.c.Peek(); token.IsDigit(c); c = r.c.Peek() {
			if e < maxExponent {
				e = e*10 + int(c-'0')
			}
			r.c.Advance()
			n++
		}
		if err := r.checkDigits(n); err != nil {
			return 0, err
		}
		switch {
		case number == 0:
		case neg:
			number /= pow10(e)
		default:
			number *= pow10(e)
		}
	}
	return sign * number, nil
}

// digits accumulates decimal digits onto acc and returns the result and
// the number of digits read. Large inputs lose precision.
func (r *Reader) digits(acc float64) (float64, int) {
	n := 0
	for c := r.c.Peek(); token.IsDigit(c); c = r.c.Peek() {
		acc = acc*10 + float64(c-'0')
		r.c.Advance()
		n++
	}
	return acc, n
}

func (r *Reader) checkDigits(n int) error {
	if n == 0 && r.opts.strictNumbers {
		return expectedErr("digit", r.c.Peek(), r.c.Pos())
	}
	return nil
}

// pow10 computes 10^n by repeated multiplication, stopping once the
// result is +Inf.
func pow10(n int) float64 {
	p := 1.0
	for i := 0; i < n && !math.IsInf(p, 1); i++ {
		p *= 10
	}
	return p
}

func (r *Reader) readString() (string, error) {
	if err := r.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c := r.c.Peek()
		switch c {
		case token.End:
			return "", expectedErr(`'"'`, c, r.c.Pos())
		case '"':
			r.c.Advance()
			return sb.String(), nil
		case '\\':
			pos := r.c.Pos()
			r.c.Advance()
			e := r.c.Peek()
			switch e {
			case '"', '\\', '/':
				sb.WriteByte(e)
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				return "", newErr(pos, ErrNotImplemented, `\u escape`)
			case token.End:
				return "", expectedErr(`'"'`, e, r.c.Pos())
			default:
				return "", newErr(pos, ErrUnrecognizedEscape, `\%c`, e)
			}
			r.c.Advance()
		default:
			sb.WriteByte(c)
			r.c.Advance()
		}
	}
}

func (r *Reader) readArray() (*ir.Node, error) {
	r.c.Advance()
	vs := []*ir.Node{}
	if r.opts.emptyCollections {
		token.SkipSpace(r.c)
		if r.c.Peek() == ']' {
			r.c.Advance()
			return ir.FromSlice(vs), nil
		}
	}
	for {
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		token.SkipSpace(r.c)
		if r.c.Peek() == ',' {
			r.c.Advance()
			continue
		}
		if err := r.expect(']'); err != nil {
			return nil, err
		}
		return ir.FromSlice(vs), nil
	}
}

func (r *Reader) readObject() (*ir.Node, error) {
	r.c.Advance()
	var kvs []ir.KeyVal
	if r.opts.emptyCollections {
		token.SkipSpace(r.c)
		if r.c.Peek() == '}' {
			r.c.Advance()
			return ir.FromKeyVals(kvs)
		}
	}
	seen := map[string]struct{}{}
	for {
		token.SkipSpace(r.c)
		keyPos := r.c.Pos()
		if c := r.c.Peek(); c != '"' {
			return nil, expectedErr("string key", c, keyPos)
		}
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		token.SkipSpace(r.c)
		if err := r.expect(':'); err != nil {
			return nil, err
		}
		v, err := r.readValue()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[key]; dup {
			return nil, newErr(keyPos, ErrDuplicateKey, "%q", key)
		}
		seen[key] = struct{}{}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: v})
		token.SkipSpace(r.c)
		if r.c.Peek() == ',' {
			r.c.Advance()
			continue
		}
		if err := r.expect('}'); err != nil {
			return nil, err
		}
		return ir.FromKeyVals(kvs)
	}
}
