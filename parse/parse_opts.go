package parse

type parseOpts struct {
	emptyCollections bool
	strictNumbers    bool
	complete         bool
	maxDepth         int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{emptyCollections: true}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// ParseEmptyCollections controls whether [] and {} are accepted. It
// defaults to true; with false, arrays and objects need at least one
// element and [] and {} fail with ErrInvalidFormat.
func ParseEmptyCollections(v bool) ParseOption {
	return func(o *parseOpts) { o.emptyCollections = v }
}

// ParseStrictNumbers makes a number with no digits after '-', '.' or an
// exponent marker an error. By default such numbers are read as if the
// missing digits were zero.
func ParseStrictNumbers(v bool) ParseOption {
	return func(o *parseOpts) { o.strictNumbers = v }
}

// ParseComplete makes Parse, ParseString and ParseReader fail with
// ErrTrailingData if anything but whitespace follows the value.
func ParseComplete(v bool) ParseOption {
	return func(o *parseOpts) { o.complete = v }
}

// ParseMaxDepth limits the nesting of arrays and objects. 0, the default,
// means no limit.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
