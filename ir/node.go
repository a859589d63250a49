package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Node is one value of a parsed document. The zero Node is null.
//
// A Node is never modified after construction; containers own their
// children and the accessors hand out copies of the container slices and
// maps, so a tree may be read from several goroutines at once.
type Node struct {
	typ Type

	number  float64
	str     string
	boolean bool

	values []*Node
	fields []string
	index  map[string]int
}

func Null() *Node {
	return &Node{typ: NullType}
}

func FromNumber(f float64) *Node {
	return &Node{typ: NumberType, number: f}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, str: v}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, boolean: v}
}

// FromSlice returns an array node holding vs, which it takes ownership of.
// nil elements are stored as null.
func FromSlice(vs []*Node) *Node {
	res := &Node{typ: ArrayType, values: vs}
	if res.values == nil {
		res.values = []*Node{}
	}
	for i, v := range res.values {
		if v == nil {
			res.values[i] = Null()
		}
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an object node with the given fields in order. A
// repeated key is an error wrapping ErrDuplicateKey.
func FromKeyVals(kvs []KeyVal) (*Node, error) {
	res := &Node{
		typ:    ObjectType,
		fields: make([]string, len(kvs)),
		values: make([]*Node, len(kvs)),
		index:  make(map[string]int, len(kvs)),
	}
	for i, kv := range kvs {
		if _, dup := res.index[kv.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, kv.Key)
		}
		val := kv.Val
		if val == nil {
			val = Null()
		}
		res.index[kv.Key] = i
		res.fields[i] = kv.Key
		res.values[i] = val
	}
	return res, nil
}

// FromMap returns an object node with the keys of m in sorted order.
func FromMap(m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, KeyVal{Key: key, Val: m[key]})
	}
	// keys of a map are unique
	res, _ := FromKeyVals(kvs)
	return res
}

func (y *Node) Type() Type { return y.typ }

func (y *Node) IsNull() bool   { return y.typ == NullType }
func (y *Node) IsNumber() bool { return y.typ == NumberType }
func (y *Node) IsString() bool { return y.typ == StringType }
func (y *Node) IsBool() bool   { return y.typ == BoolType }
func (y *Node) IsArray() bool  { return y.typ == ArrayType }
func (y *Node) IsObject() bool { return y.typ == ObjectType }

func (y *Node) expect(t Type) error {
	if y.typ != t {
		return &TypeError{Expected: t, Actual: y.typ}
	}
	return nil
}

func (y *Node) AsNumber() (float64, error) {
	if err := y.expect(NumberType); err != nil {
		return 0, err
	}
	return y.number, nil
}

func (y *Node) AsString() (string, error) {
	if err := y.expect(StringType); err != nil {
		return "", err
	}
	return y.str, nil
}

func (y *Node) AsBool() (bool, error) {
	if err := y.expect(BoolType); err != nil {
		return false, err
	}
	return y.boolean, nil
}

// AsArray returns a copy of the elements of an array node.
func (y *Node) AsArray() ([]*Node, error) {
	if err := y.expect(ArrayType); err != nil {
		return nil, err
	}
	return slices.Clone(y.values), nil
}

// AsObject returns a fresh map of the fields of an object node.
func (y *Node) AsObject() (map[string]*Node, error) {
	if err := y.expect(ObjectType); err != nil {
		return nil, err
	}
	res := make(map[string]*Node, len(y.fields))
	for i, f := range y.fields {
		res[f] = y.values[i]
	}
	return res, nil
}

// Len returns the number of elements or fields of a container, and 0 for
// anything else.
func (y *Node) Len() int {
	return len(y.values)
}

// Index returns the i'th element of an array, or nil.
func (y *Node) Index(i int) *Node {
	if y.typ != ArrayType || i < 0 || i >= len(y.values) {
		return nil
	}
	return y.values[i]
}

// Get returns the value of field key of an object.
func (y *Node) Get(key string) (*Node, bool) {
	if y.typ != ObjectType {
		return nil, false
	}
	i, ok := y.index[key]
	if !ok {
		return nil, false
	}
	return y.values[i], true
}

// Keys returns the keys of an object in document order.
func (y *Node) Keys() []string {
	return slices.Clone(y.fields)
}

// Values iterates over the elements of an array.
func (y *Node) Values() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if y.typ != ArrayType {
			return
		}
		for i, v := range y.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Fields iterates over the fields of an object in document order.
func (y *Node) Fields() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i, f := range y.fields {
			if !yield(f, y.values[i]) {
				return
			}
		}
	}
}

// Visit walks the tree depth first, calling f before (isPost false) and
// after (isPost true) the children of each node. Children are visited only
// if the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// String describes the node without its children, for messages and debug
// output.
func (y *Node) String() string {
	switch y.typ {
	case NullType:
		return "Null"
	case NumberType:
		return "Number(" + strconv.FormatFloat(y.number, 'g', -1, 64) + ")"
	case StringType:
		return "String(" + strconv.Quote(y.str) + ")"
	case BoolType:
		return "Bool(" + strconv.FormatBool(y.boolean) + ")"
	case ArrayType:
		return "Array[" + strconv.Itoa(len(y.values)) + "]"
	case ObjectType:
		return "Object{" + strconv.Itoa(len(y.values)) + "}"
	default:
		return y.typ.String()
	}
}
