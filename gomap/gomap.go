package gomap

import (
	"fmt"

	"github.com/signadot/tinyjson/debug"
	"github.com/signadot/tinyjson/ir"
)

// Converter projects a node into a T.
type Converter[T any] func(*ir.Node) (T, error)

// Convert converts y with c.
func Convert[T any](y *ir.Node, c Converter[T]) (T, error) {
	var zero T
	if y == nil {
		return zero, ErrNilNode
	}
	res, err := c(y)
	if debug.Convert() {
		debug.Logger().Debug("convert", "node", y.String(), "target", fmt.Sprintf("%T", zero), "err", err)
	}
	if err != nil {
		return zero, err
	}
	return res, nil
}

// Numeric is the set of types a Number node may be converted to.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Number converts a Number node with a Go conversion from float64. Values
// out of the range of T are not detected.
func Number[T Numeric]() Converter[T] {
	return func(y *ir.Node) (T, error) {
		f, err := y.AsNumber()
		if err != nil {
			return 0, err
		}
		return T(f), nil
	}
}

func String() Converter[string] {
	return (*ir.Node).AsString
}

func Bool() Converter[bool] {
	return (*ir.Node).AsBool
}

// Node returns the node itself, leaving part of a tree unconverted.
func Node() Converter[*ir.Node] {
	return func(y *ir.Node) (*ir.Node, error) {
		return y, nil
	}
}

// Any converts any node to nil, float64, string, bool, []any or
// map[string]any.
func Any() Converter[any] {
	return toAny
}

func toAny(y *ir.Node) (any, error) {
	switch y.Type() {
	case ir.NullType:
		return nil, nil
	case ir.NumberType:
		return y.AsNumber()
	case ir.StringType:
		return y.AsString()
	case ir.BoolType:
		return y.AsBool()
	case ir.ArrayType:
		vs, err := Slice(Any())(y)
		if err != nil {
			return nil, err
		}
		return vs, nil
	case ir.ObjectType:
		m, err := Map(Any())(y)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("unknown node type %s", y.Type())
}
