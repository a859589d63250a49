package gomap

import (
	"fmt"

	"github.com/signadot/tinyjson/ir"
)

// Slice converts an Array node by converting each element with c.
func Slice[U any](c Converter[U]) Converter[[]U] {
	return SliceOf[[]U](c)
}

// SliceOf is Slice for named slice types.
func SliceOf[S ~[]U, U any](c Converter[U]) Converter[S] {
	return func(y *ir.Node) (S, error) {
		vs, err := y.AsArray()
		if err != nil {
			return nil, err
		}
		res := make(S, len(vs))
		for i, v := range vs {
			u, err := c(v)
			if err != nil {
				return nil, atIndex(i, err)
			}
			res[i] = u
		}
		return res, nil
	}
}

// Map converts an Object node by converting each value with c.
func Map[V any](c Converter[V]) Converter[map[string]V] {
	return MapOf[map[string]V](c)
}

// MapOf is Map for named map types.
func MapOf[M ~map[string]V, V any](c Converter[V]) Converter[M] {
	return func(y *ir.Node) (M, error) {
		if !y.IsObject() {
			return nil, &ir.TypeError{Expected: ir.ObjectType, Actual: y.Type()}
		}
		res := make(M, y.Len())
		for key, v := range y.Fields() {
			val, err := c(v)
			if err != nil {
				return nil, atField(key, err)
			}
			res[key] = val
		}
		return res, nil
	}
}

type Pair[T, U any] struct {
	First  T
	Second U
}

// PairOf converts an Array node of exactly two elements, the first with ct
// and the second with cu. Any other length fails with ir.ErrInvalidFormat.
func PairOf[T, U any](ct Converter[T], cu Converter[U]) Converter[Pair[T, U]] {
	return func(y *ir.Node) (Pair[T, U], error) {
		var res Pair[T, U]
		if !y.IsArray() {
			return res, &ir.TypeError{Expected: ir.ArrayType, Actual: y.Type()}
		}
		if y.Len() != 2 {
			return res, fmt.Errorf("%w: pair needs 2 elements, got %d", ir.ErrInvalidFormat, y.Len())
		}
		var err error
		if res.First, err = ct(y.Index(0)); err != nil {
			return Pair[T, U]{}, atIndex(0, err)
		}
		if res.Second, err = cu(y.Index(1)); err != nil {
			return Pair[T, U]{}, atIndex(1, err)
		}
		return res, nil
	}
}

// Optional converts Null to nil and anything else with c.
func Optional[T any](c Converter[T]) Converter[*T] {
	return func(y *ir.Node) (*T, error) {
		if y.IsNull() {
			return nil, nil
		}
		v, err := c(y)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

// Field converts the value of field key of an Object node with c. A
// missing field fails with ErrMissingField.
func Field[T any](key string, c Converter[T]) Converter[T] {
	return func(y *ir.Node) (T, error) {
		var zero T
		if !y.IsObject() {
			return zero, &ir.TypeError{Expected: ir.ObjectType, Actual: y.Type()}
		}
		v, ok := y.Get(key)
		if !ok {
			return zero, fmt.Errorf("%w %q", ErrMissingField, key)
		}
		res, err := c(v)
		if err != nil {
			return zero, atField(key, err)
		}
		return res, nil
	}
}
