package gomap_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tinyjson/gomap"
	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s, parse.ParseComplete(true))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return y
}

func TestConvertSlice(t *testing.T) {
	got, err := gomap.Convert(mustParse(t, "[10, 20, 30]"), gomap.Slice(gomap.Number[int]()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{10, 20, 30}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertNestedSlice(t *testing.T) {
	c := gomap.Slice(gomap.Slice(gomap.Number[int]()))
	got, err := gomap.Convert(mustParse(t, "[[1,2],[3,4]]"), c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{1, 2}, {3, 4}}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertMap(t *testing.T) {
	got, err := gomap.Convert(mustParse(t, `{"hello":1,"world":2}`), gomap.Map(gomap.Number[int]()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"hello": 1, "world": 2}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertLeaves(t *testing.T) {
	s, err := gomap.Convert(mustParse(t, `"first line.\nsecond line."`), gomap.String())
	if err != nil || s != "first line.\nsecond line." {
		t.Errorf("string: got %q %v", s, err)
	}
	b, err := gomap.Convert(mustParse(t, `true`), gomap.Bool())
	if err != nil || !b {
		t.Errorf("bool: got %v %v", b, err)
	}
	f, err := gomap.Convert(mustParse(t, `-123e-3`), gomap.Number[float64]())
	if err != nil || f != -0.123 {
		t.Errorf("float64: got %v %v", f, err)
	}
	f32, err := gomap.Convert(mustParse(t, `1.5`), gomap.Number[float32]())
	if err != nil || f32 != 1.5 {
		t.Errorf("float32: got %v %v", f32, err)
	}
	i, err := gomap.Convert(mustParse(t, `2.9`), gomap.Number[int]())
	if err != nil || i != 2 {
		t.Errorf("int: got %v %v", i, err)
	}
	n, err := gomap.Convert(mustParse(t, `-7`), gomap.Number[int8]())
	if err != nil || n != -7 {
		t.Errorf("int8: got %v %v", n, err)
	}
}

type ids []uint
type scores map[string]float64

func TestConvertNamedTypes(t *testing.T) {
	got, err := gomap.Convert(mustParse(t, `[1, 2]`), gomap.SliceOf[ids](gomap.Number[uint]()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ids{1, 2}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	m, err := gomap.Convert(mustParse(t, `{"a": 0.5}`), gomap.MapOf[scores](gomap.Number[float64]()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(scores{"a": 0.5}, m); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertEmpty(t *testing.T) {
	s, err := gomap.Convert(mustParse(t, `[]`), gomap.Slice(gomap.String()))
	if err != nil || s == nil || len(s) != 0 {
		t.Errorf("slice: got %#v %v", s, err)
	}
	m, err := gomap.Convert(mustParse(t, `{}`), gomap.Map(gomap.String()))
	if err != nil || m == nil || len(m) != 0 {
		t.Errorf("map: got %#v %v", m, err)
	}
}

func TestConvertPair(t *testing.T) {
	c := gomap.PairOf(gomap.String(), gomap.Number[int]())
	got, err := gomap.Convert(mustParse(t, `["a", 1]`), c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(gomap.Pair[string, int]{First: "a", Second: 1}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	for _, in := range []string{`["a"]`, `["a", 1, 2]`, `[]`} {
		if _, err := gomap.Convert(mustParse(t, in), c); !errors.Is(err, ir.ErrInvalidFormat) {
			t.Errorf("%s: got %v", in, err)
		}
	}
	if _, err := gomap.Convert(mustParse(t, `{"a": 1}`), c); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("object: got %v", err)
	}
	if _, err := gomap.Convert(mustParse(t, `[1, 1]`), c); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("wrong first: got %v", err)
	}
}

func TestConvertNestedPairs(t *testing.T) {
	c := gomap.Map(gomap.Slice(gomap.PairOf(gomap.Number[int](), gomap.Bool())))
	got, err := gomap.Convert(mustParse(t, `{"x": [[1, true], [2, false]]}`), c)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string][]gomap.Pair[int, bool]{
		"x": {{First: 1, Second: true}, {First: 2, Second: false}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertTypeMismatch(t *testing.T) {
	docs := map[ir.Type]string{
		ir.NullType:   `null`,
		ir.NumberType: `1`,
		ir.StringType: `"s"`,
		ir.BoolType:   `false`,
		ir.ArrayType:  `[1]`,
		ir.ObjectType: `{"a": 1}`,
	}
	converters := map[ir.Type]func(*ir.Node) error{
		ir.NumberType: func(y *ir.Node) error { _, err := gomap.Convert(y, gomap.Number[int]()); return err },
		ir.StringType: func(y *ir.Node) error { _, err := gomap.Convert(y, gomap.String()); return err },
		ir.BoolType:   func(y *ir.Node) error { _, err := gomap.Convert(y, gomap.Bool()); return err },
		ir.ArrayType: func(y *ir.Node) error {
			_, err := gomap.Convert(y, gomap.Slice(gomap.Number[int]()))
			return err
		},
		ir.ObjectType: func(y *ir.Node) error {
			_, err := gomap.Convert(y, gomap.Map(gomap.Number[int]()))
			return err
		},
	}
	for dt, doc := range docs {
		y := mustParse(t, doc)
		for ct, convert := range converters {
			err := convert(y)
			if dt == ct {
				if err != nil {
					t.Errorf("%s to %s: %v", dt, ct, err)
				}
				continue
			}
			var te *ir.TypeError
			if !errors.As(err, &te) || te.Expected != ct || te.Actual != dt {
				t.Errorf("%s to %s: got %v", dt, ct, err)
			}
		}
	}
}

func TestConvertErrorPath(t *testing.T) {
	tests := []struct {
		in   string
		path string
	}{
		{in: `{"users": [{"age": 1}, {"age": "x"}]}`, path: "$.users[1].age"},
		{in: `{"users": [{"age": 1}, 3]}`, path: "$.users[1]"},
		{in: `{"users": {"age": 1}}`, path: "$.users"},
		{in: `{"users": [{"a.b": "x"}]}`, path: "$.users[0].'a.b'"},
	}
	c := gomap.Map(gomap.Slice(gomap.Map(gomap.Number[int]())))
	for _, tt := range tests {
		_, err := gomap.Convert(mustParse(t, tt.in), c)
		var ce *gomap.ConvertError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: got %v", tt.in, err)
		}
		if ce.Path != tt.path {
			t.Errorf("%s: path %q want %q", tt.in, ce.Path, tt.path)
		}
		if !errors.Is(err, ir.ErrTypeMismatch) {
			t.Errorf("%s: %v does not match ErrTypeMismatch", tt.in, err)
		}
	}
}

func TestConvertErrorMessage(t *testing.T) {
	c := gomap.Slice(gomap.PairOf(gomap.String(), gomap.String()))
	_, err := gomap.Convert(mustParse(t, `[["a", "b"], ["c"]]`), c)
	want := "convert error at $[1]: invalid format: pair needs 2 elements, got 1"
	if err == nil || err.Error() != want {
		t.Errorf("got %v\nwant %s", err, want)
	}
}

func TestConvertOptional(t *testing.T) {
	c := gomap.Slice(gomap.Optional(gomap.String()))
	got, err := gomap.Convert(mustParse(t, `["a", null]`), c)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] == nil || *got[0] != "a" || got[1] != nil {
		t.Errorf("got %v", got)
	}
	if _, err := gomap.Convert(mustParse(t, `1`), gomap.Optional(gomap.String())); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
}

type user struct {
	Name string
	Age  int
}

func userConverter() gomap.Converter[user] {
	name := gomap.Field("name", gomap.String())
	age := gomap.Field("age", gomap.Number[int]())
	return func(y *ir.Node) (user, error) {
		var (
			u   user
			err error
		)
		if u.Name, err = name(y); err != nil {
			return user{}, err
		}
		if u.Age, err = age(y); err != nil {
			return user{}, err
		}
		return u, nil
	}
}

func TestConvertField(t *testing.T) {
	c := gomap.Slice(userConverter())
	got, err := gomap.Convert(mustParse(t, `[{"name": "alice", "age": 30, "x": null}]`), c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]user{{Name: "alice", Age: 30}}, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	_, err = gomap.Convert(mustParse(t, `[{"name": "bob"}]`), c)
	if !errors.Is(err, gomap.ErrMissingField) {
		t.Errorf("missing: got %v", err)
	}
	_, err = gomap.Convert(mustParse(t, `[{"name": "bob", "age": "old"}]`), c)
	var ce *gomap.ConvertError
	if !errors.As(err, &ce) || ce.Path != "$[0].age" {
		t.Errorf("bad age: got %v", err)
	}
}

func TestConvertAny(t *testing.T) {
	got, err := gomap.Convert(mustParse(t, `{"a": [1, "two", true, null], "b": {}}`), gomap.Any())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{1.0, "two", true, nil},
		"b": map[string]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestConvertNode(t *testing.T) {
	y := mustParse(t, `{"raw": [1, {"b": 2}]}`)
	got, err := gomap.Convert(y, gomap.Map(gomap.Node()))
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := y.Get("raw")
	if got["raw"] != raw {
		t.Errorf("got %v", got["raw"])
	}
}

func TestConvertNil(t *testing.T) {
	if _, err := gomap.Convert(nil, gomap.Bool()); !errors.Is(err, gomap.ErrNilNode) {
		t.Errorf("got %v", err)
	}
}

func TestConvertIdempotent(t *testing.T) {
	y := mustParse(t, `{"a": [[1, 2], [3, 4]], "b": [[5, 6]]}`)
	c := gomap.Map(gomap.Slice(gomap.PairOf(gomap.Number[int](), gomap.Number[float64]())))
	first, err := gomap.Convert(y, c)
	if err != nil {
		t.Fatal(err)
	}
	second, err := gomap.Convert(y, c)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("(-first +second)\n%s", diff)
	}
	again := mustParse(t, `{"a": [[1, 2], [3, 4]], "b": [[5, 6]]}`)
	if !ir.Equal(y, again) {
		t.Errorf("conversion modified the tree")
	}
	a1, _ := gomap.Convert(y, gomap.Any())
	a2, _ := gomap.Convert(y, gomap.Any())
	if diff := cmp.Diff(a1, a2); diff != "" {
		t.Errorf("any: (-first +second)\n%s", diff)
	}
}
