package ir_test

import (
	"testing"

	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "[null]",
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  "[1]",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "[1]",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[[1,2,3]]",
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "[2]",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `["three"]`,
	},
	{
		Path: "$.'f[3]'[2]",
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "[2]",
	},
	{
		Path: `$.'$f[\'3]'[2]`,
		Doc:  `{"a": [1,2], "$f['3]": [0,1,2,"three"]}`,
		Res:  "[2]",
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1,2,3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   `{"b": [1,2,3]}`,
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.items[*].id",
		Doc:   `{"items": [{"id": 1}, {"name": "x"}, {"id": 3}]}`,
		Res:   "[1, 3]",
	},
	{
		NoGet: true,
		Path:  "$..id",
		Doc:   `{"id": 0, "a": {"id": 1, "b": [{"id": 2}]}}`,
		Res:   "[0, 1, 2]",
	},
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s, parse.ParseComplete(true))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return y
}

func TestListPath(t *testing.T) {
	for _, pt := range pathTests {
		doc := mustParse(t, pt.Doc)
		res, err := doc.ListPath(nil, pt.Path)
		if err != nil {
			t.Errorf("%s: %v", pt.Path, err)
			continue
		}
		want := mustParse(t, pt.Res)
		if got := ir.FromSlice(res); !ir.Equal(want, got) {
			t.Errorf("%s on %s: got %d results", pt.Path, pt.Doc, len(res))
		}
	}
}

func TestGetPath(t *testing.T) {
	for _, pt := range pathTests {
		doc := mustParse(t, pt.Doc)
		res, err := doc.GetPath(pt.Path)
		if pt.NoGet {
			if err == nil {
				t.Errorf("%s: expected error", pt.Path)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", pt.Path, err)
			continue
		}
		want := mustParse(t, pt.Res).Index(0)
		if !ir.Equal(want, res) {
			t.Errorf("%s on %s: got %s", pt.Path, pt.Doc, res)
		}
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := mustParse(t, `{"a": [1, 2], "s": "x"}`)
	for _, p := range []string{
		"a",
		"$.a[2]",
		"$.s.t",
		"$.a.b",
		"$[0]",
		"$.a[x]",
		"$.'open",
	} {
		if _, err := doc.GetPath(p); err == nil {
			t.Errorf("%s: expected error", p)
		}
	}
	res, err := doc.GetPath("$.missing")
	if err != nil || res != nil {
		t.Errorf("missing: got %v, %v", res, err)
	}
}

func TestPathString(t *testing.T) {
	for _, p := range []string{
		"$",
		"$.a",
		"$.a[0].b",
		"$[*]",
		"$..name",
		"$.'a.b'[3]",
	} {
		yp, err := ir.ParsePath(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if got := yp.String(); got != p {
			t.Errorf("got %q want %q", got, p)
		}
	}
}

func TestPathBuilders(t *testing.T) {
	p := ir.PathIndex(ir.PathField("", "users"), 2)
	p = ir.PathField(p, "first.name")
	if want := "$.users[2].'first.name'"; p != want {
		t.Errorf("got %q want %q", p, want)
	}
	doc := mustParse(t, `{"users": [0, 1, {"first.name": "ann"}]}`)
	y, err := doc.GetPath(p)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := y.AsString(); s != "ann" {
		t.Errorf("got %s", y)
	}
}
