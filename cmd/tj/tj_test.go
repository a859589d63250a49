package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/tinyjson/ir"
	"github.com/signadot/tinyjson/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s, parse.ParseComplete(true))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestDumpNode(t *testing.T) {
	var buf bytes.Buffer
	y := mustParse(t, `{"a": [true, null], "b.c": "x"}`)
	if err := dumpNode(&buf, PlainColors(), "$", y); err != nil {
		t.Fatal(err)
	}
	want := `$ Object{2}
$.a Array[2]
$.a[0] Bool(true)
$.a[1] Null
$.'b.c' String("x")
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	for _, a := range []string{"name=bob", "deep.x=true", "deep.y=[1, 2]"} {
		if err := envFunc(env, a); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	deep, ok := env["deep"].(map[string]any)
	if env["name"] != "bob" || !ok || deep["x"] != true {
		t.Errorf("got %v", env)
	}
	for _, a := range []string{"novalue", "doc=1", "name.x=1"} {
		if err := envFunc(env, a); err == nil {
			t.Errorf("%s: expected error", a)
		}
	}
}

func TestEvalDoc(t *testing.T) {
	y := mustParse(t, `{"users": [{"name": "alice", "admin": true}, {"name": "bob", "admin": false}]}`)
	env := map[string]any{"who": "bob"}
	tests := []struct {
		src  string
		want any
	}{
		{src: `doc.users[0].name`, want: "alice"},
		{src: `getpath("$.users[1].name") == who`, want: true},
		{src: `getpath("$.missing")`, want: nil},
		{src: `len(listpath("$.users[*].name"))`, want: 2},
		{src: `map(filter(doc.users, .admin), .name)`, want: []any{"alice"}},
		{src: `truth("$.users[1].admin") || truth("$.users")`, want: true},
	}
	for _, tt := range tests {
		got, err := evalDoc(tt.src, y, env)
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tt.src, diff)
		}
	}
	if _, err := evalDoc(`getpath("$.users[*]")`, y, env); err == nil {
		t.Errorf("expected error for wildcard get")
	}
}
