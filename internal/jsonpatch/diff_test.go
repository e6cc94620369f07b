package jsonpatch

import (
	"testing"

	json "github.com/goccy/go-json"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return v
}

func TestDiffIdentical(t *testing.T) {
	doc := `{"settings":{"base_net_worth":1000},"events":[{"amount":5}]}`

	if ops := Diff(decode(t, doc), decode(t, doc), ""); len(ops) != 0 {
		t.Fatalf("expected no ops, got %+v", ops)
	}
}

func TestDiffObjects(t *testing.T) {
	a := decode(t, `{"b":1,"a":2,"gone":true,"a/b":"x"}`)
	b := decode(t, `{"b":1,"a":3,"new":"y","a/b":"z"}`)

	ops := Diff(a, b, "")

	want := []Op{
		{Op: OpRemove, Path: "/gone"},
		{Op: OpReplace, Path: "/a", Value: float64(3)},
		{Op: OpReplace, Path: "/a~1b", Value: "z"},
		{Op: OpAdd, Path: "/new", Value: "y"},
	}
	if len(ops) != len(want) {
		t.Fatalf("expected %d ops, got %+v", len(want), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("op %d: expected %+v, got %+v", i, want[i], ops[i])
		}
	}
}

func TestDiffArrays(t *testing.T) {
	a := decode(t, `[1,2,3,4]`)
	b := decode(t, `[1,5]`)

	ops := Diff(a, b, "/events")

	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %+v", ops)
	}
	if ops[0].Path != "/events/1" || ops[0].Op != OpReplace {
		t.Fatalf("unexpected first op %+v", ops[0])
	}
	if ops[1].Path != "/events/3" || ops[2].Path != "/events/2" {
		t.Fatalf("expected removals from the end, got %+v", ops[1:])
	}
}

func TestDiffTypeChange(t *testing.T) {
	ops := Diff(decode(t, `{"x":[1]}`), decode(t, `{"x":{"y":1}}`), "")

	if len(ops) != 1 || ops[0].Op != OpReplace || ops[0].Path != "/x" {
		t.Fatalf("expected a single replace, got %+v", ops)
	}
}

func TestRemoveOpOmitsValue(t *testing.T) {
	b, err := json.Marshal(Op{Op: OpRemove, Path: "/a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"op":"remove","path":"/a"}` {
		t.Fatalf("unexpected encoding %s", b)
	}

	b, _ = json.Marshal(Op{Op: OpReplace, Path: "/a", Value: nil})
	if string(b) != `{"op":"replace","path":"/a","value":null}` {
		t.Fatalf("unexpected encoding %s", b)
	}
}
