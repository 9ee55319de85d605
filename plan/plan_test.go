package plan_test

import (
	"reflect"
	"testing"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/plan"
)

var example = map[string]any{
	"server": map[string]any{"host": "localhost", "port": 80},
	"tags":   []any{"a", "b"},
	"debug":  false,
}

func TestBuild_MirrorsShape(t *testing.T) {
	p := plan.Build(example).(map[string]any)

	port := p["server"].(map[string]any)["port"].(*ocular.Lens)
	if got := port.Steps(); !reflect.DeepEqual(got, []any{"server", "port"}) {
		t.Fatalf("got %#v", got)
	}

	tag := p["tags"].([]any)[1].(*ocular.Lens)
	if got := ocular.Get(tag, example); got != "b" {
		t.Fatalf("got %v", got)
	}

	root := p["debug"].(*ocular.Lens)
	out := ocular.SetInClone(root, example, true)
	if out.(map[string]any)["debug"] != true {
		t.Fatalf("got %#v", out)
	}
	if example["debug"] != false {
		t.Fatalf("example mutated")
	}
}

func TestBuild_LensesAddressOtherSubjects(t *testing.T) {
	p := plan.Build(example).(map[string]any)
	host := p["server"].(map[string]any)["host"].(*ocular.Lens)

	other := map[string]any{"server": map[string]any{"host": "prod"}}
	if got := ocular.Get(host, other); got != "prod" {
		t.Fatalf("got %v", got)
	}
}

func TestLeaves_Deterministic(t *testing.T) {
	ls := plan.Leaves(example)
	var paths [][]any
	for _, l := range ls {
		paths = append(paths, l.Steps())
	}
	want := [][]any{
		{"debug"},
		{"server", "host"},
		{"server", "port"},
		{"tags", 0},
		{"tags", 1},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %#v, want %#v", paths, want)
	}
}

func TestFocal(t *testing.T) {
	f := plan.Focal(map[string]any{"a": 0, "b": map[string]any{"c": 0}})
	s := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	agg := f.GetMaybe(s).Get().(map[string]any)
	if len(agg) != 2 {
		t.Fatalf("got %#v", agg)
	}
	for _, v := range agg {
		if v != 1 && v != 2 {
			t.Fatalf("got %#v", agg)
		}
	}
}

func TestFromJSON(t *testing.T) {
	v, err := plan.FromJSON([]byte(`{"users":[{"name":"ada"}],"n":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := ocular.NewLens("users", 0, "name")
	if got := ocular.Get(l, v); got != "ada" {
		t.Fatalf("got %v", got)
	}

	if _, err := plan.FromJSON([]byte(`{broken`)); err == nil {
		t.Fatalf("malformed json must fail")
	}
}

func TestFromYAML(t *testing.T) {
	v, err := plan.FromYAML([]byte("server:\n  port: 8080\ntags: [x, y]\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ocular.Get(ocular.NewLens("server", "port"), v); got != 8080 {
		t.Fatalf("got %v", got)
	}
	if got := ocular.Get(ocular.NewLens("tags", 1), v); got != "y" {
		t.Fatalf("got %v", got)
	}

	if _, err := plan.FromYAML([]byte(": :\n\t-")); err == nil {
		t.Fatalf("malformed yaml must fail")
	}
}
