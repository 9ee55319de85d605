package ocular_test

import (
	"reflect"
	"testing"

	ocular "github.com/ocular-go/ocular"
)

// box is a tiny custom container species used to exercise the registry.
type box struct {
	inner map[string]any
}

type boxAdapter struct{}

func (boxAdapter) AtMaybe(container, key any) ocular.Maybe {
	b := container.(*box)
	name, ok := key.(string)
	if !ok {
		return ocular.Nothing()
	}
	v, ok := b.inner[name]
	if !ok {
		return ocular.Nothing()
	}
	return ocular.Just(v)
}

func (boxAdapter) CloneWith(container any, op ocular.CloneOp) any {
	b := container.(*box)
	inner := make(map[string]any, len(b.inner)+1)
	for k, v := range b.inner {
		inner[k] = v
	}
	switch {
	case op.IsSet():
		inner[op.Key.(string)] = op.Val
	case op.IsRemove():
		delete(inner, op.Key.(string))
	}
	return &box{inner: inner}
}

func TestRegisterAdapter_CustomSpecies(t *testing.T) {
	ocular.RegisterAdapter(reflect.TypeOf((*box)(nil)), boxAdapter{})

	s := map[string]any{"b": &box{inner: map[string]any{"x": 10}}}
	l := ocular.NewLens("b", "x")
	if got := ocular.Get(l, s); got != 10 {
		t.Fatalf("got %v", got)
	}
	out := ocular.SetInClone(l, s, 11).(map[string]any)
	if got := ocular.Get(l, out); got != 11 {
		t.Fatalf("got %v", got)
	}
	if s["b"].(*box).inner["x"] != 10 {
		t.Fatalf("original box was mutated")
	}
}

func TestRegisterAdapter_FirstWins(t *testing.T) {
	type once struct{ m map[string]any }
	ty := reflect.TypeOf(once{})
	if !ocular.RegisterAdapter(ty, boxAdapter{}) {
		t.Fatalf("first registration must succeed")
	}
	if ocular.RegisterAdapter(ty, boxAdapter{}) {
		t.Fatalf("second registration for the same species must be refused")
	}
	// the canonical species were claimed at module load
	if ocular.RegisterAdapter(reflect.TypeOf(map[string]any(nil)), boxAdapter{}) {
		t.Fatalf("built-in species must not be replaceable")
	}
	if ocular.RegisterAdapter(reflect.TypeOf([]any(nil)), boxAdapter{}) {
		t.Fatalf("built-in species must not be replaceable")
	}
}

func TestSeqAdapter_OutOfRange(t *testing.T) {
	s := []any{1, 2, 3}
	for _, k := range []int{3, 7, -4} {
		if ocular.NewLens(k).GetMaybe(s).Present() {
			t.Fatalf("index %d must read as Nothing", k)
		}
	}
}

func TestSeqAdapter_GrowWithHoles(t *testing.T) {
	s := []any{1}
	out := ocular.SetInClone(ocular.NewLens(3), s, "x").([]any)
	if len(out) != 4 {
		t.Fatalf("length = %d, want 4", len(out))
	}
	if out[0] != 1 || out[3] != "x" {
		t.Fatalf("got %#v", out)
	}
	for i := 1; i < 3; i++ {
		if !ocular.IsHole(out[i]) {
			t.Fatalf("gap position %d must be a hole, got %#v", i, out[i])
		}
		if ocular.NewLens(i).GetMaybe(out).Present() {
			t.Fatalf("gap position %d must read as Nothing", i)
		}
	}
}

func TestSeqAdapter_TypedSlice(t *testing.T) {
	s := []int{1, 2, 3}
	if got := ocular.Get(ocular.NewLens(1), s); got != 2 {
		t.Fatalf("got %v", got)
	}
	out := ocular.SetInClone(ocular.NewLens(1), s, 9).([]int)
	if !reflect.DeepEqual(out, []int{1, 9, 3}) {
		t.Fatalf("got %#v", out)
	}
}

func TestSeqAdapter_Float64Key(t *testing.T) {
	// indices parsed from JSON arrive as float64
	s := []any{"a", "b"}
	if got := ocular.Get(ocular.NewLens(float64(1)), s); got != "b" {
		t.Fatalf("got %v", got)
	}
	if ocular.NewLens(1.5).GetMaybe(s).Present() {
		t.Fatalf("fractional keys must not index a sequence")
	}
}

func TestAssocAdapter_ArbitraryKeys(t *testing.T) {
	s := map[any]any{42: "answer", true: "yes"}
	if got := ocular.Get(ocular.NewLens("ignored"), s); got != nil {
		t.Fatalf("got %v", got)
	}
	l := ocular.NewLens(true)
	if got := ocular.Get(l, s); got != "yes" {
		t.Fatalf("got %v", got)
	}
	out := ocular.SetInClone(l, s, "no").(map[any]any)
	if out[true] != "no" || out[42] != "answer" {
		t.Fatalf("got %#v", out)
	}
	if s[true] != "yes" {
		t.Fatalf("original map was mutated")
	}
}

func TestAssocAdapter_SpeciesPreserved(t *testing.T) {
	s := map[string]int{"n": 1}
	out := ocular.SetInClone(ocular.NewLens("n"), s, 2)
	if _, ok := out.(map[string]int); !ok {
		t.Fatalf("clone species changed: %T", out)
	}
}

func TestUnadaptedContainer(t *testing.T) {
	if ocular.NewLens("x").GetMaybe(12).Present() {
		t.Fatalf("a scalar has no slots")
	}
	s := 12
	if out := ocular.SetInClone(ocular.NewLens("x"), s, 1); out != s {
		t.Fatalf("write through an unadapted subject must be a no-op")
	}
}
