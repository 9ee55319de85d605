package ocular_test

import (
	"testing"

	ocular "github.com/ocular-go/ocular"
)

// verStep navigates a {"v": n, "payload": ...} wrapper, exposing the payload
// and bumping the version on every updated clone.
func verStep() ocular.Step {
	return ocular.Step{
		Get: func(container any) ocular.Maybe {
			w, ok := container.(map[string]any)
			if !ok {
				return ocular.Nothing()
			}
			p, ok := w["payload"]
			if !ok {
				return ocular.Nothing()
			}
			return ocular.Just(p)
		},
		UpdatedClone: func(container any, val ocular.Maybe) any {
			w := container.(map[string]any)
			out := map[string]any{"v": w["v"].(int) + 1}
			if val.Present() {
				out["payload"] = val.Get()
			}
			return out
		},
		Construct: func() any { return map[string]any{"v": 0} },
	}
}

func TestStep_FullCapability(t *testing.T) {
	s := map[string]any{"doc": map[string]any{"v": 3, "payload": "old"}}
	l := ocular.NewLens("doc", verStep())

	if got := ocular.Get(l, s); got != "old" {
		t.Fatalf("got %v", got)
	}
	out := ocular.SetInClone(l, s, "new").(map[string]any)
	doc := out["doc"].(map[string]any)
	if doc["payload"] != "new" || doc["v"] != 4 {
		t.Fatalf("got %#v", doc)
	}

	// construct runs for the missing wrapper
	out = ocular.SetInClone(l, map[string]any{}, "fresh").(map[string]any)
	doc = out["doc"].(map[string]any)
	if doc["payload"] != "fresh" || doc["v"] != 1 {
		t.Fatalf("got %#v", doc)
	}
}

func TestStep_ReadOnlyDegradation(t *testing.T) {
	st := verStep()
	st.UpdatedClone = nil
	st.Construct = nil
	l := ocular.NewLens("doc", st)

	s := map[string]any{"doc": map[string]any{"v": 1, "payload": "x"}}
	if got := ocular.Get(l, s); got != "x" {
		t.Fatalf("read must still work, got %v", got)
	}
	if !ocular.Present(l, s) {
		t.Fatalf("present must still work")
	}

	// no construct and no updated-clone: writes are no-ops
	empty := map[string]any{}
	if out := ocular.SetInClone(l, empty, "v"); !sameRef(out, empty) {
		t.Fatalf("write through a missing unconstructable step must be a no-op")
	}
	if out := ocular.SetInClone(l, s, "v"); !sameRef(out, s) {
		t.Fatalf("write through an unmodifiable step must be a no-op")
	}
}

func TestStep_NoRead(t *testing.T) {
	st := verStep()
	st.Get = nil
	l := ocular.NewLens("doc", st)
	s := map[string]any{"doc": map[string]any{"v": 1, "payload": "x"}}
	if l.GetMaybe(s).Present() {
		t.Fatalf("a step without a read operation must always resolve to Nothing")
	}
}

func TestStep_ConstructWithoutUpdateIsInert(t *testing.T) {
	st := verStep()
	st.UpdatedClone = nil
	l := ocular.NewLens("doc", st)
	empty := map[string]any{}
	if out := ocular.SetInClone(l, empty, "v"); !sameRef(out, empty) {
		t.Fatalf("construct without updated-clone cannot create the slot")
	}
}
