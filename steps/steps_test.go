package steps_test

import (
	"testing"
	"time"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/steps"
)

func TestTimeRFC3339_Read(t *testing.T) {
	l := ocular.NewLens("event", steps.TimeRFC3339("at"))
	s := map[string]any{"event": map[string]any{"at": "2026-08-23T10:00:00Z"}}

	got := ocular.Get(l, s).(time.Time)
	want := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// a malformed or non-string slot reads as absent
	for _, bad := range []any{"not a time", 7} {
		s := map[string]any{"event": map[string]any{"at": bad}}
		if m := l.GetMaybe(s); m.Present() {
			t.Fatalf("value %#v must read as absent, got %#v", bad, m)
		}
	}
}

func TestTimeRFC3339_Write(t *testing.T) {
	l := ocular.NewLens("event", steps.TimeRFC3339("at"))
	s := map[string]any{"event": map[string]any{"at": "2026-08-23T10:00:00Z", "kind": "launch"}}

	out := ocular.SetInClone(l, s, time.Date(2027, 1, 2, 3, 4, 5, 0, time.UTC))
	ev := out.(map[string]any)["event"].(map[string]any)
	if ev["at"] != "2027-01-02T03:04:05Z" {
		t.Fatalf("got %#v", ev["at"])
	}
	if ev["kind"] != "launch" {
		t.Fatalf("sibling slot lost: %#v", ev)
	}
	if s["event"].(map[string]any)["at"] != "2026-08-23T10:00:00Z" {
		t.Fatalf("original mutated")
	}

	// removal through the step removes the wire slot
	out = ocular.RemoveInClone(l, s)
	if _, still := out.(map[string]any)["event"].(map[string]any)["at"]; still {
		t.Fatalf("slot must be removed, got %#v", out)
	}
}

func TestTimeRFC3339_Transform(t *testing.T) {
	l := ocular.NewLens("at")
	viewed := ocular.NewLens(steps.TimeRFC3339("at"))
	s := map[string]any{"at": "2026-08-23T10:00:00Z"}

	out := ocular.XformInClone(viewed, s, func(v any) any {
		return v.(time.Time).Add(time.Hour)
	})
	if got := ocular.Get(l, out); got != "2026-08-23T11:00:00Z" {
		t.Fatalf("got %v", got)
	}
}

func TestJSONText(t *testing.T) {
	l := ocular.NewLens("payload", steps.JSONText("body"))
	s := map[string]any{"payload": map[string]any{"body": `{"n": 1}`}}

	got := ocular.Get(ocular.Fuse(l, ocular.NewLens("n")), s)
	if got != float64(1) {
		t.Fatalf("got %#v", got)
	}

	out := ocular.SetInClone(l, s, map[string]any{"n": 2})
	body := out.(map[string]any)["payload"].(map[string]any)["body"].(string)
	if body != `{"n":2}` {
		t.Fatalf("got %q", body)
	}

	// malformed embedded documents read as absent
	bad := map[string]any{"payload": map[string]any{"body": `{broken`}}
	if m := l.GetMaybe(bad); m.Present() {
		t.Fatalf("got %#v", m)
	}
}
