package ocular_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	ocular "github.com/ocular-go/ocular"
)

// buildSubject folds the generated keys and values into a nested record so
// the laws run against varied shapes, not one fixture.
func buildSubject(keys []string, values []int) map[string]any {
	s := map[string]any{}
	for i, k := range keys {
		v := 0
		if len(values) > 0 {
			v = values[i%len(values)]
		}
		if i%2 == 0 {
			s[k] = v
		} else {
			s[k] = map[string]any{"nested": v, "list": []any{v, v + 1}}
		}
	}
	return s
}

func TestOpticLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("identity transform returns the subject itself", prop.ForAll(
		func(keys []string, values []int, path []string) bool {
			s := buildSubject(keys, values)
			steps := make([]any, len(path))
			for i, p := range path {
				steps[i] = p
			}
			l := ocular.NewLens(steps...)
			out := ocular.XformInClone(l, s, func(v any) any { return v })
			return reflect.ValueOf(out).Pointer() == reflect.ValueOf(s).Pointer()
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Identifier()),
	))

	properties.Property("set then get round-trips", prop.ForAll(
		func(keys []string, values []int, key string, v int) bool {
			s := buildSubject(keys, values)
			l := ocular.NewLens(key)
			out := ocular.SetInClone(l, s, v)
			return ocular.Get(l, out) == v
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Int()),
		gen.Identifier(),
		gen.Int(),
	))

	properties.Property("setting the read-back value is a no-op", prop.ForAll(
		func(keys []string, values []int) bool {
			s := buildSubject(keys, values)
			for k := range s {
				l := ocular.NewLens(k)
				out := ocular.SetInClone(l, s, ocular.Get(l, s))
				if reflect.ValueOf(out).Pointer() != reflect.ValueOf(s).Pointer() {
					return false
				}
				break
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Int()),
	))

	properties.Property("fusion preserves resolution", prop.ForAll(
		func(keys []string, values []int, k1, k2 string) bool {
			s := buildSubject(keys, values)
			fused := ocular.FuseLenses(ocular.NewLens(k1), ocular.NewLens(k2))
			direct := ocular.NewLens(k1, k2)
			fm, dm := fused.GetMaybe(s), direct.GetMaybe(s)
			if fm.Present() != dm.Present() {
				return false
			}
			return !fm.Present() || reflect.DeepEqual(fm.Get(), dm.Get())
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Int()),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.Property("clones never disturb untouched keys", prop.ForAll(
		func(keys []string, values []int, key string, v int) bool {
			s := buildSubject(keys, values)
			out := ocular.SetInClone(ocular.NewLens(key), s, v)
			om := out.(map[string]any)
			for k, ov := range s {
				if k == key {
					continue
				}
				if !reflect.DeepEqual(om[k], ov) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Int()),
		gen.Identifier(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
