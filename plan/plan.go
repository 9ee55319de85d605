// Package plan derives optics from example documents.
//
// Build walks a JSON-shaped example and returns a value of the same shape in
// which every leaf has been replaced by a lens addressing that position.
// Picking a lens out of the plan with ordinary indexing then reads or writes
// the corresponding slot of any similarly shaped subject:
//
//	p := plan.Build(example).(map[string]any)
//	port := p["server"].(map[string]any)["port"].(*ocular.Lens)
//	cfg2 := ocular.SetInClone(port, cfg, 8080)
//
// FromJSON and FromYAML decode documents into the map[string]any / []any
// shapes the optics operate on.
package plan

import (
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"

	ocular "github.com/ocular-go/ocular"
	"github.com/ocular-go/ocular/debug"
)

// Build mirrors example, substituting a *Lens for every leaf. Containers are
// recognized by shape: map[string]any and []any recurse, everything else is a
// leaf.
func Build(example any) any {
	return build(example, nil)
}

func build(v any, prefix []any) any {
	switch c := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, cv := range c {
			out[k] = build(cv, append(prefix[:len(prefix):len(prefix)], k))
		}
		return out
	case []any:
		out := make([]any, len(c))
		for i, cv := range c {
			out[i] = build(cv, append(prefix[:len(prefix):len(prefix)], i))
		}
		return out
	default:
		l := ocular.NewLens(prefix...)
		if debug.Plan() {
			debug.Logf("plan: leaf %v", l)
		}
		return l
	}
}

// Leaves returns the leaf lenses of Build(example) in a deterministic order:
// record keys sorted, sequence elements in index order.
func Leaves(example any) []*ocular.Lens {
	var out []*ocular.Lens
	collect(example, nil, &out)
	return out
}

func collect(v any, prefix []any, out *[]*ocular.Lens) {
	switch c := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collect(c[k], append(prefix[:len(prefix):len(prefix)], k), out)
		}
	case []any:
		for i, cv := range c {
			collect(cv, append(prefix[:len(prefix):len(prefix)], i), out)
		}
	default:
		*out = append(*out, ocular.NewLens(prefix...))
	}
}

// Focal aggregates the leaves of example into one record-shaped multifocal,
// keyed by the leaf's path text.
func Focal(example any) *ocular.RecFocal {
	children := map[string]ocular.Optic{}
	for _, l := range Leaves(example) {
		children[l.String()] = l
	}
	return ocular.NewRecFocal(children)
}

// FromJSON decodes a JSON document into the map[string]any / []any shapes the
// optics operate on.
func FromJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("plan: decode json: %w", err)
	}
	return v, nil
}

// FromYAML decodes a YAML document. yaml.v3 produces map[string]any for
// string-keyed mappings, so the result composes with the same optics as JSON
// input.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("plan: decode yaml: %w", err)
	}
	return v, nil
}
