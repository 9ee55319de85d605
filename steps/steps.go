// Package steps provides reusable custom steps that view a stored wire value
// through a friendlier domain shape. A viewed slot reads as the decoded value
// and writes accept the decoded shape, re-encoding it into the container; a
// slot whose stored value does not decode reads as absent.
package steps

import (
	"time"

	json "github.com/goccy/go-json"

	ocular "github.com/ocular-go/ocular"
)

// TimeRFC3339 views the string at key as a time.Time. Reads parse RFC3339
// (nanoseconds optional); writes accept a time.Time or a pre-formatted string
// and store the canonical UTC RFC3339Nano form.
func TimeRFC3339(key string) ocular.Step {
	return view(key,
		func(wire any) (any, bool) {
			s, ok := wire.(string)
			if !ok {
				return nil, false
			}
			t, err := parseRFC3339(s)
			if err != nil {
				return nil, false
			}
			return t, true
		},
		func(domain any) (any, bool) {
			switch v := domain.(type) {
			case time.Time:
				return v.UTC().Format(time.RFC3339Nano), true
			case string:
				if _, err := parseRFC3339(v); err != nil {
					return nil, false
				}
				return v, true
			}
			return nil, false
		})
}

// JSONText views the string at key as the document it encodes. Reads decode
// the embedded JSON; writes re-encode the given value into the string slot.
func JSONText(key string) ocular.Step {
	return view(key,
		func(wire any) (any, bool) {
			s, ok := wire.(string)
			if !ok {
				return nil, false
			}
			var v any
			if err := json.Unmarshal([]byte(s), &v); err != nil {
				return nil, false
			}
			return v, true
		},
		func(domain any) (any, bool) {
			out, err := json.Marshal(domain)
			if err != nil {
				return nil, false
			}
			return string(out), true
		})
}

// view builds the common shape of a decoding step: navigation delegates to
// the container's adapter, conversion happens at the edges. A failed encode
// leaves the container untouched.
func view(key string, decode, encode func(any) (any, bool)) ocular.Step {
	return ocular.Step{
		Get: func(container any) ocular.Maybe {
			a, ok := ocular.AdapterFor(container)
			if !ok {
				return ocular.Nothing()
			}
			m := a.AtMaybe(container, key)
			if !m.Present() {
				return m
			}
			v, ok := decode(m.Get())
			if !ok {
				return ocular.Nothing()
			}
			return ocular.Just(v)
		},
		UpdatedClone: func(container any, val ocular.Maybe) any {
			a, ok := ocular.AdapterFor(container)
			if !ok {
				return container
			}
			if !val.Present() {
				return a.CloneWith(container, ocular.CloneRemove(key))
			}
			wire, ok := encode(val.Get())
			if !ok {
				return container
			}
			return a.CloneWith(container, ocular.CloneSet(key, wire))
		},
		Construct: func() any { return map[string]any{} },
	}
}

func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}
