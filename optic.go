package ocular

import "reflect"

// Optic is the capability contract for a navigable, settable path into
// nested data. Everything else — Get, Present, SetInClone and the other
// derived operations — is implemented once, generically, on top of these two
// primitives, so a type becomes a full optic by implementing just them.
//
// Optics are immutable value objects: construct once, share freely, apply to
// unboundedly many subjects. A traversal never mutates its subject.
type Optic interface {
	// GetMaybe resolves the optic's slot within subject. Tail arguments
	// continue resolution through an optic found at the slot.
	GetMaybe(subject any, tail ...any) Maybe

	// XformInCloneMaybe applies fn to the Maybe describing the slot's
	// current state and returns a minimally-changed clone of subject
	// reflecting fn's result: Just to set, Nothing to remove. When fn
	// preserves the current state the original subject is returned
	// untouched.
	XformInCloneMaybe(subject any, fn func(Maybe) Maybe) any
}

// XformOpt configures XformInClone.
type XformOpt struct {
	// AddMissing makes the transform run even when the slot is absent; the
	// transform then receives nil and its result becomes the new value.
	AddMissing bool
}

// IterOpt configures the iterable operations.
type IterOpt struct {
	// OrError, when set, turns a missing or non-iterable slot into an
	// *IterableError wrapping it instead of the empty-sequence fallback.
	OrError error
}

// Get returns the optic's value within subject, or nil when absent.
func Get(o Optic, subject any, tail ...any) any {
	return o.GetMaybe(subject, tail...).GetOr(nil)
}

// Present reports whether the optic resolves to a present slot in subject.
func Present(o Optic, subject any) bool {
	return o.GetMaybe(subject).Present()
}

// Getting resolves the optic in subject and dispatches on presence. Either
// callback may be nil, in which case the corresponding case yields nil.
func Getting(o Optic, subject any, onJust func(v any) any, onNothing func() any) any {
	m := o.GetMaybe(subject)
	if m.Present() {
		if onJust == nil {
			return nil
		}
		return onJust(m.Get())
	}
	if onNothing == nil {
		return nil
	}
	return onNothing()
}

// SetInClone returns a minimally-changed clone of subject with the optic's
// slot set to newVal. Setting a value strictly equal to the present one
// returns subject itself, with no clone at any depth.
func SetInClone(o Optic, subject, newVal any) any {
	return o.XformInCloneMaybe(subject, func(Maybe) Maybe { return Just(newVal) })
}

// RemoveInClone returns a minimally-changed clone of subject with the
// optic's slot removed. An already-absent slot is a no-op.
func RemoveInClone(o Optic, subject any) any {
	return o.XformInCloneMaybe(subject, func(Maybe) Maybe { return Nothing() })
}

// XformInClone transforms the optic's present value through fn in a minimal
// clone. An absent slot is a no-op — fn is not invoked — unless AddMissing is
// given, in which case fn receives nil and its result is installed.
func XformInClone(o Optic, subject any, fn func(v any) any, opts ...XformOpt) any {
	var opt XformOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	return o.XformInCloneMaybe(subject, func(m Maybe) Maybe {
		if !m.Present() {
			if !opt.AddMissing {
				return Nothing()
			}
			return Just(fn(nil))
		}
		return Just(fn(m.Get()))
	})
}

// GetIterable returns the optic's value as a sequence. An absent slot or a
// non-iterable value (character strings count as scalar here) yields an
// empty sequence, or an *IterableError when OrError is configured.
func GetIterable(o Optic, subject any, opts ...IterOpt) ([]any, error) {
	var opt IterOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	m := o.GetMaybe(subject)
	if m.Present() {
		if seq, ok := asIterable(m.Get()); ok {
			return seq, nil
		}
	}
	if opt.OrError != nil {
		return nil, &IterableError{Err: opt.OrError, Value: m}
	}
	return []any{}, nil
}

// XformIterableInClone transforms the optic's value as a sequence in a
// minimal clone. fn always receives a sequence: the slot's value when it is
// iterable, an empty one otherwise (or the call fails with *IterableError
// when OrError is configured). A non-iterable transform result is logged and
// replaced with an empty sequence rather than installed.
func XformIterableInClone(o Optic, subject any, fn func(vals []any) any, opts ...IterOpt) (any, error) {
	var opt IterOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	var iterErr error
	out := o.XformInCloneMaybe(subject, func(m Maybe) Maybe {
		in, ok := []any{}, false
		if m.Present() {
			in, ok = asIterable(m.Get())
		}
		if !ok {
			if opt.OrError != nil {
				iterErr = &IterableError{Err: opt.OrError, Value: m}
				return m
			}
			in = []any{}
		}
		res := fn(in)
		if isIterable(res) {
			return Just(res)
		}
		warnf("iterable transform returned %T; substituting an empty sequence", res)
		return Just([]any{})
	})
	if iterErr != nil {
		return subject, iterErr
	}
	return out, nil
}

// isIterable reports whether v is a sequence for the iterable operations.
// Strings are deliberately scalar.
func isIterable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// asIterable converts a sequence value to []any, reporting false for
// non-iterable values.
func asIterable(v any) ([]any, bool) {
	if !isIterable(v) {
		return nil, false
	}
	if seq, ok := v.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
