package ocular

import "reflect"

// BindOpt configures Binding.
type BindOpt struct {
	// On is the subject the optic's target is resolved within.
	On any
	// BindNow fixes the target at Binding time. Without it, every invocation
	// re-resolves the target inside On, so later changes to On's contents
	// alter what is bound.
	BindNow bool
	// OrError makes invocations fail with this error when no callable target
	// method exists.
	OrError error
	// Or supplies a fallback invoked when no callable target method exists.
	Or func(args ...any) []any
}

// Bound is a method bound through an optic. Results are the method's return
// values in order.
type Bound func(args ...any) ([]any, error)

// Binding resolves the optic's target within opt.On and returns methodName
// bound to it. A missing target or method falls back per BindOpt: OrError,
// then Or, then a no-op function. The returned function is never nil.
func Binding(o Optic, methodName string, opt BindOpt) Bound {
	if opt.BindNow {
		m, ok := resolveMethod(o, opt.On, methodName)
		if !ok {
			return missBound(opt)
		}
		return callBound(m)
	}
	return func(args ...any) ([]any, error) {
		m, ok := resolveMethod(o, opt.On, methodName)
		if !ok {
			return missBound(opt)(args...)
		}
		return callBound(m)(args...)
	}
}

func resolveMethod(o Optic, on any, name string) (reflect.Value, bool) {
	tm := o.GetMaybe(on)
	if !tm.Present() || tm.Get() == nil {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(tm.Get()).MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	return m, true
}

func missBound(opt BindOpt) Bound {
	switch {
	case opt.OrError != nil:
		return func(...any) ([]any, error) { return nil, opt.OrError }
	case opt.Or != nil:
		return func(args ...any) ([]any, error) { return opt.Or(args...), nil }
	default:
		return func(...any) ([]any, error) { return nil, nil }
	}
}

func callBound(m reflect.Value) Bound {
	return func(args ...any) ([]any, error) {
		mt := m.Type()
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			if a != nil {
				in[i] = reflect.ValueOf(a)
				continue
			}
			// a typed zero for nil, so reflect.Call accepts it
			var pt reflect.Type
			if mt.IsVariadic() && i >= mt.NumIn()-1 {
				pt = mt.In(mt.NumIn() - 1).Elem()
			} else {
				pt = mt.In(i)
			}
			in[i] = reflect.Zero(pt)
		}
		outs := m.Call(in)
		res := make([]any, len(outs))
		for i, ov := range outs {
			res[i] = ov.Interface()
		}
		return res, nil
	}
}
