package ocular

import (
	"fmt"
	"reflect"
)

type holeMark struct{}

// Hole marks an absent element inside a sequence container. Removing a
// non-trailing index leaves a Hole at that position instead of shifting later
// elements down, which keeps positions stable across multi-step edits.
// Reading a Hole through the sequence adapter yields Nothing.
var Hole = holeMark{}

// IsHole reports whether v is the sequence hole marker.
func IsHole(v any) bool {
	_, ok := v.(holeMark)
	return ok
}

// seqAdapter services indexed sequence containers (any slice species).
// Negative keys index from the end; resolved indices outside [0,len) and
// Hole elements read as Nothing.
type seqAdapter struct{}

// seqIndex coerces the supported key shapes to an int index. Numeric keys
// arrive as any int kind, or as a whole float64 when the subject came out of
// a JSON decoder.
func seqIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		return int(k), true
	case uint:
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return int(k), true
	case uint64:
		return int(k), true
	case float64:
		if k == float64(int(k)) {
			return int(k), true
		}
	}
	return 0, false
}

func (seqAdapter) AtMaybe(container, key any) Maybe {
	idx, ok := seqIndex(key)
	if !ok {
		return Nothing()
	}
	rv := reflect.ValueOf(container)
	n := rv.Len()
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return Nothing()
	}
	v := rv.Index(idx).Interface()
	if IsHole(v) {
		return Nothing()
	}
	return Just(v)
}

func (seqAdapter) CloneWith(container any, op CloneOp) any {
	rv := reflect.ValueOf(container)
	n := rv.Len()
	switch {
	case op.IsSet():
		idx, ok := seqIndex(op.Key)
		if !ok {
			panic(fmt.Sprintf("ocular: sequence key %v (%T) is not an index", op.Key, op.Key))
		}
		if idx < 0 {
			idx += n
		}
		if idx < 0 {
			// still unreachable after end-relative normalization; the read
			// path maps this key to Nothing, so the write degrades to a no-op
			return container
		}
		size := n
		if idx >= size {
			size = idx + 1
		}
		out := reflect.MakeSlice(rv.Type(), size, size)
		reflect.Copy(out, rv)
		fillGap(out, n, idx)
		setElem(out.Index(idx), op.Val, rv.Type())
		return out.Interface()
	case op.IsRemove():
		idx, ok := seqIndex(op.Key)
		if !ok {
			return cloneSlice(rv).Interface()
		}
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx >= n {
			return cloneSlice(rv).Interface()
		}
		if idx == n-1 {
			out := reflect.MakeSlice(rv.Type(), n-1, n-1)
			reflect.Copy(out, rv)
			return out.Interface()
		}
		out := cloneSlice(rv)
		elem := out.Index(idx)
		if elem.Kind() == reflect.Interface {
			elem.Set(reflect.ValueOf(Hole))
		} else {
			elem.Set(reflect.Zero(elem.Type()))
		}
		return out.Interface()
	default:
		return cloneSlice(rv).Interface()
	}
}

func cloneSlice(rv reflect.Value) reflect.Value {
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out
}

// fillGap marks the positions a growing set skipped over as holes, so the
// gap reads as absent rather than as a run of nils.
func fillGap(out reflect.Value, oldLen, idx int) {
	if out.Type().Elem().Kind() != reflect.Interface {
		return
	}
	hv := reflect.ValueOf(Hole)
	for i := oldLen; i < idx; i++ {
		out.Index(i).Set(hv)
	}
}

func setElem(dst reflect.Value, val any, species reflect.Type) {
	if val == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}
	rv := reflect.ValueOf(val)
	if !rv.Type().AssignableTo(dst.Type()) {
		panic(&SpeciesError{Species: species, Reason: fmt.Sprintf("value of type %T is not assignable to element type %v", val, dst.Type())})
	}
	dst.Set(rv)
}

// assocAdapter services keyed associative containers (any map species),
// covering both JSON-style string-keyed objects and maps with arbitrary
// keys. Clones are built with the container's own species.
type assocAdapter struct{}

func assocKey(rv reflect.Value, key any) (reflect.Value, bool) {
	kt := rv.Type().Key()
	if key == nil {
		if kt.Kind() == reflect.Interface {
			return reflect.Zero(kt), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(kt) {
		return kv, true
	}
	return reflect.Value{}, false
}

func (assocAdapter) AtMaybe(container, key any) Maybe {
	rv := reflect.ValueOf(container)
	kv, ok := assocKey(rv, key)
	if !ok {
		return Nothing()
	}
	v := rv.MapIndex(kv)
	if !v.IsValid() {
		return Nothing()
	}
	return Just(v.Interface())
}

func (assocAdapter) CloneWith(container any, op CloneOp) any {
	rv := reflect.ValueOf(container)
	out := reflect.MakeMapWithSize(rv.Type(), rv.Len()+1)
	it := rv.MapRange()
	for it.Next() {
		out.SetMapIndex(it.Key(), it.Value())
	}
	switch {
	case op.IsSet():
		kv, ok := assocKey(rv, op.Key)
		if !ok {
			panic(&SpeciesError{Species: rv.Type(), Reason: fmt.Sprintf("key of type %T is not assignable to key type %v", op.Key, rv.Type().Key())})
		}
		vt := rv.Type().Elem()
		if op.Val == nil {
			out.SetMapIndex(kv, reflect.Zero(vt))
			return out.Interface()
		}
		vv := reflect.ValueOf(op.Val)
		if !vv.Type().AssignableTo(vt) {
			panic(&SpeciesError{Species: rv.Type(), Reason: fmt.Sprintf("value of type %T is not assignable to value type %v", op.Val, vt)})
		}
		out.SetMapIndex(kv, vv)
	case op.IsRemove():
		if kv, ok := assocKey(rv, op.Key); ok {
			out.SetMapIndex(kv, reflect.Value{})
		}
	}
	return out.Interface()
}

// recordAdapter services record-like containers: struct species and pointers
// to them, with exported fields as slots. Absence is not representable in a
// Go struct, so removing a field zeroes it. Misuse of a species (missing or
// unexported field, unassignable value) is a configuration error and panics
// with a *SpeciesError.
type recordAdapter struct{}

func recordValue(container any) (reflect.Value, bool) {
	rv := reflect.ValueOf(container)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.Kind() == reflect.Struct
}

func (recordAdapter) AtMaybe(container, key any) Maybe {
	name, ok := key.(string)
	if !ok {
		return Nothing()
	}
	rv, ok := recordValue(container)
	if !ok {
		return Nothing()
	}
	f, ok := rv.Type().FieldByName(name)
	if !ok || !f.IsExported() {
		return Nothing()
	}
	return Just(rv.FieldByIndex(f.Index).Interface())
}

func (recordAdapter) CloneWith(container any, op CloneOp) any {
	src, ok := recordValue(container)
	if !ok {
		panic(&SpeciesError{Species: reflect.TypeOf(container), Reason: "cannot construct a record clone"})
	}
	species := src.Type()
	clone := reflect.New(species)
	clone.Elem().Set(src)
	if op.IsSet() || op.IsRemove() {
		name, isStr := op.Key.(string)
		if !isStr {
			panic(&SpeciesError{Species: species, Reason: fmt.Sprintf("record key %v (%T) is not a field name", op.Key, op.Key)})
		}
		f, found := species.FieldByName(name)
		switch {
		case !found && op.IsRemove():
			// removing a field the species never had is a no-op
		case !found || !f.IsExported():
			panic(&SpeciesError{Species: species, Field: name, Reason: "no such settable field"})
		default:
			fv := clone.Elem().FieldByIndex(f.Index)
			if op.IsRemove() || op.Val == nil {
				fv.Set(reflect.Zero(fv.Type()))
				break
			}
			vv := reflect.ValueOf(op.Val)
			if !vv.Type().AssignableTo(fv.Type()) {
				panic(&SpeciesError{Species: species, Field: name, Reason: fmt.Sprintf("value of type %T is not assignable", op.Val)})
			}
			fv.Set(vv)
		}
	}
	if reflect.TypeOf(container).Kind() == reflect.Pointer {
		return clone.Interface()
	}
	return clone.Elem().Interface()
}
