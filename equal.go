package ocular

import "reflect"

// sameValue is the strict equality used by the minimal-clone short-circuit:
// comparable values compare with ==, containers compare by identity (same
// backing store), and everything else is considered distinct. The check must
// never allocate and must never panic on uncomparable inputs.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && ra.Cap() == rb.Cap() &&
			(ra.Len() == 0 || ra.Pointer() == rb.Pointer())
	default:
		if ra.Comparable() {
			return a == b
		}
		return false
	}
}
