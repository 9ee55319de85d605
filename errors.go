package ocular

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// StereoscopyError reports a multifocal write that could not be reconciled
// into one consistent clone: after the per-key fan-out, reading the aggregate
// back from the produced clone did not reproduce the requested values. The
// usual cause is two child optics aliasing the same underlying storage.
type StereoscopyError struct {
	// Keys lists the child keys whose read-back disagreed with the request,
	// rendered as strings for both sequence- and record-shaped multifocals.
	Keys []string
}

func (e *StereoscopyError) Error() string {
	ks := append([]string(nil), e.Keys...)
	sort.Strings(ks)
	return fmt.Sprintf("ocular: inconsistent multifocal write (conflicting keys: %s)", strings.Join(ks, ", "))
}

// SpeciesError reports a record-like container species the built-in record
// adapter cannot service: a non-struct species, a missing or unexported
// field, or a value not assignable to the field. This is a configuration
// error, so the adapter fails loudly instead of degrading.
type SpeciesError struct {
	Species reflect.Type
	Field   string
	Reason  string
}

func (e *SpeciesError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("ocular: record species %v: %s", e.Species, e.Reason)
	}
	return fmt.Sprintf("ocular: record species %v, field %q: %s", e.Species, e.Field, e.Reason)
}

// IterableError carries the offending value when GetIterable or
// XformIterableInClone is asked to fail on a missing or non-iterable slot.
// The caller-supplied error is wrapped so errors.Is still matches it.
type IterableError struct {
	Err   error
	Value Maybe
}

func (e *IterableError) Error() string {
	if e.Value.Present() {
		return fmt.Sprintf("%v (got %T)", e.Err, e.Value.Get())
	}
	return fmt.Sprintf("%v (slot absent)", e.Err)
}

func (e *IterableError) Unwrap() error { return e.Err }
