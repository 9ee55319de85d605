package ocular

// Maybe distinguishes presence-with-value from absence. Absence is structural:
// a Just carrying nil is present, and only Nothing is absent. Every core
// operation that can fail to locate a slot reports the outcome as a Maybe
// instead of an error or a sentinel value.
type Maybe struct {
	value     any
	present   bool
	aggregate bool
}

// Just returns a present Maybe carrying v. nil is a valid payload.
func Just(v any) Maybe { return Maybe{value: v, present: true} }

// Nothing returns the absent Maybe.
func Nothing() Maybe { return Maybe{} }

// justAggregate marks a multifocal result so chaining logic does not mistake
// the aggregate container for an ordinary scalar target.
func justAggregate(v any) Maybe { return Maybe{value: v, present: true, aggregate: true} }

// Present reports whether the Maybe carries a value.
func (m Maybe) Present() bool { return m.present }

// Aggregate reports whether the value is a multifocal aggregate rather than a
// single-slot result.
func (m Maybe) Aggregate() bool { return m.aggregate }

// Get returns the carried value. It panics when called on Nothing; callers
// must check Present first (or use GetOr).
func (m Maybe) Get() any {
	if !m.present {
		panic("ocular: Get on Nothing")
	}
	return m.value
}

// GetOr returns the carried value, or def when the Maybe is Nothing.
func (m Maybe) GetOr(def any) any {
	if m.present {
		return m.value
	}
	return def
}
