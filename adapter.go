package ocular

import (
	"reflect"
	"sync"

	"github.com/ocular-go/ocular/debug"
)

// cloneKind selects the mutation a CloneWith call applies.
type cloneKind int

const (
	clonePlain cloneKind = iota
	cloneSet
	cloneRemove
)

// CloneOp describes the single mutation applied while cloning a container:
// set a key to a value, remove a key, or clone with no change.
type CloneOp struct {
	kind cloneKind
	Key  any
	Val  any
}

// CloneSet returns the op that sets key to val in the clone.
func CloneSet(key, val any) CloneOp { return CloneOp{kind: cloneSet, Key: key, Val: val} }

// CloneRemove returns the op that removes key in the clone.
func CloneRemove(key any) CloneOp { return CloneOp{kind: cloneRemove, Key: key} }

// ClonePlain returns the op that clones the container unchanged.
func ClonePlain() CloneOp { return CloneOp{kind: clonePlain} }

// IsSet reports whether the op sets a key.
func (op CloneOp) IsSet() bool { return op.kind == cloneSet }

// IsRemove reports whether the op removes a key.
func (op CloneOp) IsRemove() bool { return op.kind == cloneRemove }

// Adapter is the per-container-type navigation and cloning protocol. A
// container species becomes traversable by implementing these two operations;
// the engine hardcodes no container type.
//
// AtMaybe reads the value at key, reporting absence as Nothing. CloneWith
// produces a new container with op applied; it must never mutate the
// original, and the clone must share every untouched element with it.
type Adapter interface {
	AtMaybe(container, key any) Maybe
	CloneWith(container any, op CloneOp) any
}

// adapter registry. Exact species first, container kind as fallback, so a
// registered third-party species always wins over the generic built-ins
// while the built-ins themselves stay un-replaceable (first registration
// wins and the canonical JSON species are registered at module load).
var adapterReg = struct {
	mu     sync.RWMutex
	byType map[reflect.Type]Adapter
}{byType: map[reflect.Type]Adapter{}}

// RegisterAdapter installs a for the given container species. Registration is
// idempotent and first-wins: it reports false, changing nothing, when the
// species already has an adapter.
func RegisterAdapter(species reflect.Type, a Adapter) bool {
	if species == nil || a == nil {
		return false
	}
	adapterReg.mu.Lock()
	defer adapterReg.mu.Unlock()
	if _, dup := adapterReg.byType[species]; dup {
		if debug.Registry() {
			debug.Logf("registry: adapter for %v already bound, keeping first", species)
		}
		return false
	}
	adapterReg.byType[species] = a
	if debug.Registry() {
		debug.Logf("registry: adapter %T bound for %v", a, species)
	}
	return true
}

// AdapterFor resolves the adapter servicing container, if any. Exported so
// collaborators built on the public protocol (path parsers, plan builders)
// can probe traversability without duplicating the lookup rules.
func AdapterFor(container any) (Adapter, bool) {
	if container == nil {
		return nil, false
	}
	t := reflect.TypeOf(container)
	adapterReg.mu.RLock()
	a, ok := adapterReg.byType[t]
	adapterReg.mu.RUnlock()
	if ok {
		return a, true
	}
	switch t.Kind() {
	case reflect.Slice:
		return seqAdapter{}, true
	case reflect.Map:
		return assocAdapter{}, true
	case reflect.Struct:
		return recordAdapter{}, true
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return recordAdapter{}, true
		}
	}
	return nil, false
}

func init() {
	// Canonical JSON-shaped species. Registering them here (at module load)
	// makes later registrations for the same species no-ops.
	RegisterAdapter(reflect.TypeOf([]any(nil)), seqAdapter{})
	RegisterAdapter(reflect.TypeOf(map[string]any(nil)), assocAdapter{})
	RegisterAdapter(reflect.TypeOf(map[any]any(nil)), assocAdapter{})
}
