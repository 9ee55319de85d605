package ocular

import (
	"fmt"
	"strings"

	"github.com/ocular-go/ocular/debug"
)

// Lens is the single-path optic: an immutable ordered sequence of steps, each
// a plain key (string, index, or any associative-map key) or a custom Step.
// A Lens is identified by reference; two lenses built from equal key
// sequences are distinct values unless explicitly fused.
type Lens struct {
	steps []any
}

// NewLens builds a Lens from the given steps. The step slice is copied, so
// the caller may reuse its argument.
func NewLens(steps ...any) *Lens {
	return &Lens{steps: append([]any(nil), steps...)}
}

// Steps returns a copy of the lens's step sequence.
func (l *Lens) Steps() []any {
	return append([]any(nil), l.steps...)
}

func (l *Lens) String() string {
	var b strings.Builder
	b.WriteString("Lens(")
	for i, st := range l.steps {
		if i > 0 {
			b.WriteString(", ")
		}
		if _, ok := st.(Step); ok {
			b.WriteString("<step>")
			continue
		}
		fmt.Fprintf(&b, "%#v", st)
	}
	b.WriteString(")")
	return b.String()
}

// GetMaybe resolves each step in order against the current value, reporting
// Nothing as soon as any depth fails to resolve. When tail arguments are
// supplied and the fully-resolved value is itself an Optic, resolution is
// delegated to it with the remaining tail; a non-optic value with a
// non-empty tail resolves to Nothing.
func (l *Lens) GetMaybe(subject any, tail ...any) Maybe {
	cur := Just(subject)
	for _, st := range l.steps {
		if !cur.Present() {
			return Nothing()
		}
		cur = slot{container: cur, step: st}.getMaybe()
	}
	return chainTail(cur, tail)
}

// chainTail implements trailing-optic delegation shared by every optic:
// resolved optic values consume the remaining tail, and anything else
// (including multifocal aggregates) terminates resolution.
func chainTail(m Maybe, tail []any) Maybe {
	if len(tail) == 0 || !m.Present() {
		return m
	}
	if m.Aggregate() {
		return Nothing()
	}
	if o, ok := m.Get().(Optic); ok {
		return o.GetMaybe(tail[0], tail[1:]...)
	}
	return Nothing()
}

// XformInCloneMaybe descends as GetMaybe does while recording the slot used
// at each depth, applies fn to the Maybe describing the terminal slot, and
// re-clones each ancestor on the way back up to build the new root. The
// original subject is returned unchanged — with no clone at any depth — when
// fn preserves the current state: a Just strictly equal to the present value,
// or Nothing for an already-absent slot. A Nothing result for a present slot
// removes it through the container's remove operation.
//
// Missing intermediate containers are synthesized according to each slot's
// step; a custom Step lacking Construct at a missing depth makes the whole
// call a no-op.
func (l *Lens) XformInCloneMaybe(subject any, fn func(Maybe) Maybe) any {
	n := len(l.steps)
	slots := make([]slot, n)
	cur := Just(subject)
	for i, st := range l.steps {
		slots[i] = slot{container: cur, step: st}
		if !cur.Present() {
			if cst, ok := st.(Step); ok && !cst.canConstruct() {
				return subject
			}
			continue
		}
		cur = slots[i].getMaybe()
	}

	result := fn(cur)
	if cur.Present() && result.Present() && sameValue(result.Get(), cur.Get()) {
		return subject
	}
	if !cur.Present() && !result.Present() {
		return subject
	}
	if n == 0 {
		// the root has no parent to remove it from
		if !result.Present() {
			return subject
		}
		return result.Get()
	}

	if debug.Clone() {
		debug.Logf("lens clone: %v depth=%d", l, n)
	}
	val := result
	for i := n - 1; i >= 0; i-- {
		s := slots[i]
		var container any
		if s.container.Present() {
			container = s.container.Get()
		} else {
			c, ok := s.construct()
			if !ok {
				return subject
			}
			container = c
		}
		next, ok := s.cloneWith(container, val)
		if !ok {
			return subject
		}
		// a depth that declines the update hands its container back
		// unchanged; nothing above it can have changed either
		if sameValue(next, container) {
			return subject
		}
		val = Just(next)
	}
	return val.Get()
}

// FuseLenses statically composes plain lenses into one Lens whose step
// sequence is the concatenation of the inputs' steps. Only plain lenses can
// fuse this way; composing other optics goes through Fuse.
func FuseLenses(lenses ...*Lens) *Lens {
	var steps []any
	for _, l := range lenses {
		if l == nil {
			panic("ocular: FuseLenses requires plain lenses, got nil")
		}
		steps = append(steps, l.steps...)
	}
	return &Lens{steps: steps}
}
