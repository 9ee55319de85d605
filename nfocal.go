package ocular

import (
	"reflect"
	"sort"
	"strconv"
)

// SeqFocal is the sequence-shaped multifocal: a parallel composition of
// indexed child optics presenting their independent slots as one
// sequence-shaped aggregate. The child collection is copied at construction;
// rebinding is explicit via WithChild.
type SeqFocal struct {
	children []Optic
}

// NewSeqFocal builds a sequence-shaped multifocal over the given children.
func NewSeqFocal(children ...Optic) *SeqFocal {
	return &SeqFocal{children: append([]Optic(nil), children...)}
}

// Children returns a copy of the child-optic collection.
func (f *SeqFocal) Children() []Optic {
	return append([]Optic(nil), f.children...)
}

// WithChild returns a new multifocal with o appended as the next child.
func (f *SeqFocal) WithChild(o Optic) *SeqFocal {
	return &SeqFocal{children: append(f.Children(), o)}
}

// GetMaybe evaluates every child against subject and assembles the present
// results into a sequence aggregate, with holes where children did not
// resolve. The result is always a present, aggregate-flagged Maybe; tail
// arguments therefore never chain through it.
func (f *SeqFocal) GetMaybe(subject any, tail ...any) Maybe {
	agg := make([]any, len(f.children))
	for i, c := range f.children {
		m := c.GetMaybe(subject)
		if m.Present() {
			agg[i] = m.Get()
		} else {
			agg[i] = Hole
		}
	}
	return chainTail(justAggregate(agg), tail)
}

// Present returns the indices of the children that resolve within subject —
// a collection, not a boolean, unlike a single optic's presence test.
func (f *SeqFocal) Present(subject any) []int {
	var idxs []int
	for i, c := range f.children {
		if c.GetMaybe(subject).Present() {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// SeqXform routes one transform to the child at Index.
type SeqXform struct {
	Index int
	Fn    func(v any) any
}

// XformInClone applies the pairs strictly in order against the evolving
// clone, so later transforms observe the effects of earlier ones. Indices
// outside the child collection are no-ops.
func (f *SeqFocal) XformInClone(subject any, pairs []SeqXform, opts ...XformOpt) any {
	cur := subject
	for _, p := range pairs {
		if p.Index < 0 || p.Index >= len(f.children) {
			continue
		}
		cur = XformInClone(f.children[p.Index], cur, p.Fn, opts...)
	}
	return cur
}

// XformInCloneMaybe applies fn to every child slot in order, satisfying the
// Optic contract for the aggregate.
func (f *SeqFocal) XformInCloneMaybe(subject any, fn func(Maybe) Maybe) any {
	cur := subject
	for _, c := range f.children {
		cur = c.XformInCloneMaybe(cur, fn)
	}
	return cur
}

// SetInClone writes newVals through the children as one bulk update:
// children with an entry are set, children without one have their slots
// removed. The produced clone is then read back and verified key by key;
// any disagreement — typically two children aliasing the same storage —
// returns the subject unchanged with a *StereoscopyError.
func (f *SeqFocal) SetInClone(subject any, newVals map[int]any) (any, error) {
	cur := subject
	for i, c := range f.children {
		if v, ok := newVals[i]; ok {
			cur = SetInClone(c, cur, v)
		} else {
			cur = RemoveInClone(c, cur)
		}
	}
	var bad []string
	for i, c := range f.children {
		m := c.GetMaybe(cur)
		if v, ok := newVals[i]; ok {
			if !m.Present() || !reflect.DeepEqual(m.Get(), v) {
				bad = append(bad, strconv.Itoa(i))
			}
		} else if m.Present() {
			bad = append(bad, strconv.Itoa(i))
		}
	}
	for i := range newVals {
		if i < 0 || i >= len(f.children) {
			bad = append(bad, strconv.Itoa(i))
		}
	}
	if len(bad) > 0 {
		return subject, &StereoscopyError{Keys: bad}
	}
	return cur, nil
}

// RecFocal is the record-shaped multifocal: named child optics presenting
// their slots as one record-shaped aggregate. The child collection is copied
// at construction; rebinding is explicit via With and Without.
type RecFocal struct {
	children map[string]Optic
}

// NewRecFocal builds a record-shaped multifocal over the given children.
func NewRecFocal(children map[string]Optic) *RecFocal {
	cp := make(map[string]Optic, len(children))
	for k, v := range children {
		cp[k] = v
	}
	return &RecFocal{children: cp}
}

// Children returns a copy of the child-optic collection.
func (f *RecFocal) Children() map[string]Optic {
	cp := make(map[string]Optic, len(f.children))
	for k, v := range f.children {
		cp[k] = v
	}
	return cp
}

// With returns a new multifocal that also binds name to o.
func (f *RecFocal) With(name string, o Optic) *RecFocal {
	cp := f.Children()
	cp[name] = o
	return &RecFocal{children: cp}
}

// Without returns a new multifocal with name unbound.
func (f *RecFocal) Without(name string) *RecFocal {
	cp := f.Children()
	delete(cp, name)
	return &RecFocal{children: cp}
}

// childNames returns the child keys in deterministic order.
func (f *RecFocal) childNames() []string {
	names := make([]string, 0, len(f.children))
	for k := range f.children {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// GetMaybe evaluates every child against subject and assembles the present
// results into a record aggregate; absent children contribute no key. The
// result is always a present, aggregate-flagged Maybe.
func (f *RecFocal) GetMaybe(subject any, tail ...any) Maybe {
	agg := make(map[string]any, len(f.children))
	for name, c := range f.children {
		if m := c.GetMaybe(subject); m.Present() {
			agg[name] = m.Get()
		}
	}
	return chainTail(justAggregate(agg), tail)
}

// Present returns the names of the children that resolve within subject.
func (f *RecFocal) Present(subject any) []string {
	var names []string
	for _, name := range f.childNames() {
		if f.children[name].GetMaybe(subject).Present() {
			names = append(names, name)
		}
	}
	return names
}

// RecXform routes one transform to the child bound to Name.
type RecXform struct {
	Name string
	Fn   func(v any) any
}

// XformInClone applies the pairs strictly in order against the evolving
// clone. Names with no bound child are no-ops.
func (f *RecFocal) XformInClone(subject any, pairs []RecXform, opts ...XformOpt) any {
	cur := subject
	for _, p := range pairs {
		c, ok := f.children[p.Name]
		if !ok {
			continue
		}
		cur = XformInClone(c, cur, p.Fn, opts...)
	}
	return cur
}

// XformInCloneMaybe applies fn to every child slot in deterministic name
// order, satisfying the Optic contract for the aggregate.
func (f *RecFocal) XformInCloneMaybe(subject any, fn func(Maybe) Maybe) any {
	cur := subject
	for _, name := range f.childNames() {
		cur = f.children[name].XformInCloneMaybe(cur, fn)
	}
	return cur
}

// SetInClone writes newVals through the children as one bulk update, then
// verifies the clone reads back exactly as requested: provided names must
// reproduce their values, omitted names must read absent. Any disagreement
// returns the subject unchanged with a *StereoscopyError.
func (f *RecFocal) SetInClone(subject any, newVals map[string]any) (any, error) {
	cur := subject
	names := f.childNames()
	for _, name := range names {
		if v, ok := newVals[name]; ok {
			cur = SetInClone(f.children[name], cur, v)
		} else {
			cur = RemoveInClone(f.children[name], cur)
		}
	}
	var bad []string
	for _, name := range names {
		m := f.children[name].GetMaybe(cur)
		if v, ok := newVals[name]; ok {
			if !m.Present() || !reflect.DeepEqual(m.Get(), v) {
				bad = append(bad, name)
			}
		} else if m.Present() {
			bad = append(bad, name)
		}
	}
	for name := range newVals {
		if _, ok := f.children[name]; !ok {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return subject, &StereoscopyError{Keys: bad}
	}
	return cur, nil
}
