package ocular

// slot pairs the container encountered at one depth of a traversal with the
// step addressing the next value inside it. Slots are created fresh for each
// call and discarded when it returns; they are never shared or persisted.
type slot struct {
	container Maybe // container at this depth, when one exists
	step      any   // plain key or Step
}

// getMaybe resolves the slot's value. A missing container, an unreadable
// Step, or an unadapted container species all read as Nothing.
func (s slot) getMaybe() Maybe {
	if !s.container.Present() {
		return Nothing()
	}
	c := s.container.Get()
	if st, ok := s.step.(Step); ok {
		if !st.canRead() {
			return Nothing()
		}
		return st.Get(c)
	}
	a, ok := AdapterFor(c)
	if !ok {
		return Nothing()
	}
	return a.AtMaybe(c, s.step)
}

// cloneWith produces a clone of container with the slot's target set to val
// (Just) or removed (Nothing). It reports false when this depth cannot
// perform the update at all.
func (s slot) cloneWith(container any, val Maybe) (any, bool) {
	if st, ok := s.step.(Step); ok {
		if !st.canUpdate() {
			return nil, false
		}
		return st.UpdatedClone(container, val), true
	}
	a, ok := AdapterFor(container)
	if !ok {
		return nil, false
	}
	if val.Present() {
		return a.CloneWith(container, CloneSet(s.step, val.Get())), true
	}
	return a.CloneWith(container, CloneRemove(s.step)), true
}

// construct synthesizes the missing container for this depth: the Step's
// Construct when the step is custom, otherwise a shape inferred from the key
// type (numeric keys get a sequence, anything else a record).
func (s slot) construct() (any, bool) {
	if st, ok := s.step.(Step); ok {
		if !st.canConstruct() {
			return nil, false
		}
		return st.Construct(), true
	}
	if _, numeric := seqIndex(s.step); numeric {
		return []any{}, true
	}
	return map[string]any{}, true
}
