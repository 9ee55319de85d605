package ocular

// Step substitutes for a plain key at one depth of a Lens when the default
// container semantics are inadequate. All three operations are optional, and
// omission degrades the owning Lens monotonically at that depth:
//
//   - no Get: the depth always resolves to Nothing, so the Lens cannot read
//     or transform through it at all;
//   - no UpdatedClone: existing containers at that depth cannot be modified;
//   - no Construct: a missing container at that depth cannot be synthesized,
//     so writes through the absent slot are no-ops.
//
// A Step is not an optic; it participates only as an element of a Lens.
type Step struct {
	// Get reads the stepped-to slot out of container, as a Maybe.
	Get func(container any) Maybe
	// UpdatedClone produces a minimally-changed clone of container with the
	// stepped-to slot set (Just) or removed (Nothing).
	UpdatedClone func(container any, val Maybe) any
	// Construct builds an empty container for this depth when the traversal
	// needs to create one.
	Construct func() any
}

func (s Step) canRead() bool      { return s.Get != nil }
func (s Step) canUpdate() bool    { return s.UpdatedClone != nil }
func (s Step) canConstruct() bool { return s.Construct != nil && s.UpdatedClone != nil }
