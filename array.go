package ocular

// OpticArray applies a fixed sequence of optics in series. It only exists to
// hold stages that could not be pre-merged: Fuse collapses adjacent plain
// lenses at construction time, so adjacent stages here are always
// heterogeneous.
type OpticArray struct {
	stages []Optic
}

// Stages returns a copy of the composition's stage sequence.
func (oa *OpticArray) Stages() []Optic {
	return append([]Optic(nil), oa.stages...)
}

// Fuse serially composes optics. Runs of adjacent plain lenses merge into
// single lenses; when everything merges the result is a plain *Lens, and a
// single optic is returned as itself. Fusing nothing yields the identity
// lens.
func Fuse(optics ...Optic) Optic {
	var stages []Optic
	for _, o := range optics {
		if o == nil {
			panic("ocular: Fuse on nil optic")
		}
		l, isLens := o.(*Lens)
		if isLens && len(stages) > 0 {
			if prev, ok := stages[len(stages)-1].(*Lens); ok {
				stages[len(stages)-1] = FuseLenses(prev, l)
				continue
			}
		}
		stages = append(stages, o)
	}
	switch len(stages) {
	case 0:
		return NewLens()
	case 1:
		return stages[0]
	}
	return &OpticArray{stages: stages}
}

// GetMaybe threads subject through each stage in turn, resolving to Nothing
// as soon as a stage fails to resolve. Presence is judged purely by the
// Maybe result of each stage. Tail arguments chain through a trailing optic
// value exactly as for a Lens.
func (oa *OpticArray) GetMaybe(subject any, tail ...any) Maybe {
	cur := Just(subject)
	for _, st := range oa.stages {
		if !cur.Present() {
			return Nothing()
		}
		cur = st.GetMaybe(cur.Get())
	}
	return chainTail(cur, tail)
}

// XformInCloneMaybe descends stage by stage capturing each stage's input,
// applies fn through the final stage, and ascends re-applying each earlier
// stage's write with the updated downstream value. When any stage's input
// was itself absent there is nothing to embed the downstream result into, so
// the call is a no-op returning subject unchanged.
func (oa *OpticArray) XformInCloneMaybe(subject any, fn func(Maybe) Maybe) any {
	n := len(oa.stages)
	if n == 0 {
		return subject
	}
	ins := make([]Maybe, n) // input value for each stage
	cur := Just(subject)
	for i, st := range oa.stages {
		ins[i] = cur
		if !cur.Present() {
			return subject
		}
		if i < n-1 {
			cur = st.GetMaybe(cur.Get())
		}
	}

	out := oa.stages[n-1].XformInCloneMaybe(ins[n-1].Get(), fn)
	if sameValue(out, ins[n-1].Get()) {
		return subject
	}
	for i := n - 2; i >= 0; i-- {
		out = SetInClone(oa.stages[i], ins[i].Get(), out)
	}
	return out
}
