package ocular

// Package ocular provides:
//
// - Immutable, structural-sharing access to nested JSON-shaped data through
//   composable optics (Lens, OpticArray, SeqFocal/RecFocal)
// - A per-container navigation/cloning protocol (Adapter) with built-in
//   support for sequences, associative maps, and record-like structs, plus a
//   first-wins registry for third-party container species
// - Minimal clones: a write shares every untouched sub-structure with its
//   input, and a write that changes nothing returns the input itself
// - Maybe-based presence: looking up a missing slot is never an error
//
// Design policy:
// - Keep the optic contract small (two primitives); derive everything else
//   once as package-level operations shared by every optic.
// - Put collaborators in their own packages: opath/ for path text, plan/ for
//   example-driven optic trees, exprop/ for expression transforms,
//   immutablex/ for persistent-collection adapters, cmd/ocular for the CLI.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	l := ocular.NewLens("a", "b", 0)
//	v := ocular.Get(l, subject)
//	s2 := ocular.SetInClone(l, subject, 42)
