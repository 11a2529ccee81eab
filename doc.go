// Package vecslice provides the ownership-arbitration and location-resolution
// core of a vector-manipulation library embedded in a dynamic-language
// runtime.
//
// Every mutating vector operation answers two questions before touching
// storage: may this handle be mutated in place, or must it be deep-copied
// first (clone arbitration); and which element indices does a user-supplied
// location specifier denote (location resolution). The handle and location
// subpackages implement the two decisions; this package ties them together
// behind a configured façade with structured logging and metrics.
//
// # Quick Start
//
//	vs := vecslice.New[float64](nil) // nil oracle = answer from handle tags
//
//	h := handle.New([]float64{1, 2, 3, 4, 5}).
//	    WithNames(handle.NewNameTable("a", "b", "c", "d", "e"))
//
//	sub, _ := vs.Slice(h, location.Positions{-2, -4}) // drop b and d
//	out, _ := vs.Assign(h, location.Mask{true}, []float64{0}) // zero everything
//
// # Mutation Protocol
//
// The host runtime is single-threaded; no locking is involved. Safety comes
// purely from the ask-before-you-mutate protocol: obtain a guaranteed-mutable
// handle via EnsureMutable, resolve the target indices, then write. Slice and
// Assign follow that flow internally.
package vecslice
