// Package handle provides vector handles with explicit ownership metadata
// and the clone arbitration used before every in-place mutation.
//
// A Handle is a reference to vector storage; the storage itself may be
// aliased by multiple handles. Before mutating, callers must obtain a
// guaranteed-mutable handle via EnsureMutable, which consults an injected
// Oracle to decide between the in-place fast path and a deep copy.
//
// Example:
//
//	h := handle.New([]float64{1, 2, 3})
//	alias := h.Alias() // h and alias now share storage, both Shared
//
//	m := handle.EnsureMutable(alias, handle.TagOracle[float64]{})
//	// m has private storage; writing through m cannot affect h.
package handle
