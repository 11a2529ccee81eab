package handle

// Oracle is the host capability consulted by the clone arbiter. The host
// runtime owns reference counting and lazy materialization; the arbiter only
// asks the two questions that decide between the in-place fast path and a
// deep copy.
type Oracle[T any] interface {
	// ExclusivelyReferenced reports whether no other live handle references
	// the handle's storage.
	ExclusivelyReferenced(h *Handle[T]) bool

	// Virtual reports whether the handle is a lazily-computed view whose
	// storage must not be dereferenced for mutation.
	Virtual(h *Handle[T]) bool
}

// TagOracle answers both oracle questions from the tags carried on the
// handle itself. It is the default oracle for embeddings that keep the
// ownership tags current (Alias downgrades, EnsureMutable upgrades), and it
// lets the arbiter be exercised without a live host runtime.
type TagOracle[T any] struct{}

// ExclusivelyReferenced implements Oracle.
func (TagOracle[T]) ExclusivelyReferenced(h *Handle[T]) bool {
	return h.Ownership() == Exclusive
}

// Virtual implements Oracle.
func (TagOracle[T]) Virtual(h *Handle[T]) bool {
	return h.Materialization() == Virtual
}

// EnsureMutable returns a handle whose storage may be mutated without
// affecting any other live handle.
//
// A Virtual handle is always deep-copied: its apparent storage does not
// correspond one-to-one with its logical elements, so dereferencing it for
// mutation would corrupt the source it derives from. A Concrete handle that
// the oracle reports as exclusively referenced is returned unchanged; this
// fast path is the performance-critical case. Anything else is deep-copied.
//
// The decision raises no errors; a copy can only fail on allocation
// exhaustion, which is fatal and not recovered here.
func EnsureMutable[T any](h *Handle[T], oracle Oracle[T]) *Handle[T] {
	if oracle.Virtual(h) {
		return h.Clone()
	}

	if oracle.ExclusivelyReferenced(h) {
		// The oracle's answer is authoritative; upgrade the tag so the
		// contract Ownership() == Exclusive holds on the fast path too.
		h.ownership = Exclusive
		return h
	}

	return h.Clone()
}
