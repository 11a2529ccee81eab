package handle

// Ownership records whether a handle's storage is known to be exclusively
// referenced (mutable in place) or possibly aliased by another live handle.
type Ownership uint8

const (
	// Shared means the storage may be aliased and must be cloned before mutation.
	Shared Ownership = iota
	// Exclusive means the storage has a single owner and may be mutated in place.
	Exclusive
)

// String returns a human-readable representation of the ownership state.
func (o Ownership) String() string {
	switch o {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Materialization records whether a handle's storage is directly addressable
// or a lazily-computed view that must be forced into concrete storage before
// mutation.
type Materialization uint8

const (
	// Concrete means the storage holds the elements directly.
	Concrete Materialization = iota
	// Virtual means the storage is a lazily-computed representation; its raw
	// bytes do not correspond one-to-one with the logical elements.
	Virtual
)

// String returns a human-readable representation of the materialization kind.
func (m Materialization) String() string {
	switch m {
	case Concrete:
		return "concrete"
	case Virtual:
		return "virtual"
	default:
		return "unknown"
	}
}

// Handle is a reference to vector storage plus ownership metadata.
// Multiple handles may alias the same storage; the ownership tag tracks
// whether that is known to be the case.
type Handle[T any] struct {
	values    []T
	names     *NameTable
	ownership Ownership
	kind      Materialization
}

// New creates a handle over freshly owned storage. The handle starts
// Exclusive and Concrete; the caller must not retain values.
func New[T any](values []T) *Handle[T] {
	return &Handle[T]{
		values:    values,
		ownership: Exclusive,
		kind:      Concrete,
	}
}

// NewVirtual creates a handle tagged as a lazily-computed view. Virtual
// handles are never mutable in place regardless of their ownership state;
// values is the materialized form the view would produce.
func NewVirtual[T any](values []T) *Handle[T] {
	return &Handle[T]{
		values:    values,
		ownership: Shared,
		kind:      Virtual,
	}
}

// Len returns the number of elements.
func (h *Handle[T]) Len() int { return len(h.values) }

// Ownership returns the handle's ownership state.
func (h *Handle[T]) Ownership() Ownership { return h.ownership }

// Materialization returns the handle's materialization kind.
func (h *Handle[T]) Materialization() Materialization { return h.kind }

// Values returns the underlying storage. Writes through the returned slice
// are visible to every handle aliasing the storage, so callers must hold an
// Exclusive handle (see EnsureMutable) before mutating it.
func (h *Handle[T]) Values() []T { return h.values }

// Names returns the name table attached to the handle, or nil.
func (h *Handle[T]) Names() *NameTable { return h.names }

// WithNames attaches a name table and returns the handle. The table's length
// must equal the vector's length.
func (h *Handle[T]) WithNames(names *NameTable) *Handle[T] {
	h.names = names
	return h
}

// Alias creates a second handle over the same storage. Both the receiver and
// the returned handle are downgraded to Shared, since either could now
// observe mutations made through the other.
func (h *Handle[T]) Alias() *Handle[T] {
	h.ownership = Shared
	return &Handle[T]{
		values:    h.values,
		names:     h.names,
		ownership: Shared,
		kind:      h.kind,
	}
}

// Clone deep-copies the handle: length, element values, and any attached
// name table. The result is Exclusive and Concrete.
func (h *Handle[T]) Clone() *Handle[T] {
	values := make([]T, len(h.values))
	copy(values, h.values)

	out := &Handle[T]{
		values:    values,
		ownership: Exclusive,
		kind:      Concrete,
	}
	if h.names != nil {
		out.names = h.names.Clone()
	}

	return out
}

// SameStorage reports whether two handles alias the same storage. Empty
// storage carries no identity; two distinct zero-length handles are never
// considered aliased.
func (h *Handle[T]) SameStorage(other *Handle[T]) bool {
	if h == other {
		return true
	}
	if len(h.values) == 0 || len(other.values) == 0 {
		return false
	}
	return &h.values[0] == &other.values[0]
}
