package handle

// NameTable is an ordered sequence of element names attached to a vector.
// Entries may be duplicated or empty; lookups resolve to the first match.
type NameTable struct {
	names []string
}

// NewNameTable creates a name table from the given names.
func NewNameTable(names ...string) *NameTable {
	return &NameTable{names: names}
}

// Len returns the number of entries.
func (t *NameTable) Len() int { return len(t.names) }

// At returns the name at the one-based position i.
func (t *NameTable) At(i int) string { return t.names[i-1] }

// Lookup returns the one-based position of the first entry exactly equal to
// name, or false if no entry matches.
func (t *NameTable) Lookup(name string) (int, bool) {
	for i, n := range t.names {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}

// Select builds a new table holding the entries at the given one-based
// positions, in the given order.
func (t *NameTable) Select(index []int) *NameTable {
	names := make([]string, len(index))
	for i, at := range index {
		names[i] = t.names[at-1]
	}
	return &NameTable{names: names}
}

// Clone returns a deep copy of the table.
func (t *NameTable) Clone() *NameTable {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return &NameTable{names: names}
}
