package handle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMutable(t *testing.T) {
	oracle := TagOracle[float64]{}

	t.Run("ExclusiveConcreteFastPath", func(t *testing.T) {
		h := New([]float64{1, 2, 3})

		m := EnsureMutable(h, oracle)
		assert.Same(t, h, m)
		assert.True(t, m.SameStorage(h))
		assert.Equal(t, Exclusive, m.Ownership())
	})

	t.Run("SharedClones", func(t *testing.T) {
		h := New([]float64{1, 2, 3})
		alias := h.Alias()
		require.Equal(t, Shared, h.Ownership())
		require.Equal(t, Shared, alias.Ownership())

		m := EnsureMutable(alias, oracle)
		assert.False(t, m.SameStorage(h))
		assert.Equal(t, Exclusive, m.Ownership())
		assert.Equal(t, []float64{1, 2, 3}, m.Values())

		// Mutating the clone must not leak into the original storage.
		m.Values()[0] = 99
		assert.Equal(t, []float64{1, 2, 3}, h.Values())
	})

	t.Run("VirtualAlwaysClones", func(t *testing.T) {
		h := NewVirtual([]float64{4, 5})

		m := EnsureMutable(h, oracle)
		assert.False(t, m.SameStorage(h))
		assert.Equal(t, Exclusive, m.Ownership())
		assert.Equal(t, Concrete, m.Materialization())
		assert.Equal(t, []float64{4, 5}, m.Values())
	})

	t.Run("VirtualIgnoresExclusivity", func(t *testing.T) {
		// Even an oracle that reports exclusive references must not allow
		// in-place mutation of a virtual handle.
		h := NewVirtual([]float64{7})

		m := EnsureMutable(h, alwaysExclusive[float64]{})
		assert.False(t, m.SameStorage(h))
	})

	t.Run("OracleUpgradesTag", func(t *testing.T) {
		h := New([]float64{1})
		h.Alias() // downgrade to Shared

		m := EnsureMutable(h, alwaysExclusive[float64]{})
		assert.Same(t, h, m)
		assert.Equal(t, Exclusive, m.Ownership())
	})

	t.Run("CloneCopiesNames", func(t *testing.T) {
		h := New([]float64{1, 2}).WithNames(NewNameTable("a", "b"))
		alias := h.Alias()

		m := EnsureMutable(alias, oracle)
		require.NotNil(t, m.Names())
		assert.Equal(t, 2, m.Names().Len())
		assert.Equal(t, "a", m.Names().At(1))
		assert.NotSame(t, h.Names(), m.Names())
	})
}

func TestHandle(t *testing.T) {
	t.Run("AliasSharesStorage", func(t *testing.T) {
		h := New([]int{1, 2, 3})
		alias := h.Alias()

		assert.True(t, h.SameStorage(alias))
		alias.Values()[1] = 42
		assert.Equal(t, 42, h.Values()[1])
	})

	t.Run("EmptyStorageHasNoIdentity", func(t *testing.T) {
		a := New([]int{})
		b := New([]int{})

		assert.False(t, a.SameStorage(b))
		assert.True(t, a.SameStorage(a))
	})

	t.Run("CloneIsDeep", func(t *testing.T) {
		h := New([]int{1, 2, 3})
		c := h.Clone()

		require.Equal(t, h.Values(), c.Values())
		assert.False(t, c.SameStorage(h))

		c.Values()[0] = -1
		assert.Equal(t, 1, h.Values()[0])
	})
}

func TestNameTable(t *testing.T) {
	t.Run("LookupFirstMatch", func(t *testing.T) {
		table := NewNameTable("a", "b", "a")

		pos, ok := table.Lookup("a")
		require.True(t, ok)
		assert.Equal(t, 1, pos)

		pos, ok = table.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, 2, pos)

		_, ok = table.Lookup("c")
		assert.False(t, ok)
	})

	t.Run("Select", func(t *testing.T) {
		table := NewNameTable("a", "b", "c")

		sel := table.Select([]int{3, 1, 1})
		require.Equal(t, 3, sel.Len())
		assert.Equal(t, "c", sel.At(1))
		assert.Equal(t, "a", sel.At(2))
		assert.Equal(t, "a", sel.At(3))
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		table := NewNameTable("a", "b")
		c := table.Clone()

		sel := c.Select([]int{2})
		assert.Equal(t, "b", sel.At(1))
		assert.Equal(t, 2, table.Len())
	})
}

// alwaysExclusive reports every concrete handle as exclusively referenced.
type alwaysExclusive[T any] struct{}

func (alwaysExclusive[T]) ExclusivelyReferenced(*Handle[T]) bool { return true }

func (alwaysExclusive[T]) Virtual(h *Handle[T]) bool {
	return h.Materialization() == Virtual
}
