package location

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Missing is the placeholder value for a missing entry inside a Positions
// specifier. The Options.Missing policy decides whether placeholders are
// rejected or dropped.
const Missing = math.MinInt

// Specifier describes which elements of a vector to select. It is a sealed
// union: Positions, Mask, or Names.
type Specifier interface {
	specifier()
}

// Positions selects elements by integer position. Zero entries are omitted.
// Entries must not mix strictly-positive and strictly-negative values; an
// all-negative specifier selects the complement of the excluded positions.
type Positions []int

func (Positions) specifier() {}

// Mask selects elements by a boolean mask. The mask length must equal the
// target length, or be 1 to broadcast a single value.
type Mask []bool

func (Mask) specifier() {}

// Names selects elements by name, each resolved to the first exact match in
// the name table.
type Names []string

func (Names) specifier() {}

// NameLookup resolves a name to its one-based position. *handle.NameTable
// implements it.
type NameLookup interface {
	Lookup(name string) (int, bool)
}

// MissingPolicy controls how Missing placeholders inside a Positions
// specifier are handled.
type MissingPolicy uint8

const (
	// MissingError rejects placeholders with ErrMissingLocation.
	MissingError MissingPolicy = iota
	// MissingDrop silently omits placeholders, like zero entries.
	MissingDrop
)

// Options configures resolution behavior.
type Options struct {
	// ConvertNegative interprets an all-negative Positions specifier as an
	// exclusion set. When false, negative positions are rejected.
	ConvertNegative bool

	// Missing is the policy for Missing placeholders in Positions.
	Missing MissingPolicy
}

// Resolve converts a specifier into the canonical sequence of one-based
// element indices it denotes for a vector of length n. names may be nil; it
// is only required for Names specifiers. The returned sequence only contains
// values in [1, n].
func Resolve(spec Specifier, n int, names NameLookup, optFns ...func(*Options)) ([]int, error) {
	opts := Options{
		ConvertNegative: true,
		Missing:         MissingError,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	switch s := spec.(type) {
	case Positions:
		return resolvePositions(s, n, opts)
	case Mask:
		return resolveMask(s, n)
	case Names:
		return resolveNames(s, names)
	default:
		// The union is sealed; any other type is a programming error.
		panic("location: unknown specifier type")
	}
}

func resolvePositions(p Positions, n int, opts Options) ([]int, error) {
	var firstPos, firstNeg int
	for i, v := range p {
		switch {
		case v == Missing:
			if opts.Missing == MissingError {
				return nil, &ErrMissingLocation{Index: i + 1}
			}
		case v > 0 && firstPos == 0:
			firstPos = v
		case v < 0 && firstNeg == 0:
			firstNeg = v
		}
	}

	if firstPos != 0 && firstNeg != 0 {
		return nil, &ErrMixedSigns{Positive: firstPos, Negative: firstNeg}
	}

	if firstNeg != 0 {
		if !opts.ConvertNegative {
			return nil, &ErrNegativeNotAllowed{Location: firstNeg}
		}
		return invertExclusions(p, n)
	}

	out := make([]int, 0, len(p))
	for _, v := range p {
		if v == 0 || v == Missing {
			continue
		}
		if v > n {
			return nil, &ErrOutOfBounds{Location: v, Length: n}
		}
		out = append(out, v)
	}

	return out, nil
}

// invertExclusions treats the magnitudes of an all-negative specifier as an
// exclusion set and returns its complement over [1, n] in ascending order.
// Duplicate exclusions are idempotent.
func invertExclusions(p Positions, n int) ([]int, error) {
	excluded := roaring.New()
	for _, v := range p {
		if v == 0 || v == Missing {
			continue
		}
		if -v > n {
			return nil, &ErrOutOfBounds{Location: v, Length: n}
		}
		excluded.Add(uint32(-v))
	}

	excluded.Flip(1, uint64(n)+1)

	out := make([]int, 0, excluded.GetCardinality())
	it := excluded.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out, nil
}

func resolveMask(m Mask, n int) ([]int, error) {
	if len(m) == 0 {
		// An empty specifier always denotes the empty selection.
		return []int{}, nil
	}

	switch {
	case len(m) == n:
		out := make([]int, 0, n)
		for i, keep := range m {
			if keep {
				out = append(out, i+1)
			}
		}
		return out, nil
	case len(m) == 1:
		if !m[0] {
			return []int{}, nil
		}
		out := make([]int, n)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil
	default:
		return nil, &ErrMaskLengthMismatch{MaskLength: len(m), Length: n}
	}
}

func resolveNames(s Names, names NameLookup) ([]int, error) {
	if len(s) == 0 {
		return []int{}, nil
	}
	if names == nil {
		return nil, ErrNamesRequired
	}

	out := make([]int, len(s))
	for i, name := range s {
		pos, ok := names.Lookup(name)
		if !ok {
			return nil, &ErrNameNotFound{Name: name}
		}
		out[i] = pos
	}

	return out, nil
}
