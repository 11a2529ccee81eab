package vecslice

import (
	"fmt"
	"time"

	"github.com/hupe1980/vecslice/handle"
	"github.com/hupe1980/vecslice/location"
)

// Vecslice is the mutation gate for vector handles: it arbitrates clones,
// resolves location specifiers, and performs the slice and assign operations
// built on top of the two.
type Vecslice[T any] struct {
	oracle         handle.Oracle[T]
	logger         *Logger
	metrics        MetricsCollector
	resolveOptions []func(*location.Options)
}

// New creates a Vecslice backed by the given reference oracle. A nil oracle
// falls back to handle.TagOracle, which answers from the tags carried on
// each handle.
func New[T any](oracle handle.Oracle[T], optFns ...Option) *Vecslice[T] {
	o := applyOptions(optFns)

	if oracle == nil {
		oracle = handle.TagOracle[T]{}
	}

	return &Vecslice[T]{
		oracle:         oracle,
		logger:         o.logger,
		metrics:        o.metricsCollector,
		resolveOptions: o.resolveOptions,
	}
}

// EnsureMutable returns a handle whose storage may be mutated without
// affecting any other live handle. It never fails; see handle.EnsureMutable
// for the arbitration rules.
func (v *Vecslice[T]) EnsureMutable(h *handle.Handle[T]) *handle.Handle[T] {
	start := time.Now()

	out := handle.EnsureMutable(h, v.oracle)
	cloned := out != h

	v.metrics.RecordEnsureMutable(cloned, time.Since(start))
	v.logger.LogEnsureMutable(out.Len(), cloned)

	return out
}

// Resolve converts a location specifier into the canonical index sequence it
// denotes for a vector of length n. names may be nil unless spec selects by
// name.
func (v *Vecslice[T]) Resolve(spec location.Specifier, n int, names location.NameLookup) ([]int, error) {
	start := time.Now()

	idx, err := location.Resolve(spec, n, names, v.resolveOptions...)

	v.metrics.RecordResolve(time.Since(start), err)
	v.logger.LogResolve(n, len(idx), err)

	return idx, err
}

// Slice gathers the elements denoted by spec into a fresh handle. The result
// owns its storage (Exclusive, Concrete) and carries the selected names when
// the source has a name table.
func (v *Vecslice[T]) Slice(h *handle.Handle[T], spec location.Specifier) (*handle.Handle[T], error) {
	start := time.Now()

	out, err := v.slice(h, spec)

	v.metrics.RecordSlice(time.Since(start), err)
	if err != nil {
		v.logger.LogSlice(h.Len(), 0, err)
		return nil, fmt.Errorf("slice: %w", err)
	}
	v.logger.LogSlice(h.Len(), out.Len(), nil)

	return out, nil
}

func (v *Vecslice[T]) slice(h *handle.Handle[T], spec location.Specifier) (*handle.Handle[T], error) {
	idx, err := location.Resolve(spec, h.Len(), nameLookup(h.Names()), v.resolveOptions...)
	if err != nil {
		return nil, err
	}

	src := h.Values()
	values := make([]T, len(idx))
	for i, at := range idx {
		values[i] = src[at-1]
	}

	out := handle.New(values)
	if names := h.Names(); names != nil {
		out.WithNames(names.Select(idx))
	}

	return out, nil
}

// Assign writes values at the locations denoted by spec and returns the
// handle that received the writes. The clone arbiter runs first, so the
// returned handle is h itself only when in-place mutation was safe; callers
// must adopt the returned handle. values must have one entry per resolved
// location, or a single entry to broadcast.
func (v *Vecslice[T]) Assign(h *handle.Handle[T], spec location.Specifier, values []T) (*handle.Handle[T], error) {
	start := time.Now()

	out, cloned, assigned, err := v.assign(h, spec, values)

	v.metrics.RecordAssign(time.Since(start), err)
	if err != nil {
		v.logger.LogAssign(h.Len(), 0, false, err)
		return nil, fmt.Errorf("assign: %w", err)
	}
	v.logger.LogAssign(out.Len(), assigned, cloned, nil)

	return out, nil
}

func (v *Vecslice[T]) assign(h *handle.Handle[T], spec location.Specifier, values []T) (*handle.Handle[T], bool, int, error) {
	out := handle.EnsureMutable(h, v.oracle)
	cloned := out != h

	idx, err := location.Resolve(spec, out.Len(), nameLookup(out.Names()), v.resolveOptions...)
	if err != nil {
		return nil, false, 0, err
	}

	if len(values) != len(idx) && len(values) != 1 {
		return nil, false, 0, &ErrValueLengthMismatch{Values: len(values), Locations: len(idx)}
	}

	dst := out.Values()
	for i, at := range idx {
		if len(values) == 1 {
			dst[at-1] = values[0]
		} else {
			dst[at-1] = values[i]
		}
	}

	return out, cloned, len(idx), nil
}

// nameLookup converts a possibly-nil *handle.NameTable into a NameLookup
// without producing a non-nil interface around a nil pointer.
func nameLookup(t *handle.NameTable) location.NameLookup {
	if t == nil {
		return nil
	}
	return t
}
