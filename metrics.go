package vecslice

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
//
// The clone rate reported via RecordEnsureMutable is the key signal: a high
// rate means the embedding is losing the in-place fast path and paying for
// deep copies.
type MetricsCollector interface {
	// RecordEnsureMutable is called after each clone arbitration.
	// cloned is true when a deep copy was performed.
	RecordEnsureMutable(cloned bool, duration time.Duration)

	// RecordResolve is called after each location resolution.
	// err is nil if successful.
	RecordResolve(duration time.Duration, err error)

	// RecordSlice is called after each slice operation.
	RecordSlice(duration time.Duration, err error)

	// RecordAssign is called after each assign operation.
	RecordAssign(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordEnsureMutable(bool, time.Duration) {}
func (NoopMetricsCollector) RecordResolve(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSlice(time.Duration, error)        {}
func (NoopMetricsCollector) RecordAssign(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	EnsureMutableCount atomic.Int64
	CloneCount         atomic.Int64
	ResolveCount       atomic.Int64
	ResolveErrors      atomic.Int64
	ResolveTotalNanos  atomic.Int64
	SliceCount         atomic.Int64
	SliceErrors        atomic.Int64
	AssignCount        atomic.Int64
	AssignErrors       atomic.Int64
}

// RecordEnsureMutable implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEnsureMutable(cloned bool, duration time.Duration) {
	b.EnsureMutableCount.Add(1)
	if cloned {
		b.CloneCount.Add(1)
	}
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}

// RecordSlice implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSlice(duration time.Duration, err error) {
	b.SliceCount.Add(1)
	if err != nil {
		b.SliceErrors.Add(1)
	}
}

// RecordAssign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAssign(duration time.Duration, err error) {
	b.AssignCount.Add(1)
	if err != nil {
		b.AssignErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		EnsureMutableCount: b.EnsureMutableCount.Load(),
		CloneCount:         b.CloneCount.Load(),
		ResolveCount:       b.ResolveCount.Load(),
		ResolveErrors:      b.ResolveErrors.Load(),
		ResolveAvgNanos:    b.getAvgResolveNanos(),
		SliceCount:         b.SliceCount.Load(),
		SliceErrors:        b.SliceErrors.Load(),
		AssignCount:        b.AssignCount.Load(),
		AssignErrors:       b.AssignErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgResolveNanos() int64 {
	count := b.ResolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ResolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	EnsureMutableCount int64
	CloneCount         int64
	ResolveCount       int64
	ResolveErrors      int64
	ResolveAvgNanos    int64
	SliceCount         int64
	SliceErrors        int64
	AssignCount        int64
	AssignErrors       int64
}
