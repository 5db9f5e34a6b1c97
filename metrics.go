package wordcount

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each Count. bytes is the input size, words the
	// total word count, err is nil if successful.
	RecordRun(bytes int, words uint64, duration time.Duration, err error)

	// RecordWorker is called by each worker when it finishes its partition.
	// It may be called concurrently.
	RecordWorker(bytes int, words uint64, duration time.Duration)

	// RecordMerge is called after the merge phase.
	RecordMerge(tables, unique int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordWorker(int, uint64, time.Duration)     {}
func (NoopMetricsCollector) RecordMerge(int, int, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	BytesProcessed  atomic.Int64
	WordsCounted    atomic.Int64
	WorkerCount     atomic.Int64
	WorkerNanos     atomic.Int64
	MergeCount      atomic.Int64
	MergeTotalNanos atomic.Int64
	MergedTables    atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(bytes int, words uint64, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.BytesProcessed.Add(int64(bytes))
	b.WordsCounted.Add(int64(words))
}

// RecordWorker implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWorker(bytes int, words uint64, duration time.Duration) {
	b.WorkerCount.Add(1)
	b.WorkerNanos.Add(duration.Nanoseconds())
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(tables, unique int, duration time.Duration) {
	b.MergeCount.Add(1)
	b.MergedTables.Add(int64(tables))
	b.MergeTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:       b.RunCount.Load(),
		RunErrors:      b.RunErrors.Load(),
		RunAvgNanos:    avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		BytesProcessed: b.BytesProcessed.Load(),
		WordsCounted:   b.WordsCounted.Load(),
		WorkerCount:    b.WorkerCount.Load(),
		WorkerAvgNanos: avg(b.WorkerNanos.Load(), b.WorkerCount.Load()),
		MergeCount:     b.MergeCount.Load(),
		MergedTables:   b.MergedTables.Load(),
		MergeAvgNanos:  avg(b.MergeTotalNanos.Load(), b.MergeCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount       int64
	RunErrors      int64
	RunAvgNanos    int64
	BytesProcessed int64
	WordsCounted   int64
	WorkerCount    int64
	WorkerAvgNanos int64
	MergeCount     int64
	MergedTables   int64
	MergeAvgNanos  int64
}
