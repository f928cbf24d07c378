package rawtext

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOpen is called after each document load.
	// size is the loaded size in bytes, err is nil if successful.
	RecordOpen(duration time.Duration, size int, err error)

	// RecordLine is called for every line a document reader produces.
	RecordLine(size int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOpen(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordLine(int)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpenCount      atomic.Int64
	OpenErrors     atomic.Int64
	OpenTotalNanos atomic.Int64
	BytesLoaded    atomic.Int64
	LineCount      atomic.Int64
	LineBytes      atomic.Int64
}

// RecordOpen implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOpen(duration time.Duration, size int, err error) {
	b.OpenCount.Add(1)
	b.OpenTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpenErrors.Add(1)
		return
	}
	b.BytesLoaded.Add(int64(size))
}

// RecordLine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLine(size int) {
	b.LineCount.Add(1)
	b.LineBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		OpenCount:    b.OpenCount.Load(),
		OpenErrors:   b.OpenErrors.Load(),
		OpenAvgNanos: b.getAvgOpenNanos(),
		BytesLoaded:  b.BytesLoaded.Load(),
		LineCount:    b.LineCount.Load(),
		LineBytes:    b.LineBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgOpenNanos() int64 {
	count := b.OpenCount.Load()
	if count == 0 {
		return 0
	}
	return b.OpenTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	OpenCount    int64
	OpenErrors   int64
	OpenAvgNanos int64
	BytesLoaded  int64
	LineCount    int64
	LineBytes    int64
}

// metricsObserver forwards reader events to a MetricsCollector.
type metricsObserver struct {
	mc MetricsCollector
}

func (o metricsObserver) ObserveLine(_, size int) {
	o.mc.RecordLine(size)
}
