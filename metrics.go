package gapset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting persistence metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordWrite is called after each set is encoded and written.
	// raw is the encoded size, stored the size after compression.
	RecordWrite(raw, stored int, duration time.Duration, err error)

	// RecordRead is called after each set is read and decoded.
	RecordRead(stored int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWrite(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteRawBytes   atomic.Int64
	WriteStoreBytes atomic.Int64
	WriteTotalNanos atomic.Int64
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	ReadBytes       atomic.Int64
	ReadTotalNanos  atomic.Int64
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(raw, stored int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteRawBytes.Add(int64(raw))
	b.WriteStoreBytes.Add(int64(stored))
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(stored int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
		return
	}
	b.ReadBytes.Add(int64(stored))
}

// MetricsStats is a snapshot of BasicMetricsCollector.
type MetricsStats struct {
	WriteCount       int64
	WriteErrors      int64
	CompressionRatio float64
	AvgWriteLatency  time.Duration
	ReadCount        int64
	ReadErrors       int64
	AvgReadLatency   time.Duration
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		WriteCount:  b.WriteCount.Load(),
		WriteErrors: b.WriteErrors.Load(),
		ReadCount:   b.ReadCount.Load(),
		ReadErrors:  b.ReadErrors.Load(),
	}
	if s.WriteCount > 0 {
		s.AvgWriteLatency = time.Duration(b.WriteTotalNanos.Load() / s.WriteCount)
	}
	if s.ReadCount > 0 {
		s.AvgReadLatency = time.Duration(b.ReadTotalNanos.Load() / s.ReadCount)
	}
	if raw := b.WriteRawBytes.Load(); raw > 0 {
		s.CompressionRatio = float64(b.WriteStoreBytes.Load()) / float64(raw)
	}
	return s
}
