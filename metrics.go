package alignstat

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    scoreCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordBitScore(err error) {
//	    p.scoreCounter.Inc()
//	    // ... record error state, etc.
//	}
type MetricsCollector interface {
	// RecordBitScore is called after each bit score computation.
	// err is nil if successful.
	RecordBitScore(err error)

	// RecordExpectValue is called after each E-value computation.
	// err is nil if successful.
	RecordExpectValue(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBitScore(error)    {}
func (NoopMetricsCollector) RecordExpectValue(error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BitScoreCount     atomic.Int64
	BitScoreErrors    atomic.Int64
	ExpectValueCount  atomic.Int64
	ExpectValueErrors atomic.Int64
}

// RecordBitScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBitScore(err error) {
	b.BitScoreCount.Add(1)
	if err != nil {
		b.BitScoreErrors.Add(1)
	}
}

// RecordExpectValue implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExpectValue(err error) {
	b.ExpectValueCount.Add(1)
	if err != nil {
		b.ExpectValueErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BitScoreCount:     b.BitScoreCount.Load(),
		BitScoreErrors:    b.BitScoreErrors.Load(),
		ExpectValueCount:  b.ExpectValueCount.Load(),
		ExpectValueErrors: b.ExpectValueErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BitScoreCount     int64
	BitScoreErrors    int64
	ExpectValueCount  int64
	ExpectValueErrors int64
}
