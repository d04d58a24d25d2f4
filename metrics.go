package mtstat

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordCatalog is called after each region catalog build.
	// occurrences is the total across all pure pattern sets, duration the
	// build time, err nil on success.
	RecordCatalog(region string, occurrences int, duration time.Duration, err error)

	// RecordRun is called after a full analysis run over all regions.
	RecordRun(regions int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCatalog(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CatalogCount      atomic.Int64
	CatalogErrors     atomic.Int64
	CatalogTotalNanos atomic.Int64
	OccurrenceCount   atomic.Int64
	RunCount          atomic.Int64
	RunErrors         atomic.Int64
	RunTotalNanos     atomic.Int64
}

func (m *BasicMetricsCollector) RecordCatalog(_ string, occurrences int, d time.Duration, err error) {
	m.CatalogCount.Add(1)
	m.CatalogTotalNanos.Add(int64(d))
	m.OccurrenceCount.Add(int64(occurrences))
	if err != nil {
		m.CatalogErrors.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordRun(_ int, d time.Duration, err error) {
	m.RunCount.Add(1)
	m.RunTotalNanos.Add(int64(d))
	if err != nil {
		m.RunErrors.Add(1)
	}
}
