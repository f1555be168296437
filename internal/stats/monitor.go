package stats

import (
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-contentkit/pkg/interfaces"
)

// Monitor accumulates process-lifetime counters for resolution errors and
// fallback usage. All methods are safe for concurrent use; the hot counters
// are plain atomics so recording never contends with resolution.
type Monitor struct {
	totalErrors   atomic.Int64
	fallbacksUsed atomic.Int64

	mu              sync.RWMutex
	errorsByKind    map[interfaces.ErrorKind]int64
	errorsByKey     map[string]int64
	fallbacksByTier map[interfaces.ResolutionTier]int64
}

// NewMonitor returns an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		errorsByKind:    map[interfaces.ErrorKind]int64{},
		errorsByKey:     map[string]int64{},
		fallbacksByTier: map[interfaces.ResolutionTier]int64{},
	}
}

// RecordError tallies one non-fatal resolution error. ref identifies the
// affected content ("domain/key" or a locale code); blank refs only bump the
// aggregate counters.
func (m *Monitor) RecordError(kind interfaces.ErrorKind, ref string) {
	if m == nil {
		return
	}
	m.totalErrors.Add(1)

	m.mu.Lock()
	m.errorsByKind[kind]++
	if ref != "" {
		m.errorsByKey[ref]++
	}
	m.mu.Unlock()
}

// RecordFallback tallies one lookup satisfied below the primary tier.
func (m *Monitor) RecordFallback(tier interfaces.ResolutionTier) {
	if m == nil {
		return
	}
	m.fallbacksUsed.Add(1)

	m.mu.Lock()
	m.fallbacksByTier[tier]++
	m.mu.Unlock()
}

// TotalErrors returns the aggregate error count.
func (m *Monitor) TotalErrors() int64 {
	if m == nil {
		return 0
	}
	return m.totalErrors.Load()
}

// FallbacksUsed returns the aggregate fallback count.
func (m *Monitor) FallbacksUsed() int64 {
	if m == nil {
		return 0
	}
	return m.fallbacksUsed.Load()
}

// ErrorRate reports fallbacks-per-error. The rate is defined as zero while no
// errors have occurred so cold starts never read as unhealthy.
func (m *Monitor) ErrorRate() float64 {
	if m == nil {
		return 0
	}
	total := m.totalErrors.Load()
	if total <= 0 {
		return 0
	}
	return float64(m.fallbacksUsed.Load()) / float64(total)
}

// IsErrorRateHigh compares the current rate against a threshold. It reports
// false while no errors have been recorded regardless of the threshold.
func (m *Monitor) IsErrorRateHigh(threshold float64) bool {
	if m == nil {
		return false
	}
	if m.totalErrors.Load() == 0 {
		return false
	}
	return m.ErrorRate() > threshold
}

// Snapshot returns a copy of every counter. Fields are individually
// consistent; under concurrent recording the aggregate counters and maps may
// trail one another slightly.
func (m *Monitor) Snapshot() interfaces.Statistics {
	if m == nil {
		return interfaces.Statistics{}
	}

	snapshot := interfaces.Statistics{
		TotalErrors:   m.totalErrors.Load(),
		FallbacksUsed: m.fallbacksUsed.Load(),
		ErrorRate:     m.ErrorRate(),
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.errorsByKind) > 0 {
		snapshot.ErrorsByKind = make(map[interfaces.ErrorKind]int64, len(m.errorsByKind))
		for kind, count := range m.errorsByKind {
			snapshot.ErrorsByKind[kind] = count
		}
	}
	if len(m.errorsByKey) > 0 {
		snapshot.ErrorsByKey = make(map[string]int64, len(m.errorsByKey))
		for key, count := range m.errorsByKey {
			snapshot.ErrorsByKey[key] = count
		}
	}
	if len(m.fallbacksByTier) > 0 {
		snapshot.FallbacksByTier = make(map[interfaces.ResolutionTier]int64, len(m.fallbacksByTier))
		for tier, count := range m.fallbacksByTier {
			snapshot.FallbacksByTier[tier] = count
		}
	}
	return snapshot
}

// Reset zeroes every counter. Resolution paths never call this; it exists so
// tests can isolate measurements.
func (m *Monitor) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.totalErrors.Store(0)
	m.fallbacksUsed.Store(0)
	m.errorsByKind = map[interfaces.ErrorKind]int64{}
	m.errorsByKey = map[string]int64{}
	m.fallbacksByTier = map[interfaces.ResolutionTier]int64{}
	m.mu.Unlock()
}
