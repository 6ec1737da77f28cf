package obs

import (
	"sync"
	"sync/atomic"
	"time"

	"main/internal/eventlog"
)

// Metrics collects lightweight counters and latency stats for the pipeline.
type Metrics struct {
	mu           sync.Mutex
	eventCounts  map[eventlog.Kind]uint64
	rejectCounts map[string]uint64

	processLatency LatencyStats
}

// LatencyStats aggregates duration samples in nanoseconds.
type LatencyStats struct {
	count uint64
	sum   uint64
	min   uint64
	max   uint64
}

// LatencySnapshot is a point-in-time view of latency stats.
type LatencySnapshot struct {
	Count uint64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Snapshot captures the current metrics values.
type Snapshot struct {
	EventCounts    map[eventlog.Kind]uint64
	RejectCounts   map[string]uint64
	ProcessLatency LatencySnapshot
}

// NewMetrics allocates a metrics container.
func NewMetrics() *Metrics {
	return &Metrics{
		eventCounts:  make(map[eventlog.Kind]uint64),
		rejectCounts: make(map[string]uint64),
	}
}

// ObserveEvent increments the counter for an emitted event kind.
func (m *Metrics) ObserveEvent(kind eventlog.Kind) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.eventCounts[kind]++
	m.mu.Unlock()
}

// IncReject increments the counter for a rejection reason class.
func (m *Metrics) IncReject(reason string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.rejectCounts[reason]++
	m.mu.Unlock()
}

// ObserveProcess measures end-to-end per-message latency.
func (m *Metrics) ObserveProcess(d time.Duration) {
	if m == nil {
		return
	}
	m.processLatency.Observe(d)
}

// Snapshot returns a copy of the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	eventCounts := make(map[eventlog.Kind]uint64, len(m.eventCounts))
	for kind, count := range m.eventCounts {
		eventCounts[kind] = count
	}
	rejectCounts := make(map[string]uint64, len(m.rejectCounts))
	for reason, count := range m.rejectCounts {
		rejectCounts[reason] = count
	}
	m.mu.Unlock()
	return Snapshot{
		EventCounts:    eventCounts,
		RejectCounts:   rejectCounts,
		ProcessLatency: m.processLatency.Snapshot(),
	}
}

// Observe records a duration sample.
func (l *LatencyStats) Observe(d time.Duration) {
	if d < 0 {
		return
	}
	nanos := uint64(d)
	atomic.AddUint64(&l.count, 1)
	atomic.AddUint64(&l.sum, nanos)

	for {
		min := atomic.LoadUint64(&l.min)
		if min != 0 && nanos >= min {
			break
		}
		if atomic.CompareAndSwapUint64(&l.min, min, nanos) {
			break
		}
	}

	for {
		max := atomic.LoadUint64(&l.max)
		if nanos <= max {
			break
		}
		if atomic.CompareAndSwapUint64(&l.max, max, nanos) {
			break
		}
	}
}

// Snapshot returns the aggregated latency stats.
func (l *LatencyStats) Snapshot() LatencySnapshot {
	count := atomic.LoadUint64(&l.count)
	if count == 0 {
		return LatencySnapshot{}
	}
	sum := atomic.LoadUint64(&l.sum)
	min := atomic.LoadUint64(&l.min)
	max := atomic.LoadUint64(&l.max)
	return LatencySnapshot{
		Count: count,
		Min:   time.Duration(min),
		Max:   time.Duration(max),
		Avg:   time.Duration(sum / count),
	}
}
