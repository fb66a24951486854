package tessera

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame rendering statistics.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records the duration of one rendered frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// MetricsSnapshot is a point-in-time copy of the frame statistics.
type MetricsSnapshot struct {
	Frames     uint64
	LastFrame  time.Duration
	MaxFrame   time.Duration
	TotalFrame time.Duration
	AvgFrame   time.Duration
	Uptime     time.Duration
}

// Snapshot returns the current frame statistics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()
	total := time.Duration(m.frameTotalNs.Load())

	s := MetricsSnapshot{
		Frames:     frames,
		LastFrame:  time.Duration(m.lastFrameNs.Load()),
		MaxFrame:   time.Duration(m.frameMaxNs.Load()),
		TotalFrame: total,
		Uptime:     time.Since(m.startTime),
	}
	if frames > 0 {
		s.AvgFrame = total / time.Duration(frames)
	}
	return s
}
