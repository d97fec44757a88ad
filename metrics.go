// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import "code.hybscloud.com/atomix"

// Metrics exposes per-ring observability hooks. A NoopMetrics value is
// used whenever Config.EnableMetrics is false, so the hot path pays
// nothing for an unused backend.
type Metrics interface {
	// Produced is called once per successful Commit, with the number of
	// items committed.
	Produced(n int)
	// Consumed is called once per successful ConsumeBatch/CopyBatch,
	// with the number of items drained.
	Consumed(n int)
	// Contended is called once per Reserve call that fails because the
	// ring is full, and once per drain call that finds the ring empty.
	Contended()
}

// NoopMetrics is the default Metrics implementation: every method is
// empty and inlines away, leaving the hot path untouched.
type NoopMetrics struct{}

func (NoopMetrics) Produced(int) {}
func (NoopMetrics) Consumed(int) {}
func (NoopMetrics) Contended()   {}

var _ Metrics = NoopMetrics{}

// RingMetrics is a live Metrics implementation backed by atomic
// counters. Safe for concurrent use: Produced is called only by the
// ring's one producer, Consumed only by the one consumer, Contended by
// whichever side observed contention.
type RingMetrics struct {
	produced   atomix.Int64
	consumed   atomix.Int64
	contention atomix.Int64
}

func (m *RingMetrics) Produced(n int) { m.produced.Add(int64(n)) }
func (m *RingMetrics) Consumed(n int) { m.consumed.Add(int64(n)) }
func (m *RingMetrics) Contended()     { m.contention.Add(1) }

// ProducedCount returns the running total of items committed.
func (m *RingMetrics) ProducedCount() int64 { return m.produced.Load() }

// ConsumedCount returns the running total of items drained.
func (m *RingMetrics) ConsumedCount() int64 { return m.consumed.Load() }

// ContentionCount returns the running total of observed full/empty
// conditions.
func (m *RingMetrics) ContentionCount() int64 { return m.contention.Load() }

var _ Metrics = &RingMetrics{}
