// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import (
	"log/slog"

	"code.hybscloud.com/atomix"
)

// Channel composes up to Config.MaxProducers dedicated SPSC rings into
// one MPSC surface: producers register to get a private ring, and the
// single consumer sweeps across all registered rings.
//
// All rings are embedded in one contiguous slice allocated once at
// construction; there is no further allocation per ring or per
// registration.
type Channel[T any] struct {
	rings        []Ring[T]
	nextProducer atomix.Uint64
	closed       atomix.Bool
	metrics      Metrics
}

// NewChannel constructs a channel per cfg. Panics if cfg.MaxProducers
// is less than 1, if cfg.RingBits is 0, or if cfg.RingBits would yield
// a non-positive capacity.
func NewChannel[T any](cfg Config) *Channel[T] {
	if cfg.MaxProducers < 1 {
		panic("ringmpsc: MaxProducers must be >= 1")
	}
	if cfg.RingBits == 0 {
		panic("ringmpsc: RingBits must be >= 1")
	}
	if cfg.ringCapacity() <= 0 {
		panic("ringmpsc: RingBits too large")
	}

	c := &Channel[T]{
		rings:   make([]Ring[T], cfg.MaxProducers),
		metrics: NoopMetrics{},
	}
	if cfg.EnableMetrics {
		c.metrics = &RingMetrics{}
	}

	capacity := uint64(roundToPow2(cfg.ringCapacity()))
	for i := range c.rings {
		r := &c.rings[i]
		r.buffer = make([]T, capacity)
		r.mask = capacity - 1
		if cfg.EnableMetrics {
			r.metrics = &RingMetrics{}
		} else {
			r.metrics = NoopMetrics{}
		}
	}

	slog.Info("ringmpsc: channel constructed",
		"ring_capacity", capacity,
		"max_producers", cfg.MaxProducers,
		"metrics_enabled", cfg.EnableMetrics)

	return c
}

// Register binds the next unclaimed ring to a new producer identity and
// returns a handle to it. Safe under concurrent callers — the atomic
// fetch-and-increment on the producer counter is the only
// synchronization needed. Returns ErrAtCapacity once MaxProducers
// registrations have occurred.
func (c *Channel[T]) Register() (Producer[T], error) {
	idx := c.nextProducer.AddAcqRel(1) - 1
	if idx >= uint64(len(c.rings)) {
		c.metrics.Contended()
		slog.Warn("ringmpsc: register failed, at capacity", "max_producers", len(c.rings))
		return Producer[T]{}, ErrAtCapacity
	}

	ring := &c.rings[idx]
	ring.active = true
	if c.closed.LoadAcquire() {
		ring.Close()
	}

	slog.Info("ringmpsc: producer registered", "producer_id", idx)
	return Producer[T]{ring: ring, id: int(idx)}, nil
}

// activeCount returns the number of rings actually registered so far,
// distinct from the configured MaxProducers ceiling.
func (c *Channel[T]) activeCount() int {
	n := c.nextProducer.LoadAcquire()
	if n > uint64(len(c.rings)) {
		n = uint64(len(c.rings))
	}
	return int(n)
}

// Recv drains registered rings in fixed increasing-index order into
// buf, stopping once buf is full or a full sweep across all active
// rings produced nothing. Returns the number of items written. Per-
// producer order is preserved; there is no ordering guarantee between
// items from different producers, and sweep order is not fair across
// individual calls — only eventually, since every call visits every
// active ring.
func (c *Channel[T]) Recv(buf []T) int {
	written := 0
	active := c.activeCount()
	if active == 0 || len(buf) == 0 {
		return 0
	}

	for {
		progressed := false
		for i := 0; i < active && written < len(buf); i++ {
			n := c.rings[i].CopyBatch(buf[written:])
			if n > 0 {
				written += n
				progressed = true
			}
		}
		if written >= len(buf) || !progressed {
			break
		}
	}
	return written
}

// ConsumeAll is the zero-copy consumer operation: it visits every
// active ring in fixed increasing-index order and calls
// ring.ConsumeBatch(handler) once per ring, returning the total number
// of items processed.
func (c *Channel[T]) ConsumeAll(handler Handler[T]) int {
	total := 0
	active := c.activeCount()
	for i := 0; i < active; i++ {
		total += c.rings[i].ConsumeBatch(handler)
	}
	return total
}

// Close closes every ring. Idempotent. Producers registering after
// Close observe an already-closed ring.
func (c *Channel[T]) Close() {
	c.closed.StoreRelease(true)
	active := c.activeCount()
	for i := 0; i < active; i++ {
		c.rings[i].Close()
	}
	slog.Info("ringmpsc: channel closed", "active_producers", active)
}

// IsEmpty reports whether every active ring is currently empty.
func (c *Channel[T]) IsEmpty() bool {
	active := c.activeCount()
	for i := 0; i < active; i++ {
		if !c.rings[i].IsEmpty() {
			return false
		}
	}
	return true
}

// IsClosed reports whether Close has been called on this channel.
func (c *Channel[T]) IsClosed() bool {
	return c.closed.LoadAcquire()
}

// MaxProducers returns the fixed ring count this channel was
// constructed with.
func (c *Channel[T]) MaxProducers() int {
	return len(c.rings)
}

// Metrics returns the channel-level Metrics instance (tracks
// registration contention, i.e. Register calls observed after
// MaxProducers is reached). NoopMetrics unless Config.EnableMetrics
// was set. Per-ring produced/consumed counters are separate instances;
// retrieve them via Producer.Metrics.
func (c *Channel[T]) Metrics() Metrics {
	return c.metrics
}
