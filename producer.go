// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Producer is a non-owning handle to exactly one ring, returned by
// Channel.Register. It carries a monotonically assigned id used only
// for diagnostics — it has no bearing on routing or ordering.
//
// A Producer must be used by one producer goroutine at a time; handing
// it to a different goroutine is only safe once the original goroutine
// has quiesced, a caller-level concern this type does not enforce.
type Producer[T any] struct {
	ring *Ring[T]
	id   int
}

// ID returns this producer's diagnostic identifier, the order in which
// it was registered (starting at 0).
func (p Producer[T]) ID() int {
	return p.id
}

// Cap returns the capacity of this producer's ring.
func (p Producer[T]) Cap() int {
	return p.ring.Cap()
}

// Reserve forwards to the underlying ring's Reserve.
func (p Producer[T]) Reserve(want int) (Reservation[T], error) {
	return p.ring.Reserve(want)
}

// Commit forwards to the underlying ring's Commit.
func (p Producer[T]) Commit(n int) {
	p.ring.Commit(n)
}

// Enqueue is a single-item convenience wrapper around Reserve+Commit.
// Returns ErrWouldBlock if the ring is full, ErrClosed if closed.
func (p Producer[T]) Enqueue(item *T) error {
	res, err := p.ring.Reserve(1)
	if err != nil {
		return err
	}
	res.Slice[0] = *item
	p.ring.Commit(1)
	return nil
}

// IsClosed reports whether this producer's ring has been closed.
func (p Producer[T]) IsClosed() bool {
	return p.ring.IsClosed()
}

// Metrics returns this producer's ring's Metrics instance (NoopMetrics
// unless the owning Channel was built with EnableMetrics).
func (p Producer[T]) Metrics() Metrics {
	return p.ring.metrics
}
