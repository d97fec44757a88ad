// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import "code.hybscloud.com/atomix"

// pad128 isolates adjacent hot fields across two cache lines. Adjacent-
// line prefetching on modern x86-64 fetches 64-byte lines in pairs, so a
// single 64-byte pad is not enough to stop the producer-hot and
// consumer-hot lines from bouncing together.
type pad128 [128]byte

// Handler is the single-method capability consumeBatch dispatches to.
// Implementations must not mutate the slot; process is for pure
// observation only.
type Handler[T any] interface {
	Process(item *T)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc[T any] func(item *T)

// Process calls f(item).
func (f HandlerFunc[T]) Process(item *T) { f(item) }

// Reservation is the zero-copy writable window returned by Ring.Reserve.
// Slice may be shorter than the requested length when the contiguous
// free run to the buffer's wrap boundary is smaller than requested;
// callers must honor len(Slice), not the original want.
type Reservation[T any] struct {
	Slice []T
}

// Ring is a bounded single-producer single-consumer buffer: the one
// per-producer primitive a Channel composes many of. Based on Lamport's
// ring buffer with cached index shadows, generalized from single-item
// enqueue/dequeue into a batch reserve/commit/consume protocol.
//
// Capacity is a power of two, fixed at construction. Indices are 64-bit
// monotonic counters; slot index = index & mask.
type Ring[T any] struct {
	// Producer-hot line: tail is written by the producer, read by the
	// consumer; cachedHead is the producer-local shadow of head.
	_          pad128
	tail       atomix.Uint64
	cachedHead uint64
	_          pad128

	// Consumer-hot line: head is written by the consumer, read by the
	// producer (only on cache refresh); cachedTail is the consumer-local
	// shadow of tail.
	head       atomix.Uint64
	cachedTail uint64
	_          pad128

	// Cold line: lifecycle and optional metrics.
	active   bool
	closed   atomix.Bool
	metrics  Metrics
	_        pad128

	buffer []T
	mask   uint64
}

// Cap returns the ring's capacity (always a power of two).
func (r *Ring[T]) Cap() int {
	return int(r.mask + 1)
}

// Reserve obtains a writable window of up to want contiguous slots.
// want must satisfy 1 <= want <= Cap(); a larger request is a
// programmer error. Returns ErrClosed if the ring has been closed, or
// ErrWouldBlock if fewer than want slots are currently free.
//
// The granted length may be less than want when the contiguous free run
// to the buffer's wrap boundary is smaller than want — callers must
// honor len(Reservation.Slice). The returned slots are exclusively
// writable by this producer until Commit.
func (r *Ring[T]) Reserve(want int) (Reservation[T], error) {
	if want < 1 || uint64(want) > r.mask+1 {
		panic("ringmpsc: reserve: want out of range")
	}
	if r.closed.LoadAcquire() {
		return Reservation[T]{}, ErrClosed
	}

	capacity := r.mask + 1
	tail := r.tail.LoadRelaxed()

	occupancy := tail - r.cachedHead
	if occupancy+uint64(want) > capacity {
		r.cachedHead = r.head.LoadAcquire()
		occupancy = tail - r.cachedHead
		if occupancy+uint64(want) > capacity {
			r.metrics.Contended()
			return Reservation[T]{}, ErrWouldBlock
		}
	}

	slotIndex := tail & r.mask
	toEnd := capacity - slotIndex
	free := capacity - occupancy

	granted := uint64(want)
	if toEnd < granted {
		granted = toEnd
	}
	if free < granted {
		granted = free
	}

	return Reservation[T]{Slice: r.buffer[slotIndex : slotIndex+granted]}, nil
}

// Commit publishes the first n written slots from the most recent
// Reserve, advancing tail with a single release store. n must not
// exceed the length of that reservation's slice; an intervening Reserve
// call before Commit, or committing more than was granted, is a
// programmer error with no defined recovery.
func (r *Ring[T]) Commit(n int) {
	if n < 0 {
		panic("ringmpsc: commit: negative count")
	}
	r.tail.StoreRelease(r.tail.LoadRelaxed() + uint64(n))
	r.metrics.Produced(n)
}

// ConsumeBatch drains all currently available items, invoking
// handler.Process on each in increasing index order (establishing
// per-ring FIFO), then advances head once for the whole batch. Returns
// the number of items processed; 0 means the ring is currently empty.
func (r *Ring[T]) ConsumeBatch(handler Handler[T]) int {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			r.metrics.Contended()
			return 0
		}
	}

	available := int(r.cachedTail - head)
	for i := 0; i < available; i++ {
		handler.Process(&r.buffer[(head+uint64(i))&r.mask])
	}
	r.head.StoreRelease(head + uint64(available))
	r.metrics.Consumed(available)
	return available
}

// CopyBatch copies up to len(buf) available items into buf, in FIFO
// order, and advances head by the number copied. Returns the number of
// items copied; 0 means the ring is currently empty.
func (r *Ring[T]) CopyBatch(buf []T) int {
	head := r.head.LoadRelaxed()
	if head == r.cachedTail {
		r.cachedTail = r.tail.LoadAcquire()
		if head == r.cachedTail {
			r.metrics.Contended()
			return 0
		}
	}

	available := int(r.cachedTail - head)
	if available > len(buf) {
		available = len(buf)
	}
	for i := 0; i < available; i++ {
		buf[i] = r.buffer[(head+uint64(i))&r.mask]
	}
	r.head.StoreRelease(head + uint64(available))
	r.metrics.Consumed(available)
	return available
}

// Close marks the ring closed. Idempotent. After Close returns, Reserve
// keeps returning ErrClosed; ConsumeBatch/CopyBatch keep draining
// whatever remains until the ring is also empty.
func (r *Ring[T]) Close() {
	r.closed.StoreRelease(true)
}

// IsClosed reports whether Close has been called.
func (r *Ring[T]) IsClosed() bool {
	return r.closed.LoadAcquire()
}

// IsEmpty reports whether head == tail, observed with acquire ordering.
func (r *Ring[T]) IsEmpty() bool {
	return r.head.LoadAcquire() == r.tail.LoadAcquire()
}
