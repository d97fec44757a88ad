// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringmpsc provides a bounded, ring-decomposed multi-producer
// single-consumer channel.
//
// Each registered producer gets a dedicated single-producer
// single-consumer ring; the one consumer sweeps round-robin across all
// registered rings. This eliminates producer/producer contention by
// construction — the only cross-core traffic on any ring is between its
// one producer and the one consumer.
//
// # Quick Start
//
//	ch := ringmpsc.NewChannel[Event](ringmpsc.Default())
//
//	producer, err := ch.Register()
//	if err != nil {
//	    // ErrAtCapacity: MaxProducers rings are already bound.
//	}
//
//	ev := Event{...}
//	for producer.Enqueue(&ev) != nil {
//	    // ErrWouldBlock: ring full, back off and retry.
//	}
//
//	n := ch.ConsumeAll(ringmpsc.HandlerFunc[Event](func(e *Event) {
//	    process(e)
//	}))
//
// # Reserve/Commit
//
// Enqueue is a single-item convenience built on the zero-copy
// reserve/commit protocol, which amortizes synchronization over a
// batch of writes:
//
//	res, err := producer.Reserve(32) // may grant fewer than 32
//	if err != nil {
//	    // ErrWouldBlock or ErrClosed
//	}
//	n := copy(res.Slice, pending)
//	producer.Commit(n)
//
// # Draining
//
// Two consumer entry points cover the zero-copy and copy-based cases:
//
//	ch.ConsumeAll(handler) // zero-copy: handler.Process(&item) per slot
//	ch.Recv(buf)            // copy-based: fills buf, returns count
//
// # Backoff
//
// Reserve/ConsumeAll/Recv never block; callers that need to wait for
// space or data use Backoff, which escalates from a tight spin to a
// bounded park as contention persists, resetting on any success:
//
//	backoff := ringmpsc.Backoff{}
//	for producer.Enqueue(&ev) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// # Shutdown
//
// Close closes every ring. Producers observe ErrClosed from Reserve;
// the consumer keeps draining until every ring is both closed and
// empty:
//
//	ch.Close()
//	for !ch.IsEmpty() {
//	    ch.ConsumeAll(handler)
//	}
//
// # Metrics
//
// Config.EnableMetrics switches every ring from a no-op Metrics
// implementation to live atomic counters (produced/consumed/
// contention), retrievable per-producer via Producer.Metrics.
// Channel.Metrics is a separate instance that counts only Register
// calls rejected at capacity. For Prometheus export, see the
// metrics/prom subpackage.
//
// # Thread Safety
//
// Channel.Register is safe under concurrent callers. Each returned
// Producer must be used by one goroutine at a time (its ring is SPSC).
// ConsumeAll/Recv/IsEmpty must be called by one consumer goroutine
// only — this package implements single-consumer MPSC, not MPMC. Close
// and IsClosed only touch atomic flags and may be called from any
// goroutine.
package ringmpsc
