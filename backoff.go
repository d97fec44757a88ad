// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import (
	"runtime"
	"time"

	"code.hybscloud.com/spin"
)

// Backoff is the adaptive wait strategy used by producers on Reserve
// failure and by the consumer on an empty drain.
//
// Four escalating phases, advancing after each unsuccessful call to
// Wait: spin, spin-hint burst, yield, park. The phase counter resets on
// Reset, which callers invoke after any successful operation. The
// design goal is to stay in phase 1 under genuine contention (cheap)
// and escape to phase 4 when idle (scheduler-friendly).
//
// A Backoff is not safe for concurrent use; give each producer and the
// consumer their own instance.
type Backoff struct {
	spin  spin.Wait
	tries uint32
	park  time.Duration
}

const (
	backoffSpinPhase1  = 10
	backoffSpinPhase2  = 100
	backoffYieldPhase3 = 4
	backoffParkMin     = 50 * time.Microsecond
	backoffParkMax     = 4 * time.Millisecond
)

// Wait blocks cooperatively for the current phase's duration and
// advances to the next phase.
func (b *Backoff) Wait() {
	switch {
	case b.tries < backoffSpinPhase1:
		b.spin.Once()
	case b.tries < backoffSpinPhase1+backoffSpinPhase2:
		b.spin.Once()
	case b.tries < backoffSpinPhase1+backoffSpinPhase2+backoffYieldPhase3:
		runtime.Gosched()
	default:
		if b.park == 0 {
			b.park = backoffParkMin
		}
		time.Sleep(b.park)
		if b.park < backoffParkMax {
			b.park *= 2
			if b.park > backoffParkMax {
				b.park = backoffParkMax
			}
		}
	}
	b.tries++
}

// Reset returns the backoff to phase 1. Call after any successful
// Reserve/ConsumeBatch/CopyBatch.
func (b *Backoff) Reset() {
	b.tries = 0
	b.park = 0
}
