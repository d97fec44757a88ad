// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// Reserve returns it when the ring is full (backpressure). The drain
// methods ConsumeBatch/CopyBatch do not return an error; they report an
// empty ring by returning 0.
//
// ErrWouldBlock is a control flow signal, not a failure: a full ring and
// an empty ring are the same steady-state condition from the caller's
// point of view — back off and retry. This is an alias for
// [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrAtCapacity is returned by Channel.Register when MaxProducers rings
// are already bound. Unlike ErrWouldBlock this is not retriable: the
// caller must not proceed with this producer identity.
var ErrAtCapacity = errors.New("ringmpsc: channel at producer capacity")

// ErrClosed is returned by Ring.Reserve once the ring has been closed.
// The caller must cease production; further Reserve calls keep failing.
var ErrClosed = errors.New("ringmpsc: ring is closed")

// IsWouldBlock reports whether err is the steady-state full/empty signal.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsFull reports whether err indicates Reserve found the ring full.
func IsFull(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsEmpty reports whether err is ErrWouldBlock, the sentinel that also
// stands for an empty ring. The drain methods in this package report an
// empty ring by returning 0, not an error.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsAtCapacity reports whether err indicates Channel.Register failed
// because MaxProducers rings are already bound.
func IsAtCapacity(err error) bool {
	return errors.Is(err, ErrAtCapacity)
}

// IsClosed reports whether err indicates the ring has been closed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
