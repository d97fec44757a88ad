// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import (
	"testing"
	"unsafe"
)

// TestRingPadding asserts the producer-hot, consumer-hot, and cold
// lines of Ring are separated by at least 128 bytes, enough to defeat
// adjacent-line prefetching on x86-64.
func TestRingPadding(t *testing.T) {
	var r Ring[int]

	tailOff := unsafe.Offsetof(r.tail)
	cachedHeadOff := unsafe.Offsetof(r.cachedHead)
	headOff := unsafe.Offsetof(r.head)
	cachedTailOff := unsafe.Offsetof(r.cachedTail)
	closedOff := unsafe.Offsetof(r.closed)

	if got := cachedHeadOff - tailOff; got < 8 {
		t.Fatalf("tail and cachedHead too close: %d bytes apart", got)
	}
	if got := headOff - (cachedHeadOff + unsafe.Sizeof(r.cachedHead)); got < 128 {
		t.Fatalf("producer-hot line and consumer-hot line not separated by >=128 bytes: got %d", got)
	}
	if got := closedOff - (cachedTailOff + unsafe.Sizeof(r.cachedTail)); got < 128 {
		t.Fatalf("consumer-hot line and cold line not separated by >=128 bytes: got %d", got)
	}
}

// TestRoundToPow2 checks the capacity-rounding helper used by
// Config.ringCapacity callers.
func TestRoundToPow2(t *testing.T) {
	cases := map[int]int{1: 2, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1024: 1024}
	for in, want := range cases {
		if got := roundToPow2(in); got != want {
			t.Fatalf("roundToPow2(%d) = %d, want %d", in, got, want)
		}
	}
}
