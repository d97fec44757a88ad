// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc_test

import (
	"errors"
	"testing"

	"github.com/boonzy00/ringmpsc"
)

func TestRegisterAtCapacity(t *testing.T) {
	ch := ringmpsc.NewChannel[int](ringmpsc.Config{RingBits: 4, MaxProducers: 2})

	if _, err := ch.Register(); err != nil {
		t.Fatalf("Register #1: %v", err)
	}
	if _, err := ch.Register(); err != nil {
		t.Fatalf("Register #2: %v", err)
	}
	if _, err := ch.Register(); !errors.Is(err, ringmpsc.ErrAtCapacity) {
		t.Fatalf("Register #3: got %v, want ErrAtCapacity", err)
	}
}

func TestRecvSweepsAllActiveRings(t *testing.T) {
	ch := ringmpsc.NewChannel[int](ringmpsc.Config{RingBits: 4, MaxProducers: 3})

	producers := make([]ringmpsc.Producer[int], 3)
	for i := range producers {
		p, err := ch.Register()
		if err != nil {
			t.Fatalf("Register(%d): %v", i, err)
		}
		producers[i] = p
	}

	// Each producer commits one item tagged with its own id.
	for i, p := range producers {
		v := (i + 1) * 100
		if err := p.Enqueue(&v); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}

	buf := make([]int, 3)
	n := ch.Recv(buf)
	if n != 3 {
		t.Fatalf("Recv: got %d, want 3", n)
	}

	seen := map[int]bool{}
	for _, v := range buf {
		seen[v] = true
	}
	for i := range producers {
		want := (i + 1) * 100
		if !seen[want] {
			t.Fatalf("Recv output %v missing item %d from producer %d", buf, want, i)
		}
	}
}

func TestConsumeAllZeroCopy(t *testing.T) {
	ch := ringmpsc.NewChannel[int](ringmpsc.Config{RingBits: 4, MaxProducers: 2})

	p0, _ := ch.Register()
	p1, _ := ch.Register()

	for i := 0; i < 5; i++ {
		v := i
		if err := p0.Enqueue(&v); err != nil {
			t.Fatalf("p0 Enqueue(%d): %v", i, err)
		}
	}
	for i := 0; i < 3; i++ {
		v := 100 + i
		if err := p1.Enqueue(&v); err != nil {
			t.Fatalf("p1 Enqueue(%d): %v", i, err)
		}
	}

	var p0Seq, p1Seq []int
	n := ch.ConsumeAll(ringmpsc.HandlerFunc[int](func(item *int) {
		if *item < 100 {
			p0Seq = append(p0Seq, *item)
		} else {
			p1Seq = append(p1Seq, *item)
		}
	}))
	if n != 8 {
		t.Fatalf("ConsumeAll: got %d, want 8", n)
	}
	for i, v := range p0Seq {
		if v != i {
			t.Fatalf("p0 FIFO violated: %v", p0Seq)
		}
	}
	for i, v := range p1Seq {
		if v != 100+i {
			t.Fatalf("p1 FIFO violated: %v", p1Seq)
		}
	}
}

func TestChannelCloseDrainsRemaining(t *testing.T) {
	ch := ringmpsc.NewChannel[int](ringmpsc.Config{RingBits: 4, MaxProducers: 2})
	p0, _ := ch.Register()
	p1, _ := ch.Register()

	v0, v1 := 1, 2
	if err := p0.Enqueue(&v0); err != nil {
		t.Fatalf("p0 Enqueue: %v", err)
	}
	if err := p1.Enqueue(&v1); err != nil {
		t.Fatalf("p1 Enqueue: %v", err)
	}

	ch.Close()

	if err := p0.Enqueue(&v0); !errors.Is(err, ringmpsc.ErrClosed) {
		t.Fatalf("Enqueue after close: got %v, want ErrClosed", err)
	}

	buf := make([]int, 2)
	n := ch.Recv(buf)
	if n != 2 {
		t.Fatalf("Recv after close: got %d, want 2", n)
	}
	if !ch.IsEmpty() || !ch.IsClosed() {
		t.Fatal("channel not empty+closed after full drain")
	}
}

func TestMaxProducersReported(t *testing.T) {
	ch := ringmpsc.NewChannel[int](ringmpsc.Config{RingBits: 4, MaxProducers: 7})
	if got := ch.MaxProducers(); got != 7 {
		t.Fatalf("MaxProducers: got %d, want 7", got)
	}
}
