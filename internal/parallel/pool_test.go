package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunCoversAllIndices(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 1000
	var hits [n]atomic.Int32
	p.Run(n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d executed %d times, want 1", i, got)
		}
	}
}

func TestPoolRunSmallerThanWorkers(t *testing.T) {
	p := New(8)
	defer p.Close()

	var count atomic.Int32
	p.Run(3, func(i int) {
		count.Add(1)
	})
	if got := count.Load(); got != 3 {
		t.Errorf("executed %d indices, want 3", got)
	}
}

func TestPoolRunZero(t *testing.T) {
	p := New(2)
	defer p.Close()
	p.Run(0, func(i int) {
		t.Error("fn called for empty range")
	})
}

func TestPoolDefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers = %d, want >= 1", p.Workers())
	}
}

func TestPoolCloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}

func TestPoolRunAfterCloseInline(t *testing.T) {
	p := New(2)
	p.Close()

	var count atomic.Int32
	p.Run(10, func(i int) {
		count.Add(1)
	})
	if got := count.Load(); got != 10 {
		t.Errorf("executed %d indices after Close, want 10 (inline)", got)
	}
}
