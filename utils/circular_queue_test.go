package utils

import (
	"slices"
	"testing"
)

func TestCircularQueueOverwritesOldest(t *testing.T) {
	q := NewCircularQueue[int](3, nil)
	if q.Len() != 0 || q.Cap() != 3 {
		t.Fatalf("expected empty queue of capacity 3, got len %d cap %d", q.Len(), q.Cap())
	}
	for i := 1; i <= 5; i++ {
		if err := q.Append(i); err != nil {
			t.Fatalf("unexpected append error: %v", err)
		}
	}
	if got := slices.Collect(q.Iter()); !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("expected [3 4 5], got %v", got)
	}
	if v, err := q.Get(0); err != nil || v != 3 {
		t.Fatalf("expected oldest to be 3, got %d (%v)", v, err)
	}
	if _, err := q.Get(3); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestCircularQueuePopAndSet(t *testing.T) {
	q := NewCircularQueue(2, func() string { return "x" })
	if q.Len() != 2 {
		t.Fatalf("expected propagated queue to start full, got %d", q.Len())
	}
	if err := q.Set(1, "y"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if v, ok := q.Pop(); !ok || v != "x" {
		t.Fatalf("expected to pop x, got %q %v", v, ok)
	}
	if v, ok := q.Pop(); !ok || v != "y" {
		t.Fatalf("expected to pop y, got %q %v", v, ok)
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	q := NewCircularQueue[int](0, nil)
	if err := q.Append(1); err == nil {
		t.Fatalf("expected append on zero capacity queue to fail")
	}
}
