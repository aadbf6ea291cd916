package eventfsm

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := newQueue[int](2)

	for i := 1; i <= 5; i++ {
		q.push(i)
	}
	if q.len() != 5 {
		t.Fatalf("expected len 5, got %d", q.len())
	}

	for want := 1; want <= 5; want++ {
		got, ok := q.pop()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}

	if _, ok := q.pop(); ok {
		t.Error("expected empty queue")
	}
}

func TestQueueGrowAfterWrap(t *testing.T) {
	q := newQueue[int](4)

	// Move head forward so the ring wraps before growing
	q.push(1)
	q.push(2)
	q.pop()
	q.pop()
	for i := 3; i <= 10; i++ {
		q.push(i)
	}

	for want := 3; want <= 10; want++ {
		got, ok := q.pop()
		if !ok || got != want {
			t.Fatalf("expected %d, got %d (ok=%v)", want, got, ok)
		}
	}
}

func TestQueueReset(t *testing.T) {
	q := newQueue[string](0)
	q.push("a")
	q.push("b")
	q.reset()

	if q.len() != 0 {
		t.Errorf("expected empty queue after reset, got %d", q.len())
	}
	q.push("c")
	if got, _ := q.pop(); got != "c" {
		t.Errorf("expected c, got %s", got)
	}
}
