package eventfsm

const defaultQueueCapacity = 16

// queue is an unbounded FIFO ring buffer of pending events.
// Owned by a single Machine; not safe for concurrent use.
type queue[E any] struct {
	buf  []E
	head int // Index of the oldest event
	size int
}

func newQueue[E any](capacity int) *queue[E] {
	if capacity < 1 {
		capacity = defaultQueueCapacity
	}
	return &queue[E]{buf: make([]E, capacity)}
}

// push appends e at the tail, growing the buffer when full
func (q *queue[E]) push(e E) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = e
	q.size++
}

// pop removes and returns the head; ok is false when empty
func (q *queue[E]) pop() (e E, ok bool) {
	if q.size == 0 {
		return e, false
	}
	var zero E
	e = q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return e, true
}

func (q *queue[E]) len() int {
	return q.size
}

// reset drops every pending event
func (q *queue[E]) reset() {
	var zero E
	for i := range q.buf {
		q.buf[i] = zero
	}
	q.head = 0
	q.size = 0
}

// grow doubles the buffer, unrolling the ring so head lands at index 0
func (q *queue[E]) grow() {
	buf := make([]E, len(q.buf)*2)
	n := copy(buf, q.buf[q.head:])
	copy(buf[n:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}
