package queues

import "github.com/eapache/queue"

var _ Queue[int] = (*FIFO[int])(nil)

// FIFO is an unbounded first-in first-out queue.
// The backing ring grows as needed, so Add never fails and never evicts.
type FIFO[T any] struct {
	buf *queue.Queue
}

// NewFIFO creates a FIFO seeded with items, oldest first.
func NewFIFO[T any](items ...T) *FIFO[T] {
	f := &FIFO[T]{buf: queue.New()}
	for _, item := range items {
		f.buf.Add(item)
	}
	return f
}

// Add inserts val as the newest element. It always succeeds.
func (f *FIFO[T]) Add(val T) (evicted T, wasEvicted bool, err error) {
	f.buf.Add(val)
	return evicted, false, nil
}

// Remove removes and returns the oldest element.
// Returns ErrEmpty if the queue holds no elements.
func (f *FIFO[T]) Remove() (T, error) {
	if f.buf.Length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return f.buf.Remove().(T), nil
}

// Peek returns a copy of the oldest element without removing it.
// Returns ErrEmpty if the queue holds no elements.
func (f *FIFO[T]) Peek() (T, error) {
	if f.buf.Length() == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return f.buf.Peek().(T), nil
}

// Size returns the current element count.
func (f *FIFO[T]) Size() int {
	return f.buf.Length()
}

// IsEmpty reports whether the queue holds no elements.
func (f *FIFO[T]) IsEmpty() bool {
	return f.buf.Length() == 0
}
