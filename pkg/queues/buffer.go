package queues

var _ Queue[int] = (*Buffer[int])(nil)

// Buffer is a bounded FIFO queue that rejects additions once full.
// Capacity is fixed at construction. Elements are stored in a ring over a
// preallocated slice, so both Add and Remove are O(1).
type Buffer[T any] struct {
	items    []T
	head     int // index of the oldest element
	length   int
	capacity int
}

// NewBuffer creates an empty Buffer with the given capacity.
// Negative capacities are clamped to zero. A zero-capacity buffer is
// permanently full and permanently empty.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
}

// Add inserts val as the newest element.
// Returns ErrFull when the buffer is at capacity; the buffer is left
// unchanged in that case.
func (b *Buffer[T]) Add(val T) (evicted T, wasEvicted bool, err error) {
	if b.length == b.capacity {
		return evicted, false, ErrFull
	}
	b.items[(b.head+b.length)%b.capacity] = val
	b.length++
	return evicted, false, nil
}

// Remove removes and returns the oldest element.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) Remove() (T, error) {
	var zero T
	if b.length == 0 {
		return zero, ErrEmpty
	}
	val := b.items[b.head]
	b.items[b.head] = zero // release the slot
	b.head = (b.head + 1) % b.capacity
	b.length--
	return val, nil
}

// Peek returns a copy of the oldest element without removing it.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Buffer[T]) Peek() (T, error) {
	if b.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return b.items[b.head], nil
}

// Size returns the current element count.
func (b *Buffer[T]) Size() int {
	return b.length
}

// Capacity returns the maximum element count.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.length == 0
}

// IsFull reports whether the buffer is at capacity.
func (b *Buffer[T]) IsFull() bool {
	return b.length == b.capacity
}
