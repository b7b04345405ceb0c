package queues

var _ Queue[int] = (*CircularBuffer[int])(nil)

// CircularBuffer is a bounded FIFO queue that evicts its oldest element
// instead of rejecting additions once full.
//
// When constructed with a default value the buffer starts pre-filled with
// capacity copies of it and every Remove refills the freed slot, so Size
// always equals Capacity.
type CircularBuffer[T any] struct {
	items      []T
	head       int // index of the oldest element
	length     int
	capacity   int
	defaultVal T
	hasDefault bool
}

// NewCircularBuffer creates an empty CircularBuffer with the given capacity.
// Negative capacities are clamped to zero. A zero-capacity buffer evicts
// every value the moment it is added.
func NewCircularBuffer[T any](capacity int) *CircularBuffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &CircularBuffer[T]{
		items:    make([]T, capacity),
		capacity: capacity,
	}
}

// NewCircularBufferWithDefault creates a CircularBuffer pre-filled with
// capacity copies of def. Slots freed by Remove are refilled with def, so
// the buffer stays permanently full.
func NewCircularBufferWithDefault[T any](capacity int, def T) *CircularBuffer[T] {
	cb := NewCircularBuffer[T](capacity)
	for i := range cb.items {
		cb.items[i] = def
	}
	cb.length = cb.capacity
	cb.defaultVal = def
	cb.hasDefault = true
	return cb
}

// Add inserts val as the newest element. When the buffer is full the oldest
// element is evicted and returned with wasEvicted set.
func (cb *CircularBuffer[T]) Add(val T) (evicted T, wasEvicted bool, err error) {
	if cb.capacity == 0 {
		// Degenerate pass-through: the value is evicted the moment it is added.
		return val, true, nil
	}
	if cb.length < cb.capacity {
		cb.items[(cb.head+cb.length)%cb.capacity] = val
		cb.length++
		return evicted, false, nil
	}
	// Full: the tail slot coincides with the head, so writing the new value
	// over the head and advancing it is append-then-evict in one step.
	evicted = cb.items[cb.head]
	cb.items[cb.head] = val
	cb.head = (cb.head + 1) % cb.capacity
	return evicted, true, nil
}

// Remove removes and returns the oldest element. On a default-valued buffer
// the freed slot is refilled with the default, keeping Size at Capacity.
// Returns ErrEmpty if the buffer holds no elements.
func (cb *CircularBuffer[T]) Remove() (T, error) {
	var zero T
	if cb.length == 0 {
		return zero, ErrEmpty
	}
	val := cb.items[cb.head]
	if cb.hasDefault {
		// The buffer is full, so the head slot is also the next tail slot.
		cb.items[cb.head] = cb.defaultVal
	} else {
		cb.items[cb.head] = zero // release the slot
		cb.length--
	}
	cb.head = (cb.head + 1) % cb.capacity
	return val, nil
}

// Peek returns a copy of the oldest element without removing it.
// Returns ErrEmpty if the buffer holds no elements.
func (cb *CircularBuffer[T]) Peek() (T, error) {
	if cb.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return cb.items[cb.head], nil
}

// Size returns the current element count. For a default-valued buffer this
// always equals Capacity.
func (cb *CircularBuffer[T]) Size() int {
	return cb.length
}

// Capacity returns the maximum element count.
func (cb *CircularBuffer[T]) Capacity() int {
	return cb.capacity
}

// IsEmpty reports whether the buffer holds no elements.
func (cb *CircularBuffer[T]) IsEmpty() bool {
	return cb.length == 0
}

// IsFull reports whether the buffer is at capacity.
func (cb *CircularBuffer[T]) IsFull() bool {
	return cb.length == cb.capacity
}
