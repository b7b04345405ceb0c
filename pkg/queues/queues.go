// Package queues provides a small family of generic FIFO containers:
// an unbounded FIFO, a bounded Buffer that rejects overflow, and a bounded
// CircularBuffer that evicts its oldest element on overflow.
//
// None of the containers are thread-safe. Callers that share one across
// goroutines must wrap it with their own synchronization.
package queues

// Queue is the shared contract implemented by all FIFO variants.
//
// Peek returns the oldest element by value, so element types get the usual
// Go copy semantics: value types are duplicated, reference types share their
// backing storage.
type Queue[T any] interface {
	// Add inserts val as the newest element.
	// When the insertion pushed out the oldest element, that element is
	// returned with wasEvicted set (CircularBuffer only).
	// Returns ErrFull if the container is at capacity and does not allow
	// overflow (Buffer only).
	Add(val T) (evicted T, wasEvicted bool, err error)

	// Remove removes and returns the oldest element.
	// Returns ErrEmpty if the container holds no elements.
	Remove() (T, error)

	// Peek returns a copy of the oldest element without removing it.
	// Returns ErrEmpty if the container holds no elements.
	Peek() (T, error)

	// Size returns the current element count.
	Size() int
}
