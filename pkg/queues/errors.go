package queues

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned by Remove and Peek when the container holds no elements.
	ErrEmpty = errors.New("queue is empty")

	// ErrFull is returned by Buffer.Add when the buffer is at capacity.
	ErrFull = errors.New("queue is full")
)
