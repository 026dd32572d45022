package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the buffer has no free slot.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic queue.
// Implementations must be thread-safe.
type Queue[T any] interface {
	// Enqueue adds an item to the end of the queue without blocking.
	Enqueue(item T) error
	// TryDequeue removes and returns the item from the front of the queue,
	// reporting false when the queue is empty.
	TryDequeue() (T, bool)
	Size() int
	ReadAll() []T
	Clear()
}
