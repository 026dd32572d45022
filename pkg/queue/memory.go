package queue

import "sync"

const (
	// QueueBufferSize represents the maximum size of a queue
	QueueBufferSize = 64
)

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.RWMutex
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue holding at most size items. A size
// below one falls back to QueueBufferSize.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	if size < 1 {
		size = QueueBufferSize
	}
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// TryDequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) TryDequeue() (T, bool) {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case item := <-q.ch:
		return item, true
	default:
		var zero T
		return zero, false
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAll reads all pending items in the queue
func (q *InMemoryQueue[T]) ReadAll() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	var items []T
	for len(q.ch) > 0 {
		items = append(items, <-q.ch)
	}

	return items
}

// Clear clears all items from the queue.
func (q *InMemoryQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
