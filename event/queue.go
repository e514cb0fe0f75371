package event

// DefaultQueueSize is used when NewQueue is given a non-positive size
const DefaultQueueSize = 256

// Queue is a single-threaded ring buffer
// Overflow: oldest entries are overwritten when full
type Queue[T any] struct {
	items []T
	head  uint64 // read index
	tail  uint64 // write index
}

func NewQueue[T any](size int) *Queue[T] {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue[T]{items: make([]T, size)}
}

// Push appends v, dropping the oldest entry when the ring is full
func (q *Queue[T]) Push(v T) {
	size := uint64(len(q.items))
	q.items[q.tail%size] = v
	q.tail++
	if q.tail-q.head > size {
		q.head = q.tail - size
	}
}

// Consume returns all pending entries in FIFO order and empties the queue
func (q *Queue[T]) Consume() []T {
	if q.tail == q.head {
		return nil
	}
	size := uint64(len(q.items))
	out := make([]T, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		out = append(out, q.items[i%size])
	}
	q.head = q.tail
	return out
}

func (q *Queue[T]) Len() int {
	return int(q.tail - q.head)
}
