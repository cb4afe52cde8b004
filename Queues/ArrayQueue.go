package Queues

// ArrayQueue is a growable circular buffer Queue. Not safe for
// concurrent use.
// head and tail can coincide both when empty and when full; sz
// disambiguates.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

// MakeArrayQueue returns an empty ArrayQueue with room for initCap
// elements before the first grow.
func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (q *ArrayQueue[T]) Empty() bool {
	return q.sz == 0
}

func (q *ArrayQueue[T]) Size() uint {
	return q.sz
}

func (q *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if q.head < q.tail {
		copy(nc, q.content[q.head:q.tail])
	} else {
		n := copy(nc, q.content[q.head:])
		copy(nc[n:], q.content[:q.tail])
	}
	q.head, q.tail, q.content = 0, q.sz%newLen, nc
}

func (q *ArrayQueue[T]) Push(item T) {
	if q.sz == uint(len(q.content)) {
		q.resize(q.sz*3/2 + 1)
	}
	q.content[q.tail] = item
	q.tail = (q.tail + 1) % uint(len(q.content))
	q.sz++
}

func (q *ArrayQueue[T]) Pop() (item T, e error) {
	if q.sz == 0 {
		e = EmptyQueueError{}
		return
	}
	item = q.content[q.head]
	q.content[q.head] = *new(T) // drop the reference for the GC
	q.head = (q.head + 1) % uint(len(q.content))
	q.sz--
	return
}

func (q *ArrayQueue[T]) Peek() (T, bool) {
	if q.sz == 0 {
		return *new(T), false
	}
	return q.content[q.head], true
}

// Shrink reduces the buffer to the current size (at least 1).
func (q *ArrayQueue[T]) Shrink() {
	q.resize(q.sz | 1)
}

// Clear empties the queue and resets the buffer contents; the buffer
// itself is kept.
func (q *ArrayQueue[T]) Clear() {
	clear(q.content)
	q.head, q.tail, q.sz = 0, 0, 0
}
