package Queues

// Queue is a FIFO container. Peek follows the (value, bool) "absent"
// convention: the value is undefined when the bool is false.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

type EmptyQueueError struct{}

func (EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
