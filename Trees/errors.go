package Trees

import "strconv"

// InvalidSliceError is the panic value of Build when safe==true and the
// given slice isn't strictly ascending. At is the first index whose
// element isn't greater than its predecessor.
type InvalidSliceError struct {
	At int
}

func (e InvalidSliceError) Error() string {
	return "slice is not strictly ascending at index " + strconv.Itoa(e.At)
}

// NilVisitorError is the panic value of the visitor based traversals
// when the given visitor is nil. It is raised before any element is
// visited.
type NilVisitorError struct{}

func (NilVisitorError) Error() string {
	return "nil visitor passed to traversal"
}
