package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/oakmund/go-algos/Queues"
)

// BSTree is an unbalanced binary search tree with parent links. For
// every node, values in the left subtree are strictly less than the
// node's value and values in the right subtree are greater or equal
// (see Insert for the duplicate rule). No rebalancing is ever
// performed, so D is O(n) in the worst case; all O(D) bounds below are
// against whatever shape the insertion order produced.
// The zero value is an empty tree ready for use; New exists for
// symmetry with the other constructors.
// BSTree is a single owner mutable structure: it isn't safe for
// concurrent use, and the tree mustn't be modified during a traversal.
type BSTree[T constraints.Ordered] struct {
	root *Node[T]
	sz   uint
}

var _ Tree[int] = (*BSTree[int])(nil)

// New returns an empty BSTree.
func New[T constraints.Ordered]() *BSTree[T] {
	return &BSTree[T]{}
}

// From builds a BSTree by inserting every element of vs, in order,
// into an initially empty tree. Equal elements end up right of the
// earlier ones, so input order is preserved among duplicates. An empty
// vs gives an empty tree.
// Time: O(n*D)
func From[T constraints.Ordered](vs []T) *BSTree[T] {
	u := New[T]()
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// Build builds a balanced BSTree from a strictly ascending slice
// recursively. This is faster than repeatedly calling Insert. If
// safe==true, this function will check the ordering condition and
// panic with InvalidSliceError if it is broken. Otherwise, it is up to
// the caller to ensure the condition is met (otherwise the tree will
// be corrupt).
// Time: O(n)
func Build[T constraints.Ordered](sorted []T, safe bool) *BSTree[T] {
	if safe {
		for i := 1; i < len(sorted); i++ {
			if sorted[i-1] >= sorted[i] {
				panic(InvalidSliceError{i})
			}
		}
	}
	var build func(s []T, p *Node[T]) *Node[T]
	build = func(s []T, p *Node[T]) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &Node[T]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		return n
	}
	return &BSTree[T]{build(sorted, nil), uint(len(sorted))}
}

// Insert [Tree.Insert]. Always returns true: values smaller than the
// visited node descend left, all others descend right, so inserting an
// already present value places the new node in the right subtree of
// the old one. Duplicates are allowed by this rule; use Has first to
// reject them at the call site if a set is wanted.
// Exactly one node is created, linked under the last visited node with
// its parent reference set; on an empty tree it becomes the root.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Insert(v T) bool {
	n := &Node[T]{v: v}
	if u.root == nil {
		u.root = n
	} else {
		cur := u.root
		for {
			if v < cur.v {
				if cur.l == nil {
					cur.l = n
					break
				}
				cur = cur.l
			} else {
				if cur.r == nil {
					cur.r = n
					break
				}
				cur = cur.r
			}
		}
		n.p = cur
	}
	u.sz++
	return true
}

// Lookup returns the node holding v, nil if v isn't in the tree. With
// duplicates present this is the topmost occurrence.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Lookup(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// search is the recursive twin of Lookup; both walk the same path and
// must agree on every input.
func search[T constraints.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil || v == n.v {
		return n
	}
	if v < n.v {
		return search(n.l, v)
	}
	return search(n.r, v)
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Has(v T) bool {
	return search(u.root, v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if n := u.root.Min(); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if n := u.root.Max(); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// transplant links c into the slot n occupies under n's parent,
// updating the root when n is the root. c may be nil.
func (u *BSTree[T]) transplant(n, c *Node[T]) {
	if n.p == nil {
		u.root = c
	} else if n == n.p.l {
		n.p.l = c
	} else {
		n.p.r = c
	}
	if c != nil {
		c.p = n.p
	}
}

// RemoveNode splices the given node out of the tree. n must be a node
// of u (as returned by Lookup or navigation); a nil n is a no-op
// returning false. With zero or one child, n's single child (or nil)
// takes n's slot under n's former parent. With two children, the value
// of the right subtree's minimum y is copied onto n — n keeps its
// identity, only its value changes — and y, which has no left child,
// is spliced out instead. Parent references of all remaining nodes
// stay consistent; the removed node's links are cleared.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) RemoveNode(n *Node[T]) bool {
	if n == nil {
		return false
	}
	if n.l != nil && n.r != nil {
		y := n.r.Min()
		n.v = y.v
		n = y
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	u.transplant(n, c)
	n.l, n.r, n.p = nil, nil, nil
	u.sz--
	return true
}

// Remove [Tree.Remove]. Removes the topmost occurrence of v; returns
// false if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	return u.RemoveNode(u.Lookup(v))
}

// Each calls f once per value in ascending order, stopping early when
// f returns false. Panics with NilVisitorError if f is nil, before any
// element is visited. The walk follows parent links and doesn't modify
// the tree.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) Each(f func(T) bool) {
	if f == nil {
		panic(NilVisitorError{})
	}
	for n := u.root.Min(); n != nil; n = n.Next() {
		if !f(n.v) {
			return
		}
	}
}

// InOrder [Tree.InOrder]. Each returned closure restarts from the
// minimum, so the traversal is restartable by calling InOrder again.
// The walk follows parent links instead of threading the tree, so an
// abandoned iterator leaves no trace.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	cur := u.root.Min()
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = cur.Next()
		return
	}
}

// ToSlice materializes the in-order traversal into a new slice,
// element for element the same sequence Each visits.
// Time: O(n)
func (u *BSTree[T]) ToSlice() []T {
	s := make([]T, 0, u.sz)
	for n := u.root.Min(); n != nil; n = n.Next() {
		s = append(s, n.v)
	}
	return s
}

// LevelOrder calls f once per value in breadth first order, top to
// bottom and left to right within a level, stopping early when f
// returns false. Panics with NilVisitorError if f is nil.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) LevelOrder(f func(T) bool) {
	if f == nil {
		panic(NilVisitorError{})
	}
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](u.sz/2 + 1)
	q.Push(u.root)
	for !q.Empty() {
		n, _ := q.Pop()
		if !f(n.v) {
			return
		}
		if n.l != nil {
			q.Push(n.l)
		}
		if n.r != nil {
			q.Push(n.r)
		}
	}
}

// Size [Tree.Size]
// Time: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Clear detaches the whole tree; the old nodes are left for the
// garbage collector.
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// KLargest [Tree.KLargest]
// Without subtree sizes on the nodes this is an in-order scan.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) KLargest(k uint) (T, bool) {
	var r T
	var ok bool
	if k >= 1 && k <= u.sz {
		i := uint(0)
		u.Each(func(v T) bool {
			if i++; i == k {
				r, ok = v, true
				return false
			}
			return true
		})
	}
	return r, ok
}

// RankOf [Tree.RankOf]
// Without subtree sizes on the nodes this is an in-order scan.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) RankOf(v T) uint {
	i, found := uint(0), false
	u.Each(func(x T) bool {
		if x >= v {
			found = x == v
			return false
		}
		i++
		return true
	})
	if !found {
		return 0
	}
	return i + 1
}

// Corrupt [Tree.Corrupt]. Recursive. Checks the search property (left
// strictly less, right greater or equal, transitively through every
// ancestor bound), the parent references, and the recorded size.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	bad, cnt := false, uint(0)
	var walk func(n *Node[T], lo, hi *T)
	walk = func(n *Node[T], lo, hi *T) {
		if n == nil || bad {
			return
		}
		if lo != nil && n.v < *lo {
			bad = true
			return
		}
		if hi != nil && n.v >= *hi {
			bad = true
			return
		}
		if (n.l != nil && n.l.p != n) || (n.r != nil && n.r.p != n) {
			bad = true
			return
		}
		cnt++
		walk(n.l, lo, &n.v)
		walk(n.r, &n.v, hi)
	}
	walk(u.root, nil, nil)
	return bad || cnt != u.sz
}
