package Trees

import "golang.org/x/exp/constraints"

// A Node in the BSTree.
// The zero value is meaningless; nil represents an absent subtree.
// l and r are the owning references to the child subtrees. p is a
// non-owning back reference to the parent (nil at the root): it is
// only used for navigation and splicing and is never freed through.
// Nodes are handed out by BSTree methods; constructing one directly
// gives a detached single-node tree.
type Node[T constraints.Ordered] struct {
	v    T
	l, r *Node[T]
	p    *Node[T]
}

// Value held at n.
func (n *Node[T]) Value() T {
	return n.v
}

// Left child of n, nil if none.
func (n *Node[T]) Left() *Node[T] {
	return n.l
}

// Right child of n, nil if none.
func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Parent of n, nil at the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

// Min returns the leftmost node of the subtree rooted at n; nil if n is nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	for n.l != nil {
		n = n.l
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n; nil if n is nil.
// Time: O(D); Space: O(1)
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	for n.r != nil {
		n = n.r
	}
	return n
}

// Next returns the in-order successor of n, nil if n is the maximum.
// If n has a right child this is the minimum of the right subtree,
// otherwise the first ancestor reached through a left-child edge.
// n must carry valid parent links; nodes reconstructed by DeleteValue
// don't (see DeleteValue).
// Time: O(D); Space: O(1)
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	if n.r != nil {
		return n.r.Min()
	}
	p := n.p
	for p != nil && n == p.r {
		n, p = p, p.p
	}
	return p
}

// Prev returns the in-order predecessor of n, nil if n is the minimum.
// Mirror image of Next; the same parent link requirement applies.
// Time: O(D); Space: O(1)
func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}
	if n.l != nil {
		return n.l.Max()
	}
	p := n.p
	for p != nil && n == p.l {
		n, p = p, p.p
	}
	return p
}
