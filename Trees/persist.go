package Trees

import "golang.org/x/exp/constraints"

// DeleteValue returns the root of a new tree equal to the tree rooted
// at root with the topmost occurrence of v removed. Recursive. The
// input tree is never modified: nodes on the search path are
// reconstructed and every subtree the path doesn't touch is shared by
// reference with the input. Deleting an absent value rebuilds the
// search path with identical content and is not an error.
// When the hit node has two children its replacement takes the minimum
// value of the right subtree, and that minimum is deleted from the
// right subtree in the same persistent manner.
// The reconstructed nodes carry no parent references (shared subtrees
// still point into the input tree), so Next/Prev mustn't be used on
// the result; this is the price of structural sharing. Use
// BSTree.RemoveNode when parent links must survive.
// Time: O(D); Space: O(D) new nodes.
func DeleteValue[T constraints.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return nil
	}
	if v < root.v {
		return &Node[T]{v: root.v, l: DeleteValue(root.l, v), r: root.r}
	}
	if v > root.v {
		return &Node[T]{v: root.v, l: root.l, r: DeleteValue(root.r, v)}
	}
	if root.l == nil {
		return root.r
	}
	if root.r == nil {
		return root.l
	}
	m := root.r.Min().v
	return &Node[T]{v: m, l: root.l, r: DeleteValue(root.r, m)}
}
