package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// the classic worked example: level order of the resulting tree equals
// the insertion order.
var demo = []int{4, 3, 8, 1, 7, 16, 2, 10, 9, 14}

func inorder[T constraints.Ordered](n *Node[T]) []T {
	if n == nil {
		return nil
	}
	return append(append(inorder(n.l), n.v), inorder(n.r)...)
}

func count[T constraints.Ordered](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return count(n.l) + count(n.r) + 1
}

func TestDemoTreeSort(t *testing.T) {
	tree := From(demo)
	require.Equal(t, []int{1, 2, 3, 4, 7, 8, 9, 10, 14, 16}, tree.ToSlice())
	require.False(t, tree.Corrupt())
	mn, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, 1, mn)
	mx, ok := tree.Maximum()
	require.True(t, ok)
	require.Equal(t, 16, mx)
}

func TestDemoLevelOrder(t *testing.T) {
	tree := From(demo)
	var got []int
	tree.LevelOrder(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, demo, got)
	got = got[:0]
	tree.LevelOrder(func(v int) bool {
		got = append(got, v)
		return len(got) < 3
	})
	require.Equal(t, []int{4, 3, 8}, got)
}

func TestLookupBothRealizations(t *testing.T) {
	tree := From(demo)
	for v := 0; v < 20; v++ {
		in := slices.Contains(demo, v)
		n := tree.Lookup(v)
		require.Equal(t, in, n != nil, "Lookup(%d)", v)
		require.Equal(t, in, tree.Has(v), "Has(%d)", v)
		if n != nil {
			require.Equal(t, v, n.Value())
		}
	}
}

func TestRemoveNodeTwoChildren(t *testing.T) {
	tree := From(demo)
	n := tree.Lookup(8)
	require.NotNil(t, n)
	p, l, r := n.Parent(), n.Left(), n.Right()
	require.Equal(t, 4, p.Value())
	require.Equal(t, 7, l.Value())
	require.Equal(t, 16, r.Value())

	require.True(t, tree.RemoveNode(n))
	require.Equal(t, []int{1, 2, 3, 4, 7, 9, 10, 14, 16}, tree.ToSlice())
	require.Equal(t, uint(9), tree.Size())
	require.False(t, tree.Corrupt())
	// the node keeps its identity and structural position; only the
	// value changed to the former right subtree minimum.
	require.Equal(t, 9, n.Value())
	require.Same(t, p, n.Parent())
	require.Same(t, n, p.Right())
	require.Same(t, l, n.Left())
	require.Same(t, r, n.Right())
}

func TestRemoveNodeImmediateRightChild(t *testing.T) {
	// 10's right subtree minimum is its own right child 14
	tree := From([]int{10, 5, 14, 18})
	n := tree.Lookup(10)
	rr := tree.Lookup(18)
	require.True(t, tree.RemoveNode(n))
	require.Equal(t, []int{5, 14, 18}, tree.ToSlice())
	require.Equal(t, 14, n.Value())
	require.Same(t, rr, n.Right())
	require.Same(t, n, rr.Parent())
	require.False(t, tree.Corrupt())
}

func TestRemoveNodeRoot(t *testing.T) {
	tree := From(demo)
	for want := tree.Size(); want > 0; want-- {
		require.True(t, tree.RemoveNode(tree.root))
		require.Equal(t, want-1, tree.Size())
		require.False(t, tree.Corrupt())
	}
	require.Nil(t, tree.root)
	require.False(t, tree.RemoveNode(nil))
}

func TestNodeNextPrevSymmetry(t *testing.T) {
	tree := From(demo)
	for _, v := range demo {
		x := tree.Lookup(v)
		require.NotNil(t, x)
		if s := x.Next(); s != nil {
			require.Same(t, x, s.Prev(), "pred(succ(%d))", v)
		} else {
			require.Equal(t, 16, x.Value())
		}
		if p := x.Prev(); p != nil {
			require.Same(t, x, p.Next(), "succ(pred(%d))", v)
		} else {
			require.Equal(t, 1, x.Value())
		}
	}
	// walking Next from the minimum visits the in-order sequence
	var got []int
	for n := tree.root.Min(); n != nil; n = n.Next() {
		got = append(got, n.Value())
	}
	require.Equal(t, tree.ToSlice(), got)
}

func TestDeleteValue(t *testing.T) {
	tree := From(demo)
	old := tree.root
	oldSeq := inorder(old)

	got := DeleteValue(old, 8)
	require.Equal(t, []int{1, 2, 3, 4, 7, 9, 10, 14, 16}, inorder(got))
	require.Equal(t, count(old)-1, count(got))
	// the input tree is untouched
	require.Equal(t, oldSeq, inorder(old))
	require.False(t, tree.Corrupt())
	// deleting in the right subtree shares the whole left subtree
	require.Same(t, old.Left(), got.Left())
	require.NotSame(t, old, got)

	// two children at the root: the right subtree minimum takes over
	got = DeleteValue(old, 4)
	require.Equal(t, 7, got.Value())
	require.Equal(t, []int{1, 2, 3, 7, 8, 9, 10, 14, 16}, inorder(got))

	// leaves and single-child nodes
	got = DeleteValue(old, 16)
	require.Equal(t, []int{1, 2, 3, 4, 7, 8, 9, 10, 14}, inorder(got))
	got = DeleteValue(old, 1)
	require.Equal(t, []int{2, 3, 4, 7, 8, 9, 10, 14, 16}, inorder(got))

	// absent value: identical content, no error
	got = DeleteValue(old, 5)
	require.Equal(t, oldSeq, inorder(got))
	require.Equal(t, count(old), count(got))

	require.Nil(t, DeleteValue[int](nil, 1))
}

func TestDuplicatesRouteRight(t *testing.T) {
	tree := From([]int{5, 3, 5, 5, 1})
	require.Equal(t, []int{1, 3, 5, 5, 5}, tree.ToSlice())
	require.False(t, tree.Corrupt())
	// the later duplicates sit in the right subtree of the first
	first := tree.Lookup(5)
	require.Same(t, tree.root, first)
	require.Equal(t, 5, first.Right().Value())
	for n := 0; n < 3; n++ {
		require.True(t, tree.Remove(5))
	}
	require.False(t, tree.Remove(5))
	require.Equal(t, []int{1, 3}, tree.ToSlice())
}

func TestVisitorPreconditions(t *testing.T) {
	tree := From(demo)
	require.PanicsWithError(t, NilVisitorError{}.Error(), func() {
		tree.Each(nil)
	})
	require.PanicsWithError(t, NilVisitorError{}.Error(), func() {
		tree.LevelOrder(nil)
	})
	var got []int
	tree.Each(func(v int) bool {
		got = append(got, v)
		return len(got) < 4
	})
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestBuildPrecondition(t *testing.T) {
	require.PanicsWithError(t, InvalidSliceError{2}.Error(), func() {
		Build([]int{1, 5, 5, 9}, true)
	})
	require.PanicsWithError(t, InvalidSliceError{1}.Error(), func() {
		Build([]int{3, 2, 4}, true)
	})
	require.NotPanics(t, func() {
		Build([]int{1, 2, 3}, true)
	})
}
