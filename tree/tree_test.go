package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func build() (*Node[string], map[string]*Node[string]) {
	nodes := map[string]*Node[string]{}
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		nodes[s] = NewNode(s)
	}
	// a(b(d e) c(f))
	nodes["a"].AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["b"].AddChild(nodes["d"]).AddChild(nodes["e"])
	nodes["c"].AddChild(nodes["f"])
	return nodes["a"], nodes
}

func printTree(node *Node[string]) string {
	p := tp.New()
	ppt(p, node)
	return p.String()
}

func ppt(p tp.Tree, node *Node[string]) {
	if node.ChildCount() == 0 {
		p.AddNode(node.Payload)
		return
	}
	branch := p.AddBranch(node.Payload)
	for _, ch := range node.Children() {
		ppt(branch, ch)
	}
}

func TestNodeStructure(t *testing.T) {
	root, n := build()
	t.Logf("\n%s", printTree(root))
	assert.Equal(t, 2, root.ChildCount())
	assert.Equal(t, root, n["f"].Root())
	assert.Equal(t, 2, n["e"].Depth())
	assert.Equal(t, 1, n["b"].IndexOfChild(n["e"]))
	assert.Equal(t, -1, n["c"].IndexOfChild(n["e"]))
	_, ok := root.Child(5)
	assert.False(t, ok)
}

func TestSingleParent(t *testing.T) {
	root, n := build()
	n["c"].AddChild(n["d"])
	assert.Equal(t, 1, n["b"].ChildCount())
	assert.Equal(t, n["c"], n["d"].Parent())
	assert.Equal(t, 2, n["c"].ChildCount())
	count := 0
	_ = TopDown(root, func(node, _ *Node[string], _ int) error {
		if node == n["d"] {
			count++
		}
		return nil
	})
	assert.Equal(t, 1, count)
}

func TestInsertAndReplace(t *testing.T) {
	root, n := build()
	x := NewNode("x")
	root.InsertChildAt(1, x)
	require.Equal(t, 3, root.ChildCount())
	assert.Equal(t, 1, root.IndexOfChild(x))
	assert.Equal(t, 2, root.IndexOfChild(n["c"]))

	y := NewNode("y")
	assert.True(t, root.ReplaceChild(x, y))
	assert.Nil(t, x.Parent())
	assert.Equal(t, root, y.Parent())
	assert.Equal(t, 1, root.IndexOfChild(y))
	assert.False(t, root.ReplaceChild(n["d"], x), "d is not a child of root")

	// wrap b into a new node, as done for anonymous boxes
	w := NewNode("w")
	require.True(t, root.ReplaceChild(n["b"], w))
	w.AddChild(n["b"])
	assert.Equal(t, 0, root.IndexOfChild(w))
	assert.Equal(t, w, n["b"].Parent())
	assert.Equal(t, 3, n["d"].Depth())
}

func TestWalks(t *testing.T) {
	root, n := build()
	var order []string
	err := TopDown(root, func(node, parent *Node[string], pos int) error {
		order = append(order, node.Payload)
		if node != root {
			assert.Equal(t, node, parent.children.child(pos))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d", "e", "c", "f"}, order)

	order = order[:0]
	require.NoError(t, BottomUp(root, func(node, _ *Node[string], _ int) error {
		order = append(order, node.Payload)
		return nil
	}))
	assert.Equal(t, []string{"d", "e", "b", "f", "c", "a"}, order)

	order = order[:0]
	require.NoError(t, TopDown(root, func(node, _ *Node[string], _ int) error {
		order = append(order, node.Payload)
		if node == n["b"] {
			return ErrSkipChildren
		}
		return nil
	}))
	assert.Equal(t, []string{"a", "b", "c", "f"}, order)

	stop := errors.New("stop")
	err = TopDown(root, func(node, _ *Node[string], _ int) error {
		if node == n["e"] {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.ErrorIs(t, TopDown[string](nil, nil), ErrEmptyTree)
}

func TestPredicates(t *testing.T) {
	root, n := build()
	leafs := DescendentsWith(root, NodeIsLeaf[string]())
	require.Len(t, leafs, 3)
	assert.Equal(t, "f", leafs[2].Payload)
	assert.Len(t, DescendentsWith(root, Whatever[string]()), 5)
	isB := func(node *Node[string]) bool { return node.Payload == "b" }
	assert.Equal(t, n["b"], AncestorWith(n["e"], isB))
	assert.Nil(t, AncestorWith(n["f"], isB))
}
