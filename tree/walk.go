package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrEmptyTree is returned if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrSkipChildren may be returned by a TopDown action to prevent the walk
// from descending into the children of the current node.
var ErrSkipChildren = errors.New("skip children")

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(node *Node[T]) bool

// Action is a function type to operate on tree nodes. position is the
// index of node within the children of parent (0 for the start node).
type Action[T comparable] func(node *Node[T], parent *Node[T], position int) error

// Whatever is a predicate to match anything.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(n *Node[T]) bool { return n.ChildCount() == 0 }
}

// TopDown calls action for node and all of its descendents, parents before
// children, children in sequence. The first error other than
// ErrSkipChildren stops the walk and is returned.
//
// The list of children of a node is read after action has been called on
// the node, so actions may restructure the children of the node they are
// called for.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return topDown(node, node.parent, 0, action)
}

func topDown[T comparable](node, parent *Node[T], pos int, action Action[T]) error {
	if err := action(node, parent, pos); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		return err
	}
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil {
			return err
		}
	}
	return nil
}

// BottomUp calls action for node and all of its descendents, children
// before parents.
func BottomUp[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return bottomUp(node, node.parent, 0, action)
}

func bottomUp[T comparable](node, parent *Node[T], pos int, action Action[T]) error {
	for i, ch := range node.Children() {
		if err := bottomUp(ch, node, i, action); err != nil {
			return err
		}
	}
	return action(node, parent, pos)
}

// DescendentsWith collects all descendents of node (excluding node) that
// match predicate, in document order.
func DescendentsWith[T comparable](node *Node[T], predicate Predicate[T]) []*Node[T] {
	if node == nil {
		return nil
	}
	var found []*Node[T]
	_ = TopDown(node, func(n, _ *Node[T], _ int) error {
		if n != node && predicate(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// AncestorWith returns the nearest ancestor of node matching predicate,
// or nil.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil {
		return nil
	}
	for p := node.parent; p != nil; p = p.parent {
		if predicate(p) {
			return p
		}
	}
	return nil
}
