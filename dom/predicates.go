package dom

import "github.com/npillmayer/doctree/tree"

// NodeIsText is a predicate to match text and white space nodes of a
// document tree. It is intended to be used with tree.DescendentsWith.
var NodeIsText tree.Predicate[*Element] = func(n *tree.Node[*Element]) bool {
	return n.Payload.kind != ElementNode
}

// NodeIsTabular is a predicate to match elements with a table-related
// display mode. It is valid after styles have been computed.
var NodeIsTabular tree.Predicate[*Element] = func(n *tree.Node[*Element]) bool {
	e := n.Payload
	return e.kind == ElementNode && e.Display().IsTableRelated()
}

// NodeIsFixed is a predicate to match elements positioned relative to the
// viewport.
var NodeIsFixed tree.Predicate[*Element] = func(n *tree.Node[*Element]) bool {
	e := n.Payload
	return e.kind == ElementNode && e.computed != nil && e.computed.Position().IsFixed()
}

// NodeWithTag returns a predicate to match elements by tag name.
func NodeWithTag(name string) tree.Predicate[*Element] {
	return func(n *tree.Node[*Element]) bool {
		return n.Payload.kind == ElementNode && n.Payload.name == name
	}
}

// Find returns all descendents of e which match a predicate,
// in document order.
func (e *Element) Find(predicate tree.Predicate[*Element]) []*Element {
	nodes := tree.DescendentsWith(&e.Node, predicate)
	r := make([]*Element, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}
