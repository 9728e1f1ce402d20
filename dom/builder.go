package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/doctree/dom/segment"
	"github.com/npillmayer/doctree/dom/source"
	"golang.org/x/net/html"
)

// build converts a tag and its descendants into elements. A nameless tag
// does not create an element of its own; its content is returned as a
// sequence of siblings.
func (doc *Document) build(tag source.Tag, depth int) ([]*Element, error) {
	if tag == nil {
		return nil, nil
	}
	if limit := doc.opts.maxDepth; limit > 0 && depth > limit {
		return nil, fmt.Errorf("%w: tree depth exceeds %d", ErrResourceExhausted, limit)
	}
	var e *Element
	if name := tag.Name(); name != "" {
		e = doc.newElement(ElementNode, strings.ToLower(name))
		e.attrs = tag.Attributes()
		e.mirror()
	}
	var nodes []*Element
	var kids []source.Tag
	var text string
	if p := tag.Payload(); p != nil {
		switch m := p.Match(); m {
		case m.Children(&kids):
			for _, k := range kids {
				children, err := doc.build(k, depth+1)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, children...)
			}
		case m.Text(&text):
			nodes = doc.segment(text)
		}
	}
	if e == nil {
		return nodes, nil
	}
	for _, ch := range nodes {
		appendChild(e, ch)
	}
	return []*Element{e}, nil
}

// segment splits text into leaf nodes for text and white space runs.
func (doc *Document) segment(text string) []*Element {
	if len(text) == 0 {
		return nil
	}
	segs := segment.Collect(doc.opts.segmenter, text)
	leafs := make([]*Element, len(segs))
	for i, seg := range segs {
		kind := TextNode
		if seg.Kind == segment.SpaceSegment {
			kind = SpaceNode
		}
		leafs[i] = doc.newLeaf(kind, seg.Text)
	}
	return leafs
}

func (doc *Document) newLeaf(kind NodeKind, text string) *Element {
	e := doc.newElement(kind, "")
	e.text = text
	e.mirror()
	return e
}

// appendChild attaches ch as the last child of parent, in the document tree
// as well as in the tree of HTML mirror nodes.
func appendChild(parent, ch *Element) {
	parent.AddChild(&ch.Node)
	if ch.htmlNode != nil && ch.htmlNode.Parent == nil {
		mirrorParent(parent).AppendChild(ch.htmlNode)
	}
}

// mirrorParent finds the HTML mirror node to attach the mirrors of the
// children of e to. Anonymous nodes have no mirror and are skipped.
func mirrorParent(e *Element) *html.Node {
	doc := e.doc
	for ; e != nil; e = e.ParentElement() {
		if e.htmlNode != nil {
			return e.htmlNode
		}
	}
	return doc.htmlDoc
}
