package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/doctree/dom/source"
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/doctree/dom/style/cssom"
	"github.com/npillmayer/doctree/dom/w3cdom"
	"github.com/npillmayer/doctree/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeKind discriminates elements from text and white space runs.
type NodeKind uint8

// Kinds of nodes
const (
	ElementNode NodeKind = iota
	TextNode
	SpaceNode
)

func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case SpaceNode:
		return "space"
	}
	return "?"
}

// Element is a node of a document tree: either a markup element or a run
// of text or white space. Elements without a counterpart in the markup are
// anonymous; they are created to repair table structures.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	kind                NodeKind
	name                string
	attrs               []source.Attribute
	text                string
	anonymous           bool
	anonDisplay         css.DisplayMode     // display of anonymous nodes
	htmlNode            *html.Node          // mirror for selector matching, nil if anonymous
	doc                 *Document           // owning document
	hints               []style.KeyValue    // presentational hints
	inline              []cssom.Declaration // style attribute
	decls               *style.Declarations
	computed            *css.ComputedStyle
}

func (doc *Document) newElement(kind NodeKind, name string) *Element {
	e := &Element{
		kind:  kind,
		name:  name,
		doc:   doc,
		decls: style.NewDeclarations(css.CheckValue),
	}
	e.Payload = e // Payload will always reference the node itself
	doc.all = append(doc.all, e)
	return e
}

func (doc *Document) newAnonymous(disp css.DisplayMode) *Element {
	e := doc.newElement(ElementNode, "")
	e.anonymous = true
	e.anonDisplay = disp
	return e
}

// ElementOf gets the element from a generic tree node.
func ElementOf(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

// TreeNode returns the generic tree node of an element.
func (e *Element) TreeNode() *tree.Node[*Element] {
	return &e.Node
}

// Kind returns the kind of node.
func (e *Element) Kind() NodeKind {
	return e.kind
}

// TagName returns the tag name of an element, or "" for text and anonymous
// nodes.
func (e *Element) TagName() string {
	return e.name
}

// Text returns the text of a text or space node.
func (e *Element) Text() string {
	return e.text
}

// Attr returns the value of an attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// IsAnonymous is true for nodes synthesized without counterpart in the
// markup.
func (e *Element) IsAnonymous() bool {
	return e.anonymous
}

// Document returns the document owning an element.
func (e *Element) Document() *Document {
	return e.doc
}

// ParentElement returns the parent of an element, or nil for the root.
func (e *Element) ParentElement() *Element {
	return ElementOf(e.Parent())
}

// ChildElements returns the children of an element, including text nodes.
func (e *Element) ChildElements() []*Element {
	children := e.Node.Children()
	r := make([]*Element, len(children))
	for i, ch := range children {
		r[i] = ch.Payload
	}
	return r
}

// HTMLNode returns the mirror node for selector matching.
// Part of interface cssom.Target.
func (e *Element) HTMLNode() *html.Node {
	return e.htmlNode
}

// Declarations returns the declarations applied to an element by the
// cascade. Part of interface cssom.Target.
func (e *Element) Declarations() *style.Declarations {
	return e.decls
}

// Computed returns the computed style of an element, or nil if the
// document has not been resolved.
func (e *Element) Computed() *css.ComputedStyle {
	return e.computed
}

// Display returns the resolved display mode of an element.
func (e *Element) Display() css.DisplayMode {
	if e.computed == nil {
		if e.anonymous {
			return e.anonDisplay
		}
		return css.NoMode
	}
	return e.computed.Display()
}

func (e *Element) isWhitespace() bool {
	return e.kind == SpaceNode
}

func (e *Element) String() string {
	switch {
	case e.anonymous:
		return fmt.Sprintf("<anonymous %s>", e.anonDisplay.Keyword())
	case e.kind == ElementNode:
		return "<" + e.name + ">"
	}
	return fmt.Sprintf("%s %q", e.kind, e.text)
}

// mirror creates the HTML node used for selector matching.
func (e *Element) mirror() *html.Node {
	h := &html.Node{}
	switch e.kind {
	case ElementNode:
		h.Type = html.ElementNode
		h.Data = e.name
		h.DataAtom = atom.Lookup([]byte(e.name))
		h.Attr = make([]html.Attribute, len(e.attrs))
		for i, a := range e.attrs {
			h.Attr[i] = html.Attribute{Key: a.Key, Val: a.Value}
		}
	default:
		h.Type = html.TextNode
		h.Data = e.text
	}
	e.htmlNode = h
	return h
}

// --- W3C DOM ---------------------------------------------------------------

var _ w3cdom.Node = &Element{}

// NodeName is part of interface w3cdom.Node.
func (e *Element) NodeName() string {
	switch {
	case e.kind != ElementNode:
		return "#text"
	case e.anonymous:
		return "#anonymous"
	}
	return e.name
}

// NodeValue is part of interface w3cdom.Node.
func (e *Element) NodeValue() string {
	return e.text
}

// HasAttributes is part of interface w3cdom.Node.
func (e *Element) HasAttributes() bool {
	return len(e.attrs) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (e *Element) ParentNode() w3cdom.Node {
	if p := e.ParentElement(); p != nil {
		return p
	}
	return nil
}

// HasChildNodes is part of interface w3cdom.Node.
func (e *Element) HasChildNodes() bool {
	return e.ChildCount() > 0
}

// ChildNodes is part of interface w3cdom.Node.
func (e *Element) ChildNodes() w3cdom.NodeList {
	return nodeList(e.ChildElements())
}

// Children is part of interface w3cdom.Node. It returns the children which
// are not text nodes.
func (e *Element) Children() w3cdom.NodeList {
	var elems nodeList
	for _, ch := range e.ChildElements() {
		if ch.kind == ElementNode {
			elems = append(elems, ch)
		}
	}
	return elems
}

// FirstChild is part of interface w3cdom.Node.
func (e *Element) FirstChild() w3cdom.Node {
	if ch, ok := e.Child(0); ok {
		return ch.Payload
	}
	return nil
}

// NextSibling is part of interface w3cdom.Node.
func (e *Element) NextSibling() w3cdom.Node {
	p := e.Parent()
	if p == nil {
		return nil
	}
	if sib, ok := p.Child(p.IndexOfChild(&e.Node) + 1); ok {
		return sib.Payload
	}
	return nil
}

// Attributes is part of interface w3cdom.Node.
func (e *Element) Attributes() w3cdom.NamedNodeMap {
	return attrMap(e.attrs)
}

// ComputedStyles is part of interface w3cdom.Node.
func (e *Element) ComputedStyles() w3cdom.ComputedStyles {
	if e.computed == nil {
		return nil
	}
	return e.computed
}

// TextContent is part of interface w3cdom.Node.
func (e *Element) TextContent() (string, error) {
	var b strings.Builder
	err := tree.TopDown(&e.Node, func(n, _ *tree.Node[*Element], _ int) error {
		if n.Payload.kind != ElementNode {
			b.WriteString(n.Payload.text)
		}
		return nil
	})
	return b.String(), err
}

type nodeList []*Element

func (nl nodeList) Length() int {
	return len(nl)
}

func (nl nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(nl) {
		return nil
	}
	return nl[i]
}

func (nl nodeList) String() string {
	names := make([]string, len(nl))
	for i, e := range nl {
		names[i] = e.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type attr struct {
	key, value string
}

func (a attr) Namespace() string { return "" }
func (a attr) Key() string       { return a.key }
func (a attr) Value() string     { return a.value }

type attrMap []source.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i].Key, m[i].Value}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a.Key, a.Value}
		}
	}
	return nil
}
