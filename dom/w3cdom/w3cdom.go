/*
Package w3cdom defines an interface type for W3C Document Object Models.
Layout and paint collaborators see the finished document tree through
these interfaces only.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"image/color"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

// Node is a node of a styled document tree: an element, a run of text or
// white space, or an anonymous node inserted to repair table structures.
type Node interface {
	NodeName() string               // tag name, "#text" or "#anonymous"
	NodeValue() string              // text for text nodes, empty otherwise
	IsAnonymous() bool              // synthesized, without counterpart in the markup
	HasAttributes() bool            // check for existence of attributes
	ParentNode() Node               // nil for the root
	HasChildNodes() bool            // check for existence of sub-nodes
	ChildNodes() NodeList           // all children, including text
	Children() NodeList             // element children only
	FirstChild() Node               // nil for leafs
	NextSibling() Node              // nil for the last child
	Attributes() NamedNodeMap       // markup attributes
	ComputedStyles() ComputedStyles // nil before styles are resolved
	TextContent() (string, error)   // text of node and all descendents
}

// NodeList is an ordered list of nodes.
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr is a markup attribute.
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap is the set of attributes of an element.
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// ComputedStyles gives access to the resolved style of a node. Property
// values are available as text; values needed by layout are also
// available interpreted.
type ComputedStyles interface {
	GetPropertyValue(string) style.Property
	Styles() *style.PropertyMap
	Display() css.DisplayMode
	Position() css.PositionT
	FontSize() dimen.DU
	Length(string) css.DimenT // length property, may be relative to a container
	Color(string) color.Color // color property, nil if unset
}

var _ ComputedStyles = &css.ComputedStyle{}
