package dom

import "github.com/npillmayer/tyse/core/dimen"

// The document stores interaction state on behalf of the host, which is
// responsible for dispatching pointer events. Styling does not depend on it.

// SetHovered records the element the pointer is over. It returns true if
// the hovered element changed.
func (doc *Document) SetHovered(e *Element) bool {
	if e == doc.hovered {
		return false
	}
	doc.hovered = e
	return true
}

// Hovered returns the element the pointer is over, or nil.
func (doc *Document) Hovered() *Element {
	return doc.hovered
}

// ClearHovered forgets the hovered element. It returns true if there was
// one.
func (doc *Document) ClearHovered() bool {
	return doc.SetHovered(nil)
}

// FixedBox is the box of a fixed-position element, relative to the
// viewport.
type FixedBox struct {
	Element       *Element
	X, Y          dimen.DU
	Width, Height dimen.DU
}

// Contains is true if a point is inside the box.
func (b FixedBox) Contains(x, y dimen.DU) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// AddFixedBox registers the box of a fixed-position element.
func (doc *Document) AddFixedBox(box FixedBox) {
	doc.fixedBoxes = append(doc.fixedBoxes, box)
}

// FixedBoxes returns the boxes registered with AddFixedBox.
func (doc *Document) FixedBoxes() []FixedBox {
	r := make([]FixedBox, len(doc.fixedBoxes))
	copy(r, doc.fixedBoxes)
	return r
}

// ClearFixedBoxes removes all registered boxes, e.g. before a new layout.
func (doc *Document) ClearFixedBoxes() {
	doc.fixedBoxes = doc.fixedBoxes[:0]
}

// FixedBoxAt returns the topmost registered box containing a point.
func (doc *Document) FixedBoxAt(x, y dimen.DU) (FixedBox, bool) {
	for i := len(doc.fixedBoxes) - 1; i >= 0; i-- {
		if doc.fixedBoxes[i].Contains(x, y) {
			return doc.fixedBoxes[i], true
		}
	}
	return FixedBox{}, false
}

// FixedPositioned returns the elements with a computed position of `fixed`,
// in document order. Their boxes are candidates for AddFixedBox.
func (doc *Document) FixedPositioned() []*Element {
	if doc.root == nil {
		return nil
	}
	var fixed []*Element
	if NodeIsFixed(&doc.root.Node) {
		fixed = append(fixed, doc.root)
	}
	return append(fixed, doc.root.Find(NodeIsFixed)...)
}
