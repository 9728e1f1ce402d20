package dom

import (
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
)

// Display modes of anonymous table nodes.
const (
	anonTable    = css.BlockMode | css.TableMode
	anonRowGroup = css.TableRowGroupMode
	anonRow      = css.TableRowMode
	anonCell     = css.TableCellMode
)

// fixTables repairs the table structure of the tree, following the CSS
// table model: a table contains row groups (and captions and columns), row
// groups contain rows, and rows contain cells. Wherever an intermediate
// node is missing, an anonymous node is inserted. Anonymous nodes are
// table participants themselves and are checked in turn, so a single
// malformed node may require a chain of anonymous ancestors.
//
// Only the table participants registered during the cascade are visited.
// Running fixTables on a repaired tree does not change it.
// It returns the number of nodes inserted.
func (doc *Document) fixTables() int {
	queue := make([]*Element, len(doc.tabular))
	copy(queue, doc.tabular)
	inserted := 0
	enqueue := func(anon *Element) {
		queue = append(queue, anon)
		doc.tabular = append(doc.tabular, anon)
		inserted++
	}
	for i := 0; i < len(queue); i++ {
		e := queue[i]
		disp := e.Display()
		switch {
		case disp.IsTable():
			doc.fixTableChildren(e, anonRowGroup, isTableChild, enqueue)
		case disp.IsRowGroup():
			doc.fixTableParent(e, anonTable, css.DisplayMode.IsTable, enqueue)
			doc.fixTableChildren(e, anonRow, css.DisplayMode.IsTableRow, enqueue)
		case disp.IsTableRow():
			doc.fixTableParent(e, anonRowGroup, css.DisplayMode.IsRowGroup, enqueue)
			doc.fixTableChildren(e, anonCell, css.DisplayMode.IsTableCell, enqueue)
		case disp.IsTableCell():
			doc.fixTableParent(e, anonRow, css.DisplayMode.IsTableRow, enqueue)
		case disp.Contains(css.TableColumnMode):
			doc.fixTableParent(e, anonTable, isColumnParent, enqueue)
		case disp.Overlaps(css.TableCaptionMode | css.TableColumnGroupMode):
			doc.fixTableParent(e, anonTable, css.DisplayMode.IsTable, enqueue)
		}
	}
	return inserted
}

func isTableChild(disp css.DisplayMode) bool {
	return disp.IsRowGroup() ||
		disp.Overlaps(css.TableCaptionMode|css.TableColumnMode|css.TableColumnGroupMode)
}

func isColumnParent(disp css.DisplayMode) bool {
	return disp.IsTable() || disp.Contains(css.TableColumnGroupMode)
}

// requiredParent returns the display mode of the anonymous parent a table
// participant needs, if its parent is not suitable.
func requiredParent(disp css.DisplayMode) css.DisplayMode {
	switch {
	case disp.IsTableCell():
		return anonRow
	case disp.IsTableRow():
		return anonRowGroup
	case disp.IsTableInternal(), disp.Contains(css.TableCaptionMode):
		return anonTable
	}
	return css.NoMode
}

// skippable nodes do not start a sequence of nodes to wrap, and do not end
// one. They are white space and nodes which are not displayed.
func skippable(e *Element) bool {
	return e.isWhitespace() || e.Display().Contains(css.DisplayNone)
}

// fixTableChildren wraps every sequence of children of e which are not
// valid for e into an anonymous node with display mode wrapper.
func (doc *Document) fixTableChildren(e *Element, wrapper css.DisplayMode,
	valid func(css.DisplayMode) bool, enqueue func(*Element)) {
	//
	var run []*Element
	flush := func() {
		for len(run) > 0 && skippable(run[len(run)-1]) {
			run = run[:len(run)-1]
		}
		if len(run) > 0 {
			enqueue(doc.wrap(run, wrapper))
		}
		run = nil
	}
	for _, ch := range e.ChildElements() {
		switch {
		case ch.kind == ElementNode && valid(ch.Display()):
			flush()
		case skippable(ch):
			if len(run) > 0 {
				run = append(run, ch)
			}
		default:
			run = append(run, ch)
		}
	}
	flush()
}

// fixTableParent wraps e into an anonymous node with display mode wrapper,
// if the parent of e is not valid for e. Siblings of e needing the same kind
// of parent are wrapped together with e.
func (doc *Document) fixTableParent(e *Element, wrapper css.DisplayMode,
	valid func(css.DisplayMode) bool, enqueue func(*Element)) {
	//
	parent := e.ParentElement()
	if parent == nil {
		enqueue(doc.wrap([]*Element{e}, wrapper))
		return
	}
	if valid(parent.Display()) {
		return
	}
	siblings := parent.ChildElements()
	pos := parent.IndexOfChild(&e.Node)
	same := func(s *Element) bool {
		return s.kind == ElementNode && requiredParent(s.Display()) == wrapper
	}
	start, end := pos, pos
	for j := pos - 1; j >= 0; j-- {
		if s := siblings[j]; same(s) {
			start = j
		} else if !skippable(s) {
			break
		}
	}
	for j := pos + 1; j < len(siblings); j++ {
		if s := siblings[j]; same(s) {
			end = j
		} else if !skippable(s) {
			break
		}
	}
	enqueue(doc.wrap(siblings[start:end+1], wrapper))
}

// wrap replaces a sequence of consecutive siblings by an anonymous node
// with display mode disp, which receives the siblings as its children.
// Wrapping the root makes the anonymous node the new root.
func (doc *Document) wrap(run []*Element, disp css.DisplayMode) *Element {
	anon := doc.newAnonymous(disp)
	anon.decls.Add("display", style.Property(disp.Keyword()), false, style.AnonymousOrigin)
	first := run[0]
	if parent := first.Parent(); parent != nil {
		parent.ReplaceChild(&first.Node, &anon.Node)
	} else if first == doc.root {
		doc.root = anon
	}
	for _, r := range run {
		anon.AddChild(&r.Node)
	}
	tracer().Debugf("wrapped %d nodes starting at %v into %v", len(run), first, anon)
	return anon
}
