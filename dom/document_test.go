package dom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/doctree/dom/source"
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/doctree/dom/style/media"
	"github.com/npillmayer/doctree/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var T, Txt = source.T, source.Txt

func create(t *testing.T, tag source.Tag, c Container, opts ...Option) *Document {
	doc, err := CreateFromMarkup(tag, c, opts...)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func prop(e *Element, key string) string {
	return string(e.Computed().GetPropertyValue(key))
}

func first(t *testing.T, doc *Document, tag string) *Element {
	found := doc.Root().Find(NodeWithTag(tag))
	if doc.Root().TagName() == tag {
		return doc.Root()
	}
	require.NotEmpty(t, found, "no element <%s>", tag)
	return found[0]
}

func TestTreeShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	doc := create(t, T("div", nil,
		Txt("p", nil, "Hello  World"),
		T("p", nil),
		T("ul", nil, Txt("li", nil, "one"), Txt("li", nil, " two ")),
	), nil)
	root := doc.Root()
	require.NotNil(t, root)
	assert.Nil(t, root.ParentElement())
	seen := make(map[*Element]bool)
	err := tree.TopDown(root.TreeNode(), func(n, parent *tree.Node[*Element], pos int) error {
		e := n.Payload
		if seen[e] {
			return fmt.Errorf("node %v reached twice", e)
		}
		seen[e] = true
		if e != root {
			p := e.ParentElement()
			require.NotNil(t, p)
			count := 0
			for _, ch := range p.ChildElements() {
				if ch == e {
					count++
				}
			}
			assert.Equal(t, 1, count)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, len(doc.Elements()))
	p := first(t, doc, "p")
	require.Equal(t, 3, p.ChildCount())
	kinds := []NodeKind{}
	for _, ch := range p.ChildElements() {
		kinds = append(kinds, ch.Kind())
	}
	assert.Equal(t, []NodeKind{TextNode, SpaceNode, TextNode}, kinds)
	text, err := root.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Hello  Worldone two ", text)
}

func TestEmptyTextYieldsNoChildren(t *testing.T) {
	doc := create(t, Txt("p", nil, ""), nil)
	assert.Equal(t, 0, doc.Root().ChildCount())
}

func TestDocumentWithoutRoot(t *testing.T) {
	doc := create(t, Txt("", nil, ""), nil)
	assert.Nil(t, doc.Root())
	assert.True(t, errors.Is(doc.Resolve(), ErrNoRoot))
}

func TestTopLevelTextIsWrapped(t *testing.T) {
	doc := create(t, Txt("", nil, "a b"), nil)
	root := doc.Root()
	require.NotNil(t, root)
	assert.True(t, root.IsAnonymous())
	assert.Equal(t, 3, root.ChildCount())
	assert.True(t, root.Display().IsBlockLevel())
}

func TestMaxDepth(t *testing.T) {
	var tag source.Tag = Txt("span", nil, "deep")
	for i := 0; i < 10; i++ {
		tag = T("div", nil, tag)
	}
	_, err := CreateFromMarkup(tag, nil, WithMaxDepth(5))
	assert.True(t, errors.Is(err, ErrResourceExhausted))
	_, err = CreateFromMarkup(tag, nil, WithMaxDepth(20))
	assert.NoError(t, err)
}

func TestMaxStylesheetSize(t *testing.T) {
	tag := T("div", nil, Txt("style", nil, "p { color: red }"))
	_, err := CreateFromMarkup(tag, nil, WithMaxStylesheetSize(5))
	assert.True(t, errors.Is(err, ErrResourceExhausted))
}

func TestCascadePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	master := WithMasterStyles("p { color: red }")
	withSheet := T("div", nil, Txt("style", nil, "p { color: green }"), Txt("p", nil, "x"))
	withoutSheet := T("div", nil, Txt("p", nil, "x"))
	//
	doc := create(t, withSheet, nil, master, WithUserStyles("p { color: blue }"))
	assert.Equal(t, "blue", prop(first(t, doc, "p"), "color"))
	doc = create(t, withSheet, nil, master)
	assert.Equal(t, "green", prop(first(t, doc, "p"), "color"))
	doc = create(t, withoutSheet, nil, master)
	assert.Equal(t, "red", prop(first(t, doc, "p"), "color"))
}

func TestHintsAndInlineStyles(t *testing.T) {
	tag := T("div", nil,
		Txt("style", nil, "td { color: green }"),
		T("table", map[string]string{"border": "1"},
			T("tr", nil,
				Txt("td", map[string]string{"bgcolor": "red", "style": "text-align: right"}, "x"),
				Txt("td", map[string]string{"style": "color: blue !important; text-align: left"}, "y"),
			)))
	doc := create(t, tag, nil, WithUserStyles("td { color: black; text-align: center }"))
	tds := doc.Root().Find(NodeWithTag("td"))
	require.Len(t, tds, 2)
	assert.Equal(t, "red", prop(tds[0], "background-color"))
	assert.Equal(t, "black", prop(tds[0], "color"))
	assert.Equal(t, "center", prop(tds[0], "text-align"))
	assert.Equal(t, "blue", prop(tds[1], "color"))
	assert.Empty(t, doc.Warnings())
}

func TestMediaFiltering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	c := NewStaticContainer(799, 600)
	doc := create(t, T("div", nil, Txt("p", nil, "x")), c)
	doc.AddStylesheet("p { color: green }", "", "width >= 800")
	require.NoError(t, doc.Resolve())
	p := first(t, doc, "p")
	assert.Equal(t, "black", prop(p, "color"))
	//
	c.Features = media.Screen(800, 600)
	changed, err := doc.MediaChanged()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "green", prop(p, "color"))
	//
	c.Features = media.Screen(1000, 600)
	changed, _ = doc.MediaChanged()
	assert.False(t, changed)
	assert.Equal(t, "green", prop(p, "color"))
	//
	c.Features = media.Screen(640, 480)
	changed, _ = doc.MediaChanged()
	assert.True(t, changed)
	assert.Equal(t, "black", prop(p, "color"))
}

func TestNestedMediaRules(t *testing.T) {
	c := NewStaticContainer(1024, 768)
	doc := create(t, T("div", nil,
		Txt("style", map[string]string{"media": "screen"},
			"@media (max-width: 600px) { p { color: red } }"),
		Txt("p", nil, "x")), c)
	p := first(t, doc, "p")
	assert.Equal(t, "black", prop(p, "color"))
	c.Features = media.Screen(500, 768)
	changed, _ := doc.MediaChanged()
	assert.True(t, changed)
	assert.Equal(t, "red", prop(p, "color"))
}

func TestStylesheetBatching(t *testing.T) {
	doc := create(t, T("div", nil, Txt("p", nil, "x")), nil)
	p := first(t, doc, "p")
	doc.AddStylesheet("p { color: green }", "", "")
	doc.AddStylesheet("p { margin-left: 1pt }", "", "")
	assert.Equal(t, "black", prop(p, "color"))
	assert.Len(t, doc.Stylesheets(), 2)
	require.NoError(t, doc.Resolve())
	assert.Equal(t, "green", prop(p, "color"))
	assert.Equal(t, css.JustDimen(dimen.BP), p.Computed().Length("margin-left"))
}

func TestEqualSpecificityLaterWins(t *testing.T) {
	doc := create(t, T("div", nil, Txt("p", nil, "x")), nil)
	doc.AddStylesheet("p { color: green }", "", "")
	doc.AddStylesheet("p { color: blue }", "", "")
	require.NoError(t, doc.Resolve())
	assert.Equal(t, "blue", prop(first(t, doc, "p"), "color"))
}

func TestMalformedStylesheetsDegrade(t *testing.T) {
	doc := create(t, T("div", nil, Txt("p", nil, "x")), nil)
	doc.AddStylesheet("p::: { color: red } p { color: green; margin-left: wobbly }", "", "")
	doc.AddStylesheet("p { color: blue }", "", "screen and (wobble: 1)")
	require.NoError(t, doc.Resolve())
	p := first(t, doc, "p")
	assert.Equal(t, "green", prop(p, "color"))
	assert.NotEmpty(t, doc.Warnings())
}

// --- Tables ----------------------------------------------------------------

func shape(e *Element) string {
	s := e.TagName()
	if e.IsAnonymous() {
		s = "~" + e.Display().Keyword()
	}
	if e.Kind() != ElementNode {
		return "#"
	}
	if e.ChildCount() == 0 {
		return s
	}
	s += "("
	for i, ch := range e.ChildElements() {
		if i > 0 {
			s += " "
		}
		s += shape(ch)
	}
	return s + ")"
}

func TestTableFixupExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	doc := create(t, T("table", nil, Txt("td", nil, "x")), nil)
	assert.Equal(t, "table(~table-row-group(~table-row(td(#))))", shape(doc.Root()))
	rg := doc.Root().ChildElements()[0]
	assert.True(t, rg.IsAnonymous())
	assert.True(t, rg.Display().IsRowGroup())
	assert.Nil(t, rg.HTMLNode())
	row := rg.ChildElements()[0]
	assert.True(t, row.Display().IsTableRow())
	assert.Equal(t, style.AnonymousOrigin, func() style.Origin {
		d, _ := row.Declarations().Get("display")
		return d.Origin
	}())
	assert.Len(t, doc.Tabular(), 4)
}

func TestTableFixupIsIdempotent(t *testing.T) {
	tag := T("div", nil,
		T("table", nil,
			Txt("", nil, "\n  "),
			Txt("caption", nil, "Caption"),
			T("tr", nil, Txt("td", nil, "a"), Txt("", nil, " "), Txt("td", nil, "b")),
			Txt("", nil, " "),
			T("tr", nil, Txt("td", nil, "c"), Txt("span", nil, "loose")),
			T("tbody", nil, Txt("", nil, "stray text")),
		),
		Txt("td", nil, "lonely cell"),
	)
	doc := create(t, tag, nil)
	once := shape(doc.Root())
	count := len(doc.Root().Find(tree.Whatever[*Element]()))
	assert.Equal(t, 0, doc.fixTables())
	require.NoError(t, doc.Resolve())
	assert.Equal(t, once, shape(doc.Root()))
	assert.Equal(t, count, len(doc.Root().Find(tree.Whatever[*Element]())))
	t.Logf("fixed table: %s", once)
	assert.Equal(t, "div("+
		"table(# caption(#) ~table-row-group(tr(td(#) # td(#)) # tr(td(#) ~table-cell(span(#)))) "+
		"tbody(~table-row(~table-cell(# # #)))) "+
		"~table(~table-row-group(~table-row(td(# # #)))))", once)
}

func TestTableCellAsRoot(t *testing.T) {
	doc := create(t, Txt("td", nil, "x"), nil)
	assert.Equal(t, "~table(~table-row-group(~table-row(td(#))))", shape(doc.Root()))
	assert.Nil(t, doc.Root().ParentElement())
}

// --- Locale ----------------------------------------------------------------

func TestMatchLocale(t *testing.T) {
	c := NewStaticContainer(800, 600)
	c.Lang, c.Culture = "en", "en-US"
	doc := create(t, Txt("p", nil, "x"), c)
	assert.True(t, doc.MatchLocale("en"))
	assert.True(t, doc.MatchLocale("en-US"))
	assert.False(t, doc.MatchLocale("fr"))
	assert.False(t, doc.MatchLocale("EN"))
	assert.False(t, doc.MatchLocale("en-us"))
	assert.False(t, doc.MatchLocale(""))
	c.Lang, c.Culture = "en", "US"
	doc = create(t, Txt("p", nil, "x"), c)
	assert.True(t, doc.MatchLocale("en-US"))
	c.Lang, c.Culture = "de-AT", ""
	doc = create(t, Txt("p", nil, "x"), c)
	lang, culture := doc.Language()
	assert.Equal(t, "de", lang)
	assert.Equal(t, "de-AT", culture)
}

func TestLangChanged(t *testing.T) {
	c := NewStaticContainer(800, 600)
	tag := T("div", nil, Txt("style", nil, ":lang(fr) p { color: blue }"), Txt("p", nil, "x"))
	doc := create(t, tag, c)
	p := first(t, doc, "p")
	assert.Equal(t, "black", prop(p, "color"))
	c.Lang = "fr"
	changed, err := doc.LangChanged()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "blue", prop(p, "color"))
	changed, _ = doc.LangChanged()
	assert.False(t, changed)
	//
	plain := create(t, T("div", nil, Txt("p", nil, "x")), c)
	c.Lang = "en"
	changed, _ = plain.LangChanged()
	assert.False(t, changed)
	assert.True(t, plain.MatchLocale("en"))
}

// --- Imports and appending -------------------------------------------------

type importingContainer struct {
	*StaticContainer
	sheets map[string]string
}

func (c importingContainer) ImportCSS(url, baseURL string) (string, error) {
	if s, ok := c.sheets[url]; ok {
		return s, nil
	}
	return "", fmt.Errorf("not found: %s", url)
}

func TestLinkedAndImportedStylesheets(t *testing.T) {
	c := importingContainer{
		StaticContainer: NewStaticContainer(800, 600),
		sheets: map[string]string{
			"main.css": `@import "base.css"; @import url(print.css) print; p { color: green }`,
			"base.css": `p { color: red; margin-left: 2pt }`,
		},
	}
	tag := T("html", nil,
		T("head", nil, T("link", map[string]string{"rel": "stylesheet", "href": "main.css"})),
		T("body", nil, Txt("p", nil, "x")))
	doc := create(t, tag, c, WithBaseURL("http://example.com/doc/"))
	p := first(t, doc, "p")
	assert.Equal(t, "green", prop(p, "color"))
	assert.Equal(t, css.JustDimen(2*dimen.BP), p.Computed().Length("margin-left"))
	require.Len(t, doc.Stylesheets(), 1)
	assert.Equal(t, "http://example.com/doc/main.css", doc.Stylesheets()[0].BaseURL)
	assert.Len(t, doc.Warnings(), 1) // print.css not found
}

func TestAppendChildren(t *testing.T) {
	doc := create(t, T("div", nil), nil)
	doc.AddStylesheet("div > p { color: green }", "", "")
	require.NoError(t, doc.AppendChildren(doc.Root(), T("table", nil, Txt("p", nil, "x"))))
	require.NoError(t, doc.AppendChildren(doc.Root(), Txt("p", nil, "y")))
	ps := doc.Root().Find(NodeWithTag("p"))
	require.Len(t, ps, 2)
	assert.Equal(t, "black", prop(ps[0], "color"))
	assert.Equal(t, "green", prop(ps[1], "color"))
	assert.Equal(t, "div(table(~table-row-group(~table-row(~table-cell(p(#))))) p(#))",
		shape(doc.Root()))
	text := doc.Root().Find(NodeIsText)[0]
	assert.Error(t, doc.AppendChildren(text, Txt("p", nil, "z")))
}

// --- Interaction -----------------------------------------------------------

func TestHoverAndFixedBoxes(t *testing.T) {
	doc := create(t, T("div", nil, Txt("p", nil, "x")), nil)
	p := first(t, doc, "p")
	assert.Nil(t, doc.Hovered())
	assert.True(t, doc.SetHovered(p))
	assert.False(t, doc.SetHovered(p))
	assert.Equal(t, p, doc.Hovered())
	assert.True(t, doc.ClearHovered())
	assert.False(t, doc.ClearHovered())
	//
	doc.AddFixedBox(FixedBox{Element: p, X: 0, Y: 0, Width: 10, Height: 10})
	doc.AddFixedBox(FixedBox{Element: doc.Root(), X: 5, Y: 5, Width: 10, Height: 10})
	assert.Len(t, doc.FixedBoxes(), 2)
	box, ok := doc.FixedBoxAt(7, 7)
	assert.True(t, ok)
	assert.Equal(t, doc.Root(), box.Element)
	box, ok = doc.FixedBoxAt(2, 2)
	assert.True(t, ok)
	assert.Equal(t, p, box.Element)
	doc.ClearFixedBoxes()
	assert.Empty(t, doc.FixedBoxes())
	_, ok = doc.FixedBoxAt(2, 2)
	assert.False(t, ok)
}

func TestFixedPositioned(t *testing.T) {
	doc := create(t, T("div", nil,
		T("nav", map[string]string{"style": "position: fixed; top: 0"}),
		Txt("p", nil, "x"),
	), nil)
	doc.AddStylesheet("p { position: fixed; bottom: 10pt }", "", "")
	require.NoError(t, doc.Resolve())
	fixed := doc.FixedPositioned()
	require.Len(t, fixed, 2)
	assert.Equal(t, "nav", fixed[0].TagName())
	assert.Equal(t, "p", fixed[1].TagName())
	pos := fixed[1].Computed().Position()
	assert.Equal(t, 10*dimen.BP, pos.Offset(css.Bottom).Unwrap())
	assert.True(t, pos.Offset(css.Top).IsAuto())
	assert.Equal(t, css.BlockMode, fixed[1].Display().Outer())
}

func TestW3CView(t *testing.T) {
	doc := create(t, T("div", map[string]string{"id": "main"},
		Txt("p", nil, "a b"), Txt("", nil, " "), T("br", nil)), nil)
	root := doc.Root()
	assert.Equal(t, "div", root.NodeName())
	assert.True(t, root.HasAttributes())
	assert.Equal(t, "main", root.Attributes().GetNamedItem("id").Value())
	assert.Equal(t, 3, root.ChildNodes().Length())
	assert.Equal(t, 2, root.Children().Length())
	p := root.FirstChild()
	require.NotNil(t, p)
	assert.Equal(t, "p", p.NodeName())
	assert.Equal(t, "#text", p.NextSibling().NodeName())
	assert.Equal(t, "#text", p.FirstChild().NodeName())
	assert.Equal(t, root, p.ParentNode())
	assert.Nil(t, root.ParentNode())
	assert.Equal(t, "block", root.ComputedStyles().GetPropertyValue("display").String())
}
