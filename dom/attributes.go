package dom

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/doctree/tree"
)

// parseAttributes interprets the attributes of the elements of a subtree,
// in document order.
func (doc *Document) parseAttributes(root *Element) {
	tree.TopDown(&root.Node, func(n, _ *tree.Node[*Element], _ int) error {
		doc.parseElementAttributes(n.Payload)
		return nil
	})
}

func (doc *Document) parseElementAttributes(e *Element) {
	if e.kind != ElementNode || e.anonymous {
		return
	}
	e.hints = style.PresentationalHints(e.name, e.Attr)
	if s, ok := e.Attr("style"); ok && strings.TrimSpace(s) != "" {
		decls, err := douceuradapter.ParseInline(s)
		if err != nil {
			doc.warn(fmt.Errorf("style attribute of <%s>: %w", e.name, err))
		} else {
			e.inline = decls
		}
	}
	switch e.name {
	case "style":
		if typ, ok := e.Attr("type"); ok && !isCSSType(typ) {
			return
		}
		text, _ := e.TextContent()
		m, _ := e.Attr("media")
		doc.AddStylesheet(text, doc.opts.baseURL, m)
	case "link":
		doc.linkStylesheet(e)
	}
}

func (doc *Document) linkStylesheet(e *Element) {
	rel, _ := e.Attr("rel")
	href, ok := e.Attr("href")
	if !ok || !hasToken(rel, "stylesheet") || hasToken(rel, "alternate") {
		return
	}
	importer, ok := doc.container.(Importer)
	if !ok {
		tracer().Debugf("container cannot load linked stylesheet %q", href)
		return
	}
	text, err := importer.ImportCSS(href, doc.opts.baseURL)
	if err != nil {
		doc.warn(fmt.Errorf("linked stylesheet %q: %w", href, err))
		return
	}
	m, _ := e.Attr("media")
	doc.AddStylesheet(text, resolveURL(doc.opts.baseURL, href), m)
}

func isCSSType(typ string) bool {
	typ = strings.ToLower(strings.TrimSpace(typ))
	return typ == "" || typ == "text/css"
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// resolveURL resolves a reference relative to a base URL. If either cannot
// be parsed, ref is returned unchanged.
func resolveURL(base, ref string) string {
	if base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
