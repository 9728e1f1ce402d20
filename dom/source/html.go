package source

import (
	"strings"

	"golang.org/x/net/html"
)

// FromHTML wraps a node of a parsed HTML tree.
//
// Element nodes map to tags with child payloads. A text node maps to a
// nameless tag with a text payload. Document nodes map to their first element
// child. Comments, doctypes and other node types are skipped.
// FromHTML returns nil if h does not contain an element or text.
func FromHTML(h *html.Node) Tag {
	for h != nil && h.Type == html.DocumentNode {
		var e *html.Node
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				e = c
				break
			}
		}
		h = e
	}
	if h == nil || (h.Type != html.ElementNode && h.Type != html.TextNode) {
		return nil
	}
	return htmlTag{h}
}

type htmlTag struct {
	h *html.Node
}

func (t htmlTag) Name() string {
	if t.h.Type == html.TextNode {
		return ""
	}
	return strings.ToLower(t.h.Data)
}

func (t htmlTag) Attributes() []Attribute {
	if len(t.h.Attr) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(t.h.Attr))
	attrs := make([]Attribute, 0, len(t.h.Attr))
	for _, a := range t.h.Attr {
		key := strings.ToLower(a.Key)
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		if seen[key] { // first one wins, as with HTML parsing
			continue
		}
		seen[key] = true
		attrs = append(attrs, Attribute{Key: key, Value: a.Val})
	}
	return attrs
}

func (t htmlTag) Payload() Payload {
	if t.h.Type == html.TextNode {
		return Text(t.h.Data)
	}
	var kids []Tag
	for c := t.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || c.Type == html.TextNode {
			kids = append(kids, htmlTag{c})
		}
	}
	return Children(kids...)
}
