/*
Package markup is an HTML front end for document creation. It parses HTML
text and hands out a tag source for the document tree builder, together
with document level information found in the markup.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/doctree/dom/source"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'doctree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("doctree.dom")
}

// Page is a parsed HTML document.
type Page struct {
	Root    source.Tag // the <html> element, or the first element of a fragment
	BaseURL string     // from <base href>, resolved against the location
	Lang    string     // value of the lang attribute of the root element
	Title   string
}

// Parse reads HTML from r. location is the URL or path the HTML has been
// loaded from and may be empty.
func Parse(r io.Reader, location string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	page := &Page{BaseURL: location}
	root := doc.Find("html").First()
	if root.Length() == 0 {
		root = doc.Selection
	}
	page.Root = source.FromHTML(root.Get(0))
	if page.Root == nil {
		tracer().Infof("HTML input contains no elements")
	}
	page.Lang, _ = root.Attr("lang")
	page.Title = strings.TrimSpace(doc.Find("head > title").First().Text())
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		page.BaseURL = resolve(location, strings.TrimSpace(href))
	}
	tracer().Debugf("parsed HTML page, base URL = %q, lang = %q", page.BaseURL, page.Lang)
	return page, nil
}

// ParseFile reads and parses an HTML file. The base URL of the page
// defaults to the file's absolute path.
func ParseFile(filename string) (*Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	defer f.Close()
	location := filename
	if abs, err := filepath.Abs(filename); err == nil {
		location = abs
	}
	return Parse(f, location)
}

func resolve(location, href string) string {
	if location == "" {
		return href
	}
	base, err := url.Parse(location)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
