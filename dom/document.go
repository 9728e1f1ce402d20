package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/doctree/dom/source"
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/doctree/dom/style/cssom"
	"github.com/npillmayer/doctree/dom/style/media"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

// Document owns a tree of elements together with everything needed to
// style it: the collected style fragments, the compiled rule sets, the media
// query lists registered for re-evaluation, and the locale of the document.
// It also stores bookkeeping of user interaction.
type Document struct {
	root       *Element
	container  Container
	opts       options
	collector  cssom.Collector
	parsed     int            // number of fragments merged into author
	master     *cssom.RuleSet // user agent stylesheet
	author     *cssom.RuleSet // stylesheets of the document
	user       *cssom.RuleSet // override stylesheet, may be nil
	media      media.Lists
	features   media.Features
	lang       string
	culture    string
	htmlDoc    *html.Node // root of the HTML mirror tree
	all        []*Element // every node ever created
	tabular    []*Element // table participants
	hovered    *Element
	fixedBoxes []FixedBox
	warnings   error
	resolved   bool
}

func newDocument(c Container, opts []Option) *Document {
	doc := &Document{
		container: c,
		opts:      defaultOptions(),
		author:    cssom.NewRuleSet(),
		htmlDoc:   &html.Node{Type: html.DocumentNode},
	}
	for _, opt := range opts {
		opt(&doc.opts)
	}
	doc.features = c.MediaFeatures()
	doc.lang, doc.culture = normalizeLocale(c.Language())
	return doc
}

// CreateFromMarkup builds a document from a tag source and resolves its
// styles. The container supplies media features, locale and font metrics.
//
// If the tag source yields no node at all, the returned document has no
// root. Multiple top-level nodes are wrapped into an anonymous block.
// An error is returned only if a resource limit is exceeded; no document
// is returned in this case.
func CreateFromMarkup(tag source.Tag, c Container, opts ...Option) (*Document, error) {
	if c == nil {
		c = NewStaticContainer(1024, 768)
	}
	doc := newDocument(c, opts)
	master := style.MasterStylesheet()
	if doc.opts.hasMaster {
		master = doc.opts.master
	}
	doc.master = doc.compileSheet(master, "master stylesheet")
	if strings.TrimSpace(doc.opts.user) != "" {
		doc.user = doc.compileSheet(doc.opts.user, "user stylesheet")
	}
	nodes, err := doc.build(tag, 0)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 0:
		tracer().Infof("markup yielded no nodes")
		return doc, nil
	case 1:
		doc.root = nodes[0]
	default:
		doc.root = doc.newAnonymous(css.BlockMode | css.InnerBlockMode)
		for _, n := range nodes {
			appendChild(doc.root, n)
		}
	}
	if doc.root.htmlNode != nil {
		doc.htmlDoc.AppendChild(doc.root.htmlNode)
	}
	doc.parseAttributes(doc.root)
	if err := doc.Resolve(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Root returns the root element of the document, or nil.
func (doc *Document) Root() *Element {
	return doc.root
}

// IsResolved is true after styles have been resolved at least once.
func (doc *Document) IsResolved() bool {
	return doc.resolved
}

// Container returns the rendering host of the document.
func (doc *Document) Container() Container {
	return doc.container
}

// Elements returns all nodes created for the document, in order of creation.
func (doc *Document) Elements() []*Element {
	r := make([]*Element, len(doc.all))
	copy(r, doc.all)
	return r
}

// Tabular returns the table participants of the document, i.e. the nodes
// with a table-related display mode.
func (doc *Document) Tabular() []*Element {
	r := make([]*Element, len(doc.tabular))
	copy(r, doc.tabular)
	return r
}

// AddStylesheet adds style text to the document, together with the base URL
// of the text and a media condition (or ""). The stylesheet will not
// take effect before the next call to Resolve, which allows for adding
// many stylesheets at once.
func (doc *Document) AddStylesheet(text, baseURL, condition string) {
	doc.collector.Add(text, baseURL, condition)
}

// Stylesheets returns the style fragments collected so far.
func (doc *Document) Stylesheets() []cssom.Fragment {
	return doc.collector.Fragments(0)
}

// AppendChildren builds a tag source into an existing element, appending
// the new nodes as the last children of parent, and resolves the document.
func (doc *Document) AppendChildren(parent *Element, tag source.Tag) error {
	if parent == nil || parent.doc != doc {
		return fmt.Errorf("cannot append to element of another document")
	}
	if parent.kind != ElementNode {
		return fmt.Errorf("cannot append children to %s node", parent.kind)
	}
	nodes, err := doc.build(tag, parent.Depth()+1)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		appendChild(parent, n)
		doc.parseAttributes(n)
	}
	return doc.Resolve()
}

// MediaFeatures returns the media features the document has last been
// resolved with.
func (doc *Document) MediaFeatures() media.Features {
	return doc.features
}

// MediaChanged re-queries the media features of the container. If any of
// the media conditions of the document changes its result, styles are
// re-resolved. It returns true if the document has to be rendered again.
func (doc *Document) MediaChanged() (bool, error) {
	doc.features = doc.container.MediaFeatures()
	if !doc.media.Update(doc.features) {
		return false, nil
	}
	if doc.root == nil {
		return false, nil
	}
	tracer().Debugf("media features changed, re-resolving styles")
	doc.restyle()
	return true, nil
}

// Language returns the language and culture of the document, e.g. "en"
// and "en-US".
func (doc *Document) Language() (lang, culture string) {
	return doc.lang, doc.culture
}

// LangChanged re-queries the language of the container. If the language
// changed and any stylesheet uses `:lang()`, styles are re-resolved.
// It returns true if the document has to be rendered again.
func (doc *Document) LangChanged() (bool, error) {
	lang, culture := normalizeLocale(doc.container.Language())
	if lang == doc.lang && culture == doc.culture {
		return false, nil
	}
	doc.lang, doc.culture = lang, culture
	if doc.root == nil || !doc.usesLang() {
		return false, nil
	}
	tracer().Debugf("language changed to %s/%s, re-resolving styles", lang, culture)
	doc.restyle()
	return true, nil
}

func (doc *Document) usesLang() bool {
	return doc.master.UsesLang() || doc.author.UsesLang() || (doc.user != nil && doc.user.UsesLang())
}

// MatchLocale is true if lang equals the language or the culture of the
// document. The comparison is exact.
func (doc *Document) MatchLocale(lang string) bool {
	if lang == "" {
		return false
	}
	return lang == doc.lang || (doc.culture != "" && lang == doc.culture)
}

var _ cssom.LocaleMatcher = &Document{}

// normalizeLocale canonicalizes a language and culture. A culture without a
// language part, e.g. "US", is combined with the language; a language with
// a region, e.g. "en-US", yields the culture if none is given.
func normalizeLocale(lang, culture string) (string, string) {
	lang, culture = strings.TrimSpace(lang), strings.TrimSpace(culture)
	if lang == "" {
		return "", ""
	}
	if tag, err := language.Parse(lang); err == nil {
		base, _ := tag.Base()
		if region, conf := tag.Region(); culture == "" && conf == language.Exact {
			culture = region.String()
		}
		lang = base.String()
	}
	if culture != "" && !strings.ContainsAny(culture, "-_") {
		culture = lang + "-" + culture
	}
	if culture != "" {
		if tag, err := language.Parse(culture); err == nil {
			culture = tag.String()
		}
	}
	return lang, culture
}

// warn records a recoverable problem.
func (doc *Document) warn(err error) {
	tracer().Infof("%v", err)
	doc.warnings = multierr.Append(doc.warnings, err)
}

// Warnings returns the recoverable problems encountered so far, e.g.
// malformed stylesheets.
func (doc *Document) Warnings() []error {
	return multierr.Errors(doc.warnings)
}
