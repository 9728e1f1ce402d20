package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/css"
	"github.com/npillmayer/doctree/dom/style/cssom"
	"github.com/npillmayer/doctree/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/doctree/dom/style/media"
	"github.com/npillmayer/doctree/tree"
)

// Resolve runs the cascade for the whole tree: stylesheets added since the
// last resolution are merged, media conditions are evaluated against the
// current media features of the container, declarations are applied to
// every node and computed styles are derived. Finally table structures are
// repaired.
//
// Resolve returns ErrNoRoot for an empty document. A stylesheet exceeding
// the size limit results in ErrResourceExhausted. Malformed stylesheets do
// not fail the resolution; see Warnings.
func (doc *Document) Resolve() error {
	if doc.root == nil {
		return ErrNoRoot
	}
	if err := doc.mergeFragments(); err != nil {
		return err
	}
	doc.features = doc.container.MediaFeatures()
	doc.media.Update(doc.features)
	doc.restyle()
	return nil
}

func (doc *Document) restyle() {
	doc.cascade()
	if n := doc.fixTables(); n > 0 {
		tracer().Debugf("inserted %d anonymous table nodes", n)
		doc.computeStyles()
	}
	doc.resolved = true
}

// mergeFragments parses the style fragments collected since the last call
// and merges them into the rule set of the document.
func (doc *Document) mergeFragments() error {
	for _, f := range doc.collector.Fragments(doc.parsed) {
		doc.parsed++
		visited := make(map[string]bool)
		if err := doc.mergeFragment(f.Text, f.BaseURL, f.Media, 0, visited); err != nil {
			return err
		}
	}
	doc.author.Sort()
	return nil
}

func (doc *Document) mergeFragment(text, baseURL, condition string, depth int, visited map[string]bool) error {
	if limit := doc.opts.maxSheetSize; limit > 0 && len(text) > limit {
		return fmt.Errorf("%w: stylesheet of %d bytes exceeds %d", ErrResourceExhausted,
			len(text), limit)
	}
	sheet, ql := doc.parseSheet(text, baseURL, condition)
	if sheet == nil {
		return nil
	}
	if err := doc.imports(sheet, baseURL, condition, depth, visited); err != nil {
		return err
	}
	if err := doc.author.Merge(sheet, ql); err != nil {
		doc.warn(fmt.Errorf("stylesheet %q: %w", baseURL, err))
	}
	doc.registerMedia(doc.author)
	return nil
}

// parseSheet parses style text. Malformed rules are dropped with a warning.
// A non-empty media condition is parsed into a query list and registered
// with the document, unless no rules remain.
func (doc *Document) parseSheet(text, baseURL, condition string) (cssom.StyleSheet, *media.QueryList) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		doc.warn(fmt.Errorf("stylesheet %q: %w", baseURL, err))
	}
	if sheet.Empty() {
		return nil, nil
	}
	var ql *media.QueryList
	if strings.TrimSpace(condition) != "" {
		if ql, err = media.Parse(condition); err != nil {
			doc.warn(err)
		}
		doc.media.Register(ql)
	}
	return sheet, ql
}

// imports merges the stylesheets imported by sheet, if the container is able
// to load them.
func (doc *Document) imports(sheet cssom.StyleSheet, baseURL, condition string, depth int,
	visited map[string]bool) error {
	//
	imps := sheet.Imports()
	if len(imps) == 0 {
		return nil
	}
	importer, ok := doc.container.(Importer)
	if !ok {
		tracer().Debugf("container cannot import stylesheets, ignoring %d @import rules", len(imps))
		return nil
	}
	if depth >= doc.opts.maxImportDepth {
		return fmt.Errorf("%w: @import nesting exceeds %d", ErrResourceExhausted, doc.opts.maxImportDepth)
	}
	for _, imp := range imps {
		u := resolveURL(baseURL, imp.URL)
		if visited[u] {
			continue
		}
		visited[u] = true
		text, err := importer.ImportCSS(imp.URL, baseURL)
		if err != nil {
			doc.warn(fmt.Errorf("@import %q: %w", imp.URL, err))
			continue
		}
		if err := doc.mergeFragment(text, u, media.And(condition, imp.Media), depth+1, visited); err != nil {
			return err
		}
	}
	return nil
}

// compileSheet compiles a stylesheet outside of the collected fragments,
// i.e. the master and the user stylesheet. These are not subject to size
// limits.
func (doc *Document) compileSheet(text, name string) *cssom.RuleSet {
	rs := cssom.NewRuleSet()
	sheet, _ := doc.parseSheet(text, name, "")
	if sheet == nil {
		return rs
	}
	if err := rs.Merge(sheet, nil); err != nil {
		doc.warn(fmt.Errorf("%s: %w", name, err))
	}
	rs.Sort()
	doc.registerMedia(rs)
	return rs
}

func (doc *Document) registerMedia(rs *cssom.RuleSet) {
	for _, ql := range rs.MediaLists() {
		doc.media.Register(ql)
	}
}

// cascade applies declarations and computes styles for every node, top-down.
// Nodes with a table-related display are registered as table participants.
func (doc *Document) cascade() {
	env := doc.env()
	doc.tabular = doc.tabular[:0]
	tree.TopDown(&doc.root.Node, func(n, _ *tree.Node[*Element], _ int) error {
		e := n.Payload
		doc.applyRules(e)
		e.computed = css.Compute(e.decls, e.parentStyle(), env)
		if NodeIsTabular(n) {
			doc.tabular = append(doc.tabular, e)
		}
		return nil
	})
}

// computeStyles re-computes styles without applying rules.
func (doc *Document) computeStyles() {
	env := doc.env()
	tree.TopDown(&doc.root.Node, func(n, _ *tree.Node[*Element], _ int) error {
		e := n.Payload
		e.computed = css.Compute(e.decls, e.parentStyle(), env)
		return nil
	})
}

// applyRules applies declarations to an element in order of increasing
// precedence.
func (doc *Document) applyRules(e *Element) {
	e.decls.Clear()
	if e.anonymous {
		e.decls.Add("display", style.Property(e.anonDisplay.Keyword()), false, style.AnonymousOrigin)
		return
	}
	if e.kind != ElementNode {
		return
	}
	doc.master.ApplyTo(e, style.UserAgentOrigin, doc)
	for _, h := range e.hints {
		e.decls.Add(h.Key, h.Value, false, style.HintOrigin)
	}
	doc.author.ApplyTo(e, style.AuthorOrigin, doc)
	for _, d := range e.inline {
		e.decls.Add(d.Key, d.Value, d.Important, style.InlineOrigin)
	}
	if doc.user != nil {
		doc.user.ApplyTo(e, style.OverrideOrigin, doc)
	}
}

func (e *Element) parentStyle() *css.ComputedStyle {
	if p := e.ParentElement(); p != nil {
		return p.computed
	}
	return nil
}

func (doc *Document) env() css.Environment {
	return css.Environment{
		DefaultFontSize: doc.container.DefaultFontSize(),
		ViewportWidth:   css.Pixels(doc.features.Width),
		ViewportHeight:  css.Pixels(doc.features.Height),
		XHeight:         doc.container.XHeight,
	}
}
