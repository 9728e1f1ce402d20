/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS parser of github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/cssom"
	"github.com/npillmayer/doctree/dom/style/media"
	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/multierr"
)

// tracer traces with key 'doctree.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("doctree.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses style text into a stylesheet.
//
// Malformed text does not invalidate the whole stylesheet. Parse then reads
// every top-level rule on its own and drops the rules which fail, reporting
// them in the error. The returned stylesheet holds all the rules which could
// be read and is never nil.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err == nil {
		return Wrap(sheet), nil
	}
	tracer().Debugf("recovering from malformed stylesheet: %v", err)
	styles := &CSSStyles{}
	var errs error
	for _, chunk := range splitRules(text) {
		part, err := parser.Parse(chunk)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("dropping %q: %w", abbrev(chunk), err))
			continue
		}
		styles.AppendRules(Wrap(part))
	}
	return styles, errs
}

// splitRules splits style text into top-level rules. A rule ends with a ';'
// or a closing brace at nesting level 0. Blocks left open at the end of the
// text are closed.
func splitRules(text string) []string {
	var chunks []string
	var b strings.Builder
	depth := 0
	emit := func(suffix string) {
		if chunk := strings.TrimSpace(b.String()); chunk != "" {
			chunks = append(chunks, chunk+suffix)
		}
		b.Reset()
	}
	s := scanner.New(text)
	for tok := s.Next(); tok.Type != scanner.TokenEOF; tok = s.Next() {
		if tok.Type == scanner.TokenError {
			tracer().Debugf("stylesheet truncated at %s", tok)
			break
		}
		b.WriteString(tok.Value)
		if tok.Type != scanner.TokenChar {
			continue
		}
		switch tok.Value {
		case "{":
			depth++
		case "}":
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				emit("")
			}
		case ";":
			if depth == 0 {
				emit("")
			}
		}
	}
	emit(strings.Repeat("}", depth))
	return chunks
}

func abbrev(s string) string {
	if len(s) > 40 {
		return s[:40] + "…"
	}
	return s
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet, including rules
// nested in @media and @supports. Other at-rules are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	return flatten(sheet.css.Rules, "", rules)
}

func flatten(list []*css.Rule, outer string, rules []cssom.Rule) []cssom.Rule {
	for _, r := range list {
		if r == nil {
			continue
		}
		switch r.Kind {
		case css.QualifiedRule:
			rules = append(rules, Rule{rule: r, media: outer})
		case css.AtRule:
			switch strings.ToLower(r.Name) {
			case "@media":
				rules = flatten(r.Rules, media.And(outer, r.Prelude), rules)
			case "@supports":
				rules = flatten(r.Rules, outer, rules)
			default:
				if r.Name != "@import" {
					tracer().Debugf("skipping at-rule %s", r.Name)
				}
			}
		}
	}
	return rules
}

// Imports returns the top-level @import rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Imports() []cssom.Import {
	var imports []cssom.Import
	for _, r := range sheet.css.Rules {
		if r == nil || r.Kind != css.AtRule || strings.ToLower(r.Name) != "@import" {
			continue
		}
		if imp, ok := ParseImport(r.Prelude); ok {
			imports = append(imports, imp)
		}
	}
	return imports
}

// ParseImport splits the prelude of an @import rule into URL and media
// condition, e.g. `url("print.css") print`.
func ParseImport(prelude string) (cssom.Import, bool) {
	p := strings.TrimSpace(prelude)
	var url string
	switch {
	case strings.HasPrefix(strings.ToLower(p), "url("):
		end := strings.IndexByte(p, ')')
		if end < 0 {
			return cssom.Import{}, false
		}
		url, p = p[4:end], p[end+1:]
	case strings.HasPrefix(p, `"`) || strings.HasPrefix(p, `'`):
		end := strings.IndexByte(p[1:], p[0])
		if end < 0 {
			return cssom.Import{}, false
		}
		url, p = p[:end+2], p[end+2:]
	default:
		return cssom.Import{}, false
	}
	url = strings.Trim(strings.TrimSpace(url), `"'`)
	if url == "" {
		return cssom.Import{}, false
	}
	return cssom.Import{URL: url, Media: strings.TrimSpace(p)}, true
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule  *css.Rule
	media string
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if len(r.rule.Selectors) > 0 {
		return strings.Join(r.rule.Selectors, ", ")
	}
	return r.rule.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "15px".
// If a key is declared more than once, the last declaration counts.
func (r Rule) Value(key string) style.Property {
	if d := r.last(key); d != nil {
		return style.Property(d.Value)
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	if d := r.last(key); d != nil {
		return d.Important
	}
	return false
}

func (r Rule) last(key string) *css.Declaration {
	decl := r.rule.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return decl[i]
		}
	}
	return nil
}

// Media returns the media condition of an enclosing @media rule, if any.
func (r Rule) Media() string {
	return r.media
}

var _ cssom.Rule = Rule{}

// ParseInline parses the content of a style attribute into declarations.
// The last declaration need not be terminated by a semicolon.
func ParseInline(styleAttr string) ([]cssom.Declaration, error) {
	text := strings.TrimSpace(styleAttr)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	r := make([]cssom.Declaration, 0, len(decls))
	for _, d := range decls {
		if d == nil {
			continue
		}
		r = append(r, cssom.Declaration{
			Key:       strings.ToLower(strings.TrimSpace(d.Property)),
			Value:     style.Property(strings.TrimSpace(d.Value)),
			Important: d.Important,
		})
	}
	return r, nil
}
