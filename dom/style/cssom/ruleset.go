package cssom

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/doctree/dom/style/media"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Target is a node which rules may be applied to.
type Target interface {
	HTMLNode() *html.Node               // node to match selectors against
	Declarations() *style.Declarations // receives matching declarations
}

// LocaleMatcher decides if a language tag (of a `:lang()` selector) matches
// the language of a document.
type LocaleMatcher interface {
	MatchLocale(lang string) bool
}

// Declaration is a single property declaration of a rule.
type Declaration struct {
	Key       string
	Value     style.Property
	Important bool
}

type compiledRule struct {
	sel      cascadia.Sel
	spec     cascadia.Specificity
	order    int
	langs    []string
	fragment *media.QueryList // media of the style fragment, may be nil
	nested   *media.QueryList // media of an enclosing @media rule, may be nil
	decls    []Declaration
}

func (r *compiledRule) String() string {
	return fmt.Sprintf("%s %v #%d", r.sel.String(), r.spec, r.order)
}

// RuleSet holds the compiled rules of one or more stylesheets.
// Rules are applied in ascending order of specificity; rules with equal
// specificity are applied in order of declaration. Later applications
// overwrite earlier ones.
type RuleSet struct {
	rules    []*compiledRule
	sorted   bool
	order    int
	nested   map[string]*media.QueryList
	lists    []*media.QueryList
	usesLang bool
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{nested: make(map[string]*media.QueryList)}
}

// Len returns the number of compiled rules, one per selector.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// UsesLang is true if any rule contains a `:lang()` pseudo-class.
func (rs *RuleSet) UsesLang() bool {
	return rs.usesLang
}

// MediaLists returns the media query lists of @media rules merged so far.
func (rs *RuleSet) MediaLists() []*media.QueryList {
	return rs.lists
}

// Merge compiles the rules of a stylesheet and adds them to the rule set.
// fragmentMedia, if non-nil, is the media condition of the style fragment
// the stylesheet originates from. Rules which fail to compile are skipped
// and reported in the returned error; the other rules of the sheet are
// merged nevertheless.
func (rs *RuleSet) Merge(sheet StyleSheet, fragmentMedia *media.QueryList) error {
	if sheet == nil || sheet.Empty() {
		return nil
	}
	var errs error
	for _, rule := range sheet.Rules() {
		var nested *media.QueryList
		if m := strings.TrimSpace(rule.Media()); m != "" {
			var err error
			if nested, err = rs.nestedList(m); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
		decls := declarationsOf(rule)
		if len(decls) == 0 {
			continue
		}
		for _, s := range splitSelectors(rule.Selector()) {
			cr, err := compile(s)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if cr == nil { // pseudo-element
				continue
			}
			cr.order = rs.order
			rs.order++
			cr.fragment, cr.nested, cr.decls = fragmentMedia, nested, decls
			if len(cr.langs) > 0 {
				rs.usesLang = true
			}
			rs.rules = append(rs.rules, cr)
			rs.sorted = false
		}
	}
	return errs
}

func (rs *RuleSet) nestedList(m string) (*media.QueryList, error) {
	if rs.nested == nil {
		rs.nested = make(map[string]*media.QueryList)
	}
	if ql, ok := rs.nested[m]; ok {
		return ql, nil
	}
	ql, err := media.Parse(m)
	rs.nested[m] = ql
	rs.lists = append(rs.lists, ql)
	return ql, err
}

func declarationsOf(rule Rule) []Declaration {
	keys := rule.Properties()
	decls := make([]Declaration, 0, len(keys))
	for _, k := range keys {
		v := rule.Value(k)
		if strings.TrimSpace(k) == "" || v.IsEmpty() {
			continue
		}
		decls = append(decls, Declaration{Key: k, Value: v, Important: rule.IsImportant(k)})
	}
	return decls
}

// Sort orders the rules by ascending specificity, keeping the order of
// declaration for rules of equal specificity.
func (rs *RuleSet) Sort() {
	if rs.sorted {
		return
	}
	sort.SliceStable(rs.rules, func(i, j int) bool {
		a, b := rs.rules[i], rs.rules[j]
		if a.spec == b.spec {
			return a.order < b.order
		}
		return a.spec.Less(b.spec)
	})
	rs.sorted = true
}

// ApplyTo adds the declarations of every matching rule to a target node.
// Rules within inactive media conditions are skipped, as are rules with a
// `:lang()` pseudo-class not matched by locale. A nil locale matches no
// language.
func (rs *RuleSet) ApplyTo(target Target, origin style.Origin, locale LocaleMatcher) int {
	h := target.HTMLNode()
	if h == nil || len(rs.rules) == 0 {
		return 0
	}
	rs.Sort()
	cnt := 0
	decls := target.Declarations()
	for _, r := range rs.rules {
		if !r.fragment.IsActive() || !r.nested.IsActive() {
			continue
		}
		if !langsMatch(r.langs, locale) || !r.sel.Match(h) {
			continue
		}
		for _, d := range r.decls {
			decls.Add(d.Key, d.Value, d.Important, origin)
		}
		cnt++
	}
	return cnt
}

func langsMatch(langs []string, locale LocaleMatcher) bool {
	for _, l := range langs {
		if locale == nil || !locale.MatchLocale(l) {
			return false
		}
	}
	return true
}

// --- Selectors -------------------------------------------------------------

var langPseudo = regexp.MustCompile(`(?i):lang\(\s*['"]?([^)'"]*?)['"]?\s*\)`)

// compile parses a single selector. It returns nil for selectors of
// pseudo-elements, which never match a node of the tree.
// `:lang()` pseudo-classes are removed from the selector and recorded
// separately, as they are matched against the document language.
func compile(selector string) (*compiledRule, error) {
	s, langs := extractLangs(selector)
	sel, err := cascadia.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	if sel.PseudoElement() != "" {
		return nil, nil
	}
	spec := sel.Specificity()
	spec[1] += len(langs)
	return &compiledRule{sel: sel, spec: spec, langs: langs}, nil
}

func extractLangs(selector string) (string, []string) {
	locs := langPseudo.FindAllStringSubmatchIndex(selector, -1)
	if len(locs) == 0 {
		return selector, nil
	}
	var b strings.Builder
	var langs []string
	last := 0
	for _, loc := range locs {
		b.WriteString(selector[last:loc[0]])
		langs = append(langs, strings.TrimSpace(selector[loc[2]:loc[3]]))
		if startsCompound(selector, loc[0]) && !continuesCompound(selector, loc[1]) {
			b.WriteByte('*')
		}
		last = loc[1]
	}
	b.WriteString(selector[last:])
	return b.String(), langs
}

// startsCompound is true if position i is at the start of a compound selector.
func startsCompound(s string, i int) bool {
	s = strings.TrimRight(s[:i], " \t\n")
	return s == "" || strings.ContainsAny(s[len(s)-1:], ">+~") || i > len(s)
}

func continuesCompound(s string, i int) bool {
	return i < len(s) && !strings.ContainsAny(s[i:i+1], " \t\n>+~")
}

// splitSelectors splits a selector group at top-level commas.
func splitSelectors(group string) []string {
	var sels []string
	depth, start := 0, 0
	for i, r := range group {
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				sels = appendSelector(sels, group[start:i])
				start = i + 1
			}
		}
	}
	return appendSelector(sels, group[start:])
}

func appendSelector(sels []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		sels = append(sels, s)
	}
	return sels
}
