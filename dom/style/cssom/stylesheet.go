package cssom

import "github.com/npillmayer/doctree/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
	Imports() []Import      // @import rules, in order of appearance
}

// Rule is the type stylesheets consists of. Rules nested in at-rules are
// flattened; Media returns the condition of an enclosing @media rule.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	Media() string               // media condition of an enclosing @media, or ""
}

// Import is an @import rule of a stylesheet.
type Import struct {
	URL   string
	Media string
}
