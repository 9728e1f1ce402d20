/*
Package cssom provides the object model for CSS styling of a document tree.

Overview

We strive to separate content from presentation. Presentation is governed
with CSS (Cascading Style Sheets). CSSOM is the "CSS Object Model", similar
to the DOM for HTML.

CSS handling is de-coupled from the construction of the styled node tree by
interfaces StyleSheet and Rule. Concrete implementations may be found in
sub-packages (see package douceuradapter).

Style text enters a document in fragments: the content of `<style>` elements,
linked stylesheets and stylesheets added by clients. A Collector gathers
fragments in document order. Fragments are parsed lazily and merged into a
RuleSet, which compiles selectors with
https://godoc.org/github.com/andybalholm/cascadia, orders rules by
specificity and applies them to nodes. If two rules have equal specificity,
the one declared later wins.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'doctree.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("doctree.cssom")
}
