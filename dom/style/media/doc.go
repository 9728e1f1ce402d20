/*
Package media evaluates CSS media queries against the media features of a
rendering environment.

A QueryList is parsed once from a media condition string, as found in
`<style media=…>`, `@media` and `@import` rules, and is re-evaluated whenever
the environment changes. Level 3 syntax (`screen and (min-width: 800px)`) as
well as level 4 range syntax (`(width >= 800px)`, `(400px < width < 800px)`)
is understood. Lengths are in CSS pixels.

Lists keeps track of the query lists registered for a document and reports
which of them changed their result after the media features changed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package media

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'doctree.media'.
func tracer() tracing.Trace {
	return tracing.Select("doctree.media")
}
