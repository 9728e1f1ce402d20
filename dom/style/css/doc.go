/*
Package css interprets CSS property values for layout.

Declarations arrive as text. The cascade has selected one declaration per
property and node; this package derives computed values from them:
display modes (including the table display types), positioning schemes,
lengths resolved to absolute dimensions where the units allow it, font
sizes and colors. Values of inherited properties are looked up at the
ancestors; percentages stay symbolic, as they depend on layout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'doctree.style'.
func tracer() tracing.Trace {
	return tracing.Select("doctree.style")
}
