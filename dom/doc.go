/*
Package dom builds styled document trees.

Overview

A Document is created from a tag source (see package source). Creation runs
a pipeline of passes in strict sequence:

1. Build: the tag source is converted into a tree of Elements. Text payloads
are split into text and white space runs by a segmenter.

2. Attributes: presentational hints are derived from attributes, `<style>`
and `<link rel=stylesheet>` elements contribute style fragments, inline
style attributes are parsed.

3. Cascade: for every node, declarations are applied from the master
stylesheet, presentational hints, the document's stylesheets (gated by
their media conditions), inline styles and an optional user stylesheet, in
that order of increasing precedence. Afterwards computed styles are derived
top-down.

4. Table fix-up: anonymous nodes are inserted wherever the table structure
of the tree violates the CSS table model.

Tree Implementation

Styling and layout of HTML/CSS involves a lot of operations on different trees.
We implement the various trees on top of a general purpose tree type
(package tree).

In a fully object oriented programming language we would subclass this
tree type for every type of tree in use (styled tree, layout tree,
render tree), but in Go we resort to composition, thus including a
generic tree node in every node (sub-)type. The downside of this approach
is that we will have to provide an adapter for every node sub-type
to return the sub-type from the generic type (see ElementOf).

A Document is not safe for concurrent mutation. Read-only access to a
finished tree may happen concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'doctree.dom'
func tracer() tracing.Trace {
	return tracing.Select("doctree.dom")
}
