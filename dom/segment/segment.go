/*
Package segment splits text payloads into runs of text and runs of white
space, from which the leaf nodes of a document tree are created.

The rendering host may substitute its own segmenter (e.g., one that breaks
text at word boundaries according to a language). Segmenters report
segments through two sink callbacks, in left-to-right order.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segment

import (
	"unicode"
	"unicode/utf8"
)

// Segmenter splits text into segments. Concatenating all segments in the
// order reported reproduces text exactly.
type Segmenter interface {
	Split(text string, onText func(string), onSpace func(string))
}

// SegmenterFunc adapts a function to interface Segmenter.
type SegmenterFunc func(text string, onText func(string), onSpace func(string))

// Split is part of interface Segmenter.
func (f SegmenterFunc) Split(text string, onText func(string), onSpace func(string)) {
	f(text, onText, onSpace)
}

// Default splits text into maximal runs of white space and of
// non-white space characters. Invalid UTF-8 bytes count as text.
var Default Segmenter = SegmenterFunc(Split)

// Split is the default segmentation, see Default.
func Split(text string, onText func(string), onSpace func(string)) {
	start, inSpace := 0, false
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		space := r != utf8.RuneError && unicode.IsSpace(r)
		if i > start && space != inSpace {
			emit(text[start:i], inSpace, onText, onSpace)
			start = i
		}
		inSpace = space
		i += w
	}
	if start < len(text) {
		emit(text[start:], inSpace, onText, onSpace)
	}
}

func emit(s string, space bool, onText func(string), onSpace func(string)) {
	if space {
		if onSpace != nil {
			onSpace(s)
		}
	} else if onText != nil {
		onText(s)
	}
}

// Kind is the kind of a segment.
type Kind uint8

// Segment kinds
const (
	TextSegment Kind = iota
	SpaceSegment
)

// Segment is a run of text of a single kind.
type Segment struct {
	Kind Kind
	Text string
}

// Collect runs seg over text and returns the segments.
func Collect(seg Segmenter, text string) []Segment {
	if seg == nil {
		seg = Default
	}
	var segs []Segment
	seg.Split(text,
		func(s string) { segs = append(segs, Segment{TextSegment, s}) },
		func(s string) { segs = append(segs, Segment{SpaceSegment, s}) },
	)
	return segs
}
