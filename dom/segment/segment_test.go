package segment_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/doctree/dom/segment"
	"github.com/stretchr/testify/assert"
)

func TestSplitKinds(t *testing.T) {
	segs := segment.Collect(nil, "Hello  world\n")
	expected := []segment.Segment{
		{Kind: segment.TextSegment, Text: "Hello"},
		{Kind: segment.SpaceSegment, Text: "  "},
		{Kind: segment.TextSegment, Text: "world"},
		{Kind: segment.SpaceSegment, Text: "\n"},
	}
	assert.Equal(t, expected, segs)
}

func TestSplitEmpty(t *testing.T) {
	assert.Empty(t, segment.Collect(nil, ""))
}

func TestSplitCoverage(t *testing.T) {
	inputs := []string{
		"a",
		" ",
		"  leading",
		"trailing\t",
		"multi byte spaces ünïcödé",
		"bad \xff\xfe bytes",
		"\n\n",
	}
	for _, in := range inputs {
		var b strings.Builder
		segment.Default.Split(in,
			func(s string) { b.WriteString(s) },
			func(s string) { b.WriteString(s) })
		if b.String() != in {
			t.Errorf("expected segments to reproduce %q, have %q", in, b.String())
		}
	}
}

func TestSplitAlternates(t *testing.T) {
	segs := segment.Collect(segment.Default, " a b ")
	for i := 1; i < len(segs); i++ {
		if segs[i].Kind == segs[i-1].Kind {
			t.Errorf("expected segments to alternate in kind, %d and %d don't", i-1, i)
		}
	}
}
