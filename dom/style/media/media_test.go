package media

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSyntax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.media")
	defer teardown()
	//
	ql, err := Parse("(width >= 800px)")
	require.NoError(t, err)
	assert.False(t, ql.Evaluate(Screen(799, 600)))
	assert.True(t, ql.Evaluate(Screen(800, 600)))
	assert.True(t, ql.Evaluate(Screen(1000, 600)))
}

func TestBareRangeSyntax(t *testing.T) {
	ql, err := Parse("width >= 800")
	require.NoError(t, err)
	assert.False(t, ql.Evaluate(Screen(799, 600)))
	assert.True(t, ql.Evaluate(Screen(800, 600)))
}

func TestDoubleRange(t *testing.T) {
	ql, err := Parse("(400px < width <= 800px)")
	require.NoError(t, err)
	assert.False(t, ql.Evaluate(Screen(400, 600)))
	assert.True(t, ql.Evaluate(Screen(401, 600)))
	assert.True(t, ql.Evaluate(Screen(800, 600)))
	assert.False(t, ql.Evaluate(Screen(801, 600)))
}

func TestMinMax(t *testing.T) {
	ql, err := Parse("screen and (min-width: 50em) and (max-width: 1000px)")
	require.NoError(t, err)
	assert.False(t, ql.Evaluate(Screen(799, 600)))
	assert.True(t, ql.Evaluate(Screen(800, 600)))
	assert.False(t, ql.Evaluate(Screen(1001, 600)))
	paper := Features{Type: "print", Width: 900}
	assert.False(t, ql.Evaluate(paper))
}

func TestMediaTypes(t *testing.T) {
	screen := Screen(1024, 768)
	paper := Features{Type: "print", Width: 600, Height: 800}
	for _, c := range []struct {
		query         string
		screen, print bool
	}{
		{"", true, true},
		{"all", true, true},
		{"screen", true, false},
		{"only screen", true, false},
		{"not screen", false, true},
		{"print", false, true},
		{"SCREEN", true, false},
		{"print, screen", true, true},
		{"not print and (color)", true, true},
	} {
		ql, err := Parse(c.query)
		require.NoError(t, err, c.query)
		assert.Equal(t, c.screen, ql.Evaluate(screen), "screen: %q", c.query)
		assert.Equal(t, c.print, ql.Evaluate(paper), "print: %q", c.query)
	}
}

func TestOrientationAndRatio(t *testing.T) {
	ql := MustParse("(orientation: landscape)")
	assert.True(t, ql.Evaluate(Screen(1024, 768)))
	assert.False(t, ql.Evaluate(Screen(768, 1024)))
	ql = MustParse("(min-aspect-ratio: 16/9)")
	assert.True(t, ql.Evaluate(Screen(1920, 1080)))
	assert.False(t, ql.Evaluate(Screen(1024, 768)))
	ql = MustParse("(min-resolution: 2dppx)")
	assert.False(t, ql.Evaluate(Screen(1024, 768)))
}

func TestMalformedQueries(t *testing.T) {
	ql, err := Parse("screen and (wobble: 3)")
	assert.Error(t, err)
	assert.False(t, ql.Evaluate(Screen(1024, 768)))
	// a malformed query does not invalidate the rest of the list
	ql, err = Parse("(width >= ), print")
	assert.Error(t, err)
	assert.True(t, ql.Evaluate(Features{Type: "print"}))
	assert.False(t, ql.Evaluate(Screen(1024, 768)))
	_, err = Parse("screen (color)")
	assert.Error(t, err)
}

func TestApplyReportsChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.media")
	defer teardown()
	//
	var lists Lists
	wide := MustParse("(min-width: 800px)")
	narrow := MustParse("(max-width: 799px)")
	lists.Register(wide)
	lists.Register(narrow)
	lists.Register(wide)
	assert.Equal(t, 2, lists.Len())
	assert.True(t, lists.Update(Screen(1000, 600)))
	assert.True(t, wide.IsActive())
	assert.False(t, narrow.IsActive())
	assert.False(t, lists.Update(Screen(900, 600)))
	assert.True(t, lists.Update(Screen(500, 600)))
	assert.False(t, wide.IsActive())
	assert.True(t, narrow.IsActive())
	var none *QueryList
	assert.True(t, none.IsActive())
}

func TestAndConditions(t *testing.T) {
	assert.Equal(t, "screen and (color)", And("screen", "(color)"))
	assert.Equal(t, "print", And("", "print"))
	assert.Equal(t, "print", And("print", "all"))
	assert.Equal(t, "(color)", And("screen, print", "(color)"))
}
