package style_test

import (
	"image/color"
	"testing"

	"github.com/npillmayer/doctree/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCompoundPadding(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("padding", "1px 2px")
	require.NoError(t, err)
	expected := []style.KeyValue{
		{Key: "padding-top", Value: "1px"},
		{Key: "padding-right", Value: "2px"},
		{Key: "padding-bottom", Value: "1px"},
		{Key: "padding-left", Value: "2px"},
	}
	assert.Equal(t, expected, kvs)
}

func TestSplitCompoundMarginThree(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("margin", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, style.Property("2px"), kvs[3].Value)
	assert.Equal(t, "margin-left", kvs[3].Key)
}

func TestSplitBorder(t *testing.T) {
	kvs, err := style.SplitCompoundProperty("border-top", "solid 2px red")
	require.NoError(t, err)
	require.Len(t, kvs, 3)
	assert.Equal(t, style.KeyValue{Key: "border-top-width", Value: "2px"}, kvs[0])
	assert.Equal(t, style.KeyValue{Key: "border-top-style", Value: "solid"}, kvs[1])
	assert.Equal(t, style.KeyValue{Key: "border-top-color", Value: "red"}, kvs[2])
	_, err = style.SplitCompoundProperty("border", "solid 2px wobbly")
	assert.Error(t, err)
}

func TestDeclarationsImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.style")
	defer teardown()
	//
	d := style.NewDeclarations(nil)
	d.Add("color", "red", true, style.AuthorOrigin)
	d.Add("color", "blue", false, style.OverrideOrigin)
	decl, ok := d.Get("color")
	require.True(t, ok)
	if decl.Value != "red" {
		t.Errorf("expected important color red to survive, is %s", decl.Value)
	}
	d.Add("color", "green", true, style.OverrideOrigin)
	decl, _ = d.Get("color")
	assert.Equal(t, style.Property("green"), decl.Value)
	assert.Equal(t, style.OverrideOrigin, decl.Origin)
}

func TestDeclarationsShorthand(t *testing.T) {
	d := style.NewDeclarations(nil)
	d.Add("margin", "0 auto", false, style.AuthorOrigin)
	d.Add("padding", "1px 2px 3px 4px 5px", false, style.AuthorOrigin) // dropped
	assert.Equal(t, 4, d.Len())
	decl, ok := d.Get("margin-right")
	require.True(t, ok)
	assert.Equal(t, style.Property("auto"), decl.Value)
	_, ok = d.Get("padding-top")
	assert.False(t, ok)
}

func TestDeclarationsDropInvalid(t *testing.T) {
	onlyRed := func(key string, v style.Property) bool { return v == "red" }
	d := style.NewDeclarations(onlyRed)
	d.Add("color", "red", false, style.UserAgentOrigin)
	d.Add("color", "wobbly", false, style.AuthorOrigin)
	decl, ok := d.Get("color")
	require.True(t, ok)
	assert.Equal(t, style.Property("red"), decl.Value)
	assert.Equal(t, style.UserAgentOrigin, decl.Origin)
}

func TestParseColor(t *testing.T) {
	c, ok := style.ParseColor("#f00")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)
	c, ok = style.ParseColor("rgb(0, 128, 255)")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0, 128, 255, 0xff}, c)
	_, ok = style.ParseColor("Navy")
	assert.True(t, ok)
	_, ok = style.ParseColor("nocolor")
	assert.False(t, ok)
	assert.Equal(t, "#0000ff", style.ColorString(style.Property("blue").Color()))
}

func TestPropertyMap(t *testing.T) {
	pmap := style.NewPropertyMap()
	pmap.Add("margin-top", "1PX")
	pmap.Add("font-family", "Helvetica")
	p, ok := pmap.Property("margin-top")
	require.True(t, ok)
	assert.Equal(t, style.Property("1px"), p)
	p, _ = pmap.Property("font-family")
	assert.Equal(t, style.Property("Helvetica"), p)
	assert.Equal(t, []string{style.PGFont, style.PGMargins}, pmap.GroupNames())
}

func TestPresentationalHints(t *testing.T) {
	attrs := map[string]string{"width": "100", "bgcolor": "#eee", "align": "center"}
	lookup := func(k string) (string, bool) {
		v, ok := attrs[k]
		return v, ok
	}
	hints := style.PresentationalHints("td", lookup)
	assert.Contains(t, hints, style.KeyValue{Key: "width", Value: "100px"})
	assert.Contains(t, hints, style.KeyValue{Key: "background-color", Value: "#eee"})
	assert.Contains(t, hints, style.KeyValue{Key: "text-align", Value: "center"})
}

func TestMasterStylesheetEmbedded(t *testing.T) {
	assert.Contains(t, style.MasterStylesheet(), "table-row-group")
}
