package markup_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/doctree/dom"
	"github.com/npillmayer/doctree/markup"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html lang="de-AT">
<head>
  <title> Test Page </title>
  <base href="/styles/">
  <style>p { color: red }</style>
</head>
<body><p>Hello</p></body>
</html>`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	p, err := markup.Parse(strings.NewReader(page), "http://example.com/docs/index.html")
	require.NoError(t, err)
	require.NotNil(t, p.Root)
	assert.Equal(t, "html", p.Root.Name())
	assert.Equal(t, "de-AT", p.Lang)
	assert.Equal(t, "Test Page", p.Title)
	assert.Equal(t, "http://example.com/styles/", p.BaseURL)
}

func TestParseWithoutBase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	p, err := markup.Parse(strings.NewReader("<p>x</p>"), "")
	require.NoError(t, err)
	assert.Equal(t, "", p.BaseURL)
	assert.Equal(t, "", p.Lang)
	require.NotNil(t, p.Root)
}

func TestPageToDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "doctree.dom")
	defer teardown()
	//
	p, err := markup.Parse(strings.NewReader(page), "")
	require.NoError(t, err)
	doc, err := dom.CreateFromMarkup(p.Root, nil, dom.WithBaseURL(p.BaseURL))
	require.NoError(t, err)
	ps := doc.Root().Find(dom.NodeWithTag("p"))
	require.Len(t, ps, 1)
	assert.Equal(t, "red", string(ps[0].Computed().GetPropertyValue("color")))
}
