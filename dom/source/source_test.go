package source_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/doctree/dom/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPayloadMatch(t *testing.T) {
	p := source.T("p", nil, source.Txt("", nil, "Hello"))
	var kids []source.Tag
	var text string
	switch m := p.Payload().Match(); m {
	case m.Text(&text):
		t.Errorf("expected <p> to have children, has text %q", text)
	case m.Children(&kids):
		t.Logf("<p> has %d children", len(kids))
	default:
		t.Errorf("expected payload to match a variant, didn't")
	}
	require.Len(t, kids, 1)
	switch m := kids[0].Payload().Match(); m {
	case m.Children(nil):
		t.Errorf("expected text payload, have children")
	case m.Text(&text):
		assert.Equal(t, "Hello", text)
	}
}

func TestLiteralAttributesSorted(t *testing.T) {
	tag := source.T("td", map[string]string{"width": "10", "align": "left"})
	attrs := tag.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "align", attrs[0].Key)
	assert.Equal(t, "width", attrs[1].Key)
}

func TestFromHTML(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><!-- c --><p class="x">a <b>b</b></p></body></html>`))
	require.NoError(t, err)
	root := source.FromHTML(doc)
	require.NotNil(t, root)
	assert.Equal(t, "html", root.Name())
	var kids []source.Tag
	root.Payload().Match().Children(&kids)
	require.Len(t, kids, 2) // head, body
	var body []source.Tag
	kids[1].Payload().Match().Children(&body)
	require.Len(t, body, 1) // comment skipped
	p := body[0]
	assert.Equal(t, "p", p.Name())
	assert.Equal(t, []source.Attribute{{Key: "class", Value: "x"}}, p.Attributes())
	var inP []source.Tag
	p.Payload().Match().Children(&inP)
	require.Len(t, inP, 2)
	assert.Equal(t, "", inP[0].Name())
	assert.NotNil(t, inP[0].Payload().Match().Text(nil))
}
