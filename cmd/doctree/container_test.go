package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/doctree/dom"
	"github.com/npillmayer/doctree/internal/config"
	"github.com/npillmayer/doctree/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalPath(t *testing.T) {
	p, err := localPath("css/a.css", "/home/doc/index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/home/doc/css/a.css"), p)
	p, err = localPath("file:///etc/b.css", "/home/doc/index.html")
	require.NoError(t, err)
	assert.Equal(t, "/etc/b.css", p)
	_, err = localPath("https://example.com/c.css", "/home/doc/index.html")
	assert.Error(t, err)
	_, err = localPath("c.css", "https://example.com/index.html")
	assert.Error(t, err)
}

func TestFileContainerLoadsLinkedSheets(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	write("index.html", `<html lang="fr"><head><link rel="stylesheet" href="main.css"></head>
<body><p>Bonjour</p></body></html>`)
	write("main.css", `@import "colors.css";`)
	write("colors.css", `p:lang(fr) { color: blue }`)

	cfg, err := config.LoadConfiguration("")
	require.NoError(t, err)
	page, err := markup.ParseFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	c := newFileContainer(cfg, page.Lang)
	doc, err := dom.CreateFromMarkup(page.Root, c, dom.WithBaseURL(page.BaseURL))
	require.NoError(t, err)
	assert.Empty(t, doc.Warnings())
	ps := doc.Root().Find(dom.NodeWithTag("p"))
	require.Len(t, ps, 1)
	assert.Equal(t, "blue", string(ps[0].Computed().GetPropertyValue("color")))
}
