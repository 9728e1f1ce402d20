package dom

import (
	"github.com/npillmayer/doctree/dom/style/media"
	"github.com/npillmayer/tyse/core/dimen"
)

// Container is the rendering host of a document.
type Container interface {
	MediaFeatures() media.Features      // current media features
	Language() (lang, culture string)   // e.g. "en" and "en-US" (or "US")
	DefaultFontSize() dimen.DU          // size of font-size `medium`
	XHeight(fontSize dimen.DU) dimen.DU // x-height of the default font
}

// Importer may be implemented by a Container to load linked and imported
// stylesheets.
type Importer interface {
	ImportCSS(url, baseURL string) (text string, err error)
}

// StaticContainer is a Container with fixed properties.
type StaticContainer struct {
	Features media.Features
	Lang     string
	Culture  string
	FontSize dimen.DU // default font size; 0 means 12pt
}

// NewStaticContainer creates a container for a screen of the given size
// in CSS pixels, with language "en".
func NewStaticContainer(width, height int) *StaticContainer {
	return &StaticContainer{
		Features: media.Screen(width, height),
		Lang:     "en",
		FontSize: 12 * dimen.BP,
	}
}

// MediaFeatures is part of interface Container.
func (c *StaticContainer) MediaFeatures() media.Features {
	return c.Features
}

// Language is part of interface Container.
func (c *StaticContainer) Language() (string, string) {
	return c.Lang, c.Culture
}

// DefaultFontSize is part of interface Container.
func (c *StaticContainer) DefaultFontSize() dimen.DU {
	if c.FontSize <= 0 {
		return 12 * dimen.BP
	}
	return c.FontSize
}

// XHeight is part of interface Container. It assumes an x-height of half
// the font size.
func (c *StaticContainer) XHeight(fontSize dimen.DU) dimen.DU {
	return fontSize / 2
}

var _ Container = &StaticContainer{}
