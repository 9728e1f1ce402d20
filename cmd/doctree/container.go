package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/npillmayer/doctree/dom"
	"github.com/npillmayer/doctree/internal/config"
)

// fileContainer is a static container which loads linked and imported
// stylesheets from the local file system.
type fileContainer struct {
	*dom.StaticContainer
}

func newFileContainer(cfg *config.Config, pageLang string) *fileContainer {
	sc := dom.NewStaticContainer(cfg.Media.Width, cfg.Media.Height)
	sc.Features = cfg.Features()
	sc.Lang, sc.Culture = cfg.Locale.Language, cfg.Locale.Culture
	if pageLang != "" {
		sc.Lang, sc.Culture = pageLang, ""
	}
	sc.FontSize = cfg.FontSize()
	return &fileContainer{StaticContainer: sc}
}

// ImportCSS is part of interface dom.Importer.
func (c *fileContainer) ImportCSS(ref, baseURL string) (string, error) {
	path, err := localPath(ref, baseURL)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func localPath(ref, baseURL string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if r.Scheme != "" && r.Scheme != "file" {
		return "", fmt.Errorf("cannot load remote stylesheet %s", ref)
	}
	if r.Scheme == "file" || filepath.IsAbs(r.Path) {
		return r.Path, nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if base.Scheme != "" && base.Scheme != "file" {
		return "", fmt.Errorf("cannot load remote stylesheet %s relative to %s", ref, baseURL)
	}
	return filepath.Join(filepath.Dir(base.Path), filepath.FromSlash(r.Path)), nil
}

var _ dom.Importer = &fileContainer{}
