package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/npillmayer/doctree/dom"
	"github.com/npillmayer/doctree/dom/domdbg"
	"github.com/npillmayer/doctree/markup"
)

func dump(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := envFromContext(ctx)
	log := e.log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	if w := cmd.Int("width"); w > 0 {
		e.cfg.Media.Width = int(w)
	}
	if m := cmd.String("media"); m != "" {
		e.cfg.Media.Type = m
	}

	page, err := markup.ParseFile(src)
	if err != nil {
		return err
	}
	opts, err := e.cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, dom.WithBaseURL(page.BaseURL))
	c := newFileContainer(e.cfg, page.Lang)
	doc, err := dom.CreateFromMarkup(page.Root, c, opts...)
	if err != nil {
		return fmt.Errorf("unable to create document from %s: %w", src, err)
	}
	for _, w := range doc.Warnings() {
		log.Warn("Styling degraded", zap.Error(w))
	}
	log.Debug("Document created",
		zap.String("source", src),
		zap.String("title", page.Title),
		zap.Int("elements", len(doc.Elements())),
		zap.Int("stylesheets", len(doc.Stylesheets())),
		zap.Int("tabular", len(doc.Tabular())))

	fmt.Print(domdbg.Dump(doc.Root(), cmd.StringSlice("property")...))

	if fname := cmd.String("dot"); fname != "" {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create diagram file: %w", err)
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		if err := domdbg.ToGraphViz(doc.Root(), f, nil); err != nil {
			return fmt.Errorf("unable to write diagram: %w", err)
		}
		log.Info("Diagram written", zap.String("file", fname))
	}
	return nil
}
