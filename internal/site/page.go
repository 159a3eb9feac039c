package site

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/session"
)

// Meta is the restaurant-level text shown around the menu.
type Meta struct {
	Title   string
	Tagline string
	Intro   template.HTML
}

// PageOptions controls how the full page is assembled.
type PageOptions struct {
	// Filter is the initially active filter; empty means "all".
	Filter          render.Filter
	Live            bool
	NotificationTTL time.Duration
	BasePath        string
}

// NewPage builds the full page model: nav and filter controls in their
// initial state, the whole menu, every beverage section and the fragments
// the client shim needs to work without a server.
func NewPage(r *render.Renderer, meta Meta, opts PageOptions) (render.Page, error) {
	ttl := opts.NotificationTTL
	if ttl <= 0 {
		ttl = session.DefaultNotificationTTL
	}

	filter := session.NewFilterController(r)
	if opts.Filter != "" {
		if _, err := filter.Select(opts.Filter); err != nil {
			return render.Page{}, err
		}
	}
	fragments, err := Fragments(r)
	if err != nil {
		return render.Page{}, err
	}

	return render.Page{
		Title:                 meta.Title,
		Tagline:               meta.Tagline,
		Intro:                 meta.Intro,
		Nav:                   session.NewNavGroup().Controls(),
		Filters:               filter.Controls(),
		Menu:                  filter.View(),
		Beverages:             r.Beverages(),
		Live:                  opts.Live,
		Fragments:             fragments,
		NotificationTTLMillis: ttl.Milliseconds(),
		BasePath:              opts.BasePath,
	}, nil
}

// Fragments pre-renders the menu grid for every filter and the modal for
// every pizza.
func Fragments(r *render.Renderer) ([]render.Fragment, error) {
	var out []render.Fragment

	for _, c := range session.NewFilterController(r).Controls() {
		html, err := render.MenuHTML(r.Menu(render.Filter(c.Token)))
		if err != nil {
			return nil, err
		}
		out = append(out, render.Fragment{Kind: "menu", Key: c.Token, HTML: template.HTML(html)})
	}

	for _, e := range r.Catalog().Pizzas() {
		html, err := render.ModalHTML(r.Modal(e))
		if err != nil {
			return nil, err
		}
		out = append(out, render.Fragment{Kind: "modal", Key: e.Name, HTML: template.HTML(html)})
	}
	return out, nil
}

// RenderIntro converts the markdown intro into HTML. Raw HTML in the source
// is not passed through.
func RenderIntro(src []byte) (template.HTML, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("rendering intro: %w", err)
	}
	return template.HTML(buf.String()), nil
}
