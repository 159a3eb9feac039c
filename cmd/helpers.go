package cmd

import (
	"context"
	"fmt"
	"html/template"
	"os"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/config"
	"github.com/ziadkadry99/pizzeria/internal/db"
	"github.com/ziadkadry99/pizzeria/internal/render"
	"github.com/ziadkadry99/pizzeria/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `pizzeria init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog loads the menu from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	var provider catalog.Provider
	switch cfg.Catalog.Source {
	case config.SourceFile:
		provider = catalog.FileProvider{Path: cfg.Catalog.File}
	case config.SourceSQLite:
		database, err := db.Open(cfg.Catalog.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		provider = catalog.NewSQLiteProvider(database)
	default:
		provider = catalog.StaticProvider{}
	}

	c, err := provider.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog (%s): %w", cfg.Catalog.Source, err)
	}
	if c.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Warning: the %s catalog has no pizzas\n", cfg.Catalog.Source)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d pizzas from %s catalog\n", c.Len(), cfg.Catalog.Source)
	}
	return c, nil
}

// newRenderer loads the catalog and applies the configured currency.
func newRenderer(ctx context.Context, cfg *config.Config) (*render.Renderer, error) {
	c, err := loadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	r := render.New(c)
	r.Currency = cfg.Currency
	return r, nil
}

// siteMeta builds the page header text, rendering the intro file if set.
func siteMeta(cfg *config.Config) (site.Meta, error) {
	meta := site.Meta{Title: cfg.RestaurantName, Tagline: cfg.Tagline}
	if cfg.Site.IntroFile == "" {
		return meta, nil
	}
	src, err := os.ReadFile(cfg.Site.IntroFile)
	if err != nil {
		return meta, fmt.Errorf("reading intro %s: %w", cfg.Site.IntroFile, err)
	}
	var intro template.HTML
	if intro, err = site.RenderIntro(src); err != nil {
		return meta, err
	}
	meta.Intro = intro
	return meta, nil
}
