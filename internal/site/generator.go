package site

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/pizzeria/internal/progress"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

// Generator writes the menu as a static site: index.html, style.css,
// script.js and any extra assets.
type Generator struct {
	Renderer        *render.Renderer
	Meta            Meta
	OutputDir       string
	IntroFile       string
	AssetsDir       string
	Assets          []string // doublestar patterns relative to AssetsDir
	NotificationTTL time.Duration
	Reporter        progress.Reporter
}

// Generate builds the site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	assets, err := g.collectAssets()
	if err != nil {
		return 0, err
	}

	meta := g.Meta
	if g.IntroFile != "" {
		src, err := os.ReadFile(g.IntroFile)
		if err != nil {
			return 0, fmt.Errorf("reading intro: %w", err)
		}
		if meta.Intro, err = RenderIntro(src); err != nil {
			return 0, err
		}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	page, err := NewPage(g.Renderer, meta, PageOptions{NotificationTTL: g.NotificationTTL})
	if err != nil {
		return 0, err
	}
	var index bytes.Buffer
	if err := render.WritePage(&index, page); err != nil {
		return 0, err
	}

	files := []struct {
		name    string
		content []byte
	}{
		{"index.html", index.Bytes()},
		{"style.css", []byte(Stylesheet)},
		{"script.js", []byte(Script)},
	}

	total := len(files) + len(assets)
	reporter.Start(total)
	defer reporter.Finish()

	written := 0
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.content, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", f.name, err)
		}
		written++
		reporter.Update(written, f.name)
	}

	for _, rel := range assets {
		src := filepath.Join(g.AssetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return written, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		written++
		reporter.Update(written, rel)
	}

	return written, nil
}

// collectAssets expands the asset patterns into a sorted, de-duplicated list
// of slash-separated paths relative to AssetsDir.
func (g *Generator) collectAssets() ([]string, error) {
	if g.AssetsDir == "" || len(g.Assets) == 0 {
		return nil, nil
	}
	fsys := os.DirFS(g.AssetsDir)
	seen := make(map[string]bool)
	var out []string
	for _, pattern := range g.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid asset pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching assets %q: %w", pattern, err)
		}
		for _, m := range matches {
			if reserved[m] || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

// reserved are generated files an asset may not overwrite.
var reserved = map[string]bool{"index.html": true, "style.css": true, "script.js": true}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
