package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

func TestFullSiteGeneration(t *testing.T) {
	tmp := t.TempDir()
	assetsDir := filepath.Join(tmp, "assets")
	outDir := filepath.Join(tmp, "public")

	writeTestFile(t, filepath.Join(assetsDir, "img", "logo.png"), "png")
	writeTestFile(t, filepath.Join(assetsDir, "img", "deep", "forno.jpg"), "jpg")
	writeTestFile(t, filepath.Join(assetsDir, "notes.txt"), "skip me")
	writeTestFile(t, filepath.Join(assetsDir, "index.html"), "must not overwrite")
	introPath := filepath.Join(tmp, "intro.md")
	writeTestFile(t, introPath, "## Benvenuti\n\nForno a **legna** dal 1970.\n")

	gen := &Generator{
		Renderer:        render.New(catalog.Default()),
		Meta:            Meta{Title: "Pizzeria Da Mario", Tagline: "La vera pizza napoletana"},
		OutputDir:       outDir,
		IntroFile:       introPath,
		AssetsDir:       assetsDir,
		Assets:          []string{"img/**/*", "*.html"},
		NotificationTTL: 5 * time.Second,
	}

	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if n != 5 {
		t.Errorf("Generate() = %d files, want 5", n)
	}

	for _, rel := range []string{"index.html", "style.css", "script.js", "img/logo.png", "img/deep/forno.jpg"} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "notes.txt")); !os.IsNotExist(err) {
		t.Error("notes.txt should not be copied")
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)

	checks := []string{
		"<title>Pizzeria Da Mario</title>",
		"La vera pizza napoletana",
		`<h2 id="benvenuti">Benvenuti</h2>`,
		"<strong>legna</strong>",
		`data-live="false"`,
		`data-ttl="5000"`,
		`data-select="Margherita"`,
		`<template data-kind="menu" data-key="special">`,
		`<template data-kind="modal" data-key="Diavola">`,
		`id="vini-list"`,
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	if strings.Contains(html, "must not overwrite") {
		t.Error("asset overwrote generated index.html")
	}
}

func TestGenerateNoIntro(t *testing.T) {
	outDir := t.TempDir()
	gen := &Generator{
		Renderer:  render.New(catalog.Default()),
		Meta:      Meta{Title: "Pizzeria"},
		OutputDir: outDir,
	}
	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Generate() = %d, want 3", n)
	}
	css, err := os.ReadFile(filepath.Join(outDir, "style.css"))
	if err != nil {
		t.Fatal(err)
	}
	if string(css) != Stylesheet {
		t.Error("style.css does not match Stylesheet")
	}
}

func TestGenerateMissingIntro(t *testing.T) {
	gen := &Generator{
		Renderer:  render.New(catalog.Default()),
		OutputDir: t.TempDir(),
		IntroFile: filepath.Join(t.TempDir(), "missing.md"),
	}
	if _, err := gen.Generate(); err == nil {
		t.Error("expected error for missing intro file")
	}
}

func TestGenerateInvalidPattern(t *testing.T) {
	gen := &Generator{
		Renderer:  render.New(catalog.Default()),
		OutputDir: t.TempDir(),
		AssetsDir: t.TempDir(),
		Assets:    []string{"img/[abc"},
	}
	if _, err := gen.Generate(); err == nil {
		t.Error("expected error for invalid asset pattern")
	}
}

func TestNewPage(t *testing.T) {
	r := render.New(catalog.Default())
	page, err := NewPage(r, Meta{Title: "T"}, PageOptions{Live: true})
	if err != nil {
		t.Fatal(err)
	}
	if !page.Live {
		t.Error("Live = false")
	}
	if page.NotificationTTLMillis != 3000 {
		t.Errorf("NotificationTTLMillis = %d, want 3000", page.NotificationTTLMillis)
	}
	if len(page.Menu.Cards) != 12 {
		t.Errorf("menu cards = %d, want 12", len(page.Menu.Cards))
	}
	if len(page.Filters) != 3 || !page.Filters[0].Active || page.Filters[0].Token != "all" {
		t.Errorf("filters = %+v", page.Filters)
	}
	if len(page.Nav) != 4 || !page.Nav[0].Active {
		t.Errorf("nav = %+v", page.Nav)
	}
	if len(page.Beverages) != 3 {
		t.Errorf("beverage sections = %d, want 3", len(page.Beverages))
	}
}

func TestFragments(t *testing.T) {
	r := render.New(catalog.Default())
	frags, err := Fragments(r)
	if err != nil {
		t.Fatal(err)
	}
	// 3 menu variants plus one modal per pizza.
	if len(frags) != 3+12 {
		t.Fatalf("fragments = %d, want 15", len(frags))
	}
	classic := frags[1]
	if classic.Kind != "menu" || classic.Key != "classic" {
		t.Fatalf("frags[1] = %s/%s", classic.Kind, classic.Key)
	}
	if got := strings.Count(string(classic.HTML), `class="menu-item"`); got != 4 {
		t.Errorf("classic fragment cards = %d, want 4", got)
	}
	if frags[3].Kind != "modal" || frags[3].Key != "Margherita" {
		t.Errorf("frags[3] = %s/%s", frags[3].Kind, frags[3].Key)
	}
}

func TestRenderIntroEscapesRawHTML(t *testing.T) {
	out, err := RenderIntro([]byte("hello <script>alert(1)</script>"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("raw HTML passed through: %s", out)
	}
}

func TestScriptHandlesEveryOp(t *testing.T) {
	for _, op := range []string{"replace", "show", "hide", "append", "remove", "activate", "error"} {
		if !strings.Contains(Script, `case "`+op+`"`) {
			t.Errorf("script does not handle op %q", op)
		}
	}
}

func TestScriptQueuesWhileConnecting(t *testing.T) {
	// Clicks before the socket opens must reach the server session, not the
	// local fallback, or the two disagree on the modal state.
	connecting := strings.Index(Script, "WebSocket.CONNECTING")
	fallback := strings.Index(Script, "apply(local(ev));\n  }")
	if connecting < 0 || fallback < 0 || connecting > fallback {
		t.Fatal("send should queue events while the socket is connecting")
	}
	for _, want := range []string{"pending.push(ev)", "socket.onopen", "queued.forEach"} {
		if !strings.Contains(Script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewPageFilter(t *testing.T) {
	r := render.New(catalog.Default())
	page, err := NewPage(r, Meta{}, PageOptions{Filter: "classic"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Menu.Cards) != 4 {
		t.Errorf("classic cards = %d, want 4", len(page.Menu.Cards))
	}
	if page.Filters[0].Active || !page.Filters[1].Active {
		t.Errorf("filters = %+v", page.Filters)
	}

	if _, err := NewPage(r, Meta{}, PageOptions{Filter: "vegan"}); err == nil {
		t.Error("expected error for unknown filter")
	}
}
