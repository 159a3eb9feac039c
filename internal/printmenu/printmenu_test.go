package printmenu

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

var pageObject = regexp.MustCompile(`/Type\s*/Page\b`)

func menuOf(n int) *render.Renderer {
	pizzas := make([]catalog.MenuEntry, n)
	for i := range pizzas {
		pizzas[i] = catalog.MenuEntry{
			Name:        fmt.Sprintf("Pizza %d", i+1),
			Category:    catalog.CategoryClassic,
			Ingredients: "Pomodoro, Mozzarella fior di latte, Basilico fresco, Olio extravergine",
			Price:       decimal.RequireFromString("7.50"),
		}
	}
	beverages := []catalog.BeverageSection{{
		Key:     catalog.SectionBeers,
		Entries: []catalog.BeverageEntry{{Name: "Birra alla spina 40cl", Price: decimal.RequireFromString("4.50")}},
	}}
	return render.New(catalog.New(pizzas, beverages))
}

func TestWriteDefaultMenu(t *testing.T) {
	var buf bytes.Buffer
	pages, err := Write(&buf, render.New(catalog.Default()), Options{
		Title:   "Pizzeria Napoli",
		Tagline: "La vera pizza napoletana",
		Contact: "Via Toledo 1, Napoli",
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	if pages < 1 {
		t.Fatalf("pages = %d", pages)
	}
	if got := len(pageObject.FindAll(buf.Bytes(), -1)); got != pages {
		t.Errorf("document has %d pages, Write reported %d", got, pages)
	}
}

func TestWritePaginates(t *testing.T) {
	tests := []struct {
		name   string
		pizzas int
		min    int
		max    int
	}{
		{"single pizza", 1, 1, 1},
		{"one page more", 12, 2, 2},
		{"long menu", 60, 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pages, err := Write(&buf, menuOf(tt.pizzas), Options{Title: "Test"})
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			if pages < tt.min || pages > tt.max {
				t.Errorf("%d pizzas gave %d pages, want %d..%d", tt.pizzas, pages, tt.min, tt.max)
			}
			if got := len(pageObject.FindAll(buf.Bytes(), -1)); got != pages {
				t.Errorf("document has %d pages, Write reported %d", got, pages)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "print", "menu.pdf")
	pages, err := WriteFile(path, render.New(catalog.Default()), Options{Title: "Pizzeria Napoli"})
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("menu not written: %v", err)
	}
	if info.Size() == 0 || pages == 0 {
		t.Errorf("size = %d, pages = %d", info.Size(), pages)
	}
}
