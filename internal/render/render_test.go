package render

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5", "€ 5.00"},
		{"9.5", "€ 9.50"},
		{"6.50", "€ 6.50"},
		{"18", "€ 18.00"},
		{"0", "€ 0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatPrice(DefaultCurrency, decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("FormatPrice(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLabel(catalog.CategoryClassic); got != "Classica" {
		t.Errorf("classic label = %q", got)
	}
	if got := CategoryLabel(catalog.CategorySpecial); got != "Speciale" {
		t.Errorf("special label = %q", got)
	}
	if got := CategoryLabel("vegana"); got != "vegana" {
		t.Errorf("unknown category should fall back to raw value, got %q", got)
	}
}

func TestMenuFilters(t *testing.T) {
	c := catalog.Default()
	r := New(c)

	for _, f := range []Filter{FilterAll, Filter(catalog.CategoryClassic), Filter(catalog.CategorySpecial)} {
		t.Run(string(f), func(t *testing.T) {
			var want []string
			for _, p := range c.Pizzas() {
				if f == FilterAll || string(p.Category) == string(f) {
					want = append(want, p.Name)
				}
			}

			v := r.Menu(f)
			if v.Filter != f {
				t.Errorf("Filter = %q, want %q", v.Filter, f)
			}
			if len(v.Cards) != len(want) {
				t.Fatalf("got %d cards, want %d", len(v.Cards), len(want))
			}
			for i, card := range v.Cards {
				if card.Name != want[i] {
					t.Errorf("card[%d] = %q, want %q", i, card.Name, want[i])
				}
			}
		})
	}

	if n := len(r.Menu(Filter(catalog.CategoryClassic)).Cards); n != 4 {
		t.Errorf("expected 4 classic pizzas, got %d", n)
	}
	if n := len(r.Menu(Filter(catalog.CategorySpecial)).Cards); n != 8 {
		t.Errorf("expected 8 special pizzas, got %d", n)
	}
}

func TestMenuEmptyResultIsNotNil(t *testing.T) {
	r := New(catalog.Default())
	v := r.Menu("dessert")
	if v.Cards == nil {
		t.Fatal("expected empty, non-nil card slice")
	}
	if len(v.Cards) != 0 {
		t.Errorf("expected no cards, got %d", len(v.Cards))
	}

	html, err := MenuHTML(v)
	if err != nil {
		t.Fatalf("MenuHTML: %v", err)
	}
	if html != "" {
		t.Errorf("expected empty fragment, got %q", html)
	}
}

func TestMenuDoesNotMutateCatalog(t *testing.T) {
	c := catalog.Default()
	r := New(c)
	before := c.Pizzas()

	r.Menu(Filter(catalog.CategorySpecial))
	after := r.Menu(FilterAll)

	if len(after.Cards) != len(before) {
		t.Fatalf("all after special: %d cards, want %d", len(after.Cards), len(before))
	}
	for i, p := range before {
		if after.Cards[i].Name != p.Name {
			t.Errorf("card[%d] = %q, want %q", i, after.Cards[i].Name, p.Name)
		}
	}
}

func TestCardFields(t *testing.T) {
	r := New(catalog.Default())
	card := r.Menu(FilterAll).Cards[0]

	want := Card{
		Name:          "Margherita",
		Emoji:         "🍅",
		Category:      "classic",
		CategoryLabel: "Classica",
		Ingredients:   "Pomodoro DOP, Mozzarella fior di latte, Basilico fresco",
		Price:         "€ 6.50",
	}
	if card != want {
		t.Errorf("card = %+v, want %+v", card, want)
	}
}

func TestAllRenderedPricesHaveTwoDecimals(t *testing.T) {
	re := regexp.MustCompile(`^€ \d+\.\d{2}$`)
	r := New(catalog.Default())

	for _, c := range r.Menu(FilterAll).Cards {
		if !re.MatchString(c.Price) {
			t.Errorf("pizza %s price %q", c.Name, c.Price)
		}
	}
	for _, s := range r.Beverages() {
		for _, row := range s.Rows {
			if !re.MatchString(row.Price) {
				t.Errorf("beverage %s price %q", row.Name, row.Price)
			}
		}
	}
}

func TestBeverages(t *testing.T) {
	r := New(catalog.Default())
	sections := r.Beverages()
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	wantRegions := []string{"bibite-list", "birre-list", "vini-list"}
	for i, s := range sections {
		if s.Region != wantRegions[i] {
			t.Errorf("section %d region = %q, want %q", i, s.Region, wantRegions[i])
		}
	}

	wines := sections[2]
	if wines.Rows[2].Name != "Chianti Classico DOC (bottiglia)" || wines.Rows[2].Price != "€ 18.00" {
		t.Errorf("unexpected wine row: %+v", wines.Rows[2])
	}
}

func TestModal(t *testing.T) {
	c := catalog.Default()
	r := New(c)
	e, _ := c.Lookup("Quattro Formaggi")

	v := r.Modal(e)
	if v.Title != e.Name || v.Icon != e.Emoji || v.Ingredients != e.Ingredients || v.Price != "€ 9.50" {
		t.Errorf("modal = %+v", v)
	}
	if v.IconSize != ModalIconSize {
		t.Errorf("IconSize = %d, want %d", v.IconSize, ModalIconSize)
	}
	if v.Action.Name != e.Name || !v.Action.Price.Equal(e.Price) {
		t.Errorf("action = %+v", v.Action)
	}
}

func TestCustomCurrency(t *testing.T) {
	r := New(catalog.Default())
	r.Currency = "CHF"
	if got := r.Menu(FilterAll).Cards[1].Price; got != "CHF 5.00" {
		t.Errorf("price = %q, want %q", got, "CHF 5.00")
	}
}

func TestMenuHTMLEscapesQuotes(t *testing.T) {
	c := catalog.New([]catalog.MenuEntry{{
		Name:        `Nonna's "Special"`,
		Category:    catalog.CategorySpecial,
		Ingredients: `<b>Pomodoro</b>, 'Basilico'`,
		Price:       decimal.NewFromInt(7),
		Emoji:       "🍕",
	}}, nil)
	r := New(c)

	html, err := MenuHTML(r.Menu(FilterAll))
	if err != nil {
		t.Fatalf("MenuHTML: %v", err)
	}
	if strings.Contains(html, `"Special"`) {
		t.Error("double quotes in name were not escaped")
	}
	if strings.Contains(html, "<b>") {
		t.Error("markup in ingredients was not escaped")
	}
	if !strings.Contains(html, "data-select=") {
		t.Error("card should carry its selection payload in a data attribute")
	}
	if strings.Contains(html, "onclick") {
		t.Error("cards must not embed inline handlers")
	}
}

func TestMenuHTMLCardCount(t *testing.T) {
	r := New(catalog.Default())
	html, err := MenuHTML(r.Menu(Filter(catalog.CategoryClassic)))
	if err != nil {
		t.Fatalf("MenuHTML: %v", err)
	}
	if n := strings.Count(html, `class="menu-item"`); n != 4 {
		t.Errorf("rendered %d cards, want 4", n)
	}
	if !strings.Contains(html, "Classica") {
		t.Error("expected category label in markup")
	}
}

func TestModalHTML(t *testing.T) {
	c := catalog.Default()
	e, _ := c.Lookup("Margherita")
	html, err := ModalHTML(New(c).Modal(e))
	if err != nil {
		t.Fatalf("ModalHTML: %v", err)
	}
	for _, want := range []string{"Margherita", "€ 6.50", "font-size: 120px", `data-confirm="Margherita"`, `data-price="6.5"`} {
		if !strings.Contains(html, want) {
			t.Errorf("modal markup missing %q", want)
		}
	}
}

func TestWritePage(t *testing.T) {
	r := New(catalog.Default())
	var buf bytes.Buffer
	err := WritePage(&buf, Page{
		Title:     "Pizzeria La Repubblica",
		Intro:     template.HTML("<p>Forno a legna</p>"),
		Filters:   []Control{{Token: "all", Label: "Tutte", Active: true}, {Token: "classic", Label: "Classiche"}},
		Nav:       []Control{{Token: "home", Label: "Home", Active: true}},
		Menu:      r.Menu(FilterAll),
		Beverages: r.Beverages(),
	})
	if err != nil {
		t.Fatalf("WritePage: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`id="pizze-grid"`, `id="bibite-list"`, `id="birre-list"`, `id="vini-list"`,
		`id="modal"`, `<p>Forno a legna</p>`, `class="filter-btn active" data-filter="all"`,
		`data-live="false"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if n := strings.Count(out, `class="menu-item"`); n != 12 {
		t.Errorf("page rendered %d cards, want 12", n)
	}
}
