// Package render turns catalog data into view models and HTML fragments.
// Everything here is a pure function of its inputs.
package render

import (
	"github.com/shopspring/decimal"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
)

// DefaultCurrency is the glyph prefixed to every price.
const DefaultCurrency = "€"

// ModalIconSize is the pixel size the modal renders the entry icon at.
const ModalIconSize = 120

// Filter is the active category constraint on the pizza grid.
type Filter string

// FilterAll selects every pizza.
const FilterAll Filter = "all"

// Matches reports whether a pizza in category c passes the filter.
func (f Filter) Matches(c catalog.Category) bool {
	return f == FilterAll || catalog.Category(f) == c
}

// Card is the display block for one pizza.
type Card struct {
	Name          string `json:"name"`
	Emoji         string `json:"emoji"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Ingredients   string `json:"ingredients"`
	Price         string `json:"price"`
}

// MenuView is the rendered pizza grid for one filter.
type MenuView struct {
	Filter Filter `json:"filter"`
	Cards  []Card `json:"cards"`
}

// BeverageRow is one drink line.
type BeverageRow struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// BeverageSectionView is the rendered list of one beverage section.
type BeverageSectionView struct {
	Key    catalog.SectionKey `json:"key"`
	Title  string             `json:"title"`
	Region string             `json:"region"`
	Rows   []BeverageRow      `json:"rows"`
}

// Action is the payload of the modal's add-to-cart control.
type Action struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ModalView is the detail view for the selected pizza.
type ModalView struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	IconSize    int    `json:"icon_size"`
	Ingredients string `json:"ingredients"`
	Price       string `json:"price"`
	Action      Action `json:"action"`
}

// Renderer maps a catalog to views.
type Renderer struct {
	catalog  *catalog.Catalog
	Currency string
}

// New creates a Renderer over c using DefaultCurrency.
func New(c *catalog.Catalog) *Renderer {
	return &Renderer{catalog: c, Currency: DefaultCurrency}
}

// Catalog returns the catalog the renderer reads from.
func (r *Renderer) Catalog() *catalog.Catalog { return r.catalog }

// Menu selects the pizzas passing f, in catalog order.
func (r *Renderer) Menu(f Filter) MenuView {
	cards := []Card{}
	for _, p := range r.catalog.Pizzas() {
		if !f.Matches(p.Category) {
			continue
		}
		cards = append(cards, Card{
			Name:          p.Name,
			Emoji:         p.Emoji,
			Category:      string(p.Category),
			CategoryLabel: CategoryLabel(p.Category),
			Ingredients:   p.Ingredients,
			Price:         r.FormatPrice(p.Price),
		})
	}
	return MenuView{Filter: f, Cards: cards}
}

// Beverages renders every fixed section in order. No filter applies.
func (r *Renderer) Beverages() []BeverageSectionView {
	sections := r.catalog.Beverages()
	out := make([]BeverageSectionView, 0, len(sections))
	for _, s := range sections {
		rows := make([]BeverageRow, 0, len(s.Entries))
		for _, b := range s.Entries {
			rows = append(rows, BeverageRow{Name: b.Name, Price: r.FormatPrice(b.Price)})
		}
		out = append(out, BeverageSectionView{
			Key:    s.Key,
			Title:  s.Key.Title(),
			Region: s.Key.Region(),
			Rows:   rows,
		})
	}
	return out
}

// Modal builds the detail view for e.
func (r *Renderer) Modal(e catalog.MenuEntry) ModalView {
	return ModalView{
		Title:       e.Name,
		Icon:        e.Emoji,
		IconSize:    ModalIconSize,
		Ingredients: e.Ingredients,
		Price:       r.FormatPrice(e.Price),
		Action:      Action{Name: e.Name, Price: e.Price},
	}
}

// FormatPrice formats d with the renderer's currency.
func (r *Renderer) FormatPrice(d decimal.Decimal) string {
	return FormatPrice(r.Currency, d)
}

// FormatPrice renders d as "<currency> X.YY".
func FormatPrice(currency string, d decimal.Decimal) string {
	return currency + " " + d.StringFixed(2)
}

// CategoryLabel returns the display label of a pizza category. Unknown
// categories are shown as-is.
func CategoryLabel(c catalog.Category) string {
	switch c {
	case catalog.CategoryClassic:
		return "Classica"
	case catalog.CategorySpecial:
		return "Speciale"
	default:
		return string(c)
	}
}

// FilterLabel returns the text of a filter control.
func FilterLabel(f Filter) string {
	switch f {
	case FilterAll:
		return "Tutte"
	case Filter(catalog.CategoryClassic):
		return "Classiche"
	case Filter(catalog.CategorySpecial):
		return "Speciali"
	default:
		return string(f)
	}
}
