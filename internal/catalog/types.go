package catalog

import "github.com/shopspring/decimal"

// Category identifies the menu group a pizza belongs to.
type Category string

const (
	CategoryClassic Category = "classic"
	CategorySpecial Category = "special"
)

// SectionKey identifies a fixed beverage section.
type SectionKey string

const (
	SectionSoftDrinks SectionKey = "soft_drinks"
	SectionBeers      SectionKey = "beers"
	SectionWines      SectionKey = "wines"
)

// SectionOrder is the fixed display order of beverage sections.
var SectionOrder = []SectionKey{SectionSoftDrinks, SectionBeers, SectionWines}

// sectionTitles maps each section to its heading on the page.
var sectionTitles = map[SectionKey]string{
	SectionSoftDrinks: "Bibite",
	SectionBeers:      "Birre",
	SectionWines:      "Vini",
}

// sectionRegions maps each section to the page region its list renders into.
var sectionRegions = map[SectionKey]string{
	SectionSoftDrinks: "bibite-list",
	SectionBeers:      "birre-list",
	SectionWines:      "vini-list",
}

// Title returns the display heading for the section.
func (k SectionKey) Title() string {
	if t, ok := sectionTitles[k]; ok {
		return t
	}
	return string(k)
}

// Region returns the id of the display region holding the section's list.
func (k SectionKey) Region() string {
	if r, ok := sectionRegions[k]; ok {
		return r
	}
	return string(k) + "-list"
}

// MenuEntry is a single pizza on the menu.
type MenuEntry struct {
	Name        string          `json:"name" yaml:"name"`
	Category    Category        `json:"category" yaml:"category"`
	Ingredients string          `json:"ingredients" yaml:"ingredients"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	Emoji       string          `json:"emoji" yaml:"emoji"`
}

// BeverageEntry is a single drink.
type BeverageEntry struct {
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// BeverageSection groups beverages under one fixed key.
type BeverageSection struct {
	Key     SectionKey      `json:"key" yaml:"key"`
	Entries []BeverageEntry `json:"entries" yaml:"entries"`
}
