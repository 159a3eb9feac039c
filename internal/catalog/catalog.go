package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Catalog holds the pizzas and grouped beverages shown on the menu.
// It is never mutated after construction; accessors return copies.
type Catalog struct {
	pizzas    []MenuEntry
	beverages []BeverageSection
}

// New builds a Catalog from the given entries. Beverage sections are
// normalized to SectionOrder: every fixed section is present (possibly
// empty) and sections with unknown keys are dropped.
func New(pizzas []MenuEntry, beverages []BeverageSection) *Catalog {
	c := &Catalog{
		pizzas: append([]MenuEntry(nil), pizzas...),
	}

	byKey := make(map[SectionKey][]BeverageEntry, len(beverages))
	for _, s := range beverages {
		byKey[s.Key] = append(byKey[s.Key], s.Entries...)
	}
	for _, key := range SectionOrder {
		c.beverages = append(c.beverages, BeverageSection{
			Key:     key,
			Entries: append([]BeverageEntry{}, byKey[key]...),
		})
	}
	return c
}

// Pizzas returns all pizzas in catalog order.
func (c *Catalog) Pizzas() []MenuEntry {
	return append([]MenuEntry(nil), c.pizzas...)
}

// Beverages returns the fixed beverage sections in SectionOrder.
func (c *Catalog) Beverages() []BeverageSection {
	out := make([]BeverageSection, len(c.beverages))
	for i, s := range c.beverages {
		out[i] = BeverageSection{
			Key:     s.Key,
			Entries: append([]BeverageEntry{}, s.Entries...),
		}
	}
	return out
}

// Categories returns the categories present in the catalog, in order of
// first appearance.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, p := range c.pizzas {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// HasCategory reports whether at least one pizza belongs to cat.
func (c *Catalog) HasCategory(cat Category) bool {
	for _, p := range c.pizzas {
		if p.Category == cat {
			return true
		}
	}
	return false
}

// Lookup finds a pizza by name.
func (c *Catalog) Lookup(name string) (MenuEntry, bool) {
	for _, p := range c.pizzas {
		if p.Name == name {
			return p, true
		}
	}
	return MenuEntry{}, false
}

// Len returns the number of pizzas.
func (c *Catalog) Len() int { return len(c.pizzas) }

// document is the on-disk YAML shape of a catalog.
type document struct {
	Pizzas    []MenuEntry       `yaml:"pizzas"`
	Beverages []BeverageSection `yaml:"beverages"`
}

// WriteYAML encodes the catalog in the format FileProvider reads.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Pizzas: c.pizzas, Beverages: c.beverages}); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
