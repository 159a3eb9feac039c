package catalog

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/pizzeria/internal/db"
)

// SQLiteProvider reads the catalog from the pizzas and beverages tables.
type SQLiteProvider struct {
	db *db.DB
}

// NewSQLiteProvider creates a SQLiteProvider backed by the given database.
func NewSQLiteProvider(database *db.DB) *SQLiteProvider {
	return &SQLiteProvider{db: database}
}

// Load implements Provider.
func (p *SQLiteProvider) Load(ctx context.Context) (*Catalog, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT name, category, ingredients, price, emoji
		FROM pizzas ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying pizzas: %w", err)
	}
	defer rows.Close()

	var pizzas []MenuEntry
	for rows.Next() {
		var e MenuEntry
		var category string
		if err := rows.Scan(&e.Name, &category, &e.Ingredients, &e.Price, &e.Emoji); err != nil {
			return nil, fmt.Errorf("scanning pizza: %w", err)
		}
		e.Category = Category(category)
		pizzas = append(pizzas, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pizzas: %w", err)
	}

	brows, err := p.db.QueryContext(ctx, `
		SELECT section, name, price
		FROM beverages ORDER BY section, position`)
	if err != nil {
		return nil, fmt.Errorf("querying beverages: %w", err)
	}
	defer brows.Close()

	bySection := make(map[SectionKey][]BeverageEntry)
	for brows.Next() {
		var section string
		var b BeverageEntry
		if err := brows.Scan(&section, &b.Name, &b.Price); err != nil {
			return nil, fmt.Errorf("scanning beverage: %w", err)
		}
		bySection[SectionKey(section)] = append(bySection[SectionKey(section)], b)
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("iterating beverages: %w", err)
	}

	var sections []BeverageSection
	for key, entries := range bySection {
		sections = append(sections, BeverageSection{Key: key, Entries: entries})
	}
	return New(pizzas, sections), nil
}

// Replace overwrites the stored catalog with c inside one transaction.
// progress, if non-nil, is called after each row is written.
func (p *SQLiteProvider) Replace(ctx context.Context, c *Catalog, progress func(done int)) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pizzas`); err != nil {
		return fmt.Errorf("clearing pizzas: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM beverages`); err != nil {
		return fmt.Errorf("clearing beverages: %w", err)
	}

	done := 0
	for i, e := range c.pizzas {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pizzas (position, name, category, ingredients, price, emoji)
			VALUES (?, ?, ?, ?, ?, ?)`,
			i, e.Name, string(e.Category), e.Ingredients, e.Price.String(), e.Emoji,
		)
		if err != nil {
			return fmt.Errorf("inserting pizza %q: %w", e.Name, err)
		}
		done++
		if progress != nil {
			progress(done)
		}
	}

	for _, s := range c.beverages {
		for i, b := range s.Entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO beverages (section, position, name, price)
				VALUES (?, ?, ?, ?)`,
				string(s.Key), i, b.Name, b.Price.String(),
			)
			if err != nil {
				return fmt.Errorf("inserting beverage %q: %w", b.Name, err)
			}
			done++
			if progress != nil {
				progress(done)
			}
		}
	}

	return tx.Commit()
}

// RowCount returns the number of rows Replace writes for c.
func RowCount(c *Catalog) int {
	n := len(c.pizzas)
	for _, s := range c.beverages {
		n += len(s.Entries)
	}
	return n
}
