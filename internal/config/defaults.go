package config

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = ".pizzeria.yml"

// DefaultAssets are glob patterns copied into the static site by default.
var DefaultAssets = []string{
	"**/*.{png,jpg,jpeg,gif,svg,webp}",
	"**/*.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		RestaurantName:  "Pizzeria Napoli",
		Tagline:         "La vera pizza napoletana",
		Currency:        "€",
		NotificationTTL: "3s",
		Port:            8080,
		Catalog: CatalogConfig{
			Source: SourceStatic,
			File:   "menu.yml",
			DBPath: "pizzeria.db",
		},
		Site: SiteConfig{
			OutputDir: "public",
			Assets:    DefaultAssets,
		},
		Print: PrintConfig{
			Output: "menu.pdf",
		},
	}
}
