package config

// CatalogSource selects where the menu is loaded from.
type CatalogSource string

const (
	SourceStatic CatalogSource = "static"
	SourceFile   CatalogSource = "file"
	SourceSQLite CatalogSource = "sqlite"
)

// Config is the top-level pizzeria configuration, corresponding to .pizzeria.yml.
type Config struct {
	RestaurantName  string        `yaml:"restaurant_name" koanf:"restaurant_name"`
	Tagline         string        `yaml:"tagline" koanf:"tagline"`
	Currency        string        `yaml:"currency" koanf:"currency"`
	NotificationTTL string        `yaml:"notification_ttl" koanf:"notification_ttl"`
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Catalog         CatalogConfig `yaml:"catalog" koanf:"catalog"`
	Site            SiteConfig    `yaml:"site" koanf:"site"`
	Print           PrintConfig   `yaml:"print" koanf:"print"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	Source CatalogSource `yaml:"source" koanf:"source"`
	File   string        `yaml:"file,omitempty" koanf:"file"`
	DBPath string        `yaml:"db_path,omitempty" koanf:"db_path"`
}

// SiteConfig holds static site generation settings.
type SiteConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	IntroFile string   `yaml:"intro_file,omitempty" koanf:"intro_file"`
	AssetsDir string   `yaml:"assets_dir,omitempty" koanf:"assets_dir"`
	Assets    []string `yaml:"assets,omitempty" koanf:"assets"`
}

// PrintConfig holds printable PDF menu settings.
type PrintConfig struct {
	Output  string `yaml:"output" koanf:"output"`
	Contact string `yaml:"contact,omitempty" koanf:"contact"`
}
