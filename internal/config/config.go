package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: PIZZERIA_CATALOG__SOURCE sets catalog.source.
const EnvPrefix = "PIZZERIA_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PIZZERIA_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: PIZZERIA_PORT -> port, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSources is the set of recognized catalog sources.
var validSources = map[CatalogSource]bool{
	SourceStatic: true,
	SourceFile:   true,
	SourceSQLite: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.RestaurantName == "" {
		return fmt.Errorf("restaurant_name is required")
	}

	if c.Currency == "" {
		return fmt.Errorf("currency is required")
	}

	if _, err := c.TTL(); err != nil {
		return err
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if !validSources[c.Catalog.Source] {
		return fmt.Errorf("invalid catalog.source %q: must be one of static, file, sqlite", c.Catalog.Source)
	}
	if c.Catalog.Source == SourceFile && c.Catalog.File == "" {
		return fmt.Errorf("catalog.file is required when catalog.source is file")
	}
	if c.Catalog.Source == SourceSQLite && c.Catalog.DBPath == "" {
		return fmt.Errorf("catalog.db_path is required when catalog.source is sqlite")
	}

	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}
	for _, pattern := range c.Site.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid site.assets pattern %q", pattern)
		}
	}

	return nil
}

// TTL parses notification_ttl. An empty value means the default.
func (c *Config) TTL() (time.Duration, error) {
	if c.NotificationTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.NotificationTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid notification_ttl %q: %w", c.NotificationTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("notification_ttl must be positive")
	}
	return d, nil
}
