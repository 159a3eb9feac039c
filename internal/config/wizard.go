package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
)

// detectCatalogSource picks a sensible default source from files already
// present in the working directory.
func detectCatalogSource(cfg *Config) CatalogSource {
	if _, err := os.Stat(cfg.Catalog.DBPath); err == nil {
		return SourceSQLite
	}
	if _, err := os.Stat(cfg.Catalog.File); err == nil {
		return SourceFile
	}
	return SourceStatic
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to pizzeria! Let's set up your menu page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Restaurant name.
	namePrompt := promptui.Prompt{
		Label:    "Restaurant name",
		Default:  cfg.RestaurantName,
		Validate: required("restaurant name"),
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("restaurant name: %w", err)
	}
	cfg.RestaurantName = name

	// 2. Tagline.
	taglinePrompt := promptui.Prompt{
		Label:   "Tagline",
		Default: cfg.Tagline,
	}
	if cfg.Tagline, err = taglinePrompt.Run(); err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}

	// 3. Catalog source.
	detected := detectCatalogSource(cfg)
	sources := []CatalogSource{SourceStatic, SourceFile, SourceSQLite}
	cursor := 0
	for i, s := range sources {
		if s == detected {
			cursor = i
		}
	}
	sourcePrompt := promptui.Select{
		Label: "Where does the menu come from?",
		Items: []string{
			"static (built-in menu)",
			"file (YAML menu file)",
			"sqlite (SQLite database, fill with `pizzeria catalog import`)",
		},
		CursorPos: cursor,
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog source: %w", err)
	}
	cfg.Catalog.Source = sources[sourceIdx]

	switch cfg.Catalog.Source {
	case SourceFile:
		filePrompt := promptui.Prompt{Label: "Menu file", Default: cfg.Catalog.File, Validate: required("menu file")}
		if cfg.Catalog.File, err = filePrompt.Run(); err != nil {
			return nil, fmt.Errorf("menu file: %w", err)
		}
	case SourceSQLite:
		dbPrompt := promptui.Prompt{Label: "Database path", Default: cfg.Catalog.DBPath, Validate: required("database path")}
		if cfg.Catalog.DBPath, err = dbPrompt.Run(); err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Notification duration.
	ttlPrompt := promptui.Prompt{
		Label:   "How long add-to-cart notifications stay visible",
		Default: cfg.NotificationTTL,
		Validate: func(s string) error {
			d, err := time.ParseDuration(s)
			if err != nil || d <= 0 {
				return fmt.Errorf("enter a positive duration such as 3s")
			}
			return nil
		},
	}
	if cfg.NotificationTTL, err = ttlPrompt.Run(); err != nil {
		return nil, fmt.Errorf("notification ttl: %w", err)
	}

	// 6. Static site output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.Site.OutputDir,
	}
	if cfg.Site.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(field string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
