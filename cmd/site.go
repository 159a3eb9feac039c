package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pizzeria/internal/progress"
	"github.com/ziadkadry99/pizzeria/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Generate the menu as a static website",
	Long:  `Generates a self-contained static site (index.html, style.css, script.js and assets) that filters the menu and opens pizza details without a server.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().String("output", "", "override output directory (defaults to site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Site.OutputDir
	}

	renderer, err := newRenderer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	ttl, _ := cfg.TTL()

	generator := &site.Generator{
		Renderer:        renderer,
		Meta:            site.Meta{Title: cfg.RestaurantName, Tagline: cfg.Tagline},
		OutputDir:       outputDir,
		IntroFile:       cfg.Site.IntroFile,
		AssetsDir:       cfg.Site.AssetsDir,
		Assets:          cfg.Site.Assets,
		NotificationTTL: ttl,
		Reporter:        progress.NewReporter("Generating site"),
	}
	count, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d files)\n", outputDir, count)
	return nil
}
