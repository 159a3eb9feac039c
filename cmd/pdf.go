package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pizzeria/internal/config"
	"github.com/ziadkadry99/pizzeria/internal/printmenu"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Print the menu as an A4 PDF",
	Long:  `Writes a printable A4 menu from the configured catalog: a header with the restaurant name and tagline, pizzas on the left, beverages on the right.`,
	RunE:  runPDF,
}

func init() {
	pdfCmd.Flags().String("output", "", "override output file (defaults to print.output)")
	rootCmd.AddCommand(pdfCmd)
}

func runPDF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Print.Output
	}

	renderer, err := newRenderer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	pages, err := writeMenuPDF(output, renderer, cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Printable menu written: %s (%d pages)\n", output, pages)
	return nil
}

// writeMenuPDF prints the menu to output with the configured header and
// contact line.
func writeMenuPDF(output string, r *render.Renderer, cfg *config.Config) (int, error) {
	if output == "" {
		return 0, fmt.Errorf("no output file: set print.output or pass --output")
	}
	pages, err := printmenu.WriteFile(output, r, printmenu.Options{
		Title:   cfg.RestaurantName,
		Tagline: cfg.Tagline,
		Contact: cfg.Print.Contact,
	})
	if err != nil {
		return 0, fmt.Errorf("printing menu: %w", err)
	}
	return pages, nil
}
