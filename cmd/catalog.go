package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pizzeria/internal/catalog"
	"github.com/ziadkadry99/pizzeria/internal/config"
	"github.com/ziadkadry99/pizzeria/internal/db"
	"github.com/ziadkadry99/pizzeria/internal/progress"
	"github.com/ziadkadry99/pizzeria/internal/render"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and import the menu catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file.yml]",
	Short: "Import a menu into the SQLite catalog",
	Long: `Replaces the contents of the SQLite catalog (catalog.db_path) with a menu.
The menu is read from the given YAML file, or the built-in menu when no file
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogImport,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured catalog",
	RunE:  runCatalogList,
}

func init() {
	catalogImportCmd.Flags().String("db", "", "database path (defaults to catalog.db_path)")
	catalogListCmd.Flags().Bool("yaml", false, "print the catalog as YAML, suitable for catalog.file")
	catalogCmd.AddCommand(catalogImportCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var source catalog.Provider = catalog.StaticProvider{}
	if len(args) == 1 {
		source = catalog.FileProvider{Path: args[0]}
	}
	c, err := source.Load(cmd.Context())
	if err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Catalog.DBPath
	}
	n, err := importCatalog(cmd.Context(), dbPath, c, progress.NewReporter("Importing catalog"))
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d pizzas and %d beverages into %s\n", c.Len(), n-c.Len(), dbPath)
	if cfg.Catalog.Source != config.SourceSQLite {
		fmt.Fprintf(os.Stderr, "Note: set catalog.source to sqlite in %s to serve this catalog.\n", cfgFile)
	}
	return nil
}

// importCatalog replaces the catalog stored at dbPath with c and returns the
// number of rows written.
func importCatalog(ctx context.Context, dbPath string, c *catalog.Catalog, reporter progress.Reporter) (int, error) {
	database, err := db.Open(dbPath)
	if err != nil {
		return 0, fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	total := catalog.RowCount(c)
	reporter.Start(total)
	defer reporter.Finish()

	store := catalog.NewSQLiteProvider(database)
	err = store.Replace(ctx, c, func(done int) {
		reporter.Update(done, fmt.Sprintf("%d/%d rows", done, total))
	})
	if err != nil {
		return 0, fmt.Errorf("importing catalog into %s: %w", dbPath, err)
	}
	return total, nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return renderer.Catalog().WriteYAML(cmd.OutOrStdout())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PIZZA\tCATEGORY\tPRICE")
	for _, card := range renderer.Menu(render.FilterAll).Cards {
		fmt.Fprintf(w, "%s %s\t%s\t%s\n", card.Emoji, card.Name, card.CategoryLabel, card.Price)
	}
	fmt.Fprintln(w)
	for _, section := range renderer.Beverages() {
		fmt.Fprintf(w, "%s\t\t\n", section.Title)
		for _, row := range section.Rows {
			fmt.Fprintf(w, "  %s\t\t%s\n", row.Name, row.Price)
		}
	}
	return w.Flush()
}
