package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pizzeria/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pizzeria",
	Short: "Menu page server and static site generator for a pizzeria",
	Long: `Pizzeria renders a restaurant's pizza and beverage menu as a single
page with category filters, a detail modal and add-to-cart feedback.
Serve it live, export it as a static site, or expose the menu to AI
agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
