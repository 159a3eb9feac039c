package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/pizzeria/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the live menu server",
	Long:  `Starts the HTTP server for the menu page. Each open page gets its own live session over a websocket; fragments and a JSON API are also served.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		renderer, err := newRenderer(ctx, cfg)
		if err != nil {
			return err
		}
		meta, err := siteMeta(cfg)
		if err != nil {
			return err
		}
		ttl, _ := cfg.TTL()

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:            port,
			AllowAll:        cfg.AllowAllOrigins,
			Meta:            meta,
			NotificationTTL: ttl,
		}, renderer)

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "pizzeria server v%s starting on port %d\n", Version, port)
		fmt.Fprintf(os.Stderr, "  Restaurant: %s\n", cfg.RestaurantName)
		fmt.Fprintf(os.Stderr, "  Catalog: %s (%d pizzas)\n", cfg.Catalog.Source, renderer.Catalog().Len())

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
