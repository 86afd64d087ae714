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

	"github.com/ziadkadry99/coleweb/internal/docs"
	"github.com/ziadkadry99/coleweb/internal/server"
	"github.com/ziadkadry99/coleweb/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website with live view-state sessions",
	Long:  `Starts the HTTP server for the landing page, About page and documentation viewer, with the theme API, platform API and websocket sessions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}

	provider, closer, err := createPrefsProvider(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	catalog, err := docs.Load()
	if err != nil {
		return fmt.Errorf("loading documentation: %w", err)
	}

	s, err := site.New(site.Options{
		SiteName:     cfg.SiteName,
		Prefs:        provider,
		Catalog:      catalog,
		PopupDelay:   cfg.PopupDelay,
		CookieSecure: cfg.CookieSecure,
		Verbose:      verbose,
	})
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		AllowAll: cfg.AllowAllOrigins,
		Quiet:    !verbose,
	}, s)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "coleweb %s serving %s at %s\n", Version, cfg.SiteName, url)
	fmt.Fprintf(os.Stderr, "  Preferences: %s\n", cfg.Prefs.Backend)
	fmt.Fprintf(os.Stderr, "  Documentation sections: %d\n", len(catalog.Pages()))

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
