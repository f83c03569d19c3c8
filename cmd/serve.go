package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/server"
	"github.com/summa-explorer/summa/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Summa website",
	Long: `Loads the corpus, opens (or builds) the search indexes and serves the website:
the landing page, /explore/<token> pages, search with live results, and a JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		doc, err := loadDocument(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stack, err := openSearch(ctx, cfg, doc, openOptions{})
		if err != nil {
			return err
		}
		defer stack.Close()

		srv := server.New(server.Config{
			Port:            cfg.Server.Port,
			AllowAllOrigins: cfg.Server.AllowAllOrigins,
			AllowedOrigins:  cfg.Server.AllowedOrigins,
			RequestTimeout:  cfg.RequestTimeout(),
		})

		web, err := site.New(resolver.New(doc), stack.service, site.Options{
			SiteName:    cfg.SiteName,
			Verbose:     verbose,
			ResultLimit: cfg.Search.ResultLimit,
		})
		if err != nil {
			return fmt.Errorf("creating site: %w", err)
		}
		web.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		s := doc.Stats()
		fmt.Fprintf(os.Stderr, "summa %s serving %q on http://localhost:%d\n", Version, cfg.SiteName, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Corpus: %d parts, %d articles\n", s.Parts, s.Articles)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.DBPath())
		fmt.Fprintf(os.Stderr, "  Semantic search: %v\n", stack.service.Semantic())

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
