package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/nikbrunner/bmx/internal/cache"
	"github.com/nikbrunner/bmx/internal/server"
	"github.com/nikbrunner/bmx/internal/storage"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve uploaded bookmark files over HTTP",
		Long: `Runs the HTTP API.

Routes:
  GET  /health
  GET  /api/files
  POST /api/files                       multipart field "file"
  GET  /api/files/:name                 bookmarks and folder tree
  GET  /api/files/:name/breadcrumbs     ?folder=
  GET  /api/files/:name/bookmarks       ?folder=&sub=&q=
  GET  /api/files/:name/links           ?folder=

Uploads are kept in the library chosen by the config (dir or sqlite).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Listen
			}

			library, err := storage.OpenLibrary(cfg)
			if err != nil {
				return fmt.Errorf("opening library: %w", err)
			}
			if closer, ok := library.(io.Closer); ok {
				defer closer.Close()
			}

			// Request logs are written at info level.
			if !opts.verbose {
				gin.SetMode(gin.ReleaseMode)
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("Serving bookmarks", "library", cfg.Library, "listen", listen)
			engine := server.NewServer(server.NewHandler(library, cache.New()))
			if err := server.ListenAndServe(ctx, listen, engine); err != nil {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, :8080)")
	return cmd
}
