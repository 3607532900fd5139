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
	"go.uber.org/zap"

	"github.com/HaiderNakara/doc-extract-web/internal/config"
	"github.com/HaiderNakara/doc-extract-web/internal/server"
	"github.com/HaiderNakara/doc-extract-web/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally",
	Long: `Serves the landing page and the live demo over HTTP. Demo uploads posted
to /api/parse are forwarded to demo.endpoint. With --watch, edits to the
config file re-render the site and reload open browser tabs.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("watch", false, "reload when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	watchConfig, _ := cmd.Flags().GetBool("watch")
	withPort := func(c *config.Config) *config.Config {
		if port != 0 {
			c.Server.Port = port
		}
		return c
	}

	logger := newLogger()
	defer logger.Sync()

	srv, err := server.New(withPort(cfg),
		server.WithLogger(logger),
		server.WithLiveReload(watchConfig),
	)
	if err != nil {
		return err
	}

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watchConfig {
		w := watch.New([]string{cfgFile}, func(path string) {
			next, err := loadConfig()
			if err != nil {
				logger.Warn("config reload skipped", zap.String("path", path), zap.Error(err))
				return
			}
			if err := srv.Reload(withPort(next)); err != nil {
				logger.Error("reloading site", zap.Error(err))
			}
		}, watch.WithLogger(logger))
		if err := w.Start(ctx); err != nil {
			return fmt.Errorf("watching %s: %w", cfgFile, err)
		}
		defer w.Stop()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "docextract-site %s serving at http://localhost:%d\n", Version, cfg.Server.Port)
	if cfg.Demo.Endpoint == "" {
		fmt.Fprintln(os.Stderr, "  Live demo: no parse endpoint configured")
	} else {
		fmt.Fprintf(os.Stderr, "  Live demo: forwarding to %s\n", cfg.Demo.Endpoint)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
