package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/stateboard/stateboard"
	"github.com/stateboard/stateboard/internal/config"
	"github.com/stateboard/stateboard/internal/logging"
	httpadapter "github.com/stateboard/stateboard/pkg/adapters/http"
	"github.com/stateboard/stateboard/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the application machine behind the JSON API, backed by the configured store.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("listen") {
			cfg.Listen, _ = cmd.Flags().GetString("listen")
		}

		logger := buildLogger(cfg.Log)

		users, tasks, closeStores, err := openStores(cfg)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer closeStores()

		svc, err := stateboard.New(
			stateboard.WithLogger(logger),
			stateboard.WithMirror(mirrorMode(cfg.Mirror)),
		)
		if err != nil {
			fmt.Printf("Error building service: %v\n", err)
			os.Exit(1)
		}

		registry := prometheus.NewRegistry()
		svc.Subscribe(observability.NewMetrics(registry).Observer())
		svc.Subscribe(observability.NewTransitionLogger(logger))
		svc.Start()

		handler := httpadapter.NewHandler(svc, users, tasks,
			httpadapter.WithLogger(logger),
			httpadapter.WithMetrics(registry),
		)

		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("server starting", "addr", srv.Addr, "store", cfg.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("force close failed", "err", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func buildLogger(cfg config.Log) *slog.Logger {
	level := logging.ParseLevel(cfg.Level)
	if cfg.Format == "json" {
		return logging.NewJSON(level)
	}
	return logging.New(level)
}

func mirrorMode(mode string) stateboard.MirrorMode {
	switch mode {
	case config.MirrorReplay:
		return stateboard.MirrorReplay
	case config.MirrorResync:
		return stateboard.MirrorResync
	}
	return stateboard.MirrorOff
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":4000", "Address to listen on")
}
