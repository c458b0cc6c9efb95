// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package main is the entry point for the ManyPaintings server.
//
// ManyPaintings is a generative art installation inspired by Brian Eno's
// "77 Million Paintings": a display endlessly layers and fades paintings
// following a deterministic pattern, while phones on the same network act
// as remote controls.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: config.json with named environments, plus env overrides (Koanf v2)
//  2. Logging: zerolog, structured, level and format from config
//  3. Stores: JSON-file persistence for favorites, settings, and load requests
//  4. Catalog: image directory scanner with sidecar config support
//  5. Signals: in-memory hub for remote-to-display requests
//  6. HTTP Server: pages, JSON API, Prometheus metrics, static files
//
// All HTTP serving runs under a Suture supervisor tree so a crashed
// component restarts with backoff instead of ending the installation.
//
// # Configuration
//
// The config file is searched at config.json and /etc/manypaintings/config.json,
// or set explicitly with CONFIG_PATH. FLASK_CONFIG selects the named
// environment inside the file (development, production, raspberry_pi, ...);
// the legacy variable names are kept so existing launcher scripts work.
// FLASK_HOST, FLASK_PORT, LOG_LEVEL, and LOG_FORMAT override individual keys.
//
// Edits to the config file are picked up on the next page load; no restart
// is needed to retune animation parameters.
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections and drains in-flight requests with a 10s timeout.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/tomtom215/manypaintings/internal/api"
	"github.com/tomtom215/manypaintings/internal/catalog"
	"github.com/tomtom215/manypaintings/internal/config"
	"github.com/tomtom215/manypaintings/internal/logging"
	"github.com/tomtom215/manypaintings/internal/signal"
	"github.com/tomtom215/manypaintings/internal/store"
	"github.com/tomtom215/manypaintings/internal/supervisor"
	"github.com/tomtom215/manypaintings/internal/web"
)

func main() {
	configPath := config.FindConfigFile()
	if configPath == "" {
		logging.Fatal().Msg("No config file found")
	}
	environment := config.EnvironmentName()

	cfgMgr, err := config.NewManager(configPath, environment)
	if err != nil {
		logging.Fatal().Err(err).Str("path", configPath).Msg("Failed to load configuration")
	}
	cfg := cfgMgr.Current()

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("config", configPath).
		Str("environment", environment).
		Str("image_directory", cfg.Application.ImageDirectory).
		Str("data_directory", cfg.Application.DataDirectory).
		Msg("Starting ManyPaintings")

	if err := os.MkdirAll(cfg.Application.DataDirectory, 0o755); err != nil {
		logging.Fatal().Err(err).Msg("Failed to create data directory")
	}
	if err := os.MkdirAll(cfg.Application.ImageDirectory, 0o755); err != nil {
		logging.Fatal().Err(err).Msg("Failed to create image directory")
	}

	dataDir := cfg.Application.DataDirectory
	favorites := store.NewFavorites(filepath.Join(dataDir, "favorites.json"))
	settings := store.NewSettings(filepath.Join(dataDir, "settings.json"))
	loadFav := store.NewLoadFavorite(filepath.Join(dataDir, "load_favorite.json"))

	images := catalog.NewManager(cfg.Application.ImageDirectory, "/static/images")
	signals := signal.NewHub()
	heartbeats := signal.NewHeartbeats(signal.DefaultHeartbeatTTL)

	renderer, err := web.NewRenderer()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse templates")
	}

	handler := api.NewHandler(cfgMgr, images, favorites, settings, loadFav, signals, heartbeats, renderer)
	router := api.NewRouter(handler, api.DefaultRouterConfig())

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Flask.Host, cfg.Flask.Port),
		Handler:      router.Setup(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(supervisor.NewHTTPServerService(server, config.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
}
