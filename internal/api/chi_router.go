// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/manypaintings/internal/middleware"
	"github.com/tomtom215/manypaintings/internal/web"
)

// RouterConfig tunes the cross-cutting HTTP behavior.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
}

// DefaultRouterConfig allows any origin, because the remote control is
// expected to be opened from phones on the local network with no fixed
// hostname. Polling endpoints are hit every couple of seconds per client,
// so the rate limit is sized for a handful of displays plus remotes.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		CORSAllowedOrigins: []string{"*"},
		RateLimitRequests:  600,
		RateLimitWindow:    time.Minute,
	}
}

// Router assembles the HTTP handler tree.
type Router struct {
	handler *Handler
	config  RouterConfig
}

// NewRouter creates a Router around the given handler set.
func NewRouter(handler *Handler, config RouterConfig) *Router {
	return &Router{handler: handler, config: config}
}

// Setup builds the full route tree with the middleware stack applied.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))

	// Pages and static assets.
	r.Get("/", router.handler.Index)
	r.Get("/kiosk", router.handler.Kiosk)
	r.Get("/remote", router.handler.Remote)
	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/js/*", http.StripPrefix("/static/", http.FileServerFS(web.StaticFS())))
	r.Get("/static/images/*", router.handler.ServeImage)

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.Limit(
			router.config.RateLimitRequests,
			router.config.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/images", router.handler.Images)
		r.Post("/images/upload", router.handler.UploadImage)
		r.Delete("/images/{filename}", router.handler.DeleteImage)

		r.Get("/pattern/{seed}", router.handler.Pattern)
		r.Get("/config", router.handler.Config)

		r.Post("/favorites", router.handler.CreateFavorite)
		r.Get("/favorites", router.handler.ListFavorites)
		r.Get("/favorites/{id}", router.handler.GetFavorite)
		r.Delete("/favorites/{id}", router.handler.DeleteFavorite)

		r.Get("/settings", router.handler.GetSettings)
		r.Post("/settings", router.handler.UpdateSettings)
		r.Post("/new-pattern", router.handler.NewPattern)

		r.Post("/save-current-favorite", router.handler.SaveCurrentFavorite)
		r.Get("/check-save-favorite", router.handler.CheckSaveFavorite)
		r.Post("/play-pause", router.handler.PlayPause)
		r.Get("/check-play-pause", router.handler.CheckPlayPause)
		r.Get("/check-refresh-images", router.handler.CheckRefreshImages)

		r.Post("/load-favorite/{id}", router.handler.LoadFavoriteRequest)
		r.Get("/check-load-favorite", router.handler.CheckLoadFavorite)

		r.Post("/remote-heartbeat", router.handler.RemoteHeartbeat)
		r.Get("/remote-status", router.handler.RemoteStatus)
	})

	return r
}
