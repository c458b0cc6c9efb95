// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/manypaintings/internal/catalog"
	"github.com/tomtom215/manypaintings/internal/config"
	"github.com/tomtom215/manypaintings/internal/signal"
	"github.com/tomtom215/manypaintings/internal/store"
	"github.com/tomtom215/manypaintings/internal/web"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Handler holds every dependency the HTTP layer needs. All fields are
// injected; nothing here reaches for package-level state.
type Handler struct {
	cfg        *config.Manager
	images     *catalog.Manager
	favorites  *store.Favorites
	settings   *store.Settings
	loadFav    *store.LoadFavorite
	signals    *signal.Hub
	heartbeats *signal.Heartbeats
	renderer   *web.Renderer
	startTime  time.Time
}

// NewHandler wires the handler from its dependencies.
func NewHandler(
	cfg *config.Manager,
	images *catalog.Manager,
	favorites *store.Favorites,
	settings *store.Settings,
	loadFav *store.LoadFavorite,
	signals *signal.Hub,
	heartbeats *signal.Heartbeats,
	renderer *web.Renderer,
) *Handler {
	return &Handler{
		cfg:        cfg,
		images:     images,
		favorites:  favorites,
		settings:   settings,
		loadFav:    loadFav,
		signals:    signals,
		heartbeats: heartbeats,
		renderer:   renderer,
		startTime:  time.Now().UTC(),
	}
}
