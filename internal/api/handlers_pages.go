// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/tomtom215/manypaintings/internal/logging"
)

// renderPage reloads the config if the file changed, then renders the named
// template. Reload happens only on page loads so API polling never pays the
// stat cost and a half-edited config file cannot break a running display.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name, title string) {
	if reloaded, err := h.cfg.CheckAndReload(); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Config reload failed, keeping previous config")
	} else if reloaded {
		logging.Ctx(r.Context()).Info().Str("path", h.cfg.Path()).Msg("Config reloaded")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, title, h.cfg.Environment(), h.cfg.Current()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("Template render failed")
	}
}

// Index serves the main display page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index.html", "ManyPaintings")
}

// Kiosk serves the fullscreen display variant.
func (h *Handler) Kiosk(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "kiosk.html", "ManyPaintings - Kiosk")
}

// Remote serves the remote control page.
func (h *Handler) Remote(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "remote.html", "ManyPaintings Remote")
}

// ServeImage serves a raw image file from the configured image directory.
// The directory is read from the current config snapshot on every request
// so a hot reload that moves the directory takes effect immediately.
func (h *Handler) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/static/images/")
	name = filepath.Base(name)
	if name == "" || name == "." || name == ".." {
		respondError(w, http.StatusNotFound, "Image not found")
		return
	}
	cfg := h.cfg.Current()
	if cfg.Application.EnableCaching {
		setCacheHeader(w, cfg.Application.CacheMaxAge)
	}
	http.ServeFile(w, r, filepath.Join(cfg.Application.ImageDirectory, name))
}
