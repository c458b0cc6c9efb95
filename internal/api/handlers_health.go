// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"net/http"
	"time"
)

// Health reports liveness plus the active environment name, so a glance at
// the endpoint tells you which config tier a box is running.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"config":         h.cfg.Environment(),
		"uptime_seconds": int(time.Since(h.startTime).Seconds()),
	})
}

// Config returns the current merged configuration. The display's animation
// engine bootstraps from this on load, so it sees the same snapshot the
// server rendered the page with.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg.Current()
	if cfg.Application.EnableCaching {
		setCacheHeader(w, cfg.Application.CacheMaxAge)
	}
	writeJSON(w, http.StatusOK, cfg)
}
