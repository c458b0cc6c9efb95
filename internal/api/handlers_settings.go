// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/manypaintings/internal/logging"
)

// GetSettings returns the shared playback settings, creating the defaults
// file on first access.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings merges a partial settings document into the stored one
// and returns the full merged result.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	merged, err := h.settings.Update(partial)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().Int("keys", len(partial)).Msg("Settings updated")
	writeJSON(w, http.StatusOK, merged)
}

// NewPattern asks displays to start a fresh pattern. The request rides on
// the settings document as a timestamp so every display, including ones
// that connect later, sees the most recent request.
func (h *Handler) NewPattern(w http.ResponseWriter, r *http.Request) {
	_, err := h.settings.Update(map[string]any{
		"newPatternRequest": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
