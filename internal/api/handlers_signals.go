// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/manypaintings/internal/logging"
	"github.com/tomtom215/manypaintings/internal/signal"
)

// SaveCurrentFavorite asks the display to capture and save its current
// painting state. The remote cannot see the canvas, so the display does
// the actual save when it next polls.
func (h *Handler) SaveCurrentFavorite(w http.ResponseWriter, r *http.Request) {
	h.signals.Signal(signal.KindSaveFavorite, nil)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// PlayPause asks the display to toggle playback.
func (h *Handler) PlayPause(w http.ResponseWriter, r *http.Request) {
	h.signals.Signal(signal.KindPlayPause, nil)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// checkSignal answers a display poll for one signal kind. Delivery is
// at most once: the first poll after a signal sees it, later polls do not.
func (h *Handler) checkSignal(w http.ResponseWriter, kind signal.Kind) {
	payload, ok, raisedAt := h.signals.Poll(kind)
	resp := map[string]any{"has_request": ok}
	if ok {
		resp["timestamp"] = raisedAt.Format(time.RFC3339Nano)
		for k, v := range payload {
			resp[k] = v
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// CheckSaveFavorite polls for a pending save-favorite signal.
func (h *Handler) CheckSaveFavorite(w http.ResponseWriter, r *http.Request) {
	h.checkSignal(w, signal.KindSaveFavorite)
}

// CheckPlayPause polls for a pending play-pause signal.
func (h *Handler) CheckPlayPause(w http.ResponseWriter, r *http.Request) {
	h.checkSignal(w, signal.KindPlayPause)
}

// CheckRefreshImages polls for a pending catalog refresh signal.
func (h *Handler) CheckRefreshImages(w http.ResponseWriter, r *http.Request) {
	h.checkSignal(w, signal.KindRefreshImages)
}

// LoadFavoriteRequest queues a favorite to be applied by the display. The
// request is persisted so it survives a server restart, matching the other
// shared state.
func (h *Handler) LoadFavoriteRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.favorites.Get(id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	if err := h.loadFav.Set(id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("id", id).Msg("Load favorite requested")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// CheckLoadFavorite polls for a pending load-favorite request.
func (h *Handler) CheckLoadFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok, err := h.loadFav.Take()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	resp := map[string]any{"has_request": ok}
	if ok {
		resp["favorite_id"] = id
	}
	writeJSON(w, http.StatusOK, resp)
}

type heartbeatRequest struct {
	RemoteID string `json:"remote_id" validate:"required"`
}

// RemoteHeartbeat records that a remote control is alive.
func (h *Handler) RemoteHeartbeat(w http.ResponseWriter, r *http.Request) {
	var req heartbeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing remote_id")
		return
	}
	h.heartbeats.Beat(req.RemoteID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// RemoteStatus reports which remotes have sent a heartbeat recently.
func (h *Handler) RemoteStatus(w http.ResponseWriter, r *http.Request) {
	active, last := h.heartbeats.Status()
	heartbeats := make(map[string]string, len(last))
	for id, at := range last {
		heartbeats[id] = at.Format(time.RFC3339Nano)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"active_remotes":  active,
		"last_heartbeats": heartbeats,
	})
}
