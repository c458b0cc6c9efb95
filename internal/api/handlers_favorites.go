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
	"github.com/tomtom215/manypaintings/internal/store"
)

type createFavoriteRequest struct {
	State     store.FavoriteState `json:"state" validate:"required"`
	Thumbnail string              `json:"thumbnail"`
}

// CreateFavorite saves a painting state snapshot and returns its id.
func (h *Handler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req createFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing state")
		return
	}

	fav, err := h.favorites.Create(req.State, req.Thumbnail)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("id", fav.ID).
		Int("layers", len(fav.State.Layers)).
		Msg("Favorite saved")
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"id":         fav.ID,
		"created_at": fav.CreatedAt.Format(time.RFC3339),
	})
}

// ListFavorites returns favorite summaries, newest first.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.favorites.List()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetFavorite returns one favorite with its full layer state.
func (h *Handler) GetFavorite(w http.ResponseWriter, r *http.Request) {
	fav, err := h.favorites.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fav)
}

// DeleteFavorite removes one favorite.
func (h *Handler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.favorites.Delete(id); err != nil {
		respondStoreError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Str("id", id).Msg("Favorite deleted")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
