// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/manypaintings/internal/pattern"
)

// Pattern generates the deterministic image sequence for a seed. The same
// seed over the same image set always yields the same sequence, whatever
// order the filesystem listed the files in.
func (h *Handler) Pattern(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")

	length := pattern.DefaultLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "Invalid length")
			return
		}
		length = n
	}

	cat, err := h.images.Scan()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	seq, err := pattern.Generate(seed, cat.ImageIDs(), length)
	if err != nil {
		if errors.Is(err, pattern.ErrNoImages) {
			respondError(w, http.StatusBadRequest, "No images available")
			return
		}
		respondStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pattern":      seq,
		"seed":         seed,
		"length":       len(seq),
		"total_images": cat.TotalCount,
	})
}
