// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/manypaintings/internal/catalog"
	"github.com/tomtom215/manypaintings/internal/logging"
	"github.com/tomtom215/manypaintings/internal/signal"
)

// maxUploadBytes bounds a single image upload.
const maxUploadBytes = 50 << 20

func setCacheHeader(w http.ResponseWriter, maxAge int) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
}

// Images scans the image directory and returns the catalog. Per-image
// sidecar config arrives from the scanner verbatim; here it is merged over
// the animation-relevant sections of the server config so clients receive
// one resolved config per image instead of re-implementing the merge.
func (h *Handler) Images(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg.Current()
	cat, err := h.images.Scan()
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	base := animationDefaults(cfg)
	for i := range cat.Images {
		if cat.Images[i].Config != nil {
			cat.Images[i].Config = catalog.DeepMerge(base, cat.Images[i].Config)
		}
	}

	if cfg.Application.EnableCaching {
		setCacheHeader(w, cfg.Application.CacheMaxAge)
	}
	writeJSON(w, http.StatusOK, cat)
}

// animationDefaults flattens the sections a sidecar file may override into
// a plain map, so sidecar values win key-by-key over the server config.
func animationDefaults(cfg any) map[string]any {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return map[string]any{}
	}
	var full map[string]any
	if err := json.Unmarshal(raw, &full); err != nil {
		return map[string]any{}
	}
	base := make(map[string]any, 4)
	for _, section := range []string{"animation_timing", "layer_management", "transformations", "color_remapping"} {
		if v, ok := full[section]; ok {
			base[section] = v
		}
	}
	return base
}

// UploadImage accepts a multipart upload under the "image" field and saves
// it into the image directory, then signals displays to refresh.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	img, err := h.images.SaveUpload(header.Filename, file)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	h.signals.Signal(signal.KindRefreshImages, nil)
	logging.Ctx(r.Context()).Info().Str("filename", img.Filename).Msg("Image uploaded")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"image":   img,
	})
}

// DeleteImage removes an image and its sidecar config, then signals
// displays to refresh.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := h.images.Delete(filename); err != nil {
		respondStoreError(w, r, err)
		return
	}

	h.signals.Signal(signal.KindRefreshImages, nil)
	logging.Ctx(r.Context()).Info().Str("filename", filename).Msg("Image deleted")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
