// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package api implements the HTTP surface of the server: page rendering,
// the JSON API, and the remote-control polling endpoints.
//
// Response shapes follow the original wire contract exactly: success
// payloads are plain objects (no envelope), and every error is a JSON body
// of the form {"error": "..."}. Both browser clients parse these shapes
// verbatim, so the envelope is part of the product, not a style choice.
package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/manypaintings/internal/catalog"
	"github.com/tomtom215/manypaintings/internal/logging"
	"github.com/tomtom215/manypaintings/internal/store"
)

// errorBody is the error envelope for all failed requests.
type errorBody struct {
	Error string `json:"error"`
}

// writeJSON writes v with the given status. Encoding errors at this point
// can only be logged; the status line is already committed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondError writes the standard error envelope.
func respondError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// respondStoreError maps a store/catalog error onto the right status code.
// Unrecognized errors become a 500 with the error text passed through,
// matching the original's observable behavior.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, catalog.ErrImageNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrValidation), errors.Is(err, catalog.ErrUnsupportedType):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
