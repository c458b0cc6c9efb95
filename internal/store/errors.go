// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package store implements the JSON-file-backed persistence used by the
// server: favorites.json, settings.json and load_favorite.json.
//
// Every store follows the same model: the whole file is read, mutated in
// memory, and rewritten. That is the on-disk contract inherited from the
// original deployment (the files are hand-editable and shared with external
// tooling), so no embedded KV store is used. Two hardenings close the known
// races without changing the format: each store serializes its own access
// with a mutex, and writes go to a temp file renamed over the target so a
// crash mid-write cannot leave a torn JSON document.
package store

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned for structurally invalid input (empty update
// payloads, favorites without layers). Route handlers map it to 400.
var ErrValidation = errors.New("validation failed")
