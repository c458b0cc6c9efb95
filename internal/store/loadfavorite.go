// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package store

import (
	"os"
	"sync"
	"time"
)

// loadRequest is the load_favorite.json document: a one-shot request from
// the remote asking the main display to restore a saved favorite. Unlike the
// in-memory signals it is persisted, so a display restart still picks up a
// pending load.
type loadRequest struct {
	FavoriteID string    `json:"favorite_id"`
	Timestamp  time.Time `json:"timestamp"`
	Processed  bool      `json:"processed"`
}

// LoadFavorite is the load_favorite.json store.
type LoadFavorite struct {
	path string
	mu   sync.Mutex
}

// NewLoadFavorite creates a store backed by the given file path.
func NewLoadFavorite(path string) *LoadFavorite {
	return &LoadFavorite{path: path}
}

// Set records a pending load request for the given favorite id, replacing
// any unprocessed one.
func (l *LoadFavorite) Set(favoriteID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	req := loadRequest{
		FavoriteID: favoriteID,
		Timestamp:  time.Now().UTC(),
		Processed:  false,
	}
	return writeJSONFile("load_favorite", l.path, req)
}

// Take returns the pending favorite id and marks it processed. The second
// return is false when there is no pending request. Delivery is at most
// once: the first poller wins.
func (l *LoadFavorite) Take() (string, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var req loadRequest
	if err := readJSONFile(l.path, &req); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	if req.Processed || req.FavoriteID == "" {
		return "", false, nil
	}

	req.Processed = true
	if err := writeJSONFile("load_favorite", l.path, req); err != nil {
		return "", false, err
	}
	return req.FavoriteID, true, nil
}
