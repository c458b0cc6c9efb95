// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package store

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// FavoriteState is the saved animation snapshot: the layer stack plus the
// background color. Layers are opaque to the server (the animation engine
// owns their shape), so they are stored and returned byte-for-byte.
type FavoriteState struct {
	Layers          []json.RawMessage `json:"layers"`
	BackgroundColor string            `json:"backgroundColor,omitempty"`
}

// Favorite is a saved snapshot, immutable once created except for deletion.
type Favorite struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	State     FavoriteState `json:"state"`

	// Thumbnail is a base64 data-URI rendering of the snapshot, if the
	// client supplied one.
	Thumbnail string `json:"thumbnail,omitempty"`
}

// FavoriteSummary is the listing shape: everything but the full layer state.
type FavoriteSummary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LayerCount int       `json:"layer_count"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
}

// Favorites is the favorites.json store: a single JSON object mapping
// favorite id to record.
type Favorites struct {
	path string
	mu   sync.Mutex
}

// NewFavorites creates a store backed by the given file path. The file is
// created lazily on first write.
func NewFavorites(path string) *Favorites {
	return &Favorites{path: path}
}

// Create validates and persists a new favorite, returning the stored record.
// A favorite must have at least one layer; this is enforced at creation time
// only, records are not re-validated on read.
func (f *Favorites) Create(state FavoriteState, thumbnail string) (*Favorite, error) {
	if len(state.Layers) == 0 {
		return nil, fmt.Errorf("%w: favorite must have at least one layer", ErrValidation)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return nil, err
	}

	fav := Favorite{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		State:     state,
		Thumbnail: thumbnail,
	}
	all[fav.ID] = fav

	if err := writeJSONFile("favorites", f.path, all); err != nil {
		return nil, err
	}
	return &fav, nil
}

// Get returns the favorite with the given id, or ErrNotFound.
func (f *Favorites) Get(id string) (*Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return nil, err
	}
	fav, ok := all[id]
	if !ok {
		return nil, fmt.Errorf("favorite %s: %w", id, ErrNotFound)
	}
	return &fav, nil
}

// List returns summaries of all favorites, newest first. A missing store
// file is an empty list, not an error.
func (f *Favorites) List() ([]FavoriteSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return nil, err
	}

	out := make([]FavoriteSummary, 0, len(all))
	for _, fav := range all {
		out = append(out, FavoriteSummary{
			ID:         fav.ID,
			CreatedAt:  fav.CreatedAt,
			LayerCount: len(fav.State.Layers),
			Thumbnail:  fav.Thumbnail,
		})
	}
	// Id breaks ties so same-instant creates list in a stable order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes the favorite with the given id, or returns ErrNotFound.
func (f *Favorites) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := all[id]; !ok {
		return fmt.Errorf("favorite %s: %w", id, ErrNotFound)
	}
	delete(all, id)

	return writeJSONFile("favorites", f.path, all)
}

// load reads the whole map, treating a missing file as empty.
// Caller must hold f.mu.
func (f *Favorites) load() (map[string]Favorite, error) {
	all := make(map[string]Favorite)
	if err := readJSONFile(f.path, &all); err != nil {
		if os.IsNotExist(err) {
			return all, nil
		}
		return nil, err
	}
	return all, nil
}
