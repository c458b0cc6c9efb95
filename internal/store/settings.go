// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package store

import (
	"fmt"
	"os"
	"sync"
)

// galleryKey is the one sub-object that merges key-by-key on update, so a
// remote can adjust gallery.brightness without clobbering gallery.contrast.
// Every other top-level key is replaced wholesale.
const galleryKey = "gallery"

// Settings is the settings.json store: a single shared JSON object holding
// the display state mirrored between the main display and the remote.
//
// Values are persisted verbatim, with no server-side range validation; the
// remote's sliders are the only thing constraining them. Last write wins.
type Settings struct {
	path string
	mu   sync.Mutex
}

// NewSettings creates a store backed by the given file path.
func NewSettings(path string) *Settings {
	return &Settings{path: path}
}

// DefaultSettings returns the hard-coded defaults written on first access.
func DefaultSettings() map[string]any {
	return map[string]any{
		"speed":             1.0,
		"maxLayers":         4,
		"volume":            0.5,
		"isWhiteBackground": false,
		"isPlaying":         true,
		galleryKey: map[string]any{
			"brightness":       100,
			"contrast":         100,
			"saturation":       100,
			"whiteBalance":     100,
			"textureIntensity": 0,
		},
	}
}

// Get returns the current settings, creating the file with defaults if it
// does not exist yet.
func (s *Settings) Get() (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInit()
}

// Update merges the partial payload into the current settings and persists
// the result. Top-level keys are shallow-merged (replaced wholesale) except
// for the gallery sub-object, which merges key-by-key. An empty payload is a
// validation error.
func (s *Settings) Update(partial map[string]any) (map[string]any, error) {
	if len(partial) == 0 {
		return nil, fmt.Errorf("%w: empty settings update", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.loadOrInit()
	if err != nil {
		return nil, err
	}

	for k, v := range partial {
		if k == galleryKey {
			if merged, ok := mergeGallery(current[k], v); ok {
				current[k] = merged
				continue
			}
		}
		current[k] = v
	}

	if err := writeJSONFile("settings", s.path, current); err != nil {
		return nil, err
	}
	return current, nil
}

// mergeGallery merges the gallery update into the existing gallery object.
// Falls back to wholesale replacement when either side is not an object.
func mergeGallery(existing, update any) (map[string]any, bool) {
	existingMap, ok1 := existing.(map[string]any)
	updateMap, ok2 := update.(map[string]any)
	if !ok1 || !ok2 {
		return nil, false
	}

	merged := make(map[string]any, len(existingMap)+len(updateMap))
	for k, v := range existingMap {
		merged[k] = v
	}
	for k, v := range updateMap {
		merged[k] = v
	}
	return merged, true
}

// loadOrInit reads the settings object, writing defaults on first access.
// Caller must hold s.mu.
func (s *Settings) loadOrInit() (map[string]any, error) {
	settings := make(map[string]any)
	err := readJSONFile(s.path, &settings)
	if err == nil {
		return settings, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	settings = DefaultSettings()
	if err := writeJSONFile("settings", s.path, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
