// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/manypaintings/internal/logging"
)

// ErrUnsupportedType is returned for uploads whose extension is not in the
// supported set.
var ErrUnsupportedType = errors.New("unsupported image type")

// ErrImageNotFound is returned when deleting a file that is not in the
// image directory.
var ErrImageNotFound = errors.New("image not found")

// Manager adds file management (upload, delete) on top of the scanner.
type Manager struct {
	*Scanner
}

// NewManager creates a catalog manager over the given directory.
func NewManager(dir, baseURL string) *Manager {
	return &Manager{Scanner: NewScanner(dir, baseURL)}
}

// SaveUpload writes an uploaded image into the directory and returns its
// catalog record. The filename is reduced to its base name so a crafted
// multipart filename cannot escape the image directory. An existing file of
// the same name is overwritten, matching the behavior of copying into the
// directory by hand.
func (m *Manager) SaveUpload(filename string, r io.Reader) (Image, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return Image{}, fmt.Errorf("%w: empty filename", ErrUnsupportedType)
	}
	if !supportedExtensions[strings.ToLower(filepath.Ext(name))] {
		return Image{}, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(name))
	}

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Image{}, fmt.Errorf("creating image directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(m.dir, name))
	if err != nil {
		return Image{}, fmt.Errorf("creating image file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return Image{}, fmt.Errorf("writing image file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return Image{}, fmt.Errorf("closing image file: %w", err)
	}

	logging.Info().Str("file", name).Msg("Image uploaded")
	return m.imageInfo(name)
}

// Delete removes an image and its sidecar config, if any.
func (m *Manager) Delete(filename string) error {
	name := filepath.Base(filename)
	path := filepath.Join(m.dir, name)

	if !supportedExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrImageNotFound
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrImageNotFound
		}
		return fmt.Errorf("stat %s: %w", name, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", name, err)
	}

	// Sidecar removal is best-effort; a stale sidecar is harmless.
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	_ = os.Remove(filepath.Join(m.dir, stem+".json"))

	logging.Info().Str("file", name).Msg("Image deleted")
	return nil
}
