// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package catalog scans the image directory and builds the image catalog
// served by /api/images.
//
// The catalog is recomputed on every request rather than persisted: the
// directory is the source of truth, and kiosk deployments swap images by
// copying files in and out of it. Image ids are derived from the filename
// alone (first 8 hex chars of the MD5 of the name), so renaming a file
// changes its id while re-encoding its content does not.
package catalog

import (
	"crypto/md5" //nolint:gosec // non-cryptographic use: stable filename ids
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	// Registered decoders for dimension probing. Stdlib covers png/jpeg/gif;
	// webp has no stdlib decoder so golang.org/x/image provides it.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/goccy/go-json"
	_ "golang.org/x/image/webp"

	"github.com/tomtom215/manypaintings/internal/logging"
	"github.com/tomtom215/manypaintings/internal/metrics"
)

// supportedExtensions are the image file extensions included in the catalog,
// matched case-insensitively against the filename extension.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// SupportedFormats returns the supported extensions without the leading dot,
// in stable order, for inclusion in catalog responses.
func SupportedFormats() []string {
	formats := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		formats = append(formats, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(formats)
	return formats
}

// Image is a single catalog entry.
//
// Width and Height are pointers because an undecodable file is still listed,
// just with null dimensions; the frontend sizes those layers from the loaded
// element instead.
type Image struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Width    *int   `json:"width"`
	Height   *int   `json:"height"`
	Modified int64  `json:"modified"`

	// Config is the per-image override object from the sidecar
	// <stem>.json file, if one exists. Attached verbatim; merging with
	// the application config is the API layer's concern.
	Config map[string]any `json:"config,omitempty"`
}

// Catalog is the full scan result served by /api/images.
type Catalog struct {
	Images           []Image  `json:"images"`
	TotalCount       int      `json:"total_count"`
	SupportedFormats []string `json:"supported_formats"`
	Directory        string   `json:"directory"`
}

// ImageIDs returns the catalog's image ids in catalog (filename) order.
// Pattern generation sorts ids itself, so callers need not.
func (c *Catalog) ImageIDs() []string {
	ids := make([]string, len(c.Images))
	for i := range c.Images {
		ids[i] = c.Images[i].ID
	}
	return ids
}

// Scanner lists and describes the images in a directory.
type Scanner struct {
	dir     string
	baseURL string
}

// NewScanner creates a scanner over the given directory. Served image URLs
// are formed as baseURL + "/" + filename.
func NewScanner(dir, baseURL string) *Scanner {
	return &Scanner{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Dir returns the scanned directory.
func (s *Scanner) Dir() string {
	return s.dir
}

// Scan builds the catalog. A non-existent directory yields an empty catalog,
// not an error: a fresh install has no images yet.
func (s *Scanner) Scan() (*Catalog, error) {
	start := time.Now()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return s.emptyCatalog(), nil
		}
		return nil, fmt.Errorf("reading image directory %s: %w", s.dir, err)
	}

	images := make([]Image, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		img, err := s.imageInfo(entry.Name())
		if err != nil {
			logging.Warn().Err(err).Str("file", entry.Name()).Msg("Skipping unreadable image")
			continue
		}
		images = append(images, img)
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].Filename < images[j].Filename
	})

	metrics.RecordCatalogScan(len(images), time.Since(start))

	return &Catalog{
		Images:           images,
		TotalCount:       len(images),
		SupportedFormats: SupportedFormats(),
		Directory:        s.dir,
	}, nil
}

func (s *Scanner) emptyCatalog() *Catalog {
	return &Catalog{
		Images:           []Image{},
		TotalCount:       0,
		SupportedFormats: SupportedFormats(),
		Directory:        s.dir,
	}
}

// imageInfo builds the catalog entry for one file.
func (s *Scanner) imageInfo(name string) (Image, error) {
	path := filepath.Join(s.dir, name)

	stat, err := os.Stat(path)
	if err != nil {
		return Image{}, fmt.Errorf("stat %s: %w", name, err)
	}

	img := Image{
		ID:       ImageID(name),
		Filename: name,
		URL:      s.baseURL + "/" + name,
		Size:     stat.Size(),
		Modified: stat.ModTime().Unix(),
	}

	// Decode failure is not fatal: the record is kept with null dimensions.
	if w, h, err := decodeDimensions(path); err == nil {
		img.Width = &w
		img.Height = &h
	}

	if cfg := s.sidecarConfig(name); cfg != nil {
		img.Config = cfg
	}

	return img, nil
}

// sidecarConfig loads the per-image override from <stem>.json if present and
// valid. A malformed sidecar is logged and ignored rather than failing the
// whole catalog.
func (s *Scanner) sidecarConfig(name string) map[string]any {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	path := filepath.Join(s.dir, stem+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg map[string]any
	if err := json.Unmarshal(data, &cfg); err != nil {
		logging.Warn().Err(err).Str("file", stem+".json").Msg("Ignoring malformed per-image config")
		return nil
	}
	return cfg
}

// decodeDimensions reads just enough of the file to extract its dimensions.
func decodeDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// ImageID derives the stable catalog id for a filename: the first 8 hex
// characters of the MD5 digest of the name. Content-independent by design
// of the original catalog format.
func ImageID(filename string) string {
	sum := md5.Sum([]byte(filename)) //nolint:gosec // stable id derivation only
	return hex.EncodeToString(sum[:])[:8]
}
