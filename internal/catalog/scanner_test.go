// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package catalog

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a real decodable PNG of the given size.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestScanNonExistentDirectory(t *testing.T) {
	s := NewScanner(filepath.Join(t.TempDir(), "missing"), "/static/images")

	cat, err := s.Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if cat.TotalCount != 0 || len(cat.Images) != 0 {
		t.Errorf("expected empty catalog, got %d images", cat.TotalCount)
	}
	if cat.Images == nil {
		t.Error("Images should be an empty slice, not nil, for JSON shape stability")
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "zebra.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "apple.png"), 8, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	cat, err := NewScanner(dir, "/static/images").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if cat.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", cat.TotalCount)
	}
	if cat.Images[0].Filename != "apple.png" || cat.Images[1].Filename != "zebra.png" {
		t.Errorf("catalog not sorted by filename: %s, %s", cat.Images[0].Filename, cat.Images[1].Filename)
	}
}

func TestScanImageMetadata(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 12, 34)

	cat, err := NewScanner(dir, "/static/images").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(cat.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(cat.Images))
	}

	img := cat.Images[0]
	// Golden id: first 8 hex chars of md5("a.png").
	if img.ID != "32d3ca5e" {
		t.Errorf("ID = %q, want 32d3ca5e", img.ID)
	}
	if img.URL != "/static/images/a.png" {
		t.Errorf("URL = %q", img.URL)
	}
	if img.Width == nil || *img.Width != 12 || img.Height == nil || *img.Height != 34 {
		t.Errorf("dimensions = %v x %v, want 12 x 34", img.Width, img.Height)
	}
	if img.Size <= 0 {
		t.Errorf("Size = %d, want > 0", img.Size)
	}
	if img.Modified == 0 {
		t.Error("Modified should be set")
	}
}

// TestScanUndecodableImageKept verifies the lenient behavior: a file with an
// image extension but undecodable content stays in the catalog with null
// dimensions.
func TestScanUndecodableImageKept(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.jpg"), []byte("definitely not a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := NewScanner(dir, "/static/images").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(cat.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(cat.Images))
	}
	if cat.Images[0].Width != nil || cat.Images[0].Height != nil {
		t.Errorf("undecodable image should have null dimensions, got %v x %v",
			cat.Images[0].Width, cat.Images[0].Height)
	}
}

func TestScanSidecarConfig(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	writePNG(t, filepath.Join(dir, "b.png"), 4, 4)
	sidecar := `{"animation_timing": {"fade_in_seconds": 30}, "weight": 2}`
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(sidecar), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := NewScanner(dir, "/static/images").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	// Sidecar .json files themselves must not appear as catalog entries.
	if cat.TotalCount != 2 {
		t.Fatalf("TotalCount = %d, want 2", cat.TotalCount)
	}

	a := cat.Images[0]
	if a.Config == nil {
		t.Fatal("a.png should carry its sidecar config")
	}
	if a.Config["weight"] != float64(2) {
		t.Errorf("Config[weight] = %v, want 2", a.Config["weight"])
	}

	// Malformed sidecar is ignored, not fatal.
	if cat.Images[1].Config != nil {
		t.Error("b.png should have no config (sidecar malformed)")
	}
}

func TestImageIDStable(t *testing.T) {
	if ImageID("a.png") != ImageID("a.png") {
		t.Error("ImageID not deterministic")
	}
	if ImageID("a.png") == ImageID("b.png") {
		t.Error("distinct filenames should get distinct ids")
	}
	if len(ImageID("anything.webp")) != 8 {
		t.Errorf("id length = %d, want 8", len(ImageID("anything.webp")))
	}
}
