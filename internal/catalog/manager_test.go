// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package catalog

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/images")

	img, err := m.SaveUpload("new.png", bytes.NewReader(pngBytes(t, 10, 20)))
	if err != nil {
		t.Fatalf("SaveUpload() error = %v", err)
	}
	if img.Filename != "new.png" {
		t.Errorf("Filename = %q", img.Filename)
	}
	if img.Width == nil || *img.Width != 10 {
		t.Errorf("Width = %v, want 10", img.Width)
	}
	if _, err := os.Stat(filepath.Join(dir, "new.png")); err != nil {
		t.Errorf("uploaded file missing: %v", err)
	}
}

// TestSaveUploadSanitizesFilename verifies a path-traversal filename is
// reduced to its base name inside the image directory.
func TestSaveUploadSanitizesFilename(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(filepath.Join(dir, "images"), "/static/images")

	img, err := m.SaveUpload("../../evil.png", bytes.NewReader(pngBytes(t, 2, 2)))
	if err != nil {
		t.Fatalf("SaveUpload() error = %v", err)
	}
	if img.Filename != "evil.png" {
		t.Errorf("Filename = %q, want evil.png", img.Filename)
	}
	if _, err := os.Stat(filepath.Join(dir, "evil.png")); err == nil {
		t.Error("file escaped the image directory")
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "evil.png")); err != nil {
		t.Errorf("file not written inside image directory: %v", err)
	}
}

func TestSaveUploadRejectsUnsupportedType(t *testing.T) {
	m := NewManager(t.TempDir(), "/static/images")

	for _, name := range []string{"doc.pdf", "script.sh", "noext", ""} {
		if _, err := m.SaveUpload(name, bytes.NewReader([]byte("x"))); !errors.Is(err, ErrUnsupportedType) {
			t.Errorf("SaveUpload(%q) error = %v, want ErrUnsupportedType", name, err)
		}
	}
}

func TestDeleteRemovesImageAndSidecar(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, "/static/images")
	writePNG(t, filepath.Join(dir, "a.png"), 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := m.Delete("a.png"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.png")); !os.IsNotExist(err) {
		t.Error("image not removed")
	}
	if _, err := os.Stat(filepath.Join(dir, "a.json")); !os.IsNotExist(err) {
		t.Error("sidecar not removed")
	}
}

func TestDeleteMissingImage(t *testing.T) {
	m := NewManager(t.TempDir(), "/static/images")

	if err := m.Delete("nope.png"); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrImageNotFound", err)
	}
	// Non-image extensions can never be catalog entries.
	if err := m.Delete("favorites.json"); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("Delete(favorites.json) error = %v, want ErrImageNotFound", err)
	}
}
