// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package config

import (
	"os"
	"testing"
	"time"
)

func TestManagerInitialLoad(t *testing.T) {
	m, err := NewManager(writeConfig(t, testConfig), "development")
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if m.Current().Flask.Port != 8080 {
		t.Errorf("Current().Flask.Port = %d, want 8080", m.Current().Flask.Port)
	}
	if m.Environment() != "development" {
		t.Errorf("Environment() = %q", m.Environment())
	}
}

func TestManagerFailsWithoutConfig(t *testing.T) {
	if _, err := NewManager("/nonexistent/config.json", "development"); err == nil {
		t.Error("NewManager(missing) should fail")
	}
}

func TestManagerNoReloadWhenUnchanged(t *testing.T) {
	m, err := NewManager(writeConfig(t, testConfig), "development")
	if err != nil {
		t.Fatal(err)
	}

	reloaded, err := m.CheckAndReload()
	if err != nil {
		t.Fatalf("CheckAndReload() error = %v", err)
	}
	if reloaded {
		t.Error("CheckAndReload() reloaded an unchanged file")
	}
}

func TestManagerReloadsOnMtimeChange(t *testing.T) {
	path := writeConfig(t, testConfig)
	m, err := NewManager(path, "development")
	if err != nil {
		t.Fatal(err)
	}
	before := m.Current()

	updated := `{"flask": {"host": "0.0.0.0", "port": 7777}}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatal(err)
	}
	// Force a strictly newer mtime; filesystem timestamp granularity can
	// otherwise make the rewrite invisible.
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	reloaded, err := m.CheckAndReload()
	if err != nil {
		t.Fatalf("CheckAndReload() error = %v", err)
	}
	if !reloaded {
		t.Fatal("CheckAndReload() should have reloaded")
	}
	if m.Current().Flask.Port != 7777 {
		t.Errorf("Flask.Port = %d, want 7777 after reload", m.Current().Flask.Port)
	}
	// Snapshot semantics: the old pointer still holds the old document.
	if before.Flask.Port != 8080 {
		t.Errorf("previous snapshot mutated: port = %d", before.Flask.Port)
	}
}

// TestManagerKeepsOldConfigOnBadReload verifies an invalid rewrite does not
// take down the live config.
func TestManagerKeepsOldConfigOnBadReload(t *testing.T) {
	path := writeConfig(t, testConfig)
	m, err := NewManager(path, "development")
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}

	reloaded, err := m.CheckAndReload()
	if err == nil {
		t.Error("CheckAndReload() should report the parse error")
	}
	if reloaded {
		t.Error("CheckAndReload() should not report success for a bad file")
	}
	if m.Current().Flask.Port != 8080 {
		t.Errorf("live config lost after bad reload: port = %d", m.Current().Flask.Port)
	}

	// The bad mtime was not recorded, so a fixed file reloads.
	if err := os.WriteFile(path, []byte(`{"flask": {"host": "h", "port": 6000}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	future = future.Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	reloaded, err = m.CheckAndReload()
	if err != nil || !reloaded {
		t.Errorf("recovery reload = (%v, %v), want (true, nil)", reloaded, err)
	}
}
