// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies defaultConfig() returns proper defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Flask.Host != "127.0.0.1" {
		t.Errorf("Flask.Host = %q, want 127.0.0.1", cfg.Flask.Host)
	}
	if cfg.Flask.Port != 5000 {
		t.Errorf("Flask.Port = %d, want 5000", cfg.Flask.Port)
	}
	if cfg.Application.ImageDirectory != "static/images" {
		t.Errorf("Application.ImageDirectory = %q", cfg.Application.ImageDirectory)
	}
	if cfg.Application.CacheMaxAge != 3600 {
		t.Errorf("Application.CacheMaxAge = %d, want 3600", cfg.Application.CacheMaxAge)
	}
	if cfg.AnimationTiming.FPS != 30 {
		t.Errorf("AnimationTiming.FPS = %d, want 30", cfg.AnimationTiming.FPS)
	}
	if cfg.LayerManagement.MaxConcurrentImages != 10 {
		t.Errorf("LayerManagement.MaxConcurrentImages = %d, want 10", cfg.LayerManagement.MaxConcurrentImages)
	}
	if cfg.LayerManagement.PreloadBufferSize != 5 {
		t.Errorf("LayerManagement.PreloadBufferSize = %d, want 5", cfg.LayerManagement.PreloadBufferSize)
	}
	if cfg.Application.PatternSeed != "auto" {
		t.Errorf("Application.PatternSeed = %q, want auto", cfg.Application.PatternSeed)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging defaults = %s/%s", cfg.Logging.Level, cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testConfig = `{
  "flask": {"host": "0.0.0.0", "port": 8080},
  "animation_timing": {"fps": 60},
  "environments": {
    "raspberry_pi": {
      "layer_management": {"max_concurrent_images": 8, "preload_buffer_size": 3},
      "animation_timing": {"fps": 24}
    },
    "production": {
      "flask": {"host": "0.0.0.0", "port": 80, "debug": false}
    }
  }
}`

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig), "development")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Flask.Port != 8080 {
		t.Errorf("Flask.Port = %d, want 8080 (file)", cfg.Flask.Port)
	}
	if cfg.AnimationTiming.FPS != 60 {
		t.Errorf("AnimationTiming.FPS = %d, want 60 (file)", cfg.AnimationTiming.FPS)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Application.CacheMaxAge != 3600 {
		t.Errorf("Application.CacheMaxAge = %d, want default 3600", cfg.Application.CacheMaxAge)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig), "raspberry_pi")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LayerManagement.MaxConcurrentImages != 8 {
		t.Errorf("MaxConcurrentImages = %d, want 8 (raspberry_pi)", cfg.LayerManagement.MaxConcurrentImages)
	}
	if cfg.LayerManagement.PreloadBufferSize != 3 {
		t.Errorf("PreloadBufferSize = %d, want 3 (raspberry_pi)", cfg.LayerManagement.PreloadBufferSize)
	}
	// The environment section replaces the base section wholesale.
	if cfg.AnimationTiming.FPS != 24 {
		t.Errorf("FPS = %d, want 24 (raspberry_pi overrides base 60)", cfg.AnimationTiming.FPS)
	}
	// Sections the environment does not mention keep the base values.
	if cfg.Flask.Port != 8080 {
		t.Errorf("Flask.Port = %d, want base 8080", cfg.Flask.Port)
	}
}

func TestLoadUnknownEnvironmentUsesBase(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig), "staging")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Flask.Port != 8080 {
		t.Errorf("Flask.Port = %d, want base 8080", cfg.Flask.Port)
	}
}

func TestLoadEnvVarOverrides(t *testing.T) {
	t.Setenv("FLASK_HOST", "192.168.1.50")
	t.Setenv("FLASK_PORT", "9999")

	cfg, err := Load(writeConfig(t, testConfig), "development")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Flask.Host != "192.168.1.50" {
		t.Errorf("Flask.Host = %q, want env override", cfg.Flask.Host)
	}
	if cfg.Flask.Port != 9999 {
		t.Errorf("Flask.Port = %d, want env override 9999", cfg.Flask.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), "development"); err == nil {
		t.Error("Load(missing file) should fail: serving without config is not allowed")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load(writeConfig(t, "{not json"), "development"); err == nil {
		t.Error("Load(invalid JSON) should fail")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"port out of range", `{"flask": {"port": 99999}}`},
		{"fps zero", `{"animation_timing": {"fps": 0}}`},
		{"bad quality", `{"performance": {"animation_quality": "ultra"}}`},
		{"opacity inverted", `{"layer_management": {"min_opacity": 0.9, "max_opacity": 0.4}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body), "development"); err == nil {
				t.Error("Load() should reject invalid config")
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Chdir(t.TempDir())

	if got := FindConfigFile(); got != "" {
		t.Errorf("FindConfigFile() = %q, want empty when no file exists", got)
	}

	if err := os.WriteFile("config.json", []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := FindConfigFile(); got != "config.json" {
		t.Errorf("FindConfigFile() = %q, want config.json", got)
	}

	t.Setenv(ConfigPathEnvVar, "/opt/manypaintings/config.json")
	if got := FindConfigFile(); got != "/opt/manypaintings/config.json" {
		t.Errorf("FindConfigFile() = %q, want CONFIG_PATH to win", got)
	}
}

func TestEnvironmentName(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, "")
	if got := EnvironmentName(); got != DefaultEnvironment {
		t.Errorf("EnvironmentName() = %q, want %q", got, DefaultEnvironment)
	}
	t.Setenv(EnvironmentEnvVar, "raspberry_pi")
	if got := EnvironmentName(); got != "raspberry_pi" {
		t.Errorf("EnvironmentName() = %q, want raspberry_pi", got)
	}
}
