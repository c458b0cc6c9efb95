// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package config

import (
	"fmt"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// environmentsKey is the config file section holding per-environment
// override documents.
const environmentsKey = "environments"

// Load loads configuration with layered sources:
//  1. Defaults: built-in values from defaultConfig()
//  2. Config file: required JSON document, with the selected environment's
//     overrides applied
//  3. Environment variables: FLASK_HOST, FLASK_PORT, LOG_LEVEL
//
// The environment override merge is shallow at the section level: a section
// key present in the override replaces the corresponding base key wholesale,
// it does not recurse further. (Missing keys inside a replaced section still
// fall back to the built-in defaults through koanf's key-level layering.)
func Load(path, environment string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct.
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file with environment overrides. The file is
	// mandatory; serving with no config is a startup failure.
	doc, err := loadFileDocument(path, environment)
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(doc, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to merge config file %s: %w", path, err)
	}

	// Layer 3: environment variables (highest priority).
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// loadFileDocument parses the config file and applies the named
// environment's section overrides to the raw document.
func loadFileDocument(path, environment string) (map[string]any, error) {
	fk := koanf.New(".")
	if err := fk.Load(file.Provider(path), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	doc := fk.Raw()

	envs, _ := doc[environmentsKey].(map[string]any)
	delete(doc, environmentsKey)

	if environment != "" {
		if override, ok := envs[environment].(map[string]any); ok {
			// Shallow section-level merge: override replaces the
			// whole base section key.
			for section, value := range override {
				doc[section] = value
			}
		}
	}
	return doc, nil
}

// envTransform maps supported environment variables onto koanf paths.
// Returning "" skips the variable.
func envTransform(key string) string {
	switch strings.ToUpper(key) {
	case "FLASK_HOST":
		return "flask.host"
	case "FLASK_PORT":
		return "flask.port"
	case "LOG_LEVEL":
		return "logging.level"
	case "LOG_FORMAT":
		return "logging.format"
	default:
		return ""
	}
}

// FindConfigFile returns the config file path: CONFIG_PATH if set, else the
// first existing default path, else empty.
func FindConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		return envPath
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// EnvironmentName returns the selected environment name from FLASK_CONFIG,
// falling back to the default.
func EnvironmentName() string {
	if name := os.Getenv(EnvironmentEnvVar); name != "" {
		return name
	}
	return DefaultEnvironment
}
