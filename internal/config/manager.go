// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package config

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/manypaintings/internal/logging"
)

// Manager owns the live configuration and its hot reload.
//
// The current config is an immutable snapshot behind an atomic pointer:
// readers on any goroutine get a coherent document, and a reload swaps the
// whole snapshot rather than mutating it in place. CheckAndReload is invoked
// from the page-rendering routes only, so API responses may serve a stale
// config until the next page load; that window is part of the product's
// documented behavior, not an accident to fix here.
type Manager struct {
	path        string
	environment string

	current atomic.Pointer[Config]

	// mu serializes reload checks; lastMod is guarded by it.
	mu      sync.Mutex
	lastMod time.Time
}

// NewManager loads the initial configuration from path, or fails. The
// process must not start serving without a valid config.
func NewManager(path, environment string) (*Manager, error) {
	cfg, err := Load(path, environment)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	m := &Manager{
		path:        path,
		environment: environment,
		lastMod:     stat.ModTime(),
	}
	m.current.Store(cfg)
	return m, nil
}

// Current returns the live configuration snapshot. The returned value must
// be treated as read-only.
func (m *Manager) Current() *Config {
	return m.current.Load()
}

// Environment returns the environment name the manager was loaded with.
func (m *Manager) Environment() string {
	return m.environment
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return m.path
}

// CheckAndReload compares the config file's modification time against the
// last loaded one and reloads if it changed. Returns whether a reload
// happened. A file that fails to parse or validate leaves the previous
// snapshot in place and returns the error; the next check retries.
func (m *Manager) CheckAndReload() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stat, err := os.Stat(m.path)
	if err != nil {
		return false, fmt.Errorf("stat config file %s: %w", m.path, err)
	}
	if !stat.ModTime().After(m.lastMod) {
		return false, nil
	}

	cfg, err := Load(m.path, m.environment)
	if err != nil {
		return false, fmt.Errorf("reloading config: %w", err)
	}

	m.current.Store(cfg)
	m.lastMod = stat.ModTime()
	logging.Info().Str("path", m.path).Str("environment", m.environment).Msg("Configuration reloaded")
	return true, nil
}
