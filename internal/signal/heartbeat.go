// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package signal

import (
	"sync"
	"time"

	"github.com/tomtom215/manypaintings/internal/metrics"
)

// DefaultHeartbeatTTL is how long a remote counts as active after its last
// heartbeat. Remotes beat every few seconds, so 15s tolerates a couple of
// missed polls without flapping.
const DefaultHeartbeatTTL = 15 * time.Second

// Heartbeats tracks which remote-control clients are currently active, for
// the /api/remote-status endpoint.
type Heartbeats struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewHeartbeats creates a registry with the given TTL; ttl <= 0 uses
// DefaultHeartbeatTTL.
func NewHeartbeats(ttl time.Duration) *Heartbeats {
	if ttl <= 0 {
		ttl = DefaultHeartbeatTTL
	}
	return &Heartbeats{
		ttl: ttl,
		m:   make(map[string]time.Time),
		now: time.Now,
	}
}

// Beat records a heartbeat from the given remote id.
func (h *Heartbeats) Beat(remoteID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.m[remoteID] = h.now()
	h.pruneLocked()
}

// Status returns the number of active remotes and their last heartbeat
// times. Expired entries are pruned as a side effect.
func (h *Heartbeats) Status() (active int, last map[string]time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pruneLocked()
	last = make(map[string]time.Time, len(h.m))
	for id, t := range h.m {
		last[id] = t
	}
	return len(h.m), last
}

// pruneLocked drops entries older than the TTL. Caller must hold h.mu.
func (h *Heartbeats) pruneLocked() {
	cutoff := h.now().Add(-h.ttl)
	for id, t := range h.m {
		if t.Before(cutoff) {
			delete(h.m, id)
		}
	}
	metrics.ActiveRemotes.Set(float64(len(h.m)))
}
