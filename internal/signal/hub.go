// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package signal implements the remote-to-main control channel: one-shot,
// at-most-once, in-memory flags that the remote page raises and the main
// display discovers by polling.
//
// Each signal kind holds at most one pending request; raising a second
// before the first is polled overwrites it. There is no queueing and no
// expiry, and state does not survive a process restart. This is deliberate:
// the channel carries "do this once, soon" intents (save the current
// painting, toggle playback), where a stale duplicate is worse than a lost
// one. The hub is process-local and therefore a single-process deployment
// constraint; a multi-worker deployment would need this state moved out of
// the process.
package signal

import (
	"sync"
	"time"

	"github.com/tomtom215/manypaintings/internal/metrics"
)

// Kind identifies a signal channel.
type Kind string

// The signal kinds the remote can raise.
const (
	KindSaveFavorite  Kind = "save-favorite"
	KindPlayPause     Kind = "play-pause"
	KindRefreshImages Kind = "refresh-images"
)

// request is one pending signal. Poll flips processed rather than deleting,
// mirroring the Idle (processed=true) -> Pending (processed=false) -> Idle
// state machine of the original protocol.
type request struct {
	timestamp time.Time
	payload   map[string]any
	processed bool
}

// Hub holds the pending signal of each kind behind a single mutex. It is
// constructed once in main and injected into the API handlers.
type Hub struct {
	mu      sync.Mutex
	pending map[Kind]*request
}

// NewHub creates an empty signal hub: every kind starts idle.
func NewHub() *Hub {
	return &Hub{pending: make(map[Kind]*request)}
}

// Signal raises a signal of the given kind, overwriting any unpolled one.
// The payload may be nil for kinds that carry no data.
func (h *Hub) Signal(kind Kind, payload map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.pending[kind] = &request{
		timestamp: time.Now().UTC(),
		payload:   payload,
		processed: false,
	}
	metrics.SignalsProduced.WithLabelValues(string(kind)).Inc()
}

// Poll delivers the pending signal of the given kind, if any. The first
// poller wins; subsequent polls return (nil, false, _) until the next
// Signal. The returned timestamp is when the signal was raised.
func (h *Hub) Poll(kind Kind) (payload map[string]any, ok bool, raisedAt time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	req := h.pending[kind]
	if req == nil || req.processed {
		return nil, false, time.Time{}
	}

	req.processed = true
	metrics.SignalsDelivered.WithLabelValues(string(kind)).Inc()
	return req.payload, true, req.timestamp
}
