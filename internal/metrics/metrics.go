// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package metrics provides Prometheus instrumentation for the server:
// HTTP request latency and throughput, JSON store writes, remote-control
// signal traffic, and catalog scans.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "manypaintings_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manypaintings_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "manypaintings_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// JSON store metrics
	StoreWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manypaintings_store_writes_total",
			Help: "Total number of JSON store file writes",
		},
		[]string{"store"},
	)

	StoreWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manypaintings_store_write_errors_total",
			Help: "Total number of failed JSON store file writes",
		},
		[]string{"store"},
	)

	// Remote-control signal metrics
	SignalsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manypaintings_signals_produced_total",
			Help: "Total number of remote-control signals raised",
		},
		[]string{"kind"},
	)

	SignalsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manypaintings_signals_delivered_total",
			Help: "Total number of remote-control signals delivered to a poller",
		},
		[]string{"kind"},
	)

	// Catalog metrics
	CatalogScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "manypaintings_catalog_scan_duration_seconds",
			Help:    "Duration of image directory scans in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogImages = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "manypaintings_catalog_images",
			Help: "Number of images found by the most recent catalog scan",
		},
	)

	// Remote heartbeat metrics
	ActiveRemotes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "manypaintings_active_remotes",
			Help: "Number of remote-control clients with a recent heartbeat",
		},
	)
)

// RecordAPIRequest records metrics for a completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(active bool) {
	if active {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreWrite records a JSON store write, successful or not.
func RecordStoreWrite(store string, err error) {
	StoreWritesTotal.WithLabelValues(store).Inc()
	if err != nil {
		StoreWriteErrors.WithLabelValues(store).Inc()
	}
}

// RecordCatalogScan records the result of an image directory scan.
func RecordCatalogScan(imageCount int, duration time.Duration) {
	CatalogScanDuration.Observe(duration.Seconds())
	CatalogImages.Set(float64(imageCount))
}
