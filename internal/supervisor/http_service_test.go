// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

package supervisor

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

type mockServer struct {
	serveErr    error
	serveDone   chan struct{}
	shutdownErr error
	shutdowns   int
}

func (m *mockServer) ListenAndServe() error {
	if m.serveDone != nil {
		<-m.serveDone
		return http.ErrServerClosed
	}
	return m.serveErr
}

func (m *mockServer) Shutdown(ctx context.Context) error {
	m.shutdowns++
	if m.serveDone != nil {
		close(m.serveDone)
	}
	return m.shutdownErr
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	srv := &mockServer{serveDone: make(chan struct{})}
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil on graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if srv.shutdowns != 1 {
		t.Errorf("Shutdown called %d times, want 1", srv.shutdowns)
	}
}

func TestHTTPServiceStartupFailure(t *testing.T) {
	bindErr := errors.New("listen tcp :5000: address already in use")
	svc := NewHTTPServerService(&mockServer{serveErr: bindErr}, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, bindErr) {
		t.Errorf("Serve returned %v, want wrapped %v", err, bindErr)
	}
}

func TestHTTPServiceShutdownError(t *testing.T) {
	shutdownErr := errors.New("connections still active")
	srv := &mockServer{serveDone: make(chan struct{}), shutdownErr: shutdownErr}
	svc := NewHTTPServerService(srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Serve(ctx); err == nil || !errors.Is(err, shutdownErr) {
		t.Errorf("Serve returned %v, want wrapped %v", err, shutdownErr)
	}
}
