// ManyPaintings - Generative Art Slideshow Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/manypaintings

// Package web embeds and renders the HTML pages. Templates are compiled
// once at startup; per-request config is passed in as template data so a
// hot reload is picked up on the next page load without re-parsing.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/goccy/go-json"

	"github.com/tomtom215/manypaintings/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS is the embedded static asset tree, rooted so "js/app.js"
// resolves without the "static/" prefix.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// PageData is the template context shared by all pages.
type PageData struct {
	Title       string
	Environment string
	Config      *config.Config
	ConfigJSON  template.JS
}

// Renderer renders the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates. It fails fast on a broken
// template rather than at first render.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template with a page context built from the
// current config snapshot. The full config is also serialized to JSON so
// the client-side animation engine reads the same values the server does.
func (r *Renderer) Render(w io.Writer, name, title, environment string, cfg *config.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serializing config for %s: %w", name, err)
	}
	data := PageData{
		Title:       title,
		Environment: environment,
		Config:      cfg,
		ConfigJSON:  template.JS(raw),
	}
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
