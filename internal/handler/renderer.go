// Package handler holds the shared HTTP rendering plumbing.
package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer manages template parsing and rendering with isolated template sets
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses the storefront templates: layout.html is the shared
// base, every other root-level .html file becomes a page cloned onto it.
func NewRenderer(templatesDir string) (*Renderer, error) {
	baseTmpl, err := template.New("base").ParseFiles(filepath.Join(templatesDir, "layout.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob templates: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, page := range pages {
		name := filepath.Base(page)
		if name == "layout.html" {
			continue
		}

		pageTmpl, err := baseTmpl.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone template for %s: %w", page, err)
		}
		pageTmpl, err = pageTmpl.ParseFiles(page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", page, err)
		}

		templates[name[:len(name)-len(".html")]] = pageTmpl
	}

	return &Renderer{templates: templates}, nil
}

// RenderHTTP writes the named page to the response. Render failures after
// the header is written can only be logged by the caller's middleware, so
// the error is swallowed here the way a half-written page has to be.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, page string, data any) {
	tmpl, ok := r.templates[page]
	if !ok {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tmpl.ExecuteTemplate(w, "layout", data)
}
