// Package views renders the panel's HTML pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templatesFS embed.FS

const (
	layoutTemplate = "layout"
	pagesDir       = "templates/pages"
)

// Renderer implements gin's render.HTMLRender. Every page is parsed together
// with the layout and partials so each one can define its own "content".
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// NewRenderer parses all embedded templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New(layoutTemplate).Funcs(Funcs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout templates: %w", err)
	}

	entries, err := fs.ReadDir(templatesFS, pagesDir)
	if err != nil {
		return nil, fmt.Errorf("listing page templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		tmpl, err := template.Must(base.Clone()).ParseFS(templatesFS, path.Join(pagesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", entry.Name(), err)
		}
		r.pages[strings.TrimSuffix(entry.Name(), ".html")] = tmpl
	}
	return r, nil
}

// Instance renders page name inside the layout.
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error"]
		data = map[string]any{"Title": "Błąd", "Data": fmt.Sprintf("Nieznany widok %q", name)}
	}
	return render.HTML{Template: tmpl, Name: layoutTemplate, Data: data}
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
