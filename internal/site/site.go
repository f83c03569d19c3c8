// Package site serves the Summa browsing website: the landing page, the
// explore pages addressed by path tokens, search (page, HTMX fragment and
// live websocket) and a small JSON API.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/summa-explorer/summa/internal/resolver"
	"github.com/summa-explorer/summa/internal/search"
)

// Options configures a Site.
type Options struct {
	SiteName string
	// Verbose logs every token that fails to resolve.
	Verbose bool
	// ResultLimit caps search results when a request does not set one.
	ResultLimit int
}

// Site renders the resolver's views as HTML and JSON.
type Site struct {
	resolver *resolver.Resolver
	search   *search.Service
	opts     Options
	md       goldmark.Markdown
	pages    map[string]*template.Template
}

// New creates a Site. svc may be nil, in which case search reports that it
// is unavailable.
func New(res *resolver.Resolver, svc *search.Service, opts Options) (*Site, error) {
	if opts.SiteName == "" {
		opts.SiteName = "Summa Explorer"
	}
	if opts.ResultLimit <= 0 {
		opts.ResultLimit = 20
	}
	s := &Site{
		resolver: res,
		search:   svc,
		opts:     opts,
		md:       newMarkdown(),
	}
	pages, err := s.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s.pages = pages
	return s, nil
}

// RegisterRoutes mounts all site routes onto the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/explore", s.handleExplore)
	r.Get("/explore/{token}", s.handleExploreToken)
	r.Get("/search", s.handleSearch)
	r.Get("/ws/search", s.handleLiveSearch)

	r.Get("/api/stats", s.handleAPIStats)
	r.Get("/api/parts", s.handleAPIParts)
	r.Get("/api/explore/{token}", s.handleAPIExplore)
	r.Get("/api/search", s.handleAPISearch)
	r.Get("/api/search/recent", s.handleAPIRecent)

	r.Get("/static/style.css", serveStatic("text/css; charset=utf-8", styleCSS))
	r.Get("/static/app.js", serveStatic("application/javascript; charset=utf-8", appJS))

	r.NotFound(s.handleNotFound)
}

func (s *Site) parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"lines": s.renderLines,
		"add":   func(a, b int) int { return a + b },
	}
	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, err
	}
	if _, err := base.New("results").Parse(resultsTemplate); err != nil {
		return nil, err
	}

	sources := map[string]string{
		"home":     homeTemplate,
		"list":     listTemplate,
		"article":  articleTemplate,
		"search":   searchTemplate,
		"notfound": notFoundTemplate,
		"error":    errorTemplate,
	}
	pages := make(map[string]*template.Template, len(sources))
	for name, src := range sources {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.New("content").Parse(src); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// pageData is passed to the layout. Content holds the page-specific model.
type pageData struct {
	SiteName string
	Title    string
	Crumbs   []Crumb
	Query    string
	Content  any
}

// render executes a full page into a buffer first so template errors still
// produce a clean 500.
func (s *Site) render(w http.ResponseWriter, status int, page string, data pageData) {
	s.execute(w, status, page, "layout", data)
}

func (s *Site) execute(w http.ResponseWriter, status int, page, name string, data any) {
	body, err := s.renderTo(page, name, data)
	if err != nil {
		log.Printf("site: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func (s *Site) renderTo(page, name string, data any) ([]byte, error) {
	t, ok := s.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", page, err)
	}
	return buf.Bytes(), nil
}

func (s *Site) page(title string) pageData {
	return pageData{SiteName: s.opts.SiteName, Title: title}
}

func serveStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(body))
	}
}
