package site

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/angelofallars/htmx-go"

	"github.com/summa-explorer/summa/internal/pathtoken"
	"github.com/summa-explorer/summa/internal/search"
)

// hitView is a search hit with the fields the pages and live search need.
type hitView struct {
	search.Hit
	Href        string        `json:"href"`
	Label       string        `json:"label"`
	SnippetHTML template.HTML `json:"snippet_html"`
}

// searchPage models both the full search page and the results fragment.
type searchPage struct {
	Query string
	Mode  search.Mode
	Hits  []hitView
	Error string
}

// HitLabel is the call to action shown under a hit. The level is taken from
// the number of segments in the hit's token.
func HitLabel(token string) string {
	kind, ok := pathtoken.Leaf(token)
	if !ok {
		return "click to see the result"
	}
	return "click to see the " + kind.String()
}

func (s *Site) hitViews(hits []search.Hit) []hitView {
	views := make([]hitView, 0, len(hits))
	for _, h := range hits {
		views = append(views, hitView{
			Hit:         h,
			Href:        exploreHref(h.ID),
			Label:       HitLabel(h.ID),
			SnippetHTML: s.renderInline(h.Snippet),
		})
	}
	return views
}

// runSearch answers a query for the HTML and websocket handlers.
func (s *Site) runSearch(ctx context.Context, req search.Request) searchPage {
	page := searchPage{Query: req.Query, Hits: []hitView{}}
	if s.search == nil {
		page.Error = "Search is not available."
		return page
	}
	if req.Limit <= 0 {
		req.Limit = s.opts.ResultLimit
	}
	res, err := s.search.Search(ctx, req)
	if err != nil {
		log.Printf("site: search %q: %v", req.Query, err)
		page.Error = "Error with the search engine."
		return page
	}
	page.Query = res.Query
	page.Mode = res.Mode
	page.Hits = s.hitViews(res.Hits)
	return page
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	page := s.runSearch(r.Context(), search.Request{
		Query: q.Get("q"),
		Limit: limit,
		Mode:  search.Mode(q.Get("mode")),
	})

	if htmx.IsHTMX(r) {
		body, err := s.renderTo("search", "results", page)
		if err != nil {
			log.Printf("site: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := htmx.NewResponse().PushURL("/search?q=" + url.QueryEscape(page.Query)).Write(w); err != nil {
			log.Printf("site: writing htmx headers: %v", err)
		}
		w.Write(body)
		return
	}

	data := s.page("Search")
	data.Query = page.Query
	data.Content = page
	s.render(w, http.StatusOK, "search", data)
}
